package domain

import "math"

// Payload is a loosely typed record crossing a layer boundary, usually a
// decoded JSON body.
type Payload map[string]any

// present reports whether key holds a value that counts as provided.
// Zero scalars (empty string, false, 0, NaN) count as absent.
func (p Payload) present(key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	switch x := v.(type) {
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case int64:
		return x != 0
	}
	return true
}

// Strings checks that every key is present and holds a string, in that
// order: all presence checks run before any type check.
func (p Payload) Strings(scope string, keys ...string) ([]string, error) {
	for _, k := range keys {
		if !p.present(k) {
			return nil, NewValidationError(scope, ReasonMissingProperty)
		}
	}

	res := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, NewValidationError(scope, ReasonDataType)
		}
		res[i] = s
	}
	return res, nil
}
