package domain

import "errors"

// Kind classifies an Error. Callers branch on the kind, never on the message.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindConflict
	KindInvariant
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindAuthorization:
		return "AUTHORIZATION"
	case KindConflict:
		return "CONFLICT"
	case KindInvariant:
		return "INVARIANT"
	case KindNotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return "INTERNAL"
	}
}

// Validation reasons shared by every entity constructor.
const (
	ReasonMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	ReasonDataType        = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	ReasonNotFound        = "NOT_FOUND"
	ReasonNotOwner        = "NOT_OWNER"
	ReasonNotImplemented  = "METHOD_NOT_IMPLEMENTED"
)

// Error is the error type returned by entities, ports and use cases.
type Error struct {
	Kind    Kind
	Scope   string // e.g. NEW_THREAD, COMMENT, COMMENT_REPOSITORY
	Reason  string // e.g. NOT_CONTAIN_NEEDED_PROPERTY
	Message string // user-facing, optional
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Scope != "" && e.Reason != "" {
		return e.Scope + "." + e.Reason
	}
	if e.Reason != "" {
		return e.Reason
	}
	return e.Kind.String()
}

// Code is the machine readable SCOPE.REASON identifier.
func (e *Error) Code() string {
	if e.Scope == "" {
		return e.Reason
	}
	return e.Scope + "." + e.Reason
}

// Is matches a target *Error by kind, and by reason/scope when the target sets them.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Reason != "" && t.Reason != e.Reason {
		return false
	}
	if t.Scope != "" && t.Scope != e.Scope {
		return false
	}
	return true
}

var (
	// ErrBadParamInput matches every validation failure
	ErrBadParamInput = &Error{Kind: KindValidation}
	// ErrMissingProperty matches validation failures caused by an absent field
	ErrMissingProperty = &Error{Kind: KindValidation, Reason: ReasonMissingProperty}
	// ErrDataType matches validation failures caused by a field of the wrong type
	ErrDataType = &Error{Kind: KindValidation, Reason: ReasonDataType}
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrForbidden will throw if the actor does not own the item
	ErrForbidden = &Error{Kind: KindAuthorization}
	// ErrConflict will throw if the current action already exists
	ErrConflict = &Error{Kind: KindConflict}
	// ErrInvariant will throw if a storage level precondition did not hold
	ErrInvariant = &Error{Kind: KindInvariant}
	// ErrNotImplemented will throw from ports that have no adapter yet
	ErrNotImplemented = &Error{Kind: KindNotImplemented, Reason: ReasonNotImplemented}
)

func NewValidationError(scope, reason string) *Error {
	return &Error{Kind: KindValidation, Scope: scope, Reason: reason}
}

func NewNotFoundError(scope, message string) *Error {
	return &Error{Kind: KindNotFound, Scope: scope, Reason: ReasonNotFound, Message: message}
}

func NewAuthorizationError(scope, message string) *Error {
	return &Error{Kind: KindAuthorization, Scope: scope, Reason: ReasonNotOwner, Message: message}
}

func NewConflictError(scope, message string) *Error {
	return &Error{Kind: KindConflict, Scope: scope, Reason: "CONFLICT", Message: message}
}

func NewInvariantError(scope, message string) *Error {
	return &Error{Kind: KindInvariant, Scope: scope, Reason: "INVARIANT", Message: message}
}

func NewNotImplementedError(scope string) *Error {
	return &Error{Kind: KindNotImplemented, Scope: scope, Reason: ReasonNotImplemented}
}

// AsInternal re-kinds err as an internal failure, keeping its code.
func AsInternal(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Kind: KindInternal, Scope: e.Scope, Reason: e.Reason}
	}
	return &Error{Kind: KindInternal, Reason: err.Error()}
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
