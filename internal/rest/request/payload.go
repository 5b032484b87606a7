package request

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

// BindPayload decodes the JSON body into a loosely typed payload. Field
// presence and types are checked later by the domain parsers.
func BindPayload(c *gin.Context) (domain.Payload, error) {
	p := domain.Payload{}
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, &domain.Error{
			Kind:    domain.KindValidation,
			Scope:   "REQUEST",
			Reason:  "INVALID_JSON",
			Message: "payload harus berupa objek JSON",
		}
	}
	return p, nil
}

const userIDKey = "user_id"

// UserID returns the authenticated user set by the auth middleware
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// SetUserID is used by the auth middleware
func SetUserID(c *gin.Context, id string) {
	c.Set(userIDKey, id)
}
