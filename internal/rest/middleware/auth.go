package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

const msgMissingAuth = "Missing authentication"

// AuthMiddleware accepts an HS256 bearer token and exposes its id claim as
// the current user.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(msgMissingAuth))
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logrus.Debugf("rejecting token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid access token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid access token"))
			return
		}
		id, _ := claims["id"].(string)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid access token"))
			return
		}

		request.SetUserID(c, id)
		c.Next()
	}
}
