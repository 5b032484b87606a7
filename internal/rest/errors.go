package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

const msgServerFailure = "terjadi kegagalan pada server kami"

// getStatusCode maps an error kind onto an HTTP status
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindInvariant:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// validationMessages turns validation reasons without a message into
// something a user can read.
var validationMessages = map[string]string{
	domain.ReasonMissingProperty: "tidak dapat memproses permintaan karena properti yang dibutuhkan tidak ada",
	domain.ReasonDataType:        "tidak dapat memproses permintaan karena tipe data tidak sesuai",
}

func errorMessage(err error) string {
	var e *domain.Error
	if errors.As(err, &e) && e.Message == "" && e.Kind == domain.KindValidation {
		if msg, ok := validationMessages[e.Reason]; ok {
			return msg
		}
	}
	return err.Error()
}

func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error(err)
		c.AbortWithStatusJSON(code, response.Error(msgServerFailure))
		return
	}
	c.AbortWithStatusJSON(code, response.Fail(errorMessage(err)))
}
