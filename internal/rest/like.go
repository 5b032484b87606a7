package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type LikeHandler struct {
	Service domain.CommentLikeUsecase
}

func NewLikeHandler(svc domain.CommentLikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// PutLike likes the comment, or unlikes it if the user already did
func (h *LikeHandler) PutLike(c *gin.Context) {
	uid, ok := request.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(msgUnauthenticated))
		return
	}

	err := h.Service.ToggleCommentLike(c.Request.Context(), domain.Payload{
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
		"userId":    uid,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
