package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	owner, ok := request.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(msgUnauthenticated))
		return
	}
	p, err := request.BindPayload(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), owner, c.Param("threadId"), p)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedComment{AddedComment: added}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	owner, ok := request.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(msgUnauthenticated))
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
