package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) PostReply(c *gin.Context) {
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

	added, err := h.Service.AddReply(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"), p)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedReply{AddedReply: added}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	owner, ok := request.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(msgUnauthenticated))
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), owner, c.Param("threadId"), c.Param("commentId"), c.Param("replyId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
