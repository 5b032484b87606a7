package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// PostThread will store the thread by given request body
func (h *ThreadHandler) PostThread(c *gin.Context) {
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

	added, err := h.Service.AddThread(c.Request.Context(), owner, p)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedThread{AddedThread: added}))
}

// GetThread returns the thread with its comments, replies and like counts
func (h *ThreadHandler) GetThread(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.Thread{Thread: detail}))
}

const msgUnauthenticated = "Missing authentication"
