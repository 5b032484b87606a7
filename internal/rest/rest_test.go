package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain/mocks"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/request"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	threads  *mocks.ThreadUsecase
	comments *mocks.CommentUsecase
	replies  *mocks.ReplyUsecase
	likes    *mocks.CommentLikeUsecase
	router   *gin.Engine
}

// fakeAuth authenticates any request carrying an X-User header.
func fakeAuth(c *gin.Context) {
	if id := c.GetHeader("X-User"); id != "" {
		request.SetUserID(c, id)
		c.Next()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "Missing authentication"})
}

func newFixture() *fixture {
	f := &fixture{
		threads:  new(mocks.ThreadUsecase),
		comments: new(mocks.CommentUsecase),
		replies:  new(mocks.ReplyUsecase),
		likes:    new(mocks.CommentLikeUsecase),
		router:   gin.New(),
	}
	rest.RegisterRoutes(f.router, rest.Handlers{
		Thread:  rest.NewThreadHandler(f.threads),
		Comment: rest.NewCommentHandler(f.comments),
		Reply:   rest.NewReplyHandler(f.replies),
		Like:    rest.NewLikeHandler(f.likes),
	}, fakeAuth)
	return f
}

func (f *fixture) do(method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-User", user)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
