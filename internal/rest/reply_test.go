package rest_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

func TestPostReply(t *testing.T) {
	f := newFixture()
	f.replies.On("AddReply", mock.Anything, "user-123", "thread-123", "comment-123", domain.Payload{"content": "balasan"}).
		Return(domain.AddedReply{ID: "reply-123", Content: "balasan", Owner: "user-123"}, nil).Once()

	rec := f.do(http.MethodPost, "/threads/thread-123/comments/comment-123/replies", "user-123", `{"content":"balasan"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"success","data":{"addedReply":{"id":"reply-123","content":"balasan","owner":"user-123"}}}`, rec.Body.String())
}

func TestDeleteReply(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newFixture()
		f.replies.On("DeleteReply", mock.Anything, "user-123", "thread-123", "comment-123", "reply-123").Return(nil).Once()

		rec := f.do(http.MethodDelete, "/threads/thread-123/comments/comment-123/replies/reply-123", "user-123", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reply missing", func(t *testing.T) {
		f := newFixture()
		f.replies.On("DeleteReply", mock.Anything, "user-123", "thread-123", "comment-123", "reply-404").
			Return(domain.NewNotFoundError("REPLY", "balasan tidak ditemukan")).Once()

		rec := f.do(http.MethodDelete, "/threads/thread-123/comments/comment-123/replies/reply-404", "user-123", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
