package thread

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
)

type repos struct {
	threads  *mocks.ThreadRepository
	comments *mocks.CommentRepository
	replies  *mocks.ReplyRepository
	likes    *mocks.CommentLikeRepository
}

func newRepos() repos {
	return repos{
		threads:  new(mocks.ThreadRepository),
		comments: new(mocks.CommentRepository),
		replies:  new(mocks.ReplyRepository),
		likes:    new(mocks.CommentLikeRepository),
	}
}

func (r repos) service(opts ...Option) *Service {
	return NewService(r.threads, r.comments, r.replies, r.likes, opts...)
}

func (r repos) assertExpectations(t *testing.T) {
	r.threads.AssertExpectations(t)
	r.comments.AssertExpectations(t)
	r.replies.AssertExpectations(t)
	r.likes.AssertExpectations(t)
}

var sampleThread = domain.Thread{
	ID:       "thread-123",
	Title:    "sebuah thread",
	Body:     "sebuah body thread",
	Date:     "2021-08-08T07:19:09.775Z",
	Username: "dicoding",
}

func TestAddThread(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newRepos()
		title, body := faker.Sentence(), faker.Paragraph()
		expected := domain.AddedThread{ID: "thread-123", Title: title, Owner: "user-123"}
		r.threads.On("AddThread", mock.Anything, "user-123", domain.NewThread{Title: title, Body: body}).
			Return(expected, nil).Once()

		added, err := r.service().AddThread(context.TODO(), "user-123", domain.Payload{"title": title, "body": body})

		require.NoError(t, err)
		assert.Equal(t, expected, added)
		r.assertExpectations(t)
	})

	t.Run("invalid payload never reaches the port", func(t *testing.T) {
		r := newRepos()

		_, err := r.service().AddThread(context.TODO(), "user-123", domain.Payload{"title": "x"})

		assert.ErrorIs(t, err, domain.ErrMissingProperty)
		r.threads.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("port returns an incomplete record", func(t *testing.T) {
		r := newRepos()
		r.threads.On("AddThread", mock.Anything, "user-123", mock.Anything).
			Return(domain.AddedThread{ID: "thread-123"}, nil).Once()

		_, err := r.service().AddThread(context.TODO(), "user-123", domain.Payload{"title": "a", "body": "b"})

		assert.ErrorIs(t, err, &domain.Error{Kind: domain.KindValidation, Scope: "ADDED_THREAD"})
	})

	t.Run("port error", func(t *testing.T) {
		r := newRepos()
		r.threads.On("AddThread", mock.Anything, "user-123", mock.Anything).
			Return(domain.AddedThread{}, errors.New("Unexpected")).Once()

		_, err := r.service().AddThread(context.TODO(), "user-123", domain.Payload{"title": "a", "body": "b"})

		assert.EqualError(t, err, "Unexpected")
	})
}

func TestGetThreadDetailMasksDeletedComments(t *testing.T) {
	r := newRepos()
	comments := []domain.Comment{
		{ID: "comment-1", ThreadID: "thread-123", Username: "johndoe", Date: "2021-08-08T07:22:33.555Z", Content: "sebuah comment", State: domain.Active},
		{ID: "comment-2", ThreadID: "thread-123", Username: "dicoding", Date: "2021-08-08T07:26:21.338Z", Content: "akan diganti", State: domain.Deleted},
	}
	ids := []string{"comment-1", "comment-2"}

	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(sampleThread, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, ids).Return([]domain.Reply{}, nil).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, ids).Return(map[string]int64{"comment-1": 2}, nil).Once()

	detail, err := r.service().GetThreadDetail(context.TODO(), "thread-123")

	require.NoError(t, err)
	assert.Equal(t, sampleThread.ID, detail.ID)
	assert.Equal(t, sampleThread.Title, detail.Title)
	assert.Equal(t, sampleThread.Body, detail.Body)
	assert.Equal(t, sampleThread.Date, detail.Date)
	assert.Equal(t, sampleThread.Username, detail.Username)
	assert.Equal(t, []domain.CommentView{
		{ID: "comment-1", Username: "johndoe", Date: "2021-08-08T07:22:33.555Z", Content: "sebuah comment", LikeCount: 2, Replies: []domain.ReplyView{}},
		{ID: "comment-2", Username: "dicoding", Date: "2021-08-08T07:26:21.338Z", Content: "**komentar telah dihapus**", LikeCount: 0, Replies: []domain.ReplyView{}},
	}, detail.Comments)
	r.assertExpectations(t)
}

func TestGetThreadDetailKeepsReplyOrder(t *testing.T) {
	r := newRepos()
	comments := []domain.Comment{
		{ID: "comment-1", Username: "johndoe", Date: "2021-08-08T07:22:33.555Z", Content: "c1"},
	}
	replies := []domain.Reply{
		{ID: "reply-1", CommentID: "comment-1", Username: "dicoding", Date: "2021-08-08T07:59:48.766Z", Content: "akan diganti", State: domain.Deleted},
		{ID: "reply-2", CommentID: "comment-1", Username: "johndoe", Date: "2021-08-08T08:07:01.522Z", Content: "r2", State: domain.Active},
	}

	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(sampleThread, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, []string{"comment-1"}).Return(replies, nil).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, []string{"comment-1"}).Return(map[string]int64{}, nil).Once()

	detail, err := r.service().GetThreadDetail(context.TODO(), "thread-123")

	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, int64(0), detail.Comments[0].LikeCount)
	assert.Equal(t, []domain.ReplyView{
		{ID: "reply-1", Username: "dicoding", Date: "2021-08-08T07:59:48.766Z", Content: "**balasan telah dihapus**"},
		{ID: "reply-2", Username: "johndoe", Date: "2021-08-08T08:07:01.522Z", Content: "r2"},
	}, detail.Comments[0].Replies)
	r.assertExpectations(t)
}

func TestGetThreadDetailWithoutComments(t *testing.T) {
	r := newRepos()
	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(sampleThread, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{}, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, []string{}).Return([]domain.Reply{}, nil).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, []string{}).Return(map[string]int64{}, nil).Once()

	detail, err := r.service().GetThreadDetail(context.TODO(), "thread-123")

	require.NoError(t, err)
	assert.NotNil(t, detail.Comments)
	assert.Empty(t, detail.Comments)
	r.assertExpectations(t)
}

func TestGetThreadDetailThreadNotFound(t *testing.T) {
	r := newRepos()
	notFound := domain.NewNotFoundError("THREAD", "thread tidak ditemukan")
	r.threads.On("GetThreadByID", mock.Anything, "thread-404").Return(domain.Thread{}, notFound).Once()

	_, err := r.service().GetThreadDetail(context.TODO(), "thread-404")

	assert.Same(t, notFound, err)
	r.comments.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
	r.replies.AssertNotCalled(t, "GetRepliesByCommentIDs", mock.Anything, mock.Anything)
	r.likes.AssertNotCalled(t, "GetLikeCountsByCommentIDs", mock.Anything, mock.Anything)
}

func TestGetThreadDetailBatchFailure(t *testing.T) {
	r := newRepos()
	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(sampleThread, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").
		Return([]domain.Comment{{ID: "comment-1", Username: "u", Date: "d", Content: "c"}}, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, []string{"comment-1"}).Return(nil, errors.New("Unexpected")).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, []string{"comment-1"}).Return(map[string]int64{}, nil).Maybe()

	_, err := r.service().GetThreadDetail(context.TODO(), "thread-123")

	assert.EqualError(t, err, "Unexpected")
}

func TestGetThreadDetailCustomMarkers(t *testing.T) {
	r := newRepos()
	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(sampleThread, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").
		Return([]domain.Comment{{ID: "comment-1", Username: "u", Date: "d", Content: "secret", State: domain.Deleted}}, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, []string{"comment-1"}).
		Return([]domain.Reply{{ID: "reply-1", CommentID: "comment-1", Content: "secret", State: domain.Deleted}}, nil).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, []string{"comment-1"}).Return(map[string]int64{}, nil).Once()

	detail, err := r.service(WithDeletedMarkers("[deleted comment]", "")).GetThreadDetail(context.TODO(), "thread-123")

	require.NoError(t, err)
	assert.Equal(t, "[deleted comment]", detail.Comments[0].Content)
	assert.Equal(t, DefaultReplyDeletedMarker, detail.Comments[0].Replies[0].Content)
}

func TestGroupReplies(t *testing.T) {
	s := NewService(nil, nil, nil, nil)
	replies := []domain.Reply{
		{ID: "reply-1", CommentID: "comment-2"},
		{ID: "reply-2", CommentID: "comment-1"},
		{ID: "reply-3", CommentID: "comment-2", State: domain.Deleted, Content: "gone"},
		{ID: "reply-4", CommentID: "comment-9"},
	}

	groups := s.groupReplies(replies)

	assert.Len(t, groups.get("comment-1"), 1)
	assert.Len(t, groups.get("comment-9"), 1)
	got := groups.get("comment-2")
	require.Len(t, got, 2)
	assert.Equal(t, "reply-1", got[0].ID)
	assert.Equal(t, "reply-3", got[1].ID)
	assert.Equal(t, DefaultReplyDeletedMarker, got[1].Content)
	assert.NotNil(t, groups.get("comment-404"))
	assert.Empty(t, groups.get("comment-404"))
}

func TestGetThreadDetail_OrphanedOwnerIsInternal(t *testing.T) {
	r := newRepos()
	orphan := sampleThread
	orphan.Username = ""
	r.threads.On("GetThreadByID", mock.Anything, "thread-123").Return(orphan, nil).Once()
	r.comments.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.Comment{}, nil).Once()
	r.replies.On("GetRepliesByCommentIDs", mock.Anything, []string{}).Return([]domain.Reply{}, nil).Once()
	r.likes.On("GetLikeCountsByCommentIDs", mock.Anything, []string{}).Return(map[string]int64{}, nil).Once()

	_, err := r.service().GetThreadDetail(context.TODO(), "thread-123")

	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.NotErrorIs(t, err, domain.ErrBadParamInput)
}
