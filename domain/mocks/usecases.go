package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ThreadUsecase struct {
	mock.Mock
}

var _ domain.ThreadUsecase = (*ThreadUsecase)(nil)

func (_m *ThreadUsecase) AddThread(ctx context.Context, owner string, p domain.Payload) (domain.AddedThread, error) {
	ret := _m.Called(ctx, owner, p)
	return ret.Get(0).(domain.AddedThread), ret.Error(1)
}

func (_m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.DetailThread, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.DetailThread), ret.Error(1)
}

type CommentUsecase struct {
	mock.Mock
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)

func (_m *CommentUsecase) AddComment(ctx context.Context, owner, threadID string, p domain.Payload) (domain.AddedComment, error) {
	ret := _m.Called(ctx, owner, threadID, p)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentUsecase) DeleteComment(ctx context.Context, owner, threadID, commentID string) error {
	ret := _m.Called(ctx, owner, threadID, commentID)
	return ret.Error(0)
}

type ReplyUsecase struct {
	mock.Mock
}

var _ domain.ReplyUsecase = (*ReplyUsecase)(nil)

func (_m *ReplyUsecase) AddReply(ctx context.Context, owner, threadID, commentID string, p domain.Payload) (domain.AddedReply, error) {
	ret := _m.Called(ctx, owner, threadID, commentID, p)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyUsecase) DeleteReply(ctx context.Context, owner, threadID, commentID, replyID string) error {
	ret := _m.Called(ctx, owner, threadID, commentID, replyID)
	return ret.Error(0)
}

type CommentLikeUsecase struct {
	mock.Mock
}

var _ domain.CommentLikeUsecase = (*CommentLikeUsecase)(nil)

func (_m *CommentLikeUsecase) ToggleCommentLike(ctx context.Context, p domain.Payload) error {
	ret := _m.Called(ctx, p)
	return ret.Error(0)
}
