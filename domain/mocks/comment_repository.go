package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type CommentRepository struct {
	mock.Mock
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

func (_m *CommentRepository) AddComment(ctx context.Context, threadID, owner string, nc domain.NewComment) (domain.AddedComment, error) {
	ret := _m.Called(ctx, threadID, owner, nc)
	return ret.Get(0).(domain.AddedComment), ret.Error(1)
}

func (_m *CommentRepository) VerifyCommentAvailable(ctx context.Context, commentID string) error {
	ret := _m.Called(ctx, commentID)
	return ret.Error(0)
}

func (_m *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, owner string) error {
	ret := _m.Called(ctx, commentID, owner)
	return ret.Error(0)
}

func (_m *CommentRepository) VerifyCommentInThread(ctx context.Context, commentID, threadID string) error {
	ret := _m.Called(ctx, commentID, threadID)
	return ret.Error(0)
}

func (_m *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	ret := _m.Called(ctx, commentID)
	return ret.Error(0)
}

func (_m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.Comment, error) {
	ret := _m.Called(ctx, threadID)

	var r0 []domain.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}
	return r0, ret.Error(1)
}
