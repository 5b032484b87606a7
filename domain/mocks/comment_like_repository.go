package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type CommentLikeRepository struct {
	mock.Mock
}

var _ domain.CommentLikeRepository = (*CommentLikeRepository)(nil)

func (_m *CommentLikeRepository) AddLike(ctx context.Context, commentID, userID string) (string, error) {
	ret := _m.Called(ctx, commentID, userID)
	return ret.String(0), ret.Error(1)
}

func (_m *CommentLikeRepository) DeleteLike(ctx context.Context, commentID, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (_m *CommentLikeRepository) IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error) {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CommentLikeRepository) GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	ret := _m.Called(ctx, commentIDs)

	var r0 map[string]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}
	return r0, ret.Error(1)
}
