package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ReplyRepository struct {
	mock.Mock
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)

func (_m *ReplyRepository) AddReply(ctx context.Context, commentID, owner string, nr domain.NewReply) (domain.AddedReply, error) {
	ret := _m.Called(ctx, commentID, owner, nr)
	return ret.Get(0).(domain.AddedReply), ret.Error(1)
}

func (_m *ReplyRepository) VerifyReplyAvailable(ctx context.Context, replyID string) error {
	ret := _m.Called(ctx, replyID)
	return ret.Error(0)
}

func (_m *ReplyRepository) VerifyReplyOwner(ctx context.Context, replyID, owner string) error {
	ret := _m.Called(ctx, replyID, owner)
	return ret.Error(0)
}

func (_m *ReplyRepository) VerifyReplyInComment(ctx context.Context, replyID, commentID string) error {
	ret := _m.Called(ctx, replyID, commentID)
	return ret.Error(0)
}

func (_m *ReplyRepository) DeleteReply(ctx context.Context, replyID string) error {
	ret := _m.Called(ctx, replyID)
	return ret.Error(0)
}

func (_m *ReplyRepository) GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]domain.Reply, error) {
	ret := _m.Called(ctx, commentIDs)

	var r0 []domain.Reply
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reply)
	}
	return r0, ret.Error(1)
}
