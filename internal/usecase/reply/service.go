package reply

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *service) AddReply(ctx context.Context, owner, threadID, commentID string, p domain.Payload) (domain.AddedReply, error) {
	nr, err := domain.ParseNewReply(p)
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyCommentInThread(ctx, commentID, threadID); err != nil {
		return domain.AddedReply{}, err
	}

	added, err := s.replyRepo.AddReply(ctx, commentID, owner, nr)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := added.Validate(); err != nil {
		return domain.AddedReply{}, err
	}
	return added, nil
}

func (s *service) DeleteReply(ctx context.Context, owner, threadID, commentID, replyID string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentInThread(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyInComment(ctx, replyID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, replyID, owner); err != nil {
		return err
	}
	return s.replyRepo.DeleteReply(ctx, replyID)
}
