package comment

import (
	"context"

	"github.com/Guyuepp/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}

func (s *service) AddComment(ctx context.Context, owner, threadID string, p domain.Payload) (domain.AddedComment, error) {
	nc, err := domain.ParseNewComment(p)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.commentRepo.AddComment(ctx, threadID, owner, nc)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := added.Validate(); err != nil {
		return domain.AddedComment{}, err
	}
	return added, nil
}

// DeleteComment soft deletes a comment. Existence is always settled before
// ownership so a missing comment is never reported as forbidden.
func (s *service) DeleteComment(ctx context.Context, owner, threadID, commentID string) error {
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentAvailable(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentInThread(ctx, commentID, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, owner); err != nil {
		return err
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
