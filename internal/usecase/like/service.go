package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	payloadScope = "TOGGLE_COMMENT_LIKE_USE_CASE"

	msgThreadNotFound  = "thread tidak ditemukan"
	msgCommentNotFound = "komentar tidak ditemukan"
)

type Service struct {
	threadRepo      domain.ThreadRepository
	commentRepo     domain.CommentRepository
	commentLikeRepo domain.CommentLikeRepository
}

var _ domain.CommentLikeUsecase = (*Service)(nil)

func NewService(t domain.ThreadRepository, c domain.CommentRepository, l domain.CommentLikeRepository) *Service {
	return &Service{
		threadRepo:      t,
		commentRepo:     c,
		commentLikeRepo: l,
	}
}

type togglePayload struct {
	threadID  string
	commentID string
	userID    string
}

func parseTogglePayload(p domain.Payload) (togglePayload, error) {
	v, err := p.Strings(payloadScope, "threadId", "commentId", "userId")
	if err != nil {
		return togglePayload{}, err
	}
	return togglePayload{threadID: v[0], commentID: v[1], userID: v[2]}, nil
}

// ToggleCommentLike likes the comment for the user, or removes the like if
// it already exists.
//
// The existence check and the write are not atomic. A concurrent toggle that
// inserts first makes AddLike report a conflict, which means the comment is
// liked already and the toggle has nothing left to do.
func (s *Service) ToggleCommentLike(ctx context.Context, p domain.Payload) error {
	in, err := parseTogglePayload(p)
	if err != nil {
		return err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, in.threadID); err != nil {
		return rekindNotFound(err, "THREAD", msgThreadNotFound)
	}
	if err := s.commentRepo.VerifyCommentInThread(ctx, in.commentID, in.threadID); err != nil {
		return rekindNotFound(err, "COMMENT", msgCommentNotFound)
	}

	liked, err := s.commentLikeRepo.IsCommentLiked(ctx, in.commentID, in.userID)
	if err != nil {
		return err
	}

	if liked {
		return s.commentLikeRepo.DeleteLike(ctx, in.commentID, in.userID)
	}

	_, err = s.commentLikeRepo.AddLike(ctx, in.commentID, in.userID)
	if errors.Is(err, domain.ErrConflict) {
		logrus.WithFields(logrus.Fields{
			"comment_id": in.commentID,
			"user_id":    in.userID,
		}).Info("comment already liked by a concurrent request")
		return nil
	}
	return err
}

func rekindNotFound(err error, scope, message string) error {
	if domain.KindOf(err) == domain.KindNotFound {
		return domain.NewNotFoundError(scope, message)
	}
	return err
}
