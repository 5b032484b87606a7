package domain

import "context"

// CommentLike is one user's like on one comment. Its existence is the liked
// state; there is no flag.
type CommentLike struct {
	ID        string
	CommentID string
	UserID    string
}

func ParseCommentLike(p Payload) (CommentLike, error) {
	v, err := p.Strings("COMMENT_LIKE", "id", "commentId", "userId")
	if err != nil {
		return CommentLike{}, err
	}
	return CommentLike{ID: v[0], CommentID: v[1], UserID: v[2]}, nil
}

// CommentLikeRepository defines the contract for like persistence
type CommentLikeRepository interface {
	// AddLike inserts a like and returns its ID. Returns ErrConflict if the
	// user already likes the comment.
	AddLike(ctx context.Context, commentID, userID string) (string, error)

	// DeleteLike returns ErrInvariant if no like matched.
	DeleteLike(ctx context.Context, commentID, userID string) error

	IsCommentLiked(ctx context.Context, commentID, userID string) (bool, error)

	// GetLikeCountsByCommentIDs maps every requested ID to its like count,
	// 0 for comments nobody likes. An empty commentIDs yields an empty map.
	GetLikeCountsByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error)
}

type CommentLikeUsecase interface {
	// ToggleCommentLike expects threadId, commentId and userId in p.
	ToggleCommentLike(ctx context.Context, p Payload) error
}
