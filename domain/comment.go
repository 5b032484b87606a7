package domain

import "context"

// DeleteState is the soft-delete state of a comment or a reply.
type DeleteState int8

const (
	Active DeleteState = iota
	Deleted
)

// DeleteStateOf converts a stored is_delete flag.
func DeleteStateOf(isDelete bool) DeleteState {
	if isDelete {
		return Deleted
	}
	return Active
}

func (s DeleteState) IsDeleted() bool {
	return s == Deleted
}

func (s DeleteState) String() string {
	if s == Deleted {
		return "DELETED"
	}
	return "ACTIVE"
}

// NewComment is a validated comment creation payload
type NewComment struct {
	Content string
}

func ParseNewComment(p Payload) (NewComment, error) {
	v, err := p.Strings("NEW_COMMENT", "content")
	if err != nil {
		return NewComment{}, err
	}
	return NewComment{Content: v[0]}, nil
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func ParseAddedComment(p Payload) (AddedComment, error) {
	v, err := p.Strings("ADDED_COMMENT", "id", "content", "owner")
	if err != nil {
		return AddedComment{}, err
	}
	return AddedComment{ID: v[0], Content: v[1], Owner: v[2]}, nil
}

func (a AddedComment) Validate() error {
	_, err := ParseAddedComment(Payload{"id": a.ID, "content": a.Content, "owner": a.Owner})
	return err
}

// Comment is a stored comment as read back for display. Content is the
// stored content, never masked.
type Comment struct {
	ID       string
	ThreadID string
	Username string
	Date     string
	Content  string
	State    DeleteState
}

// CommentView is a comment rendered inside a DetailThread
type CommentView struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Date      string      `json:"date"`
	Content   string      `json:"content"`
	LikeCount int64       `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}

// CommentRepository defines the contract for comment persistence
type CommentRepository interface {
	AddComment(ctx context.Context, threadID, owner string, nc NewComment) (AddedComment, error)

	// VerifyCommentAvailable returns ErrNotFound if the comment doesn't exist.
	VerifyCommentAvailable(ctx context.Context, commentID string) error

	// VerifyCommentOwner returns ErrNotFound if the comment doesn't exist and
	// ErrForbidden if owner did not write it.
	VerifyCommentOwner(ctx context.Context, commentID, owner string) error

	// VerifyCommentInThread returns ErrNotFound unless the comment exists
	// within threadID.
	VerifyCommentInThread(ctx context.Context, commentID, threadID string) error

	// DeleteComment soft deletes the comment.
	DeleteComment(ctx context.Context, commentID string) error

	// GetCommentsByThreadID returns the thread's comments ordered by
	// creation time ascending.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]Comment, error)
}

type CommentUsecase interface {
	AddComment(ctx context.Context, owner, threadID string, p Payload) (AddedComment, error)
	DeleteComment(ctx context.Context, owner, threadID, commentID string) error
}
