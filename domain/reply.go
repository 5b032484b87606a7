package domain

import "context"

type NewReply struct {
	Content string
}

func ParseNewReply(p Payload) (NewReply, error) {
	v, err := p.Strings("NEW_REPLY", "content")
	if err != nil {
		return NewReply{}, err
	}
	return NewReply{Content: v[0]}, nil
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func ParseAddedReply(p Payload) (AddedReply, error) {
	v, err := p.Strings("ADDED_REPLY", "id", "content", "owner")
	if err != nil {
		return AddedReply{}, err
	}
	return AddedReply{ID: v[0], Content: v[1], Owner: v[2]}, nil
}

func (a AddedReply) Validate() error {
	_, err := ParseAddedReply(Payload{"id": a.ID, "content": a.Content, "owner": a.Owner})
	return err
}

// Reply is a stored reply tagged with the comment it belongs to
type Reply struct {
	ID        string
	CommentID string
	Username  string
	Date      string
	Content   string
	State     DeleteState
}

type ReplyView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Date     string `json:"date"`
	Content  string `json:"content"`
}

// ReplyRepository defines the contract for reply persistence
type ReplyRepository interface {
	AddReply(ctx context.Context, commentID, owner string, nr NewReply) (AddedReply, error)
	VerifyReplyAvailable(ctx context.Context, replyID string) error
	VerifyReplyOwner(ctx context.Context, replyID, owner string) error
	VerifyReplyInComment(ctx context.Context, replyID, commentID string) error
	DeleteReply(ctx context.Context, replyID string) error

	// GetRepliesByCommentIDs returns the replies of every given comment
	// ordered by creation time ascending. An empty commentIDs yields an
	// empty result, never an error.
	GetRepliesByCommentIDs(ctx context.Context, commentIDs []string) ([]Reply, error)
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, owner, threadID, commentID string, p Payload) (AddedReply, error)
	DeleteReply(ctx context.Context, owner, threadID, commentID, replyID string) error
}
