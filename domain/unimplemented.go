package domain

import "context"

// The Unimplemented repositories fail every call with ErrNotImplemented.
// Embed one in an adapter to satisfy the port before every method is backed
// by storage.

type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

const (
	threadRepositoryScope      = "THREAD_REPOSITORY"
	commentRepositoryScope     = "COMMENT_REPOSITORY"
	replyRepositoryScope       = "REPLY_REPOSITORY"
	commentLikeRepositoryScope = "COMMENT_LIKE_REPOSITORY"
)

func (UnimplementedThreadRepository) AddThread(context.Context, string, NewThread) (AddedThread, error) {
	return AddedThread{}, NewNotImplementedError(threadRepositoryScope)
}

func (UnimplementedThreadRepository) VerifyThreadAvailability(context.Context, string) error {
	return NewNotImplementedError(threadRepositoryScope)
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (Thread, error) {
	return Thread{}, NewNotImplementedError(threadRepositoryScope)
}

type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, string, string, NewComment) (AddedComment, error) {
	return AddedComment{}, NewNotImplementedError(commentRepositoryScope)
}

func (UnimplementedCommentRepository) VerifyCommentAvailable(context.Context, string) error {
	return NewNotImplementedError(commentRepositoryScope)
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, string, string) error {
	return NewNotImplementedError(commentRepositoryScope)
}

func (UnimplementedCommentRepository) VerifyCommentInThread(context.Context, string, string) error {
	return NewNotImplementedError(commentRepositoryScope)
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string) error {
	return NewNotImplementedError(commentRepositoryScope)
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]Comment, error) {
	return nil, NewNotImplementedError(commentRepositoryScope)
}

type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, string, string, NewReply) (AddedReply, error) {
	return AddedReply{}, NewNotImplementedError(replyRepositoryScope)
}

func (UnimplementedReplyRepository) VerifyReplyAvailable(context.Context, string) error {
	return NewNotImplementedError(replyRepositoryScope)
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, string, string) error {
	return NewNotImplementedError(replyRepositoryScope)
}

func (UnimplementedReplyRepository) VerifyReplyInComment(context.Context, string, string) error {
	return NewNotImplementedError(replyRepositoryScope)
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, string) error {
	return NewNotImplementedError(replyRepositoryScope)
}

func (UnimplementedReplyRepository) GetRepliesByCommentIDs(context.Context, []string) ([]Reply, error) {
	return nil, NewNotImplementedError(replyRepositoryScope)
}

type UnimplementedCommentLikeRepository struct{}

var _ CommentLikeRepository = UnimplementedCommentLikeRepository{}

func (UnimplementedCommentLikeRepository) AddLike(context.Context, string, string) (string, error) {
	return "", NewNotImplementedError(commentLikeRepositoryScope)
}

func (UnimplementedCommentLikeRepository) DeleteLike(context.Context, string, string) error {
	return NewNotImplementedError(commentLikeRepositoryScope)
}

func (UnimplementedCommentLikeRepository) IsCommentLiked(context.Context, string, string) (bool, error) {
	return false, NewNotImplementedError(commentLikeRepositoryScope)
}

func (UnimplementedCommentLikeRepository) GetLikeCountsByCommentIDs(context.Context, []string) (map[string]int64, error) {
	return nil, NewNotImplementedError(commentLikeRepositoryScope)
}
