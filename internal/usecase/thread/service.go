package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/forum-api/domain"
)

const (
	DefaultCommentDeletedMarker = "**komentar telah dihapus**"
	DefaultReplyDeletedMarker   = "**balasan telah dihapus**"
)

type Service struct {
	threadRepo      domain.ThreadRepository
	commentRepo     domain.CommentRepository
	replyRepo       domain.ReplyRepository
	commentLikeRepo domain.CommentLikeRepository

	commentDeletedMarker string
	replyDeletedMarker   string
}

var _ domain.ThreadUsecase = (*Service)(nil)

type Option func(*Service)

// WithDeletedMarkers overrides the placeholders rendered in place of soft
// deleted content. Empty values keep the defaults.
func WithDeletedMarkers(comment, reply string) Option {
	return func(s *Service) {
		if comment != "" {
			s.commentDeletedMarker = comment
		}
		if reply != "" {
			s.replyDeletedMarker = reply
		}
	}
}

// NewService will create a new thread service object
func NewService(
	t domain.ThreadRepository,
	c domain.CommentRepository,
	r domain.ReplyRepository,
	l domain.CommentLikeRepository,
	opts ...Option,
) *Service {
	s := &Service{
		threadRepo:           t,
		commentRepo:          c,
		replyRepo:            r,
		commentLikeRepo:      l,
		commentDeletedMarker: DefaultCommentDeletedMarker,
		replyDeletedMarker:   DefaultReplyDeletedMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) AddThread(ctx context.Context, owner string, p domain.Payload) (domain.AddedThread, error) {
	nt, err := domain.ParseNewThread(p)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := s.threadRepo.AddThread(ctx, owner, nt)
	if err != nil {
		return domain.AddedThread{}, err
	}
	if err := added.Validate(); err != nil {
		return domain.AddedThread{}, err
	}
	return added, nil
}

// GetThreadDetail composes the thread, its comments, their replies and like
// counts. Replies and like counts are fetched in one batched call each.
func (s *Service) GetThreadDetail(ctx context.Context, threadID string) (domain.DetailThread, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	commentIDs := make([]string, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
	}

	var (
		replies    []domain.Reply
		likeCounts map[string]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		replies, err = s.replyRepo.GetRepliesByCommentIDs(gctx, commentIDs)
		return err
	})
	g.Go(func() error {
		var err error
		likeCounts, err = s.commentLikeRepo.GetLikeCountsByCommentIDs(gctx, commentIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DetailThread{}, err
	}

	groups := s.groupReplies(replies)

	views := make([]domain.CommentView, len(comments))
	for i, c := range comments {
		content := c.Content
		if c.State.IsDeleted() {
			content = s.commentDeletedMarker
		}
		views[i] = domain.CommentView{
			ID:        c.ID,
			Username:  c.Username,
			Date:      c.Date,
			Content:   content,
			LikeCount: likeCounts[c.ID],
			Replies:   groups.get(c.ID),
		}
	}

	res := domain.DetailThread{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: views,
	}
	// stored rows the read model can't carry, e.g. an owner row that is gone
	if err := res.Validate(); err != nil {
		return domain.DetailThread{}, domain.AsInternal(err)
	}
	return res, nil
}

// groupReplies buckets replies by comment ID in a single pass, keeping the
// port's order inside each bucket.
func (s *Service) groupReplies(replies []domain.Reply) *replyGroups {
	groups := newReplyGroups()
	for _, r := range replies {
		content := r.Content
		if r.State.IsDeleted() {
			content = s.replyDeletedMarker
		}
		groups.add(r.CommentID, domain.ReplyView{
			ID:       r.ID,
			Username: r.Username,
			Date:     r.Date,
			Content:  content,
		})
	}
	return groups
}
