package domain

import "context"

// NewThread is a validated thread creation payload
type NewThread struct {
	Title string
	Body  string
}

// ParseNewThread validates a user supplied {title, body} record.
func ParseNewThread(p Payload) (NewThread, error) {
	v, err := p.Strings("NEW_THREAD", "title", "body")
	if err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: v[0], Body: v[1]}, nil
}

// AddedThread is what the thread port returns after a successful insert
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func ParseAddedThread(p Payload) (AddedThread, error) {
	v, err := p.Strings("ADDED_THREAD", "id", "title", "owner")
	if err != nil {
		return AddedThread{}, err
	}
	return AddedThread{ID: v[0], Title: v[1], Owner: v[2]}, nil
}

func (a AddedThread) Validate() error {
	_, err := ParseAddedThread(Payload{"id": a.ID, "title": a.Title, "owner": a.Owner})
	return err
}

// Thread is a stored thread as read back for display.
// Date is an ISO-8601 string; Username is the owner's username.
type Thread struct {
	ID       string
	Title    string
	Body     string
	Date     string
	Username string
}

// DetailThread is the read model of one thread with its comments, replies
// and like counts. It is rebuilt on every read.
type DetailThread struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	Date     string        `json:"date"`
	Username string        `json:"username"`
	Comments []CommentView `json:"comments"`
}

// ParseDetailThread validates the full read-model shape.
func ParseDetailThread(p Payload) (DetailThread, error) {
	const scope = "DETAIL_THREAD"
	if !p.present("comments") {
		return DetailThread{}, NewValidationError(scope, ReasonMissingProperty)
	}
	v, err := p.Strings(scope, "id", "title", "body", "date", "username")
	if err != nil {
		return DetailThread{}, err
	}
	comments, ok := p["comments"].([]CommentView)
	if !ok {
		return DetailThread{}, NewValidationError(scope, ReasonDataType)
	}

	return DetailThread{
		ID:       v[0],
		Title:    v[1],
		Body:     v[2],
		Date:     v[3],
		Username: v[4],
		Comments: comments,
	}, nil
}

func (d DetailThread) Validate() error {
	_, err := ParseDetailThread(Payload{
		"id":       d.ID,
		"title":    d.Title,
		"body":     d.Body,
		"date":     d.Date,
		"username": d.Username,
		"comments": d.Comments,
	})
	return err
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread stores a new thread owned by owner.
	AddThread(ctx context.Context, owner string, nt NewThread) (AddedThread, error)

	// VerifyThreadAvailability returns ErrNotFound if the thread doesn't exist.
	VerifyThreadAvailability(ctx context.Context, threadID string) error

	// GetThreadByID returns ErrNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (Thread, error)
}

// ThreadDBRepository is the database side of ThreadRepository, able to list
// every thread ID for seeding the bloom filter.
type ThreadDBRepository interface {
	ThreadRepository

	// FetchIDs returns up to limit IDs greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, owner string, p Payload) (AddedThread, error)
	GetThreadDetail(ctx context.Context, threadID string) (DetailThread, error)
}
