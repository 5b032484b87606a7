package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(id, commentID, owner string, nr domain.NewReply) *Reply {
	return &Reply{
		ID:        id,
		CommentID: commentID,
		Content:   nr.Content,
		Owner:     owner,
	}
}

func (m *Reply) ToAdded() domain.AddedReply {
	return domain.AddedReply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

type ReplyRow struct {
	ID        string
	CommentID string
	Content   string
	IsDelete  bool
	CreatedAt time.Time
	Username  sql.NullString
}

func (r *ReplyRow) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        r.ID,
		CommentID: r.CommentID,
		Username:  r.Username.String,
		Date:      repository.FormatDate(r.CreatedAt),
		Content:   r.Content,
		State:     domain.DeleteStateOf(r.IsDelete),
	}
}
