package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(id, threadID, owner string, nc domain.NewComment) *Comment {
	return &Comment{
		ID:       id,
		ThreadID: threadID,
		Content:  nc.Content,
		Owner:    owner,
	}
}

func (m *Comment) ToAdded() domain.AddedComment {
	return domain.AddedComment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.Owner,
	}
}

type CommentRow struct {
	ID        string
	ThreadID  string
	Content   string
	IsDelete  bool
	CreatedAt time.Time
	Username  sql.NullString
}

func (r *CommentRow) ToDomain() domain.Comment {
	return domain.Comment{
		ID:       r.ID,
		ThreadID: r.ThreadID,
		Username: r.Username.String,
		Date:     repository.FormatDate(r.CreatedAt),
		Content:  r.Content,
		State:    domain.DeleteStateOf(r.IsDelete),
	}
}
