package model

import (
	"database/sql"
	"time"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(id, owner string, nt domain.NewThread) *Thread {
	return &Thread{
		ID:    id,
		Title: nt.Title,
		Body:  nt.Body,
		Owner: owner,
	}
}

func (m *Thread) ToAdded() domain.AddedThread {
	return domain.AddedThread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.Owner,
	}
}

// ThreadRow is a thread joined with its owner's username
type ThreadRow struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	Username  sql.NullString
}

func (r *ThreadRow) ToDomain() domain.Thread {
	return domain.Thread{
		ID:       r.ID,
		Title:    r.Title,
		Body:     r.Body,
		Date:     repository.FormatDate(r.CreatedAt),
		Username: r.Username.String,
	}
}
