package model

import "time"

type CommentLike struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:uq_comment_likes_comment_user"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:uq_comment_likes_comment_user"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// LikeCount is one row of a grouped count over comment_likes
type LikeCount struct {
	CommentID string
	Count     int64
}
