package model

import "time"

// User is owned by the auth service. Reads only join its username.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (User) TableName() string {
	return "users"
}
