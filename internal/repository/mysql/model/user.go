package model

import (
	"time"

	"github.com/filmorate/backend/domain"
)

type User struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Email    string    `gorm:"type:varchar(100);not null"`
	Login    string    `gorm:"type:varchar(50);not null"`
	Name     string    `gorm:"type:varchar(100)"`
	Birthday time.Time `gorm:"type:date"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:       m.ID,
		Email:    m.Email,
		Login:    m.Login,
		Name:     m.Name,
		Birthday: m.Birthday,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
}

// Friendship is a one-directional friend record.
type Friendship struct {
	UserID   int64 `gorm:"column:user_id;primaryKey"`
	FriendID int64 `gorm:"column:friend_id;primaryKey"`
}

func (Friendship) TableName() string {
	return "friendships"
}
