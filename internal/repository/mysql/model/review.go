package model

import (
	"github.com/filmorate/backend/domain"
)

type Review struct {
	ID         int64  `gorm:"column:review_id;primaryKey;autoIncrement"`
	FilmID     int64  `gorm:"column:film_id;not null"`
	UserID     int64  `gorm:"column:user_id;not null"`
	Content    string `gorm:"type:text;not null"`
	IsPositive bool   `gorm:"column:is_positive;not null"`
	Useful     int    `gorm:"default:0"`
}

func (Review) TableName() string {
	return "reviews"
}

func (m *Review) ToDomain() domain.Review {
	return domain.Review{
		ID:         m.ID,
		FilmID:     m.FilmID,
		UserID:     m.UserID,
		Content:    m.Content,
		IsPositive: m.IsPositive,
		Useful:     m.Useful,
	}
}

func NewReviewFromDomain(r *domain.Review) *Review {
	return &Review{
		ID:         r.ID,
		FilmID:     r.FilmID,
		UserID:     r.UserID,
		Content:    r.Content,
		IsPositive: r.IsPositive,
		Useful:     r.Useful,
	}
}

type ReviewLike struct {
	ReviewID int64 `gorm:"column:review_id;primaryKey"`
	UserID   int64 `gorm:"column:user_id;primaryKey"`
	IsLike   bool  `gorm:"column:is_like;not null"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
