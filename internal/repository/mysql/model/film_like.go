package model

import (
	"time"

	"github.com/filmorate/backend/domain"
)

type FilmLike struct {
	FilmID    int64     `gorm:"column:film_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (FilmLike) TableName() string {
	return "film_likes"
}

func NewFilmLikeFromDomain(fl domain.FilmLike) FilmLike {
	return FilmLike{
		FilmID:    fl.FilmID,
		UserID:    fl.UserID,
		CreatedAt: fl.CreatedAt,
	}
}
