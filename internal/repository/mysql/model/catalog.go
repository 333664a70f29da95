package model

import (
	"github.com/filmorate/backend/domain"
)

type Genre struct {
	ID   int64  `gorm:"column:genre_id;primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);not null"`
}

func (Genre) TableName() string {
	return "genres"
}

func (m *Genre) ToDomain() domain.Genre {
	return domain.Genre{ID: m.ID, Name: m.Name}
}

type MpaRating struct {
	ID          int64  `gorm:"column:mpa_id;primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(10);not null"`
	Description string `gorm:"type:varchar(100)"`
}

func (MpaRating) TableName() string {
	return "mpa_ratings"
}

func (m *MpaRating) ToDomain() domain.MpaRating {
	return domain.MpaRating{ID: m.ID, Name: m.Name, Description: m.Description}
}

type Director struct {
	ID   int64  `gorm:"column:director_id;primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

func (Director) TableName() string {
	return "directors"
}

func (m *Director) ToDomain() domain.Director {
	return domain.Director{ID: m.ID, Name: m.Name}
}

func NewDirectorFromDomain(d *domain.Director) *Director {
	return &Director{ID: d.ID, Name: d.Name}
}
