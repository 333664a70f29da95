package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type genreRepository struct {
	DB *gorm.DB
}

var _ domain.GenreRepository = (*genreRepository)(nil)

func NewGenreRepository(db *gorm.DB) *genreRepository {
	return &genreRepository{db}
}

func (m *genreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	var genres []model.Genre
	err := m.DB.WithContext(ctx).Order("genre_id").Find(&genres).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Genre, len(genres))
	for i := range genres {
		res[i] = genres[i].ToDomain()
	}
	return res, nil
}

func (m *genreRepository) GetByID(ctx context.Context, id int64) (domain.Genre, error) {
	var genre model.Genre
	if err := m.DB.WithContext(ctx).First(&genre, "genre_id = ?", id).Error; err != nil {
		return domain.Genre{}, domain.ErrNotFound
	}
	return genre.ToDomain(), nil
}

func (m *genreRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	var genres []model.Genre
	err := m.DB.WithContext(ctx).
		Where("genre_id IN ?", ids).
		Order("genre_id").
		Find(&genres).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Genre, len(genres))
	for i := range genres {
		res[i] = genres[i].ToDomain()
	}
	return res, nil
}

type mpaRepository struct {
	DB *gorm.DB
}

var _ domain.MpaRepository = (*mpaRepository)(nil)

func NewMpaRepository(db *gorm.DB) *mpaRepository {
	return &mpaRepository{db}
}

func (m *mpaRepository) GetAll(ctx context.Context) ([]domain.MpaRating, error) {
	var ratings []model.MpaRating
	err := m.DB.WithContext(ctx).Order("mpa_id").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.MpaRating, len(ratings))
	for i := range ratings {
		res[i] = ratings[i].ToDomain()
	}
	return res, nil
}

func (m *mpaRepository) GetByID(ctx context.Context, id int64) (domain.MpaRating, error) {
	var rating model.MpaRating
	if err := m.DB.WithContext(ctx).First(&rating, "mpa_id = ?", id).Error; err != nil {
		return domain.MpaRating{}, domain.ErrNotFound
	}
	return rating.ToDomain(), nil
}
