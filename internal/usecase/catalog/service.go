package catalog

import (
	"context"

	"github.com/filmorate/backend/domain"
)

// Service serves the fixed genre and MPA rating reference data.
type Service struct {
	genreRepo domain.GenreRepository
	mpaRepo   domain.MpaRepository
}

var _ domain.CatalogUsecase = (*Service)(nil)

func NewService(genreRepo domain.GenreRepository, mpaRepo domain.MpaRepository) *Service {
	return &Service{
		genreRepo: genreRepo,
		mpaRepo:   mpaRepo,
	}
}

func (s *Service) GetAllGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.genreRepo.GetAll(ctx)
}

func (s *Service) GetGenreByID(ctx context.Context, id int64) (domain.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *Service) GetAllMpa(ctx context.Context) ([]domain.MpaRating, error) {
	return s.mpaRepo.GetAll(ctx)
}

func (s *Service) GetMpaByID(ctx context.Context, id int64) (domain.MpaRating, error) {
	return s.mpaRepo.GetByID(ctx, id)
}
