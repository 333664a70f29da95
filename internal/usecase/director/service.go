package director

import (
	"context"

	"github.com/filmorate/backend/domain"
)

type Service struct {
	directorRepo domain.DirectorRepository
}

var _ domain.DirectorUsecase = (*Service)(nil)

func NewService(directorRepo domain.DirectorRepository) *Service {
	return &Service{directorRepo: directorRepo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Director, error) {
	return s.directorRepo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Director, error) {
	return s.directorRepo.GetAll(ctx)
}

func (s *Service) Store(ctx context.Context, d *domain.Director) error {
	return s.directorRepo.Store(ctx, d)
}

func (s *Service) Update(ctx context.Context, d *domain.Director) error {
	if _, err := s.directorRepo.GetByID(ctx, d.ID); err != nil {
		return err
	}
	return s.directorRepo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.directorRepo.Delete(ctx, id)
}
