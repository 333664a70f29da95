package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type directorRepository struct {
	DB *gorm.DB
}

var _ domain.DirectorRepository = (*directorRepository)(nil)

func NewDirectorRepository(db *gorm.DB) *directorRepository {
	return &directorRepository{db}
}

func (m *directorRepository) GetAll(ctx context.Context) ([]domain.Director, error) {
	var directors []model.Director
	err := m.DB.WithContext(ctx).Order("director_id").Find(&directors).Error
	if err != nil {
		return nil, err
	}
	return toDomainDirectors(directors), nil
}

func (m *directorRepository) GetByID(ctx context.Context, id int64) (domain.Director, error) {
	var director model.Director
	if err := m.DB.WithContext(ctx).First(&director, "director_id = ?", id).Error; err != nil {
		return domain.Director{}, domain.ErrNotFound
	}
	return director.ToDomain(), nil
}

func (m *directorRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Director, error) {
	var directors []model.Director
	err := m.DB.WithContext(ctx).Where("director_id IN ?", ids).Find(&directors).Error
	if err != nil {
		return nil, err
	}
	return toDomainDirectors(directors), nil
}

func (m *directorRepository) Store(ctx context.Context, d *domain.Director) error {
	directorModel := model.NewDirectorFromDomain(d)
	if err := m.DB.WithContext(ctx).Create(directorModel).Error; err != nil {
		return err
	}
	d.ID = directorModel.ID
	return nil
}

func (m *directorRepository) Update(ctx context.Context, d *domain.Director) error {
	result := m.DB.WithContext(ctx).Model(&model.Director{}).
		Where("director_id = ?", d.ID).
		Update("name", d.Name)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (m *directorRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("director_id = ?", id).Delete(&model.FilmDirector{}).Error; err != nil {
			return err
		}
		result := tx.Where("director_id = ?", id).Delete(&model.Director{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func toDomainDirectors(directors []model.Director) []domain.Director {
	res := make([]domain.Director, len(directors))
	for i := range directors {
		res[i] = directors[i].ToDomain()
	}
	return res
}
