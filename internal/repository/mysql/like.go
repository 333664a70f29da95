package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

// Add inserts a like record. A duplicate insert hits the primary key and is
// swallowed as a successful no-op.
func (m *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	like := model.FilmLike{
		FilmID: filmID,
		UserID: userID,
	}
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

func (m *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	return m.DB.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&model.FilmLike{}).Error
}

func (m *likeRepository) FilmsLikedBy(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.FilmLike{}).
		Where("user_id = ?", userID).
		Pluck("film_id", &ids).
		Error
	return ids, err
}

func (m *likeRepository) UsersWhoLiked(ctx context.Context, filmID int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.FilmLike{}).
		Where("film_id = ?", filmID).
		Pluck("user_id", &ids).
		Error
	return ids, err
}

// LikesWithin fetches all like rows touching the given films in one query
// and groups them per user, the shape the recommendation engine consumes.
func (m *likeRepository) LikesWithin(ctx context.Context, filmIDs []int64, excludeUserID int64) (map[int64][]int64, error) {
	if len(filmIDs) == 0 {
		return map[int64][]int64{}, nil
	}

	var likes []model.FilmLike
	err := m.DB.WithContext(ctx).
		Where("film_id IN ? AND user_id <> ?", filmIDs, excludeUserID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	res := make(map[int64][]int64)
	for i := range likes {
		res[likes[i].UserID] = append(res[likes[i].UserID], likes[i].FilmID)
	}
	return res, nil
}
