package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type reviewRepository struct {
	DB *gorm.DB
}

var _ domain.ReviewRepository = (*reviewRepository)(nil)

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db}
}

func (m *reviewRepository) Store(ctx context.Context, r *domain.Review) error {
	reviewModel := model.NewReviewFromDomain(r)
	if err := m.DB.WithContext(ctx).Create(reviewModel).Error; err != nil {
		return err
	}
	r.ID = reviewModel.ID
	return nil
}

// Update only touches the review text and verdict; author, film and useful
// score are not updatable through this path.
func (m *reviewRepository) Update(ctx context.Context, r *domain.Review) error {
	result := m.DB.WithContext(ctx).Model(&model.Review{}).
		Where("review_id = ?", r.ID).
		Updates(map[string]any{
			"content":     r.Content,
			"is_positive": r.IsPositive,
		})
	return result.Error
}

func (m *reviewRepository) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	var review model.Review
	if err := m.DB.WithContext(ctx).First(&review, "review_id = ?", id).Error; err != nil {
		return domain.Review{}, domain.ErrNotFound
	}
	return review.ToDomain(), nil
}

func (m *reviewRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&model.ReviewLike{}).Error; err != nil {
			return err
		}
		result := tx.Where("review_id = ?", id).Delete(&model.Review{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *reviewRepository) FetchAll(ctx context.Context, limit int) ([]domain.Review, error) {
	var reviews []model.Review
	err := m.DB.WithContext(ctx).
		Order("useful DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return toDomainReviews(reviews), nil
}

func (m *reviewRepository) FetchByFilm(ctx context.Context, filmID int64, limit int) ([]domain.Review, error) {
	var reviews []model.Review
	err := m.DB.WithContext(ctx).
		Where("film_id = ?", filmID).
		Order("useful DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return toDomainReviews(reviews), nil
}

// AddReaction upserts the reaction, so switching a like to a dislike is a
// single call.
func (m *reviewRepository) AddReaction(ctx context.Context, reviewID, userID int64, isLike bool) error {
	reaction := model.ReviewLike{
		ReviewID: reviewID,
		UserID:   userID,
		IsLike:   isLike,
	}
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&reaction).Error
}

func (m *reviewRepository) RemoveReaction(ctx context.Context, reviewID, userID int64) error {
	return m.DB.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewLike{}).Error
}

func (m *reviewRepository) RecalcUseful(ctx context.Context, reviewID int64) error {
	return m.DB.WithContext(ctx).Model(&model.Review{}).
		Where("review_id = ?", reviewID).
		Update("useful", gorm.Expr(`COALESCE((
			SELECT SUM(CASE WHEN is_like THEN 1 ELSE -1 END)
			FROM review_likes
			WHERE review_id = ?
		), 0)`, reviewID)).Error
}

func toDomainReviews(reviews []model.Review) []domain.Review {
	res := make([]domain.Review, len(reviews))
	for i := range reviews {
		res[i] = reviews[i].ToDomain()
	}
	return res
}
