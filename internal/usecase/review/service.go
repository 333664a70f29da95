package review

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
)

type Service struct {
	reviewRepo domain.ReviewRepository
	userRepo   domain.UserRepository
	filmRepo   domain.FilmRepository
	feed       domain.FeedUsecase
}

var _ domain.ReviewUsecase = (*Service)(nil)

// NewService will create a new review service object
func NewService(
	reviewRepo domain.ReviewRepository,
	userRepo domain.UserRepository,
	filmRepo domain.FilmRepository,
	feed domain.FeedUsecase,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		filmRepo:   filmRepo,
		feed:       feed,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// Fetch lists reviews ordered most useful first. filmID == 0 means all films.
func (s *Service) Fetch(ctx context.Context, filmID int64, count int) ([]domain.Review, error) {
	if count <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if filmID == 0 {
		return s.reviewRepo.FetchAll(ctx, count)
	}
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return nil, err
	}
	return s.reviewRepo.FetchByFilm(ctx, filmID, count)
}

func (s *Service) Store(ctx context.Context, r *domain.Review) error {
	if err := s.checkAuthorAndFilm(ctx, r); err != nil {
		return err
	}
	if err := s.reviewRepo.Store(ctx, r); err != nil {
		return err
	}
	if err := s.feed.AddReviewEvent(ctx, r.UserID, r.ID); err != nil {
		return err
	}

	logrus.Infof("user %d reviewed film %d (review %d)", r.UserID, r.FilmID, r.ID)
	return nil
}

// Update changes only the content and verdict. The feed event is attributed
// to the review's original author, not the caller.
func (s *Service) Update(ctx context.Context, r *domain.Review) error {
	stored, err := s.reviewRepo.GetByID(ctx, r.ID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return err
	}
	if err := s.feed.UpdateReviewEvent(ctx, stored.UserID, stored.ID); err != nil {
		return err
	}

	*r, err = s.reviewRepo.GetByID(ctx, r.ID)
	return err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	stored, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.feed.RemoveReviewEvent(ctx, stored.UserID, stored.ID)
}

// Reactions adjust a review's usefulness. They are not feed-worthy activity,
// so no event is recorded.

func (s *Service) AddLike(ctx context.Context, reviewID, userID int64) error {
	return s.react(ctx, reviewID, userID, true)
}

func (s *Service) AddDislike(ctx context.Context, reviewID, userID int64) error {
	return s.react(ctx, reviewID, userID, false)
}

func (s *Service) RemoveReaction(ctx context.Context, reviewID, userID int64) error {
	if err := s.checkReactionPair(ctx, reviewID, userID); err != nil {
		return err
	}
	if err := s.reviewRepo.RemoveReaction(ctx, reviewID, userID); err != nil {
		return err
	}
	return s.reviewRepo.RecalcUseful(ctx, reviewID)
}

func (s *Service) react(ctx context.Context, reviewID, userID int64, isLike bool) error {
	if err := s.checkReactionPair(ctx, reviewID, userID); err != nil {
		return err
	}
	if err := s.reviewRepo.AddReaction(ctx, reviewID, userID, isLike); err != nil {
		return err
	}
	return s.reviewRepo.RecalcUseful(ctx, reviewID)
}

func (s *Service) checkReactionPair(ctx context.Context, reviewID, userID int64) error {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

func (s *Service) checkAuthorAndFilm(ctx context.Context, r *domain.Review) error {
	if _, err := s.userRepo.GetByID(ctx, r.UserID); err != nil {
		return err
	}
	if _, err := s.filmRepo.GetByID(ctx, r.FilmID); err != nil {
		return err
	}
	return nil
}
