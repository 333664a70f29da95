package recommend

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
)

// Service recommends films through user-based collaborative filtering: find
// the users whose like-sets overlap the target's the most, and offer what
// they liked that the target hasn't seen yet.
type Service struct {
	likeRepo domain.LikeRepository
	filmRepo domain.FilmRepository
}

var _ domain.RecommendationUsecase = (*Service)(nil)

func NewService(likeRepo domain.LikeRepository, filmRepo domain.FilmRepository) *Service {
	return &Service{
		likeRepo: likeRepo,
		filmRepo: filmRepo,
	}
}

// ForUser never returns a business error: a user with no likes, or with no
// neighbors who liked anything beyond the shared films, simply gets an
// empty list.
func (s *Service) ForUser(ctx context.Context, userID int64) ([]domain.Film, error) {
	liked, err := s.likeRepo.FilmsLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return []domain.Film{}, nil
	}

	// One batched query yields, per other user, the subset of the target's
	// liked films that user also liked. The subset size is the overlap.
	overlaps, err := s.likeRepo.LikesWithin(ctx, liked, userID)
	if err != nil {
		return nil, err
	}
	if len(overlaps) == 0 {
		return []domain.Film{}, nil
	}

	maxOverlap := 0
	for _, films := range overlaps {
		if len(films) > maxOverlap {
			maxOverlap = len(films)
		}
	}

	likedSet := make(map[int64]struct{}, len(liked))
	for _, id := range liked {
		likedSet[id] = struct{}{}
	}

	// All users at the maximum contribute; ties are deliberately not broken.
	candidates := make(map[int64]struct{})
	for neighborID, films := range overlaps {
		if len(films) != maxOverlap {
			continue
		}
		neighborLiked, err := s.likeRepo.FilmsLikedBy(ctx, neighborID)
		if err != nil {
			return nil, err
		}
		for _, filmID := range neighborLiked {
			if _, own := likedSet[filmID]; !own {
				candidates[filmID] = struct{}{}
			}
		}
	}
	if len(candidates) == 0 {
		return []domain.Film{}, nil
	}

	ids := make([]int64, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}

	films, err := s.filmRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	logrus.Infof("recommended %d films for user %d (max overlap %d)", len(films), userID, maxOverlap)
	return films, nil
}
