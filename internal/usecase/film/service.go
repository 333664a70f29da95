package film

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
)

type Service struct {
	filmRepo     domain.FilmRepository
	userRepo     domain.UserRepository
	likeRepo     domain.LikeRepository
	genreRepo    domain.GenreRepository
	mpaRepo      domain.MpaRepository
	directorRepo domain.DirectorRepository
	feed         domain.FeedUsecase
}

var _ domain.FilmUsecase = (*Service)(nil)

// NewService will create a new film service object
func NewService(
	filmRepo domain.FilmRepository,
	userRepo domain.UserRepository,
	likeRepo domain.LikeRepository,
	genreRepo domain.GenreRepository,
	mpaRepo domain.MpaRepository,
	directorRepo domain.DirectorRepository,
	feed domain.FeedUsecase,
) *Service {
	return &Service{
		filmRepo:     filmRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		genreRepo:    genreRepo,
		mpaRepo:      mpaRepo,
		directorRepo: directorRepo,
		feed:         feed,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Film, error) {
	return s.filmRepo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Film, error) {
	return s.filmRepo.GetAll(ctx)
}

func (s *Service) Store(ctx context.Context, f *domain.Film) error {
	if err := s.validate(ctx, f); err != nil {
		return err
	}
	return s.filmRepo.Store(ctx, f)
}

func (s *Service) Update(ctx context.Context, f *domain.Film) error {
	if err := s.validate(ctx, f); err != nil {
		return err
	}
	if _, err := s.filmRepo.GetByID(ctx, f.ID); err != nil {
		return err
	}
	return s.filmRepo.Update(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id int64) (domain.Film, error) {
	deleted, err := s.filmRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Film{}, err
	}
	if err := s.filmRepo.Delete(ctx, id); err != nil {
		return domain.Film{}, err
	}
	return deleted, nil
}

// AddLike is idempotent: a repeated like changes nothing and raises no
// error. The feed event is recorded after the like is persisted.
func (s *Service) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkLikePair(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.likeRepo.Add(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.feed.AddLikeEvent(ctx, userID, filmID); err != nil {
		return err
	}

	logrus.Infof("user %d liked film %d", userID, filmID)
	return nil
}

func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkLikePair(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.likeRepo.Remove(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.feed.RemoveLikeEvent(ctx, userID, filmID); err != nil {
		return err
	}

	logrus.Infof("user %d removed their like from film %d", userID, filmID)
	return nil
}

func (s *Service) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]domain.Film, error) {
	if count <= 0 {
		return nil, domain.ErrBadParamInput
	}
	return s.filmRepo.GetPopular(ctx, count, genreID, year)
}

func (s *Service) GetCommon(ctx context.Context, userID, friendID int64) ([]domain.Film, error) {
	return s.filmRepo.GetCommon(ctx, userID, friendID)
}

func (s *Service) GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]domain.Film, error) {
	if _, err := s.directorRepo.GetByID(ctx, directorID); err != nil {
		return nil, err
	}

	switch sortBy {
	case "year":
		return s.filmRepo.GetByDirectorSortedByYear(ctx, directorID)
	case "likes":
		return s.filmRepo.GetByDirectorSortedByLikes(ctx, directorID)
	default:
		return nil, domain.ErrBadParamInput
	}
}

func (s *Service) Search(ctx context.Context, query string, by string) ([]domain.Film, error) {
	byTitle := false
	byDirector := false
	for _, field := range strings.Split(by, ",") {
		switch strings.TrimSpace(field) {
		case "title":
			byTitle = true
		case "director":
			byDirector = true
		default:
			return nil, domain.ErrBadParamInput
		}
	}

	switch {
	case byTitle && byDirector:
		return s.filmRepo.SearchByTitleAndDirector(ctx, query)
	case byTitle:
		return s.filmRepo.SearchByTitle(ctx, query)
	case byDirector:
		return s.filmRepo.SearchByDirector(ctx, query)
	default:
		return nil, domain.ErrBadParamInput
	}
}

func (s *Service) checkLikePair(ctx context.Context, filmID, userID int64) error {
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}

// validate resolves the film's rating, genres and directors against the
// lookup tables and rejects impossible release dates.
func (s *Service) validate(ctx context.Context, f *domain.Film) error {
	if f.ReleaseDate.Before(domain.EarliestReleaseDate) {
		return domain.ErrBadParamInput
	}

	mpa, err := s.mpaRepo.GetByID(ctx, f.Mpa.ID)
	if err != nil {
		return err
	}
	f.Mpa = mpa

	if len(f.Genres) > 0 {
		seen := make(map[int64]bool, len(f.Genres))
		ids := make([]int64, 0, len(f.Genres))
		for _, g := range f.Genres {
			if !seen[g.ID] {
				seen[g.ID] = true
				ids = append(ids, g.ID)
			}
		}
		genres, err := s.genreRepo.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(genres) != len(ids) {
			return domain.ErrNotFound
		}
		f.Genres = genres
	}

	if len(f.Directors) > 0 {
		ids := make([]int64, 0, len(f.Directors))
		for _, d := range f.Directors {
			ids = append(ids, d.ID)
		}
		directors, err := s.directorRepo.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(directors) != len(ids) {
			return domain.ErrNotFound
		}
		f.Directors = directors
	}

	return nil
}
