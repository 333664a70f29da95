package user

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
)

type Service struct {
	userRepo  domain.UserRepository
	feed      domain.FeedUsecase
	recommend domain.RecommendationUsecase
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository, feed domain.FeedUsecase, recommend domain.RecommendationUsecase) *Service {
	return &Service{
		userRepo:  userRepo,
		feed:      feed,
		recommend: recommend,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *Service) Store(ctx context.Context, u *domain.User) error {
	if err := normalize(u); err != nil {
		return err
	}
	return s.userRepo.Store(ctx, u)
}

func (s *Service) Update(ctx context.Context, u *domain.User) error {
	if err := normalize(u); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, u.ID); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// AddFriend is one-directional: only the requesting user gains a friend.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.checkPair(ctx, userID, friendID); err != nil {
		return err
	}
	if err := s.userRepo.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	if err := s.feed.AddFriendEvent(ctx, userID, friendID); err != nil {
		return err
	}

	logrus.Infof("user %d added user %d as a friend", userID, friendID)
	return nil
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.checkPair(ctx, userID, friendID); err != nil {
		return err
	}
	if err := s.userRepo.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	return s.feed.RemoveFriendEvent(ctx, userID, friendID)
}

func (s *Service) GetFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.GetFriends(ctx, userID)
}

func (s *Service) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	if err := s.checkPair(ctx, userID, otherID); err != nil {
		return nil, err
	}
	return s.userRepo.GetCommonFriends(ctx, userID, otherID)
}

func (s *Service) GetRecommendations(ctx context.Context, userID int64) ([]domain.Film, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.recommend.ForUser(ctx, userID)
}

func (s *Service) checkPair(ctx context.Context, userID, otherID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return err
	}
	return nil
}

// normalize rejects logins containing spaces and defaults a blank display
// name to the login.
func normalize(u *domain.User) error {
	if strings.Contains(u.Login, " ") {
		return domain.ErrBadParamInput
	}
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
	return nil
}
