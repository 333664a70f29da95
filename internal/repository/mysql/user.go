package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, domain.ErrNotFound
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

func (m *userRepository) Store(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return result.Error
	}
	u.ID = userModel.ID
	return nil
}

func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	return m.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", u.ID).
		Select("Email", "Login", "Name", "Birthday").
		Updates(userModel).Error
}

func (m *userRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.FilmLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR friend_id = ?", id, id).Delete(&model.Friendship{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// AddFriend inserts the one-directional friend record. A repeated add hits
// the primary key and is swallowed as a successful no-op.
func (m *userRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	friendship := &model.Friendship{
		UserID:   userID,
		FriendID: friendID,
	}
	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(friendship).Error
}

func (m *userRepository) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return m.DB.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&model.Friendship{}).Error
}

func (m *userRepository) GetFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN friendships f ON f.friend_id = users.id").
		Where("f.user_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

func (m *userRepository) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN friendships f1 ON f1.friend_id = users.id AND f1.user_id = ?", userID).
		Joins("JOIN friendships f2 ON f2.friend_id = users.id AND f2.user_id = ?", otherID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}
