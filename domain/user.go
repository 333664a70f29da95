package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
type User struct {
	ID       int64     // Unique identifier
	Email    string    // E-mail address
	Login    string    // Login name, no whitespace allowed
	Name     string    // Display name; defaults to Login when blank
	Birthday time.Time // Date of birth, never in the future
}

// UserRepository defines the contract for user data persistence.
// Friendship rows are one-directional: adding a friend does not create
// the reverse record.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	GetAll(ctx context.Context) ([]User, error)

	// Store creates a new user account and backfills the ID.
	Store(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// Delete removes a user together with their likes and friendships.
	Delete(ctx context.Context, id int64) error

	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]User, error)
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Store(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error

	// AddFriend and RemoveFriend toggle a friendship and record the
	// matching feed event.
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]User, error)

	// GetRecommendations returns films the user is likely to enjoy.
	GetRecommendations(ctx context.Context, userID int64) ([]Film, error)
}
