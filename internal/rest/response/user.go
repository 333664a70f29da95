package response

import (
	"github.com/filmorate/backend/domain"
)

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// FromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday.Format(dateLayout),
	}
}

func NewUsersFromDomain(users []domain.User) []User {
	res := make([]User, len(users))
	for i := range users {
		res[i] = NewUserFromDomain(&users[i])
	}
	return res
}
