package request

import (
	"time"

	"github.com/filmorate/backend/domain"
)

type User struct {
	ID       int64  `json:"id"` // for UPDATE
	Email    string `json:"email" binding:"required,email"`
	Login    string `json:"login" binding:"required"`
	Name     string `json:"name"`
	Birthday string `json:"birthday" binding:"required"`
}

// ToDomain: Request -> Domain. The birthday may not lie in the future.
func (r *User) ToDomain() (domain.User, error) {
	birthday, err := time.Parse(dateLayout, r.Birthday)
	if err != nil {
		return domain.User{}, domain.ErrBadParamInput
	}
	if birthday.After(time.Now()) {
		return domain.User{}, domain.ErrBadParamInput
	}

	return domain.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: birthday,
	}, nil
}
