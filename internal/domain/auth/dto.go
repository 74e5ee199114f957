package auth

import (
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/user"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken  string            `json:"access_token"`
	ExpiresAt    int64             `json:"expires_at"`
	RefreshToken string            `json:"-"` // delivered via HttpOnly cookie
	RefreshExp   int64             `json:"-"`
	User         user.UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
