package auth

import (
	"context"
	"net/http"

	"torneos/internal/modules/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@torneos.local"`
	Password string `json:"password" validate:"required" example:"secret"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        *user.User `json:"usuario"`
}

type Controller interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
}

type Repo interface {
	// GetUserByEmail returns the user with its role name loaded, or
	// user.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}

type TokenIssuer interface {
	GenerateAccessToken(userID uint, role string) (string, error)
}
