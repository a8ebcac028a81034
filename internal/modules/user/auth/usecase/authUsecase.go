package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	u "torneos/internal/modules/user"
	"torneos/internal/modules/user/auth"
)

type AuthUseCase struct {
	log    *slog.Logger
	rp     auth.Repo
	tokens auth.TokenIssuer
}

func NewAuthUseCase(log *slog.Logger, rp auth.Repo, tokens auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		log:    log,
		rp:     rp,
		tokens: tokens,
	}
}

// Login checks the account state before the password, so an inactive user
// gets ErrUserInactive even with a wrong password.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*auth.LoginResponse, error) {
	log := uc.log.With(slog.String("op", "AuthUseCase.Login"))

	user, err := uc.rp.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, u.ErrUserNotFound) {
			return nil, u.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		log.Info("inactive user tried to log in", slog.Uint64("userID", uint64(user.ID)))
		return nil, u.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, u.ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateAccessToken(user.ID, user.Role().String())
	if err != nil {
		log.Error("failed to sign access token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", u.ErrInternal, err)
	}

	log.Info("user logged in", slog.Uint64("userID", uint64(user.ID)), slog.String("role", user.Role().String()))
	return &auth.LoginResponse{AccessToken: token, User: user}, nil
}
