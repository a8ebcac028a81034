package controller

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"torneos/internal/modules/user/auth"
	"torneos/pkg/lib/validate"
)

type AuthController struct {
	log      *slog.Logger
	uc       auth.UseCase
	validate *validator.Validate
}

func NewAuthController(log *slog.Logger, uc auth.UseCase) *AuthController {
	return &AuthController{
		log:      log,
		uc:       uc,
		validate: validate.New(),
	}
}
