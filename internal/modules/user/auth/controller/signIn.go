package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	u "torneos/internal/modules/user"
	"torneos/internal/modules/user/auth"
	resp "torneos/pkg/lib/response"
	"torneos/pkg/lib/validate"
)

var loginMessages = validate.Messages{
	"email.required":    "El email es requerido",
	"email.email":       "El email no es válido",
	"password.required": "La contraseña es requerida",
}

// Login
// @Summary Log in
// @Tags auth
// @Description Checks e-mail and password and returns an access token with the user.
// @Accept json
// @Produce json
// @Param credentials body auth.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=auth.LoginResponse} "Inicio de sesión exitoso"
// @Failure 400 {object} response.Response "Errores de validación"
// @Failure 401 {object} response.ErrorResponse "Credenciales inválidas"
// @Failure 403 {object} response.ErrorResponse "Usuario inactivo. Contacte al administrador"
// @Failure 500 {object} response.Response "Error en el servidor"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AuthController.Login"))

	var req auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		resp.SendValidationError(w, r, err, loginMessages)
		return
	}

	if err := c.validate.Struct(req); err != nil {
		resp.SendValidationError(w, r, err, loginMessages)
		return
	}

	out, err := c.uc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, u.ErrInvalidCredentials):
			resp.SendError(w, r, http.StatusUnauthorized, "Credenciales inválidas")
		case errors.Is(err, u.ErrUserInactive):
			resp.SendError(w, r, http.StatusForbidden, "Usuario inactivo. Contacte al administrador")
		default:
			log.Error("login failed", slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error en el servidor", err)
		}
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, "Inicio de sesión exitoso", out)
}
