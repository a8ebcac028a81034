package controller

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	u "torneos/internal/modules/user"
	"torneos/internal/modules/user/auth"
)

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Login(ctx context.Context, email, password string) (*auth.LoginResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &auth.LoginResponse{
		AccessToken: "token",
		User:        &u.User{ID: 1, Email: email, PasswordHash: "hash"},
	}, nil
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantMsg  string
	}{
		{name: "ok", body: `{"email":"ana@example.com","password":"pw"}`, wantCode: http.StatusOK, wantMsg: "Inicio de sesión exitoso"},
		{name: "missing password", body: `{"email":"ana@example.com"}`, wantCode: http.StatusBadRequest, wantMsg: "Errores de validación"},
		{name: "bad json", body: `{`, wantCode: http.StatusBadRequest, wantMsg: "Errores de validación"},
		{name: "bad credentials", body: `{"email":"ana@example.com","password":"pw"}`, ucErr: u.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantMsg: "Credenciales inválidas"},
		{name: "inactive", body: `{"email":"ana@example.com","password":"pw"}`, ucErr: u.ErrUserInactive, wantCode: http.StatusForbidden, wantMsg: "Usuario inactivo. Contacte al administrador"},
		{name: "server error", body: `{"email":"ana@example.com","password":"pw"}`, ucErr: u.ErrInternal, wantCode: http.StatusInternalServerError, wantMsg: "Error en el servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeUseCase{err: tt.ucErr})

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ctrl.Login(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["message"])

			if tt.wantCode == http.StatusOK {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "token", data["access_token"])
				usuario := data["usuario"].(map[string]interface{})
				assert.NotContains(t, usuario, "password_hash")
			}
		})
	}
}
