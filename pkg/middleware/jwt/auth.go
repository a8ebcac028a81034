package jwt

import (
	"errors"
	"log/slog"
	"net/http"

	"torneos/internal/modules/user"
	"torneos/pkg/lib/jwt"
	resp "torneos/pkg/lib/response"
)

type TokenValidator interface {
	ValidateJWT(token string) (*jwt.CustomClaims, error)
}

// NewUserAuth rejects requests without a valid bearer token and stores the
// caller as a user.Principal in the request context.
func NewUserAuth(log *slog.Logger, tokens TokenValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("op", "middlewareAuth"))

		log.Info("auth middleware enabled")

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := jwt.ExtractJWTFromHeader(r)
			if err != nil {
				handleAuthError(w, r, log, err)
				return
			}

			claims, err := tokens.ValidateJWT(tokenStr)
			if err != nil {
				handleAuthError(w, r, log, err)
				return
			}

			ctx := user.WithPrincipal(r.Context(), user.Principal{
				ID:   claims.UserID,
				Role: user.ParseRole(claims.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles lets through only principals holding one of roles. It must run
// after NewUserAuth.
func RequireRoles(log *slog.Logger, roles ...user.Role) func(next http.Handler) http.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("op", "middlewareRequireRoles"))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := user.PrincipalFrom(r.Context())
			if !ok {
				log.Warn("role check without principal")
				resp.SendError(w, r, http.StatusUnauthorized, "No autenticado")
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				log.Info("role not allowed", slog.Uint64("userID", uint64(p.ID)), slog.String("role", p.Role.String()))
				resp.SendError(w, r, http.StatusForbidden, "No tienes permisos para realizar esta acción")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleAuthError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	log.Warn("auth error", slog.String("error", err.Error()))
	switch {
	case errors.Is(err, jwt.ErrNoAccessToken):
		resp.SendError(w, r, http.StatusUnauthorized, "Token no proporcionado")
	case errors.Is(err, jwt.ErrExpiredToken):
		resp.SendError(w, r, http.StatusUnauthorized, "Token expirado")
	default:
		resp.SendError(w, r, http.StatusUnauthorized, "Token inválido")
	}
}
