package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"torneos/internal/modules/team"
	appMiddleware "torneos/pkg/middleware/jwt"
)

// Routes mounts the team endpoints. Reads are public. Writes require auth,
// and POST/PUT also require a role that may create teams. writeLimit caps
// writes per minute per IP; zero disables it.
func Routes(ctrl team.Controller, auth func(http.Handler) http.Handler, log *slog.Logger, writeLimit int) func(r chi.Router) {
	writers := appMiddleware.RequireRoles(log, team.RolesFor(team.ActionCreate)...)

	return func(r chi.Router) {
		r.Get("/", ctrl.ListTeams)
		r.Get("/{id}", ctrl.GetTeam)
		r.Get("/{id}/jugadores", ctrl.GetTeamPlayers)

		r.Group(func(r chi.Router) {
			if writeLimit > 0 {
				r.Use(httprate.Limit(writeLimit, 1*time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			}
			r.Use(auth)
			r.With(writers).Post("/", ctrl.CreateTeam)
			r.With(writers).Put("/{id}", ctrl.UpdateTeam)
			r.Delete("/{id}", ctrl.DeleteTeam)
		})
	}
}
