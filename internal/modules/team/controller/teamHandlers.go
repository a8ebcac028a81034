package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"torneos/internal/modules/team"
	"torneos/internal/modules/user"
	resp "torneos/pkg/lib/response"
	"torneos/pkg/lib/validate"
)

// teamPlayersResponse adds the team summary next to the player list.
type teamPlayersResponse struct {
	resp.Response
	Team team.TeamSummary `json:"equipo"`
}

// parseTeamID accepts only positive decimal integers.
func parseTeamID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func principal(w http.ResponseWriter, r *http.Request, log *slog.Logger) (user.Principal, bool) {
	p, ok := user.PrincipalFrom(r.Context())
	if !ok {
		log.Error("principal not found in context")
		resp.SendError(w, r, http.StatusUnauthorized, "No autenticado")
	}
	return p, ok
}

// ListTeams
// @Summary List teams
// @Tags equipos
// @Description Every team with its tournament and player count, ordered by tournament name then team name.
// @Produce json
// @Success 200 {object} response.Response{data=[]team.TeamDetail} "Equipos obtenidos exitosamente"
// @Failure 500 {object} response.Response "Error al obtener equipos"
// @Router /equipos [get]
func (c *TeamController) ListTeams(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.ListTeams"))

	teams, err := c.useCase.ListTeams(r.Context())
	if err != nil {
		log.Error("usecase ListTeams failed", slog.String("error", err.Error()))
		resp.SendInternalError(w, r, "Error al obtener equipos", err)
		return
	}

	resp.SendList(w, r, "Equipos obtenidos exitosamente", teams, len(teams))
}

// CreateTeam
// @Summary Create a team
// @Tags equipos
// @Accept json
// @Produce json
// @Param team body team.CreateTeamRequest true "Team data"
// @Success 201 {object} response.Response{data=team.Team} "Equipo creado exitosamente"
// @Failure 400 {object} response.Response "Errores de validación"
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "El torneo especificado no existe"
// @Failure 409 {object} response.ErrorResponse "Ya existe un equipo con ese nombre en este torneo"
// @Failure 500 {object} response.Response "Error al crear equipo"
// @Router /equipos [post]
// @Security ApiKeyAuth
func (c *TeamController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.CreateTeam"))

	p, ok := principal(w, r, log)
	if !ok {
		return
	}
	log = log.With(slog.Uint64("userID", uint64(p.ID)))

	var req team.CreateTeamRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		resp.SendValidationError(w, r, err, createMessages)
		return
	}
	req.Normalize()

	if err := c.validate.Struct(req); err != nil {
		log.Info("validation failed", slog.String("error", err.Error()))
		resp.SendValidationError(w, r, err, createMessages)
		return
	}

	created, err := c.useCase.CreateTeam(r.Context(), p, req)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrTeamAccessDenied):
			resp.SendError(w, r, http.StatusForbidden, "No tienes permisos para realizar esta acción")
		case errors.Is(err, team.ErrTournamentNotFound):
			resp.SendError(w, r, http.StatusNotFound, "El torneo especificado no existe")
		case errors.Is(err, team.ErrTeamNameTaken):
			resp.SendError(w, r, http.StatusConflict, "Ya existe un equipo con ese nombre en este torneo")
		default:
			log.Error("usecase CreateTeam failed", slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error al crear equipo", err)
		}
		return
	}

	resp.SendSuccess(w, r, http.StatusCreated, "Equipo creado exitosamente", created)
}

// GetTeam
// @Summary Get a team
// @Tags equipos
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.Response{data=team.TeamDetail} "Equipo encontrado"
// @Failure 400 {object} response.ErrorResponse "ID inválido"
// @Failure 404 {object} response.ErrorResponse "Equipo no encontrado"
// @Failure 500 {object} response.Response "Error al obtener equipo"
// @Router /equipos/{id} [get]
func (c *TeamController) GetTeam(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.GetTeam"))

	teamID, ok := parseTeamID(r)
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		return
	}

	detail, err := c.useCase.GetTeam(r.Context(), teamID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrInvalidTeamID):
			resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		case errors.Is(err, team.ErrTeamNotFound):
			resp.SendError(w, r, http.StatusNotFound, "Equipo no encontrado")
		default:
			log.Error("usecase GetTeam failed", slog.Int64("teamID", teamID), slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error al obtener equipo", err)
		}
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, "Equipo encontrado", detail)
}

// UpdateTeam
// @Summary Update a team
// @Tags equipos
// @Description Partial update. Absent fields are kept; null or blank color and representante clear them.
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body team.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} response.Response{data=team.Team} "Equipo actualizado exitosamente"
// @Failure 400 {object} response.Response "Errores de validación"
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "No tienes permisos para modificar este equipo"
// @Failure 404 {object} response.ErrorResponse "Equipo no encontrado"
// @Failure 409 {object} response.ErrorResponse "Ya existe otro equipo con ese nombre en este torneo"
// @Failure 500 {object} response.Response "Error al actualizar equipo"
// @Router /equipos/{id} [put]
// @Security ApiKeyAuth
func (c *TeamController) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.UpdateTeam"))

	p, ok := principal(w, r, log)
	if !ok {
		return
	}
	log = log.With(slog.Uint64("userID", uint64(p.ID)))

	var fieldErrs []validate.FieldError
	teamID, ok := parseTeamID(r)
	if !ok {
		fieldErrs = append(fieldErrs, validate.FieldError{
			Field:   "id",
			Message: updateMessages["id.int"],
			Rule:    "int",
		})
	}

	var req team.UpdateTeamRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", slog.String("error", err.Error()))
		resp.SendFieldErrors(w, r, append(fieldErrs, validate.Errors(err, updateMessages)...))
		return
	}
	req.Normalize()

	if err := c.validate.Struct(req); err != nil {
		fieldErrs = append(fieldErrs, validate.Errors(err, updateMessages)...)
	}
	if len(fieldErrs) > 0 {
		log.Info("validation failed", slog.Int("errors", len(fieldErrs)))
		resp.SendFieldErrors(w, r, fieldErrs)
		return
	}

	updated, err := c.useCase.UpdateTeam(r.Context(), p, teamID, req)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrInvalidTeamID):
			resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		case errors.Is(err, team.ErrTeamNotFound):
			resp.SendError(w, r, http.StatusNotFound, "Equipo no encontrado")
		case errors.Is(err, team.ErrTeamAccessDenied):
			resp.SendError(w, r, http.StatusForbidden, "No tienes permisos para modificar este equipo")
		case errors.Is(err, team.ErrTeamNameTaken):
			resp.SendError(w, r, http.StatusConflict, "Ya existe otro equipo con ese nombre en este torneo")
		default:
			log.Error("usecase UpdateTeam failed", slog.Int64("teamID", teamID), slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error al actualizar equipo", err)
		}
		return
	}

	resp.SendSuccess(w, r, http.StatusOK, "Equipo actualizado exitosamente", updated)
}

// DeleteTeam
// @Summary Delete a team
// @Tags equipos
// @Description Removes the team and, by cascade, its players.
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.Response "Equipo eliminado exitosamente"
// @Failure 400 {object} response.ErrorResponse "ID inválido"
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "No tienes permisos para eliminar este equipo"
// @Failure 404 {object} response.ErrorResponse "Equipo no encontrado"
// @Failure 500 {object} response.Response "Error al eliminar equipo"
// @Router /equipos/{id} [delete]
// @Security ApiKeyAuth
func (c *TeamController) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.DeleteTeam"))

	p, ok := principal(w, r, log)
	if !ok {
		return
	}

	teamID, ok := parseTeamID(r)
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		return
	}

	if err := c.useCase.DeleteTeam(r.Context(), p, teamID); err != nil {
		switch {
		case errors.Is(err, team.ErrInvalidTeamID):
			resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		case errors.Is(err, team.ErrTeamNotFound):
			resp.SendError(w, r, http.StatusNotFound, "Equipo no encontrado")
		case errors.Is(err, team.ErrTeamAccessDenied):
			resp.SendError(w, r, http.StatusForbidden, "No tienes permisos para eliminar este equipo")
		default:
			log.Error("usecase DeleteTeam failed", slog.Int64("teamID", teamID), slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error al eliminar equipo", err)
		}
		return
	}

	resp.SendMessage(w, r, http.StatusOK, "Equipo eliminado exitosamente")
}

// GetTeamPlayers
// @Summary List a team's players
// @Tags equipos
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} controller.teamPlayersResponse "Jugadores del equipo obtenidos exitosamente"
// @Failure 400 {object} response.ErrorResponse "ID inválido"
// @Failure 404 {object} response.ErrorResponse "Equipo no encontrado"
// @Failure 500 {object} response.Response "Error al obtener jugadores"
// @Router /equipos/{id}/jugadores [get]
func (c *TeamController) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "TeamController.GetTeamPlayers"))

	teamID, ok := parseTeamID(r)
	if !ok {
		resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		return
	}

	roster, err := c.useCase.GetTeamPlayers(r.Context(), teamID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrInvalidTeamID):
			resp.SendError(w, r, http.StatusBadRequest, invalidIDMessage)
		case errors.Is(err, team.ErrTeamNotFound):
			resp.SendError(w, r, http.StatusNotFound, "Equipo no encontrado")
		default:
			log.Error("usecase GetTeamPlayers failed", slog.Int64("teamID", teamID), slog.String("error", err.Error()))
			resp.SendInternalError(w, r, "Error al obtener jugadores", err)
		}
		return
	}

	resp.Send(w, r, http.StatusOK, teamPlayersResponse{
		Response: resp.List("Jugadores del equipo obtenidos exitosamente", roster.Players, len(roster.Players)),
		Team:     roster.Team,
	})
}
