package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"torneos/internal/modules/team"
	"torneos/internal/modules/user"
)

type TeamUseCase struct {
	repo        team.Repo
	tournaments team.TournamentLookup
	log         *slog.Logger
}

func NewTeamUseCase(repo team.Repo, tournaments team.TournamentLookup, log *slog.Logger) *TeamUseCase {
	return &TeamUseCase{
		repo:        repo,
		tournaments: tournaments,
		log:         log,
	}
}

// asInternal keeps domain errors as they are and tags anything else as a
// storage failure.
func asInternal(err error) error {
	switch {
	case errors.Is(err, team.ErrTeamNotFound),
		errors.Is(err, team.ErrTournamentNotFound),
		errors.Is(err, team.ErrTeamNameTaken),
		errors.Is(err, team.ErrTeamAccessDenied),
		errors.Is(err, team.ErrTeamInternal):
		return err
	}
	return fmt.Errorf("%w: %w", team.ErrTeamInternal, err)
}

func (uc *TeamUseCase) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	teams, err := uc.repo.ListTeams(ctx)
	if err != nil {
		uc.log.Error("failed to list teams", slog.String("op", "TeamUseCase.ListTeams"), slog.String("error", err.Error()))
		return nil, asInternal(err)
	}
	return teams, nil
}

func (uc *TeamUseCase) CreateTeam(ctx context.Context, p user.Principal, req team.CreateTeamRequest) (*team.Team, error) {
	log := uc.log.With(
		slog.String("op", "TeamUseCase.CreateTeam"),
		slog.Uint64("userID", uint64(p.ID)),
		slog.Int64("tournamentID", req.TournamentID),
	)

	if !team.Authorize(team.ActionCreate, p, nil) {
		log.Info("role may not create teams", slog.String("role", p.Role.String()))
		return nil, team.ErrTeamAccessDenied
	}

	t, err := uc.tournaments.GetTournamentByID(ctx, req.TournamentID)
	if err != nil {
		log.Error("failed to look up tournament", slog.String("error", err.Error()))
		return nil, asInternal(err)
	}
	if t == nil {
		return nil, team.ErrTournamentNotFound
	}

	// Friendlier early answer only; the unique index decides at insert time.
	exists, err := uc.repo.NameExistsInTournament(ctx, req.Name, req.TournamentID, 0)
	if err != nil {
		return nil, asInternal(err)
	}
	if exists {
		return nil, team.ErrTeamNameTaken
	}

	created, err := uc.repo.CreateTeam(ctx, req.ToModel())
	if err != nil {
		return nil, asInternal(err)
	}

	log.Info("team created", slog.Int64("teamID", created.ID))
	return created, nil
}

func (uc *TeamUseCase) GetTeam(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	if teamID <= 0 {
		return nil, team.ErrInvalidTeamID
	}
	detail, err := uc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, asInternal(err)
	}
	return detail, nil
}

func (uc *TeamUseCase) UpdateTeam(ctx context.Context, p user.Principal, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	log := uc.log.With(
		slog.String("op", "TeamUseCase.UpdateTeam"),
		slog.Uint64("userID", uint64(p.ID)),
		slog.Int64("teamID", teamID),
	)

	if teamID <= 0 {
		return nil, team.ErrInvalidTeamID
	}

	current, err := uc.repo.GetTeamByIDUncached(ctx, teamID)
	if err != nil {
		return nil, asInternal(err)
	}

	if !team.Authorize(team.ActionUpdate, p, current.TournamentOrganizerID) {
		log.Info("update denied", slog.String("role", p.Role.String()))
		return nil, team.ErrTeamAccessDenied
	}

	if name, changed := req.NameChange(current.Name); changed {
		exists, err := uc.repo.NameExistsInTournament(ctx, name, current.TournamentID, teamID)
		if err != nil {
			return nil, asInternal(err)
		}
		if exists {
			return nil, team.ErrTeamNameTaken
		}
	}

	updated, err := uc.repo.UpdateTeam(ctx, teamID, req)
	if err != nil {
		return nil, asInternal(err)
	}

	log.Info("team updated")
	return updated, nil
}

func (uc *TeamUseCase) DeleteTeam(ctx context.Context, p user.Principal, teamID int64) error {
	log := uc.log.With(
		slog.String("op", "TeamUseCase.DeleteTeam"),
		slog.Uint64("userID", uint64(p.ID)),
		slog.Int64("teamID", teamID),
	)

	if teamID <= 0 {
		return team.ErrInvalidTeamID
	}

	current, err := uc.repo.GetTeamByIDUncached(ctx, teamID)
	if err != nil {
		return asInternal(err)
	}

	if !team.Authorize(team.ActionDelete, p, current.TournamentOrganizerID) {
		log.Info("delete denied", slog.String("role", p.Role.String()))
		return team.ErrTeamAccessDenied
	}

	deleted, err := uc.repo.DeleteTeam(ctx, teamID)
	if err != nil {
		return asInternal(err)
	}
	if !deleted {
		// Removed concurrently between lookup and delete.
		return team.ErrTeamNotFound
	}

	log.Info("team deleted")
	return nil
}

func (uc *TeamUseCase) GetTeamPlayers(ctx context.Context, teamID int64) (*team.TeamPlayers, error) {
	if teamID <= 0 {
		return nil, team.ErrInvalidTeamID
	}

	detail, err := uc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, asInternal(err)
	}

	players, err := uc.repo.GetTeamPlayers(ctx, teamID)
	if err != nil {
		return nil, asInternal(err)
	}

	return &team.TeamPlayers{Team: detail.Summary(), Players: players}, nil
}
