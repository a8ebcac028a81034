package repo

import (
	"context"
	"log/slog"

	"torneos/internal/modules/team"
)

type TeamDb interface {
	ListTeams(ctx context.Context) ([]*team.TeamDetail, error)
	NameExistsInTournament(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error)
	GetTeamByID(ctx context.Context, teamID int64) (*team.TeamDetail, error)
	CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error)
	UpdateTeam(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error)
	DeleteTeam(ctx context.Context, teamID int64) (bool, error)
	GetTeamPlayers(ctx context.Context, teamID int64) ([]*team.Player, error)
}

// TeamCache reports a miss as nil, nil.
type TeamCache interface {
	GetTeam(ctx context.Context, teamID int64) (*team.TeamDetail, error)
	SaveTeam(ctx context.Context, detail *team.TeamDetail) error
	DeleteTeam(ctx context.Context, teamID int64) error

	GetTeamList(ctx context.Context) ([]*team.TeamDetail, error)
	SaveTeamList(ctx context.Context, teams []*team.TeamDetail) error
	DeleteTeamList(ctx context.Context) error
}

// repo implements team.Repo. The cache is optional; its failures are logged
// and never fail the call.
type repo struct {
	db  TeamDb
	ch  TeamCache
	log *slog.Logger
}

func NewRepo(db TeamDb, ch TeamCache, log *slog.Logger) team.Repo {
	return &repo{
		db:  db,
		ch:  ch,
		log: log,
	}
}

func (r *repo) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	log := r.log.With(slog.String("op", "TeamRepo.ListTeams"))

	if r.ch != nil {
		cached, err := r.ch.GetTeamList(ctx)
		if err != nil {
			log.Warn("team list cache read failed", slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	teams, err := r.db.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	r.saveList(ctx, log, teams)
	return teams, nil
}

func (r *repo) NameExistsInTournament(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error) {
	return r.db.NameExistsInTournament(ctx, name, tournamentID, excludeID)
}

func (r *repo) GetTeamByID(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	log := r.log.With(slog.String("op", "TeamRepo.GetTeamByID"), slog.Int64("teamID", teamID))

	if r.ch != nil {
		cached, err := r.ch.GetTeam(ctx, teamID)
		if err != nil {
			log.Warn("team cache read failed", slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	detail, err := r.db.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if r.ch != nil {
		if err := r.ch.SaveTeam(ctx, detail); err != nil {
			log.Warn("team cache write failed", slog.String("error", err.Error()))
		}
	}
	return detail, nil
}

// GetTeamByIDUncached backs authorization decisions, which must not see a
// stale organizer.
func (r *repo) GetTeamByIDUncached(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	return r.db.GetTeamByID(ctx, teamID)
}

func (r *repo) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	created, err := r.db.CreateTeam(ctx, t)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, 0)
	return created, nil
}

func (r *repo) UpdateTeam(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	updated, err := r.db.UpdateTeam(ctx, teamID, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, teamID)
	return updated, nil
}

func (r *repo) DeleteTeam(ctx context.Context, teamID int64) (bool, error) {
	deleted, err := r.db.DeleteTeam(ctx, teamID)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, teamID)
	return deleted, nil
}

func (r *repo) GetTeamPlayers(ctx context.Context, teamID int64) ([]*team.Player, error) {
	return r.db.GetTeamPlayers(ctx, teamID)
}

// RefreshTeamList rebuilds the cached team list from the database.
func (r *repo) RefreshTeamList(ctx context.Context) (int, error) {
	log := r.log.With(slog.String("op", "TeamRepo.RefreshTeamList"))

	teams, err := r.db.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	r.saveList(ctx, log, teams)
	return len(teams), nil
}

func (r *repo) saveList(ctx context.Context, log *slog.Logger, teams []*team.TeamDetail) {
	if r.ch == nil {
		return
	}
	if err := r.ch.SaveTeamList(ctx, teams); err != nil {
		log.Warn("team list cache write failed", slog.String("error", err.Error()))
	}
}

// invalidate drops the list and, when teamID is set, the team entry.
func (r *repo) invalidate(ctx context.Context, teamID int64) {
	if r.ch == nil {
		return
	}
	log := r.log.With(slog.String("op", "TeamRepo.invalidate"), slog.Int64("teamID", teamID))

	if teamID > 0 {
		if err := r.ch.DeleteTeam(ctx, teamID); err != nil {
			log.Warn("team cache delete failed", slog.String("error", err.Error()))
		}
	}
	if err := r.ch.DeleteTeamList(ctx); err != nil {
		log.Warn("team list cache delete failed", slog.String("error", err.Error()))
	}
}
