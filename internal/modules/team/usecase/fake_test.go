package usecase

import (
	"context"

	"torneos/internal/modules/team"
	"torneos/internal/modules/tournament"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	ListTeamsFunc              func(ctx context.Context) ([]*team.TeamDetail, error)
	NameExistsInTournamentFunc func(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error)
	GetTeamByIDFunc            func(ctx context.Context, teamID int64) (*team.TeamDetail, error)
	GetTeamByIDUncachedFunc    func(ctx context.Context, teamID int64) (*team.TeamDetail, error)
	CreateTeamFunc             func(ctx context.Context, t *team.Team) (*team.Team, error)
	UpdateTeamFunc             func(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error)
	DeleteTeamFunc             func(ctx context.Context, teamID int64) (bool, error)
	GetTeamPlayersFunc         func(ctx context.Context, teamID int64) ([]*team.Player, error)
	RefreshTeamListFunc        func(ctx context.Context) (int, error)
}

var _ team.Repo = (*FakeTeamRepo)(nil)

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{trace: []string{}}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) Trace() []string {
	return f.trace
}

func (f *FakeTeamRepo) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []*team.TeamDetail{}, nil
}

func (f *FakeTeamRepo) NameExistsInTournament(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error) {
	f.record("NameExistsInTournament")
	if f.NameExistsInTournamentFunc != nil {
		return f.NameExistsInTournamentFunc(ctx, name, tournamentID, excludeID)
	}
	return false, nil
}

func (f *FakeTeamRepo) GetTeamByID(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	f.record("GetTeamByID")
	if f.GetTeamByIDFunc != nil {
		return f.GetTeamByIDFunc(ctx, teamID)
	}
	return nil, team.ErrTeamNotFound
}

func (f *FakeTeamRepo) GetTeamByIDUncached(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	f.record("GetTeamByIDUncached")
	if f.GetTeamByIDUncachedFunc != nil {
		return f.GetTeamByIDUncachedFunc(ctx, teamID)
	}
	return nil, team.ErrTeamNotFound
}

func (f *FakeTeamRepo) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, t)
	}
	t.ID = 1
	return t, nil
}

func (f *FakeTeamRepo) UpdateTeam(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	f.record("UpdateTeam")
	if f.UpdateTeamFunc != nil {
		return f.UpdateTeamFunc(ctx, teamID, req)
	}
	return &team.Team{ID: teamID}, nil
}

func (f *FakeTeamRepo) DeleteTeam(ctx context.Context, teamID int64) (bool, error) {
	f.record("DeleteTeam")
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, teamID)
	}
	return true, nil
}

func (f *FakeTeamRepo) GetTeamPlayers(ctx context.Context, teamID int64) ([]*team.Player, error) {
	f.record("GetTeamPlayers")
	if f.GetTeamPlayersFunc != nil {
		return f.GetTeamPlayersFunc(ctx, teamID)
	}
	return []*team.Player{}, nil
}

func (f *FakeTeamRepo) RefreshTeamList(ctx context.Context) (int, error) {
	f.record("RefreshTeamList")
	if f.RefreshTeamListFunc != nil {
		return f.RefreshTeamListFunc(ctx)
	}
	return 0, nil
}

// ------------------------
// Fake Tournament Lookup
// ------------------------

type FakeTournaments struct {
	GetTournamentByIDFunc func(ctx context.Context, id int64) (*tournament.Tournament, error)
}

var _ team.TournamentLookup = (*FakeTournaments)(nil)

func (f *FakeTournaments) GetTournamentByID(ctx context.Context, id int64) (*tournament.Tournament, error) {
	if f.GetTournamentByIDFunc != nil {
		return f.GetTournamentByIDFunc(ctx, id)
	}
	return nil, nil
}
