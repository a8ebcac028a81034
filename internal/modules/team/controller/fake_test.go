package controller

import (
	"context"

	"torneos/internal/modules/team"
	"torneos/internal/modules/user"
)

type FakeTeamUseCase struct {
	calls []string

	ListTeamsFunc      func(ctx context.Context) ([]*team.TeamDetail, error)
	CreateTeamFunc     func(ctx context.Context, p user.Principal, req team.CreateTeamRequest) (*team.Team, error)
	GetTeamFunc        func(ctx context.Context, teamID int64) (*team.TeamDetail, error)
	UpdateTeamFunc     func(ctx context.Context, p user.Principal, teamID int64, req team.UpdateTeamRequest) (*team.Team, error)
	DeleteTeamFunc     func(ctx context.Context, p user.Principal, teamID int64) error
	GetTeamPlayersFunc func(ctx context.Context, teamID int64) (*team.TeamPlayers, error)
}

var _ team.UseCase = (*FakeTeamUseCase)(nil)

func (f *FakeTeamUseCase) record(step string) { f.calls = append(f.calls, step) }

func (f *FakeTeamUseCase) Calls() []string { return f.calls }

func (f *FakeTeamUseCase) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []*team.TeamDetail{}, nil
}

func (f *FakeTeamUseCase) CreateTeam(ctx context.Context, p user.Principal, req team.CreateTeamRequest) (*team.Team, error) {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, p, req)
	}
	return req.ToModel(), nil
}

func (f *FakeTeamUseCase) GetTeam(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	f.record("GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, teamID)
	}
	return nil, team.ErrTeamNotFound
}

func (f *FakeTeamUseCase) UpdateTeam(ctx context.Context, p user.Principal, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	f.record("UpdateTeam")
	if f.UpdateTeamFunc != nil {
		return f.UpdateTeamFunc(ctx, p, teamID, req)
	}
	return &team.Team{ID: teamID}, nil
}

func (f *FakeTeamUseCase) DeleteTeam(ctx context.Context, p user.Principal, teamID int64) error {
	f.record("DeleteTeam")
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, p, teamID)
	}
	return nil
}

func (f *FakeTeamUseCase) GetTeamPlayers(ctx context.Context, teamID int64) (*team.TeamPlayers, error) {
	f.record("GetTeamPlayers")
	if f.GetTeamPlayersFunc != nil {
		return f.GetTeamPlayersFunc(ctx, teamID)
	}
	return nil, team.ErrTeamNotFound
}
