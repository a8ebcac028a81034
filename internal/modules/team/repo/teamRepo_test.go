package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torneos/internal/modules/team"
)

type fakeDb struct {
	TeamDb
	listCalls int
	getCalls  int
	teams     []*team.TeamDetail
	err       error
}

func (f *fakeDb) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	f.listCalls++
	return f.teams, f.err
}

func (f *fakeDb) GetTeamByID(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.teams {
		if d.ID == teamID {
			return d, nil
		}
	}
	return nil, team.ErrTeamNotFound
}

func (f *fakeDb) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	return t, f.err
}

func (f *fakeDb) UpdateTeam(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	return &team.Team{ID: teamID}, f.err
}

func (f *fakeDb) DeleteTeam(ctx context.Context, teamID int64) (bool, error) {
	return f.err == nil, f.err
}

type memCache struct {
	teams   map[int64]*team.TeamDetail
	list    []*team.TeamDetail
	readErr error
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{teams: map[int64]*team.TeamDetail{}}
}

func (c *memCache) GetTeam(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.teams[teamID], nil
}

func (c *memCache) SaveTeam(ctx context.Context, detail *team.TeamDetail) error {
	c.teams[detail.ID] = detail
	return nil
}

func (c *memCache) DeleteTeam(ctx context.Context, teamID int64) error {
	delete(c.teams, teamID)
	c.deleted = append(c.deleted, "team")
	return nil
}

func (c *memCache) GetTeamList(ctx context.Context) ([]*team.TeamDetail, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.list, nil
}

func (c *memCache) SaveTeamList(ctx context.Context, teams []*team.TeamDetail) error {
	c.list = teams
	return nil
}

func (c *memCache) DeleteTeamList(ctx context.Context) error {
	c.list = nil
	c.deleted = append(c.deleted, "list")
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListTeams_ReadThrough(t *testing.T) {
	db := &fakeDb{teams: []*team.TeamDetail{{ID: 1, Name: "Lobos"}}}
	ch := newMemCache()
	r := NewRepo(db, ch, discardLogger())

	first, err := r.ListTeams(context.Background())
	require.NoError(t, err)
	second, err := r.ListTeams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, db.listCalls)
}

func TestGetTeamByID_CacheErrorFallsBackToDb(t *testing.T) {
	db := &fakeDb{teams: []*team.TeamDetail{{ID: 1, Name: "Lobos"}}}
	ch := newMemCache()
	ch.readErr = errors.New("connection refused")
	r := NewRepo(db, ch, discardLogger())

	detail, err := r.GetTeamByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lobos", detail.Name)
	assert.Equal(t, 1, db.getCalls)
}

func TestGetTeamByIDUncached_SkipsCache(t *testing.T) {
	db := &fakeDb{teams: []*team.TeamDetail{{ID: 1, Name: "Lobos"}}}
	ch := newMemCache()
	ch.teams[1] = &team.TeamDetail{ID: 1, Name: "stale"}
	r := NewRepo(db, ch, discardLogger())

	detail, err := r.GetTeamByIDUncached(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lobos", detail.Name)
}

func TestMutationsInvalidate(t *testing.T) {
	ctx := context.Background()
	db := &fakeDb{}
	ch := newMemCache()
	r := NewRepo(db, ch, discardLogger())

	_, err := r.CreateTeam(ctx, &team.Team{Name: "Lobos"})
	require.NoError(t, err)
	assert.Equal(t, []string{"list"}, ch.deleted)

	ch.deleted = nil
	_, err = r.UpdateTeam(ctx, 4, team.UpdateTeamRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"team", "list"}, ch.deleted)

	ch.deleted = nil
	_, err = r.DeleteTeam(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"team", "list"}, ch.deleted)
}

func TestFailedMutationKeepsCache(t *testing.T) {
	db := &fakeDb{err: team.ErrTeamNameTaken}
	ch := newMemCache()
	r := NewRepo(db, ch, discardLogger())

	_, err := r.CreateTeam(context.Background(), &team.Team{Name: "Lobos"})
	assert.ErrorIs(t, err, team.ErrTeamNameTaken)
	assert.Empty(t, ch.deleted)
}

func TestNilCache(t *testing.T) {
	db := &fakeDb{teams: []*team.TeamDetail{{ID: 1}}}
	r := NewRepo(db, nil, discardLogger())

	_, err := r.ListTeams(context.Background())
	require.NoError(t, err)
	_, err = r.DeleteTeam(context.Background(), 1)
	require.NoError(t, err)

	n, err := r.RefreshTeamList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRefreshTeamList(t *testing.T) {
	db := &fakeDb{teams: []*team.TeamDetail{{ID: 1}, {ID: 2}}}
	ch := newMemCache()
	r := NewRepo(db, ch, discardLogger())

	n, err := r.RefreshTeamList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, ch.list, 2)
}
