package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tournamentDb "torneos/internal/modules/tournament/repo/database"
	"torneos/internal/modules/user"
	"torneos/internal/testutil"
)

func TestGetTournamentByID(t *testing.T) {
	storage := testutil.StartPostgres(t)
	repo := tournamentDb.NewTournamentDatabase(storage.Db, testutil.DiscardLogger())

	org := testutil.CreateUser(t, storage.Db, user.RoleOrganizer, "pw")
	created := testutil.CreateTournament(t, storage.Db, &org.ID)

	got, err := repo.GetTournamentByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.Name, got.Name)
	require.NotNil(t, got.OrganizerID)
	assert.Equal(t, org.ID, *got.OrganizerID)

	missing, err := repo.GetTournamentByID(context.Background(), created.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
