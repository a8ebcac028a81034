package testutil

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"torneos/internal/modules/team"
	"torneos/internal/modules/tournament"
	"torneos/internal/modules/user"
)

// CreateUser inserts an active user with the given role and password.
func CreateUser(t *testing.T, db *gorm.DB, role user.Role, password string) *user.User {
	t.Helper()

	var roleID uint
	require.NoError(t, db.Model(&user.RoleRecord{}).Where("nombre = ?", role.String()).Select("id").Scan(&roleID).Error)
	require.NotZero(t, roleID, "role %s is not seeded", role)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       roleID,
	}
	require.NoError(t, db.Create(u).Error)
	u.RoleName = role.String()
	return u
}

func CreateTournament(t *testing.T, db *gorm.DB, organizerID *uint) *tournament.Tournament {
	t.Helper()

	tr := &tournament.Tournament{
		Name:        gofakeit.Company() + " Cup",
		Discipline:  gofakeit.RandomString([]string{"futbol", "basquet", "voley", "handball"}),
		Status:      "planificado",
		OrganizerID: organizerID,
	}
	require.NoError(t, db.Create(tr).Error)
	return tr
}

func CreateTeam(t *testing.T, db *gorm.DB, tournamentID int64, name string) *team.Team {
	t.Helper()

	tm := &team.Team{Name: name, TournamentID: tournamentID}
	require.NoError(t, db.Create(tm).Error)
	return tm
}

func CreatePlayer(t *testing.T, db *gorm.DB, teamID int64, jersey int) *team.Player {
	t.Helper()

	p := &team.Player{
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		JerseyNumber: &jersey,
		TeamID:       teamID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
