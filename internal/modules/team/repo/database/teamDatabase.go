package database

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"torneos/internal/modules/team"
	"torneos/pkg/lib/dberr"
	"torneos/pkg/lib/patch"
)

const detailColumns = `e.id, e.nombre, e.color, e.representante, e.telefono_representante, e.torneo_id,
	t.nombre AS torneo_nombre, t.disciplina AS torneo_disciplina, t.estado AS torneo_estado,
	(SELECT COUNT(*) FROM jugadores j WHERE j.equipo_id = e.id) AS total_jugadores,
	e.creado_en, e.actualizado_en`

type TeamDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewTeamDatabase(db *gorm.DB, log *slog.Logger) *TeamDatabase {
	return &TeamDatabase{
		db:  db,
		log: log,
	}
}

func (r *TeamDatabase) withTournament(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("equipos e").
		Joins("INNER JOIN torneos t ON e.torneo_id = t.id")
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", team.ErrTeamInternal, err)
}

func (r *TeamDatabase) ListTeams(ctx context.Context) ([]*team.TeamDetail, error) {
	log := r.log.With(slog.String("op", "TeamDatabase.ListTeams"))

	teams := make([]*team.TeamDetail, 0)
	err := r.withTournament(ctx).
		Select(detailColumns).
		Order("t.nombre, e.nombre").
		Scan(&teams).Error
	if err != nil {
		log.Error("failed to list teams", slog.String("error", err.Error()))
		return nil, internal(err)
	}

	log.Debug("teams listed", slog.Int("count", len(teams)))
	return teams, nil
}

func (r *TeamDatabase) NameExistsInTournament(ctx context.Context, name string, tournamentID, excludeID int64) (bool, error) {
	log := r.log.With(
		slog.String("op", "TeamDatabase.NameExistsInTournament"),
		slog.String("name", name),
		slog.Int64("tournamentID", tournamentID),
	)

	query := r.db.WithContext(ctx).
		Model(&team.Team{}).
		Where("LOWER(nombre) = LOWER(?) AND torneo_id = ?", name, tournamentID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		log.Error("failed to check team name", slog.String("error", err.Error()))
		return false, internal(err)
	}
	return count > 0, nil
}

func (r *TeamDatabase) GetTeamByID(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	log := r.log.With(slog.String("op", "TeamDatabase.GetTeamByID"), slog.Int64("teamID", teamID))

	var detail team.TeamDetail
	res := r.withTournament(ctx).
		Select(detailColumns+", t.organizador_id AS torneo_organizador_id").
		Where("e.id = ?", teamID).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		log.Error("failed to get team", slog.String("error", res.Error.Error()))
		return nil, internal(res.Error)
	}
	if res.RowsAffected == 0 {
		log.Debug("team not found")
		return nil, team.ErrTeamNotFound
	}
	return &detail, nil
}

// CreateTeam relies on the unique index and the tournament foreign key
// rather than on any earlier check.
func (r *TeamDatabase) CreateTeam(ctx context.Context, t *team.Team) (*team.Team, error) {
	log := r.log.With(
		slog.String("op", "TeamDatabase.CreateTeam"),
		slog.String("name", t.Name),
		slog.Int64("tournamentID", t.TournamentID),
	)

	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		switch {
		case dberr.IsUniqueViolation(err):
			log.Info("team name taken at insert")
			return nil, team.ErrTeamNameTaken
		case dberr.IsForeignKeyViolation(err):
			log.Info("tournament vanished before insert")
			return nil, team.ErrTournamentNotFound
		}
		log.Error("failed to create team", slog.String("error", err.Error()))
		return nil, internal(err)
	}

	log.Info("team created", slog.Int64("teamID", t.ID))
	return t, nil
}

// UpdateTeam writes only the fields present in req and always refreshes
// actualizado_en.
func (r *TeamDatabase) UpdateTeam(ctx context.Context, teamID int64, req team.UpdateTeamRequest) (*team.Team, error) {
	log := r.log.With(slog.String("op", "TeamDatabase.UpdateTeam"), slog.Int64("teamID", teamID))

	updates := map[string]interface{}{
		"actualizado_en": gorm.Expr("NOW()"),
	}
	setColumn(updates, "nombre", req.Name)
	setColumn(updates, "color", req.Color)
	setColumn(updates, "representante", req.Representative)
	setColumn(updates, "telefono_representante", req.RepresentativePhone)

	var updated team.Team
	res := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", teamID).
		Updates(updates)
	if res.Error != nil {
		if dberr.IsUniqueViolation(res.Error) {
			log.Info("team name taken at update")
			return nil, team.ErrTeamNameTaken
		}
		log.Error("failed to update team", slog.String("error", res.Error.Error()))
		return nil, internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, team.ErrTeamNotFound
	}

	log.Info("team updated", slog.Int("columns", len(updates)-1))
	return &updated, nil
}

func setColumn(updates map[string]interface{}, column string, f patch.Field[string]) {
	if !f.Set {
		return
	}
	if f.Null {
		updates[column] = nil
		return
	}
	updates[column] = f.Value
}

// DeleteTeam removes the row; jugadores go with it through ON DELETE CASCADE.
func (r *TeamDatabase) DeleteTeam(ctx context.Context, teamID int64) (bool, error) {
	log := r.log.With(slog.String("op", "TeamDatabase.DeleteTeam"), slog.Int64("teamID", teamID))

	res := r.db.WithContext(ctx).Delete(&team.Team{}, teamID)
	if res.Error != nil {
		log.Error("failed to delete team", slog.String("error", res.Error.Error()))
		return false, internal(res.Error)
	}

	log.Info("team delete executed", slog.Int64("rows", res.RowsAffected))
	return res.RowsAffected > 0, nil
}

func (r *TeamDatabase) GetTeamPlayers(ctx context.Context, teamID int64) ([]*team.Player, error) {
	log := r.log.With(slog.String("op", "TeamDatabase.GetTeamPlayers"), slog.Int64("teamID", teamID))

	players := make([]*team.Player, 0)
	err := r.db.WithContext(ctx).
		Where("equipo_id = ?", teamID).
		Order("nro_camiseta").
		Order("id").
		Find(&players).Error
	if err != nil {
		log.Error("failed to get team players", slog.String("error", err.Error()))
		return nil, internal(err)
	}
	return players, nil
}
