package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"torneos/internal/modules/tournament"
)

type TournamentDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewTournamentDatabase(db *gorm.DB, log *slog.Logger) *TournamentDatabase {
	return &TournamentDatabase{
		db:  db,
		log: log,
	}
}

func (r *TournamentDatabase) GetTournamentByID(ctx context.Context, id int64) (*tournament.Tournament, error) {
	log := r.log.With(slog.String("op", "TournamentDatabase.GetTournamentByID"), slog.Int64("tournamentID", id))

	var t tournament.Tournament
	if err := r.db.WithContext(ctx).Take(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug("tournament not found")
			return nil, nil
		}
		log.Error("failed to get tournament", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", tournament.ErrTournamentInternal, err)
	}
	return &t, nil
}
