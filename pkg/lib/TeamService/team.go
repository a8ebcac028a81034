package TeamService

import (
	"context"
	"log/slog"
	"time"
)

type TeamListRefresher interface {
	RefreshTeamList(ctx context.Context) (int, error)
}

// TeamService holds the background jobs of the team module; cron calls its
// methods without a request context.
type TeamService struct {
	teams   TeamListRefresher
	log     *slog.Logger
	timeout time.Duration
}

func NewTeamService(teams TeamListRefresher, log *slog.Logger, timeout time.Duration) *TeamService {
	return &TeamService{teams: teams, log: log, timeout: timeout}
}

// RefreshTeamList rebuilds the cached team list so readers rarely hit a cold
// cache after it expires.
func (t *TeamService) RefreshTeamList() {
	log := t.log.With(slog.String("op", "TeamService.RefreshTeamList"))

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	count, err := t.teams.RefreshTeamList(ctx)
	if err != nil {
		log.Error("error refreshing team list", slog.String("error", err.Error()))
		return
	}
	log.Info("team list refreshed", slog.Int("count", count))
}
