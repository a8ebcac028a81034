package TeamService

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refresherFunc func(ctx context.Context) (int, error)

func (f refresherFunc) RefreshTeamList(ctx context.Context) (int, error) { return f(ctx) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefreshTeamList_UsesDeadline(t *testing.T) {
	called := false
	svc := NewTeamService(refresherFunc(func(ctx context.Context) (int, error) {
		called = true
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return 3, nil
	}), discardLogger(), time.Second)

	svc.RefreshTeamList()
	assert.True(t, called)
}

func TestRefreshTeamList_ErrorIsSwallowed(t *testing.T) {
	svc := NewTeamService(refresherFunc(func(ctx context.Context) (int, error) {
		return 0, errors.New("redis down")
	}), discardLogger(), time.Second)

	assert.NotPanics(t, svc.RefreshTeamList)
}

func TestRefreshTeamList_RunsFromCron(t *testing.T) {
	done := make(chan struct{}, 1)
	svc := NewTeamService(refresherFunc(func(ctx context.Context) (int, error) {
		select {
		case done <- struct{}{}:
		default:
		}
		return 0, nil
	}), discardLogger(), time.Second)

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc("* * * * * *", svc.RefreshTeamList)
	require.NoError(t, err)
	c.Start()
	defer c.Stop()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("cron did not run the refresh")
	}
}
