// Package testutil starts throwaway Postgres and Redis containers and seeds
// rows for integration tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"torneos/config"
	"torneos/internal/init/cache"
	"torneos/internal/init/database"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

// StartPostgres runs a migrated PostgreSQL instance for the lifetime of t.
func StartPostgres(t *testing.T) *database.Storage {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("torneos"),
		postgres.WithUsername("torneos"),
		postgres.WithPassword("torneos"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err, "start postgres container")

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := database.Open(dsn, config.DbConfig{MaxOpenConns: 5, MaxIdleConns: 2}, DiscardLogger())
	require.NoError(t, err, "open storage")
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

// StartRedis runs a Redis instance for the lifetime of t.
func StartRedis(t *testing.T) *cache.Cache {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start redis container")

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	appCache, err := cache.NewCache(config.CacheConfig{Address: endpoint})
	require.NoError(t, err, "connect redis")
	t.Cleanup(func() { _ = appCache.Close() })

	return appCache
}
