package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"torneos/config"
	"torneos/internal/modules/team"
	teamCache "torneos/internal/modules/team/repo/cache"
	"torneos/internal/testutil"
)

func TestTeamCache(t *testing.T) {
	appCache := testutil.StartRedis(t)
	ctx := context.Background()
	c := teamCache.NewTeamCache(appCache, testutil.DiscardLogger(), config.CacheConfig{
		DefaultTeamCacheTtl:     time.Minute,
		DefaultTeamListCacheTtl: time.Minute,
	})

	t.Run("miss", func(t *testing.T) {
		got, err := c.GetTeam(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)

		list, err := c.GetTeamList(ctx)
		require.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("team round trip", func(t *testing.T) {
		org := uint(3)
		require.NoError(t, c.SaveTeam(ctx, &team.TeamDetail{ID: 1, Name: "Lobos", TournamentOrganizerID: &org}))

		got, err := c.GetTeam(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Lobos", got.Name)
		assert.Equal(t, &org, got.TournamentOrganizerID)

		require.NoError(t, c.DeleteTeam(ctx, 1))
		got, err = c.GetTeam(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty list is a hit", func(t *testing.T) {
		require.NoError(t, c.SaveTeamList(ctx, []*team.TeamDetail{}))

		list, err := c.GetTeamList(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)

		require.NoError(t, c.DeleteTeamList(ctx))
	})

	t.Run("undecodable entry is dropped", func(t *testing.T) {
		require.NoError(t, appCache.Client.Set(ctx, "team:9", "not json", time.Minute).Err())

		got, err := c.GetTeam(ctx, 9)
		require.NoError(t, err)
		assert.Nil(t, got)

		n, err := appCache.Client.Exists(ctx, "team:9").Result()
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
