package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"torneos/config"
	"torneos/internal/init/cache"
	"torneos/internal/modules/team"
)

// TeamCache implements repo.TeamCache on Redis. A miss is reported as nil, nil.
type TeamCache struct {
	rdb    *redis.Client
	log    *slog.Logger
	ttlCfg config.CacheConfig
}

func NewTeamCache(appCache *cache.Cache, log *slog.Logger, ttlCfg config.CacheConfig) *TeamCache {
	return &TeamCache{
		rdb:    appCache.Client,
		log:    log,
		ttlCfg: ttlCfg,
	}
}

const teamListKey = "teams:all"

func teamKey(teamID int64) string {
	return fmt.Sprintf("team:%d", teamID)
}

func (c *TeamCache) GetTeam(ctx context.Context, teamID int64) (*team.TeamDetail, error) {
	var detail team.TeamDetail
	ok, err := c.get(ctx, teamKey(teamID), &detail)
	if err != nil || !ok {
		return nil, err
	}
	return &detail, nil
}

func (c *TeamCache) SaveTeam(ctx context.Context, detail *team.TeamDetail) error {
	return c.set(ctx, teamKey(detail.ID), detail, c.ttlCfg.DefaultTeamCacheTtl)
}

func (c *TeamCache) DeleteTeam(ctx context.Context, teamID int64) error {
	return c.del(ctx, teamKey(teamID))
}

func (c *TeamCache) GetTeamList(ctx context.Context) ([]*team.TeamDetail, error) {
	var teams []*team.TeamDetail
	ok, err := c.get(ctx, teamListKey, &teams)
	if err != nil || !ok {
		return nil, err
	}
	if teams == nil {
		teams = make([]*team.TeamDetail, 0)
	}
	return teams, nil
}

func (c *TeamCache) SaveTeamList(ctx context.Context, teams []*team.TeamDetail) error {
	return c.set(ctx, teamListKey, teams, c.ttlCfg.DefaultTeamListCacheTtl)
}

func (c *TeamCache) DeleteTeamList(ctx context.Context) error {
	return c.del(ctx, teamListKey)
}

func (c *TeamCache) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	log := c.log.With(slog.String("op", "TeamCache.get"), slog.String("key", key))

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug("cache miss")
			return false, nil
		}
		log.Error("failed to read cache", slog.String("error", err.Error()))
		return false, err
	}

	if err := json.Unmarshal(val, dest); err != nil {
		log.Warn("dropping undecodable cache entry", slog.String("error", err.Error()))
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *TeamCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	log := c.log.With(slog.String("op", "TeamCache.set"), slog.String("key", key))

	data, err := json.Marshal(value)
	if err != nil {
		log.Error("failed to marshal cache entry", slog.String("error", err.Error()))
		return err
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Error("failed to write cache", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (c *TeamCache) del(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete cache entry", slog.String("op", "TeamCache.del"), slog.String("key", key), slog.String("error", err.Error()))
		return err
	}
	return nil
}
