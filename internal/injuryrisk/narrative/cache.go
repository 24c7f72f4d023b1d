package narrative

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=narrative_test

const cacheKeyPrefix = "injury-risk:narrative:"

// Cache stores generated narratives. Implementations log and swallow their
// own errors: a failing cache behaves like an empty one.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, text string, ttl time.Duration)
}

// Fingerprint identifies the parts of an assessment a narrative depends on.
func Fingerprint(a risk.Assessment) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s", a.RiskScore, a.OverallRisk)
	for _, f := range a.Factors {
		fmt.Fprintf(h, "|%s:%s", f.Type, f.Severity)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func CacheKey(userID string, a risk.Assessment) string {
	return cacheKeyPrefix + userID + ":" + Fingerprint(a)
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{
		rdb: rdb,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	text, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnf("narrative cache: redis get %s: %s", key, err)
		}
		return "", false
	}
	return text, true
}

func (c *RedisCache) Set(ctx context.Context, key, text string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, text, ttl).Err(); err != nil {
		log.Warnf("narrative cache: redis set %s: %s", key, err)
	}
}

// LocalCache is an in-process cache, for single instance deployments and the CLI.
type LocalCache struct {
	cache *freecache.Cache
}

// NewLocalCache allocates a cache of sizeBytes. freecache enforces a 512KB minimum.
func NewLocalCache(sizeBytes int) *LocalCache {
	return &LocalCache{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (c *LocalCache) Get(_ context.Context, key string) (string, bool) {
	text, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("narrative cache: local get %s: %s", key, err)
		}
		return "", false
	}
	return string(text), true
}

func (c *LocalCache) Set(_ context.Context, key, text string, ttl time.Duration) {
	if err := c.cache.Set([]byte(key), []byte(text), int(ttl.Seconds())); err != nil {
		log.Warnf("narrative cache: local set %s: %s", key, err)
	}
}
