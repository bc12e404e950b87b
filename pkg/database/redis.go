package database

import (
	"context"
	"go-admin-console/internal/config"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedis opens the list-page cache. A connection failure is not fatal:
// the caller gets nil and every listing goes straight to the backend.
func ConnectRedis(cfg *config.RedisConfig, log *logrus.Logger) *redis.Client {
	addr := cfg.Host + ":" + cfg.Port
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.WithError(err).WithField("addr", addr).Error("Failed to connect to Redis, list caching disabled")
		return nil
	}

	log.WithFields(logrus.Fields{
		"addr":          addr,
		"cache_ttl_sec": cfg.CacheTTL,
	}).Info("Connected to Redis")
	return rdb
}
