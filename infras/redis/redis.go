package redis

import (
	"context"
	"fmt"
	"time"

	"hotel/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects to the primary Redis. An unreachable Redis is not fatal: the
// cache degrades to misses and the rate limiter to its in-process fallback.
func New(config *config.Config) *goRedis.Client {
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Cache.Redis.Primary.Host, config.Cache.Redis.Primary.Port),
		Password: config.Cache.Redis.Primary.Password,
		DB:       config.Cache.Redis.Primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).
			Str("host", config.Cache.Redis.Primary.Host).
			Msg("Redis is unreachable, continuing without a warm cache")

		return client
	}

	log.Info().
		Int("db", config.Cache.Redis.Primary.DB).
		Str("host", config.Cache.Redis.Primary.Host).
		Str("port", config.Cache.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}
