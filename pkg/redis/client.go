// Package redis builds the optional client backing the login rate
// limiter. When no URL is configured the limiter falls back to its
// in-memory store, so a nil client here is not an error.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection settings. URL accepts redis:// and
// rediss:// forms.
type Config struct {
	URL      string
	Password string
}

// New connects and pings. Returns (nil, nil) when no URL is configured.
func New(cfg Config) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
