package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds one limiter's window and keying.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
	// FailClosed rejects requests when Redis errors instead of falling
	// back to the in-memory counter.
	FailClosed bool
}

// DefaultRateLimitConfig covers the whole API per client IP.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     100,
		Window:    time.Minute,
		KeyPrefix: "rl:ip:",
	}
}

// LoginRateLimitConfig is the strict limiter for credential endpoints.
func LoginRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      5,
		Window:     time.Minute,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
	}
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// Atomic increment with TTL set on first hit. Returns [count, ttl].
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimit counts requests per client IP in Redis, falling back to an
// in-process counter when no Redis client is configured.
func RateLimit(client *goredis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()
		now := time.Now()

		var count int
		var resetAt time.Time

		if client != nil {
			var err error
			count, resetAt, err = checkRedis(c.Request.Context(), client, key, cfg)
			if err != nil {
				if cfg.FailClosed {
					logger.Log.Error("rate limiter unavailable", "error", err)
					response.Err(c, http.StatusServiceUnavailable, "Servicio no disponible, intenta más tarde")
					c.Abort()
					return
				}
				count, resetAt = checkInMemory(key, cfg, now)
			}
		} else {
			count, resetAt = checkInMemory(key, cfg, now)
		}

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath())
			response.Err(c, http.StatusTooManyRequests, "Demasiadas solicitudes, intenta más tarde")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-count))
		c.Next()
	}
}

func checkRedis(ctx context.Context, client *goredis.Client, key string, cfg RateLimitConfig) (int, time.Time, error) {
	result, err := client.Eval(ctx, rateLimitScript, []string{key}, int(cfg.Window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected rate limit reply")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func checkInMemory(key string, cfg RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}
