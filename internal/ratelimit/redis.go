package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "moviereview:ratelimit"

// NewRedisClient accepts a redis:// or rediss:// URL or a bare host:port.
// A non-empty password overrides any password in the URL.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("redis address is required")
	}

	opts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}
	if password != "" {
		opts.Password = password
	}
	return redis.NewClient(opts), nil
}

// RedisLimiter counts hits per key and minute slot in Redis, so every API
// instance draws from one quota. Counters expire with their slot.
type RedisLimiter struct {
	client    *redis.Client
	perWindow int64
	window    time.Duration
	prefix    string
	logger    *slog.Logger
	now       func() time.Time
}

func NewRedisLimiter(client *redis.Client, perWindow int, window time.Duration, logger *slog.Logger) (*RedisLimiter, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if perWindow <= 0 || window < time.Millisecond {
		return nil, fmt.Errorf("invalid rate limit %d per %s", perWindow, window)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisLimiter{
		client:    client,
		perWindow: int64(perWindow),
		window:    window,
		prefix:    defaultKeyPrefix,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Allow rejects the request when Redis cannot be reached.
func (l *RedisLimiter) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	hits, err := l.hit(ctx, key)
	if err != nil {
		l.logger.Warn("rate_limit_redis_error", "key", key, "error", err)
		return false
	}
	return hits <= l.perWindow
}

// hit bumps the counter for the current slot and returns its new value.
func (l *RedisLimiter) hit(ctx context.Context, key string) (int64, error) {
	if key = strings.TrimSpace(key); key == "" {
		key = "unknown"
	}
	slot := l.now().UnixMilli() / l.window.Milliseconds()
	redisKey := l.prefix + ":" + key + ":" + strconv.FormatInt(slot, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.PExpire(ctx, redisKey, l.window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (l *RedisLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
