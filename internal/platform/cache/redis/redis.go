// Package redis is a cache.Store on go-redis; values are written with SET EX under a key prefix
package redis

import (
	"context"
	"errors"
	"time"

	"langrelay/internal/platform/cache"
	perr "langrelay/internal/platform/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Config configures the connection
type Config struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key, for example "langrelay:prompts:"
	Prefix string
}

// client is the part of *goredis.Client the store calls
type client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

// Store implements cache.Store
type Store struct {
	c      client
	prefix string
}

var _ cache.Store = (*Store)(nil)

// Open connects and pings once
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Addr == "" {
		return nil, perr.InvalidArgf("redis: empty addr")
	}
	c := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis ping %s", cfg.Addr)
	}
	return newStore(c, cfg.Prefix), nil
}

func newStore(c client, prefix string) *Store { return &Store{c: c, prefix: prefix} }

// Get maps redis.Nil to a miss
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.c.Get(ctx, s.prefix+key).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis get")
	}
	return b, true, nil
}

// Set writes with an expiry; ttl <= 0 means cache.DefaultTTL
func (s *Store) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if err := s.c.Set(ctx, s.prefix+key, val, ttl).Err(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis set")
	}
	return nil
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.c.Del(ctx, s.prefix+key).Err(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "redis del")
	}
	return nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

// Close closes the pool
func (s *Store) Close() error { return s.c.Close() }
