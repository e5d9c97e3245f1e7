// Package cache is the byte cache port with memory and redis implementations
package cache

import (
	"context"
	"time"
)

// Store keeps opaque values for a bounded time
// Get reports a missing or expired key as ok=false with a nil error
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Kind names a Store implementation in configuration
type Kind string

const (
	// KindMemory is the in process store
	KindMemory Kind = "memory"
	// KindRedis is the shared redis store
	KindRedis Kind = "redis"
)

// DefaultTTL applies when callers pass ttl <= 0
const DefaultTTL = time.Hour
