// Package memory is an in process cache.Store backed by an expirable LRU
package memory

import (
	"context"
	"time"

	"langrelay/internal/platform/cache"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxEntries bounds the store when no limit is given
const DefaultMaxEntries = 10000

type entry struct {
	val     []byte
	expires time.Time
}

// Store is safe for concurrent use
// reads use Peek so eviction follows insertion order, oldest first
// a per call ttl longer than the store ttl is capped by the LRU's own expiry
type Store struct {
	lru *expirable.LRU[string, entry]
	ttl time.Duration
	now func() time.Time
}

var _ cache.Store = (*Store)(nil)

// New returns a store holding at most max entries for at most ttl
// max <= 0 means DefaultMaxEntries, ttl <= 0 means cache.DefaultTTL
func New(max int, ttl time.Duration) *Store {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Store{
		lru: expirable.NewLRU[string, entry](max, nil, ttl),
		ttl: ttl,
		now: time.Now,
	}
}

// TTL returns the store wide expiry ceiling
func (s *Store) TTL() time.Duration { return s.ttl }

// Get returns a copy of the value; entries past their own ttl are dropped on read
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.lru.Peek(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expires) {
		s.lru.Remove(key)
		return nil, false, nil
	}
	return append([]byte(nil), e.val...), true, nil
}

// Set stores a copy of val; overwriting a key makes it the newest entry
func (s *Store) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	if ttl <= 0 || ttl > s.ttl {
		ttl = s.ttl
	}
	s.lru.Add(key, entry{val: append([]byte(nil), val...), expires: s.now().Add(ttl)})
	return nil
}

// Delete removes key; a missing key is not an error
func (s *Store) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, including ones past their own ttl until read
func (s *Store) Len() int { return s.lru.Len() }
