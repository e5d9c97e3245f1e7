// Package pg opens the Postgres pool behind the message store
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures pgxpool
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
	// AppName is reported to Postgres as application_name
	AppName string
}

// PG is a pool plus the tracer that queries report to
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg and creates the pool; mut may adjust the pool config last
// the pool connects lazily, use Ping to wait for the server
func Open(ctx context.Context, cfg Config, tracer QueryTracer, mut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.AppName != "" {
		pcfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	if mut != nil {
		mut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, SlowMs: cfg.SlowMs}, nil
}

// Backoff controls Ping retries
type Backoff struct {
	Attempts int
	Timeout  time.Duration
	Start    time.Duration
	Ceiling  time.Duration
}

// DefaultBackoff waits a bit over half a minute in total
var DefaultBackoff = Backoff{Attempts: 20, Timeout: 3 * time.Second, Start: 150 * time.Millisecond, Ceiling: 2 * time.Second}

// Ping retries the pool ping with exponential backoff until it succeeds, ctx ends or attempts run out
func (p *PG) Ping(ctx context.Context, b Backoff) error {
	return retry(ctx, b, func(ctx context.Context) error { return p.Pool.Ping(ctx) })
}

func retry(ctx context.Context, b Backoff, ping func(context.Context) error) error {
	if b.Attempts <= 0 {
		b.Attempts = 1
	}
	var lastErr error
	wait := b.Start
	for i := 0; i < b.Attempts; i++ {
		pctx, cancel := context.WithTimeout(ctx, b.Timeout)
		lastErr = ping(pctx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if i == b.Attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		if wait *= 2; wait > b.Ceiling {
			wait = b.Ceiling
		}
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", b.Attempts, lastErr)
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
