package pg

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"langrelay/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	if _, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestOpen_NewPoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db"}, nil, nil); err == nil {
		t.Fatalf("expected newPool error, got nil")
	}
}

func TestOpen_AppliesConfig(t *testing.T) {
	testkit.Serial(t)
	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return &pgxpool.Pool{}, nil
	})

	var mutCalled atomic.Bool
	cfg := Config{URL: "postgres://u:p@h:5432/db?sslmode=disable", MaxConns: 7, SlowMs: 123, AppName: "langrelay-api"}
	p, err := Open(context.Background(), cfg, nil, func(*pgxpool.Config) { mutCalled.Store(true) })
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !mutCalled.Load() || p.SlowMs != 123 {
		t.Fatalf("mutator=%v slow=%d", mutCalled.Load(), p.SlowMs)
	}
	if seen.MaxConns != 7 || seen.ConnConfig.RuntimeParams["application_name"] != "langrelay-api" {
		t.Fatalf("pool config not applied: max=%d params=%v", seen.MaxConns, seen.ConnConfig.RuntimeParams)
	}
}

func TestRetry(t *testing.T) {
	b := Backoff{Attempts: 3, Timeout: time.Second, Start: time.Millisecond, Ceiling: 2 * time.Millisecond}

	calls := 0
	err := retry(context.Background(), b, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}

	calls = 0
	err = retry(context.Background(), b, func(context.Context) error { calls++; return errors.New("down") })
	if err == nil || calls != 3 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retry(ctx, Backoff{Attempts: 5, Timeout: time.Second, Start: time.Second, Ceiling: time.Second},
		func(context.Context) error { return errors.New("down") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
