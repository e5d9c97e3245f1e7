//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"langrelay/internal/platform/store/pg/pgtest"
)

func TestOpenAndPing_Integration(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, MaxConns: 2, AppName: "langrelay-pg-integration"}, nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(p.Close)

	if err := p.Ping(ctx, DefaultBackoff); err != nil {
		t.Fatalf("ping: %v", err)
	}
	var app string
	if err := p.Pool.QueryRow(ctx, `select current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("query: %v", err)
	}
	if app != "langrelay-pg-integration" {
		t.Fatalf("application_name = %q", app)
	}
}
