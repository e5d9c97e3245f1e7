package store

import (
	"context"

	chx "langrelay/internal/platform/store/ch"
	"langrelay/internal/platform/store/pg"
)

// openPG opens the pool, waits for the server, then publishes the adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	b := pg.DefaultBackoff
	if cfg.PG.ConnectRetries > 0 {
		b.Attempts = cfg.PG.ConnectRetries
	}
	if cfg.PG.PingTimeout > 0 {
		b.Timeout = cfg.PG.PingTimeout
	}
	if err := p.Ping(ctx, b); err != nil {
		p.Close()
		return nil, err
	}
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Bool("log_sql", cfg.PG.LogSQL).Msg("postgres ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:  cfg.CH.URL,
		Role: cfg.CH.ClientName,
		Tag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
