//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/store"
	"langrelay/internal/platform/store/pg/pgtest"
)

func TestRepo_Integration(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{AppName: "messages-it", PG: store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2}})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	r := NewPG().Bind(st.PG)
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	// idempotent
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema again: %v", err)
	}

	if _, err := r.Latest(ctx); !perr.IsCode(perr.FromPostgres(err, "latest"), perr.ErrorCodeNotFound) {
		t.Fatalf("empty latest err = %v", err)
	}

	first, err := r.Insert(ctx, "first")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := r.Insert(ctx, "Der Hund ist müde")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second <= first {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}

	m, err := r.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if m.ID != second || m.Message != "Der Hund ist müde" || m.Lang != nil || m.TranslatedText != nil {
		t.Fatalf("latest = %+v", m)
	}

	if err := r.UpdateTranslation(ctx, second, "de", "The dog is tired"); err != nil {
		t.Fatalf("update: %v", err)
	}
	m, _ = r.Latest(ctx)
	if !m.Translated() || *m.Lang != "de" || *m.TranslatedText != "The dog is tired" {
		t.Fatalf("after update = %+v", m)
	}
	if m.UpdatedAt.Before(m.CreatedAt) {
		t.Fatalf("updated_at %v before created_at %v", m.UpdatedAt, m.CreatedAt)
	}

	if err := r.UpdateTranslation(ctx, 1<<40, "de", "x"); !perr.IsCode(perr.FromPostgres(err, "update"), perr.ErrorCodeNotFound) {
		t.Fatalf("missing id err = %v", err)
	}
}
