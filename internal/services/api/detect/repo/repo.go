// Package repo provides clickhouse access for detection analytics
package repo

import (
	"context"
	"time"

	"langrelay/internal/platform/store"
	"langrelay/internal/services/api/detect/domain"
)

// Table receives one row per recorded detection
const Table = "langrelay_detections"

// Repo is the analytics persistence surface
type Repo interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, xs []domain.Record) error
	Stats(ctx context.Context, since time.Time) ([]domain.StatRow, error)
}

type chRepo struct{ ch store.Clickhouse }

// NewCH binds the repo to a clickhouse client
func NewCH(ch store.Clickhouse) Repo {
	if ch == nil {
		panic("detect repo requires a non nil clickhouse client")
	}
	return &chRepo{ch: ch}
}

const schema = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
	ts         DateTime64(3, 'UTC'),
	lang       LowCardinality(String),
	confidence LowCardinality(String),
	chars      UInt32,
	source     LowCardinality(String)
)
ENGINE = MergeTree
PARTITION BY toYYYYMM(ts)
ORDER BY (ts, lang)
TTL toDateTime(ts) + INTERVAL 180 DAY
`

func (r *chRepo) EnsureSchema(ctx context.Context) error { return r.ch.Exec(ctx, schema) }

func (r *chRepo) Insert(ctx context.Context, xs []domain.Record) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, x := range xs {
		chars := x.Chars
		if chars < 0 {
			chars = 0
		}
		rows = append(rows, []any{x.At.UTC(), x.Lang, x.Confidence, uint32(chars), x.Source})
	}
	return r.ch.Insert(ctx, Table, rows)
}

func (r *chRepo) Stats(ctx context.Context, since time.Time) ([]domain.StatRow, error) {
	const sql = `
SELECT lang, confidence, count() AS n
FROM ` + Table + `
WHERE ts >= ?
GROUP BY lang, confidence
ORDER BY n DESC, lang ASC, confidence ASC
`
	rs, err := r.ch.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []domain.StatRow
	for rs.Next() {
		var row domain.StatRow
		if err := rs.Scan(&row.Lang, &row.Confidence, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rs.Err()
}
