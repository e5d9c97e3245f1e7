// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"langrelay/internal/platform/store"
)

type (
	// Queryer is the read and write surface SQL repos bind to
	Queryer = store.RowQuerier
	// TxRunner can execute a function inside a transaction
	TxRunner = store.TxRunner
	// Rows are the result set of a query
	Rows = store.Rows
	// Row is a single row result from a query
	Row = store.Row
	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
	// Clickhouse is the analytics seam
	Clickhouse = store.Clickhouse
)

// WithTx runs fn inside a transaction
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
