// Package modkit provides module wiring and the shared infrastructure deps
package modkit

import (
	"langrelay/internal/modkit/repokit"
	"langrelay/internal/platform/cache"
	"langrelay/internal/platform/config"
	"langrelay/internal/platform/logger"
	"langrelay/internal/platform/store"
)

// Deps holds infrastructure shared by every module
// PG is required by modules that persist; CH and Cache may be nil
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    store.Clickhouse
	Cache cache.Store
}
