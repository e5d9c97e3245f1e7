// @title         langrelay API
// @version       0.1.0
// @description   Receive, translate and identify messages; submit prompts to a language model

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"langrelay/internal/core/version"
	"langrelay/internal/platform/cache"
	"langrelay/internal/platform/cache/redis"
	"langrelay/internal/platform/config"
	"langrelay/internal/platform/logger"
	phttp "langrelay/internal/platform/net/http"
	"langrelay/internal/platform/store"

	"langrelay/internal/services/api"
)

func main() {
	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = "langrelay-api"
	}
	logger.Init(opt)
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	st, err := store.Open(ctx, store.Config{
		AppName: "langrelay-api",
		PG: store.PGConfig{
			Enabled:        true,
			URL:            pgCfg.MustString("DBURL"),
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 0),
			PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 0),
		},
		CH: store.CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", false),
			URL:        chCfg.MayString("DBURL", ""),
			ClientName: "langrelay",
			ClientTag:  "api",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	shared, closeCache := openCache(ctx, root)
	defer closeCache()

	srv := phttp.NewServer(apiCfg)
	if err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Cache:          shared,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api.Mount failed")
	}

	l.Info().Str("build", version.Info().String()).Msg("langrelay-api starting")
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("langrelay-api stopped")
}

// openCache returns the shared response cache named by CORE_PROMPTS_CACHE
// memory yields nil so the prompts module keeps its own bounded store
func openCache(ctx context.Context, root config.Conf) (cache.Store, func()) {
	kind := root.Prefix("CORE_PROMPTS_").MayEnum("CACHE", string(cache.KindMemory), string(cache.KindMemory), string(cache.KindRedis))
	if cache.Kind(kind) != cache.KindRedis {
		return nil, func() {}
	}

	rc := root.Prefix("SERVICE_REDIS_")
	octx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	s, err := redis.Open(octx, redis.Config{
		Addr:     rc.MustString("ADDR"),
		Password: rc.MayString("PASSWORD", ""),
		DB:       rc.MayInt("DB", 0),
		Prefix:   rc.MayString("PREFIX", "langrelay:prompts:"),
	})
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("redis.Open failed")
	}
	return s, func() {
		if err := s.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close redis")
		}
	}
}
