package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"langrelay/internal/platform/config"
	"langrelay/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	Slow        time.Duration
	CORSOrigins []string
}

// StackFromConfig reads TIMEOUT, SLOW_REQUEST and CORS_ORIGINS under cfg's prefix
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Timeout:     cfg.MayDuration("TIMEOUT", 60*time.Second),
		Slow:        cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}
}

// CommonStack is the middleware every /api/v1 route runs through
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestContext,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Skip: []string{"/api/v1/health"}}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/api/v1/health"),
		middleware.Timeout(o.Timeout),
	}
}
