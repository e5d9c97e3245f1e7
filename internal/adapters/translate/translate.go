// Package translate calls third party translation APIs through an ordered fallback chain
package translate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"langrelay/internal/platform/config"
	perr "langrelay/internal/platform/errors"
	"langrelay/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "langrelay"
	maxResponseBytes = 1 << 20
)

// Backend is one translation provider
type Backend interface {
	Name() string
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Result is a translated text and the backend that produced it
type Result struct {
	Text    string
	Backend string
}

// Chain tries its backends in order and returns the first success
type Chain struct {
	backends []Backend
	log      logger.Logger
}

// NewChain builds a chain; order is preference order
func NewChain(backends ...Backend) *Chain {
	return &Chain{backends: backends, log: *logger.Named("translate")}
}

// Backends lists backend names in order
func (c *Chain) Backends() []string {
	out := make([]string, 0, len(c.backends))
	for _, b := range c.backends {
		out = append(out, b.Name())
	}
	return out
}

// Translate returns the first backend success
// when every backend fails the error is Unavailable and wraps the last failure
func (c *Chain) Translate(ctx context.Context, text, source, target string) (Result, error) {
	if len(c.backends) == 0 {
		return Result{}, perr.Unavailablef("no translation backends configured")
	}
	var last error
	for _, b := range c.backends {
		start := time.Now()
		out, err := b.Translate(ctx, text, source, target)
		if err == nil {
			c.log.Debug().Str("backend", b.Name()).Str("source", source).Str("target", target).
				Dur("latency", time.Since(start)).Msg("translated")
			return Result{Text: out, Backend: b.Name()}, nil
		}
		last = err
		c.log.Warn().Err(err).Str("backend", b.Name()).Str("source", source).Str("target", target).
			Dur("latency", time.Since(start)).Msg("translation backend failed")
		if ctx.Err() != nil {
			break
		}
	}
	return Result{}, perr.Wrapf(last, perr.ErrorCodeUnavailable, "all translation backends failed")
}

// Options configures the built in backends
type Options struct {
	Backends      []string
	LibreURL      string
	LibreKey      string
	MyMemoryURL   string
	MyMemoryEmail string
	Timeout       time.Duration
}

// OptionsFromConfig reads BACKENDS, LIBRE_URL, LIBRE_KEY, MYMEMORY_URL, MYMEMORY_EMAIL and TIMEOUT
func OptionsFromConfig(cfg config.Conf) Options {
	return Options{
		Backends:      cfg.MayCSV("BACKENDS", []string{"libre", "mymemory"}),
		LibreURL:      cfg.MayString("LIBRE_URL", "https://libretranslate.com"),
		LibreKey:      cfg.MayString("LIBRE_KEY", ""),
		MyMemoryURL:   cfg.MayString("MYMEMORY_URL", "https://api.mymemory.translated.net"),
		MyMemoryEmail: cfg.MayString("MYMEMORY_EMAIL", ""),
		Timeout:       cfg.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// New builds the chain named by o.Backends
func New(o Options) (*Chain, error) {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := &http.Client{Timeout: o.Timeout}
	var bs []Backend
	for _, name := range o.Backends {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "libre":
			bs = append(bs, NewLibre(hc, o.LibreURL, o.LibreKey))
		case "mymemory":
			bs = append(bs, NewMyMemory(hc, o.MyMemoryURL, o.MyMemoryEmail))
		case "":
		default:
			return nil, perr.InvalidArgf("unknown translation backend %q", name)
		}
	}
	return NewChain(bs...), nil
}

// FromConfig builds the chain from a CORE_TRANSLATE_ scoped config
func FromConfig(cfg config.Conf) (*Chain, error) { return New(OptionsFromConfig(cfg)) }

// do sends req and decodes a 200 JSON body into out
func do(hc *http.Client, req *http.Request, backend string, out any) error {
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")
	resp, err := hc.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s request failed", backend)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s read failed", backend)
	}
	if resp.StatusCode != http.StatusOK {
		return perr.FromStatus(resp.StatusCode, "%s returned %d: %s", backend, resp.StatusCode, snippet(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s returned invalid JSON", backend)
	}
	return nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
