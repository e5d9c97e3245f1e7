// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	str "langrelay/internal/platform/strings"

	metahttp "langrelay/internal/services/api/meta/http"
)

// Options configure what meta reports
type Options struct {
	ServiceName string
	Detector    metahttp.Detector
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module; readiness covers deps.PG, deps.CH and deps.Cache
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	if o.ServiceName == "" {
		o.ServiceName = "langrelay-api"
	}
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	// interface values are copied only when set so an absent backend reads as skipped
	checks := []metahttp.Check{{Name: "pg"}, {Name: "ch"}, {Name: "cache"}}
	if deps.PG != nil {
		checks[0].Target = deps.PG
	}
	if deps.CH != nil {
		checks[1].Target = deps.CH
	}
	if deps.Cache != nil {
		checks[2].Target = deps.Cache
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: o.ServiceName,
			StartedAt:   m.startedAt,
			Checks:      checks,
			Detector:    o.Detector,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
