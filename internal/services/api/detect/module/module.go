// Package module wires language detection into the API using modkit
package module

import (
	"context"
	"net/http"

	"langrelay/internal/core/langid"
	modkit "langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	str "langrelay/internal/platform/strings"
	"langrelay/internal/services/api/detect/domain"
	dethttp "langrelay/internal/services/api/detect/http"
	detrepo "langrelay/internal/services/api/detect/repo"
	detsvc "langrelay/internal/services/api/detect/service"
)

// Module implements the detect module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)

	svc  *detsvc.Svc
	repo detrepo.Repo
	rec  *detsvc.BatchRecorder
}

// New constructs the detect module; analytics are on when deps.CH is set
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("detect"), modkit.WithPrefix("/detect")}, opts...)...)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	if deps.CH != nil {
		m.repo = detrepo.NewCH(deps.CH)
		m.rec = detsvc.NewBatchRecorder(m.repo, o.Batch)
		m.svc = detsvc.New(langid.New(o.Detector...), m.rec, m.repo)
	} else {
		m.svc = detsvc.New(langid.New(o.Detector...), detsvc.NopRecorder{}, nil)
	}
	m.ports = Ports{Detector: m.svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		dethttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Migrate creates the analytics table when analytics are on
func (m *Module) Migrate(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.EnsureSchema(ctx)
}

// Run drains the analytics recorder until ctx ends; without analytics it returns at once
func (m *Module) Run(ctx context.Context) {
	if m.rec != nil {
		m.rec.Run(ctx)
	}
}

// Info reports the identifier configuration and recorder counters
func (m *Module) Info() domain.Info {
	out := domain.Info{
		DefaultLang: m.svc.DefaultLang(),
		Languages:   m.svc.Languages(),
		Analytics:   m.rec != nil,
	}
	if m.rec != nil {
		out.Dropped, out.Failed = m.rec.Dropped(), m.rec.Failed()
	}
	return out
}

// MountRoutes mounts the module routes on the given router
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
