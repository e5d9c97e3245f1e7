// Package module wires translation into the API using modkit
package module

import (
	"net/http"

	modkit "langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	str "langrelay/internal/platform/strings"
	"langrelay/internal/services/api/translate/domain"
	trhttp "langrelay/internal/services/api/translate/http"
	trsvc "langrelay/internal/services/api/translate/service"
)

// Module implements the translate module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc *trsvc.Svc
}

// New constructs the translate module
// it requires WithPorts(domain.Ports) carrying the messages and detect ports
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("translate"), modkit.WithPrefix("/translate")}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("translate module: expected WithPorts(translate/domain.Ports)")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    trsvc.New(ports, o.Translator, o.Target),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// RegisterLatest mounts GET /latest/translation; pass it to the messages module WithRegister
func (m *Module) RegisterLatest(r httpkit.Router) { trhttp.RegisterLatest(r, m.svc) }

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

// Ports returns the module ports; translate exports none
func (m *Module) Ports() any { return nil }
