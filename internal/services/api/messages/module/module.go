// Package module wires messages into the API using modkit
package module

import (
	"context"
	"net/http"

	modkit "langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	str "langrelay/internal/platform/strings"
	msghttp "langrelay/internal/services/api/messages/http"
	msgrepo "langrelay/internal/services/api/messages/repo"
	msgsvc "langrelay/internal/services/api/messages/service"
)

// Module implements the messages module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)

	svc msgsvc.Service
}

// New constructs the messages module; deps.PG is required
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("messages"), modkit.WithPrefix("/messages")}, opts...)...)

	svc := msgsvc.New(deps.PG, msgrepo.NewPG())
	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		ports:  Ports{Messages: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		msghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Migrate creates the messages table when missing
func (m *Module) Migrate(ctx context.Context) error { return m.svc.EnsureSchema(ctx) }

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

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
