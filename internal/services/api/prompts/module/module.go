// Package module wires prompt submission into the API using modkit
package module

import (
	"net/http"

	modkit "langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	"langrelay/internal/platform/cache"
	"langrelay/internal/platform/cache/memory"
	str "langrelay/internal/platform/strings"
	prompthttp "langrelay/internal/services/api/prompts/http"
	promptsvc "langrelay/internal/services/api/prompts/service"
)

// Module implements the prompts module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	svc   promptsvc.Service
	local *memory.Store
}

// New constructs the prompts module; deps.Cache falls back to a process local store
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("prompts"), modkit.WithPrefix("/prompts")}, opts...)...)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	var store cache.Store = deps.Cache
	if store == nil {
		m.local = memory.New(o.MaxEntries, o.TTL)
		store = m.local
	}
	m.svc = promptsvc.New(o.LLM, store, o.TTL)

	external := b.Register
	m.register = func(r httpkit.Router) {
		prompthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// Cache returns the store the module writes to
func (m *Module) Cache() cache.Store {
	if m.local != nil {
		return m.local
	}
	return m.deps.Cache
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

// Ports returns the module ports; prompts exports none
func (m *Module) Ports() any { return nil }
