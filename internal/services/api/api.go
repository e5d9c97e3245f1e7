// Package api assembles the HTTP API from its modules
package api

import (
	"context"
	"errors"

	"langrelay/internal/core/version"
	"langrelay/internal/platform/cache"
	"langrelay/internal/platform/config"
	"langrelay/internal/platform/logger"
	phttp "langrelay/internal/platform/net/http"
	"langrelay/internal/platform/store"

	"langrelay/internal/modkit"
	"langrelay/internal/modkit/httpkit"
	"langrelay/internal/modkit/module"
	"langrelay/internal/modkit/swaggerkit"

	detdom "langrelay/internal/services/api/detect/domain"
	detmod "langrelay/internal/services/api/detect/module"
	msgmod "langrelay/internal/services/api/messages/module"
	metamod "langrelay/internal/services/api/meta/module"
	promptmod "langrelay/internal/services/api/prompts/module"
	trdom "langrelay/internal/services/api/translate/domain"
	trmod "langrelay/internal/services/api/translate/module"
	"langrelay/internal/services/web"
)

// Options are the API options
// Config is the root config; modules read their own prefixes from it
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Cache          cache.Store
	EnableSwagger  bool
	EnableProfiler bool

	// Prompts and Translate override the config built clients, mainly for tests
	Prompts   *promptmod.Options
	Translate *trmod.Options
}

// Mount builds every module, migrates their schemas and mounts them under /api/v1
// background workers run until ctx is done
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	if opt.Store == nil || opt.Store.PG == nil {
		return errors.New("api: postgres store is required")
	}
	log := logger.Named("api")

	deps := modkit.Deps{
		Log:   *log,
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		CH:    opt.Store.CH,
		Cache: opt.Cache,
	}

	detect := detmod.New(deps, detmod.FromConfig(opt.Config))

	// translate hangs GET /latest/translation off the messages router
	var translate *trmod.Module
	messages := msgmod.New(deps, modkit.WithRegister(func(r httpkit.Router) { translate.RegisterLatest(r) }))

	trOpts, err := translateOptions(opt)
	if err != nil {
		return err
	}
	translate = trmod.New(deps, trOpts, modkit.WithPorts(trdom.Ports{
		Messages: module.MustPortsOf[msgmod.Ports](messages).Messages,
		Detector: module.MustPortsOf[detdom.DetectorPort](detect),
	}))

	prOpts := promptmod.FromConfig(opt.Config)
	if opt.Prompts != nil {
		prOpts = *opt.Prompts
	}
	prompts := promptmod.New(deps, prOpts)

	meta := metamod.New(deps, metamod.Options{Detector: detect})

	if err := messages.Migrate(ctx); err != nil {
		return err
	}
	if err := detect.Migrate(ctx); err != nil {
		return err
	}
	go detect.Run(ctx)

	mods := []module.Module{meta, messages, detect, translate, prompts}

	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	web.Mount(r)

	stack := httpkit.CommonStack(httpkit.StackFromConfig(opt.Config.Prefix("CORE_API_")))
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	log.Info().
		Int("modules", len(mods)).
		Bool("analytics", deps.CH != nil).
		Bool("shared_cache", deps.Cache != nil).
		Msg("api mounted")
	return nil
}

func translateOptions(opt Options) (trmod.Options, error) {
	if opt.Translate != nil {
		return *opt.Translate, nil
	}
	return trmod.FromConfig(opt.Config)
}
