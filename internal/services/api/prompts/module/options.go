package module

import (
	"time"

	"langrelay/internal/adapters/llm/openrouter"
	"langrelay/internal/platform/cache"
	"langrelay/internal/platform/config"
	promptsvc "langrelay/internal/services/api/prompts/service"
)

// Options configure the prompts module
type Options struct {
	LLM promptsvc.Completer
	TTL time.Duration

	// MaxEntries bounds the memory cache used when Deps.Cache is nil
	MaxEntries int
}

// FromConfig reads the model client, TTL and MAX_ENTRIES under CORE_PROMPTS_
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_PROMPTS_")
	return Options{
		LLM:        openrouter.FromConfig(c),
		TTL:        c.MayDuration("TTL", cache.DefaultTTL),
		MaxEntries: c.MayInt("MAX_ENTRIES", 1000),
	}
}
