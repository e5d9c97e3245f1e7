package module

import (
	"langrelay/internal/adapters/translate"
	"langrelay/internal/platform/config"
	"langrelay/internal/services/api/translate/domain"
	trsvc "langrelay/internal/services/api/translate/service"
)

// Options configure the translate module
type Options struct {
	Translator trsvc.Translator
	Target     string
}

// FromConfig reads TARGET and the backend chain under CORE_TRANSLATE_
func FromConfig(cfg config.Conf) (Options, error) {
	c := cfg.Prefix("CORE_TRANSLATE_")
	chain, err := translate.FromConfig(c)
	if err != nil {
		return Options{}, err
	}
	return Options{Translator: chain, Target: c.MayString("TARGET", domain.DefaultTarget)}, nil
}
