package module

import (
	"time"

	"langrelay/internal/core/langid"
	"langrelay/internal/platform/config"
	"langrelay/internal/services/api/detect/service"
)

// Options configure the detect module
type Options struct {
	Detector []langid.Option
	Batch    service.BatchConfig
}

// FromConfig reads CORE_LANGID_ for the identifier and SERVICE_CLICKHOUSE_ for the recorder
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("CORE_LANGID_")
	var det []langid.Option
	if v := lc.MayString("DEFAULT_LANG", ""); v != "" {
		det = append(det, langid.WithDefault(v))
	}
	det = append(det,
		langid.WithMinScore(lc.MayInt("MIN_SCORE", langid.DefaultMinScore)),
		langid.WithLanguageMinScore("de", lc.MayInt("GERMAN_MIN_SCORE", 2)),
		langid.WithEnglishRatio(lc.MayFloat64("ENGLISH_RATIO", langid.DefaultEnglishRatio)),
	)

	cc := cfg.Prefix("SERVICE_CLICKHOUSE_")
	return Options{
		Detector: det,
		Batch: service.BatchConfig{
			Size:  cc.MayInt("BATCH_SIZE", 500),
			Every: cc.MayDuration("FLUSH_EVERY", 5*time.Second),
		},
	}
}
