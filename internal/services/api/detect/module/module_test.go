package module

import (
	"context"
	"testing"

	"langrelay/internal/core/langid"
	"langrelay/internal/modkit"
	"langrelay/internal/modkit/module"
	"langrelay/internal/platform/config"
	"langrelay/internal/services/api/detect/domain"
)

func TestFromConfig(t *testing.T) {
	t.Setenv("DTEST_CORE_LANGID_DEFAULT_LANG", "es")
	t.Setenv("DTEST_CORE_LANGID_MIN_SCORE", "1")
	t.Setenv("DTEST_SERVICE_CLICKHOUSE_BATCH_SIZE", "10")

	o := FromConfig(config.New().Prefix("DTEST_"))
	if o.Batch.Size != 10 {
		t.Fatalf("batch = %+v", o.Batch)
	}
	m := New(modkit.Deps{}, o)
	det := module.MustPortsOf[domain.DetectorPort](m)
	if det.DefaultLang() != "es" {
		t.Fatalf("default = %q", det.DefaultLang())
	}
	// min score 1 lets a single stop-word resolve
	if got := det.DetectText(context.Background(), "el gato", domain.SourceDetect); got.Lang != "es" {
		t.Fatalf("got %+v", got)
	}
}

func TestNoAnalytics(t *testing.T) {
	m := New(modkit.Deps{}, Options{})
	if err := m.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Run(ctx)
	if m.Name() != "detect" || m.Prefix() != "/detect" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.Prefix())
	}
}

func TestInfo(t *testing.T) {
	m := New(modkit.Deps{}, Options{Detector: []langid.Option{langid.WithDefault("pt")}})
	info := m.Info()
	if info.DefaultLang != "pt" || info.Analytics || len(info.Languages) != 7 || info.Languages[0] != "en" {
		t.Fatalf("info = %+v", info)
	}
}
