package module

import (
	"net/http/httptest"
	"testing"

	modkit "langrelay/internal/modkit"
	"langrelay/internal/platform/cache/memory"
	phttp "langrelay/internal/platform/net/http"
	"langrelay/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestReadyReportsDeps(t *testing.T) {
	m := New(modkit.Deps{Cache: memory.New(1, 0)}, Options{})
	if m.Name() != "meta" || m.Prefix() != "/meta" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.Prefix())
	}
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/meta/ready", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	testkit.MustContain(t, body, `"name":"pg","status":"skipped"`)
	testkit.MustContain(t, body, `"name":"cache","status":"local"`)
	testkit.MustContain(t, body, `"status":"ok","checks"`)
}
