package http

import (
	stdctx "context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	phttp "langrelay/internal/platform/net/http"
	"langrelay/internal/platform/testkit"
	detdom "langrelay/internal/services/api/detect/domain"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

type det struct{}

func (det) Info() detdom.Info { return detdom.Info{DefaultLang: "es", Languages: []string{"en"}} }

func get(t *testing.T, d Deps, path string) string {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), d)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	if rec.Code != 200 {
		t.Fatalf("%s status = %d", path, rec.Code)
	}
	return rec.Body.String()
}

func TestReady(t *testing.T) {
	tests := []struct {
		name   string
		checks []Check
		want   []string
	}{
		{"all ok", []Check{{"pg", pinger{}}, {"ch", nil}, {"cache", struct{}{}}},
			[]string{`"status":"ok","checks"`, `"name":"ch","status":"skipped"`, `"name":"cache","status":"local"`}},
		{"pg down", []Check{{"pg", pinger{errors.New("refused")}}},
			[]string{`"status":"fail","checks"`, `"error":"refused"`}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := get(t, Deps{ServiceName: "x", Checks: tc.checks}, "/ready")
			for _, w := range tc.want {
				testkit.MustContain(t, body, w)
			}
		})
	}
}

func TestInfoRoutes(t *testing.T) {
	d := Deps{ServiceName: "langrelay-api", StartedAt: time.Now().Add(-time.Minute), Detector: det{}}
	testkit.MustContain(t, get(t, d, "/health"), `"service":"langrelay-api"`)
	testkit.MustContain(t, get(t, d, "/version"), `"service":"langrelay-api"`)
	testkit.MustContain(t, get(t, d, "/service"), `"name":"langrelay-api"`)
	testkit.MustContain(t, get(t, d, "/langid"), `"default_lang":"es"`)
}

func TestLangIDOptional(t *testing.T) {
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), Deps{})
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/langid", nil))
	if rec.Code != 404 {
		t.Fatalf("status = %d", rec.Code)
	}
}
