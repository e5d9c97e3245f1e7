package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"langrelay/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func TestChiAdapter_Routes(t *testing.T) {
	m := chi.NewRouter()
	r := AdaptChi(m)
	hit := ""
	mark := func(name string) Handler {
		return func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			hit = name + ":" + URLParam(req, "id")
			w.WriteHeader(204)
		}
	}
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-MW", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/v1", func(api Router) {
		api.Get("/things/{id}", mark("get"))
		api.Post("/things", mark("post"))
		api.Group(func(g Router) {
			g.Put("/things/{id}", mark("put"))
			g.Delete("/things/{id}", mark("del"))
		})
	})

	cases := []struct{ method, path, want string }{
		{"GET", "/v1/things/7", "get:7"},
		{"POST", "/v1/things", "post:"},
		{"PUT", "/v1/things/8", "put:8"},
		{"DELETE", "/v1/things/9", "del:9"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if hit != c.want || rec.Header().Get("X-MW") != "1" {
			t.Fatalf("%s %s: hit=%q mw=%q", c.method, c.path, hit, rec.Header().Get("X-MW"))
		}
	}
}

func TestMountProfiler(t *testing.T) {
	m := chi.NewRouter()
	MountProfiler(AdaptChi(m), "/debug", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != 404 {
		t.Fatalf("disabled profiler answered %d", rec.Code)
	}

	m = chi.NewRouter()
	MountProfiler(AdaptChi(m), "/debug", true)
	rec = httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/", nil))
	if rec.Code != 200 {
		t.Fatalf("profiler answered %d", rec.Code)
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Setenv("SRVTEST_PORT", "127.0.0.1:0")
	t.Setenv("SRVTEST_SHUTDOWN_GRACE", "2s")
	s := NewServer(config.New().Prefix("SRVTEST_"))
	s.Router().Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(200) })
	if err := s.Listen(); err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	resp, err := stdhttp.Get("http://" + s.Addr() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
