package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"langrelay/internal/platform/net/middleware"
)

func TestAccessLog_PassThrough(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond, Skip: []string{"/healthz"}})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hi")
		_, _ = io.WriteString(w, "there")
	})

	for _, path := range []string{"/x", "/healthz"} {
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
			t.Fatalf("%s: got %d %q", path, rr.Code, rr.Body.String())
		}
	}
}
