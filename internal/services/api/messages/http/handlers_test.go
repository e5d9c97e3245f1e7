package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	perr "langrelay/internal/platform/errors"
	phttp "langrelay/internal/platform/net/http"
	"langrelay/internal/platform/testkit"
	"langrelay/internal/services/api/messages/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	got    []string
	latest domain.Message
}

func (f *fakeSvc) Receive(_ context.Context, raw string) (domain.Stored, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Stored{}, perr.Validationf("No message provided")
	}
	f.got = append(f.got, raw)
	return domain.Stored{ID: int64(len(f.got)), Status: domain.StoredStatus}, nil
}

func (f *fakeSvc) Latest(context.Context) (domain.Message, error) {
	if f.latest.ID == 0 {
		return domain.Message{}, perr.NotFoundf("no message stored yet")
	}
	return f.latest, nil
}

func (f *fakeSvc) UpdateTranslation(context.Context, int64, string, string) error { return nil }
func (f *fakeSvc) EnsureSchema(context.Context) error                             { return nil }

func router(s *fakeSvc) *chi.Mux {
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), s)
	return m
}

func TestReceive(t *testing.T) {
	tests := []struct {
		name   string
		ctype  string
		body   string
		status int
		want   string
	}{
		{"plain text", "text/plain", "Hallo Welt", 201, "Hallo Welt"},
		{"no content type", "", "raw body", 201, "raw body"},
		{"json message", "application/json; charset=utf-8", `{"message":"Bonjour"}`, 201, "Bonjour"},
		{"json without message", "application/json", `{}`, 400, ""},
		{"json broken", "application/json", `{"message":`, 400, ""},
		{"empty", "text/plain", "", 400, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeSvc{}
			req := httptest.NewRequest("POST", "/receive", strings.NewReader(tc.body))
			if tc.ctype != "" {
				req.Header.Set("Content-Type", tc.ctype)
			}
			rec := httptest.NewRecorder()
			router(s).ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status == 201 {
				if len(s.got) != 1 || s.got[0] != tc.want {
					t.Fatalf("stored %v, want %q", s.got, tc.want)
				}
				testkit.MustContain(t, rec.Body.String(), `"status":"Message stored"`)
			}
		})
	}
}

func TestReceive_TooLarge(t *testing.T) {
	body := strings.Repeat("a", domain.MaxBodyBytes+1)
	rec := httptest.NewRecorder()
	router(&fakeSvc{}).ServeHTTP(rec, httptest.NewRequest("POST", "/receive", strings.NewReader(body)))
	if rec.Code != 413 {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestLatest(t *testing.T) {
	s := &fakeSvc{}
	rec := httptest.NewRecorder()
	router(s).ServeHTTP(rec, httptest.NewRequest("GET", "/latest", nil))
	if rec.Code != 404 {
		t.Fatalf("status = %d", rec.Code)
	}

	s.latest = domain.Message{ID: 7, Message: "hi"}
	rec = httptest.NewRecorder()
	router(s).ServeHTTP(rec, httptest.NewRequest("GET", "/latest", nil))
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"message":"hi"`)
}
