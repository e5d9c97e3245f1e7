package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "langrelay/internal/platform/errors"
	pnet "langrelay/internal/platform/net"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestHandle_StatusAndEnvelope(t *testing.T) {
	tests := []struct {
		name   string
		resp   Response
		status int
		code   perr.ErrorCode
	}{
		{"ok", OK(map[string]int{"n": 1}), 200, 0},
		{"created", Created("x"), 201, 0},
		{"zero status", Response{Body: "x"}, 200, 0},
		{"not found", Error(perr.NotFoundf("gone")), 404, perr.ErrorCodeNotFound},
		{"plain error", Error(errors.New("boom")), 500, perr.ErrorCodeUnknown},
		{"too large", Error(perr.TooLargef("big")), 413, perr.ErrorCodeTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1"))
			rec := httptest.NewRecorder()
			Handle(func(*stdhttp.Request) Response { return tc.resp })(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			env := decode(t, rec)
			if env.StatusCode != tc.status || env.RequestID != "rid-1" || env.Code != tc.code {
				t.Fatalf("envelope = %+v", env)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Fatalf("content type = %q", ct)
			}
		})
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := NoContent()
	resp.Header = stdhttp.Header{"X-Thing": {"1"}}
	Handle(func(*stdhttp.Request) Response { return resp })(rec, httptest.NewRequest("DELETE", "/", nil))
	if rec.Code != 204 || rec.Body.Len() != 0 {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Thing") != "1" {
		t.Fatalf("header not copied")
	}
}

func TestJSONHandler(t *testing.T) {
	type in struct {
		Text string `json:"text" validate:"required"`
	}
	h := JSONHandler(func(_ *stdhttp.Request, v in) (any, error) {
		if v.Text == "fail" {
			return nil, perr.Unavailablef("down")
		}
		if v.Text == "make" {
			return Created(v.Text), nil
		}
		return map[string]string{"echo": v.Text}, nil
	})

	cases := []struct {
		body   string
		status int
	}{
		{`{"text":"hi"}`, 200},
		{`{"text":"make"}`, 201},
		{`{"text":"fail"}`, 503},
		{`{}`, 400},
		{`{`, 400},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("POST", "/", strings.NewReader(c.body)))
		if rec.Code != c.status {
			t.Fatalf("%s: status = %d, want %d (%s)", c.body, rec.Code, c.status, rec.Body.String())
		}
	}
}

func TestNoBodyHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NoBodyHandler(func(*stdhttp.Request) (any, error) { return []int{1, 2}, nil })(rec, httptest.NewRequest("GET", "/", nil))
	env := decode(t, rec)
	if rec.Code != 200 || env.Status != "OK" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}
