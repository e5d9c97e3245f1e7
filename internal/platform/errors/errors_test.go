package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnauthorized, http.StatusUnauthorized},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTooLarge, http.StatusRequestEntityTooLarge},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q", nilErr.Error())
	}

	cause := stderrs.New("dial tcp: refused")
	err := Wrap(cause, ErrorCodeUnavailable, "libre translate failed")
	if err.Error() != "libre translate failed: dial tcp: refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatalf("cause lost")
	}

	outer := fmt.Errorf("chain: %w", err)
	if CodeOf(outer) != ErrorCodeUnavailable || HTTPStatus(outer) != http.StatusServiceUnavailable {
		t.Fatalf("code not found through fmt wrapping")
	}
	w := WireFrom(outer)
	if w.Message != "libre translate failed" || w.Code != ErrorCodeUnavailable {
		t.Fatalf("wire = %+v; cause must not leak", w)
	}

	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatalf("WrapIf(nil) != nil")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors should be Unknown")
	}
	if got := WireFrom(stderrs.New("plain")); got.Message != "plain" {
		t.Fatalf("foreign wire = %+v", got)
	}
	if WireFrom(nil) != (Wire{}) {
		t.Fatalf("WireFrom(nil) not zero")
	}
}

func TestFieldAndOpAreCopyOnWrite(t *testing.T) {
	base := Validationf("prompt is required")
	withField := WithField(base, "prompt")
	withOp := WithOp(withField, "prompts.submit")

	if e, _ := As(base); e.Field() != "" || e.Op() != "" {
		t.Fatalf("base mutated: %+v", e)
	}
	e, _ := As(withOp)
	if e.Field() != "prompt" || e.Op() != "prompts.submit" || e.Message() != "prompt is required" {
		t.Fatalf("copy = field %q op %q msg %q", e.Field(), e.Op(), e.Message())
	}
	if WireFrom(withOp).Field != "prompt" {
		t.Fatalf("field missing on wire")
	}

	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain || WithOp(plain, "y") != plain {
		t.Fatalf("foreign errors must be returned unchanged")
	}
}

func TestSugarConstructors(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{NotFoundf("prompt %s", "x"), ErrorCodeNotFound},
		{Validationf("v"), ErrorCodeValidation},
		{InvalidArgf("a"), ErrorCodeInvalidArgument},
		{JSONErrf("j"), ErrorCodeJSON},
		{PanicErrf("p"), ErrorCodePanic},
		{Unauthorizedf("u"), ErrorCodeUnauthorized},
		{Unavailablef("u"), ErrorCodeUnavailable},
		{TooLargef("t"), ErrorCodeTooLarge},
		{Internalf("i"), ErrorCodeUnknown},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) {
			t.Fatalf("%v: code %v, want %v", c.err, CodeOf(c.err), c.code)
		}
	}
}

func TestFromStatus(t *testing.T) {
	cases := map[int]ErrorCode{
		http.StatusUnauthorized:        ErrorCodeUnauthorized,
		http.StatusForbidden:           ErrorCodeUnauthorized,
		http.StatusTooManyRequests:     ErrorCodeTooManyRequests,
		http.StatusBadGateway:          ErrorCodeUnavailable,
		http.StatusInternalServerError: ErrorCodeUnavailable,
		http.StatusBadRequest:          ErrorCodeUnavailable,
	}
	for status, want := range cases {
		err := FromStatus(status, "upstream status %d", status)
		if CodeOf(err) != want {
			t.Fatalf("FromStatus(%d) = %v, want %v", status, CodeOf(err), want)
		}
	}
}
