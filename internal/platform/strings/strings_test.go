package strings

import (
	"testing"

	"langrelay/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []int{1}); len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got := IfEmpty([]int{2, 3}, []int{1}); len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestMustString(t *testing.T) {
	if MustString("x", "name") != "x" {
		t.Fatal("MustString changed input")
	}
	testkit.MustPanic(t, func() { MustString("  ", "name") })
}

func TestMustPrefix(t *testing.T) {
	tests := map[string]string{
		"messages":    "/messages",
		"/prompts/":   "/prompts",
		"  /detect  ": "/detect",
		"a/b":         "/a/b",
	}
	for in, want := range tests {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello…"},
		{"héllo wörld", 4, "héll…"},
		{"anything", 0, "anything"},
	}
	for _, tc := range tests {
		if got := Truncate(tc.in, tc.n); got != tc.want {
			t.Fatalf("Truncate(%q,%d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestSQLNullAndDeref(t *testing.T) {
	if SQLNull(" ") != nil || SQLNull("x") != "x" {
		t.Fatal("SQLNull")
	}
	s := "v"
	if Deref(nil) != "" || Deref(&s) != "v" {
		t.Fatal("Deref")
	}
}
