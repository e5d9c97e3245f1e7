package normalize

import "testing"

func TestClean_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity", in: "hello world", out: "hello world"},
		{name: "empty", in: "", out: ""},
		{name: "case preserved", in: "Der Hund", out: "Der Hund"},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}),
			out:  "foo bar",
		},
		{name: "controls dropped", in: "a\x00b\x07c\x7fd", out: "abcd"},
		{name: "c1 controls dropped", in: "x\u0085y", out: "xy"},
		{name: "zero widths removed", in: "wo​rd\uFEFF", out: "word"},
		{name: "nfc composes", in: "café", out: "café"},
		{name: "collapse spaces", in: "a \t  b", out: "a b"},
		{name: "line breaks kept", in: "one.\r\n\r\ntwo", out: "one.\ntwo"},
		{name: "trim edges", in: "  \n hi \n ", out: "hi"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.out {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestDropped(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{'\t', false},
		{'\n', false},
		{'\r', false},
		{'é', false},
		{'✓', false},
		{0x00, true},
		{0x1b, true},
		{0x7f, true},
		{0x85, true},
		{0x200b, true},
		{0xfeff, true},
		{0xfffd, true},
	}
	for _, tc := range tests {
		if got := Dropped(tc.r); got != tc.want {
			t.Fatalf("Dropped(%U) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestClean_KeepsCleanInput(t *testing.T) {
	in := "plain text\nwith lines and marks ✓ ñ"
	if got := Clean(in); got != in {
		t.Fatalf("Clean changed clean input: %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "​\n\t", string([]byte{0xff})} {
		if !IsBlank(in) {
			t.Fatalf("IsBlank(%q) = false", in)
		}
	}
	if IsBlank(" x ") {
		t.Fatalf("IsBlank(\" x \") = true")
	}
}
