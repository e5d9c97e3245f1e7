// Package normalize cleans inbound message text before it is stored
// Pipeline order
// 1 Drop runes a stored message may not carry, see Dropped
// 2 Unicode NFC composition
// 3 Collapse whitespace runs, keep line breaks, trim
//
// Case is preserved; the language identifier lower-cases on its own
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dropped reports whether r is stripped from stored messages: Cc and Cf runes
// other than tab and line breaks, plus utf8.RuneError, which runes.Remove
// reports for invalid bytes
func Dropped(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return false
	case r == utf8.RuneError:
		return true
	}
	return unicode.In(r, unicode.Cc, unicode.Cf)
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(runes.Remove(runes.Predicate(Dropped)), norm.NFC)
	},
}

// Clean returns s run through the pipeline described above
func Clean(s string) string {
	if s == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// strip without composing rather than keep a partial transform
		ns = strings.Map(func(r rune) rune {
			if Dropped(r) {
				return -1
			}
			return r
		}, s)
	}

	return collapseSpaces(ns)
}

// IsBlank reports whether s has nothing left after cleaning
func IsBlank(s string) bool { return Clean(s) == "" }

// collapseSpaces converts whitespace runs to a single ASCII space, but preserves line breaks.
// Runs that contain any newline are collapsed to a single newline. Edges are trimmed
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	sawNL := false
	flush := func() {
		if !inWS {
			return
		}
		if sawNL {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
		inWS = false
		sawNL = false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			if r == '\n' || r == '\r' {
				sawNL = true
			}
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return strings.Trim(b.String(), " \n\t\r")
}
