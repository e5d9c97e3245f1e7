// Package langid provides a layered, deterministic language identifier
// Detection order
// 1 script ranges (Arabic, Hangul, Devanagari, CJK, Cyrillic) -> high
// 2 stop-word scoring over a per-language table -> medium
// 3 English stop-word ratio -> medium, else configured default -> low
package langid

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel language codes
const (
	Unknown = "unknown"
	Mixed   = "mixed"
)

// Confidence is a coarse reliability tier attached to a result
type Confidence string

// Confidence tiers, strongest first
const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

func (c Confidence) rank() int {
	switch c {
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// Weaker returns the weaker of two tiers
func Weaker(a, b Confidence) Confidence {
	if b.rank() < a.rank() {
		return b
	}
	return a
}

// AtLeast reports whether c is as strong as min
func (c Confidence) AtLeast(min Confidence) bool { return c.rank() >= min.rank() }

// Method names the layer that produced a result
type Method string

// Detection layers
const (
	MethodEmpty      Method = "empty"
	MethodScript     Method = "script"
	MethodDictionary Method = "dictionary"
	MethodRatio      Method = "ratio"
	MethodDefault    Method = "default"
)

// Result is the outcome of a single detection
type Result struct {
	Lang       string     `json:"lang"`
	Confidence Confidence `json:"confidence"`
	Method     Method     `json:"method,omitempty"`
	Score      int        `json:"score,omitempty"`
}

// Resolved reports whether the result names a concrete language
func (r Result) Resolved() bool { return r.Lang != "" && r.Lang != Unknown && r.Lang != Mixed }

// Detector holds a compiled configuration; it is immutable after New and safe for concurrent use
type Detector struct {
	scripts    []ScriptRule
	langs      []compiledLang
	english    map[string]struct{}
	ratio      float64
	defaultTag string
}

type compiledLang struct {
	code     string
	minScore int
	// forms maps an accepted surface form to the base stop-words it satisfies
	forms map[string][]int
	words int
}

// lowerPool holds lower-casing transformers; a Caser is stateful and must not be shared
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// New compiles a Detector from options applied over the default table
func New(opts ...Option) *Detector {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	d := &Detector{
		scripts:    append([]ScriptRule(nil), cfg.scripts...),
		ratio:      cfg.ratio,
		defaultTag: strings.ToLower(strings.TrimSpace(cfg.defaultLang)),
		english:    map[string]struct{}{},
	}

	for _, l := range cfg.table {
		cl := compiledLang{
			code:     l.Code,
			minScore: l.MinScore,
			forms:    map[string][]int{},
		}
		if cl.minScore <= 0 {
			cl.minScore = cfg.minScore
		}
		bases := map[string]struct{}{}
		for _, w := range l.Words {
			w = lower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if _, dup := bases[w]; dup {
				continue
			}
			bases[w] = struct{}{}
			idx := cl.words
			cl.words++
			cl.forms[w] = append(cl.forms[w], idx)
			for _, suf := range l.Suffixes {
				cl.forms[w+suf] = append(cl.forms[w+suf], idx)
			}
		}
		d.langs = append(d.langs, cl)
	}
	for _, w := range cfg.ratioWords {
		if w = lower(strings.TrimSpace(w)); w != "" {
			d.english[w] = struct{}{}
		}
	}
	return d
}

// DefaultLang returns the configured fallback language, empty when none
func (d *Detector) DefaultLang() string { return d.defaultTag }

// Languages returns the scored language codes in table order
func (d *Detector) Languages() []string {
	out := make([]string, 0, len(d.langs))
	for _, l := range d.langs {
		out = append(out, l.code)
	}
	return out
}

var std = New()

// Detect runs the default Detector
func Detect(text string) Result { return std.Detect(text) }

// Detect classifies text; it never panics and never returns an error
func (d *Detector) Detect(text string) Result {
	text = strings.ToValidUTF8(text, "")
	if strings.TrimSpace(text) == "" {
		return Result{Lang: Unknown, Confidence: Low, Method: MethodEmpty}
	}

	if lang, ok := d.detectScript(text); ok {
		return Result{Lang: lang, Confidence: High, Method: MethodScript}
	}

	lowered := lower(text)

	if lang, score, ok := d.score(lowered); ok {
		return Result{Lang: lang, Confidence: Medium, Method: MethodDictionary, Score: score}
	}

	if d.englishRatio(lowered) > d.ratio {
		return Result{Lang: "en", Confidence: Medium, Method: MethodRatio}
	}

	if d.defaultTag != "" {
		return Result{Lang: d.defaultTag, Confidence: Low, Method: MethodDefault}
	}
	return Result{Lang: Unknown, Confidence: Low, Method: MethodDefault}
}

func (d *Detector) detectScript(text string) (string, bool) {
	for _, rule := range d.scripts {
		if lang, ok := rule.Resolve(text); ok {
			return lang, true
		}
	}
	return "", false
}

// score returns the best scoring language when it reaches its own threshold
// only the top scorer is tested, so a tie lost to a stricter language leaves the text unresolved
// ties keep the first language in table order
// a token counts at most once even when a suffix form makes it match two stop-words
func (d *Detector) score(lowered string) (string, int, bool) {
	tokens := distinct(words(lowered))
	if len(tokens) == 0 {
		return "", 0, false
	}

	var (
		best      *compiledLang
		bestScore int
	)
	for i := range d.langs {
		l := &d.langs[i]
		seen := make([]bool, l.words)
		n := 0
		for _, tok := range tokens {
			hit := false
			for _, idx := range l.forms[tok] {
				if !seen[idx] {
					seen[idx] = true
					hit = true
				}
			}
			if hit {
				n++
			}
		}
		if n > bestScore {
			best, bestScore = l, n
		}
	}
	if best == nil || bestScore < best.minScore {
		return "", bestScore, false
	}
	return best.code, bestScore, true
}

// englishRatio is the share of whitespace tokens that are English stop-words
func (d *Detector) englishRatio(lowered string) float64 {
	fields := strings.Fields(lowered)
	if len(fields) == 0 || len(d.english) == 0 {
		return 0
	}
	hits := 0
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool { return !isWordRune(r) })
		if _, ok := d.english[f]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(fields))
}

// words splits on anything that is not a letter, mark or digit
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !isWordRune(r) })
}

// distinct keeps the first occurrence of each token
func distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

func lower(s string) string {
	c := lowerPool.Get().(*cases.Caser)
	out := c.String(s)
	lowerPool.Put(c)
	return out
}
