package langid

// DefaultMinScore is the stop-word threshold for languages without their own
const DefaultMinScore = 3

// DefaultEnglishRatio is the share of English stop-words above which text is called English
const DefaultEnglishRatio = 0.3

type config struct {
	table       []Language
	scripts     []ScriptRule
	minScore    int
	ratio       float64
	ratioWords  []string
	defaultLang string
}

func defaultConfig() config {
	return config{
		table:      DefaultTable(),
		scripts:    DefaultScripts(),
		minScore:   DefaultMinScore,
		ratio:      DefaultEnglishRatio,
		ratioWords: RatioWords(),
	}
}

// Option mutates the detector configuration before compilation
type Option func(*config)

// WithTable replaces the stop-word table; order is the tie-break order
func WithTable(t []Language) Option {
	return func(c *config) { c.table = append([]Language(nil), t...) }
}

// WithScripts replaces the script rules; order is priority order
func WithScripts(rules ...ScriptRule) Option {
	return func(c *config) { c.scripts = append([]ScriptRule(nil), rules...) }
}

// WithMinScore sets the default stop-word threshold; values < 1 are ignored
func WithMinScore(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.minScore = n
		}
	}
}

// WithLanguageMinScore overrides the threshold of one table language
func WithLanguageMinScore(code string, n int) Option {
	return func(c *config) {
		if n <= 0 {
			return
		}
		for i := range c.table {
			if c.table[i].Code == code {
				c.table[i].MinScore = n
			}
		}
	}
}

// WithEnglishRatio sets the ratio threshold; values outside (0,1] are ignored
func WithEnglishRatio(r float64) Option {
	return func(c *config) {
		if r > 0 && r <= 1 {
			c.ratio = r
		}
	}
}

// WithRatioWords replaces the English list counted by the ratio fallback
// an empty list turns the fallback off
func WithRatioWords(words ...string) Option {
	return func(c *config) { c.ratioWords = append([]string(nil), words...) }
}

// WithDefault sets the language returned with low confidence when nothing matched
// an empty code means unknown
func WithDefault(code string) Option {
	return func(c *config) { c.defaultLang = code }
}
