package langid

import "unicode"

// Language is one row of the stop-word table
type Language struct {
	Code  string
	Words []string
	// MinScore is the number of distinct stop-words required to accept this language
	// zero means the table wide default
	MinScore int
	// Suffixes lets a stop-word also match word+suffix (used for German inflection)
	Suffixes []string
}

// ScriptRule resolves a language from the writing system alone
type ScriptRule struct {
	Name    string
	Resolve func(text string) (lang string, ok bool)
}

// AnyOf builds a rule that fires when any rune of text falls in one of the tables
func AnyOf(name, lang string, tables ...*unicode.RangeTable) ScriptRule {
	return ScriptRule{
		Name: name,
		Resolve: func(text string) (string, bool) {
			for _, r := range text {
				if unicode.In(r, tables...) {
					return lang, true
				}
			}
			return "", false
		},
	}
}

// CJK disambiguates Chinese from Japanese by comparing Han against Kana counts
// Han > Kana -> zh, otherwise any Kana -> ja, otherwise no decision
func CJK() ScriptRule {
	return ScriptRule{
		Name: "cjk",
		Resolve: func(text string) (string, bool) {
			var han, kana int
			for _, r := range text {
				switch {
				case unicode.In(r, unicode.Hiragana, unicode.Katakana):
					kana++
				case unicode.Is(unicode.Han, r):
					han++
				}
			}
			switch {
			case han > kana:
				return "zh", true
			case kana > 0:
				return "ja", true
			default:
				return "", false
			}
		},
	}
}

// DefaultScripts returns the fixed priority order Arabic, Hangul, Devanagari, CJK, Cyrillic
func DefaultScripts() []ScriptRule {
	return []ScriptRule{
		AnyOf("arabic", "ar", unicode.Arabic),
		AnyOf("hangul", "ko", unicode.Hangul),
		AnyOf("devanagari", "hi", unicode.Devanagari),
		CJK(),
		AnyOf("cyrillic", "ru", unicode.Cyrillic),
	}
}

// GermanSuffixes are the inflection endings tolerated after a German stop-word
var GermanSuffixes = []string{"en", "er", "em", "es", "e"}

// RatioWords is the English list behind the ratio fallback
// it extends the scored top ten so short function-word sentences still clear the ratio
func RatioWords() []string {
	return []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "is", "you", "was", "for", "on", "are", "with", "as", "this",
		"at", "by", "from", "over", "not", "he", "she", "we", "they", "my",
	}
}

// DefaultTable returns the scored languages in tie-break order
func DefaultTable() []Language {
	return []Language{
		{Code: "en", Words: []string{"the", "be", "to", "of", "and", "a", "in", "that", "have", "i"}},
		{
			Code: "de",
			Words: []string{
				"der", "die", "das", "und", "in", "den", "von", "zu", "mit", "sich",
				"ich", "du", "er", "sie", "es", "wir", "ihr",
				"nicht", "auch", "auf", "für", "ist", "bin", "sind", "war", "hat",
				"ein", "eine", "einen", "dem", "des", "im", "am", "um", "bei", "nach",
			},
			MinScore: 2,
			Suffixes: GermanSuffixes,
		},
		{Code: "pt", Words: []string{"o", "a", "de", "e", "que", "em", "do", "da", "para", "com"}},
		{Code: "it", Words: []string{"il", "la", "di", "e", "che", "in", "un", "a", "per", "con"}},
		{Code: "tl", Words: []string{"ang", "ng", "sa", "na", "ay", "at", "mga", "si", "ito", "ni"}},
		{Code: "es", Words: []string{"el", "la", "de", "que", "y", "a", "en", "un", "ser", "se"}},
		{Code: "fr", Words: []string{"le", "la", "les", "de", "et", "un", "une", "est", "que", "des"}},
	}
}
