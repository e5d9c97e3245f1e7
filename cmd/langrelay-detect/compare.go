package main

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// reference is a second opinion on a text's language
type reference interface {
	Detect(text string) (string, bool)
}

// languages covers every code the identifier can emit
var languages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Tagalog,
	lingua.Spanish,
	lingua.French,
	lingua.Russian,
	lingua.Arabic,
	lingua.Korean,
	lingua.Hindi,
	lingua.Chinese,
	lingua.Japanese,
}

type linguaRef struct{ det lingua.LanguageDetector }

func newLingua() reference {
	return linguaRef{det: lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build()}
}

func (l linguaRef) Detect(text string) (string, bool) {
	lang, ok := l.det.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
