package logic

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize turns a raw sentence into a flat sequence of single-rune tokens.
//
// The input is NFC-composed and lower-cased, whitespace is dropped, and every
// operator synonym is replaced by its canonical symbol. Unknown runes pass
// through untouched; they are judged by later stages.
func Normalize(sentence string) []rune {
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(language.Und).String(norm.NFC.String(sentence))
	tokens := make([]rune, 0, utf8.RuneCountInString(lower))
	for _, r := range lower {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, canonical(r))
	}
	return tokens
}
