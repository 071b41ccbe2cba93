// Package textnorm canonicalizes Arabic question text so that spelling
// variants of the same question compare equal.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const tatweel = '\u0640'

// vowelMarks covers the harakat, Quranic annotation signs and superscript alef.
var vowelMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061A, Stride: 1},
		{Lo: 0x064B, Hi: 0x065F, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06D6, Hi: 0x06ED, Stride: 1},
	},
}

var letterFolds = map[rune]rune{
	'أ': 'ا',
	'إ': 'ا',
	'آ': 'ا',
	'ى': 'ي',
	'ة': 'ه',
}

var punctuation = map[rune]struct{}{}

func init() {
	for _, r := range "\"'“”‘’«».,!؟?؛:()[]{}<>/\\|-" {
		punctuation[r] = struct{}{}
	}
}

func foldRune(r rune) rune {
	if folded, ok := letterFolds[r]; ok {
		return folded
	}
	if _, ok := punctuation[r]; ok {
		return ' '
	}
	return r
}

// newTransformer builds a fresh chain on every call: chained transformers
// keep internal buffers and must not be shared between goroutines.
func newTransformer() transform.Transformer {
	return transform.Chain(
		runes.Remove(runes.In(vowelMarks)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == tatweel })),
		runes.Map(foldRune),
	)
}

// Normalize trims and lowercases s, strips diacritics and tatweel, folds
// alef/yeh/teh-marbuta variants, turns punctuation into spaces and collapses
// whitespace. It is idempotent and returns "" for empty input.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	out, _, err := transform.String(newTransformer(), s)
	if err != nil {
		return ""
	}

	return strings.Join(strings.Fields(out), " ")
}
