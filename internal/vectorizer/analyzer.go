package vectorizer

import (
	"regexp"
	"strings"
)

// Analyzer turns a document into the terms that make up its features.
type Analyzer func(text string) []string

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// CharWB produces character n-grams of length minN..maxN taken only from
// inside words, each word padded with one space on both sides. A padded
// word shorter than n contributes itself once.
func CharWB(minN, maxN int) Analyzer {
	return func(text string) []string {
		var grams []string
		for _, word := range strings.Fields(strings.ToLower(text)) {
			padded := []rune(" " + word + " ")
			for n := minN; n <= maxN; n++ {
				offset := 0
				grams = append(grams, string(padded[offset:min(offset+n, len(padded))]))
				for offset+n < len(padded) {
					offset++
					grams = append(grams, string(padded[offset:offset+n]))
				}
				if offset == 0 {
					break
				}
			}
		}
		return grams
	}
}

// WordNGrams produces word n-grams of length minN..maxN. Tokens are runs of
// at least two letters, digits or underscores.
func WordNGrams(minN, maxN int) Analyzer {
	return func(text string) []string {
		tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
		if len(tokens) == 0 {
			return nil
		}

		grams := make([]string, 0, len(tokens)*(maxN-minN+1))
		for n := minN; n <= maxN; n++ {
			for i := 0; i+n <= len(tokens); i++ {
				grams = append(grams, strings.Join(tokens[i:i+n], " "))
			}
		}
		return grams
	}
}

// NewAnalyzer resolves an analyzer by name: "char_wb" or "word".
func NewAnalyzer(kind string, minN, maxN int) (Analyzer, error) {
	if minN < 1 || maxN < minN {
		return nil, ErrInvalidNGramRange
	}
	switch kind {
	case "char_wb":
		return CharWB(minN, maxN), nil
	case "word", "":
		return WordNGrams(minN, maxN), nil
	default:
		return nil, ErrUnknownAnalyzer
	}
}
