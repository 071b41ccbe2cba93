// Package vectorizer implements TF-IDF vector spaces over character or word
// n-grams and cosine similarity search on top of them.
package vectorizer

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrEmptyVocabulary   = errors.New("empty vocabulary; documents contain no terms")
	ErrInvalidNGramRange = errors.New("invalid n-gram range")
	ErrUnknownAnalyzer   = errors.New("unknown analyzer")
	ErrDimensionMismatch = errors.New("idf length does not match vocabulary size")
)

// Vector is a sparse vector with indices in ascending order.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether v has no non-zero components.
func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

// TFIDF is a fitted vector space. It is immutable after construction and
// safe for concurrent use.
type TFIDF struct {
	analyzer   Analyzer
	vocabulary map[string]int
	idf        []float64
}

// Fit learns a vocabulary and smoothed idf weights from docs and returns the
// space together with the L2-normalized vector of every document.
func Fit(docs []string, analyzer Analyzer) (*TFIDF, []Vector, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		counts[i] = termCounts(analyzer(doc))
		for term := range counts[i] {
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	space := &TFIDF{analyzer: analyzer, vocabulary: vocabulary, idf: idf}
	vectors := make([]Vector, len(docs))
	for i := range docs {
		vectors[i] = space.weigh(counts[i])
	}
	return space, vectors, nil
}

// New rebuilds a space from an exported vocabulary and idf weights.
func New(vocabulary map[string]int, idf []float64, analyzer Analyzer) (*TFIDF, error) {
	if len(vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if len(idf) != len(vocabulary) {
		return nil, ErrDimensionMismatch
	}
	for _, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, ErrDimensionMismatch
		}
	}
	return &TFIDF{analyzer: analyzer, vocabulary: vocabulary, idf: idf}, nil
}

// Transform maps text into the space. Terms outside the vocabulary are ignored.
func (t *TFIDF) Transform(text string) Vector {
	return t.weigh(termCounts(t.analyzer(text)))
}

// Dimensions returns the vocabulary size.
func (t *TFIDF) Dimensions() int {
	return len(t.idf)
}

func (t *TFIDF) weigh(counts map[string]int) Vector {
	type entry struct {
		idx   int
		count int
	}
	entries := make([]entry, 0, len(counts))
	for term, count := range counts {
		if idx, ok := t.vocabulary[term]; ok {
			entries = append(entries, entry{idx: idx, count: count})
		}
	}
	if len(entries) == 0 {
		return Vector{}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

	v := Vector{
		Indices: make([]int, len(entries)),
		Values:  make([]float64, len(entries)),
	}
	var norm float64
	for i, e := range entries {
		w := float64(e.count) * t.idf[e.idx]
		v.Indices[i] = e.idx
		v.Values[i] = w
		norm += w * w
	}
	if norm == 0 {
		return Vector{}
	}
	norm = math.Sqrt(norm)
	for i := range v.Values {
		v.Values[i] /= norm
	}
	return v
}

// Cosine returns the cosine similarity of two L2-normalized vectors.
func Cosine(a, b Vector) float64 {
	var dot float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}
