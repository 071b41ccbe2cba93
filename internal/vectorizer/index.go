package vectorizer

// Index answers nearest-neighbour queries over a fixed set of documents.
type Index struct {
	space   *TFIDF
	vectors []Vector
}

// NewIndex fits a space over docs and keeps their vectors for search.
func NewIndex(docs []string, analyzer Analyzer) (*Index, error) {
	space, vectors, err := Fit(docs, analyzer)
	if err != nil {
		return nil, err
	}
	return &Index{space: space, vectors: vectors}, nil
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.vectors)
}

// Scores returns the cosine similarity of query against every document.
func (ix *Index) Scores(query string) []float64 {
	q := ix.space.Transform(query)
	scores := make([]float64, len(ix.vectors))
	if q.IsZero() {
		return scores
	}
	for i, v := range ix.vectors {
		scores[i] = Cosine(q, v)
	}
	return scores
}

// Nearest returns the position and score of the most similar document.
// The earliest document wins ties. ok is false when the index is empty.
func (ix *Index) Nearest(query string) (int, float64, bool) {
	return ArgMax(ix.Scores(query))
}

// ArgMax returns the first position holding the largest score.
func ArgMax(scores []float64) (int, float64, bool) {
	if len(scores) == 0 {
		return 0, 0, false
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best, scores[best], true
}
