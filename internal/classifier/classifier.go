// Package classifier loads the offline-trained question category model.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cyber-advisor/internal/vectorizer"
)

var (
	ErrModelNotFound = errors.New("classifier model not found")
	ErrInvalidModel  = errors.New("invalid classifier model")
)

// Classifier maps a question to a category label.
type Classifier interface {
	Predict(text string) string
}

// Static always predicts the same label. It stands in when no trained
// artifact is available.
type Static string

func (s Static) Predict(string) string {
	return string(s)
}

// Artifact is the exported form of a TF-IDF + linear SVM pipeline.
type Artifact struct {
	Classes    []string       `json:"classes"`
	Analyzer   string         `json:"analyzer"`
	NGramRange [2]int         `json:"ngram_range"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       [][]float64    `json:"coef"`
	Intercept  []float64      `json:"intercept"`
}

// LinearModel scores a TF-IDF vector against one weight row per class.
type LinearModel struct {
	classes   []string
	space     *vectorizer.TFIDF
	coef      [][]float64
	intercept []float64
}

// Load reads a model artifact from path.
func Load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("failed to read classifier model: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	return NewLinearModel(artifact)
}

// NewLinearModel validates an artifact and builds the model from it.
func NewLinearModel(a Artifact) (*LinearModel, error) {
	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidModel, len(a.Classes))
	}

	rows := len(a.Classes)
	if rows == 2 && len(a.Coef) == 1 {
		rows = 1
	}
	if len(a.Coef) != rows || len(a.Intercept) != rows {
		return nil, fmt.Errorf("%w: expected %d coefficient rows and intercepts, got %d and %d",
			ErrInvalidModel, rows, len(a.Coef), len(a.Intercept))
	}
	for i, row := range a.Coef {
		if len(row) != len(a.IDF) {
			return nil, fmt.Errorf("%w: coefficient row %d has %d weights for %d features",
				ErrInvalidModel, i, len(row), len(a.IDF))
		}
	}

	minN, maxN := a.NGramRange[0], a.NGramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	analyzer, err := vectorizer.NewAnalyzer(a.Analyzer, minN, maxN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	space, err := vectorizer.New(a.Vocabulary, a.IDF, analyzer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	return &LinearModel{
		classes:   a.Classes,
		space:     space,
		coef:      a.Coef,
		intercept: a.Intercept,
	}, nil
}

// Classes returns the labels the model can predict.
func (m *LinearModel) Classes() []string {
	return append([]string(nil), m.classes...)
}

// Predict returns the class with the highest decision score.
func (m *LinearModel) Predict(text string) string {
	x := m.space.Transform(text)
	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		score := m.intercept[i]
		for j, idx := range x.Indices {
			score += row[idx] * x.Values[j]
		}
		scores[i] = score
	}

	// Binary models carry a single row scoring the second class.
	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}

	best, _, _ := vectorizer.ArgMax(scores)
	return m.classes[best]
}
