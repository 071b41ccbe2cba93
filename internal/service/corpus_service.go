package service

import (
	"context"

	"cyber-advisor/internal/models"
	"cyber-advisor/internal/vectorizer"
	"cyber-advisor/pkg/config"
	"cyber-advisor/pkg/metrics"

	"go.uber.org/zap"
)

// CorpusSource provides the labeled training corpus.
type CorpusSource interface {
	LoadCorpus(ctx context.Context) ([]models.TrainingRecord, error)
}

// SimilaritySearcher finds the corpus position most similar to a query.
type SimilaritySearcher interface {
	Nearest(query string) (int, float64, bool)
}

// Match is an answer accepted by a retrieval tier.
type Match struct {
	Answer string
	Score  float64
}

// CorpusStats summarizes the loaded corpus.
type CorpusStats struct {
	Total        int            `json:"total"`
	Distribution map[string]int `json:"distribution"`
}

// CorpusService reuses curated answers of near-duplicate training questions.
// The records and their index are built together and never change.
type CorpusService struct {
	records   []models.TrainingRecord
	searcher  SimilaritySearcher
	threshold float64
	logger    *zap.Logger
}

// LoadCorpusService reads the corpus from source and indexes it. Failures
// leave the tier disabled rather than failing startup.
func LoadCorpusService(ctx context.Context, source CorpusSource, cfg config.RetrievalConfig, logger *zap.Logger) *CorpusService {
	records, err := source.LoadCorpus(ctx)
	if err != nil {
		logger.Warn("Training corpus unavailable, corpus retrieval disabled",
			zap.Error(&LoadError{Source: "training_corpus", Err: err}))
		return NewCorpusService(nil, nil, cfg.CorpusThreshold, logger)
	}
	return NewIndexedCorpusService(records, cfg, logger)
}

// NewIndexedCorpusService builds a character n-gram index over records.
func NewIndexedCorpusService(records []models.TrainingRecord, cfg config.RetrievalConfig, logger *zap.Logger) *CorpusService {
	analyzer, err := vectorizer.NewAnalyzer("char_wb", cfg.CorpusNGramMin, cfg.CorpusNGramMax)
	if err != nil {
		logger.Error("Invalid corpus n-gram range, corpus retrieval disabled", zap.Error(err))
		return NewCorpusService(records, nil, cfg.CorpusThreshold, logger)
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text
	}

	index, err := vectorizer.NewIndex(texts, analyzer)
	if err != nil {
		logger.Warn("Failed to index training corpus, corpus retrieval disabled",
			zap.Int("records", len(records)), zap.Error(err))
		return NewCorpusService(records, nil, cfg.CorpusThreshold, logger)
	}

	logger.Info("Training corpus indexed", zap.Int("records", index.Len()))
	return NewCorpusService(records, index, cfg.CorpusThreshold, logger)
}

// NewCorpusService wires records to an arbitrary searcher. A nil searcher
// disables retrieval.
func NewCorpusService(records []models.TrainingRecord, searcher SimilaritySearcher, threshold float64, logger *zap.Logger) *CorpusService {
	metrics.TableEntries.WithLabelValues("training_corpus").Set(float64(len(records)))
	return &CorpusService{
		records:   records,
		searcher:  searcher,
		threshold: threshold,
		logger:    logger,
	}
}

// Retrieve returns the curated answer of the most similar training question
// when it scores at least the threshold and has an answer.
func (s *CorpusService) Retrieve(question string) (Match, bool) {
	if s.searcher == nil {
		return Match{}, false
	}

	pos, score, ok := s.searcher.Nearest(question)
	if !ok || pos < 0 || pos >= len(s.records) {
		return Match{}, false
	}
	if score < s.threshold {
		s.logger.Debug("Corpus match below threshold",
			zap.Float64("score", score), zap.Float64("threshold", s.threshold))
		return Match{}, false
	}

	rec := s.records[pos]
	if !rec.HasAnswer() {
		s.logger.Debug("Corpus match has no curated answer",
			zap.Int("position", pos), zap.Float64("score", score))
		return Match{}, false
	}
	return Match{Answer: rec.Answer, Score: score}, true
}

// Len returns the number of corpus records.
func (s *CorpusService) Len() int {
	return len(s.records)
}

// Stats reports corpus size and label distribution; ok is false when no
// corpus is loaded.
func (s *CorpusService) Stats() (CorpusStats, bool) {
	if len(s.records) == 0 {
		return CorpusStats{}, false
	}
	dist := make(map[string]int)
	for _, rec := range s.records {
		dist[rec.Label]++
	}
	return CorpusStats{Total: len(s.records), Distribution: dist}, true
}
