package service

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"cyber-advisor/internal/models"
	"cyber-advisor/internal/vectorizer"
	"cyber-advisor/pkg/config"
	"cyber-advisor/pkg/metrics"

	"go.uber.org/zap"
)

// IntentSource provides the per-category intent table.
type IntentSource interface {
	LoadIntents() (models.IntentTable, error)
}

// IntentService matches a question against the example patterns of the
// intents in its predicted category.
type IntentService struct {
	source        IntentSource
	loadMu        sync.Mutex // serializes Load; readers use table lock-free
	table         atomic.Pointer[models.IntentTable]
	minSimilarity float64
	ngramMin      int
	ngramMax      int
	logger        *zap.Logger
}

func NewIntentService(source IntentSource, cfg config.RetrievalConfig, logger *zap.Logger) *IntentService {
	s := &IntentService{
		source:        source,
		minSimilarity: cfg.IntentMinSimilarity,
		ngramMin:      cfg.IntentNGramMin,
		ngramMax:      cfg.IntentNGramMax,
		logger:        logger,
	}
	s.table.Store(&models.IntentTable{})
	return s
}

// Load re-reads the source and replaces the live table, returning the loaded
// categories in sorted order. On failure the previous table stays live.
func (s *IntentService) Load() ([]models.Category, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	table, err := s.source.LoadIntents()
	if err != nil {
		return nil, &LoadError{Source: "advice_intents", Err: err}
	}
	if table == nil {
		table = models.IntentTable{}
	}

	s.table.Store(&table)

	total := 0
	for _, entries := range table {
		total += len(entries)
	}
	metrics.TableEntries.WithLabelValues("advice_intents").Set(float64(total))
	s.logger.Info("Advice intents loaded",
		zap.Int("categories", len(table)),
		zap.Int("intents", total),
	)

	return categoriesOf(table), nil
}

// Categories returns the categories of the live table in sorted order.
func (s *IntentService) Categories() []models.Category {
	return categoriesOf(*s.table.Load())
}

// Retrieve fits a word n-gram space over the category's intents, one
// document per intent, and returns the advice of the closest one.
func (s *IntentService) Retrieve(category models.Category, question string) (Match, bool) {
	entries := (*s.table.Load())[category]
	if len(entries) == 0 {
		return Match{}, false
	}

	analyzer, err := vectorizer.NewAnalyzer("word", s.ngramMin, s.ngramMax)
	if err != nil {
		s.logger.Error("Invalid intent n-gram range", zap.Error(err))
		return Match{}, false
	}

	docs := make([]string, len(entries))
	for i, entry := range entries {
		docs[i] = strings.Join(entry.Patterns, " ")
	}

	index, err := vectorizer.NewIndex(docs, analyzer)
	if err != nil {
		s.logger.Debug("Intent vectorization failed",
			zap.String("category", string(category)), zap.Error(err))
		return Match{}, false
	}

	pos, score, ok := index.Nearest(question)
	if !ok || score <= s.minSimilarity {
		return Match{}, false
	}

	advice := entries[pos].Advice
	if advice == "" {
		return Match{}, false
	}
	return Match{Answer: advice, Score: score}, true
}

func categoriesOf(table models.IntentTable) []models.Category {
	categories := make([]models.Category, 0, len(table))
	for category := range table {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}
