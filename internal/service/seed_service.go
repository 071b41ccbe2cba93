package service

import (
	"errors"
	"sync"
	"sync/atomic"

	"cyber-advisor/internal/models"
	"cyber-advisor/internal/repository"
	"cyber-advisor/internal/textnorm"
	"cyber-advisor/pkg/metrics"

	"go.uber.org/zap"
)

// SeedSource provides curated seed answers in source order.
type SeedSource interface {
	LoadSeeds() ([]models.SeedAnswer, error)
}

type seedTable struct {
	answers map[string]string // normalized question -> answer
}

// SeedService resolves questions that exactly match a curated seed after
// normalization.
type SeedService struct {
	source SeedSource
	loadMu sync.Mutex // serializes Load; readers use table lock-free
	table  atomic.Pointer[seedTable]
	logger *zap.Logger
}

func NewSeedService(source SeedSource, logger *zap.Logger) *SeedService {
	s := &SeedService{
		source: source,
		logger: logger,
	}
	s.table.Store(&seedTable{answers: map[string]string{}})
	return s
}

// Load re-reads the source and replaces the live table. A missing source
// yields an empty table; any other failure keeps the previous one.
func (s *SeedService) Load() (int, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	seeds, err := s.source.LoadSeeds()
	if err != nil {
		if !errors.Is(err, repository.ErrSourceNotFound) {
			return 0, &LoadError{Source: "seed_answers", Err: err}
		}
		s.logger.Warn("Seed answers not found, exact matching disabled", zap.Error(err))
		seeds = nil
	}

	answers := make(map[string]string, len(seeds))
	for _, seed := range seeds {
		key := textnorm.Normalize(seed.Question)
		if key == "" {
			s.logger.Warn("Skipping seed answer with empty normalized question",
				zap.String("question", seed.Question))
			continue
		}
		answers[key] = seed.Answer
	}

	s.table.Store(&seedTable{answers: answers})
	metrics.TableEntries.WithLabelValues("seed_answers").Set(float64(len(answers)))
	s.logger.Info("Seed answers loaded", zap.Int("count", len(answers)))

	return len(answers), nil
}

// Lookup returns the seed answer for an already normalized question.
func (s *SeedService) Lookup(normalized string) (string, bool) {
	answer, ok := s.table.Load().answers[normalized]
	return answer, ok
}

// Count returns the number of live seed entries.
func (s *SeedService) Count() int {
	return len(s.table.Load().answers)
}
