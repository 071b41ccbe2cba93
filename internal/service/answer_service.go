package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"cyber-advisor/internal/classifier"
	"cyber-advisor/internal/models"
	"cyber-advisor/internal/textnorm"
	"cyber-advisor/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Tier names used in metrics and logs.
const (
	TierSeed     = "seed"
	TierCorpus   = "corpus"
	TierIntent   = "intent"
	TierFallback = "fallback"
)

// AnswerService picks the best pre-written answer for a question. Tiers are
// tried in order: seed answers, training corpus, category intents and the
// built-in advice for the predicted category.
type AnswerService struct {
	classifier classifier.Classifier
	seeds      *SeedService
	corpus     *CorpusService
	intents    *IntentService
	advice     AdviceTable
	instance   string // distinguishes this process's table generations
	generation atomic.Uint64
	logger     *zap.Logger
}

func NewAnswerService(
	clf classifier.Classifier,
	seeds *SeedService,
	corpus *CorpusService,
	intents *IntentService,
	advice AdviceTable,
	logger *zap.Logger,
) *AnswerService {
	if clf == nil {
		clf = classifier.Static(models.CategoryGeneral)
	}
	if advice == nil {
		advice = DefaultAdvice()
	}
	return &AnswerService{
		classifier: clf,
		seeds:      seeds,
		corpus:     corpus,
		intents:    intents,
		advice:     advice,
		instance:   uuid.New().String(),
		logger:     logger,
	}
}

// Resolve always returns a result with non-empty advice.
func (s *AnswerService) Resolve(question string) models.AnswerResult {
	start := time.Now()
	defer func() {
		metrics.AnswerResolutionDuration.Observe(time.Since(start).Seconds())
	}()

	question = sanitizeUTF8(strings.TrimSpace(question))
	category := s.Predict(question)

	if answer, ok := s.seeds.Lookup(textnorm.Normalize(question)); ok {
		return s.result(TierSeed, category, answer, models.SourceSeedAnswers)
	}

	if match, ok := s.corpus.Retrieve(question); ok {
		s.logger.Debug("Corpus match accepted", zap.Float64("score", match.Score))
		return s.result(TierCorpus, category, match.Answer, models.SourceModel, models.SourceTrainingCorpus)
	}

	if match, ok := s.intents.Retrieve(category, question); ok {
		s.logger.Debug("Intent match accepted",
			zap.String("category", string(category)), zap.Float64("score", match.Score))
		return s.result(TierIntent, category, match.Answer, models.SourceModel, models.SourceAdviceIntents)
	}

	return s.result(TierFallback, category, s.advice.Fallback(category), models.SourceModel, models.SourceBuiltInAdvice)
}

// Predict returns the classifier's category, or general for an empty question.
func (s *AnswerService) Predict(question string) models.Category {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.CategoryGeneral
	}
	label := strings.TrimSpace(s.classifier.Predict(question))
	if label == "" {
		return models.CategoryGeneral
	}
	return models.Category(label)
}

// ReloadSeeds replaces the seed table and returns the number of entries.
func (s *AnswerService) ReloadSeeds() (int, error) {
	count, err := s.seeds.Load()
	if err != nil {
		metrics.TableReloads.WithLabelValues("seed_answers", "error").Inc()
		return 0, err
	}
	s.generation.Add(1)
	metrics.TableReloads.WithLabelValues("seed_answers", "ok").Inc()
	return count, nil
}

// ReloadIntents replaces the intent table and returns its categories.
func (s *AnswerService) ReloadIntents() ([]models.Category, error) {
	categories, err := s.intents.Load()
	if err != nil {
		metrics.TableReloads.WithLabelValues("advice_intents", "error").Inc()
		return nil, err
	}
	s.generation.Add(1)
	metrics.TableReloads.WithLabelValues("advice_intents", "ok").Inc()
	return categories, nil
}

// Generation changes whenever a reloadable table is replaced.
func (s *AnswerService) Generation() uint64 {
	return s.generation.Load()
}

// CacheNamespace identifies the live tables of this process. It changes on
// every reload and differs between processes, so a restart over edited files
// never reuses answers cached by an earlier run.
func (s *AnswerService) CacheNamespace() string {
	return fmt.Sprintf("%s:g%d", s.instance, s.generation.Load())
}

// SeedCount returns the number of live seed answers.
func (s *AnswerService) SeedCount() int {
	return s.seeds.Count()
}

// CorpusStats reports the loaded training corpus.
func (s *AnswerService) CorpusStats() (CorpusStats, bool) {
	return s.corpus.Stats()
}

func (s *AnswerService) result(tier string, category models.Category, advice string, sources ...string) models.AnswerResult {
	metrics.AnswerResolutions.WithLabelValues(tier).Inc()
	return models.AnswerResult{
		Category: category,
		Advice:   advice,
		Sources:  dedupe(sources),
	}
}
