package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cyber-advisor/internal/classifier"
	"cyber-advisor/internal/models"
	"cyber-advisor/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var errBrokenSource = errors.New("broken source")

type stubSeedSource struct {
	seeds []models.SeedAnswer
	err   error
}

func (s *stubSeedSource) LoadSeeds() ([]models.SeedAnswer, error) {
	return s.seeds, s.err
}

type stubIntentSource struct {
	table models.IntentTable
	err   error
}

func (s *stubIntentSource) LoadIntents() (models.IntentTable, error) {
	return s.table, s.err
}

// gatedSource blocks every load until gate is closed and records how many
// loads overlapped.
type gatedSource struct {
	gate chan struct{}

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	calls       atomic.Int32
}

func newGatedSource() *gatedSource {
	return &gatedSource{gate: make(chan struct{})}
}

func (s *gatedSource) enter() {
	s.calls.Add(1)
	s.mu.Lock()
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()

	<-s.gate

	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

func (s *gatedSource) overlap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}

func (s *gatedSource) LoadSeeds() ([]models.SeedAnswer, error) {
	s.enter()
	return []models.SeedAnswer{{Question: "سؤال", Answer: "جواب"}}, nil
}

func (s *gatedSource) LoadIntents() (models.IntentTable, error) {
	s.enter()
	return createTestIntents(), nil
}

// runConcurrentLoads starts n loads, checks that only one reaches the source
// before the gate opens, then waits for all of them.
func runConcurrentLoads(t *testing.T, source *gatedSource, n int, load func() error) {
	t.Helper()
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- load()
		}()
	}

	require.Eventually(t, func() bool { return source.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool { return source.calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	close(source.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(n), source.calls.Load())
	assert.Equal(t, 1, source.overlap())
}

type stubCorpusSource struct {
	records []models.TrainingRecord
	err     error
}

func (s *stubCorpusSource) LoadCorpus(context.Context) ([]models.TrainingRecord, error) {
	return s.records, s.err
}

// stubSearcher always reports the same position and score.
type stubSearcher struct {
	pos   int
	score float64
	ok    bool
}

func (s stubSearcher) Nearest(string) (int, float64, bool) {
	return s.pos, s.score, s.ok
}

type pipelineFixture struct {
	seeds   []models.SeedAnswer
	corpus  []models.TrainingRecord
	intents models.IntentTable
	label   string
}

func newTestAnswerService(t *testing.T, f pipelineFixture) *AnswerService {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cfg := config.DefaultRetrieval()

	seeds := NewSeedService(&stubSeedSource{seeds: f.seeds}, logger)
	if _, err := seeds.Load(); err != nil {
		t.Fatalf("load seeds: %v", err)
	}

	intents := NewIntentService(&stubIntentSource{table: f.intents}, cfg, logger)
	if _, err := intents.Load(); err != nil {
		t.Fatalf("load intents: %v", err)
	}

	corpus := LoadCorpusService(context.Background(), &stubCorpusSource{records: f.corpus}, cfg, logger)

	var clf classifier.Classifier
	if f.label != "" {
		clf = classifier.Static(f.label)
	}
	return NewAnswerService(clf, seeds, corpus, intents, DefaultAdvice(), logger)
}

func createTestIntents() models.IntentTable {
	return models.IntentTable{
		models.CategoryPhishing: {
			{Patterns: []string{"رابط مشبوه", "رسالة فيها رابط"}, Advice: "لا تنقر على الرابط"},
			{Patterns: []string{"بريد من البنك", "طلب تحديث بيانات"}, Advice: "تواصل مع البنك مباشرة"},
		},
		models.CategoryPasswords: {
			{Patterns: []string{"نسيت كلمة المرور"}, Advice: "استخدم خيار الاستعادة الرسمي"},
		},
	}
}
