package service

import (
	"sync"
	"testing"

	"cyber-advisor/internal/models"
	"cyber-advisor/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestAnswerService_SeedAnswerWithoutQuestionMark(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{
		seeds: []models.SeedAnswer{{Question: "ما هي كلمة مرور قوية؟", Answer: "استخدم كلمة مرور طويلة"}},
		label: "passwords",
	})

	result := svc.Resolve("ما هي كلمة مرور قوية")
	assert.Equal(t, "استخدم كلمة مرور طويلة", result.Advice)
	assert.Equal(t, []string{models.SourceSeedAnswers}, result.Sources)
	assert.Equal(t, models.CategoryPasswords, result.Category)
}

func TestAnswerService_SeedTakesPrecedence(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{
		seeds: []models.SeedAnswer{{Question: "كيف أحمي شبكتي", Answer: "جواب البذرة"}},
		corpus: []models.TrainingRecord{
			{Text: "كيف أحمي شبكتي", Label: "networks", Answer: "جواب المدونة"},
		},
		intents: models.IntentTable{
			models.CategoryNetworks: {{Patterns: []string{"كيف أحمي شبكتي"}, Advice: "جواب النية"}},
		},
		label: "networks",
	})

	result := svc.Resolve("  كيف أحمي شبكتي؟ ")
	assert.Equal(t, "جواب البذرة", result.Advice)
	assert.Equal(t, []string{models.SourceSeedAnswers}, result.Sources)
	assert.Equal(t, models.CategoryNetworks, result.Category)
}

func TestAnswerService_FallbackForCategoryWithoutIntents(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{label: "networks"})

	result := svc.Resolve("سؤال عن الشبكة المنزلية")
	assert.Equal(t, models.CategoryNetworks, result.Category)
	assert.Equal(t, DefaultAdvice()[models.CategoryNetworks], result.Advice)
	assert.Equal(t, []string{models.SourceModel, models.SourceBuiltInAdvice}, result.Sources)
}

func TestAnswerService_CorpusNearDuplicate(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{
		corpus: []models.TrainingRecord{{Text: "كيف أحمي شبكتي", Label: "networks", Answer: "فعّل WPA3"}},
		intents: models.IntentTable{
			models.CategoryNetworks: {{Patterns: []string{"احمي شبكتي"}, Advice: "جواب النية"}},
		},
		label: "networks",
	})

	result := svc.Resolve("كيف احمي شبكتي؟")
	assert.Equal(t, "فعّل WPA3", result.Advice)
	assert.Equal(t, []string{models.SourceModel, models.SourceTrainingCorpus}, result.Sources)
}

func TestAnswerService_IntentWithinPredictedCategory(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{
		intents: createTestIntents(),
		label:   "phishing",
	})

	result := svc.Resolve("وصلني بريد من البنك يطلب بياناتي")
	assert.Equal(t, models.CategoryPhishing, result.Category)
	assert.Equal(t, "تواصل مع البنك مباشرة", result.Advice)
	assert.Equal(t, []string{models.SourceModel, models.SourceAdviceIntents}, result.Sources)

	// the same question routed to another category never sees phishing intents
	other := newTestAnswerService(t, pipelineFixture{intents: createTestIntents(), label: "malware"})
	result = other.Resolve("وصلني بريد من البنك يطلب بياناتي")
	assert.Equal(t, DefaultAdvice()[models.CategoryMalware], result.Advice)
}

func TestAnswerService_AlwaysTerminates(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{
		seeds:   []models.SeedAnswer{{Question: "سؤال", Answer: "جواب"}},
		corpus:  createTestCorpus(),
		intents: createTestIntents(),
		label:   "phishing",
	})

	inputs := []string{"", "   ", "؟؟؟!!", "\xff\xfe", "question absent from every table", "ـــ"}
	for _, input := range inputs {
		result := svc.Resolve(input)
		assert.NotEmpty(t, result.Advice, "input %q", input)
		assert.NotEmpty(t, result.Sources, "input %q", input)
	}

	empty := svc.Resolve("")
	assert.Equal(t, models.CategoryGeneral, empty.Category)
	assert.Equal(t, DefaultAdvice()[models.CategoryGeneral], empty.Advice)
}

func TestAnswerService_NoClassifierDefaultsToGeneral(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{})

	result := svc.Resolve("كيف أحمي حسابي")
	assert.Equal(t, models.CategoryGeneral, result.Category)
	assert.Equal(t, DefaultAdvice()[models.CategoryGeneral], result.Advice)
}

func TestAnswerService_UnknownLabelUsesGeneralFallback(t *testing.T) {
	svc := newTestAnswerService(t, pipelineFixture{label: "iot"})

	result := svc.Resolve("هل الكاميرا الذكية آمنة")
	assert.Equal(t, models.Category("iot"), result.Category)
	assert.Equal(t, DefaultAdvice()[models.CategoryGeneral], result.Advice)
}

func TestAnswerService_ReloadBumpsGeneration(t *testing.T) {
	logger := zaptest.NewLogger(t)
	seedSource := &stubSeedSource{}
	intentSource := &stubIntentSource{table: createTestIntents()}
	svc := NewAnswerService(nil,
		NewSeedService(seedSource, logger),
		NewCorpusService(nil, nil, 0.70, logger),
		NewIntentService(intentSource, config.DefaultRetrieval(), logger),
		nil, logger)

	assert.Equal(t, uint64(0), svc.Generation())
	before := svc.CacheNamespace()

	seedSource.seeds = []models.SeedAnswer{{Question: "سؤال جديد", Answer: "جواب جديد"}}
	count, err := svc.ReloadSeeds()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, svc.SeedCount())
	assert.Equal(t, uint64(1), svc.Generation())
	assert.NotEqual(t, before, svc.CacheNamespace())
	assert.Equal(t, "جواب جديد", svc.Resolve("سؤال جديد؟").Advice)

	categories, err := svc.ReloadIntents()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, uint64(2), svc.Generation())

	seedSource.err = errBrokenSource
	_, err = svc.ReloadSeeds()
	assert.Error(t, err)
	intentSource.err = errBrokenSource
	_, err = svc.ReloadIntents()
	assert.Error(t, err)
	assert.Equal(t, uint64(2), svc.Generation())
}

func TestAnswerService_ConcurrentResolveDuringReload(t *testing.T) {
	logger := zaptest.NewLogger(t)
	source := &alternatingSeedSource{size: 50}
	seeds := NewSeedService(source, logger)
	svc := NewAnswerService(nil, seeds,
		NewCorpusService(nil, nil, 0.70, logger),
		NewIntentService(&stubIntentSource{}, config.DefaultRetrieval(), logger),
		nil, logger)
	_, err := svc.ReloadSeeds()
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = svc.ReloadSeeds()
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				result := svc.Resolve("سؤال رقم 7")
				if result.Advice != "A" && result.Advice != "B" {
					t.Errorf("unexpected advice %q", result.Advice)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"model", "built_in_advice", "seed_answers"},
		dedupe([]string{"model", "built_in_advice", "model", "seed_answers", "built_in_advice"}))
	assert.Empty(t, dedupe(nil))
}

func TestAdviceTable_Fallback(t *testing.T) {
	table := DefaultAdvice()
	for _, category := range models.KnownCategories {
		assert.NotEmpty(t, table.Fallback(category), "category %s", category)
	}
	assert.Equal(t, table[models.CategoryGeneral], table.Fallback("unknown"))

	sparse := AdviceTable{models.CategoryPhishing: ""}
	assert.NotEmpty(t, sparse.Fallback(models.CategoryPhishing))
	assert.NotEmpty(t, AdviceTable(nil).Fallback(models.CategoryGeneral))
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "سؤال", sanitizeUTF8("سؤال"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
	assert.Equal(t, "", sanitizeUTF8("\xff\xfe"))
}
