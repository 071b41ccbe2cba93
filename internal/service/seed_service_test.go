package service

import (
	"fmt"
	"sync"
	"testing"

	"cyber-advisor/internal/models"
	"cyber-advisor/internal/repository"
	"cyber-advisor/internal/textnorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSeedService_LoadAndLookup(t *testing.T) {
	source := &stubSeedSource{seeds: []models.SeedAnswer{
		{Question: "ما هي كلمة مرور قوية؟", Answer: "استخدم كلمة مرور طويلة"},
		{Question: "هل أحتاج VPN؟", Answer: "نعم على الشبكات العامة"},
	}}
	s := NewSeedService(source, zaptest.NewLogger(t))

	count, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, s.Count())

	answer, ok := s.Lookup(textnorm.Normalize("ما هي كلمة مرور قوية"))
	require.True(t, ok)
	assert.Equal(t, "استخدم كلمة مرور طويلة", answer)

	_, ok = s.Lookup(textnorm.Normalize("سؤال غير موجود"))
	assert.False(t, ok)
}

func TestSeedService_LastWriteWins(t *testing.T) {
	source := &stubSeedSource{seeds: []models.SeedAnswer{
		{Question: "ما هي كلمة مرور قوية؟", Answer: "الأولى"},
		{Question: "مَا هِيَ كَلِمَةُ مُرُورٍ قَوِيَّة", Answer: "الثانية"},
		{Question: "؟؟", Answer: "فارغة"},
	}}
	s := NewSeedService(source, zaptest.NewLogger(t))

	count, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	answer, ok := s.Lookup("ما هي كلمه مرور قويه")
	require.True(t, ok)
	assert.Equal(t, "الثانية", answer)

	_, ok = s.Lookup("")
	assert.False(t, ok)
}

func TestSeedService_LoadFailures(t *testing.T) {
	source := &stubSeedSource{seeds: []models.SeedAnswer{{Question: "سؤال", Answer: "جواب"}}}
	s := NewSeedService(source, zaptest.NewLogger(t))
	_, err := s.Load()
	require.NoError(t, err)

	source.seeds, source.err = nil, errBrokenSource
	_, err = s.Load()
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "seed_answers", loadErr.Source)
	assert.ErrorIs(t, err, errBrokenSource)

	answer, ok := s.Lookup("سؤال")
	assert.True(t, ok, "previous table stays live after a failed reload")
	assert.Equal(t, "جواب", answer)

	source.err = fmt.Errorf("%w: seed_answers.json", repository.ErrSourceNotFound)
	count, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	_, ok = s.Lookup("سؤال")
	assert.False(t, ok)
}

// alternatingSeedSource returns one of two complete tables on each call.
type alternatingSeedSource struct {
	calls int
	size  int
}

func (a *alternatingSeedSource) LoadSeeds() ([]models.SeedAnswer, error) {
	answer := "A"
	if a.calls%2 == 1 {
		answer = "B"
	}
	a.calls++

	seeds := make([]models.SeedAnswer, a.size)
	for i := range seeds {
		seeds[i] = models.SeedAnswer{Question: fmt.Sprintf("سؤال رقم %d", i), Answer: answer}
	}
	return seeds, nil
}

func TestSeedService_ReloadIsAtomic(t *testing.T) {
	const size = 200
	s := NewSeedService(&alternatingSeedSource{size: size}, zaptest.NewLogger(t))
	_, err := s.Load()
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(stop)
		for i := 0; i < 100; i++ {
			if _, err := s.Load(); err != nil {
				t.Errorf("reload: %v", err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				snapshot := s.table.Load()
				if len(snapshot.answers) != size {
					t.Errorf("partial table observed: %d entries", len(snapshot.answers))
					return
				}
				first := snapshot.answers["سؤال رقم 0"]
				for key, answer := range snapshot.answers {
					if answer != first {
						t.Errorf("mixed table observed: %q=%q, first=%q", key, answer, first)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}

func TestSeedService_LoadsAreSerialized(t *testing.T) {
	source := newGatedSource()
	s := NewSeedService(source, zaptest.NewLogger(t))

	runConcurrentLoads(t, source, 3, func() error {
		_, err := s.Load()
		return err
	})
	assert.Equal(t, 1, s.Count())
}
