package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brewlog/brewlog/internal/markdown"
	"github.com/brewlog/brewlog/internal/repository"
	"github.com/brewlog/brewlog/internal/store"
)

// stepClock advances by step on every reading so created_at never ties.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{now: start, step: time.Second}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

type testEnv struct {
	clock     *stepClock
	entryRepo repository.EntryRepository
	goalRepo  repository.GoalRepository
	entries   *EntryService
	goals     *GoalService
	stats     *StatsService
	transfer  *TransferService
	reports   *ReportService
}

// today is the calendar day of the test clock.
const today = "2024-03-04"

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := newStepClock(time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC))
	entryRepo := repository.NewEntryRepository(s)
	goalRepo := repository.NewGoalRepository(s)

	entries := NewEntryService(entryRepo, clock.Now)
	goals := NewGoalService(goalRepo, clock.Now)
	stats := NewStatsService(entries, goals, clock.Now)

	return &testEnv{
		clock:     clock,
		entryRepo: entryRepo,
		goalRepo:  goalRepo,
		entries:   entries,
		goals:     goals,
		stats:     stats,
		transfer:  NewTransferService(entries),
		reports:   NewReportService(stats, goals, markdown.NewParser()),
	}
}

func (e *testEnv) countEntries(t *testing.T) int {
	t.Helper()
	count, err := e.entryRepo.Count()
	require.NoError(t, err)
	return count
}

func (e *testEnv) addOn(t *testing.T, id, date string, volume float64) {
	t.Helper()
	_, err := e.entries.AddFull(id, "Beer "+id, 5.0, volume, date, "")
	require.NoError(t, err)
}
