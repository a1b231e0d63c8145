package bridge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewlog/brewlog/internal/model"
)

func testClock() func() time.Time {
	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	var ticks atomic.Int64
	return func() time.Time {
		return start.Add(time.Duration(ticks.Add(1)) * time.Millisecond)
	}
}

func setupBridge(t *testing.T) *Bridge {
	t.Helper()

	b := New(nil, testClock())
	require.Equal(t, "OK", b.InitInMemory())
	t.Cleanup(func() { b.Close() })
	return b
}

func seedEntries(t *testing.T, b *Bridge) {
	t.Helper()
	require.Equal(t, "OK", b.AddBeerEntryFull("e1", "Pale Ale", 5.0, 330, "2024-03-04", ""))
	require.Equal(t, "OK", b.AddBeerEntryFull("e2", "Stout", 6.5, 440, "2024-03-05", `with "friends"`))
	require.Equal(t, "OK", b.AddBeerEntryFull("e3", "Helles", 4.9, 500, "2024-03-04", "after work"))
}

func TestBridge_CallsBeforeInit(t *testing.T) {
	b := New(nil, nil)

	assert.Equal(t, "Error: Tracker not initialized", b.AddBeerEntry("Beer", 5, 330, ""))
	assert.Equal(t, "Error: Tracker not initialized", b.SetConsumptionGoal(500, 3500, "2024-01-01", "2024-12-31"))
	assert.Equal(t, "Error: Tracker not initialized", b.GetBeerEntriesJSON("2024-01-01", "2024-12-31"))
	assert.Equal(t, -1.0, b.GetDailyConsumption("2024-03-04"))
	assert.Equal(t, -1.0, b.GetWeeklyConsumption("2024-03-04"))
	assert.NoError(t, b.Close())
}

func TestBridge_SecondInitKeepsHandle(t *testing.T) {
	b := setupBridge(t)
	require.Equal(t, "OK", b.AddBeerEntry("Pale Ale", 5.0, 330, ""))

	assert.Equal(t, "Error: Tracker already initialized", b.InitInMemory())
	assert.Equal(t, 330.0, b.GetDailyConsumption("2024-03-04"))
}

func TestBridge_InitFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	b := New(nil, nil)
	require.NoError(t, os.WriteFile(file, []byte("not a directory"), 0o600))

	result := b.Init(filepath.Join(file, "brewlog.db"))
	assert.True(t, strings.HasPrefix(result, "Error: "), result)
	assert.Equal(t, "Error: Tracker not initialized", b.DeleteAllData())
}

func TestBridge_GetBeerEntriesJSON(t *testing.T) {
	b := setupBridge(t)
	seedEntries(t, b)

	g := goldie.New(t)
	g.Assert(t, "entries", []byte(b.GetBeerEntriesJSON("2024-03-01", "2024-03-31")))

	assert.Equal(t, "[]", b.GetBeerEntriesJSON("2030-01-01", "2030-01-31"))
}

func TestBridge_AddBeerEntryValidation(t *testing.T) {
	b := setupBridge(t)

	assert.Equal(t, "Error: Invalid input: Name cannot be empty", b.AddBeerEntry("", 5.0, 330, "x"))
	assert.Equal(t, "Error: Invalid input: Alcohol percentage must be between 0 and 100", b.AddBeerEntry("Beer", 101, 330, "x"))
	assert.Equal(t, "Error: Invalid input: Volume must be positive", b.AddBeerEntry("Beer", 5.0, 0, "x"))
	assert.Equal(t, "[]", b.GetBeerEntriesJSON("2024-03-04", "2024-03-04"))
}

func TestBridge_UpdateAndDelete(t *testing.T) {
	b := setupBridge(t)
	seedEntries(t, b)

	assert.Equal(t, "OK", b.UpdateBeerEntry("e1", "Pale Ale", 5.0, 500, "refill"))
	assert.Equal(t, "OK", b.UpdateBeerEntryDate("e1", "2024-03-05"))
	assert.Equal(t, 940.0, b.GetDailyConsumption("2024-03-05"))

	assert.Equal(t, "Error: Not found: Beer entry with id missing not found", b.DeleteBeerEntry("missing"))
	assert.Equal(t, "Error: Not found: Beer entry with id missing not found", b.UpdateBeerEntryDate("missing", "2024-03-05"))

	assert.Equal(t, "OK", b.DeleteBeerEntry("e1"))
	assert.Equal(t, 440.0, b.GetDailyConsumption("2024-03-05"))
}

func TestBridge_Aggregates(t *testing.T) {
	b := setupBridge(t)
	seedEntries(t, b)

	assert.Equal(t, 830.0, b.GetDailyConsumption("2024-03-04"))
	assert.Equal(t, 0.0, b.GetDailyConsumption("2024-03-06"))
	assert.Equal(t, 1270.0, b.GetWeeklyConsumption("2024-02-28"))
	assert.Equal(t, -1.0, b.GetWeeklyConsumption("not-a-date"))
}

func TestBridge_Goal(t *testing.T) {
	b := setupBridge(t)

	assert.Equal(t, "Error: Not found: No consumption goal set", b.GetCurrentGoalJSON())
	assert.Equal(t, "Error: Invalid input: Daily target must be non-negative", b.SetConsumptionGoal(-1, 3500, "2024-01-01", "2024-12-31"))

	require.Equal(t, "OK", b.SetConsumptionGoal(500, 3500, "2024-01-01", "2024-12-31"))
	require.Equal(t, "OK", b.SetConsumptionGoal(300, 2000, "2024-02-01", "2024-02-29"))

	var goal model.ConsumptionGoal
	require.NoError(t, json.Unmarshal([]byte(b.GetCurrentGoalJSON()), &goal))
	assert.Equal(t, 300.0, goal.DailyTarget)
	assert.Equal(t, 2000.0, goal.WeeklyTarget)
	assert.Equal(t, "2024-02-01", goal.StartDate)
}

func TestBridge_BaselineAndProgress(t *testing.T) {
	b := setupBridge(t)
	seedEntries(t, b)

	var baseline model.Baseline
	require.NoError(t, json.Unmarshal([]byte(b.GetBaselineJSON("2024-03-04", "2024-03-04")), &baseline))
	assert.Equal(t, 415.0, baseline.AverageDailyConsumption)
	assert.Equal(t, 2905.0, baseline.AverageWeeklyConsumption)

	g := goldie.New(t)
	g.Assert(t, "progress", []byte(b.GetProgressJSON("2024-03-04", "2024-03-04")))

	assert.Equal(t, "Error: Not found: No entries found for baseline calculation", b.GetBaselineJSON("2020-01-01", "2020-01-31"))
}

func TestBridge_DeleteAllData(t *testing.T) {
	b := setupBridge(t)
	seedEntries(t, b)
	require.Equal(t, "OK", b.SetConsumptionGoal(500, 3500, "2024-01-01", "2024-12-31"))

	assert.Equal(t, "OK", b.DeleteAllData())
	assert.Equal(t, "[]", b.GetBeerEntriesJSON("2024-01-01", "2024-12-31"))
	assert.Equal(t, "Error: Not found: No consumption goal set", b.GetCurrentGoalJSON())
}

func TestBridge_ConcurrentCallers(t *testing.T) {
	b := setupBridge(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, "OK", b.AddBeerEntry("Session IPA", 4.0, 100, ""))
		}()
		go func() {
			defer wg.Done()
			assert.GreaterOrEqual(t, b.GetDailyConsumption("2024-03-04"), 0.0)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000.0, b.GetDailyConsumption("2024-03-04"))
}

func TestBridge_FileSurvivesNewBridge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brewlog.db")

	first := New(nil, testClock())
	require.Equal(t, "OK", first.Init(path))
	require.Equal(t, "OK", first.AddBeerEntryFull("e1", "Pale Ale", 5.0, 330, "2024-03-04", ""))
	require.NoError(t, first.Close())

	second := New(nil, testClock())
	require.Equal(t, "OK", second.Init(path))
	defer second.Close()

	assert.Equal(t, 330.0, second.GetDailyConsumption("2024-03-04"))
}
