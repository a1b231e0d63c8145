// Package bridge flattens the typed services into the primitive-only calls
// a host binding can make: mutations answer "OK" or "Error: <message>",
// reads answer JSON text, and numeric aggregates answer -1 on failure.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/brewlog/brewlog/internal/app"
	"github.com/brewlog/brewlog/internal/config"
	"github.com/brewlog/brewlog/internal/service"
)

const (
	resultOK = "OK"

	// failedAggregate is returned by numeric reads on any failure.
	failedAggregate = -1.0
)

var (
	ErrNotInitialized     = errors.New("Tracker not initialized")
	ErrAlreadyInitialized = errors.New("Tracker already initialized")
)

// Bridge holds the one tracker handle of the host process. The handle is
// set once by Init and never replaced.
type Bridge struct {
	mu    sync.RWMutex
	app   *app.App
	cfg   *config.Config
	clock service.Clock
}

// New returns an uninitialized bridge. A nil cfg uses defaults; a nil clock
// reads the system time.
func New(cfg *config.Config, clock service.Clock) *Bridge {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Bridge{
		cfg:   cfg,
		clock: clock,
	}
}

// Init opens the tracker at path. An empty path selects an in-memory store.
func (b *Bridge) Init(path string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.app != nil {
		return errorResult(ErrAlreadyInitialized)
	}

	cfg := *b.cfg
	cfg.DBPath = path

	a, err := app.New(context.Background(), &cfg, b.clock)
	if err != nil {
		slog.Error("tracker init failed", "path", path, "error", err)
		return errorResult(err)
	}

	b.app = a
	slog.Info("tracker initialized", "path", path, "durable", a.Store.Durable())
	return resultOK
}

func (b *Bridge) InitInMemory() string {
	return b.Init("")
}

// Close releases the store. The bridge cannot be initialized again.
func (b *Bridge) Close() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.app == nil {
		return nil
	}
	return b.app.Close()
}

func (b *Bridge) handle() (*app.App, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.app == nil {
		return nil, ErrNotInitialized
	}
	return b.app, nil
}

func (b *Bridge) AddBeerEntry(name string, alcoholPercentage, volumeML float64, notes string) string {
	return b.mutate(func(a *app.App) error {
		_, err := a.EntryService.Add(name, alcoholPercentage, volumeML, notes)
		return err
	})
}

func (b *Bridge) AddBeerEntryFull(id, name string, alcoholPercentage, volumeML float64, date, notes string) string {
	return b.mutate(func(a *app.App) error {
		_, err := a.EntryService.AddFull(id, name, alcoholPercentage, volumeML, date, notes)
		return err
	})
}

func (b *Bridge) UpdateBeerEntry(id, name string, alcoholPercentage, volumeML float64, notes string) string {
	return b.mutate(func(a *app.App) error {
		return a.EntryService.Update(id, name, alcoholPercentage, volumeML, notes)
	})
}

func (b *Bridge) UpdateBeerEntryDate(id, date string) string {
	return b.mutate(func(a *app.App) error {
		return a.EntryService.UpdateDate(id, date)
	})
}

func (b *Bridge) DeleteBeerEntry(id string) string {
	return b.mutate(func(a *app.App) error {
		return a.EntryService.Delete(id)
	})
}

func (b *Bridge) SetConsumptionGoal(dailyTarget, weeklyTarget float64, startDate, endDate string) string {
	return b.mutate(func(a *app.App) error {
		_, err := a.GoalService.Set(dailyTarget, weeklyTarget, startDate, endDate)
		return err
	})
}

func (b *Bridge) DeleteAllData() string {
	return b.mutate(func(a *app.App) error {
		return a.EntryService.Clear()
	})
}

// GetBeerEntriesJSON returns entries dated within [startDate, endDate] as a
// JSON array, newest first.
func (b *Bridge) GetBeerEntriesJSON(startDate, endDate string) string {
	return b.query(func(a *app.App) (any, error) {
		return a.EntryService.Get(startDate, endDate)
	})
}

func (b *Bridge) GetCurrentGoalJSON() string {
	return b.query(func(a *app.App) (any, error) {
		return a.GoalService.Current()
	})
}

func (b *Bridge) GetBaselineJSON(startDate, endDate string) string {
	return b.query(func(a *app.App) (any, error) {
		return a.StatsService.Baseline(startDate, endDate)
	})
}

func (b *Bridge) GetProgressJSON(periodStart, periodEnd string) string {
	return b.query(func(a *app.App) (any, error) {
		return a.StatsService.Progress(periodStart, periodEnd)
	})
}

func (b *Bridge) GetDailyConsumption(date string) float64 {
	return b.aggregate(func(a *app.App) (float64, error) {
		return a.StatsService.DailyConsumption(date)
	})
}

func (b *Bridge) GetWeeklyConsumption(weekStart string) float64 {
	return b.aggregate(func(a *app.App) (float64, error) {
		return a.StatsService.WeeklyConsumption(weekStart)
	})
}

func (b *Bridge) mutate(fn func(a *app.App) error) string {
	a, err := b.handle()
	if err != nil {
		return errorResult(err)
	}

	err = fn(a)
	if err != nil {
		return errorResult(err)
	}
	return resultOK
}

func (b *Bridge) query(fn func(a *app.App) (any, error)) string {
	a, err := b.handle()
	if err != nil {
		return errorResult(err)
	}

	v, err := fn(a)
	if err != nil {
		return errorResult(err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return string(data)
}

func (b *Bridge) aggregate(fn func(a *app.App) (float64, error)) float64 {
	a, err := b.handle()
	if err != nil {
		return failedAggregate
	}

	total, err := fn(a)
	if err != nil {
		slog.Debug("aggregate failed", "error", err)
		return failedAggregate
	}
	return total
}

func errorResult(err error) string {
	return "Error: " + err.Error()
}
