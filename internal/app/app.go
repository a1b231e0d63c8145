package app

import (
	"context"
	"fmt"

	"github.com/brewlog/brewlog/internal/config"
	"github.com/brewlog/brewlog/internal/markdown"
	"github.com/brewlog/brewlog/internal/repository"
	"github.com/brewlog/brewlog/internal/service"
	"github.com/brewlog/brewlog/internal/storage"
	"github.com/brewlog/brewlog/internal/store"
)

type App struct {
	Cfg             *config.Config
	Store           *store.Store
	EntryService    *service.EntryService
	GoalService     *service.GoalService
	StatsService    *service.StatsService
	TransferService *service.TransferService
	ReportService   *service.ReportService
	BackupService   *service.BackupService // nil unless a backup bucket is configured
}

// New opens the store at cfg.DBPath and wires every service. A nil clock
// reads the system time.
func New(ctx context.Context, cfg *config.Config, clock service.Clock) (*App, error) {
	// Store (creates tables on first open)
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Repositories
	entryRepository := repository.NewEntryRepository(st)
	goalRepository := repository.NewGoalRepository(st)

	// Services
	entryService := service.NewEntryService(entryRepository, clock)
	goalService := service.NewGoalService(goalRepository, clock)
	statsService := service.NewStatsService(entryService, goalService, clock)
	transferService := service.NewTransferService(entryService)
	reportService := service.NewReportService(statsService, goalService, markdown.NewParser())

	a := &App{
		Cfg:             cfg,
		Store:           st,
		EntryService:    entryService,
		GoalService:     goalService,
		StatsService:    statsService,
		TransferService: transferService,
		ReportService:   reportService,
	}

	// Backup storage (optional)
	if cfg.BackupEnabled() {
		backupStorage, err := storage.New(ctx, cfg)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to initialize backup storage: %w", err)
		}
		a.BackupService = service.NewBackupService(
			transferService,
			reportService,
			backupStorage,
			cfg.BackupPrefix,
			cfg.ExportLookbackDays,
			clock,
		)
	}

	return a, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
