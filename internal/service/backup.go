package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/storage"
)

// BackupService copies exports and reports to object storage.
type BackupService struct {
	transfer     *TransferService
	reports      *ReportService
	storage      storage.Storage
	prefix       string
	lookbackDays int
	clock        Clock
}

func NewBackupService(
	transfer *TransferService,
	reports *ReportService,
	storage storage.Storage,
	prefix string,
	lookbackDays int,
	clock Clock,
) *BackupService {
	return &BackupService{
		transfer:     transfer,
		reports:      reports,
		storage:      storage,
		prefix:       prefix,
		lookbackDays: lookbackDays,
		clock:        clock,
	}
}

// Backup uploads a CSV export of the lookback window and returns its key.
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	now := s.clock.now()
	today := calendar.Today(now)
	start, err := calendar.AddDays(today, -s.lookbackDays)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	count, err := s.transfer.ExportCSV(&buf, start, today)
	if err != nil {
		return "", fmt.Errorf("failed to export entries: %w", err)
	}

	key := path.Join(s.prefix, "backups", today, fmt.Sprintf("entries-%d.csv", now.Unix()))
	err = s.storage.Save(ctx, key, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to save backup: %w", err)
	}

	slog.Info("backup uploaded", "key", key, "entries", count)
	return key, nil
}

// PublishReport renders the weekly report to HTML and uploads it.
func (s *BackupService) PublishReport(ctx context.Context, weekStart string) (string, error) {
	report, err := s.reports.WeeklyReport(weekStart)
	if err != nil {
		return "", err
	}

	html, err := report.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	key := path.Join(s.prefix, "reports", weekStart+".html")
	err = s.storage.Save(ctx, key, bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	slog.Info("report uploaded", "key", key)
	return key, nil
}

// URL returns a download link for a stored object.
func (s *BackupService) URL(ctx context.Context, key string) (string, error) {
	return s.storage.URL(ctx, key)
}

// Remove deletes a stored backup or report.
func (s *BackupService) Remove(ctx context.Context, key string) error {
	err := s.storage.Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	slog.Info("backup removed", "key", key)
	return nil
}
