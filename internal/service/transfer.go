package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/brewlog/brewlog/internal/apperr"
)

// CSVHeader is the first line of every export; imports must start with it.
var CSVHeader = []string{"Date", "Name", "Alcohol%", "Volume(ml)", "Notes"}

// TransferService moves entries in and out of the CSV format used by the
// mobile app's settings screen.
type TransferService struct {
	entries *EntryService
}

func NewTransferService(entries *EntryService) *TransferService {
	return &TransferService{entries: entries}
}

// ExportCSV writes entries dated within [startDate, endDate] and returns how
// many rows were written.
func (s *TransferService) ExportCSV(w io.Writer, startDate, endDate string) (int, error) {
	entries, err := s.entries.Get(startDate, endDate)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	err = cw.Write(CSVHeader)
	if err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, e := range entries {
		err = cw.Write([]string{
			e.Date,
			e.Name,
			formatFloat(e.AlcoholPercentage),
			formatFloat(e.VolumeML),
			e.Notes,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	err = cw.Error()
	if err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}

	return len(entries), nil
}

// ImportCSV adds every valid row as a new entry. Rows that fail to parse or
// validate are skipped.
func (s *TransferService) ImportCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil || strings.Join(header, ",") != strings.Join(CSVHeader, ",") {
		return 0, apperr.Invalid("Invalid CSV format")
	}

	imported := 0
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			slog.Warn("skipping unreadable csv row", "line", line, "error", err)
			continue
		}
		if len(record) < len(CSVHeader) {
			slog.Warn("skipping short csv row", "line", line, "fields", len(record))
			continue
		}

		pct, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			slog.Warn("skipping csv row with bad alcohol percentage", "line", line, "value", record[2])
			continue
		}
		volume, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			slog.Warn("skipping csv row with bad volume", "line", line, "value", record[3])
			continue
		}

		_, err = s.entries.AddFull("", record[1], pct, volume, strings.TrimSpace(record[0]), record[4])
		if err != nil {
			if apperr.KindOf(err) != apperr.InvalidInput {
				return imported, err
			}
			slog.Warn("skipping invalid csv row", "line", line, "error", err)
			continue
		}
		imported++
	}

	if imported == 0 {
		return 0, apperr.Invalid("No valid entries found to import")
	}

	slog.Info("csv import finished", "imported", imported)
	return imported, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
