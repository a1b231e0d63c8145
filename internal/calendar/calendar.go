// Package calendar parses, formats and shifts the ISO calendar dates used as
// aggregation buckets. Dates are plain "YYYY-MM-DD" strings so that
// lexicographic order equals chronological order.
package calendar

import (
	"time"

	"github.com/brewlog/brewlog/internal/apperr"
)

const (
	DateLayout = "2006-01-02"

	// Fixed width keeps stored timestamps sortable as text.
	TimestampLayout = "2006-01-02T15:04:05.000000000Z"
)

// Parse reads a calendar date, failing with an InvalidInput error.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, apperr.Wrap(apperr.InvalidInput, err, "Invalid date format: %q", date)
	}
	return t, nil
}

func Valid(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the UTC calendar day of now.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

func Timestamp(now time.Time) string {
	return now.UTC().Format(TimestampLayout)
}

func AddDays(date string, days int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, days)), nil
}

// Range lists every date of the closed interval [start, end].
// An end before start yields an empty list.
func Range(start, end string) ([]string, error) {
	from, err := Parse(start)
	if err != nil {
		return nil, err
	}
	to, err := Parse(end)
	if err != nil {
		return nil, err
	}

	days := []string{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, Format(d))
	}
	return days, nil
}
