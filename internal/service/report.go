package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/markdown"
)

// Report is a rendered-on-demand markdown consumption summary.
type Report struct {
	Markdown string
	parser   *markdown.Parser
}

func (r *Report) HTML() ([]byte, error) {
	return r.parser.Parse([]byte(r.Markdown))
}

// Meta returns the report's frontmatter fields.
func (r *Report) Meta() map[string]any {
	return r.parser.Frontmatter([]byte(r.Markdown))
}

type ReportService struct {
	stats  *StatsService
	goals  *GoalService
	parser *markdown.Parser
}

func NewReportService(stats *StatsService, goals *GoalService, parser *markdown.Parser) *ReportService {
	return &ReportService{
		stats:  stats,
		goals:  goals,
		parser: parser,
	}
}

// WeeklyReport summarises the seven days starting at weekStart.
func (s *ReportService) WeeklyReport(weekStart string) (*Report, error) {
	weekEnd, err := calendar.AddDays(weekStart, daysPerWeek-1)
	if err != nil {
		return nil, err
	}

	days, err := calendar.Range(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	totals := make([]float64, len(days))
	var total float64
	for i, day := range days {
		totals[i], err = s.stats.DailyConsumption(day)
		if err != nil {
			return nil, err
		}
		total += totals[i]
	}

	goal, err := s.goals.Current()
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "---\nweek_start: %q\nweek_end: %q\ntotal_ml: %s\n---\n\n", weekStart, weekEnd, formatFloat(total))
	fmt.Fprintf(&b, "# Weekly report\n\n%s to %s\n\n", weekStart, weekEnd)
	b.WriteString("| Day | Volume (ml) |\n|---|---:|\n")
	for i, day := range days {
		fmt.Fprintf(&b, "| %s | %s |\n", day, formatFloat(totals[i]))
	}
	fmt.Fprintf(&b, "\n**Total:** %s ml\n", formatFloat(total))

	if goal != nil {
		b.WriteString("\n## Goal\n\n")
		fmt.Fprintf(&b, "- Daily target: %s ml\n", formatFloat(goal.DailyTarget))
		fmt.Fprintf(&b, "- Weekly target: %s ml\n", formatFloat(goal.WeeklyTarget))
		if total > goal.WeeklyTarget {
			fmt.Fprintf(&b, "- Over the weekly target by %s ml\n", formatFloat(total-goal.WeeklyTarget))
		} else {
			fmt.Fprintf(&b, "- Within the weekly target, %s ml to spare\n", formatFloat(goal.WeeklyTarget-total))
		}
	}

	return &Report{
		Markdown: b.String(),
		parser:   s.parser,
	}, nil
}
