package service

import (
	"time"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/model"
)

const daysPerWeek = 7

// StatsService derives totals and averages from entry reads. Nothing is
// cached; every call reads the store.
type StatsService struct {
	entries *EntryService
	goals   *GoalService
	clock   Clock
}

func NewStatsService(entries *EntryService, goals *GoalService, clock Clock) *StatsService {
	return &StatsService{
		entries: entries,
		goals:   goals,
		clock:   clock,
	}
}

// DailyConsumption sums volume over entries dated exactly date.
func (s *StatsService) DailyConsumption(date string) (float64, error) {
	entries, err := s.entries.Get(date, date)
	if err != nil {
		return 0, err
	}
	return model.TotalVolume(entries), nil
}

// WeeklyConsumption sums volume over [weekStart, weekStart+6 days].
func (s *StatsService) WeeklyConsumption(weekStart string) (float64, error) {
	weekEnd, err := calendar.AddDays(weekStart, daysPerWeek-1)
	if err != nil {
		return 0, err
	}

	entries, err := s.entries.Get(weekStart, weekEnd)
	if err != nil {
		return 0, err
	}
	return model.TotalVolume(entries), nil
}

// averages divides total volume by the number of entries, not by the number
// of calendar days in range. The two agree only with one entry per day.
func (s *StatsService) averages(startDate, endDate, purpose string) (daily, weekly float64, err error) {
	entries, err := s.entries.Get(startDate, endDate)
	if err != nil {
		return 0, 0, err
	}
	if len(entries) == 0 {
		return 0, 0, apperr.Wrap(apperr.NotFound, nil, "No entries found for %s calculation", purpose)
	}

	daily = model.TotalVolume(entries) / float64(len(entries))
	return daily, daily * daysPerWeek, nil
}

func (s *StatsService) Baseline(startDate, endDate string) (*model.Baseline, error) {
	daily, weekly, err := s.averages(startDate, endDate, "baseline")
	if err != nil {
		return nil, err
	}

	return &model.Baseline{
		AverageDailyConsumption:  daily,
		AverageWeeklyConsumption: weekly,
		CalculatedDate:           s.clock.now().UTC().Format(time.RFC3339),
		PeriodStart:              startDate,
		PeriodEnd:                endDate,
	}, nil
}

// Progress reports a period's averages. ReductionPercentage is always 0;
// use CompareToBaseline for a reduction against a baseline period.
func (s *StatsService) Progress(periodStart, periodEnd string) (*model.ProgressStats, error) {
	daily, weekly, err := s.averages(periodStart, periodEnd, "progress")
	if err != nil {
		return nil, err
	}

	return &model.ProgressStats{
		CurrentDailyAverage:  daily,
		CurrentWeeklyAverage: weekly,
		ReductionPercentage:  0,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
	}, nil
}

// CompareToBaseline measures a period against a baseline period. A positive
// reduction means less is consumed than during the baseline.
func (s *StatsService) CompareToBaseline(baselineStart, baselineEnd, periodStart, periodEnd string) (*model.BaselineComparison, error) {
	baseline, err := s.Baseline(baselineStart, baselineEnd)
	if err != nil {
		return nil, err
	}

	current, err := s.Progress(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	if baseline.AverageDailyConsumption > 0 {
		current.ReductionPercentage = (baseline.AverageDailyConsumption - current.CurrentDailyAverage) /
			baseline.AverageDailyConsumption * 100
	}

	return &model.BaselineComparison{
		Baseline: *baseline,
		Current:  *current,
	}, nil
}

// GoalStatus compares the current goal with consumption on date and over the
// seven days ending on date.
func (s *StatsService) GoalStatus(date string) (*model.GoalStatus, error) {
	weekStart, err := calendar.AddDays(date, -(daysPerWeek - 1))
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Current()
	if err != nil {
		return nil, err
	}

	daily, err := s.DailyConsumption(date)
	if err != nil {
		return nil, err
	}

	weekly, err := s.WeeklyConsumption(weekStart)
	if err != nil {
		return nil, err
	}

	return &model.GoalStatus{
		Goal:            *goal,
		Date:            date,
		WeekStart:       weekStart,
		DailyConsumed:   daily,
		WeeklyConsumed:  weekly,
		DailyRemaining:  max(goal.DailyTarget-daily, 0),
		WeeklyRemaining: max(goal.WeeklyTarget-weekly, 0),
		OverDaily:       daily > goal.DailyTarget,
		OverWeekly:      weekly > goal.WeeklyTarget,
	}, nil
}
