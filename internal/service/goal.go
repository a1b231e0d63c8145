package service

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/model"
	"github.com/brewlog/brewlog/internal/repository"
	"github.com/brewlog/brewlog/internal/validation"
)

type GoalService struct {
	repo  repository.GoalRepository
	clock Clock
}

func NewGoalService(repo repository.GoalRepository, clock Clock) *GoalService {
	return &GoalService{
		repo:  repo,
		clock: clock,
	}
}

// Set replaces the current goal. The previous goal is discarded.
func (s *GoalService) Set(dailyTarget, weeklyTarget float64, startDate, endDate string) (*model.ConsumptionGoal, error) {
	err := validation.ValidateTargets(dailyTarget, weeklyTarget)
	if err != nil {
		return nil, err
	}

	goal := &model.ConsumptionGoal{
		ID:           uuid.New().String(),
		DailyTarget:  dailyTarget,
		WeeklyTarget: weeklyTarget,
		StartDate:    startDate,
		EndDate:      endDate,
		CreatedAt:    calendar.Timestamp(s.clock.now()),
	}

	err = s.repo.Replace(goal)
	if err != nil {
		return nil, err
	}

	slog.Info("consumption goal replaced", "id", goal.ID, "daily_target", dailyTarget, "weekly_target", weeklyTarget)
	return goal, nil
}

// Current returns the active goal, or a NotFound error when none is set.
func (s *GoalService) Current() (*model.ConsumptionGoal, error) {
	return s.repo.Current()
}
