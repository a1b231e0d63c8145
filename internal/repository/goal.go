package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/model"
	"github.com/brewlog/brewlog/internal/store"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Replace(goal *model.ConsumptionGoal) error
	Current() (*model.ConsumptionGoal, error)
	Count() (int, error)
}

type goalRepository struct {
	store *store.Store
}

func NewGoalRepository(s *store.Store) GoalRepository {
	return &goalRepository{store: s}
}

// Replace drops every existing goal and inserts goal as the only one.
// Both statements run in one transaction, so readers never see zero goals.
func (r *goalRepository) Replace(goal *model.ConsumptionGoal) error {
	query := `INSERT INTO consumption_goals (id, daily_target, weekly_target, start_date, end_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	return r.store.Tx(func(db sqlx.Ext) error {
		_, err := db.Exec(`DELETE FROM consumption_goals`)
		if err != nil {
			return err
		}

		_, err = db.Exec(query,
			goal.ID,
			goal.DailyTarget,
			goal.WeeklyTarget,
			goal.StartDate,
			goal.EndDate,
			goal.CreatedAt,
		)
		return err
	})
}

// Current returns the most recently created goal.
func (r *goalRepository) Current() (*model.ConsumptionGoal, error) {
	goal := &model.ConsumptionGoal{}
	query := `SELECT * FROM consumption_goals ORDER BY created_at DESC LIMIT 1`

	err := r.store.With(func(db sqlx.Ext) error {
		err := sqlx.Get(db, goal, query)
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.Wrap(apperr.NotFound, ErrGoalNotFound, "No consumption goal set")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *goalRepository) Count() (int, error) {
	var count int
	err := r.store.With(func(db sqlx.Ext) error {
		return sqlx.Get(db, &count, `SELECT COUNT(*) FROM consumption_goals`)
	})
	return count, err
}
