package model

// ConsumptionGoal is the single active consumption target.
// Replacing it discards the previous one.
type ConsumptionGoal struct {
	ID           string  `db:"id" json:"id"`
	DailyTarget  float64 `db:"daily_target" json:"daily_target"`
	WeeklyTarget float64 `db:"weekly_target" json:"weekly_target"`
	StartDate    string  `db:"start_date" json:"start_date"`
	EndDate      string  `db:"end_date" json:"end_date"`
	CreatedAt    string  `db:"created_at" json:"-"`
}

// GoalStatus compares the current goal with consumption around one day.
type GoalStatus struct {
	Goal            ConsumptionGoal `json:"goal"`
	Date            string          `json:"date"`
	WeekStart       string          `json:"week_start"`
	DailyConsumed   float64         `json:"daily_consumed"`
	WeeklyConsumed  float64         `json:"weekly_consumed"`
	DailyRemaining  float64         `json:"daily_remaining"`
	WeeklyRemaining float64         `json:"weekly_remaining"`
	OverDaily       bool            `json:"over_daily"`
	OverWeekly      bool            `json:"over_weekly"`
}
