package model

// Baseline is a historical consumption rate. Derived, never stored.
type Baseline struct {
	AverageDailyConsumption  float64 `json:"average_daily_consumption"`
	AverageWeeklyConsumption float64 `json:"average_weekly_consumption"`
	CalculatedDate           string  `json:"calculated_date"`
	PeriodStart              string  `json:"period_start"`
	PeriodEnd                string  `json:"period_end"`
}

type ProgressStats struct {
	CurrentDailyAverage  float64 `json:"current_daily_average"`
	CurrentWeeklyAverage float64 `json:"current_weekly_average"`
	ReductionPercentage  float64 `json:"reduction_percentage"`
	PeriodStart          string  `json:"period_start"`
	PeriodEnd            string  `json:"period_end"`
}

// BaselineComparison holds a period's progress measured against a baseline.
type BaselineComparison struct {
	Baseline Baseline      `json:"baseline"`
	Current  ProgressStats `json:"current"`
}
