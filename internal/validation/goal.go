package validation

import (
	"math"

	"github.com/brewlog/brewlog/internal/apperr"
)

// ValidateTargets checks both goal targets are non-negative
func ValidateTargets(dailyTarget, weeklyTarget float64) error {
	if !(dailyTarget >= 0) || isInf(dailyTarget) {
		return apperr.Invalid("Daily target must be non-negative")
	}
	if !(weeklyTarget >= 0) || isInf(weeklyTarget) {
		return apperr.Invalid("Weekly target must be non-negative")
	}
	return nil
}

func isInf(v float64) bool {
	return math.IsInf(v, 0)
}
