package validation

import (
	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/calendar"
)

// Comparisons are written so NaN fails them.

// ValidateAlcoholPercentage accepts the closed range [0, 100]
func ValidateAlcoholPercentage(pct float64) error {
	if !(pct >= 0 && pct <= 100) {
		return apperr.Invalid("Alcohol percentage must be between 0 and 100")
	}
	return nil
}

// ValidateVolume accepts strictly positive, finite volumes
func ValidateVolume(volumeML float64) error {
	if !(volumeML > 0) || isInf(volumeML) {
		return apperr.Invalid("Volume must be positive")
	}
	return nil
}

func ValidateDate(date string) error {
	_, err := calendar.Parse(date)
	return err
}

// ValidateEntry applies every rule an entry must satisfy before it is written.
func ValidateEntry(name string, pct, volumeML float64) error {
	err := ValidateName(name)
	if err != nil {
		return err
	}
	err = ValidateAlcoholPercentage(pct)
	if err != nil {
		return err
	}
	return ValidateVolume(volumeML)
}
