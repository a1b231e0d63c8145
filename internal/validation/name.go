package validation

import (
	"github.com/brewlog/brewlog/internal/apperr"
)

// ValidateName validates a drink name. Any non-empty text is accepted as is.
func ValidateName(name string) error {
	if name == "" {
		return apperr.Invalid("Name cannot be empty")
	}
	return nil
}
