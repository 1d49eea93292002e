package services

import (
	"fmt"
	"time"

	"github.com/firetm-simple/models"
)

const dateLayout = "2006-01-02"

// parseDate parses a "2006-01-02" request field, mapping bad input to the
// validation error.
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", models.ErrValidation, value)
	}
	return parsed, nil
}

// parseDateOptional parses an optional date field, returning a zero time for
// an empty string.
func parseDateOptional(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return parseDate(value)
}

// parseMonth validates a "2006-01" month key.
func parseMonth(value string) error {
	if _, err := time.Parse("2006-01", value); err != nil {
		return fmt.Errorf("%w: invalid month %q, want YYYY-MM", models.ErrValidation, value)
	}
	return nil
}
