package utils

import (
	"time"
)

const DateKeyLayout = "2006-01-02"

// DateKey derives the calendar-day grouping key from a timestamp.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ValidateDateKey reports whether s is a well-formed YYYY-MM-DD key.
func ValidateDateKey(s string) error {
	_, err := time.Parse(DateKeyLayout, s)
	return err
}
