package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if err := validateFinite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// DateKey formats t as the YYYY-MM-DD key used for daily logs and weight history.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey validates a YYYY-MM-DD key; an empty value resolves to today.
func ParseDateKey(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateKey(time.Now()), nil
	}
	if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

// calendarDay drops the clock and zone so day differences ignore DST shifts.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}
