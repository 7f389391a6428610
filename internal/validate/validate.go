// Package validate provides the field checks shared by the request handlers.
// Each resource declares its rule set as a list of checks and runs them with
// All before anything touches the store.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// All returns the first violation, or nil when every check passed.
func All(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Required rejects an absent field. Request DTOs use pointer fields so that
// "missing" and "zero" stay distinguishable.
func Required[T any](name string, v *T) error {
	if v == nil {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// RequiredText rejects an absent or blank string field.
func RequiredText(name string, v *string) error {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// Positive requires d > 0.
func Positive(name string, d decimal.Decimal) error {
	if d.Sign() <= 0 {
		return fmt.Errorf("%s must be a positive number", name)
	}
	return nil
}

// NonNegative requires d >= 0.
func NonNegative(name string, d decimal.Decimal) error {
	if d.Sign() < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	return nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses a date field given as YYYY-MM-DD or RFC 3339.
func ParseDate(name, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s must be a valid date", name)
}

// NotFuture rejects dates after today (day granularity, server clock).
func NotFuture(name string, t time.Time) error {
	if t.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		return fmt.Errorf("%s must not be in the future", name)
	}
	return nil
}

// Future requires t to be strictly after the current time.
func Future(name string, t time.Time) error {
	if !t.After(time.Now()) {
		return fmt.Errorf("%s must be in the future", name)
	}
	return nil
}

// RecordID checks the path id before any store call is attempted.
func RecordID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid id format")
	}
	return nil
}
