// Package validate holds the input parsing rules for conversational
// flows: strict ISO dates, "HH:MM - HH:MM" time ranges, and the "-"
// skip sentinel for optional fields.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"symposiumbot/internal/models"
)

// DateLayout is the only accepted input layout for dates.
const DateLayout = "2006-01-02"

// ParseDate parses a strict ISO 8601 calendar date.
func ParseDate(input string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
	}
	return t, nil
}

// ParseEndDate parses an end date and enforces start <= end.
func ParseEndDate(input string, start time.Time) (time.Time, error) {
	end, err := ParseDate(input)
	if err != nil {
		return time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("%w: end date before start date", models.ErrValidation)
	}
	return end, nil
}

// ParseTimeRange parses "HH:MM - HH:MM" (whitespace around the dash is
// tolerated), rejects start >= end, and returns the zero-padded
// normalized form.
func ParseTimeRange(input string) (string, error) {
	left, right, found := strings.Cut(strings.TrimSpace(input), "-")
	if !found {
		return "", fmt.Errorf("%w: time must be HH:MM - HH:MM", models.ErrValidation)
	}
	startH, startM, err := parseClock(left)
	if err != nil {
		return "", err
	}
	endH, endM, err := parseClock(right)
	if err != nil {
		return "", err
	}
	if startH*60+startM >= endH*60+endM {
		return "", fmt.Errorf("%w: start time must be before end time", models.ErrValidation)
	}
	return fmt.Sprintf("%02d:%02d - %02d:%02d", startH, startM, endH, endM), nil
}

func parseClock(s string) (int, int, error) {
	h, m, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, fmt.Errorf("%w: time must be HH:MM - HH:MM", models.ErrValidation)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour out of range", models.ErrValidation)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute out of range", models.ErrValidation)
	}
	return hour, minute, nil
}

// Optional converts the "-" skip sentinel into true absence. Any other
// trimmed non-empty text becomes a value; empty input is not a skip.
func Optional(input string) (*string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "-" {
		return nil, nil
	}
	if trimmed == "" {
		return nil, fmt.Errorf("%w: enter a value or '-' to skip", models.ErrValidation)
	}
	return &trimmed, nil
}

// Required validates a mandatory free-text field.
func Required(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("%w: value must not be empty", models.ErrValidation)
	}
	return trimmed, nil
}
