package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateFormat is the canonical day-granularity representation used for
// menu and booking natural keys.
const DateFormat = "2006-01-02"

// ParseDuration parses a duration string, returns the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// DateOnly normalizes an incoming date string to day granularity.
// Inputs may arrive as a bare date ("2024-05-01") or as a full RFC 3339
// timestamp with an arbitrary time-of-day component; either way the
// result is the UTC calendar date, midnight-aligned.
func DateOnly(value string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return truncateToDay(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want %s or RFC 3339)", value, DateFormat)
}

// FormatDate renders a time as the canonical day-granularity string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
