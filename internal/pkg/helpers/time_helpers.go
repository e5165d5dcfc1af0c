package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the fallback on error.
// Config validation normally rejects bad values before this runs.
func ParseDuration(durationStr string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("fallback", fallback).Msg("Failed to parse duration string, using fallback")
		return fallback
	}
	return duration
}

// CurrentYear returns the calendar year of now in UTC.
func CurrentYear(now time.Time) int {
	return now.UTC().Year()
}
