package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("ninety", time.Minute))
}

func TestCurrentYearUsesUTC(t *testing.T) {
	// 23:30 on Dec 31 in UTC-5 is already next year in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	assert.Equal(t, 2026, CurrentYear(time.Date(2025, 12, 31, 23, 30, 0, 0, loc)))
}
