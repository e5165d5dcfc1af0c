package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	Configure(Config{Level: DebugLevel, Output: &buf, Service: "catalog"})
	Debug().Str("courseId", "CS116").Msg("lookup")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "catalog", entry["service"])
	assert.Equal(t, "CS116", entry["courseId"])
	assert.Equal(t, "lookup", entry["message"])
}

func TestConfigureLevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	Configure(Config{Level: WarnLevel, Output: &buf})
	Info().Msg("hidden")
	assert.Zero(t, buf.Len())
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigFromStrings(t *testing.T) {
	cfg := ConfigFromStrings("DEBUG", "text")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.True(t, cfg.Pretty)
	assert.False(t, ConfigFromStrings("info", "json").Pretty)
}

func TestCtxFallsBackToGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })
	Configure(Config{Level: InfoLevel, Output: &buf})

	Ctx(context.Background()).Info().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)

	buf.Reset()
	scoped := Get().With().Str("requestId", "r1").Logger()
	Ctx(WithContext(context.Background(), scoped)).Info().Msg("scoped")
	assert.Contains(t, buf.String(), `"requestId":"r1"`)
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, LogLevel("verbose").zerolog())
	assert.Equal(t, zerolog.WarnLevel, LogLevel("warn").zerolog())
}
