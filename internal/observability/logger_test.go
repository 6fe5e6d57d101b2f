package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "json")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	logger.Debug().Str("quote_number", "ABC123XYZ0").Msg("quote created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "quote created", entry["message"])
	assert.Equal(t, "ABC123XYZ0", entry["quote_number"])
	assert.Equal(t, "volcano-insurance-api", entry["service"])
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "loud", "json")

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewMetricsForTesting(t *testing.T) {
	// Two instances must not collide because neither is registered.
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()
	a.QuotesCreated.Inc()
	b.QuotesCreated.Inc()
	assert.NotSame(t, a, b)
}
