package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredString(t *testing.T) {
	args := map[string]any{"query": "apple", "empty": "", "number": float64(1), "null": nil}

	got, err := RequiredString(args, "query")
	require.NoError(t, err)
	assert.Equal(t, "apple", got)

	for _, key := range []string{"empty", "number", "null", "missing"} {
		_, err := RequiredString(args, key)
		assert.Error(t, err, key)
	}
}

func TestOptionalString(t *testing.T) {
	args := map[string]any{"exchange": "NASDAQ", "number": float64(1), "null": nil}

	got, err := OptionalString(args, "exchange")
	require.NoError(t, err)
	assert.Equal(t, "NASDAQ", got)

	got, err = OptionalString(args, "missing")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = OptionalString(args, "null")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = OptionalString(args, "number")
	assert.Error(t, err)
}

func TestOptionalFloat(t *testing.T) {
	args := map[string]any{"beta": 1.5, "text": "1.5"}

	got, err := OptionalFloat(args, "beta")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1.5, *got)

	got, err = OptionalFloat(args, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = OptionalFloat(args, "text")
	assert.Error(t, err)
}

func TestOptionalBool(t *testing.T) {
	args := map[string]any{"short": true, "text": "true"}

	got, err := OptionalBool(args, "short")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	got, err = OptionalBool(args, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = OptionalBool(args, "text")
	assert.Error(t, err)
}

func TestSymbolList(t *testing.T) {
	t.Run("normalizes each entry", func(t *testing.T) {
		got, err := SymbolList(map[string]any{"symbols": "aapl, msft ,GOOG"}, "symbols")
		require.NoError(t, err)
		assert.Equal(t, []string{"AAPL", "MSFT", "GOOG"}, got)
	})

	t.Run("empty entry", func(t *testing.T) {
		_, err := SymbolList(map[string]any{"symbols": "AAPL,,MSFT"}, "symbols")
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := SymbolList(map[string]any{}, "symbols")
		assert.Error(t, err)
	})
}
