package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryStats(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		stats := SummaryStats(nil, "price")
		assert.Equal(t, 0, stats.Count)
		assert.Nil(t, stats.Min)
		assert.Nil(t, stats.Max)
		assert.Nil(t, stats.Avg)
	})

	t.Run("basic aggregation", func(t *testing.T) {
		data := []map[string]any{
			{"x": float64(1)},
			{"x": float64(3)},
		}
		stats := SummaryStats(data, "x")
		assert.Equal(t, 2, stats.Count)
		require.NotNil(t, stats.Min)
		require.NotNil(t, stats.Max)
		require.NotNil(t, stats.Avg)
		assert.Equal(t, 1.0, *stats.Min)
		assert.Equal(t, 3.0, *stats.Max)
		assert.Equal(t, 2.0, *stats.Avg)
	})

	t.Run("skips missing and non-numeric values", func(t *testing.T) {
		data := []map[string]any{
			{"price": float64(10)},
			{"price": "not a number"},
			{"other": float64(99)},
			{"price": float64(20)},
		}
		stats := SummaryStats(data, "price")
		assert.Equal(t, 2, stats.Count)
		assert.Equal(t, 10.0, *stats.Min)
		assert.Equal(t, 20.0, *stats.Max)
		assert.Equal(t, 15.0, *stats.Avg)
	})

	t.Run("no usable values keeps original count", func(t *testing.T) {
		data := []map[string]any{
			{"name": "a"},
			{"name": "b"},
			{"name": "c"},
		}
		stats := SummaryStats(data, "price")
		assert.Equal(t, 3, stats.Count)
		assert.Nil(t, stats.Min)
		assert.Nil(t, stats.Max)
		assert.Nil(t, stats.Avg)
	})
}

func TestAsMapSlice(t *testing.T) {
	t.Run("list of mappings", func(t *testing.T) {
		v := []any{
			map[string]any{"a": float64(1)},
			map[string]any{"b": float64(2)},
		}
		out := AsMapSlice(v)
		require.Len(t, out, 2)
		assert.Equal(t, float64(1), out[0]["a"])
	})

	t.Run("drops non-mapping entries", func(t *testing.T) {
		v := []any{map[string]any{"a": float64(1)}, "stray", float64(3)}
		assert.Len(t, AsMapSlice(v), 1)
	})

	t.Run("not a list", func(t *testing.T) {
		assert.Nil(t, AsMapSlice(map[string]any{"a": float64(1)}))
		assert.Nil(t, AsMapSlice(nil))
	})
}

func TestFloatField(t *testing.T) {
	m := map[string]any{"price": float64(42.5), "name": "AAPL"}

	got := FloatField(m, "price")
	require.NotNil(t, got)
	assert.Equal(t, 42.5, *got)

	assert.Nil(t, FloatField(m, "name"))
	assert.Nil(t, FloatField(m, "missing"))
}
