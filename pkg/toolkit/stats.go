package toolkit

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Stats summarizes the numeric values found at one key of a result list.
type Stats struct {
	Count int      `json:"count"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Avg   *float64 `json:"avg"`
}

// SummaryStats extracts the non-null numeric values at key and returns
// their count, minimum, maximum and arithmetic mean. An empty list yields
// count 0; a list with no usable values keeps the original count. Null
// min/max/avg mark both degenerate cases.
func SummaryStats(data []map[string]any, key string) Stats {
	if len(data) == 0 {
		return Stats{}
	}

	var values []float64
	for _, item := range data {
		if v, ok := numeric(item[key]); ok {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return Stats{Count: len(data)}
	}

	min, max := values[0], values[0]
	sum := decimal.Zero
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum = sum.Add(decimal.NewFromFloat(v))
	}

	avg := sum.Div(decimal.NewFromInt(int64(len(values)))).InexactFloat64()

	return Stats{
		Count: len(values),
		Min:   &min,
		Max:   &max,
		Avg:   &avg,
	}
}

// AsMapSlice coerces a decoded JSON payload into a list of mappings.
// Anything else yields nil.
func AsMapSlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// FloatField reads a numeric field from a mapping, nil when absent or
// non-numeric.
func FloatField(m map[string]any, key string) *float64 {
	if v, ok := numeric(m[key]); ok {
		return &v
	}
	return nil
}

// numeric extracts a float from the value shapes JSON decoding produces.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
