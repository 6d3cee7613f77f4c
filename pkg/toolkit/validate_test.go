package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "upper cases", input: "aapl", want: "AAPL"},
		{name: "trims whitespace", input: "  msft  ", want: "MSFT"},
		{name: "already normalized", input: "TSLA", want: "TSLA"},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "nil", input: nil, wantErr: true},
		{name: "number", input: float64(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Symbol(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-15", want: "2024-01-15"},
		// Shape check only, no calendar awareness.
		{name: "impossible but well-shaped", input: "2024-13-45", want: "2024-13-45"},
		{name: "nil means unset", input: nil, want: ""},
		{name: "empty means unset", input: "", want: ""},
		{name: "too short", input: "2024-1-5", wantErr: true},
		{name: "wrong separators", input: "2024/01/15", wantErr: true},
		{name: "non-numeric component", input: "2024-ab-15", wantErr: true},
		{name: "extra dash", input: "20-4-01-15", wantErr: true},
		{name: "not a string", input: float64(20240115), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    *int
		wantErr bool
	}{
		{name: "nil means unset", input: nil, want: nil},
		{name: "lower bound", input: float64(1), want: intPtr(1)},
		{name: "upper bound", input: float64(10000), want: intPtr(10000)},
		{name: "typical value", input: float64(25), want: intPtr(25)},
		{name: "zero", input: float64(0), wantErr: true},
		{name: "negative", input: float64(-5), wantErr: true},
		{name: "over the cap", input: float64(10001), wantErr: true},
		{name: "fractional", input: 2.5, wantErr: true},
		{name: "numeric string", input: "10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Limit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    *int
		wantErr bool
	}{
		{name: "nil means unset", input: nil, want: nil},
		{name: "zero is valid", input: float64(0), want: intPtr(0)},
		{name: "positive", input: float64(3), want: intPtr(3)},
		{name: "negative", input: float64(-1), wantErr: true},
		{name: "fractional", input: 1.5, wantErr: true},
		{name: "numeric string", input: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Page(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func intPtr(n int) *int { return &n }
