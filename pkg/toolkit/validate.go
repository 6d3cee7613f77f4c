package toolkit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a bad caller-supplied argument. The message is
// surfaced to the caller unmodified.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Symbol validates and normalizes a stock symbol: it must be a non-empty
// string and is returned trimmed and upper-cased.
func Symbol(v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", validationErrorf("symbol must be a non-empty string")
	}

	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return "", validationErrorf("symbol cannot be empty")
	}

	return normalized, nil
}

// Date validates an optional date string in YYYY-MM-DD shape. The three
// dash-delimited components must parse as integers; there is no calendar
// check, so "2024-13-45" passes. Nil and the empty string mean unset.
func Date(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", validationErrorf("date must be a string")
	}
	if s == "" {
		return "", nil
	}

	if len(s) != 10 || s[4] != '-' || s[7] != '-' || strings.Count(s, "-") != 2 {
		return "", validationErrorf("date must be in YYYY-MM-DD format")
	}
	for _, part := range strings.Split(s, "-") {
		if _, err := strconv.Atoi(part); err != nil {
			return "", validationErrorf("date must be in YYYY-MM-DD format")
		}
	}

	return s, nil
}

// Limit validates an optional limit argument: an integral number in
// 1..10000. Nil means unset.
func Limit(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	n, ok := integral(v)
	if !ok {
		return nil, validationErrorf("limit must be an integer")
	}
	if n <= 0 {
		return nil, validationErrorf("limit must be positive")
	}
	if n > 10000 {
		return nil, validationErrorf("limit cannot exceed 10000")
	}

	return &n, nil
}

// Page validates an optional page argument: an integral number >= 0. Nil
// means unset.
func Page(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	n, ok := integral(v)
	if !ok {
		return nil, validationErrorf("page must be an integer")
	}
	if n < 0 {
		return nil, validationErrorf("page must be non-negative")
	}

	return &n, nil
}

// integral extracts an int from a raw JSON argument value. Arguments decode
// as float64, so an integral float counts; fractional values and every
// other type do not.
func integral(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
