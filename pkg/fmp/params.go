package fmp

import (
	"strconv"
	"strings"
)

// Params holds the query parameters for a single endpoint call. Setter
// helpers skip unset values so absent arguments never reach the query
// string.
type Params map[string]string

// SetString sets key when v is non-empty.
func (p Params) SetString(key, v string) {
	if v != "" {
		p[key] = v
	}
}

// SetInt sets key when v is non-nil.
func (p Params) SetInt(key string, v *int) {
	if v != nil {
		p[key] = strconv.Itoa(*v)
	}
}

// SetFloat sets key when v is non-nil.
func (p Params) SetFloat(key string, v *float64) {
	if v != nil {
		p[key] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

// SetBool sets key when v is non-nil.
func (p Params) SetBool(key string, v *bool) {
	if v != nil {
		p[key] = strconv.FormatBool(*v)
	}
}

// SetSymbols sets key to a comma-joined symbol list when it is non-empty.
func (p Params) SetSymbols(key string, symbols []string) {
	if len(symbols) > 0 {
		p[key] = strings.Join(symbols, ",")
	}
}
