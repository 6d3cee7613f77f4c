package toolkit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// notAvailable is the display placeholder for absent values.
const notAvailable = "N/A"

// FormatCurrency formats a currency value for display. USD gets a leading
// dollar sign; other currencies get the code as a suffix. Thousands are
// grouped and two decimals kept.
func FormatCurrency(value *float64, currency string) string {
	if value == nil {
		return notAvailable
	}

	formatted := groupThousands(decimal.NewFromFloat(*value).StringFixed(2))
	if currency == "USD" {
		return "$" + formatted
	}
	return formatted + " " + currency
}

// FormatPercentage formats a percentage value with the given number of
// decimal places.
func FormatPercentage(value *float64, decimals int) string {
	if value == nil {
		return notAvailable
	}
	return decimal.NewFromFloat(*value).StringFixed(int32(decimals)) + "%"
}

// FormatLargeNumber formats a number with a T/B/M/K suffix at the largest
// applicable power-of-ten threshold, two decimals throughout.
func FormatLargeNumber(value *float64) string {
	if value == nil {
		return notAvailable
	}

	v := decimal.NewFromFloat(*value)
	switch {
	case *value >= 1e12:
		return v.Div(decimal.NewFromInt(1e12)).StringFixed(2) + "T"
	case *value >= 1e9:
		return v.Div(decimal.NewFromInt(1e9)).StringFixed(2) + "B"
	case *value >= 1e6:
		return v.Div(decimal.NewFromInt(1e6)).StringFixed(2) + "M"
	case *value >= 1e3:
		return v.Div(decimal.NewFromInt(1e3)).StringFixed(2) + "K"
	default:
		return v.StringFixed(2)
	}
}

// groupThousands inserts comma separators into the integer part of a
// fixed-decimal string.
func groupThousands(s string) string {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
