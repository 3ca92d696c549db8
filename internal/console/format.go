package console

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatNumber renders v rounded to two decimals without trailing zeros.
// Unknown values render as "-".
func FormatNumber(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatFloat(*v)
}

// FormatFloat renders f rounded to two decimals without trailing zeros.
// Infinities and NaN, which decimal cannot represent, render as Go formats them.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return decimal.NewFromFloat(f).Round(2).String()
}

// FormatWithUnit renders "value unit", or "-" when the value is unknown or zero
func FormatWithUnit(v *float64, unit string) string {
	if v == nil || *v == 0 {
		return "-"
	}
	return FormatNumber(v) + " " + unit
}
