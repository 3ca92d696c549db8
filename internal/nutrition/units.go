package nutrition

import "strings"

// gramsPerUnit maps every recognized unit spelling to its weight in grams.
// Pieces are counted as 100 g each.
var gramsPerUnit = map[string]float64{
	"kg":        1000,
	"kilogram":  1000,
	"kilograms": 1000,

	"g":     1,
	"gram":  1,
	"grams": 1,

	"mg":         0.001,
	"milligram":  0.001,
	"milligrams": 0.001,

	"oz":     28.35,
	"ounce":  28.35,
	"ounces": 28.35,

	"lb":     453.6,
	"pound":  453.6,
	"pounds": 453.6,

	"pcs":    100,
	"pc":     100,
	"piece":  100,
	"pieces": 100,
}

func resolveUnit(unit string) (float64, bool) {
	factor, ok := gramsPerUnit[strings.ToLower(unit)]
	return factor, ok
}

// IsKnownUnit reports whether unit can be converted to grams
func IsKnownUnit(unit string) bool {
	_, ok := resolveUnit(unit)
	return ok
}

// Normalize converts quantity expressed in unit to grams.
// ok is false for units it does not recognize; callers then fall back to
// treating the raw quantity as already expressed in base-amount units.
func Normalize(quantity float64, unit string) (grams float64, ok bool) {
	factor, ok := resolveUnit(unit)
	if !ok {
		return 0, false
	}
	return quantity * factor, true
}
