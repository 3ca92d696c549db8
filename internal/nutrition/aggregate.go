// Package nutrition scales food item nutrition to consumed quantities and
// rolls the results up into meal and diet totals.
//
// A line whose unit is not recognized is treated as already expressed in the
// item's base-amount units. Accumulated totals carry fixed units (kcal, g)
// whatever units individual items declare.
package nutrition

import (
	"regexp"
	"strconv"

	"github.com/noot-app/nut/internal/types"
)

// DefaultBaseAmount is used when a serving descriptor carries no number
const DefaultBaseAmount = 100.0

var digits = regexp.MustCompile(`\d+`)

// BaseAmount extracts the serving size from a descriptor such as "100g" or "250 ml".
// Only the first run of digits is used; descriptors without digits yield DefaultBaseAmount.
func BaseAmount(per string) float64 {
	match := digits.FindString(per)
	if match == "" {
		return DefaultBaseAmount
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return DefaultBaseAmount
	}
	return v
}

// Multiplier returns the factor to apply to nutrition declared per baseAmount
// for the given consumed quantity.
func Multiplier(quantity float64, unit string, baseAmount float64) float64 {
	grams, ok := Normalize(quantity, unit)
	if !ok {
		return quantity / baseAmount
	}
	return grams / baseAmount
}

func scaleValue(v *float64, m float64) *float64 {
	if v == nil {
		return nil
	}
	return types.Float(*v * m)
}

// Scale multiplies every known value of profile by m. Unknown values stay unknown.
func Scale(profile types.NutritionProfile, m float64) types.NutritionProfile {
	return types.NutritionProfile{
		Energy: types.Nutrient{
			Value: scaleValue(profile.Energy.Value, m),
			Unit:  profile.Energy.Unit,
		},
		Carbohydrates: types.Carbohydrates{
			Value: scaleValue(profile.Carbohydrates.Value, m),
			Unit:  profile.Carbohydrates.Unit,
			Sugar: scaleValue(profile.Carbohydrates.Sugar, m),
		},
		Fat: types.Fat{
			Value:       scaleValue(profile.Fat.Value, m),
			Unit:        profile.Fat.Unit,
			Saturated:   scaleValue(profile.Fat.Saturated, m),
			Unsaturated: scaleValue(profile.Fat.Unsaturated, m),
		},
		Protein: types.Nutrient{
			Value: scaleValue(profile.Protein.Value, m),
			Unit:  profile.Protein.Unit,
		},
		Salt: types.Nutrient{
			Value: scaleValue(profile.Salt.Value, m),
			Unit:  profile.Salt.Unit,
		},
	}
}

// NewTotals returns an accumulator with every value at zero
func NewTotals() types.NutritionProfile {
	return types.NutritionProfile{
		Energy:        types.Nutrient{Value: types.Float(0), Unit: "kcal"},
		Carbohydrates: types.Carbohydrates{Value: types.Float(0), Unit: "g", Sugar: types.Float(0)},
		Fat:           types.Fat{Value: types.Float(0), Unit: "g", Saturated: types.Float(0), Unsaturated: types.Float(0)},
		Protein:       types.Nutrient{Value: types.Float(0), Unit: "g"},
		Salt:          types.Nutrient{Value: types.Float(0), Unit: "g"},
	}
}

func addValue(total **float64, delta *float64) {
	if delta == nil {
		return
	}
	if *total == nil {
		*total = types.Float(*delta)
		return
	}
	**total += *delta
}

// Accumulate adds every known value of delta into totals.
// Units of totals are left untouched.
func Accumulate(totals *types.NutritionProfile, delta types.NutritionProfile) {
	addValue(&totals.Energy.Value, delta.Energy.Value)
	addValue(&totals.Carbohydrates.Value, delta.Carbohydrates.Value)
	addValue(&totals.Carbohydrates.Sugar, delta.Carbohydrates.Sugar)
	addValue(&totals.Fat.Value, delta.Fat.Value)
	addValue(&totals.Fat.Saturated, delta.Fat.Saturated)
	addValue(&totals.Fat.Unsaturated, delta.Fat.Unsaturated)
	addValue(&totals.Protein.Value, delta.Protein.Value)
	addValue(&totals.Salt.Value, delta.Salt.Value)
}
