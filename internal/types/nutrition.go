package types

// Nutrient is a single nutrient amount with its unit.
// A nil Value means the amount is unknown, which is not the same as zero.
type Nutrient struct {
	Value *float64 `yaml:"value" json:"value"`
	Unit  string   `yaml:"unit" json:"unit"`
}

// Carbohydrates holds the total carbohydrate amount and the sugar part of it
type Carbohydrates struct {
	Value *float64 `yaml:"value" json:"value"`
	Unit  string   `yaml:"unit" json:"unit"`
	Sugar *float64 `yaml:"sugar" json:"sugar"`
}

// Fat holds the total fat amount and its saturated/unsaturated split
type Fat struct {
	Value       *float64 `yaml:"value" json:"value"`
	Unit        string   `yaml:"unit" json:"unit"`
	Saturated   *float64 `yaml:"saturated" json:"saturated"`
	Unsaturated *float64 `yaml:"unsaturated" json:"unsaturated"`
}

// NutritionProfile is the fixed set of nutrient groups tracked for a food item.
// The same type is used as a running total when aggregating meals and diets.
type NutritionProfile struct {
	Energy        Nutrient      `yaml:"energy" json:"energy"`
	Carbohydrates Carbohydrates `yaml:"carbohydrates" json:"carbohydrates"`
	Fat           Fat           `yaml:"fat" json:"fat"`
	Protein       Nutrient      `yaml:"protein" json:"protein"`
	Salt          Nutrient      `yaml:"salt" json:"salt"`
}

// Float returns a pointer to v, for filling optional nutrient fields
func Float(v float64) *float64 {
	return &v
}
