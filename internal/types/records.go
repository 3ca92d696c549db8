package types

// FoodItem represents a food with nutrition declared per a serving descriptor such as "100g"
type FoodItem struct {
	Name      string           `yaml:"name" json:"name"`
	Type      string           `yaml:"type" json:"type"`
	Per       string           `yaml:"per" json:"per"`
	Nutrition NutritionProfile `yaml:"nutrition" json:"nutrition"`
}

// Key returns the unique name of the item
func (f FoodItem) Key() string { return f.Name }

// MealLine references a food item by name with the consumed quantity
type MealLine struct {
	Name     string  `yaml:"name" json:"name"`
	Quantity float64 `yaml:"quantity" json:"quantity"`
	Unit     string  `yaml:"unit" json:"unit"`
}

// Meal is an ordered list of meal lines
type Meal struct {
	Name  string     `yaml:"name" json:"name"`
	Items []MealLine `yaml:"items" json:"items"`
}

// Key returns the unique name of the meal
func (m Meal) Key() string { return m.Name }

// DietEntry references a meal by name, optionally placed on a day and given a meal type
type DietEntry struct {
	Name string `yaml:"name" json:"name"`
	Day  string `yaml:"day,omitempty" json:"day,omitempty"`
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
}

// Diet is an ordered list of diet entries
type Diet struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Meals       []DietEntry `yaml:"meals" json:"meals"`
}

// Key returns the unique name of the diet
func (d Diet) Key() string { return d.Name }
