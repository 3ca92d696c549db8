package nutrition

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/noot-app/nut/internal/types"
)

// Store is the read-only record store the calculator resolves names against.
// LookupMeal accepts an exact name or a pattern and reports types.ErrNotFound
// or *types.AmbiguousError when it cannot settle on a single meal.
type Store interface {
	ListItems() ([]types.FoodItem, error)
	LookupMeal(pattern string) (*types.Meal, error)
	LookupDiet(name string) (*types.Diet, error)
}

// LineResult is the outcome for one meal line
type LineResult struct {
	Line       types.MealLine         `json:"line"`
	Found      bool                   `json:"found"`
	KnownUnit  bool                   `json:"known_unit"`
	Multiplier float64                `json:"multiplier"`
	Nutrition  types.NutritionProfile `json:"nutrition"`
	// Reason is set when the item was found but its nutrition could not be scaled
	Reason string `json:"reason,omitempty"`
}

// Calculated reports whether the line contributed to the meal totals
func (lr LineResult) Calculated() bool {
	return lr.Found && lr.Reason == ""
}

// MealResult holds the totals of a meal and which lines contributed to them
type MealResult struct {
	Meal       types.Meal             `json:"meal"`
	Lines      []LineResult           `json:"lines"`
	Totals     types.NutritionProfile `json:"totals"`
	Calculated []string               `json:"calculated"`
	Missing    []string               `json:"missing"`
}

// DietEntryResult is the outcome for one diet entry.
// Result is nil when the meal could not be calculated; Err then says why
// and Error carries the same message for JSON clients.
type DietEntryResult struct {
	Entry      types.DietEntry `json:"entry"`
	Result     *MealResult     `json:"result,omitempty"`
	Err        error           `json:"-"`
	Error      string          `json:"error,omitempty"`
	Candidates []string        `json:"candidates,omitempty"`
}

// DietResult holds the totals of a diet and which meals contributed to them
type DietResult struct {
	Diet       types.Diet             `json:"diet"`
	Entries    []DietEntryResult      `json:"entries"`
	Totals     types.NutritionProfile `json:"totals"`
	Calculated []string               `json:"calculated"`
	Missing    []string               `json:"missing"`
}

// Calculator aggregates nutrition for meals and diets held in a Store
type Calculator struct {
	store Store
	log   *slog.Logger
}

// NewCalculator creates a new calculator reading from store
func NewCalculator(store Store, logger *slog.Logger) *Calculator {
	return &Calculator{
		store: store,
		log:   logger,
	}
}

// ItemTable indexes items by exact name
func ItemTable(items []types.FoodItem) map[string]types.FoodItem {
	table := make(map[string]types.FoodItem, len(items))
	for _, item := range items {
		table[item.Name] = item
	}
	return table
}

func (c *Calculator) itemTable() (map[string]types.FoodItem, error) {
	items, err := c.store.ListItems()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return ItemTable(items), nil
}

// MealTotals computes the totals of meal using items as the lookup table.
// Lines referencing unknown items, and lines whose item cannot be scaled
// (a zero serving size), are reported in Missing and skipped.
func (c *Calculator) MealTotals(meal types.Meal, items map[string]types.FoodItem) *MealResult {
	res := &MealResult{
		Meal:       meal,
		Lines:      make([]LineResult, 0, len(meal.Items)),
		Totals:     NewTotals(),
		Calculated: []string{},
		Missing:    []string{},
	}

	for _, line := range meal.Items {
		item, ok := items[line.Name]
		if !ok {
			c.log.Debug("Meal line references unknown item", "meal", meal.Name, "item", line.Name)
			res.Missing = append(res.Missing, line.Name)
			res.Lines = append(res.Lines, LineResult{Line: line, KnownUnit: IsKnownUnit(line.Unit)})
			continue
		}

		known := IsKnownUnit(line.Unit)
		base := BaseAmount(item.Per)
		m := Multiplier(line.Quantity, line.Unit, base)
		if math.IsInf(m, 0) || math.IsNaN(m) {
			c.log.Warn("Cannot scale item", "meal", meal.Name, "item", line.Name, "per", item.Per, "base_amount", base)
			res.Missing = append(res.Missing, line.Name)
			res.Lines = append(res.Lines, LineResult{
				Line:      line,
				Found:     true,
				KnownUnit: known,
				Reason:    fmt.Sprintf("serving size %q cannot be scaled", item.Per),
			})
			continue
		}

		delta := Scale(item.Nutrition, m)
		Accumulate(&res.Totals, delta)

		if !known {
			c.log.Debug("Unit not recognized, using raw quantity", "item", line.Name, "unit", line.Unit, "base_amount", base)
		}
		res.Calculated = append(res.Calculated, line.Name)
		res.Lines = append(res.Lines, LineResult{
			Line:       line,
			Found:      true,
			KnownUnit:  known,
			Multiplier: m,
			Nutrition:  delta,
		})
	}

	return res
}

// CalculateMeal resolves a meal by name or pattern and computes its totals.
// It returns types.ErrNotFound or *types.AmbiguousError when the meal cannot be resolved.
func (c *Calculator) CalculateMeal(pattern string) (*MealResult, error) {
	start := time.Now()
	c.log.Debug("CalculateMeal starting", "pattern", pattern)

	meal, err := c.store.LookupMeal(pattern)
	if err != nil {
		return nil, err
	}

	items, err := c.itemTable()
	if err != nil {
		return nil, err
	}

	res := c.MealTotals(*meal, items)
	c.log.Debug("CalculateMeal completed",
		"meal", meal.Name,
		"calculated", len(res.Calculated),
		"missing", len(res.Missing),
		"duration", time.Since(start))
	return res, nil
}

// CalculateDiet resolves a diet by exact name and sums the totals of its meals.
// Meals that cannot be resolved are reported in Missing and do not change the totals.
func (c *Calculator) CalculateDiet(name string) (*DietResult, error) {
	start := time.Now()
	c.log.Debug("CalculateDiet starting", "name", name)

	diet, err := c.store.LookupDiet(name)
	if err != nil {
		return nil, err
	}

	items, err := c.itemTable()
	if err != nil {
		return nil, err
	}

	res := &DietResult{
		Diet:       *diet,
		Entries:    make([]DietEntryResult, 0, len(diet.Meals)),
		Totals:     NewTotals(),
		Calculated: []string{},
		Missing:    []string{},
	}

	for _, entry := range diet.Meals {
		er := DietEntryResult{Entry: entry}

		meal, err := c.store.LookupMeal(entry.Name)
		if err != nil {
			var amb *types.AmbiguousError
			if errors.As(err, &amb) {
				er.Candidates = amb.Candidates
			}
			c.log.Warn("Could not calculate meal", "diet", diet.Name, "meal", entry.Name, "error", err)
			er.Err = err
			er.Error = err.Error()
			res.Missing = append(res.Missing, entry.Name)
			res.Entries = append(res.Entries, er)
			continue
		}

		er.Result = c.MealTotals(*meal, items)
		Accumulate(&res.Totals, er.Result.Totals)
		res.Calculated = append(res.Calculated, entry.Name)
		res.Entries = append(res.Entries, er)
	}

	c.log.Debug("CalculateDiet completed",
		"diet", diet.Name,
		"calculated", len(res.Calculated),
		"missing", len(res.Missing),
		"duration", time.Since(start))
	return res, nil
}
