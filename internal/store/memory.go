package store

import (
	"fmt"

	"github.com/noot-app/nut/internal/types"
)

// Memory is an in-memory record store for testing.
// It resolves names the same way the file store does.
type Memory struct {
	items []types.FoodItem
	meals []types.Meal
	diets []types.Diet
	err   error
}

// NewMemory creates a new in-memory store holding the given records
func NewMemory(items []types.FoodItem, meals []types.Meal, diets []types.Diet) *Memory {
	return &Memory{
		items: items,
		meals: meals,
		diets: diets,
	}
}

// ListItems returns every item
func (m *Memory) ListItems() ([]types.FoodItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]types.FoodItem{}, m.items...), nil
}

// LookupItem returns the item named exactly name
func (m *Memory) LookupItem(name string) (*types.FoodItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := indexOf(m.items, name)
	if i < 0 {
		return nil, fmt.Errorf("item %q: %w", name, types.ErrNotFound)
	}
	item := m.items[i]
	return &item, nil
}

// ListMeals returns every meal
func (m *Memory) ListMeals() ([]types.Meal, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]types.Meal{}, m.meals...), nil
}

// LookupMeal resolves a meal by exact name or pattern
func (m *Memory) LookupMeal(pattern string) (*types.Meal, error) {
	if m.err != nil {
		return nil, m.err
	}
	i, err := match(m.meals, pattern)
	if err != nil {
		return nil, err
	}
	meal := m.meals[i]
	return &meal, nil
}

// ListDiets returns every diet
func (m *Memory) ListDiets() ([]types.Diet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]types.Diet{}, m.diets...), nil
}

// LookupDiet returns the diet named exactly name
func (m *Memory) LookupDiet(name string) (*types.Diet, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := indexOf(m.diets, name)
	if i < 0 {
		return nil, fmt.Errorf("diet %q: %w", name, types.ErrNotFound)
	}
	diet := m.diets[i]
	return &diet, nil
}

// SetError sets an error to be returned by every call
func (m *Memory) SetError(err error) {
	m.err = err
}
