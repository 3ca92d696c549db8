package store

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/noot-app/nut/internal/types"
)

// ErrDuplicate is returned when adding or renaming a record onto a name already in use
var ErrDuplicate = errors.New("name already exists")

// Paths locates the three record files
type Paths struct {
	Items string
	Meals string
	Diets string
}

// Store persists items, meals and diets as YAML lists in flat files
type Store struct {
	paths Paths
	items collection[types.FoodItem]
	meals collection[types.Meal]
	diets collection[types.Diet]
	log   *slog.Logger
}

// New creates a store over the given files. Files are created on first write.
func New(paths Paths, logger *slog.Logger) *Store {
	return &Store{
		paths: paths,
		items: collection[types.FoodItem]{path: paths.Items, kind: "item", log: logger},
		meals: collection[types.Meal]{path: paths.Meals, kind: "meal", log: logger},
		diets: collection[types.Diet]{path: paths.Diets, kind: "diet", log: logger},
		log:   logger,
	}
}

// Paths returns the files backing the store
func (s *Store) Paths() Paths { return s.paths }

// ListItems returns every food item in store order
func (s *Store) ListItems() ([]types.FoodItem, error) {
	return s.items.list()
}

// LookupItem returns the item named exactly name
func (s *Store) LookupItem(name string) (*types.FoodItem, error) {
	return s.items.lookup(name)
}

// FindItem resolves an item by exact name or pattern
func (s *Store) FindItem(pattern string) (*types.FoodItem, error) {
	return s.items.find(pattern)
}

// AddItem appends a new item
func (s *Store) AddItem(item types.FoodItem) error {
	return s.items.add(item)
}

// UpdateItem replaces the item named name
func (s *Store) UpdateItem(name string, item types.FoodItem) error {
	return s.items.update(name, item)
}

// RemoveItem deletes the item named name and returns it
func (s *Store) RemoveItem(name string) (*types.FoodItem, error) {
	return s.items.remove(name)
}

// RemoveAllItems empties the item file
func (s *Store) RemoveAllItems() error {
	return s.items.removeAll()
}

// ListMeals returns every meal in store order
func (s *Store) ListMeals() ([]types.Meal, error) {
	return s.meals.list()
}

// LookupMeal resolves a meal by exact name or pattern
func (s *Store) LookupMeal(pattern string) (*types.Meal, error) {
	return s.meals.find(pattern)
}

// AddMeal appends a new meal
func (s *Store) AddMeal(meal types.Meal) error {
	return s.meals.add(meal)
}

// UpdateMeal replaces the meal named name
func (s *Store) UpdateMeal(name string, meal types.Meal) error {
	return s.meals.update(name, meal)
}

// RemoveMeal deletes the meal named name and returns it
func (s *Store) RemoveMeal(name string) (*types.Meal, error) {
	return s.meals.remove(name)
}

// RemoveAllMeals empties the meal file
func (s *Store) RemoveAllMeals() error {
	return s.meals.removeAll()
}

// ListDiets returns every diet in store order
func (s *Store) ListDiets() ([]types.Diet, error) {
	return s.diets.list()
}

// LookupDiet returns the diet named exactly name
func (s *Store) LookupDiet(name string) (*types.Diet, error) {
	return s.diets.lookup(name)
}

// FindDiet resolves a diet by exact name or pattern
func (s *Store) FindDiet(pattern string) (*types.Diet, error) {
	return s.diets.find(pattern)
}

// AddDiet appends a new diet
func (s *Store) AddDiet(diet types.Diet) error {
	return s.diets.add(diet)
}

// UpdateDiet replaces the diet named name
func (s *Store) UpdateDiet(name string, diet types.Diet) error {
	return s.diets.update(name, diet)
}

// RemoveDiet deletes the diet named name and returns it
func (s *Store) RemoveDiet(name string) (*types.Diet, error) {
	return s.diets.remove(name)
}

// RemoveAllDiets empties the diet file
func (s *Store) RemoveAllDiets() error {
	return s.diets.removeAll()
}

// collection implements the record operations shared by all three files
type collection[T keyed] struct {
	path string
	kind string
	log  *slog.Logger
}

func (c collection[T]) list() ([]T, error) {
	start := time.Now()
	records, err := readRecords[T](c.path)
	if err != nil {
		c.log.Error("Failed to load records", "kind", c.kind, "path", c.path, "error", err)
		return nil, err
	}
	c.log.Debug("Records loaded", "kind", c.kind, "path", c.path, "count", len(records), "duration", time.Since(start))
	return records, nil
}

func (c collection[T]) save(records []T) error {
	start := time.Now()
	if err := writeRecords(c.path, records); err != nil {
		c.log.Error("Failed to save records", "kind", c.kind, "path", c.path, "error", err)
		return err
	}
	c.log.Debug("Records saved", "kind", c.kind, "path", c.path, "count", len(records), "duration", time.Since(start))
	return nil
}

func (c collection[T]) lookup(name string) (*T, error) {
	records, err := c.list()
	if err != nil {
		return nil, err
	}
	i := indexOf(records, name)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", c.kind, name, types.ErrNotFound)
	}
	return &records[i], nil
}

func (c collection[T]) find(pattern string) (*T, error) {
	records, err := c.list()
	if err != nil {
		return nil, err
	}
	i, err := match(records, pattern)
	if errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("%s %q: %w", c.kind, pattern, err)
	}
	if err != nil {
		return nil, err
	}
	return &records[i], nil
}

func (c collection[T]) add(record T) error {
	records, err := c.list()
	if err != nil {
		return err
	}
	if indexOf(records, record.Key()) >= 0 {
		return fmt.Errorf("%s %q: %w", c.kind, record.Key(), ErrDuplicate)
	}
	return c.save(append(records, record))
}

func (c collection[T]) update(name string, record T) error {
	records, err := c.list()
	if err != nil {
		return err
	}
	i := indexOf(records, name)
	if i < 0 {
		return fmt.Errorf("%s %q: %w", c.kind, name, types.ErrNotFound)
	}
	if record.Key() != name && indexOf(records, record.Key()) >= 0 {
		return fmt.Errorf("%s %q: %w", c.kind, record.Key(), ErrDuplicate)
	}
	records[i] = record
	return c.save(records)
}

func (c collection[T]) remove(name string) (*T, error) {
	records, err := c.list()
	if err != nil {
		return nil, err
	}
	i := indexOf(records, name)
	if i < 0 {
		return nil, fmt.Errorf("%s %q: %w", c.kind, name, types.ErrNotFound)
	}
	removed := records[i]
	records = append(records[:i], records[i+1:]...)
	if err := c.save(records); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (c collection[T]) removeAll() error {
	return c.save([]T{})
}
