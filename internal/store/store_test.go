package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noot-app/nut/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(Paths{
		Items: filepath.Join(dir, "items.yaml"),
		Meals: filepath.Join(dir, "meals.yaml"),
		Diets: filepath.Join(dir, "diets.yaml"),
	}, logger)
}

func oats() types.FoodItem {
	return types.FoodItem{
		Name: "Oats",
		Type: "grain",
		Per:  "100g",
		Nutrition: types.NutritionProfile{
			Energy:        types.Nutrient{Value: types.Float(379), Unit: "kcal"},
			Carbohydrates: types.Carbohydrates{Value: types.Float(67.7), Unit: "g"},
			Fat:           types.Fat{Value: types.Float(6.5), Unit: "g", Saturated: types.Float(1.1)},
			Protein:       types.Nutrient{Value: types.Float(13.2), Unit: "g"},
			Salt:          types.Nutrient{Unit: "g"},
		},
	}
}

func TestStore_MissingFilesAreEmpty(t *testing.T) {
	s := newTestStore(t)

	items, err := s.ListItems()
	require.NoError(t, err)
	assert.Empty(t, items)

	meals, err := s.ListMeals()
	require.NoError(t, err)
	assert.Empty(t, meals)

	diets, err := s.ListDiets()
	require.NoError(t, err)
	assert.Empty(t, diets)
}

func TestStore_EmptyDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Paths().Items, []byte("\n"), 0644))

	items, err := s.ListItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_InvalidDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Paths().Meals, []byte("name: [unclosed"), 0644))

	_, err := s.ListMeals()
	assert.Error(t, err)
}

func TestStore_Items(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddItem(oats()))
	require.NoError(t, s.AddItem(types.FoodItem{Name: "Milk", Per: "100g"}))

	t.Run("round trip keeps unknown values", func(t *testing.T) {
		item, err := s.LookupItem("Oats")
		require.NoError(t, err)
		assert.Equal(t, oats(), *item)
		assert.Nil(t, item.Nutrition.Salt.Value)
		assert.Nil(t, item.Nutrition.Carbohydrates.Sugar)
	})

	t.Run("file is a yaml list", func(t *testing.T) {
		data, err := os.ReadFile(s.Paths().Items)
		require.NoError(t, err)
		assert.Contains(t, string(data), "- name: Oats")
		assert.Contains(t, string(data), "sugar: null")
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		err := s.AddItem(oats())
		assert.ErrorIs(t, err, ErrDuplicate)

		items, err := s.ListItems()
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("find by pattern", func(t *testing.T) {
		item, err := s.FindItem("^mi")
		require.NoError(t, err)
		assert.Equal(t, "Milk", item.Name)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		_, err := s.LookupItem("oats")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("update in place", func(t *testing.T) {
		updated := oats()
		updated.Nutrition.Salt.Value = types.Float(0.01)
		require.NoError(t, s.UpdateItem("Oats", updated))

		items, err := s.ListItems()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Oats", items[0].Name)
		assert.Equal(t, 0.01, *items[0].Nutrition.Salt.Value)
	})

	t.Run("rename onto existing name is rejected", func(t *testing.T) {
		renamed := oats()
		renamed.Name = "Milk"
		assert.ErrorIs(t, s.UpdateItem("Oats", renamed), ErrDuplicate)
	})

	t.Run("update unknown", func(t *testing.T) {
		assert.ErrorIs(t, s.UpdateItem("Bread", oats()), types.ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		removed, err := s.RemoveItem("Milk")
		require.NoError(t, err)
		assert.Equal(t, "Milk", removed.Name)

		_, err = s.RemoveItem("Milk")
		assert.ErrorIs(t, err, types.ErrNotFound)

		items, err := s.ListItems()
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("remove all", func(t *testing.T) {
		require.NoError(t, s.RemoveAllItems())

		items, err := s.ListItems()
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestStore_Meals(t *testing.T) {
	s := newTestStore(t)

	breakfast := types.Meal{Name: "Breakfast", Items: []types.MealLine{
		{Name: "Oats", Quantity: 50, Unit: "g"},
		{Name: "Milk", Quantity: 0.2, Unit: "kg"},
	}}
	require.NoError(t, s.AddMeal(breakfast))
	require.NoError(t, s.AddMeal(types.Meal{Name: "Second Breakfast", Items: []types.MealLine{}}))
	require.NoError(t, s.AddMeal(types.Meal{Name: "Dinner", Items: []types.MealLine{}}))

	t.Run("exact name wins over pattern", func(t *testing.T) {
		meal, err := s.LookupMeal("Breakfast")
		require.NoError(t, err)
		assert.Equal(t, breakfast, *meal)
	})

	t.Run("ambiguous pattern lists candidates", func(t *testing.T) {
		_, err := s.LookupMeal("breakfast")
		var amb *types.AmbiguousError
		require.ErrorAs(t, err, &amb)
		assert.Equal(t, []string{"Breakfast", "Second Breakfast"}, amb.Candidates)
	})

	t.Run("invalid regex falls back to substring", func(t *testing.T) {
		require.NoError(t, s.AddMeal(types.Meal{Name: "Snack (late)", Items: []types.MealLine{}}))

		meal, err := s.LookupMeal("(late")
		require.NoError(t, err)
		assert.Equal(t, "Snack (late)", meal.Name)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := s.LookupMeal("lunch")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("update and remove", func(t *testing.T) {
		renamed := breakfast
		renamed.Name = "First Breakfast"
		require.NoError(t, s.UpdateMeal("Breakfast", renamed))

		_, err := s.LookupMeal("First Breakfast")
		require.NoError(t, err)

		_, err = s.RemoveMeal("First Breakfast")
		require.NoError(t, err)

		meals, err := s.ListMeals()
		require.NoError(t, err)
		assert.Len(t, meals, 3)

		require.NoError(t, s.RemoveAllMeals())
		meals, err = s.ListMeals()
		require.NoError(t, err)
		assert.Empty(t, meals)
	})
}

func TestStore_Diets(t *testing.T) {
	s := newTestStore(t)

	week := types.Diet{
		Name:        "Week",
		Description: "weekday plan",
		Meals: []types.DietEntry{
			{Name: "Breakfast", Day: "Monday", Type: "breakfast"},
			{Name: "Dinner"},
		},
	}
	require.NoError(t, s.AddDiet(week))
	require.NoError(t, s.AddDiet(types.Diet{Name: "Weekend", Meals: []types.DietEntry{}}))

	diet, err := s.LookupDiet("Week")
	require.NoError(t, err)
	assert.Equal(t, week, *diet)

	data, err := os.ReadFile(s.Paths().Diets)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "day: \"\"")

	_, err = s.FindDiet("week")
	var amb *types.AmbiguousError
	assert.ErrorAs(t, err, &amb)

	found, err := s.FindDiet("end$")
	require.NoError(t, err)
	assert.Equal(t, "Weekend", found.Name)

	assert.ErrorIs(t, s.AddDiet(week), ErrDuplicate)

	week.Description = ""
	require.NoError(t, s.UpdateDiet("Week", week))
	diet, err = s.LookupDiet("Week")
	require.NoError(t, err)
	assert.Empty(t, diet.Description)

	_, err = s.RemoveDiet("Weekend")
	require.NoError(t, err)
	require.NoError(t, s.RemoveAllDiets())
	diets, err := s.ListDiets()
	require.NoError(t, err)
	assert.Empty(t, diets)
}

func TestStore_NoTempFilesLeft(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddItem(oats()))
	require.NoError(t, s.AddItem(types.FoodItem{Name: "Milk"}))

	entries, err := os.ReadDir(filepath.Dir(s.Paths().Items))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.yaml", entries[0].Name())
}

func TestStore_CreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "profile-data")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(Paths{
		Items: filepath.Join(dir, "items.yaml"),
		Meals: filepath.Join(dir, "meals.yaml"),
		Diets: filepath.Join(dir, "diets.yaml"),
	}, logger)

	require.NoError(t, s.AddMeal(types.Meal{Name: "Lunch", Items: []types.MealLine{}}))
	assert.FileExists(t, filepath.Join(dir, "meals.yaml"))
}

func TestMemory(t *testing.T) {
	mem := NewMemory(
		[]types.FoodItem{oats()},
		[]types.Meal{{Name: "Lunch"}, {Name: "Late Lunch"}},
		[]types.Diet{{Name: "Week"}},
	)

	_, err := mem.LookupItem("Oats")
	require.NoError(t, err)

	_, err = mem.LookupMeal("lunch")
	var amb *types.AmbiguousError
	assert.ErrorAs(t, err, &amb)

	meal, err := mem.LookupMeal("Lunch")
	require.NoError(t, err)
	assert.Equal(t, "Lunch", meal.Name)

	_, err = mem.LookupDiet("Month")
	assert.ErrorIs(t, err, types.ErrNotFound)

	mem.SetError(os.ErrPermission)
	_, err = mem.ListItems()
	assert.ErrorIs(t, err, os.ErrPermission)
}
