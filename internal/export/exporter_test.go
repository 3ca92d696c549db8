package export

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noot-app/nut/internal/nutrition"
	"github.com/noot-app/nut/internal/store"
	"github.com/noot-app/nut/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testCalculator() *nutrition.Calculator {
	items := []types.FoodItem{
		{Name: "Oats", Per: "100g", Nutrition: types.NutritionProfile{
			Energy:  types.Nutrient{Value: types.Float(200), Unit: "kcal"},
			Protein: types.Nutrient{Value: types.Float(10), Unit: "g"},
		}},
		{Name: "Apple", Per: "1 piece", Nutrition: types.NutritionProfile{
			Energy: types.Nutrient{Value: types.Float(50), Unit: "kcal"},
		}},
	}
	meals := []types.Meal{
		{Name: "Porridge", Items: []types.MealLine{
			{Name: "Oats", Quantity: 150, Unit: "g"},
			{Name: "Honey", Quantity: 10, Unit: "g"},
		}},
		{Name: "Snack", Items: []types.MealLine{
			{Name: "Apple", Quantity: 2, Unit: "whole"},
		}},
	}
	diets := []types.Diet{
		{Name: "Day", Meals: []types.DietEntry{
			{Name: "Porridge", Day: "Monday", Type: "breakfast"},
			{Name: "Snack", Day: "Monday"},
			{Name: "Pizza"},
		}},
	}
	return nutrition.NewCalculator(store.NewMemory(items, meals, diets), testLogger())
}

func TestExporter_WriteMealCSV(t *testing.T) {
	exporter, err := NewExporter(testLogger())
	require.NoError(t, err)
	defer exporter.Close()

	res, err := testCalculator().CalculateMeal("Porridge")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "porridge.csv")
	require.NoError(t, exporter.WriteMeal(context.Background(), res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "meal,day,meal_type,item,quantity,unit,multiplier,energy"))
	assert.Contains(t, lines[1], "Porridge")
	assert.Contains(t, lines[1], "Oats")
	assert.NotContains(t, string(data), "Honey")
}

func TestExporter_WriteDietParquet(t *testing.T) {
	exporter, err := NewExporter(testLogger())
	require.NoError(t, err)
	defer exporter.Close()

	res, err := testCalculator().CalculateDiet("Day")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "it's a day.parquet")
	ctx := context.Background()
	require.NoError(t, exporter.WriteDiet(ctx, res, path))

	var count int
	var energy float64
	var protein sql.NullFloat64
	err = exporter.db.QueryRowContext(ctx,
		`SELECT count(*), sum(energy), max(protein) FROM read_parquet(?)`, path).Scan(&count, &energy, &protein)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.InDelta(t, 300+100, energy, 1e-9)
	require.True(t, protein.Valid)
	assert.InDelta(t, 15, protein.Float64, 1e-9)

	var nullProtein int
	err = exporter.db.QueryRowContext(ctx,
		`SELECT count(*) FROM read_parquet(?) WHERE protein IS NULL AND day = 'Monday' AND item = 'Apple'`, path).Scan(&nullProtein)
	require.NoError(t, err)
	assert.Equal(t, 1, nullProtein)
}

func TestExporter_WriteTwice(t *testing.T) {
	exporter, err := NewExporter(testLogger())
	require.NoError(t, err)
	defer exporter.Close()

	res, err := testCalculator().CalculateMeal("Snack")
	require.NoError(t, err)

	dir := t.TempDir()
	ctx := context.Background()
	require.NoError(t, exporter.WriteMeal(ctx, res, filepath.Join(dir, "a.csv")))
	require.NoError(t, exporter.WriteMeal(ctx, res, filepath.Join(dir, "b.csv")))
	assert.FileExists(t, filepath.Join(dir, "b.csv"))
}

func TestExporter_UnsupportedFormat(t *testing.T) {
	exporter, err := NewExporter(testLogger())
	require.NoError(t, err)
	defer exporter.Close()

	res, err := testCalculator().CalculateMeal("Porridge")
	require.NoError(t, err)

	err = exporter.WriteMeal(context.Background(), res, filepath.Join(t.TempDir(), "out.xlsx"))
	assert.ErrorContains(t, err, "unsupported export format")
}

func TestDietRows(t *testing.T) {
	res, err := testCalculator().CalculateDiet("Day")
	require.NoError(t, err)

	rows := DietRows(res)
	require.Len(t, rows, 2)
	assert.Equal(t, "Porridge", rows[0].Meal)
	assert.Equal(t, "breakfast", rows[0].Type)
	assert.Equal(t, "Snack", rows[1].Meal)
	assert.Equal(t, "Monday", rows[1].Day)
	assert.InDelta(t, 2, rows[1].Multiplier, 1e-9)
}

func TestMealRows_SkipsUncalculatedLines(t *testing.T) {
	res := &nutrition.MealResult{
		Meal: types.Meal{Name: "Snack"},
		Lines: []nutrition.LineResult{
			{Line: types.MealLine{Name: "Apple", Quantity: 1, Unit: "piece"}, Found: true, KnownUnit: true, Multiplier: 1},
			{Line: types.MealLine{Name: "Chips", Quantity: 30, Unit: "g"}, Found: true, KnownUnit: true, Reason: "cannot be scaled"},
			{Line: types.MealLine{Name: "Honey", Quantity: 10, Unit: "g"}},
		},
	}

	rows := MealRows(res, types.DietEntry{Name: "Snack", Day: "Monday"})
	require.Len(t, rows, 1)
	assert.Equal(t, "Apple", rows[0].Line.Name)
	assert.Equal(t, "Monday", rows[0].Day)
}
