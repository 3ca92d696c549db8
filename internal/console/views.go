package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noot-app/nut/internal/nutrition"
	"github.com/noot-app/nut/internal/types"
)

// Item prints the details of a food item
func (p *Printer) Item(item types.FoodItem) {
	p.detail("", "Name", item.Name)
	p.detail("", "Type", item.Type)
	fmt.Fprintf(p.out, "[Nutrition per %s]\n", item.Per)
	p.nutrition(item.Nutrition, "   ", "      ")
}

// Totals prints an accumulated nutrition profile
func (p *Printer) Totals(totals types.NutritionProfile) {
	p.nutrition(totals, "  ", "    ")
}

func (p *Printer) nutrition(n types.NutritionProfile, indent, subIndent string) {
	p.detail(indent, "Energy", FormatWithUnit(n.Energy.Value, n.Energy.Unit))
	p.detail(indent, "Carbohydrates", FormatWithUnit(n.Carbohydrates.Value, n.Carbohydrates.Unit))
	p.detail(subIndent, "Sugar", FormatWithUnit(n.Carbohydrates.Sugar, n.Carbohydrates.Unit))
	p.detail(indent, "Fat", FormatWithUnit(n.Fat.Value, n.Fat.Unit))
	p.detail(subIndent, "Saturated", FormatWithUnit(n.Fat.Saturated, n.Fat.Unit))
	p.detail(subIndent, "Unsaturated", FormatWithUnit(n.Fat.Unsaturated, n.Fat.Unit))
	p.detail(indent, "Protein", FormatWithUnit(n.Protein.Value, n.Protein.Unit))
	p.detail(indent, "Salt", FormatWithUnit(n.Salt.Value, n.Salt.Unit))
}

// Meal prints a meal and its lines
func (p *Printer) Meal(meal types.Meal) {
	p.detail("", "Meal", meal.Name)
	fmt.Fprintf(p.out, "Items (%d)\n", len(meal.Items))
	if len(meal.Items) == 0 {
		fmt.Fprintln(p.out, "  No items in this meal")
		return
	}
	for _, line := range meal.Items {
		fmt.Fprintf(p.out, "  %s %s of %s\n", FormatFloat(line.Quantity), line.Unit, line.Name)
	}
}

// Diet prints a diet and its entries
func (p *Printer) Diet(diet types.Diet) {
	p.detail("", "Diet", diet.Name)
	if diet.Description != "" {
		p.detail("", "Description", diet.Description)
	}
	fmt.Fprintf(p.out, "Meals (%d)\n", len(diet.Meals))
	if len(diet.Meals) == 0 {
		fmt.Fprintln(p.out, "  No meals in this diet")
		return
	}
	for _, entry := range diet.Meals {
		info := entry.Name
		var details []string
		if entry.Day != "" {
			details = append(details, "Day: "+entry.Day)
		}
		if entry.Type != "" {
			details = append(details, "Type: "+entry.Type)
		}
		if len(details) > 0 {
			info += " (" + strings.Join(details, ", ") + ")"
		}
		fmt.Fprintf(p.out, "  %s\n", info)
	}
}

// LookupFailure explains why kind name could not be resolved
func (p *Printer) LookupFailure(kind, name string, err error) {
	var amb *types.AmbiguousError
	switch {
	case errors.As(err, &amb):
		p.Error("Multiple %ss matched with '%s'", kind, name)
		for _, c := range amb.Candidates {
			fmt.Fprintf(p.out, "   - %s\n", c)
		}
	case errors.Is(err, types.ErrNotFound):
		p.Error("%s '%s' not found", capitalize(kind), name)
	default:
		p.Error("%s '%s': %v", capitalize(kind), name, err)
	}
}

// MealResult prints the line by line calculation of a meal followed by its totals
func (p *Printer) MealResult(res *nutrition.MealResult) {
	p.Header(fmt.Sprintf("Calculating total nutrition for '%s'", res.Meal.Name))
	fmt.Fprintf(p.out, "Items in meal: %d\n\n", len(res.Meal.Items))

	for _, lr := range res.Lines {
		quantity := FormatFloat(lr.Line.Quantity)
		if !lr.Found {
			p.Warning("%s %s of %s - NOT FOUND", quantity, lr.Line.Unit, lr.Line.Name)
			continue
		}
		if lr.Reason != "" {
			p.Warning("%s %s of %s - %s", quantity, lr.Line.Unit, lr.Line.Name, lr.Reason)
			continue
		}
		msg := fmt.Sprintf("%s %s of %s (×%s)", quantity, lr.Line.Unit, lr.Line.Name, FormatFloat(lr.Multiplier))
		if !lr.KnownUnit {
			msg += " - unit not recognized"
		}
		p.Success("%s", msg)
	}

	p.Separator()
	p.Header("💯 TOTAL NUTRITION FOR MEAL")
	p.Totals(res.Totals)

	if len(res.Missing) > 0 {
		p.Warning("Missing nutrition data for %d items:", len(res.Missing))
		for _, name := range res.Missing {
			fmt.Fprintf(p.out, "   - %s\n", name)
		}
	}
	p.Separator()

	p.Success("Calculated nutrition for %d items", len(res.Calculated))
}

// DietResult prints every meal of a diet followed by the diet totals.
// With summary set the per meal calculations are left out.
func (p *Printer) DietResult(res *nutrition.DietResult, summary bool) {
	p.Header(fmt.Sprintf("Calculating total nutrition for diet: '%s'", res.Diet.Name))
	if res.Diet.Description != "" {
		fmt.Fprintf(p.out, "Description: %s\n", res.Diet.Description)
	}
	fmt.Fprintf(p.out, "Total meals in diet: %d\n", len(res.Diet.Meals))
	p.Separator()

	for i, er := range res.Entries {
		p.Subheader(entryTitle(i+1, er.Entry))
		if er.Result == nil {
			if !summary {
				p.LookupFailure("meal", er.Entry.Name, er.Err)
			}
			p.Warning("Could not calculate nutrition for meal '%s'", er.Entry.Name)
			continue
		}
		if !summary {
			p.MealResult(er.Result)
		}
	}

	p.Header("🍽️  TOTAL NUTRITION FOR ENTIRE DIET")
	p.Totals(res.Totals)

	p.Separator()
	p.Success("Successfully calculated %d out of %d meals", len(res.Calculated), len(res.Diet.Meals))
	if len(res.Missing) > 0 {
		p.Warning("Could not calculate nutrition for %d meals:", len(res.Missing))
		for _, name := range res.Missing {
			fmt.Fprintf(p.out, "   - %s\n", name)
		}
	}
	p.Separator()
}

func entryTitle(n int, entry types.DietEntry) string {
	title := fmt.Sprintf("Meal %d: %s", n, entry.Name)
	switch {
	case entry.Day != "" && entry.Type != "":
		title += fmt.Sprintf(" (Day: %s, Type: %s)", entry.Day, entry.Type)
	case entry.Day != "":
		title += fmt.Sprintf(" (Day: %s)", entry.Day)
	case entry.Type != "":
		title += fmt.Sprintf(" (Type: %s)", entry.Type)
	}
	return title
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
