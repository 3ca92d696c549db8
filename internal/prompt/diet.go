package prompt

import (
	"strings"

	"github.com/noot-app/nut/internal/types"
)

// AddDiet asks for a diet name, an optional description and its meals.
// It returns nil when no meal was entered.
func (p *Prompter) AddDiet() (*types.Diet, error) {
	p.out.SectionTitle("Add a new diet plan 🥗")

	diet := &types.Diet{
		Name:        p.ask("Diet name: "),
		Description: p.ask("Description (optional): "),
	}

	p.out.Println("\nAdd meals to the diet:")
	diet.Meals = p.newEntries(0)
	if len(diet.Meals) == 0 {
		p.out.Println("No meals added. Diet creation cancelled.")
		return nil, p.err
	}
	return diet, p.err
}

// UpdateDiet lets the user rename diet, change its description and keep, replace or edit its meals
func (p *Prompter) UpdateDiet(diet types.Diet) (types.Diet, error) {
	p.out.SectionTitle("Update diet: " + diet.Name)
	p.out.Println("Press Enter to keep existing values, or type new values to update.")

	updated := types.Diet{
		Name:        p.askDefault("Diet name ["+diet.Name+"]: ", diet.Name),
		Description: p.askDefault("Description ["+diet.Description+"]: ", diet.Description),
	}

	p.out.Printf("\nCurrent meals in diet (%d):\n", len(diet.Meals))
	for i, entry := range diet.Meals {
		p.out.Printf("  %d. %s\n", i+1, describeEntry(entry))
	}

	p.out.Println("\nChoose an option:")
	p.out.Println("1. Keep existing meals and add new ones")
	p.out.Println("2. Replace all meals with new ones")
	p.out.Println("3. Edit existing meals")

	switch p.choice("Choice [1]: ", "1") {
	case "1":
		p.out.Println("\nAdd new meals (press Enter without typing anything to finish):")
		updated.Meals = append(append([]types.DietEntry{}, diet.Meals...), p.newEntries(len(diet.Meals))...)
	case "2":
		p.out.Println("\nAdd new meals (press Enter without typing anything to finish):")
		updated.Meals = p.newEntries(0)
	case "3":
		updated.Meals = p.editEntries(diet.Meals)
	default:
		p.out.Println("Invalid choice, keeping existing meals")
		updated.Meals = diet.Meals
	}

	return updated, p.err
}

func (p *Prompter) newEntries(start int) []types.DietEntry {
	entries := []types.DietEntry{}
	for n := start + 1; ; n++ {
		p.out.Printf("\nMeal %d:\n", n)

		name := p.ask("  Meal name (or press Enter to finish): ")
		if name == "" {
			return entries
		}

		entries = append(entries, types.DietEntry{
			Name: name,
			Day:  p.ask("  Day (optional, e.g., Monday): "),
			Type: p.ask("  Meal type (e.g., breakfast, lunch, dinner): "),
		})
		p.out.Printf("  ✔️ Added meal '%s'\n", name)
	}
}

func (p *Prompter) editEntries(existing []types.DietEntry) []types.DietEntry {
	entries := []types.DietEntry{}
	for i, entry := range existing {
		p.out.Printf("\nMeal %d: %s\n", i+1, describeEntry(entry))
		p.out.Println("Options: [k]eep, [e]dit, [d]elete, [s]kip to finish")

		switch p.choice("Action [k]: ", "k") {
		case "e":
			edited := types.DietEntry{
				Name: p.askDefault("  Meal name ["+entry.Name+"]: ", entry.Name),
				Day:  p.askDefault("  Day ["+entry.Day+"]: ", entry.Day),
				Type: p.askDefault("  Meal type ["+entry.Type+"]: ", entry.Type),
			}
			entries = append(entries, edited)
			p.out.Printf("  ✔️ Updated meal '%s'\n", edited.Name)
		case "d":
			p.out.Printf("  ✗ Deleted meal '%s'\n", entry.Name)
		case "s":
			return append(entries, existing[i:]...)
		default:
			entries = append(entries, entry)
		}
	}
	return entries
}

func describeEntry(entry types.DietEntry) string {
	var details []string
	if entry.Day != "" {
		details = append(details, "Day: "+entry.Day)
	}
	if entry.Type != "" {
		details = append(details, "Type: "+entry.Type)
	}
	if len(details) == 0 {
		return entry.Name
	}
	return entry.Name + " (" + strings.Join(details, ", ") + ")"
}
