package prompt

import (
	"fmt"
	"strconv"

	"github.com/noot-app/nut/internal/console"
	"github.com/noot-app/nut/internal/types"
)

// AddMeal asks for a meal name, a portion count and its lines.
// Quantities are divided by the portion count so the meal describes one portion.
// It returns nil when no line was entered.
func (p *Prompter) AddMeal() (*types.Meal, error) {
	p.out.SectionTitle("Add a new meal 🥗")

	name := p.ask("Meal name: ")
	portions := 1
	if answer := p.ask("Number of portions [1]: "); answer != "" {
		n, err := strconv.Atoi(answer)
		if err != nil || n <= 0 {
			p.out.Println("Invalid number of portions, using 1")
		} else {
			portions = n
		}
	}

	p.out.Println("\nAdd items to the meal:")
	lines := p.newLines(0, portions)
	if len(lines) == 0 {
		p.out.Println("No items added. Meal creation cancelled.")
		return nil, p.err
	}

	return &types.Meal{Name: name, Items: lines}, p.err
}

// UpdateMeal lets the user rename meal and keep, replace or edit its lines
func (p *Prompter) UpdateMeal(meal types.Meal) (types.Meal, error) {
	p.out.SectionTitle("Update meal: " + meal.Name)
	p.out.Println("Press Enter to keep existing values, or type new values to update.")

	updated := types.Meal{Name: p.askDefault("Meal name ["+meal.Name+"]: ", meal.Name)}

	p.out.Printf("\nCurrent items in meal (%d):\n", len(meal.Items))
	for i, line := range meal.Items {
		p.out.Printf("  %d. %s\n", i+1, describeLine(line))
	}

	p.out.Println("\nChoose an option:")
	p.out.Println("1. Keep existing items and add new ones")
	p.out.Println("2. Replace all items with new ones")
	p.out.Println("3. Edit existing items")

	switch p.choice("Choice [1]: ", "1") {
	case "1":
		p.out.Println("\nAdd new items (press Enter without typing anything to finish):")
		updated.Items = append(append([]types.MealLine{}, meal.Items...), p.newLines(len(meal.Items), 1)...)
	case "2":
		p.out.Println("\nAdd new items (press Enter without typing anything to finish):")
		updated.Items = p.newLines(0, 1)
	case "3":
		updated.Items = p.editLines(meal.Items)
	default:
		p.out.Println("Invalid choice, keeping existing items")
		updated.Items = meal.Items
	}

	return updated, p.err
}

// newLines reads lines until a blank name, numbering them after start
func (p *Prompter) newLines(start, portions int) []types.MealLine {
	lines := []types.MealLine{}
	for n := start + 1; ; n++ {
		p.out.Printf("\nItem %d:\n", n)

		name := p.ask("  Item name (or press Enter to finish): ")
		if name == "" {
			return lines
		}

		quantity, ok := p.askQuantity("  Quantity: ")
		if ok {
			quantity /= float64(portions)
		}
		unit := p.askDefault("  Unit [g]: ", "g")

		line := types.MealLine{Name: name, Quantity: quantity, Unit: unit}
		lines = append(lines, line)
		p.out.Printf("  ✔️ Added %s\n", describeLine(line))
	}
}

func (p *Prompter) editLines(existing []types.MealLine) []types.MealLine {
	lines := []types.MealLine{}
	for i, line := range existing {
		p.out.Printf("\nItem %d: %s\n", i+1, describeLine(line))
		p.out.Println("Options: [k]eep, [e]dit, [d]elete, [s]kip to finish")

		switch p.choice("Action [k]: ", "k") {
		case "e":
			edited := line
			edited.Name = p.askDefault("  Item name ["+line.Name+"]: ", line.Name)
			if answer := p.ask("  Quantity [" + console.FormatFloat(line.Quantity) + "]: "); answer != "" {
				if v, err := strconv.ParseFloat(answer, 64); err == nil {
					edited.Quantity = v
				} else {
					p.out.Println("  Invalid quantity, keeping existing")
				}
			}
			edited.Unit = p.askDefault("  Unit ["+line.Unit+"]: ", line.Unit)
			lines = append(lines, edited)
			p.out.Printf("  ✔️ Updated to %s\n", describeLine(edited))
		case "d":
			p.out.Printf("  ✗ Deleted %s\n", line.Name)
		case "s":
			return append(lines, existing[i:]...)
		default:
			lines = append(lines, line)
		}
	}
	return lines
}

func describeLine(line types.MealLine) string {
	return fmt.Sprintf("%s %s of %s", console.FormatFloat(line.Quantity), line.Unit, line.Name)
}
