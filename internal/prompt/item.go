package prompt

import (
	"github.com/noot-app/nut/internal/types"
)

// AddItem asks for every field of a new food item
func (p *Prompter) AddItem() (types.FoodItem, error) {
	p.out.SectionTitle("Add a new nutrition item")

	var item types.FoodItem
	item.Name = p.ask("Item name: ")
	item.Type = p.ask("Item type (e.g., Bread, Fruit, Vegetable): ")
	item.Per = p.askDefault("Values are per (e.g., 100g, 1 piece) [100g]: ", "100g")

	p.out.SectionTitle("Nutrition information (per " + item.Per + "):")

	n := &item.Nutrition
	n.Energy.Value = p.askValue("Energy: ")
	n.Energy.Unit = p.askDefault("  Unit [kcal]: ", "kcal")

	n.Carbohydrates.Value = p.askValue("Carbohydrates: ")
	n.Carbohydrates.Unit = p.askDefault("  Unit [g]: ", "g")
	n.Carbohydrates.Sugar = p.askValue("  Sugar: ")

	n.Fat.Value = p.askValue("Fat: ")
	n.Fat.Unit = p.askDefault("  Unit [g]: ", "g")
	n.Fat.Saturated = p.askValue("  Saturated: ")
	n.Fat.Unsaturated = p.askValue("  Unsaturated: ")

	n.Protein.Value = p.askValue("Protein: ")
	n.Protein.Unit = p.askDefault("  Unit [g]: ", "g")

	n.Salt.Value = p.askValue("Salt: ")
	n.Salt.Unit = p.askDefault("  Unit [g]: ", "g")

	return item, p.err
}

// UpdateItem asks for every field of item, offering the current values as defaults
func (p *Prompter) UpdateItem(item types.FoodItem) (types.FoodItem, error) {
	p.out.SectionTitle("Update nutrition item: " + item.Name)
	p.out.Println("Press Enter to keep existing values, or type new values to update.")

	updated := item
	updated.Name = p.askDefault("Item name ["+item.Name+"]: ", item.Name)
	updated.Type = p.askDefault("Item type ["+item.Type+"]: ", item.Type)
	updated.Per = p.askDefault("Values are per ["+item.Per+"]: ", item.Per)

	p.out.SectionTitle("Nutrition information (per " + updated.Per + ")")

	cur := item.Nutrition
	n := &updated.Nutrition
	n.Energy.Value = p.updateValue("Energy", cur.Energy.Value)
	n.Energy.Unit = p.askDefault("  Unit ["+cur.Energy.Unit+"]: ", cur.Energy.Unit)

	n.Carbohydrates.Value = p.updateValue("Carbohydrates", cur.Carbohydrates.Value)
	n.Carbohydrates.Unit = p.askDefault("  Unit ["+cur.Carbohydrates.Unit+"]: ", cur.Carbohydrates.Unit)
	n.Carbohydrates.Sugar = p.updateValue("  Sugar", cur.Carbohydrates.Sugar)

	n.Fat.Value = p.updateValue("Fat", cur.Fat.Value)
	n.Fat.Unit = p.askDefault("  Unit ["+cur.Fat.Unit+"]: ", cur.Fat.Unit)
	n.Fat.Saturated = p.updateValue("  Saturated", cur.Fat.Saturated)
	n.Fat.Unsaturated = p.updateValue("  Unsaturated", cur.Fat.Unsaturated)

	n.Protein.Value = p.updateValue("Protein", cur.Protein.Value)
	n.Protein.Unit = p.askDefault("  Unit ["+cur.Protein.Unit+"]: ", cur.Protein.Unit)

	n.Salt.Value = p.updateValue("Salt", cur.Salt.Value)
	n.Salt.Unit = p.askDefault("  Unit ["+cur.Salt.Unit+"]: ", cur.Salt.Unit)

	return updated, p.err
}
