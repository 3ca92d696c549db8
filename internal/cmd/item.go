package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/types"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage food items",
	}

	cmd.AddCommand(
		newItemAddCmd(),
		newItemGetCmd(),
		newItemRemoveCmd(),
		newItemUpdateCmd(),
	)
	return cmd
}

func newItemAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Add a food item interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			item, err := a.prompter().AddItem()
			if err != nil {
				return err
			}
			if item.Name == "" {
				a.out.Error("Item name cannot be empty")
				return nil
			}

			if err := st.AddItem(item); err != nil {
				a.out.Error("Failed to add item '%s': %v", item.Name, err)
				return nil
			}
			a.out.Success("Successfully added '%s' to %s", item.Name, st.Paths().Items)
			return nil
		},
	}
}

func newItemGetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Show one food item, or list them all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if name != "" {
				item, err := st.FindItem(name)
				if err != nil {
					a.out.LookupFailure("item", name, err)
					return nil
				}
				a.out.Item(*item)
				return nil
			}

			items, err := st.ListItems()
			if err != nil {
				a.out.Error("Failed to read items: %v", err)
				return nil
			}
			a.out.Names("item", itemNames(items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "item name or pattern")
	return cmd
}

func newItemRemoveCmd() *cobra.Command {
	var (
		name string
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a food item, or all of them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if all {
				if err := st.RemoveAllItems(); err != nil {
					a.out.Error("Failed to remove items: %v", err)
					return nil
				}
				a.out.Success("Removed all items from %s", st.Paths().Items)
				return nil
			}

			if _, err := st.RemoveItem(name); err != nil {
				a.out.LookupFailure("item", name, err)
				return nil
			}
			a.out.Success("Successfully removed '%s' from %s", name, st.Paths().Items)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "exact item name")
	cmd.Flags().BoolVar(&all, "all", false, "remove every item")
	cmd.MarkFlagsMutuallyExclusive("name", "all")
	cmd.MarkFlagsOneRequired("name", "all")
	return cmd
}

func newItemUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "update <pattern>",
		Aliases: []string{"edit"},
		Short:   "Update a food item interactively",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			item, err := st.FindItem(args[0])
			if err != nil {
				a.out.LookupFailure("item", args[0], err)
				return nil
			}

			updated, err := a.prompter().UpdateItem(*item)
			if err != nil {
				return err
			}

			if err := st.UpdateItem(item.Name, updated); err != nil {
				a.out.Error("Failed to update item '%s': %v", item.Name, err)
				return nil
			}
			a.out.Success("Successfully updated '%s' in %s", updated.Name, st.Paths().Items)
			return nil
		},
	}
}

func itemNames(items []types.FoodItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
