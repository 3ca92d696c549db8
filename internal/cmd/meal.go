package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/export"
	"github.com/noot-app/nut/internal/nutrition"
)

func newMealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meal",
		Aliases: []string{"meals"},
		Short:   "Manage meals and calculate their nutrition",
	}

	cmd.AddCommand(
		newMealAddCmd(),
		newMealGetCmd(),
		newMealRemoveCmd(),
		newMealUpdateCmd(),
		newMealCalculateCmd(),
	)
	return cmd
}

func newMealAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Add a meal interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			meal, err := a.prompter().AddMeal()
			if err != nil {
				return err
			}
			if meal == nil {
				return nil
			}
			if meal.Name == "" {
				a.out.Error("Meal name cannot be empty")
				return nil
			}

			if err := st.AddMeal(*meal); err != nil {
				a.out.Error("Failed to add meal '%s': %v", meal.Name, err)
				return nil
			}
			a.out.Success("Successfully added '%s' to %s", meal.Name, st.Paths().Meals)
			return nil
		},
	}
}

func newMealGetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Show one meal, or list them all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if name != "" {
				meal, err := st.LookupMeal(name)
				if err != nil {
					a.out.LookupFailure("meal", name, err)
					return nil
				}
				a.out.Meal(*meal)
				return nil
			}

			meals, err := st.ListMeals()
			if err != nil {
				a.out.Error("Failed to read meals: %v", err)
				return nil
			}
			names := make([]string, 0, len(meals))
			for _, meal := range meals {
				names = append(names, meal.Name)
			}
			a.out.Names("meal", names)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "meal name or pattern")
	return cmd
}

func newMealRemoveCmd() *cobra.Command {
	var (
		name string
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a meal, or all of them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if all {
				if err := st.RemoveAllMeals(); err != nil {
					a.out.Error("Failed to remove meals: %v", err)
					return nil
				}
				a.out.Success("Removed all meals from %s", st.Paths().Meals)
				return nil
			}

			if _, err := st.RemoveMeal(name); err != nil {
				a.out.LookupFailure("meal", name, err)
				return nil
			}
			a.out.Success("Successfully removed '%s' from %s", name, st.Paths().Meals)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "exact meal name")
	cmd.Flags().BoolVar(&all, "all", false, "remove every meal")
	cmd.MarkFlagsMutuallyExclusive("name", "all")
	cmd.MarkFlagsOneRequired("name", "all")
	return cmd
}

func newMealUpdateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"edit"},
		Short:   "Update a meal interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			meal, err := st.LookupMeal(name)
			if err != nil {
				a.out.LookupFailure("meal", name, err)
				return nil
			}

			updated, err := a.prompter().UpdateMeal(*meal)
			if err != nil {
				return err
			}

			if err := st.UpdateMeal(meal.Name, updated); err != nil {
				a.out.Error("Failed to update meal '%s': %v", meal.Name, err)
				return nil
			}
			a.out.Success("Successfully updated '%s' in %s", updated.Name, st.Paths().Meals)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "meal name or pattern")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newMealCalculateCmd() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:     "calculate <pattern>",
		Aliases: []string{"calc"},
		Short:   "Calculate the total nutrition of a meal",
		Long: `Calculate the total nutrition of a meal.

The pattern is either an exact meal name or a case-insensitive regular
expression that must match exactly one meal. Items of the meal that are not
known are reported as missing and left out of the totals.

With --export the calculated lines are also written to a .csv or .parquet file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			res, err := nutrition.NewCalculator(st, a.log).CalculateMeal(args[0])
			if err != nil {
				a.out.LookupFailure("meal", args[0], err)
				return nil
			}
			a.out.MealResult(res)

			if exportPath != "" {
				a.export(cmd.Context(), exportPath, func(ctx context.Context, e *export.Exporter) error {
					return e.WriteMeal(ctx, res, exportPath)
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "also write the calculation to a .csv or .parquet file")
	return cmd
}
