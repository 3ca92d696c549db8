package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/export"
	"github.com/noot-app/nut/internal/nutrition"
)

func newDietCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diet",
		Aliases: []string{"diets"},
		Short:   "Manage diet plans and calculate their nutrition",
	}

	cmd.AddCommand(
		newDietAddCmd(),
		newDietGetCmd(),
		newDietRemoveCmd(),
		newDietUpdateCmd(),
		newDietCalculateCmd(),
	)
	return cmd
}

func newDietAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Add a diet plan interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			diet, err := a.prompter().AddDiet()
			if err != nil {
				return err
			}
			if diet == nil {
				return nil
			}
			if diet.Name == "" {
				a.out.Error("Diet name cannot be empty")
				return nil
			}

			if err := st.AddDiet(*diet); err != nil {
				a.out.Error("Failed to add diet '%s': %v", diet.Name, err)
				return nil
			}
			a.out.Success("Successfully added '%s' to %s", diet.Name, st.Paths().Diets)
			return nil
		},
	}
}

func newDietGetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Show one diet plan, or list them all",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if name != "" {
				diet, err := st.FindDiet(name)
				if err != nil {
					a.out.LookupFailure("diet", name, err)
					return nil
				}
				a.out.Diet(*diet)
				return nil
			}

			diets, err := st.ListDiets()
			if err != nil {
				a.out.Error("Failed to read diets: %v", err)
				return nil
			}
			names := make([]string, 0, len(diets))
			for _, diet := range diets {
				names = append(names, diet.Name)
			}
			a.out.Names("diet", names)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "diet name or pattern")
	return cmd
}

func newDietRemoveCmd() *cobra.Command {
	var (
		name string
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a diet plan, or all of them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			if all {
				if err := st.RemoveAllDiets(); err != nil {
					a.out.Error("Failed to remove diets: %v", err)
					return nil
				}
				a.out.Success("Removed all diets from %s", st.Paths().Diets)
				return nil
			}

			if _, err := st.RemoveDiet(name); err != nil {
				a.out.LookupFailure("diet", name, err)
				return nil
			}
			a.out.Success("Successfully removed '%s' from %s", name, st.Paths().Diets)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "exact diet name")
	cmd.Flags().BoolVar(&all, "all", false, "remove every diet")
	cmd.MarkFlagsMutuallyExclusive("name", "all")
	cmd.MarkFlagsOneRequired("name", "all")
	return cmd
}

func newDietUpdateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"edit"},
		Short:   "Update a diet plan interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			diet, err := st.FindDiet(name)
			if err != nil {
				a.out.LookupFailure("diet", name, err)
				return nil
			}

			updated, err := a.prompter().UpdateDiet(*diet)
			if err != nil {
				return err
			}

			if err := st.UpdateDiet(diet.Name, updated); err != nil {
				a.out.Error("Failed to update diet '%s': %v", diet.Name, err)
				return nil
			}
			a.out.Success("Successfully updated '%s' in %s", updated.Name, st.Paths().Diets)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "diet name or pattern")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDietCalculateCmd() *cobra.Command {
	var (
		name       string
		summary    bool
		exportPath string
	)

	cmd := &cobra.Command{
		Use:     "calculate",
		Aliases: []string{"calc"},
		Short:   "Calculate the total nutrition of a diet plan",
		Long: `Calculate the total nutrition of a diet plan by summing its meals.

Meals of the plan are resolved like 'nut meal calculate' patterns. Meals that
cannot be resolved are reported and left out of the totals.

With --summary only the plan totals are printed. With --export the calculated
lines of every meal are also written to a .csv or .parquet file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			st, err := a.store()
			if err != nil {
				return err
			}

			res, err := nutrition.NewCalculator(st, a.log).CalculateDiet(name)
			if err != nil {
				a.out.LookupFailure("diet", name, err)
				return nil
			}
			a.out.DietResult(res, summary)

			if exportPath != "" {
				a.export(cmd.Context(), exportPath, func(ctx context.Context, e *export.Exporter) error {
					return e.WriteDiet(ctx, res, exportPath)
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "exact diet name")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "only print the diet totals")
	cmd.Flags().StringVar(&exportPath, "export", "", "also write the calculation to a .csv or .parquet file")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
