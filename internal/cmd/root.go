package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/version"
)

// NewRootCmd builds the command tree. Commands read from and write to the
// streams configured on the returned command (stdin/stdout by default).
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nut",
		Short: "Nutrition tracker for food items, meals and diet plans",
		Long: `nut keeps food items, meals and diet plans in YAML files and calculates
their nutrition.

Food items declare their nutrition per a serving such as "100g" or "1 piece".
Meals list items with consumed quantities, and diet plans list meals. Meal and
diet calculations scale every item to the consumed quantity and sum the results.

Records live in the files of the current configuration. Create one with
'nut config add --name <my-config> --set-current'. The settings file defaults to
~/.nutcfg.yaml and can be moved with NUTRITION_CONFIG.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newItemCmd(),
		newMealCmd(),
		newDietCmd(),
		newConfigCmd(),
		newMCPCmd(),
	)

	return root
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// Run is the main entry point for the CLI application
func Run() error {
	return Execute()
}
