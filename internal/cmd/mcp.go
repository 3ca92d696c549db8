package cmd

import (
	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/config"
	"github.com/noot-app/nut/internal/mcpgo"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the nutrition calculator as MCP tools over stdio",
		Long: `Serve the nutrition calculator as MCP tools over stdio.

Tools read the files of the current configuration: list_items, calculate_meal
and calculate_diet. Logs go to stderr since stdout carries the protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			// stdout carries JSON-RPC, so logging moves to stderr at the configured level
			a.log = config.NewLogger(true)

			st, err := a.store()
			if err != nil {
				return err
			}

			a.log.Info("Starting nut MCP server", "items", st.Paths().Items, "meals", st.Paths().Meals, "diets", st.Paths().Diets)
			return mcpgo.NewServer(st, a.log).ServeStdio()
		},
	}
}
