package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/noot-app/nut/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configurations (sets of item, meal and diet files)",
		Long: `Manage configurations.

A configuration names the item, meal and diet files commands work on. New
configurations keep their files in <NUTRITION_DATA_DIR>/<name>-data. The list of
configurations and the current one are stored in the settings file
(NUTRITION_CONFIG, default ~/.nutcfg.yaml).`,
	}

	cmd.AddCommand(
		newConfigAddCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigRemoveCmd(),
	)
	return cmd
}

func newConfigAddCmd() *cobra.Command {
	var (
		name       string
		setCurrent bool
	)

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Create a configuration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)

			settings, err := config.LoadSettings(a.cfg.SettingsPath)
			if errors.Is(err, config.ErrNoSettings) {
				a.out.Info("No existing configuration file found, creating a new one.")
				settings = &config.Settings{}
			} else if err != nil {
				return err
			}

			profile, err := config.NewProfile(name, a.cfg.DataDir)
			if err != nil {
				return err
			}
			if err := settings.Add(profile, setCurrent); err != nil {
				return err
			}
			if err := settings.Save(a.cfg.SettingsPath); err != nil {
				return err
			}

			a.log.Debug("Configuration created", "name", name, "items", profile.Item, "meals", profile.Meal, "diets", profile.Diet)
			a.out.Success("Created configuration '%s' with data in %s", name, filepath.Dir(profile.Item))
			if setCurrent {
				a.out.Success("Configuration set to: %s", name)
			}
			a.out.Success("Settings saved in: %s", a.cfg.SettingsPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "configuration name")
	cmd.Flags().BoolVarP(&setCurrent, "set-current", "s", false, "make the new configuration the current one")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newConfigGetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show"},
		Short:   "Show the current configuration",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			settings, err := a.settings()
			if err != nil {
				return err
			}

			profile, err := settings.CurrentProfile()
			if err != nil {
				a.out.Error("%v", err)
				a.out.Names("configuration", settings.Names())
				return fmt.Errorf("%w\nUse 'nut config set --name <my-config>' to set one", err)
			}

			a.out.Printf("Current config: '%s'\n", profile.Name)
			a.out.Separator()
			if err := printYAML(a, profile); err != nil {
				return err
			}
			a.out.Separator()

			if all {
				a.out.Println("\nAll configurations:")
				if err := printYAML(a, settings); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "also show every configuration")
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Select the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			settings, err := a.settings()
			if err != nil {
				return err
			}

			if err := settings.SetCurrent(name); err != nil {
				a.out.Names("configuration", settings.Names())
				return err
			}
			if err := settings.Save(a.cfg.SettingsPath); err != nil {
				return err
			}

			a.out.Success("Configuration set to: %s", name)
			a.out.Success("Settings saved in: %s", a.cfg.SettingsPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "configuration name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newConfigRemoveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a configuration (its data files are kept)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cmd)
			settings, err := a.settings()
			if err != nil {
				return err
			}

			wasCurrent, err := settings.Remove(name)
			if err != nil {
				a.out.Names("configuration", settings.Names())
				return err
			}
			if err := settings.Save(a.cfg.SettingsPath); err != nil {
				return err
			}

			if wasCurrent {
				a.out.Warning("Removed the current configuration '%s'. No configuration is set now.", name)
				a.out.Names("configuration", settings.Names())
			}
			a.out.Success("Successfully removed configuration '%s' from %s", name, a.cfg.SettingsPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "configuration name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func printYAML(a *app, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	a.out.Printf("%s", data)
	return nil
}
