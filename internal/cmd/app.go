package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/noot-app/nut/internal/config"
	"github.com/noot-app/nut/internal/console"
	"github.com/noot-app/nut/internal/export"
	"github.com/noot-app/nut/internal/prompt"
	"github.com/noot-app/nut/internal/store"
)

// app carries what every subcommand needs: configuration, logging and terminal I/O
type app struct {
	cfg *config.Config
	log *slog.Logger
	out *console.Printer
	in  io.Reader
}

func newApp(cmd *cobra.Command) *app {
	cfg := config.Load()

	logger := config.NewCLILogger(cmd.ErrOrStderr())
	if cfg.IsDevelopment() {
		logger = config.NewTestLogger(cmd.ErrOrStderr(), "debug")
	}

	return &app{
		cfg: cfg,
		log: logger,
		out: console.NewPrinter(cmd.OutOrStdout()),
		in:  cmd.InOrStdin(),
	}
}

func (a *app) prompter() *prompt.Prompter {
	return prompt.New(a.in, a.out)
}

// settings loads the profile list, explaining how to create one when none exists
func (a *app) settings() (*config.Settings, error) {
	s, err := config.LoadSettings(a.cfg.SettingsPath)
	if errors.Is(err, config.ErrNoSettings) {
		return nil, fmt.Errorf("%w\nUse 'nut config add --name <my-config>' to create one", err)
	}
	return s, err
}

// store opens the record store of the current profile
func (a *app) store() (*store.Store, error) {
	s, err := a.settings()
	if err != nil {
		return nil, err
	}

	profile, err := s.CurrentProfile()
	if errors.Is(err, config.ErrNoCurrent) {
		return nil, fmt.Errorf("%w\nUse 'nut config set --name <my-config>' to set one", err)
	}
	if err != nil {
		return nil, err
	}

	a.log.Debug("Using configuration", "name", profile.Name, "settings", a.cfg.SettingsPath)
	return store.New(profile.Paths(), a.log), nil
}

// export writes a calculation to path with write and reports the outcome
func (a *app) export(ctx context.Context, path string, write func(context.Context, *export.Exporter) error) {
	exporter, err := export.NewExporter(a.log)
	if err != nil {
		a.out.Error("Export failed: %v", err)
		return
	}
	defer exporter.Close()

	if err := write(ctx, exporter); err != nil {
		a.out.Error("Export to %s failed: %v", path, err)
		return
	}
	a.out.Success("Exported calculation to %s", path)
}
