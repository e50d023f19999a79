package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"assettracker/internal/cli"
	"assettracker/internal/commands"
	"assettracker/internal/config"
	"assettracker/internal/currency"
	"assettracker/internal/input"
	"assettracker/internal/logger"
	"assettracker/internal/output"
	"assettracker/internal/storage"
	"assettracker/internal/version"
	"assettracker/pkg/assettypes"
)

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting AssetTracker", "version", version.Version, "db", cfg.DB)

	store, err := storage.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var sh *cli.Shell
	completer := input.NewCompleter(func() []string {
		if sh == nil {
			return nil
		}
		return sh.CommandNames()
	})
	reader, err := input.NewReadline(input.Config{
		HistoryFile:  cfg.HistoryFile,
		AutoComplete: completer,
	})
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	printer, err := newPrinter(cfg, reader.Stdout(), output.SupportsColor())
	if err != nil {
		return err
	}

	sh, err = newShell(cfg, store, reader, printer, time.Now)
	if err != nil {
		return err
	}
	return sh.Run()
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	added, err := store.Seed(time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", cfg.DB, err)
	}

	if added == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already contains data, nothing seeded.\n", cfg.DB)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d assets into %s.\n", added, cfg.DB)
	return nil
}

// newPrinter builds the output sink, styled with the configured theme unless
// plain output was requested or the terminal cannot show colors.
func newPrinter(conf *config.Config, w io.Writer, color bool) (*output.Printer, error) {
	if conf.Plain || !color {
		return output.NewPrinter(output.WithWriter(w), output.PlainText()), nil
	}

	theme, err := output.LoadTheme(conf.Theme)
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(output.WithWriter(w), output.WithStyles(theme)), nil
}

// newShell wires the repositories and menus into a shell positioned at the
// main menu with the welcome message shown.
func newShell(conf *config.Config, store *storage.Store, reader input.LineReader, printer *output.Printer, now func() time.Time) (*cli.Shell, error) {
	sh := cli.NewShell(reader, printer)

	deps := commands.Deps{
		Out:      sh,
		In:       sh,
		Nav:      sh,
		Assets:   store.Assets(),
		Offices:  store.Offices(),
		Prices:   currency.NewConverter(),
		PageSize: conf.PageSize,
		Now:      now,
	}
	if printer.IsStylable() {
		deps.Markdown = printer.RenderMarkdown
	}

	menu, err := commands.New(deps).MainMenu()
	if err != nil {
		return nil, fmt.Errorf("failed to build main menu: %w", err)
	}
	if err := sh.PushContext(menu); err != nil {
		return nil, err
	}

	sh.PutMessage(commands.WelcomeMessage, assettypes.Neutral, true)
	return sh, nil
}
