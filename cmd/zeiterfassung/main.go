package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/mlanger/zeiterfassung/internal/cli"
	"github.com/mlanger/zeiterfassung/internal/config"
	"github.com/mlanger/zeiterfassung/internal/ledger"
	"github.com/mlanger/zeiterfassung/internal/service"
	"github.com/mlanger/zeiterfassung/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           parseLogLevel(cfg.LogLevel),
	})

	// Select the persistence backend.
	var backend storage.Backend
	switch cfg.Backend {
	case config.BackendSQLite:
		sqlite, err := storage.OpenSQLiteBackend(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening sqlite backend: %w", err)
		}
		defer sqlite.Close()
		backend = sqlite
	default:
		file, err := storage.NewFileBackend(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening file backend: %w", err)
		}
		backend = file
	}

	store := storage.NewStore(backend, logger)
	led := ledger.New(store)

	app := &cli.App{
		Ledger: led,
		Import: service.NewImportService(led, logger),
		Export: service.NewExportService(led, cfg.Timezone),
		Report: service.NewReportService(led, cfg.Timezone),
		Loc:    cfg.Timezone,
	}

	// Prompts only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func parseLogLevel(s string) log.Level {
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
