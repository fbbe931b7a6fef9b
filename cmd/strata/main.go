package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/strata/internal/cli"
	"github.com/alexanderramin/strata/internal/config"
	"github.com/alexanderramin/strata/internal/db"
	"github.com/alexanderramin/strata/internal/service"
	"github.com/alexanderramin/strata/internal/store"
	"github.com/mattn/go-isatty"
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
		return fmt.Errorf("loading config: %w", err)
	}

	// Wire the store for the configured backend.
	var uow store.UnitOfWork
	switch cfg.Backend {
	case config.BackendMemory:
		uow = store.NewMemoryUnitOfWork(store.NewMemoryBackend())
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		uow = store.NewSQLiteUnitOfWork(db.NewSQLiteUnitOfWork(database))
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Goals:      service.NewGoalService(uow, observer),
		Objectives: service.NewObjectiveService(uow, observer),
		Cascade:    service.NewCascadeService(uow, observer),
		Hierarchy:  service.NewHierarchyService(uow),
		Strategy:   service.NewStrategyService(uow, observer),
		Users:      service.NewUserService(uow),
		Import:     service.NewImportService(uow, observer),
		Scope:      cfg.Scope(),
	}

	// Prompts only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
