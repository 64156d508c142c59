package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/quotabank/internal/cli"
	"github.com/alexanderramin/quotabank/internal/clock"
	"github.com/alexanderramin/quotabank/internal/db"
	"github.com/alexanderramin/quotabank/internal/repository"
	"github.com/alexanderramin/quotabank/internal/service"
	"github.com/alexanderramin/quotabank/internal/settings"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings file, then QUOTABANK_* env; --db is applied by the root command.
	cfg, err := settings.Load()
	if err != nil {
		return err
	}

	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{Settings: cfg, SettingsPath: settings.Path()}

	app.Connect = func(s settings.Settings) (service.CounterService, error) {
		var err error
		database, err = db.OpenDB(s.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}

		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if s.LogUseCases {
			observer = service.NewLogUseCaseObserver(os.Stderr, false)
		}
		return service.NewCounterService(repository.NewSQLiteUnitOfWork(database), clock.System{}, observer), nil
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
