package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/quotabank/internal/service"
	"github.com/alexanderramin/quotabank/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the counter service and process settings used by CLI commands.
type App struct {
	Counter  service.CounterService
	Settings settings.Settings

	// SettingsPath is the settings file Settings was loaded from.
	SettingsPath string

	// Connect opens the store named by Settings.DBPath. It runs once, before
	// the first command that needs Counter, after --db has been applied.
	Connect func(s settings.Settings) (service.CounterService, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunProgram runs a bubbletea program. Nil uses tea.NewProgram.
	RunProgram func(m tea.Model) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) ensureCounter() error {
	if a.Counter != nil {
		return nil
	}
	if a.Connect == nil {
		return fmt.Errorf("no store configured")
	}
	svc, err := a.Connect(a.Settings)
	if err != nil {
		return err
	}
	a.Counter = svc
	return nil
}

// annotationNoStore marks commands that run without opening the store.
const annotationNoStore = "quotabank/no-store"

// NewRootCmd creates the top-level "quotabank" command and registers all
// subcommands against the provided App. Run bare, it opens the dashboard on
// a terminal and prints the status card otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "quotabank",
		Short:         "Daily quota counter with a weekly leftover bank",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyFlagOverrides(cmd.Flags(), &app.Settings); err != nil {
				return err
			}
			if cmd.Annotations[annotationNoStore] != "" {
				return nil
			}
			return app.ensureCounter()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return printStatus(cmd, app)
		},
	}

	pf := root.PersistentFlags()
	pf.String("db", "", "Path to the quotabank database")
	pf.Int("tick-ms", 0, "Dashboard refresh interval in milliseconds")
	pf.Bool("log-use-cases", false, "Log every counter use case to stderr")

	root.AddCommand(
		newStatusCmd(app),
		newAddCmd(app),
		newRemoveCmd(app),
		newCloseDayCmd(app),
		newResetWeekCmd(app),
		newQuotaCmd(app),
		newClearCmd(app),
		newTUICmd(app),
		newConfigCmd(app),
	)

	return root
}

// applyFlagOverrides layers explicitly set flags over the file and env
// settings. Flags left at their defaults never override.
func applyFlagOverrides(fs *pflag.FlagSet, s *settings.Settings) error {
	if fs.Changed("db") {
		v, err := fs.GetString("db")
		if err != nil {
			return err
		}
		s.DBPath = v
	}
	if fs.Changed("tick-ms") {
		v, err := fs.GetInt("tick-ms")
		if err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("--tick-ms must be positive")
		}
		s.TickIntervalMs = v
	}
	if fs.Changed("log-use-cases") {
		v, err := fs.GetBool("log-use-cases")
		if err != nil {
			return err
		}
		s.LogUseCases = v
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
