package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"dash"},
		Short:   "Open the live dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}
}

func runDashboard(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newDashboardModel(ctx, app)
	if app.RunProgram != nil {
		return app.RunProgram(m)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
