package cli

import (
	"fmt"

	"github.com/alexanderramin/quotabank/internal/cli/formatter"
	"github.com/alexanderramin/quotabank/internal/settings"
	"github.com/spf13/cobra"
)

func (a *App) settingsPath() string {
	if a.SettingsPath != "" {
		return a.SettingsPath
	}
	return settings.Path()
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Show the effective settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.settingsPath()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSettings(path, settings.Exists(path), app.Settings))
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the effective settings to the settings file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.settingsPath()
			if settings.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := settings.Save(path, app.Settings); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing settings file")
	return cmd
}
