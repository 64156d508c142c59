package cli

import (
	"fmt"

	"github.com/alexanderramin/quotabank/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Count one unit toward today's quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("--times must be at least 1")
			}
			out := cmd.OutOrStdout()
			for i := 0; i < times; i++ {
				res, err := app.Counter.Increment(cmdContext(cmd))
				if err != nil {
					return err
				}
				if res.AtQuota || i == times-1 {
					fmt.Fprintln(out, formatter.FormatIncrement(res))
				}
				if res.AtQuota {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "n", 1, "Number of units to add")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Take back one unit from today's count",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Counter.Decrement(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCount(snap))
			return nil
		},
	}
}

func newCloseDayCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close-day",
		Short: "Bank today's leftover now and start a fresh count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmAction(app, yes, "Close the day and bank the leftover?")
			if err != nil || !ok {
				return err
			}
			snap, err := app.Counter.ForceCloseDay(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBank(snap))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newResetWeekCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-week",
		Short: "Empty the week bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmAction(app, yes, "Empty the week bank?")
			if err != nil || !ok {
				return err
			}
			snap, err := app.Counter.ForceResetWeek(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBank(snap))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase the stored quota, count and week bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirmAction(app, yes, "Erase all stored data and start over?")
			if err != nil || !ok {
				return err
			}
			snap, err := app.Counter.Clear(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCleared(snap))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

// confirmAction asks before a destructive command. Without a terminal the
// caller must pass --yes.
func confirmAction(app *App, yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("refusing to continue without --yes on a non-interactive terminal")
	}

	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(quotabankHuhTheme()).WithShowHelp(false).Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
