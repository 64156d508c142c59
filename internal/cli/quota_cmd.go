package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/quotabank/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newQuotaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quota [N]",
		Short: "Show or set the daily quota (clamped to 1-99)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			out := cmd.OutOrStdout()

			var raw string
			switch {
			case len(args) == 1:
				raw = args[0]
			case app.interactive():
				cfg, err := app.Counter.Config(ctx)
				if err != nil {
					return err
				}
				raw = strconv.Itoa(cfg.DailyQuota)
				if err := newQuotaForm(&raw).Run(); err != nil {
					return err
				}
			default:
				cfg, err := app.Counter.Config(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatQuota(cfg.DailyQuota))
				return nil
			}

			v, err := parseQuota(raw)
			if err != nil {
				return err
			}
			snap, err := app.Counter.SetDailyQuota(ctx, v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatQuota(snap.Config.DailyQuota))
			return nil
		},
	}
}
