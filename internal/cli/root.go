// Package cli implements dashctl, a terminal client for the merchant
// dashboard. List commands drive a listview.View against the merchant API
// and wait for it to settle; merchant commands call the dashboard service.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

const defaultCommandTimeout = 30 * time.Second

// Settings are the list defaults taken from the dashboard configuration.
type Settings struct {
	PageSize    int
	SearchDelay time.Duration
	WeekStart   time.Weekday
}

// Deps are the services the commands call.
type Deps struct {
	Client    ports.MerchantClient
	Dashboard ports.DashboardService
	Settings  Settings
	Logger    *slog.Logger
}

type rootOptions struct {
	output  string
	noColor bool
	timeout time.Duration
}

// NewRootCommand builds the dashctl command tree.
func NewRootCommand(d Deps) *cobra.Command {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Merchant dashboard from the terminal",
		Long:          "dashctl lists points distributed and redeemed and shows the merchant cards of the dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			_, err := parseFormat(opts.output)
			return err
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "output format (table, json, yaml)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultCommandTimeout, "give up after this long")

	root.AddCommand(
		newPointsCommand(d, opts),
		newBankCommand(d, opts),
		newMetricsCommand(d, opts),
		newRewardCommand(d, opts),
		newCustomersCommand(d, opts),
	)
	return root
}

// commandContext bounds a command by --timeout.
func (o *rootOptions) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.timeout)
}

func (o *rootOptions) renderer(cmd *cobra.Command) *renderer {
	format, _ := parseFormat(o.output)
	return &renderer{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), format: format}
}
