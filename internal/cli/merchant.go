package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
)

const defaultTopCustomers = 10

func newBankCommand(d Deps, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bank",
		Short: "Show the primary payout bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			r := opts.renderer(cmd)

			bank, err := d.Dashboard.PrimaryBankAccount(ctx)
			if err != nil {
				return err
			}
			resp := dto.NewBankAccountResponse(bank)
			if r.structured() {
				return r.document(resp)
			}
			r.properties([][2]string{
				{"Bank", resp.BankName},
				{"Account Number", resp.AccountNumber},
				{"Account Holder", resp.AccountHolderName},
				{"Primary", strconv.FormatBool(resp.Primary)},
				{"Status", resp.Status},
			})
			return nil
		},
	}
}

func newMetricsCommand(d Deps, opts *rootOptions) *cobra.Command {
	flags := &rangeFlags{}
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show the transaction summary cards for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			r := opts.renderer(cmd)

			sel, err := flags.selection()
			if err != nil {
				return err
			}
			m, err := d.Dashboard.Metrics(ctx, sel)
			if err != nil {
				return err
			}
			resp := dto.NewMetricsResponse(m)
			if r.structured() {
				return r.document(resp)
			}

			rows := make([][]string, len(resp.Metrics))
			for i, c := range resp.Metrics {
				rows[i] = []string{c.Title, c.Value}
			}
			r.table([]string{"Metric", "Value"}, rows)
			r.info("%s to %s", resp.Range.From, resp.Range.To)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRewardCommand(d Deps, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Show the reward configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			cfg, err := d.Dashboard.RewardConfig(ctx)
			if err != nil {
				return err
			}
			return renderReward(opts.renderer(cmd), cfg)
		},
	}
	cmd.AddCommand(newRewardSetCommand(d, opts))
	return cmd
}

func newRewardSetCommand(d Deps, opts *rootOptions) *cobra.Command {
	var method, rewardCap, expiration string
	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Replace the reward configuration",
		Example: `  dashctl reward set --method instant --cap "10,000" --expiration 30-days`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()

			n, err := merchant.ParseRewardCap(rewardCap)
			if err != nil {
				return err
			}
			saved, err := d.Dashboard.UpdateRewardConfig(ctx, merchant.RewardConfig{
				ReceiveMethod: merchant.ReceiveMethod(strings.ToUpper(method)),
				RewardCap:     n,
				Expiration:    merchant.Expiration(expiration),
			})
			if err != nil {
				return err
			}
			return renderReward(opts.renderer(cmd), saved)
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "when customers receive points: instant or later")
	cmd.Flags().StringVar(&rewardCap, "cap", "", `most points per transaction, e.g. "10,000"`)
	cmd.Flags().StringVar(&expiration, "expiration", "", "point validity: 1-day, 3-days, 7-days, 14-days, 30-days or 10000days")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("cap")
	_ = cmd.MarkFlagRequired("expiration")
	return cmd
}

func renderReward(r *renderer, cfg *merchant.RewardConfig) error {
	resp := dto.NewRewardConfigResponse(cfg)
	if r.structured() {
		return r.document(resp)
	}
	r.properties([][2]string{
		{"Receive Method", resp.ReceiveMethod},
		{"Reward Cap", resp.RewardCapDisplay},
		{"Point Expiration", resp.ExpirationLabel},
	})
	return nil
}

func newCustomersCommand(d Deps, opts *rootOptions) *cobra.Command {
	flags := &rangeFlags{}
	var limit int
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Rank customers by spend for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			r := opts.renderer(cmd)

			sel, err := flags.selection()
			if err != nil {
				return err
			}
			ranked, err := d.Dashboard.TopCustomers(ctx, sel, limit)
			if err != nil {
				return err
			}
			resp := dto.NewCustomerResponses(ranked)
			if r.structured() {
				return r.document(resp)
			}

			rows := make([][]string, len(resp))
			for i, c := range resp {
				rows[i] = []string{
					strconv.Itoa(c.Rank),
					c.CustomerName,
					merchant.FormatCount(c.TotalTransactions),
					c.TotalSpentDisplay,
					c.MostShoppedBranch,
				}
			}
			r.table([]string{"Rank", "Customer", "Transactions", "Total Spent", "Most Shopped Branch"}, rows)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", defaultTopCustomers, "how many customers to show; 0 for all")
	return cmd
}
