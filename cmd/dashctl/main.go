// Package main is dashctl, the terminal client for the merchant dashboard.
// It reads the same profile configuration as the server and authenticates
// to the merchant API with the configured static token.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/merchant-dashboard/internal/app"
	"github.com/jsamuelsen11/merchant-dashboard/internal/cli"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/config"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

const (
	defaultProfile  = "local"
	merchantAPIName = "merchant-api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Commands own stdout; only warnings and errors are logged.
	logger := logging.New("warn", cfg.Log.Format, os.Stderr)

	client := acl.NewMerchantClient(httpclient.New(&cfg.Client, merchantAPIName, nil, logger), logger)
	dashboard := app.NewDashboardService(client, cfg.Dashboard.WeekStartDay(), logger)

	root := cli.NewRootCommand(cli.Deps{
		Client:    client,
		Dashboard: dashboard,
		Settings: cli.Settings{
			PageSize:    cfg.Dashboard.PageSize,
			SearchDelay: cfg.Dashboard.SearchDebounce,
			WeekStart:   cfg.Dashboard.WeekStartDay(),
		},
		Logger: logger,
	})
	return root.ExecuteContext(ctx)
}
