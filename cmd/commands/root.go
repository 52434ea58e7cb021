package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"housing_price/internal/config"
	"housing_price/pkg/logx"
)

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var (
		cfg    config.Config
		logger *slog.Logger
	)

	root := &cobra.Command{
		Use:          "housing-price",
		Short:        "California housing price estimator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			logger = logx.NewLogger(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level).With(
				slog.String(logx.FieldAppName, cfg.App.Name),
				slog.String(logx.FieldAppVersion, cfg.App.Version),
			)

			slog.SetDefault(logger)

			return nil
		},
	}

	env := func() (config.Config, *slog.Logger) { return cfg, logger }

	serve := serveCmd(env)

	// Bare invocation serves, as the container entrypoint expects.
	root.Args = cobra.NoArgs
	root.RunE = serve.RunE

	root.AddCommand(serve, estimateCmd(env), featuresCmd(env))

	return root
}

// environment exposes what PersistentPreRunE loaded to the subcommands.
type environment func() (config.Config, *slog.Logger)
