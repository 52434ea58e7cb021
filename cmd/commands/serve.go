package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"housing_price/internal/application"
)

func serveCmd(env environment) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with probe and metrics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, logger := env()

			if err := application.Run(ctx, cfg, logger); err != nil {
				return err //nolint:wrapcheck
			}

			logger.Info("application stopped")

			return nil
		},
	}
}

