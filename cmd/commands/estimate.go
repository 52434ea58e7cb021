package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"housing_price/internal/application"
)

func estimateCmd(env environment) *cobra.Command {
	var showFeatures bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price for the given inputs",
		Args:  cobra.NoArgs,
	}

	input := inputFlags(cmd)

	cmd.Flags().BoolVar(&showFeatures, "show-features", true, "print the feature vector before the estimate")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, _ := env()

		predictor, err := application.NewPredictor(cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		estimate, err := application.NewEstimateService(cfg, predictor).Estimate(cmd.Context(), input())
		if err != nil {
			return fmt.Errorf("estimateService.Estimate: %w", err)
		}

		out := cmd.OutOrStdout()

		if showFeatures {
			printFeatures(out, estimate.Features)
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "Estimated price: %s\n", estimate.PriceFormatted)

		return nil
	}

	return cmd
}
