package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"housing_price/internal/domain/service/features"
)

func featuresCmd(env environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the model feature vector for the given inputs",
		Args:  cobra.NoArgs,
	}

	input := inputFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, _ := env()

		v, err := features.NewTransformer().WithDomainCheck(cfg.Estimate.StrictDomain).Transform(input())
		if err != nil {
			return fmt.Errorf("transformer.Transform: %w", err)
		}

		printFeatures(cmd.OutOrStdout(), v)

		return nil
	}

	return cmd
}
