package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
)

// inputFlags registers one flag per housing input, defaulting to the form's
// initial state, and returns a reader for the parsed values.
func inputFlags(cmd *cobra.Command) func() entity.HousingInput {
	numeric := make(map[string]*float64, len(entity.Domains))

	for _, d := range entity.Domains {
		numeric[d.Field] = cmd.Flags().Float64(
			flagName(d.Field),
			d.Default,
			fmt.Sprintf("%s, in [%g, %g]", d.Label, d.Min, d.Max),
		)
	}

	labels := make([]string, 0, value.OceanProximityCount)
	for _, o := range value.OceanProximities() {
		labels = append(labels, fmt.Sprintf("%q", o.String()))
	}

	proximity := cmd.Flags().String(
		flagName(entity.FieldOceanProximity),
		value.OceanProximityLessThanHour.String(),
		"Ocean proximity, one of "+strings.Join(labels, ", "),
	)

	return func() entity.HousingInput {
		in := entity.HousingInput{OceanProximity: value.OceanProximity(*proximity)}

		for field, x := range numeric {
			in.Set(field, *x)
		}

		return in
	}
}

func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func printFeatures(w io.Writer, v value.FeatureVector) {
	for _, f := range v.Named() {
		fmt.Fprintf(w, "%-28s %.6f\n", f.Name, f.Value)
	}
}
