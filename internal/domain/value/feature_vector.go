package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FeatureCount is the input width of the trained model: 8 base scalars,
// 5 one-hot indicators and 2 ratios.
const FeatureCount = 15

// Positions inside FeatureVector.
const (
	FeatureMedianIncome = iota
	FeatureHousingMedianAge
	FeatureTotalRoomsLog
	FeatureTotalBedroomsLog
	FeaturePopulationLog
	FeatureHouseholdsLog
	FeatureLatitude
	FeatureLongitude
	FeatureOceanProximityFirst // one-hot block, OceanProximityCount wide
)

const (
	FeatureBedroomRatio = FeatureOceanProximityFirst + OceanProximityCount + iota
	FeaturePerHouseholdRooms
)

// FeatureNames is the column order the model artifact was fit on.
//
//nolint:gochecknoglobals
var FeatureNames = [FeatureCount]string{
	"median_income",
	"housing_median_age",
	"total_rooms_log",
	"total_bedrooms_log",
	"population_log",
	"households_log",
	"latitude",
	"longitude",
	"ocean_proximity_<1H OCEAN",
	"ocean_proximity_INLAND",
	"ocean_proximity_ISLAND",
	"ocean_proximity_NEAR BAY",
	"ocean_proximity_NEAR OCEAN",
	"bedroom_ratio",
	"per_household_rooms",
}

// FeatureVector is the ordered model input. Being an array it is copied on
// assignment, so a constructed vector cannot be changed by its consumers.
type FeatureVector [FeatureCount]float64

// Slice returns a fresh copy suitable for row-oriented model APIs.
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])

	return out
}

// Named pairs every value with its column name.
func (v FeatureVector) Named() []NamedFeature {
	return lo.Map(FeatureNames[:], func(name string, i int) NamedFeature {
		return NamedFeature{Name: name, Value: v[i]}
	})
}

// Finite reports whether no component is NaN or infinite.
func (v FeatureVector) Finite() bool {
	return lo.EveryBy(v[:], func(x float64) bool {
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})
}

// Key is an exact textual identity of the vector (bit patterns, not rounded
// decimals), used to memoise model scores.
func (v FeatureVector) Key() string {
	var sb strings.Builder

	sb.Grow(FeatureCount * 17) //nolint:mnd

	for i, x := range v {
		if i > 0 {
			sb.WriteByte(':')
		}

		sb.WriteString(strconv.FormatUint(math.Float64bits(x), 16))
	}

	return sb.String()
}

type NamedFeature struct {
	Name  string
	Value float64
}
