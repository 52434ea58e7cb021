package value

import (
	"github.com/samber/lo"
)

// OceanProximity is the categorical location label the model was trained on.
type OceanProximity string

const (
	OceanProximityLessThanHour OceanProximity = "<1H OCEAN"
	OceanProximityInland       OceanProximity = "INLAND"
	OceanProximityIsland       OceanProximity = "ISLAND"
	OceanProximityNearBay      OceanProximity = "NEAR BAY"
	OceanProximityNearOcean    OceanProximity = "NEAR OCEAN"
)

// OceanProximityCount is the width of the one-hot block.
const OceanProximityCount = 5

// oceanProximityOneHot is the label -> indicator table. Column order follows
// OceanProximities and must match the training schema.
//
//nolint:gochecknoglobals
var oceanProximityOneHot = map[OceanProximity][OceanProximityCount]float64{
	OceanProximityLessThanHour: {1, 0, 0, 0, 0},
	OceanProximityInland:       {0, 1, 0, 0, 0},
	OceanProximityIsland:       {0, 0, 1, 0, 0},
	OceanProximityNearBay:      {0, 0, 0, 1, 0},
	OceanProximityNearOcean:    {0, 0, 0, 0, 1},
}

// OceanProximities returns the labels in one-hot column order.
func OceanProximities() []OceanProximity {
	return []OceanProximity{
		OceanProximityLessThanHour,
		OceanProximityInland,
		OceanProximityIsland,
		OceanProximityNearBay,
		OceanProximityNearOcean,
	}
}

func (o OceanProximity) String() string {
	return string(o)
}

// OneHot returns the indicator row for the label. The second result is false
// for labels outside the fixed set.
func (o OceanProximity) OneHot() ([OceanProximityCount]float64, bool) {
	row, ok := oceanProximityOneHot[o]

	return row, ok
}

func (o OceanProximity) Valid() bool {
	_, ok := oceanProximityOneHot[o]

	return ok
}

// Index is the label position in OceanProximities, or -1.
func (o OceanProximity) Index() int {
	return lo.IndexOf(OceanProximities(), o)
}
