package entity

import "housing_price/internal/domain/value"

// HousingInput is one set of raw attributes collected for a what-if estimate.
type HousingInput struct {
	MedianIncome     float64
	HousingMedianAge float64
	TotalRooms       float64
	TotalBedrooms    float64
	Population       float64
	Households       float64
	Latitude         float64
	Longitude        float64
	OceanProximity   value.OceanProximity
}

// Field names as exposed on the form and in domain errors.
const (
	FieldMedianIncome     = "median_income"
	FieldHousingMedianAge = "housing_median_age"
	FieldTotalRooms       = "total_rooms"
	FieldTotalBedrooms    = "total_bedrooms"
	FieldPopulation       = "population"
	FieldHouseholds       = "households"
	FieldLatitude         = "latitude"
	FieldLongitude        = "longitude"
	FieldOceanProximity   = "ocean_proximity"
)

// Domain is the accepted range of a numeric input and the value the form
// starts with.
type Domain struct {
	Field   string
	Label   string
	Min     float64
	Max     float64
	Default float64
}

func (d Domain) Contains(x float64) bool {
	return x >= d.Min && x <= d.Max
}

// Domains lists the numeric inputs in form order.
//
//nolint:gochecknoglobals,mnd
var Domains = []Domain{
	{Field: FieldMedianIncome, Label: "Median Income", Min: 0, Max: 20, Default: 3},
	{Field: FieldHousingMedianAge, Label: "Housing Median Age", Min: 1, Max: 100, Default: 30},
	{Field: FieldTotalRooms, Label: "Total Rooms", Min: 1, Max: 50000, Default: 3000},
	{Field: FieldTotalBedrooms, Label: "Total Bedrooms", Min: 1, Max: 10000, Default: 500},
	{Field: FieldPopulation, Label: "Population", Min: 1, Max: 30000, Default: 1500},
	{Field: FieldHouseholds, Label: "Households", Min: 1, Max: 5000, Default: 500},
	{Field: FieldLatitude, Label: "Latitude", Min: 32, Max: 42, Default: 34},
	{Field: FieldLongitude, Label: "Longitude", Min: -125, Max: -114, Default: -118},
}

// DefaultHousingInput is the form's initial state.
func DefaultHousingInput() HousingInput {
	in := HousingInput{OceanProximity: value.OceanProximityLessThanHour}

	for _, d := range Domains {
		in.Set(d.Field, d.Default)
	}

	return in
}

// Numeric returns the numeric inputs keyed by field name.
func (h HousingInput) Numeric() map[string]float64 {
	return map[string]float64{
		FieldMedianIncome:     h.MedianIncome,
		FieldHousingMedianAge: h.HousingMedianAge,
		FieldTotalRooms:       h.TotalRooms,
		FieldTotalBedrooms:    h.TotalBedrooms,
		FieldPopulation:       h.Population,
		FieldHouseholds:       h.Households,
		FieldLatitude:         h.Latitude,
		FieldLongitude:        h.Longitude,
	}
}

// Set assigns a numeric field by name and reports whether the name is known.
func (h *HousingInput) Set(name string, x float64) bool {
	var dst *float64

	switch name {
	case FieldMedianIncome:
		dst = &h.MedianIncome
	case FieldHousingMedianAge:
		dst = &h.HousingMedianAge
	case FieldTotalRooms:
		dst = &h.TotalRooms
	case FieldTotalBedrooms:
		dst = &h.TotalBedrooms
	case FieldPopulation:
		dst = &h.Population
	case FieldHouseholds:
		dst = &h.Households
	case FieldLatitude:
		dst = &h.Latitude
	case FieldLongitude:
		dst = &h.Longitude
	default:
		return false
	}

	*dst = x

	return true
}
