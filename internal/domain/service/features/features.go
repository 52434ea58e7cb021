package features

import (
	"fmt"
	"math"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
)

var (
	ErrInvalidCategory = domain.NewError(errcodes.InvalidOceanProximity, "invalid ocean proximity")
	ErrOutOfDomain     = domain.NewError(errcodes.OutOfDomain, "input out of domain")
	ErrDegenerateRatio = domain.NewError(errcodes.DegenerateRatio, "degenerate ratio")
)

// Transform converts raw housing attributes into the model input vector.
// Numeric ranges are trusted; only arguments that would make the arithmetic
// undefined are rejected.
func Transform(in entity.HousingInput) (value.FeatureVector, error) {
	var v value.FeatureVector

	oneHot, ok := in.OceanProximity.OneHot()
	if !ok {
		return v, domain.Errorf(errcodes.InvalidOceanProximity,
			"invalid ocean proximity %q", in.OceanProximity.String())
	}

	numeric := in.Numeric()

	for _, d := range entity.Domains {
		if x := numeric[d.Field]; math.IsNaN(x) || math.IsInf(x, 0) {
			return v, domain.Errorf(errcodes.OutOfDomain, "%s: not a finite number", d.Field)
		}
	}

	roomsLog, err := logPlusOne(entity.FieldTotalRooms, in.TotalRooms)
	if err != nil {
		return v, err
	}

	bedroomsLog, err := logPlusOne(entity.FieldTotalBedrooms, in.TotalBedrooms)
	if err != nil {
		return v, err
	}

	populationLog, err := logPlusOne(entity.FieldPopulation, in.Population)
	if err != nil {
		return v, err
	}

	householdsLog, err := logPlusOne(entity.FieldHouseholds, in.Households)
	if err != nil {
		return v, err
	}

	bedroomRatio, err := ratio("bedroom_ratio", bedroomsLog, roomsLog)
	if err != nil {
		return v, err
	}

	perHouseholdRooms, err := ratio("per_household_rooms", roomsLog, householdsLog)
	if err != nil {
		return v, err
	}

	v[value.FeatureMedianIncome] = in.MedianIncome
	v[value.FeatureHousingMedianAge] = in.HousingMedianAge
	v[value.FeatureTotalRoomsLog] = roomsLog
	v[value.FeatureTotalBedroomsLog] = bedroomsLog
	v[value.FeaturePopulationLog] = populationLog
	v[value.FeatureHouseholdsLog] = householdsLog
	v[value.FeatureLatitude] = in.Latitude
	v[value.FeatureLongitude] = in.Longitude
	copy(v[value.FeatureOceanProximityFirst:value.FeatureBedroomRatio], oneHot[:])
	v[value.FeatureBedroomRatio] = bedroomRatio
	v[value.FeaturePerHouseholdRooms] = perHouseholdRooms

	return v, nil
}

// CheckDomain verifies every numeric input against entity.Domains and the
// category against the fixed label set.
func CheckDomain(in entity.HousingInput) error {
	numeric := in.Numeric()

	for _, d := range entity.Domains {
		x := numeric[d.Field]
		if !d.Contains(x) {
			return domain.Errorf(errcodes.OutOfDomain,
				"%s: %v outside [%v, %v]", d.Field, x, d.Min, d.Max)
		}
	}

	if !in.OceanProximity.Valid() {
		return domain.Errorf(errcodes.InvalidOceanProximity,
			"invalid ocean proximity %q", in.OceanProximity.String())
	}

	return nil
}

// logPlusOne is ln(x+1); the argument must stay strictly positive.
func logPlusOne(field string, x float64) (float64, error) {
	if x+1 <= 0 {
		return 0, domain.Errorf(errcodes.OutOfDomain, "%s: log argument %v+1 is not positive", field, x)
	}

	return math.Log(x + 1), nil
}

func ratio(name string, num, den float64) (float64, error) {
	if den == 0 {
		return 0, domain.Errorf(errcodes.DegenerateRatio, "%s: zero denominator", name)
	}

	return num / den, nil
}

// Transformer applies Transform, optionally preceded by CheckDomain.
type Transformer struct {
	checkDomain bool
}

func NewTransformer() Transformer {
	return Transformer{}
}

func (t Transformer) WithDomainCheck(enabled bool) Transformer {
	t.checkDomain = enabled
	return t
}

func (t Transformer) DomainCheck() bool {
	return t.checkDomain
}

func (t Transformer) Transform(in entity.HousingInput) (value.FeatureVector, error) {
	if t.checkDomain {
		if err := CheckDomain(in); err != nil {
			return value.FeatureVector{}, fmt.Errorf("features.CheckDomain: %w", err)
		}
	}

	return Transform(in)
}
