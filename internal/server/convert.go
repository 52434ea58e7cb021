package server

import (
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/lox"
	"housing_price/pkg/rest"
)

func newDomainHousingInput(in rest.HousingInput) entity.HousingInput {
	return entity.HousingInput{
		MedianIncome:     *in.MedianIncome,
		HousingMedianAge: *in.HousingMedianAge,
		TotalRooms:       *in.TotalRooms,
		TotalBedrooms:    *in.TotalBedrooms,
		Population:       *in.Population,
		Households:       *in.Households,
		Latitude:         *in.Latitude,
		Longitude:        *in.Longitude,
		OceanProximity:   value.OceanProximity(in.OceanProximity),
	}
}

func newRESTFeatures(v value.FeatureVector) []rest.Feature {
	return lox.Map(v.Named(), func(f value.NamedFeature) rest.Feature {
		return rest.Feature{Name: f.Name, Value: f.Value}
	})
}

func newRESTEstimate(e entity.Estimate) rest.Estimate {
	return rest.Estimate{
		ID:             e.ID.String(),
		Price:          e.Price.InexactFloat64(),
		PriceFormatted: e.PriceFormatted,
		CacheHit:       e.CacheHit,
		Features:       newRESTFeatures(e.Features),
		Model:          newRESTModel(e.Model),
	}
}

func newRESTModel(m entity.ModelInfo) rest.Model {
	return rest.Model{
		Kind:     m.Kind,
		Name:     m.Name,
		Version:  m.Version,
		Features: m.Features,
		Trees:    m.Trees,
	}
}

func newRESTOceanProximities() []string {
	return lox.Map(value.OceanProximities(), value.OceanProximity.String)
}

func newRESTForm() rest.Form {
	defaults := entity.DefaultHousingInput()

	return rest.Form{
		Fields: lox.Map(entity.Domains, func(d entity.Domain) rest.FormField {
			return rest.FormField{
				Name:    d.Field,
				Label:   d.Label,
				Min:     d.Min,
				Max:     d.Max,
				Default: d.Default,
			}
		}),
		OceanProximities: newRESTOceanProximities(),
		Defaults: rest.Defaults{
			Numeric:        defaults.Numeric(),
			OceanProximity: defaults.OceanProximity.String(),
		},
	}
}
