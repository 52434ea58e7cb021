package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
)

func TestDefaultHousingInput(t *testing.T) {
	rq := require.New(t)

	in := entity.DefaultHousingInput()

	rq.Equal(entity.HousingInput{
		MedianIncome:     3,
		HousingMedianAge: 30,
		TotalRooms:       3000,
		TotalBedrooms:    500,
		Population:       1500,
		Households:       500,
		Latitude:         34,
		Longitude:        -118,
		OceanProximity:   value.OceanProximityLessThanHour,
	}, in)

	numeric := in.Numeric()
	rq.Len(numeric, len(entity.Domains))

	for _, d := range entity.Domains {
		rq.True(d.Contains(d.Default), d.Field)
		rq.True(d.Contains(d.Min))
		rq.True(d.Contains(d.Max))
		rq.False(d.Contains(d.Max+1))
		rq.InDelta(d.Default, numeric[d.Field], 0)
	}

	rq.False(in.Set("rooms", 1))
	rq.True(in.Set(entity.FieldLatitude, 40))
	rq.InDelta(40.0, in.Latitude, 0)
}
