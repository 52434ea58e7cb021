package estimate_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/service/estimate"
	"housing_price/internal/domain/service/features"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
)

type predictorStub struct {
	mu    sync.Mutex
	calls int
	price float64
	err   error
}

func (p *predictorStub) Predict(_ context.Context, _ value.FeatureVector) (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++

	return p.price, p.err
}

func (p *predictorStub) Info() entity.ModelInfo {
	return entity.ModelInfo{Kind: "stub", Name: "stub", Version: "test"}
}

func (p *predictorStub) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

func TestEstimate(t *testing.T) {
	rq := require.New(t)

	predictor := &predictorStub{price: 452600.004}
	svc := estimate.NewService(features.NewTransformer(), predictor)

	got, err := svc.Estimate(context.Background(), entity.DefaultHousingInput())
	rq.NoError(err)

	rq.NotEqual("00000000-0000-0000-0000-000000000000", got.ID.String())
	rq.True(decimal.RequireFromString("452600").Equal(got.Price), got.Price.String())
	rq.Equal("$452,600.00", got.PriceFormatted)
	rq.Equal("stub", got.Model.Kind)
	rq.False(got.CacheHit)
	rq.Equal(entity.DefaultHousingInput(), got.Input)

	want, err := features.Transform(entity.DefaultHousingInput())
	rq.NoError(err)
	rq.Equal(want, got.Features)
}

func TestEstimateCache(t *testing.T) {
	rq := require.New(t)

	predictor := &predictorStub{price: 100000}
	svc := estimate.NewService(features.NewTransformer(), predictor)
	in := entity.DefaultHousingInput()

	first, err := svc.Estimate(context.Background(), in)
	rq.NoError(err)
	rq.False(first.CacheHit)

	second, err := svc.Estimate(context.Background(), in)
	rq.NoError(err)
	rq.True(second.CacheHit)
	rq.True(first.Price.Equal(second.Price))
	rq.NotEqual(first.ID, second.ID)
	rq.Equal(1, predictor.Calls())

	in.MedianIncome = 4
	_, err = svc.Estimate(context.Background(), in)
	rq.NoError(err)
	rq.Equal(2, predictor.Calls())
}

func TestEstimateCacheDisabled(t *testing.T) {
	rq := require.New(t)

	predictor := &predictorStub{price: 100000}
	svc := estimate.NewService(features.NewTransformer(), predictor).WithCache(0, 0)

	for range 3 {
		got, err := svc.Estimate(context.Background(), entity.DefaultHousingInput())
		rq.NoError(err)
		rq.False(got.CacheHit)
	}

	rq.Equal(3, predictor.Calls())
}

func TestEstimateErrors(t *testing.T) {
	errModel := domain.NewError(errcodes.ModelUnavailable, "model down")

	testCases := []struct {
		name      string
		input     func(in *entity.HousingInput)
		price     float64
		predErr   error
		wantCode  string
		wantCalls int
	}{
		{
			name:     "Invalid category",
			input:    func(in *entity.HousingInput) { in.OceanProximity = "ARCTIC" },
			wantCode: string(errcodes.InvalidOceanProximity),
		},
		{
			name:     "Out of domain",
			input:    func(in *entity.HousingInput) { in.Latitude = 60 },
			wantCode: string(errcodes.OutOfDomain),
		},
		{
			name:      "Model failure",
			predErr:   errModel,
			wantCode:  string(errcodes.ModelUnavailable),
			wantCalls: 1,
		},
		{
			name:      "Non-finite price",
			price:     math.Inf(1),
			wantCode:  string(errcodes.ModelUnavailable),
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			predictor := &predictorStub{price: tc.price, err: tc.predErr}
			svc := estimate.NewService(features.NewTransformer().WithDomainCheck(true), predictor)

			in := entity.DefaultHousingInput()
			if tc.input != nil {
				tc.input(&in)
			}

			_, err := svc.Estimate(context.Background(), in)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.wantCode, string(code))
			rq.Equal(tc.wantCalls, predictor.Calls())

			if tc.predErr != nil {
				rq.True(errors.Is(err, tc.predErr))
			}
		})
	}
}

func TestFeatures(t *testing.T) {
	rq := require.New(t)

	predictor := &predictorStub{}
	svc := estimate.NewService(features.NewTransformer(), predictor).WithCache(time.Minute, time.Minute)

	in := entity.DefaultHousingInput()
	in.OceanProximity = value.OceanProximityIsland

	got, err := svc.Features(context.Background(), in)
	rq.NoError(err)
	rq.Equal(1.0, got[value.FeatureOceanProximityFirst+2])
	rq.Zero(predictor.Calls())
	rq.Equal("stub", svc.Model().Kind)
}

func TestFormatUSD(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{amount: "452600", want: "$452,600.00"},
		{amount: "14999.999", want: "$15,000.00"},
		{amount: "500001", want: "$500,001.00"},
		{amount: "999.5", want: "$999.50"},
		{amount: "0", want: "$0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			require.Equal(t, tc.want, estimate.FormatUSD(decimal.RequireFromString(tc.amount)))
		})
	}
}
