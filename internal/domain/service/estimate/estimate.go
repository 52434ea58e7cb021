package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/contextx"
	"housing_price/pkg/errcodes"
	"housing_price/pkg/logx"
)

const (
	defaultCacheTTL     = 10 * time.Minute
	defaultCacheCleanup = 20 * time.Minute
	centsPlaces         = 2
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Predictor interface {
	Predict(ctx context.Context, v value.FeatureVector) (float64, error)
	Info() entity.ModelInfo
}

type Transformer interface {
	Transform(in entity.HousingInput) (value.FeatureVector, error)
}

// Service runs the inputs -> features -> model -> currency flow.
type Service struct {
	transformer Transformer
	predictor   Predictor
	scores      *cache.Cache
	newID       func() uuid.UUID
}

func NewService(transformer Transformer, predictor Predictor) *Service {
	return &Service{
		transformer: transformer,
		predictor:   predictor,
		scores:      cache.New(defaultCacheTTL, defaultCacheCleanup),
		newID:       uuid.New,
	}
}

// WithCache replaces the score memo. A zero ttl disables it.
func (s *Service) WithCache(ttl, cleanup time.Duration) *Service {
	if ttl <= 0 {
		s.scores = nil
		return s
	}

	s.scores = cache.New(ttl, cleanup)
	return s
}

func (s *Service) Model() entity.ModelInfo {
	return s.predictor.Info()
}

// Features returns the model input for in without scoring it.
func (s *Service) Features(_ context.Context, in entity.HousingInput) (value.FeatureVector, error) {
	v, err := s.transformer.Transform(in)
	if err != nil {
		estimatesTotal.WithLabelValues(outcomeRejected).Inc()
		return value.FeatureVector{}, fmt.Errorf("transformer.Transform: %w", err)
	}

	return v, nil
}

func (s *Service) Estimate(ctx context.Context, in entity.HousingInput) (entity.Estimate, error) {
	v, err := s.Features(ctx, in)
	if err != nil {
		return entity.Estimate{}, err
	}

	price, hit, err := s.score(ctx, v)
	if err != nil {
		estimatesTotal.WithLabelValues(outcomeFailed).Inc()
		return entity.Estimate{}, fmt.Errorf("predictor.Predict: %w", err)
	}

	estimatesTotal.WithLabelValues(outcomeScored).Inc()

	rounded := decimal.NewFromFloat(price).Round(centsPlaces)

	estimate := entity.Estimate{
		ID:             s.newID(),
		Input:          in,
		Features:       v,
		Price:          rounded,
		PriceFormatted: FormatUSD(rounded),
		Model:          s.predictor.Info(),
		CacheHit:       hit,
	}

	logger(ctx).Debug("estimate",
		slog.String(logx.FieldEstimateID, estimate.ID.String()),
		slog.String(logx.FieldOceanProximity, in.OceanProximity.String()),
		slog.String(logx.FieldPrice, estimate.PriceFormatted),
		slog.Bool(logx.FieldCacheHit, hit),
	)

	return estimate, nil
}

// score memoises model output by exact vector identity; the transform and
// the loaded model are both deterministic.
func (s *Service) score(ctx context.Context, v value.FeatureVector) (float64, bool, error) {
	var key string

	if s.scores != nil {
		key = v.Key()

		if cached, found := s.scores.Get(key); found {
			cacheHitsTotal.Inc()
			return cached.(float64), true, nil //nolint:forcetypeassert
		}
	}

	start := time.Now()

	price, err := s.predictor.Predict(ctx, v)

	modelDuration.WithLabelValues(s.predictor.Info().Kind).Observe(time.Since(start).Seconds())

	if err != nil {
		return 0, false, err //nolint:wrapcheck
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false, domain.Errorf(errcodes.ModelUnavailable, "model returned non-finite price %v", price)
	}

	if s.scores != nil {
		s.scores.Set(key, price, cache.DefaultExpiration)
	}

	return price, false, nil
}

// FormatUSD renders an amount the way the estimate is shown to people,
// e.g. $452,600.00.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", amount.Round(centsPlaces).InexactFloat64())
}
