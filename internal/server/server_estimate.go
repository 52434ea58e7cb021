package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
	"housing_price/pkg/httpx/reply"
	"housing_price/pkg/httpx/req"
	"housing_price/pkg/rest"
)

type estimateService interface {
	Estimate(context.Context, entity.HousingInput) (entity.Estimate, error)
	Features(context.Context, entity.HousingInput) (value.FeatureVector, error)
	Model() entity.ModelInfo
}

type EstimateServer struct {
	estimateService estimateService
}

func NewEstimateServer(estimateService estimateService) EstimateServer {
	return EstimateServer{
		estimateService: estimateService,
	}
}

func (s EstimateServer) postV1Estimates(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.HousingInput

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	estimate, err := s.estimateService.Estimate(ctx, newDomainHousingInput(request))
	if err != nil {
		return clientError(fmt.Errorf("estimateService.Estimate: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTEstimate(estimate))

	return nil
}

func (s EstimateServer) postV1Features(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.HousingInput

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	v, err := s.estimateService.Features(ctx, newDomainHousingInput(request))
	if err != nil {
		return clientError(fmt.Errorf("estimateService.Features: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Features{
		Features: newRESTFeatures(v),
		Vector:   v.Slice(),
	})

	return nil
}

func (s EstimateServer) getV1Form(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTForm())

	return nil
}

func (s EstimateServer) getV1OceanProximities(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.OceanProximities{
		Items: newRESTOceanProximities(),
	})

	return nil
}

func (s EstimateServer) getV1Model(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTModel(s.estimateService.Model()))

	return nil
}

// clientError marks errors caused by the submitted inputs as invalid
// arguments; everything else stays a server error.
func clientError(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Code {
	case errcodes.InvalidOceanProximity, errcodes.OutOfDomain, errcodes.DegenerateRatio:
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Error()),
		)
	default:
		return err
	}
}
