package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"housing_price/internal/config"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/service/estimate"
	"housing_price/internal/domain/service/features"
	"housing_price/internal/infrastructure/model"
	"housing_price/internal/server"
	"housing_price/pkg/application/modules"
	"housing_price/pkg/contextx"
	"housing_price/pkg/logx"
	"housing_price/pkg/probe"
)

// NewPredictor picks the remote model server when configured, the exported
// pipeline file otherwise.
func NewPredictor(cfg config.Config) (estimate.Predictor, error) {
	if cfg.Model.Remote() {
		return model.NewRemote(model.RemoteOptions{
			URL:            cfg.Model.URL,
			Token:          cfg.Model.Token,
			Timeout:        cfg.Model.Timeout,
			Name:           cfg.Model.Name,
			Version:        cfg.Model.Version,
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
			Masker:         logx.NewSensitiveDataMasker(),
		}), nil
	}

	pipeline, err := model.LoadArtifact(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("model.LoadArtifact: %w", err)
	}

	return pipeline, nil
}

func NewEstimateService(cfg config.Config, predictor estimate.Predictor) *estimate.Service {
	transformer := features.NewTransformer().WithDomainCheck(cfg.Estimate.StrictDomain)

	return estimate.NewService(transformer, predictor).
		WithCache(cfg.Estimate.CacheTTL, cfg.Estimate.CacheCleanup)
}

// Run serves the API, probe and metrics servers until ctx is done.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, logger)

	predictor, err := NewPredictor(cfg)
	if err != nil {
		return err
	}

	info := predictor.Info()

	logger.Info("model loaded",
		slog.String(logx.FieldModelKind, info.Kind),
		slog.String(logx.FieldModelName, info.Name),
		slog.String(logx.FieldModelVersion, info.Version),
	)

	svc := NewEstimateService(cfg, predictor)

	router := server.NewRouter(
		server.NewServer(server.NewEstimateServer(svc)),
		server.RouterOptions{
			Logger:         logger,
			Masker:         logx.NewSensitiveDataMasker(),
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		Model:         info.Name + "@" + info.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        []probe.Check{modelCheck(predictor)},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricListenAddress,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// modelCheck scores the default form input.
func modelCheck(predictor estimate.Predictor) probe.Check {
	v, err := features.Transform(entity.DefaultHousingInput())
	if err != nil {
		return func(context.Context) error { return err }
	}

	return func(ctx context.Context) error {
		if _, err := predictor.Predict(ctx, v); err != nil {
			return fmt.Errorf("predictor.Predict: %w", err)
		}

		return nil
	}
}
