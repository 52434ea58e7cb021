package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"housing_price/pkg/httpx/reply"
	"housing_price/pkg/logx"
	"housing_price/pkg/middlewarex"
)

type RouterOptions struct {
	Logger         *slog.Logger
	Masker         logx.SensitiveDataMaskerInterface
	LogFieldMaxLen int
}

// NewRouter wires the middleware chain in front of the API routes.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger(opts.Logger),
		middlewarex.RequestLogging(opts.Masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.Masker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/estimates", handler(s.postV1Estimates))
		r.Post("/features", handler(s.postV1Features))
		r.Get("/form", handler(s.getV1Form))
		r.Get("/ocean-proximities", handler(s.getV1OceanProximities))
		r.Get("/model", handler(s.getV1Model))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
