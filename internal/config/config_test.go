package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"housing_price/internal/config"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name  string
		env   map[string]string
		check func(rq *require.Assertions, cfg config.Config)
	}{
		{
			name: "Defaults",
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.Equal("housing-price", cfg.App.Name)
				rq.Equal(":8080", cfg.HTTP.ListenAddress)
				rq.Equal(":8081", cfg.HTTP.ProbeListenAddress)
				rq.Equal(":9090", cfg.HTTP.MetricListenAddress)
				rq.Equal("models/forest_pipeline.json", cfg.Model.Path)
				rq.False(cfg.Model.Remote())
				rq.True(cfg.Estimate.StrictDomain)
				rq.Equal(10*time.Minute, cfg.Estimate.CacheTTL)
				rq.Equal("info", cfg.Log.Level)
				rq.Equal("json", cfg.Log.Format)
			},
		},
		{
			name: "Remote model",
			env: map[string]string{
				"MODEL_URL":     "http://model:8501/v1/models/housing:predict",
				"MODEL_TOKEN":   "secret",
				"MODEL_TIMEOUT": "750ms",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.True(cfg.Model.Remote())
				rq.Equal("secret", cfg.Model.Token)
				rq.Equal(750*time.Millisecond, cfg.Model.Timeout)
			},
		},
		{
			name: "Overrides",
			env: map[string]string{
				"ESTIMATE_STRICT_DOMAIN": "false",
				"ESTIMATE_CACHE_TTL":     "0s",
				"LOG_FORMAT":             "text",
			},
			check: func(rq *require.Assertions, cfg config.Config) {
				rq.False(cfg.Estimate.StrictDomain)
				rq.Zero(cfg.Estimate.CacheTTL)
				rq.Equal("text", cfg.Log.Format)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Parse()
			rq.NoError(err)

			tc.check(rq, cfg)
		})
	}

	t.Run("Bad duration", func(t *testing.T) {
		t.Setenv("MODEL_TIMEOUT", "soon")

		_, err := config.Parse()
		require.Error(t, err)
	})
}
