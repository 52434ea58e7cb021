package model_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"housing_price/internal/domain"
	"housing_price/internal/domain/value"
	"housing_price/internal/infrastructure/model"
	"housing_price/pkg/contextx"
	"housing_price/pkg/errcodes"
	"housing_price/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestRemotePredict(t *testing.T) {
	rq := require.New(t)

	v := vectorFor(t, nil)

	testCases := []struct {
		name     string
		token    string
		handler  http.HandlerFunc
		price    float64
		wantCode string
	}{
		{
			name:  "Scored",
			token: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				rq.Equal(http.MethodPost, r.Method)
				rq.Equal("Bearer secret", r.Header.Get("Authorization"))
				rq.Equal("application/json", r.Header.Get("Content-Type"))

				var body struct {
					Instances [][]float64 `json:"instances"`
				}

				rq.NoError(json.NewDecoder(r.Body).Decode(&body))
				rq.Len(body.Instances, 1)
				rq.Equal(v.Slice(), body.Instances[0])

				w.Write([]byte(`{"predictions":[452600.25]}`))
			},
			price: 452600.25,
		},
		{
			name: "No token, no header",
			handler: func(w http.ResponseWriter, r *http.Request) {
				rq.Empty(r.Header.Get("Authorization"))

				w.Write([]byte(`{"predictions":[1]}`))
			},
			price: 1,
		},
		{
			name: "Server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("warming up"))
			},
			wantCode: errcodes.ModelUnavailable.String(),
		},
		{
			name: "Wrong prediction count",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"predictions":[1,2]}`))
			},
			wantCode: errcodes.ModelUnavailable.String(),
		},
		{
			name: "Garbage body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`<html>`))
			},
			wantCode: errcodes.ModelUnavailable.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			httpServer := httptest.NewServer(tc.handler)
			defer httpServer.Close()

			remote := model.NewRemote(model.RemoteOptions{
				URL:     httpServer.URL + "/v1/models/housing:predict",
				Token:   tc.token,
				Timeout: time.Second,
				Name:    "housing",
				Version: "7",
			})

			info := remote.Info()
			rq.Equal(model.KindRemote, info.Kind)
			rq.Equal(value.FeatureNames[:], info.Features)

			price, err := remote.Predict(context.Background(), v)
			if tc.wantCode != "" {
				rq.Error(err)

				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.wantCode, code.String())

				return
			}

			rq.NoError(err)
			rq.InDelta(tc.price, price, 0)
		})
	}
}

func TestRemoteMasksToken(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"predictions":[10]}`))
	}))
	defer httpServer.Close()

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	remote := model.NewRemote(model.RemoteOptions{
		URL:    httpServer.URL,
		Token:  "top-secret",
		Masker: logx.NewSensitiveDataMasker(),
	})

	_, err := remote.Predict(ctx, vectorFor(t, nil))
	rq.NoError(err)

	logs, err := io.ReadAll(&buf)
	rq.NoError(err)
	rq.Contains(string(logs), "Authorization: Bearer [MASKED]")
	rq.NotContains(string(logs), "top-secret")
}

func TestRemoteUnreachable(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.NotFoundHandler())
	url := httpServer.URL
	httpServer.Close()

	remote := model.NewRemote(model.RemoteOptions{URL: url, Timeout: time.Second})

	_, err := remote.Predict(context.Background(), vectorFor(t, nil))
	rq.ErrorIs(err, domain.NewError(errcodes.ModelUnavailable, ""))
}
