package model

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"housing_price/internal/domain"
	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
	"housing_price/pkg/errcodes"
	"housing_price/pkg/httpx"
	"housing_price/pkg/logx"
)

const errorBodyLimit = 512

// RemoteOptions configure a client of a model-serving endpoint.
type RemoteOptions struct {
	URL            string
	Token          string
	Timeout        time.Duration
	Name           string
	Version        string
	LogFieldMaxLen int
	Masker         logx.SensitiveDataMaskerInterface
	// Transport is the innermost round tripper, http.DefaultTransport if nil.
	Transport http.RoundTripper
}

// Remote scores vectors on a model server speaking the
// {"instances": [[...]]} -> {"predictions": [...]} protocol.
type Remote struct {
	url        string
	httpClient *http.Client
	info       entity.ModelInfo
}

type remoteRequest struct {
	Instances [][]float64 `json:"instances"`
}

type remoteResponse struct {
	Predictions []float64 `json:"predictions"`
}

func NewRemote(opts RemoteOptions) Remote {
	next := opts.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	masker := opts.Masker
	if masker == nil {
		masker = logx.NewSensitiveDataMasker()
	}

	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		next,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
		httpx.WithTraceHeader(httpx.HeaderTraceID),
	)

	if opts.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.StaticToken(opts.Token))
	}

	return Remote{
		url: opts.URL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		info: entity.ModelInfo{
			Kind:     KindRemote,
			Name:     opts.Name,
			Version:  opts.Version,
			Features: slices.Clone(value.FeatureNames[:]),
			Source:   opts.URL,
		},
	}
}

func (r Remote) Info() entity.ModelInfo {
	return r.info
}

func (r Remote) Predict(ctx context.Context, v value.FeatureVector) (float64, error) {
	body, err := json.Marshal(remoteRequest{Instances: [][]float64{v.Slice()}})
	if err != nil {
		return 0, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.ModelUnavailable, "model server request")
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return 0, domain.Errorf(errcodes.ModelUnavailable,
			"model server responded %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out remoteResponse

	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, domain.WrapError(err, errcodes.ModelUnavailable, "decode model server response")
	}

	if len(out.Predictions) != 1 {
		return 0, domain.Errorf(errcodes.ModelUnavailable,
			"model server returned %d predictions for one instance", len(out.Predictions))
	}

	return out.Predictions[0], nil
}
