package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyToken = errors.New("empty bearer token")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	req = req.Clone(req.Context())
	rt.setAuthorizationHeader(req)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()

		if err = rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}

		// The first attempt drained the body.
		if req.GetBody != nil {
			if req.Body, err = req.GetBody(); err != nil {
				return nil, fmt.Errorf("req.GetBody: %w", err)
			}
		}

		rt.setAuthorizationHeader(req)

		return rt.next.RoundTrip(req) //nolint:wrapcheck
	}

	return resp, nil
}

func (rt AuthBearerRoundTripper) setAuthorizationHeader(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())
}

// StaticToken authenticates with a preconfigured token, as issued to the
// model server client.
type StaticToken string

func (t StaticToken) Authenticate(context.Context) error {
	if t == "" {
		return ErrEmptyToken
	}

	return nil
}

func (t StaticToken) BearerToken() string {
	return string(t)
}
