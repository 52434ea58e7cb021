package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"housing_price/internal/domain"
	"housing_price/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	sentinel := domain.NewError(errcodes.OutOfDomain, "input out of domain")

	err := fmt.Errorf("features.Transform: %w",
		domain.Errorf(errcodes.OutOfDomain, "total_rooms: %v", -3.0))

	rq.ErrorIs(err, sentinel)
	rq.NotErrorIs(err, domain.NewError(errcodes.DegenerateRatio, "x"))
	rq.True(domain.IsAppError(err))
	rq.EqualError(err, "features.Transform: total_rooms: -3")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.OutOfDomain, code)

	_, ok = domain.GetCode(errors.New("plain"))
	rq.False(ok)

	cause := errors.New("connection refused")
	wrapped := domain.WrapError(cause, errcodes.ModelUnavailable, "score")
	rq.ErrorIs(wrapped, cause)
	rq.EqualError(wrapped, "score: connection refused")
}
