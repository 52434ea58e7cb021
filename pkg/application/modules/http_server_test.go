package modules_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"housing_price/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:   ":10030",
		ShutdownTimeout: time.Second,
	}.Run(ctx, g, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong")) //nolint:errcheck
	}))

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10030/ping", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.Equal("pong", string(body))

	cancel()

	rq.NoError(g.Wait())
}

func TestDisabledServers(t *testing.T) {
	rq := require.New(t)

	g, ctx := errgroup.WithContext(context.Background())

	modules.ProbeServer{Name: "app"}.Run(ctx, g)
	modules.MetricServer{}.Run(ctx, g)

	rq.NoError(g.Wait())
}
