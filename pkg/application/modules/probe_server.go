package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"housing_price/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	Model         string
	ListenAddress string
	Checks        []probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")
		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
			Model:   p.Model,
		},
		p.Checks...,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
