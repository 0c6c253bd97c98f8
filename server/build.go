// SPDX-License-Identifier: MIT

package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/planner"
)

// Build loads the network named by cfg (the embedded dataset when
// cfg.Network.File is empty), creates the planner and returns the router.
func Build(cfg *config.Config, log *slog.Logger) (*gin.Engine, error) {
	var (
		n   *network.Network
		err error
	)
	if cfg.Network.File == "" {
		n, err = network.Default()
	} else {
		n, err = network.Load(cfg.Network.File)
	}
	if err != nil {
		return nil, fmt.Errorf("server: load network: %w", err)
	}

	p, err := planner.New(n,
		planner.WithTariff(cfg.Tariff),
		planner.WithLogger(log),
		planner.WithRouteCacheSize(cfg.Cache.RouteSize),
		planner.WithAnalysisTTL(cfg.Cache.AnalysisTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if log != nil {
		log.Info("network loaded",
			"stations", n.Graph.VertexCount(),
			"segments", n.Graph.EdgeCount(),
			"lines", n.LineNames(),
			"source", sourceName(cfg.Network.File))
	}

	return NewRouter(p, Options{Mode: cfg.Server.Mode, CORS: cfg.CORS, Logger: log}), nil
}

func sourceName(file string) string {
	if file == "" {
		return "embedded"
	}

	return file
}
