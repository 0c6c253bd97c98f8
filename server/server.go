// SPDX-License-Identifier: MIT

// Package server exposes a planner.Planner over HTTP with gin.
//
// Routes:
//
//	GET  /health                 liveness and station count
//	GET  /api/python             hello-world liveness kept for old clients
//	POST /api/shortest-route     {"from": "BNR", "to": "LEB"}
//	GET  /api/network-analysis   diameter and total length
//	GET  /api/stations           station directory
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/planner"
)

// Options configures NewRouter.
type Options struct {
	Mode   string // gin mode; empty leaves the current mode
	CORS   config.CORS
	Logger *slog.Logger
}

// NewRouter returns a gin engine serving p.
func NewRouter(p *planner.Planner, opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	log := logging.OrDiscard(opts.Logger)

	router := gin.New()
	router.Use(recovery(log), requestLogger(log))
	if len(opts.CORS.AllowOrigins) > 0 {
		router.Use(cors.New(corsConfig(opts.CORS)))
	}

	h := &handler{planner: p, log: log}

	router.GET("/health", h.health)
	api := router.Group("/api")
	{
		api.GET("/python", h.hello)
		api.POST("/shortest-route", h.shortestRoute)
		api.GET("/network-analysis", h.networkAnalysis)
		api.GET("/stations", h.stations)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

func corsConfig(c config.CORS) cors.Config {
	cfg := cors.Config{
		AllowMethods: c.AllowMethods,
		AllowHeaders: c.AllowHeaders,
		MaxAge:       c.MaxAge,
	}
	for _, o := range c.AllowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true

			return cfg
		}
	}
	cfg.AllowOrigins = c.AllowOrigins

	return cfg
}

// requestLogger logs one line per request after it is served.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP())
	}
}

// recovery turns a handler panic into a JSON 500.
func recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error("handler panicked", "path", c.Request.URL.Path, "panic", rec)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprint(rec),
		})
	})
}
