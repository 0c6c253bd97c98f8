// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/planner"
)

type handler struct {
	planner *planner.Planner
	log     *slog.Logger
}

type routeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"stations": h.planner.Network().Graph.VertexCount(),
	})
}

func (h *handler) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

func (h *handler) shortestRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	route, err := h.planner.Route(c.Request.Context(), req.From, req.To)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"route":          route,
		"algorithm_used": route.Algorithms,
	})
}

func (h *handler) networkAnalysis(c *gin.Context) {
	rep, err := h.planner.Analyze(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"network_stats":   rep,
		"algorithms_used": rep.Algorithms,
	})
}

func (h *handler) stations(c *gin.Context) {
	rows := h.planner.Stations()
	c.JSON(http.StatusOK, gin.H{
		"stations": rows,
		"count":    len(rows),
	})
}

// fail maps planner errors onto status codes.
func (h *handler) fail(c *gin.Context, err error) {
	var se *planner.StationError
	switch {
	case errors.Is(err, planner.ErrMissingStation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'from' or 'to' station"})
	case errors.As(err, &se):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station code", "station": se.Code})
	case errors.Is(err, planner.ErrNoRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": "No route found"})
	default:
		h.log.Error("request failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": err.Error(),
		})
	}
}
