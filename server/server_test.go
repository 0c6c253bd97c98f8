// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/planner"
	"github.com/katalvlaran/railnet/server"
)

func newRouter(t *testing.T, n *network.Network, logBuf *bytes.Buffer) *gin.Engine {
	t.Helper()
	if n == nil {
		var err error
		n, err = network.Default()
		require.NoError(t, err)
	}
	p, err := planner.New(n)
	require.NoError(t, err)

	opts := server.Options{Mode: gin.TestMode, CORS: config.Default().CORS}
	if logBuf != nil {
		opts.Logger, err = logging.New(logging.Options{Format: logging.FormatJSON, Output: logBuf})
		require.NoError(t, err)
	}

	return server.NewRouter(p, opts)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec, out
}

func TestLiveness(t *testing.T) {
	r := newRouter(t, nil, nil)

	rec, body := do(t, r, http.MethodGet, "/api/python", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, World!", body["message"])

	rec, body = do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, 21.0, body["stations"])
}

func TestShortestRoute(t *testing.T) {
	r := newRouter(t, nil, nil)

	rec, body := do(t, r, http.MethodPost, "/api/shortest-route", `{"from":"BNR","to":"LEB"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	route := body["route"].(map[string]any)
	assert.Equal(t, map[string]any{"code": "BNR", "name": "Bundaran HI"}, route["from"])
	assert.Equal(t, map[string]any{"code": "LEB", "name": "Lebak Bulus Grab"}, route["to"])
	assert.Equal(t, 12.1, route["straight_line_km"])

	short := route["shortest_distance"].(map[string]any)
	assert.Equal(t, 16.1, short["distance_km"])
	assert.Equal(t, 35200.0, short["price_idr"])
	assert.Equal(t, 48.0, short["travel_time_minutes"])
	assert.Equal(t, 2.0, short["line_changes"])
	assert.Len(t, short["path"], 11)
	assert.Len(t, short["stations"], 11)

	fewest := route["min_transfers"].(map[string]any)
	assert.Equal(t, 10.0, fewest["transfers"])
	assert.Equal(t, 50.0, fewest["travel_time_minutes"])

	assert.Equal(t, []any{planner.AlgorithmShortest, planner.AlgorithmFewest}, body["algorithm_used"])
}

func TestShortestRoute_Errors(t *testing.T) {
	r := newRouter(t, nil, nil)
	cases := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"malformed", `{"from":`, http.StatusBadRequest, "invalid request body"},
		{"missing to", `{"from":"BNR"}`, http.StatusBadRequest, "Missing 'from' or 'to' station"},
		{"blank from", `{"from":"  ","to":"LEB"}`, http.StatusBadRequest, "Missing 'from' or 'to' station"},
		{"catalog-only station", `{"from":"TAN","to":"LEB"}`, http.StatusBadRequest, "Invalid station code"},
		{"unknown station", `{"from":"BNR","to":"ZZZ"}`, http.StatusBadRequest, "Invalid station code"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := do(t, r, http.MethodPost, "/api/shortest-route", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.msg, body["error"])
		})
	}
}

func TestShortestRoute_NoRoute(t *testing.T) {
	n, err := network.Parse([]byte(`
stations: [{code: AA, name: Alpha}]
graph:
  - {code: AA, neighbors: []}
  - {code: BB, neighbors: []}
`))
	require.NoError(t, err)
	r := newRouter(t, n, nil)

	rec, body := do(t, r, http.MethodPost, "/api/shortest-route", `{"from":"AA","to":"BB"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No route found", body["error"])
}

func TestNetworkAnalysis(t *testing.T) {
	r := newRouter(t, nil, nil)

	rec, body := do(t, r, http.MethodGet, "/api/network-analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := body["network_stats"].(map[string]any)
	assert.Equal(t, 21.0, stats["total_stations"])
	assert.Equal(t, 32.7, stats["total_length_km"])
	diameter := stats["network_diameter"].(map[string]any)
	assert.Equal(t, 17.5, diameter["distance_km"])
	assert.Len(t, diameter["longest_route"], 11)
	assert.Equal(t, []any{planner.AlgorithmAllPairs}, body["algorithms_used"])
}

func TestStations(t *testing.T) {
	r := newRouter(t, nil, nil)

	rec, body := do(t, r, http.MethodGet, "/api/stations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 29.0, body["count"])

	rows := body["stations"].([]any)
	first := rows[0].(map[string]any)
	assert.Equal(t, "LEB", first["code"])
	assert.Equal(t, true, first["in_network"])
	assert.Contains(t, first, "coordinate")
}

func TestNotFoundAndPanic(t *testing.T) {
	var logs bytes.Buffer
	r := newRouter(t, nil, &logs)
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec, body := do(t, r, http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", body["error"])

	rec, body = do(t, r, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, "kaboom", body["details"])
	assert.Contains(t, logs.String(), "handler panicked")
}

func TestRequestLogging(t *testing.T) {
	var logs bytes.Buffer
	r := newRouter(t, nil, &logs)

	rec, _ := do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), `"msg":"request"`)
	assert.Contains(t, logs.String(), `"path":"/health"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

func TestCORS(t *testing.T) {
	r := newRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/shortest-route", nil)
	req.Header.Set("Origin", "https://mrt.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	n, err := network.Default()
	require.NoError(t, err)
	p, err := planner.New(n)
	require.NoError(t, err)
	restricted := server.NewRouter(p, server.Options{
		Mode: gin.TestMode,
		CORS: config.CORS{AllowOrigins: []string{"https://mrt.example"}, AllowMethods: []string{"GET", "POST"}},
	})

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://mrt.example")
	rec = httptest.NewRecorder()
	restricted.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://mrt.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	restricted.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
