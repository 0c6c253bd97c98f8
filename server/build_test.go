// SPDX-License-Identifier: MIT
package server_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/server"
)

func TestBuild(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.Tariff.BaseFareIDR = 1000

	r, err := server.Build(&cfg, logging.Discard())
	require.NoError(t, err)

	rec, body := do(t, r, http.MethodPost, "/api/shortest-route", `{"from":"DKT","to":"BLM"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	short := body["route"].(map[string]any)["shortest_distance"].(map[string]any)
	assert.Equal(t, 13600.0, short["price_idr"])
}

func TestBuild_NetworkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stations: [{code: AA, name: Alpha}, {code: BB, name: Beta}]
graph:
  - {code: AA, neighbors: [{to: BB, km: 2}]}
  - {code: BB, neighbors: [{to: AA, km: 2}]}
`), 0o600))

	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.Network.File = path

	r, err := server.Build(&cfg, nil)
	require.NoError(t, err)
	rec, body := do(t, r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, body["stations"])

	cfg.Network.File = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = server.Build(&cfg, nil)
	require.ErrorIs(t, err, network.ErrInvalidNetwork)
}
