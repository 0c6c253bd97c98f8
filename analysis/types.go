// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"math"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to Analyze.
var ErrNilGraph = errors.New("analysis: graph is nil")

// Diameter is the longest of all pairwise shortest routes.
type Diameter struct {
	Path       []string
	DistanceKm float64
}

// Report summarises a network.
type Report struct {
	TotalStations int
	TotalLengthKm float64
	Diameter      Diameter
}

// Round2 rounds x to two decimals, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
