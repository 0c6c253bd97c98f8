// SPDX-License-Identifier: MIT

// Package analysis computes whole-network statistics: station count, total
// track length and the diameter (the longest shortest route).
//
// Complexity: V·(V-1)/2 point-to-point searches, O(V² (V+E) log V) overall.
// Fine for a metro network; the caller caches the Report.
package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dijkstra"
)

// Analyze returns the Report for g.
//
// Pairs (i, j) with i < j are visited in vertex order. The diameter starts at
// 0 with an empty path and is replaced only by a strictly longer distance, so
// the first pair reaching the maximum wins. Unreachable pairs are skipped.
// A graph without edges reports an empty diameter path and 0 km.
func Analyze(g *core.Graph) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}

	vs := g.Vertices()
	rep := Report{
		TotalStations: len(vs),
		TotalLengthKm: g.TotalWeight(),
		Diameter:      Diameter{Path: []string{}},
	}

	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			res, err := dijkstra.ShortestPath(g, vs[i], vs[j])
			if err != nil {
				return Report{}, fmt.Errorf("analysis: %s→%s: %w", vs[i], vs[j], err)
			}
			if math.IsInf(res.Distance, 1) {
				continue
			}
			if res.Distance > rep.Diameter.DistanceKm {
				rep.Diameter = Diameter{Path: res.Path, DistanceKm: res.Distance}
			}
		}
	}

	return rep, nil
}
