// SPDX-License-Identifier: MIT

// Package dijkstra finds the minimum-distance route between two stations of
// an undirected station graph whose segment lengths are non-negative kilometres.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from one start station and stops as
//     soon as the destination is finalized.
//   - The frontier is a container/heap min-heap with lazy decrease-key.
//
// Determinism:
//
//   - Neighbors are relaxed in the graph's adjacency order.
//   - Equal tentative distances are served in push order, so among equal-weight
//     routes the one discovered first wins. Results are reproducible run to run
//     and independent of MemoryMode.
//   - Distances are accumulated edge by edge along the path in float64.
//
// Failure signalling:
//
//   - A missing start or destination and an unreachable destination are not
//     errors: Result.Path is nil and Result.Distance is +Inf.
//   - ErrNilGraph is returned for a nil graph.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) in MemoryModeCompact; MemoryModeFull also keeps one path per heap entry.
package dijkstra
