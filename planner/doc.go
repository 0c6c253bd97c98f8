// SPDX-License-Identifier: MIT

// Package planner answers journey and network queries over a loaded
// network.Network. It is the boundary between request handling and the
// algorithm packages.
//
// A Route query resolves both codes (resolver), finds the minimum-distance
// route (dijkstra) and the fewest-hops route (bfs), and prices both with a
// fare.Tariff. The Analyze query runs analysis.Analyze.
//
// Caching:
//
//   - Routes are memoised per resolved station pair in a bounded LRU
//     (github.com/bluele/gcache).
//   - The network report is memoised with a TTL (github.com/patrickmn/go-cache).
//
// The network never changes after loading, so a cached answer is never stale;
// the bounds only limit memory.
//
// Errors:
//
//   - ErrMissingStation: an empty origin or destination.
//   - *StationError (errors.Is ErrUnknownStation): a code that resolves to no station.
//   - ErrNoRoute: the stations are not connected.
//   - ErrInternal: anything else, including a recovered panic.
package planner
