// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for the point-to-point shortest-path search on weighted station graphs.
//
// Options:
//
//	– WithMemoryMode(MemoryModeFull):    frontier entries carry their whole partial path (default).
//	– WithMemoryMode(MemoryModeCompact): frontier entries carry only a station; the path is
//	                                     rebuilt from a predecessor map once the target is final.
//
// Errors (sentinel):
//
//	– ErrNilGraph if the provided graph pointer is nil.
//
// Example usage:
//
//	res, err := ShortestPath(g, "BNR", "LEB")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Printf("%v %.2f km\n", res.Path, res.Distance)
//	}
package dijkstra

import (
	"errors"
	"math"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// MemoryMode controls how paths are stored during the search.
//
// MemoryModeFull    – every frontier entry owns a copy of the path that reached it.
// MemoryModeCompact – a predecessor map replaces the per-entry paths.
//
// Both modes return identical paths, including for equal-weight ties.
type MemoryMode int

const (
	// MemoryModeFull carries whole partial paths through the priority queue.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact stores one predecessor per station and rebuilds the path at the end.
	MemoryModeCompact
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case MemoryModeFull:
		return "full"
	case MemoryModeCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// Options configures the behavior of ShortestPath.
type Options struct {
	MemoryMode MemoryMode // Controls how paths are stored (Full or Compact)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMemoryMode sets the path storage strategy.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// DefaultOptions returns the defaults: MemoryModeFull.
func DefaultOptions() Options {
	return Options{MemoryMode: MemoryModeFull}
}

// Result is the outcome of a point-to-point search.
//
// When no path exists, or either endpoint is not a vertex, Path is nil and
// Distance is +Inf. A path of one station (start == end) has Distance 0.
type Result struct {
	Path     []string
	Distance float64
}

// Found reports whether the search reached its target.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Hops returns the number of edges on the path, or -1 without a path.
func (r Result) Hops() int { return len(r.Path) - 1 }

// noPath is the failure sentinel: empty path and infinite distance.
func noPath() Result {
	return Result{Path: nil, Distance: math.Inf(1)}
}
