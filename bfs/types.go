// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures FewestHops via functional arguments.
type Option func(*Options)

// Options holds parameters for a FewestHops call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued station.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is the outcome of a fewest-hops search.
//
// Hops equals len(Path)-1 when a path exists. Without a path, Path is nil and Hops is -1.
type Result struct {
	Path []string
	Hops int
}

// Found reports whether the search reached its target.
func (r Result) Found() bool { return len(r.Path) > 0 }

func noPath() Result { return Result{Path: nil, Hops: -1} }
