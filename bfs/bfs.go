// SPDX-License-Identifier: MIT

// File: bfs.go
// Role: fewest-segment route search; segment lengths are ignored.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
)

// queueItem pairs a station with the path that first reached it.
type queueItem struct {
	id   string
	path []string
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	end     string
	queue   []queueItem
	visited map[string]bool
}

// FewestHops runs breadth-first search on g from start and returns the first
// path that reaches end.
//
// Neighbors are expanded in adjacency order and a station is marked visited
// when it is enqueued, so the returned path is the lexicographically earliest
// shortest path with respect to adjacency order.
//
// Returns Result{nil, -1} when start or end is absent or end is unreachable,
// ErrGraphNil for a nil graph, and the context error on cancellation.
//
// Complexity: O(V + E) queue work plus O(V · L) for the carried paths.
func FewestHops(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	if g == nil {
		return noPath(), ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return noPath(), nil
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
	}
	w.enqueue(start, []string{start})

	return w.loop()
}

// enqueue marks id visited and appends it with its path.
func (w *walker) enqueue(id string, path []string) {
	w.visited[id] = true
	w.queue = append(w.queue, queueItem{id: id, path: path})
}

// loop processes the queue until the target is dequeued, the queue drains,
// or the context is cancelled.
func (w *walker) loop() (Result, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return noPath(), w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.id == w.end {
			return Result{Path: item.path, Hops: len(item.path) - 1}, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return noPath(), err
		}
	}

	return noPath(), nil
}

// enqueueNeighbors enqueues every unseen neighbor of item with its extended path.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		path := make([]string, len(item.path)+1)
		copy(path, item.path)
		path[len(item.path)] = nbr
		w.enqueue(nbr, path)
	}

	return nil
}
