// SPDX-License-Identifier: MIT

// File: dijkstra.go
// Role: point-to-point Dijkstra search over a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work, plus O(L) per push in MemoryModeFull
//     where L is the length of the carried path.
//   - Space: O(V + E) in MemoryModeCompact; O(E · L) in MemoryModeFull.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The search stops as soon as the target is finalized.
//   - Heap entries are ordered by (distance, push sequence): equal distances leave the
//     heap in the order they were pushed, so ties are resolved by insertion order.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/railnet/core"
)

// ShortestPath returns the minimum-weight path from start to end in g.
//
// Returns:
//
//   - Result{Path, Distance} on success; Path[0] == start, Path[len-1] == end.
//   - Result{nil, +Inf} when start or end is not a vertex, or end is unreachable.
//   - err: ErrNilGraph for a nil graph, or a wrapped core error (should not happen
//     on a graph that is not mutated during the search).
//
// The search is a pure function of (g, start, end, opts): repeated calls return
// bit-identical results.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return noPath(), ErrNilGraph
	}

	// 3) Absent endpoints have no path
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return noPath(), nil
	}

	// 4) Prepare runner and run the main loop.
	r := newRunner(g, cfg, end)
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph        // The input graph; read-only within the search.
	options Options            // Configuration options.
	end     string             // Target station.
	dist    map[string]float64 // Best-known distance from start.
	prev    map[string]string  // Predecessors (MemoryModeCompact only).
	visited map[string]bool    // Finalized stations.
	pq      frontier           // Min-heap keyed by (dist, seq).
	seq     uint64             // Push counter for the tie-break.
}

func newRunner(g *core.Graph, cfg Options, end string) *runner {
	v := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		dist:    make(map[string]float64, v),
		visited: make(map[string]bool, v),
		pq:      make(frontier, 0, v),
	}
	if cfg.MemoryMode == MemoryModeCompact {
		r.prev = make(map[string]string, v)
	}

	return r
}

// init sets dist[v] = +Inf for every vertex, dist[start] = 0 and pushes start.
func (r *runner) init(start string) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	item := &frontierItem{id: start, dist: 0}
	if r.prev == nil {
		item.path = []string{start}
	}
	r.push(item)
}

// process repeatedly extracts the closest unfinalized station, returns as soon
// as it is the target, and otherwise relaxes its edges.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*frontierItem)

		// 2) Skip stale entries of finalized stations.
		if r.visited[item.id] {
			continue
		}

		// 3) Finalize.
		r.visited[item.id] = true

		// 4) Early exit on the target.
		if item.id == r.end {
			return Result{Path: r.pathOf(item), Distance: item.dist}, nil
		}

		// 5) Relax outgoing edges.
		if err := r.relax(item); err != nil {
			return noPath(), err
		}
	}

	return noPath(), nil
}

// relax examines every neighbor of item and pushes an entry for each strict improvement.
func (r *runner) relax(item *frontierItem) error {
	neighbors, err := r.g.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", item.id, err)
	}

	var newDist float64
	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}

		newDist = item.dist + nb.Weight
		// Strictly better only; equal distances keep the earlier entry.
		if newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist

		next := &frontierItem{id: nb.ID, dist: newDist}
		if r.prev != nil {
			r.prev[nb.ID] = item.id
		} else {
			next.path = make([]string, len(item.path)+1)
			copy(next.path, item.path)
			next.path[len(item.path)] = nb.ID
		}
		r.push(next)
	}

	return nil
}

// push stamps item with the next sequence number and adds it to the heap.
func (r *runner) push(item *frontierItem) {
	item.seq = r.seq
	r.seq++
	heap.Push(&r.pq, item)
}

// pathOf returns the path that reached item, rebuilding it from prev in compact mode.
func (r *runner) pathOf(item *frontierItem) []string {
	if r.prev == nil {
		return item.path
	}

	path := []string{item.id}
	for cur := item.id; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierItem is a station with its tentative distance, push sequence and,
// in MemoryModeFull, the path that produced that distance.
type frontierItem struct {
	id   string
	dist float64
	seq  uint64
	path []string
}

// frontier is a min-heap of *frontierItem ordered by (dist, seq).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
