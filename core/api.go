// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Table-driven constructor (FromAdjacency) and read-only Stats snapshot.
// Policy:
//   - FromAdjacency is the startup path for fixed datasets: it validates every
//     invariant of the adjacency table and keeps its order exactly.

package core

import "fmt"

// FromAdjacency builds a Graph from an explicit, already mirrored adjacency table.
//
// order fixes the vertex iteration order; adj[id] lists the neighbors of id in the
// order they must be explored. Every undirected edge therefore appears twice, once
// in each endpoint's list, with equal weight.
//
// Validation (first failure wins):
//  1. Vertex IDs are non-empty (ErrEmptyVertexID) and unique (ErrDuplicateVertex).
//  2. adj has no list for a vertex missing from order (ErrVertexNotFound).
//  3. Each entry has a finite, non-negative weight (ErrBadWeight), is not a
//     self-loop (ErrLoopNotAllowed), points at a vertex (ErrDanglingNeighbor)
//     and is not repeated in the same list (ErrMultiEdgeNotAllowed).
//  4. Each entry A→B has a mirror B→A of equal weight (ErrAsymmetricEdge).
//
// Complexity: O(V + E·d) where d is the maximum degree.
func FromAdjacency(order []string, adj map[string][]Neighbor) (*Graph, error) {
	g := NewGraph(WithCapacity(len(order)))

	// 1) Vertex catalog
	for _, id := range order {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateVertex, id)
		}
		g.index[id] = len(g.order)
		g.order = append(g.order, id)
	}

	// 2) No adjacency for unlisted vertices
	for id := range adj {
		if _, ok := g.index[id]; !ok {
			return nil, fmt.Errorf("%w: adjacency listed for %q", ErrVertexNotFound, id)
		}
	}

	// 3) Per-entry checks
	entries := 0
	for _, id := range order {
		seen := make(map[string]struct{}, len(adj[id]))
		for _, nb := range adj[id] {
			if !validWeight(nb.Weight) {
				return nil, fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, id, nb.ID, nb.Weight)
			}
			if nb.ID == id {
				return nil, fmt.Errorf("%w: %s", ErrLoopNotAllowed, id)
			}
			if _, ok := g.index[nb.ID]; !ok {
				return nil, fmt.Errorf("%w: %s→%s", ErrDanglingNeighbor, id, nb.ID)
			}
			if _, dup := seen[nb.ID]; dup {
				return nil, fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, id, nb.ID)
			}
			seen[nb.ID] = struct{}{}

			// 4) Mirror check
			if !hasMirror(adj[nb.ID], id, nb.Weight) {
				return nil, fmt.Errorf("%w: %s→%s (%v)", ErrAsymmetricEdge, id, nb.ID, nb.Weight)
			}
		}

		list := make([]Neighbor, len(adj[id]))
		copy(list, adj[id])
		g.adjacency[id] = list
		entries += len(list)
	}
	g.edgeCount = entries / 2

	return g, nil
}

// hasMirror reports whether list contains back with exactly weight w.
func hasMirror(list []Neighbor, back string, w float64) bool {
	for _, nb := range list {
		if nb.ID == back {
			return nb.Weight == w
		}
	}

	return false
}

// Stats produces a read-only snapshot of catalog sizes and degree figures.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	order := make([]string, len(g.order))
	copy(order, g.order)
	g.muVert.RUnlock()

	stats := GraphStats{VertexCount: len(order)}

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	var total float64
	for _, id := range order {
		nbs := g.adjacency[id]
		if len(nbs) == 0 {
			stats.Isolated++
		}
		if len(nbs) > stats.MaxDegree {
			stats.MaxDegree = len(nbs)
		}
		var local float64
		for _, nb := range nbs {
			local += nb.Weight
		}
		total += local
	}
	g.muEdgeAdj.RUnlock()
	stats.TotalWeight = total / 2

	return &stats
}
