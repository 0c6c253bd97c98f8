// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() reports each undirected edge once, in vertex order then adjacency order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
)

// validWeight reports whether w is a finite, non-negative edge length.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

// AddEdge connects from and to with an undirected edge of the given weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Append to→from mirror pair at the end of both adjacency lists.
//
// Complexity: O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return fmt.Errorf("%w: %s–%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, nb := range g.adjacency[from] {
		if nb.ID == to {
			return fmt.Errorf("%w: %s–%s", ErrMultiEdgeNotAllowed, from, to)
		}
	}

	// 4) Link both directions
	g.adjacency[from] = append(g.adjacency[from], Neighbor{ID: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Neighbor{ID: from, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the edge between from and to.
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, nb := range g.adjacency[from] {
		if nb.ID == to {
			return nb.Weight, true
		}
	}

	return 0, false
}

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge once. An edge is reported from the endpoint
// that comes first in vertex order, so the result is stable for a given graph.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for i, id := range g.order {
		for _, nb := range g.adjacency[id] {
			if g.index[nb.ID] > i {
				out = append(out, Edge{From: id, To: nb.ID, Weight: nb.Weight})
			}
		}
	}

	return out
}

// TotalWeight returns the sum of every stored adjacency weight divided by two:
// each undirected edge is stored twice, once per endpoint.
//
// Weights are summed per vertex first, in vertex then adjacency order, and the
// per-vertex sums are then accumulated, so the floating-point result is
// reproducible for a given graph.
// Complexity: O(V + E).
func (g *Graph) TotalWeight() float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var total float64
	for _, id := range g.order {
		var local float64
		for _, nb := range g.adjacency[id] {
			local += nb.Weight
		}
		total += local
	}

	return total / 2
}
