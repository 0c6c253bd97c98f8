// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and NeighborIDs() follow edge insertion order.
//   - AdjacencyList() preserves both vertex and neighbor order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

// Neighbors returns a copy of the ordered adjacency list of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}

	src := g.adjacency[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, in adjacency order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// AdjacencyList returns a deep copy of the adjacency table together with the
// vertex order, the same shape FromAdjacency accepts.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() ([]string, map[string][]Neighbor) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	order := make([]string, len(g.order))
	copy(order, g.order)

	adj := make(map[string][]Neighbor, len(g.adjacency))
	for id, nbs := range g.adjacency {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		adj[id] = cp
	}

	return order, adj
}
