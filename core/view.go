// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Induced keeps the source's vertex order and adjacency order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Induced returns the subgraph of g on the vertices listed in keep: every kept
// vertex plus every edge whose endpoints are both kept. Unknown IDs in keep are
// ignored. The input graph is not mutated.
//
// Complexity: O(V + E).
func Induced(g *Graph, keep []string) *Graph {
	want := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		want[id] = struct{}{}
	}

	out := NewGraph(WithCapacity(len(want)))

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	entries := 0
	for _, id := range g.order {
		if _, ok := want[id]; !ok {
			continue
		}
		out.index[id] = len(out.order)
		out.order = append(out.order, id)

		var list []Neighbor
		for _, nb := range g.adjacency[id] {
			if _, ok := want[nb.ID]; ok {
				list = append(list, nb)
			}
		}
		out.adjacency[id] = list
		entries += len(list)
	}
	out.edgeCount = entries / 2

	return out
}
