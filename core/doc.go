// SPDX-License-Identifier: MIT

// Package core provides the immutable-after-construction, undirected, weighted
// graph that every railnet algorithm reads.
//
// The Graph G = (V,E) models a transit network:
//
//   - Vertices are station codes, kept in insertion order.
//   - Edges are undirected; each one is stored as two adjacency entries
//     (A→B and B→A) with equal weight, in kilometres.
//   - Weights are finite and non-negative; self-loops and parallel edges are rejected.
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Two ways to build a graph:
//
//	// incremental, mirrors added for you
//	g := core.NewGraph()
//	_ = g.AddEdge("BNR", "DKT", 1.8)
//
//	// from a fixed, already mirrored table (startup datasets)
//	g, err := core.FromAdjacency(order, adj)
//
// FromAdjacency rejects dangling neighbors and unmirrored entries so that a broken
// dataset fails the process at startup instead of producing wrong routes later.
//
// Determinism:
//
//	Vertices(), Neighbors(), Edges() and TotalWeight() depend only on insertion
//	order, never on map iteration, so every algorithm built on top of the graph
//	returns bit-identical results for identical input.
//
// Core Methods:
//
//	AddVertex(id string) error                   // O(1)
//	AddEdge(from, to string, w float64) error     // O(deg)
//	HasVertex(id string) bool                     // O(1)
//	Neighbors(id string) ([]Neighbor, error)      // O(deg)
//	Vertices() []string                           // O(V)
//	Edges() []Edge                                // O(V+E)
//	TotalWeight() float64                         // O(V+E)
//	Induced(g, keep) *Graph                       // O(V+E)
package core
