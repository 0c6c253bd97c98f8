// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Neighbor, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards the vertex catalog (order + index).
//   - muEdgeAdj guards adjacency lists and the edge counter.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty station code.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Transit graphs never contain them.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two stations.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDanglingNeighbor indicates an adjacency entry pointing at a code that is not a vertex.
	ErrDanglingNeighbor = errors.New("core: neighbor is not a vertex")

	// ErrAsymmetricEdge indicates an adjacency entry A→B without a mirror B→A of equal weight.
	ErrAsymmetricEdge = errors.New("core: edge is not mirrored with equal weight")

	// ErrDuplicateVertex indicates a vertex listed twice in an adjacency table.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")
)

// Neighbor is one directed adjacency entry: the station reached and the edge weight (km).
type Neighbor struct {
	// ID is the neighboring station code.
	ID string

	// Weight is the edge length in kilometres.
	Weight float64
}

// Edge is an undirected connection between two stations, reported once per pair.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog and adjacency map for n stations.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is an undirected weighted graph over station codes.
//
// Vertices keep their insertion order and every vertex keeps its neighbors in the
// order the edges were added. Both orders are part of the contract: search tie-breaks
// and the resolver's prefix scan depend on them.
//
// A Graph is meant to be built once at startup and read afterwards; reads take
// only read locks and can run from any number of goroutines.
type Graph struct {
	muVert    sync.RWMutex // guards order and index
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	capacity int

	order []string       // vertices in insertion order
	index map[string]int // vertex ID → position in order

	// adjacency[id] is the ordered neighbor list of id; undirected edges appear in both lists.
	adjacency map[string][]Neighbor
	edgeCount int
}

// NewGraph creates an empty undirected graph.
// Complexity: O(1) plus the optional capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.order = make([]string, 0, g.capacity)
	g.index = make(map[string]int, g.capacity)
	g.adjacency = make(map[string][]Neighbor, g.capacity)

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	TotalWeight float64
	MaxDegree   int
	Isolated    int // vertices without any neighbor
}
