// SPDX-License-Identifier: MIT

// Package builder assembles synthetic station networks for tests and
// experiments: chains, loops, hubs, fully meshed cores, street grids and
// random sparse networks, all as *core.Graph values with kilometre weights.
//
// The package offers the following key components:
//
//   - BuildGraph: the single entry point; applies Constructors in order.
//   - Topologies (Constructor factories):
//     – Path(n):          a single line of n stations.
//     – Cycle(n):         a loop line.
//     – Star(n):          one hub with n-1 spurs.
//     – Complete(n):      every pair of stations connected.
//     – Grid(rows, cols): 4-neighbour grid with IDs "r,c".
//     – RandomSparse(n, p): independent links with probability p.
//   - Station-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - Segment-length distributions (WeightFn): ConstantWeightFn, UniformWeightFn,
//     TenthKmWeightFn (uniform, rounded to 0.1 km like a timetable listing).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     including vertex and adjacency order.
//   - Constructors never panic; option constructors (With*) panic on meaningless input.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithIDPrefix("S"), builder.WithConstantWeight(1.5)},
//	    builder.Path(5))
package builder
