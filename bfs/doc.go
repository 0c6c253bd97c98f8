// SPDX-License-Identifier: MIT

// Package bfs implements the minimum-segment route search used for the
// "fewest transfers" alternative of a journey.
//
// Every segment counts as one hop regardless of its length. Only the graph's
// adjacency structure and order are read; weights are ignored.
//
// API:
//
//	res, err := bfs.FewestHops(g, "HI", "CLW")
//	// res.Path == [HI BNR DKT KUN PAN CKK CLW], res.Hops == 6
//
// Options:
//
//   - WithContext(ctx): abort a long search on cancellation or deadline.
//
// Errors:
//
//   - ErrGraphNil:  g is nil.
//   - ErrNeighbors: the graph failed to list a station's neighbors.
//
// Complexity: O(V + E) time; paths are carried per queue entry, so memory is
// O(V · L) for a longest path of L stations.
package bfs
