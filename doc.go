// SPDX-License-Identifier: MIT

// Package railnet is a transit routing engine for metro networks, shipped
// with the Jakarta MRT dataset.
//
// Given two station codes it answers with the minimum-distance route
// (Dijkstra) and the fewest-stops route (BFS), each with journey time, fare
// and line changes. It also reports network-wide figures: station count,
// total track length and the diameter.
//
// Layout:
//
//	core/      undirected weighted station graph
//	catalog/   station directory: names, lines, coordinates, great-circle distance
//	network/   YAML dataset loader (embedded Jakarta network)
//	resolver/  code resolution: exact, alias, prefix
//	dijkstra/  minimum-distance search
//	bfs/       fewest-hops search
//	fare/      journey time, price and line changes
//	analysis/  total length and diameter
//	planner/   query orchestration with caching
//	server/    gin HTTP API
//	config/    YAML + environment configuration
//	logging/   structured logger construction
//	builder/   synthetic topologies for tests and benchmarks
//	cmd/railnet, api/  process and serverless entry points
package railnet
