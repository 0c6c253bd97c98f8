// SPDX-License-Identifier: MIT

// Package network loads a transit dataset (station directory, routable graph,
// line membership and code aliases) from YAML and validates it into an
// immutable Network.
//
// The Jakarta MRT dataset is embedded and returned by Default. Load reads an
// alternative dataset with the same layout:
//
//	stations:
//	  - {code: BNR, name: Bundaran HI, lines: [blue], coordinate: {lat: -6.19, lon: 106.82}}
//	graph:
//	  - {code: BNR, neighbors: [{to: DKT, km: 1.8}]}
//	  - {code: DKT, neighbors: [{to: BNR, km: 1.8}]}
//	lines:
//	  blue: [BNR, DKT]
//	aliases:
//	  BHI: BNR
//
// The directory and the graph are independent: a code may appear in only one
// of them. Every failure is reported as ErrInvalidNetwork wrapping the cause.
package network
