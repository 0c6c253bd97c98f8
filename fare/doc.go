// SPDX-License-Identifier: MIT

// Package fare derives journey metrics from a route: travel time in minutes,
// ticket price in Indonesian rupiah, and the number of line changes.
//
// The time model is deliberately simple and kept for compatibility with the
// published API:
//
//	weighted route:   (L-1)·MinutesPerHop + max(0, L-2)·InterchangeMinutes
//	fewest-hops route: (L-1)·MinutesPerHop + transfers·InterchangeMinutes
//
// where L is the number of stations on the path. Every intermediate stop is
// charged as an interchange. LineChanges counts real changes between lines and
// is reported next to these figures.
//
// Price: BaseFareIDR + trunc(km · FarePerKmIDR).
package fare
