// SPDX-License-Identifier: MIT

package planner

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/catalog"
	"github.com/katalvlaran/railnet/fare"
)

// Sentinel errors returned by Planner.
var (
	// ErrNilNetwork is returned by New for a nil network.
	ErrNilNetwork = errors.New("planner: network is nil")

	// ErrMissingStation is returned when an origin or destination is empty.
	ErrMissingStation = errors.New("planner: missing 'from' or 'to' station")

	// ErrUnknownStation is wrapped by *StationError.
	ErrUnknownStation = errors.New("planner: invalid station code")

	// ErrNoRoute is returned when no weighted path joins the two stations.
	ErrNoRoute = errors.New("planner: no route found")

	// ErrInternal wraps failures that are not the caller's fault, including
	// recovered panics.
	ErrInternal = errors.New("planner: internal error")
)

// Algorithm labels reported alongside results.
const (
	AlgorithmShortest = "Dijkstra (shortest distance)"
	AlgorithmFewest   = "BFS (minimum transfers)"
	AlgorithmAllPairs = "Dijkstra (all-pairs shortest path)"
)

// Defaults for the caches.
const (
	DefaultRouteCacheSize = 512
	DefaultAnalysisTTL    = 10 * time.Minute
)

// StationError reports an input code that resolves to no station of the graph.
type StationError struct {
	Role string // "from" or "to"
	Code string // the code as received, after trimming
}

func (e *StationError) Error() string {
	return fmt.Sprintf("planner: invalid %s station code %q", e.Role, e.Code)
}

// Unwrap makes errors.Is(err, ErrUnknownStation) hold.
func (e *StationError) Unwrap() error { return ErrUnknownStation }

// Endpoint names one end of a route.
type Endpoint struct {
	Code string `json:"code"`
	Name string `json:"name"`
	// ResolvedBy is set when Code was reached through an alias or a prefix
	// rather than typed exactly.
	ResolvedBy string `json:"resolved_by,omitempty"`
}

// ShortestLeg is the minimum-distance route and its metrics.
// DistanceKm is rounded to two decimals; PriceIDR is computed from the
// unrounded distance.
type ShortestLeg struct {
	Path              []string `json:"path"`
	Stations          []string `json:"stations"`
	DistanceKm        float64  `json:"distance_km"`
	TravelTimeMinutes int      `json:"travel_time_minutes"`
	PriceIDR          int      `json:"price_idr"`
	LineChanges       int      `json:"line_changes"`
}

// FewestLeg is the fewest-hops route and its metrics. Transfers counts hops.
type FewestLeg struct {
	Path              []string `json:"path"`
	Stations          []string `json:"stations"`
	Transfers         int      `json:"transfers"`
	TravelTimeMinutes int      `json:"travel_time_minutes"`
	LineChanges       int      `json:"line_changes"`
}

// Route is the answer to one routing query.
type Route struct {
	From     Endpoint    `json:"from"`
	To       Endpoint    `json:"to"`
	Shortest ShortestLeg `json:"shortest_distance"`
	Fewest   FewestLeg   `json:"min_transfers"`
	// StraightLineKm is the great-circle distance, when both stations have
	// catalog coordinates.
	StraightLineKm *float64 `json:"straight_line_km,omitempty"`
	Algorithms     []string `json:"-"`
}

// DiameterInfo is the longest shortest route of the network.
type DiameterInfo struct {
	LongestRoute []string `json:"longest_route"`
	DistanceKm   float64  `json:"distance_km"`
}

// NetworkReport is the rounded whole-network summary.
type NetworkReport struct {
	TotalStations int          `json:"total_stations"`
	TotalLengthKm float64      `json:"total_length_km"`
	Diameter      DiameterInfo `json:"network_diameter"`
	Algorithms    []string     `json:"-"`
}

// StationInfo is one row of the station listing: every catalog station and
// every graph station, with whether it is routable.
type StationInfo struct {
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	City       string              `json:"city,omitempty"`
	Transfer   bool                `json:"is_transfer"`
	InNetwork  bool                `json:"in_network"`
	Lines      []string            `json:"lines"`
	Coordinate *catalog.Coordinate `json:"coordinate,omitempty"`
}

// Option configures a Planner.
type Option func(*Planner)

// WithTariff replaces fare.DefaultTariff().
func WithTariff(t fare.Tariff) Option {
	return func(p *Planner) { p.tariff = t }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithRouteCacheSize bounds the route LRU. A size <= 0 disables route caching.
func WithRouteCacheSize(n int) Option {
	return func(p *Planner) { p.routeCacheSize = n }
}

// WithAnalysisTTL sets how long a NetworkReport is reused.
// A ttl <= 0 keeps it for the life of the Planner.
func WithAnalysisTTL(ttl time.Duration) Option {
	return func(p *Planner) { p.analysisTTL = ttl }
}
