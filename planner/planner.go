// SPDX-License-Identifier: MIT

package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bluele/gcache"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/analysis"
	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/dijkstra"
	"github.com/katalvlaran/railnet/fare"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/network"
	"github.com/katalvlaran/railnet/resolver"
)

const analysisKey = "network-analysis"

// Planner answers routing and analysis queries over one immutable Network.
// It is safe for concurrent use.
type Planner struct {
	net      *network.Network
	resolver *resolver.Resolver
	tariff   fare.Tariff
	linesOf  fare.LinesFunc
	log      *slog.Logger

	routeCacheSize int
	analysisTTL    time.Duration
	routes         gcache.Cache // nil when disabled
	reports        *gocache.Cache
}

// New returns a Planner over n. Defaults: fare.DefaultTariff, a discarding
// logger, DefaultRouteCacheSize and DefaultAnalysisTTL.
func New(n *network.Network, opts ...Option) (*Planner, error) {
	if n == nil || n.Graph == nil {
		return nil, ErrNilNetwork
	}

	p := &Planner{
		net:            n,
		tariff:         fare.DefaultTariff(),
		linesOf:        n.LinesOf,
		log:            logging.Discard(),
		routeCacheSize: DefaultRouteCacheSize,
		analysisTTL:    DefaultAnalysisTTL,
	}
	for _, opt := range opts {
		opt(p)
	}

	res, err := resolver.New(n.Graph, n.Catalog, n.Aliases, resolver.WithLogger(p.log))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.resolver = res

	if p.routeCacheSize > 0 {
		p.routes = gcache.New(p.routeCacheSize).LRU().Build()
	}
	if p.analysisTTL > 0 {
		p.reports = gocache.New(p.analysisTTL, 2*p.analysisTTL)
	} else {
		p.reports = gocache.New(gocache.NoExpiration, 0)
	}

	return p, nil
}

// Network returns the network the Planner serves.
func (p *Planner) Network() *network.Network { return p.net }

// Tariff returns the tariff used for times and prices.
func (p *Planner) Tariff() fare.Tariff { return p.tariff }

// Route plans a journey between two station codes.
//
// Steps:
//  1. Trim both codes; an empty one fails with ErrMissingStation.
//  2. Resolve both (exact, alias, prefix); an unresolved code fails with a
//     *StationError.
//  3. Serve from the route cache when possible.
//  4. Run the weighted and the fewest-hops search; no weighted path fails
//     with ErrNoRoute.
//  5. Attach metrics, names and the straight-line distance.
//
// The returned Route is owned by the caller.
func (p *Planner) Route(ctx context.Context, from, to string) (*Route, error) {
	// 1) Validate input.
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, ErrMissingStation
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Resolve codes.
	a := p.resolver.Resolve(from)
	if !a.Resolved() {
		return nil, &StationError{Role: "from", Code: from}
	}
	b := p.resolver.Resolve(to)
	if !b.Resolved() {
		return nil, &StationError{Role: "to", Code: to}
	}

	// 3) Cache.
	key := a.Code + "|" + b.Code
	if r, ok := p.cachedRoute(key); ok {
		return p.withEndpoints(r, a, b), nil
	}

	// 4-5) Compute.
	r, err := p.computeRoute(ctx, a.Code, b.Code)
	if err != nil {
		return nil, err
	}
	p.storeRoute(key, r)

	return p.withEndpoints(r, a, b), nil
}

// computeRoute runs both searches between two graph stations. A panic
// anywhere below is reported as ErrInternal.
func (p *Planner) computeRoute(ctx context.Context, from, to string) (r *Route, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("route computation panicked", "from", from, "to", to, "panic", rec)
			r, err = nil, fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	g := p.net.Graph
	short, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithMemoryMode(dijkstra.MemoryModeCompact))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !short.Found() {
		return nil, ErrNoRoute
	}

	few, err := bfs.FewestHops(g, from, to, bfs.WithContext(ctx))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	r = &Route{
		Shortest: ShortestLeg{
			Path:              short.Path,
			Stations:          p.names(short.Path),
			DistanceKm:        analysis.Round2(short.Distance),
			TravelTimeMinutes: p.tariff.TravelTimeMinutes(len(short.Path)),
			PriceIDR:          p.tariff.PriceIDR(short.Distance),
			LineChanges:       fare.LineChanges(short.Path, p.linesOf),
		},
		Fewest: FewestLeg{
			Path:              few.Path,
			Stations:          p.names(few.Path),
			Transfers:         few.Hops,
			TravelTimeMinutes: p.tariff.TransferTravelTimeMinutes(len(few.Path), few.Hops),
			LineChanges:       fare.LineChanges(few.Path, p.linesOf),
		},
		Algorithms: []string{AlgorithmShortest, AlgorithmFewest},
	}
	if km, ok := p.net.Catalog.Distance(from, to); ok {
		km = analysis.Round2(km)
		r.StraightLineKm = &km
	}
	p.log.Debug("route computed",
		"from", from, "to", to,
		"distance_km", r.Shortest.DistanceKm, "hops", few.Hops)

	return r, nil
}

// withEndpoints returns a copy of the cached r with the endpoints of this
// request. Endpoints depend on how the input was resolved, not only on the
// resolved codes, so they are not cached.
func (p *Planner) withEndpoints(r *Route, a, b resolver.Resolution) *Route {
	out := r.clone()
	out.From = p.endpoint(a)
	out.To = p.endpoint(b)

	return out
}

func (p *Planner) endpoint(res resolver.Resolution) Endpoint {
	e := Endpoint{Code: res.Code, Name: p.resolver.StationName(res.Code)}
	if res.Method != resolver.MethodExact {
		e.ResolvedBy = res.Method.String()
	}

	return e
}

func (p *Planner) names(path []string) []string {
	out := make([]string, len(path))
	for i, code := range path {
		out[i] = p.resolver.StationName(code)
	}

	return out
}

func (p *Planner) cachedRoute(key string) (*Route, bool) {
	if p.routes == nil {
		return nil, false
	}
	v, err := p.routes.Get(key)
	if err != nil {
		return nil, false
	}
	r, ok := v.(*Route)

	return r, ok
}

func (p *Planner) storeRoute(key string, r *Route) {
	if p.routes == nil {
		return
	}
	if err := p.routes.Set(key, r); err != nil {
		p.log.Warn("route cache store failed", "key", key, "err", err)
	}
}

// Analyze returns the rounded network report, computed at most once per
// analysis TTL.
func (p *Planner) Analyze(ctx context.Context) (*NetworkReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v, ok := p.reports.Get(analysisKey); ok {
		return v.(*NetworkReport).clone(), nil
	}

	rep, err := p.computeReport()
	if err != nil {
		return nil, err
	}
	p.reports.Set(analysisKey, rep, gocache.DefaultExpiration)

	return rep.clone(), nil
}

func (p *Planner) computeReport() (rep *NetworkReport, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("network analysis panicked", "panic", rec)
			rep, err = nil, fmt.Errorf("%w: %v", ErrInternal, rec)
		}
	}()

	start := time.Now()
	raw, err := analysis.Analyze(p.net.Graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	p.log.Info("network analysed",
		"stations", raw.TotalStations,
		"diameter_km", raw.Diameter.DistanceKm,
		"took", time.Since(start))

	return &NetworkReport{
		TotalStations: raw.TotalStations,
		TotalLengthKm: analysis.Round2(raw.TotalLengthKm),
		Diameter: DiameterInfo{
			LongestRoute: raw.Diameter.Path,
			DistanceKm:   analysis.Round2(raw.Diameter.DistanceKm),
		},
		Algorithms: []string{AlgorithmAllPairs},
	}, nil
}

// Stations lists every catalog station in catalog order, followed by the
// graph stations the catalog does not know, in graph order.
func (p *Planner) Stations() []StationInfo {
	g := p.net.Graph
	seen := make(map[string]struct{})
	var out []StationInfo

	for _, s := range p.net.Catalog.Stations() {
		seen[s.Code] = struct{}{}
		lines := p.net.LinesOf(s.Code)
		if len(lines) == 0 {
			lines = s.Lines
		}
		out = append(out, StationInfo{
			Code:       s.Code,
			Name:       s.Name,
			City:       s.City,
			Transfer:   s.Transfer,
			InNetwork:  g.HasVertex(s.Code),
			Lines:      nonNil(lines),
			Coordinate: s.Coordinate,
		})
	}
	for _, code := range g.Vertices() {
		if _, ok := seen[code]; ok {
			continue
		}
		lines := p.net.LinesOf(code)
		out = append(out, StationInfo{
			Code:      code,
			Name:      p.resolver.StationName(code),
			Transfer:  len(lines) > 1,
			InNetwork: true,
			Lines:     nonNil(lines),
		})
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func (r *Route) clone() *Route {
	out := *r
	out.Shortest.Path = append([]string(nil), r.Shortest.Path...)
	out.Shortest.Stations = append([]string(nil), r.Shortest.Stations...)
	out.Fewest.Path = append([]string(nil), r.Fewest.Path...)
	out.Fewest.Stations = append([]string(nil), r.Fewest.Stations...)
	out.Algorithms = append([]string(nil), r.Algorithms...)
	if r.StraightLineKm != nil {
		km := *r.StraightLineKm
		out.StraightLineKm = &km
	}

	return &out
}

func (r *NetworkReport) clone() *NetworkReport {
	out := *r
	out.Diameter.LongestRoute = append([]string{}, r.Diameter.LongestRoute...)
	out.Algorithms = append([]string(nil), r.Algorithms...)

	return &out
}
