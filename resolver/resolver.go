// SPDX-License-Identifier: MIT

// Package resolver maps user-supplied station codes onto graph vertices.
//
// Rules, first match wins:
//
//  1. exact: the code is a vertex;
//  2. alias: the code is a key of the configured alias table;
//  3. prefix: the first vertex, in graph order, that starts with the code;
//  4. otherwise the code is echoed unchanged and the caller's lookup fails.
//
// Rule 3 is a guess and is logged at warn level. Resolve (the package-level
// function) applies rules 1, 3 and 4 only.
package resolver

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/railnet/catalog"
	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/logging"
)

// Resolver resolves codes against one immutable graph, catalog and alias table.
type Resolver struct {
	graph   *core.Graph
	order   []string
	catalog *catalog.Catalog
	aliases map[string]string
	log     *slog.Logger
}

// New validates aliases against g and returns a Resolver. cat may be nil,
// in which case StationName always synthesizes a placeholder.
func New(g *core.Graph, cat *catalog.Catalog, aliases map[string]string, opts ...Option) (*Resolver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &Resolver{
		graph:   g,
		order:   g.Vertices(),
		catalog: cat,
		aliases: make(map[string]string, len(aliases)),
		log:     logging.Discard(),
	}
	for from, to := range aliases {
		switch {
		case from == "" || to == "":
			return nil, fmt.Errorf("%w: empty entry %q→%q", ErrBadAlias, from, to)
		case g.HasVertex(from):
			return nil, fmt.Errorf("%w: %q is already a station", ErrBadAlias, from)
		case !g.HasVertex(to):
			return nil, fmt.Errorf("%w: %q→%q targets an unknown station", ErrBadAlias, from, to)
		}
		r.aliases[from] = to
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Resolve applies exact, alias and prefix rules to code.
func (r *Resolver) Resolve(code string) Resolution {
	if r.graph.HasVertex(code) {
		return Resolution{Input: code, Code: code, Method: MethodExact}
	}
	if to, ok := r.aliases[code]; ok {
		return Resolution{Input: code, Code: to, Method: MethodAlias}
	}
	if key, ok := prefixMatch(r.order, code); ok {
		r.log.Warn("station code resolved by prefix", "input", code, "code", key)

		return Resolution{Input: code, Code: key, Method: MethodPrefix}
	}

	return Resolution{Input: code, Code: code, Method: MethodUnresolved}
}

// StationName returns the catalog display name for code.
func (r *Resolver) StationName(code string) string {
	if r.catalog == nil {
		return "Station " + code
	}

	return r.catalog.Name(code)
}

// Resolve returns code when it is a vertex of g, else the first vertex in
// graph order that starts with code, else code unchanged. A nil graph echoes.
func Resolve(code string, g *core.Graph) string {
	if g == nil || g.HasVertex(code) {
		return code
	}
	if key, ok := prefixMatch(g.Vertices(), code); ok {
		return key
	}

	return code
}

// prefixMatch scans order for the first key that starts with code.
// An empty code never matches.
func prefixMatch(order []string, code string) (string, bool) {
	if code == "" {
		return "", false
	}
	for _, key := range order {
		if strings.HasPrefix(key, code) {
			return key, true
		}
	}

	return "", false
}
