// SPDX-License-Identifier: MIT

package network

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/railnet/bfs"
	"github.com/katalvlaran/railnet/catalog"
	"github.com/katalvlaran/railnet/core"
)

//go:embed jakarta.yaml
var jakartaYAML []byte

// stationCode matches upper-case alphanumeric codes of two or three characters.
var stationCode = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)

// Default returns the embedded Jakarta MRT network.
func Default() (*Network, error) {
	return Parse(jakartaYAML)
}

// Load reads and parses a dataset file.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}

	return Parse(data)
}

// Parse decodes a YAML dataset, validates it and builds the Network.
//
// Checks, in order:
//
//  1. YAML decoding (unknown fields rejected);
//  2. field validation: required fields, station-code format, km ≥ 0;
//  3. graph construction: ordered, mirrored adjacency (see core.FromAdjacency);
//  4. catalog construction: unique codes;
//  5. lines: members are graph stations, unique, connected within the line;
//  6. aliases: targets are graph stations, keys are not.
func Parse(data []byte) (*Network, error) {
	// 1) Decode.
	var doc document
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidNetwork, err)
	}

	// 2) Validate fields.
	if err := newValidator().Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNetwork, err)
	}

	// 3) Graph.
	order := make([]string, 0, len(doc.Graph))
	adj := make(map[string][]core.Neighbor, len(doc.Graph))
	for _, v := range doc.Graph {
		order = append(order, v.Code)
		nbs := make([]core.Neighbor, 0, len(v.Neighbors))
		for _, nb := range v.Neighbors {
			nbs = append(nbs, core.Neighbor{ID: nb.To, Weight: nb.Km})
		}
		adj[v.Code] = nbs
	}
	g, err := core.FromAdjacency(order, adj)
	if err != nil {
		return nil, fmt.Errorf("%w: graph: %w", ErrInvalidNetwork, err)
	}

	// 4) Catalog.
	stations := make([]catalog.Station, 0, len(doc.Stations))
	for _, s := range doc.Stations {
		st := catalog.Station{Code: s.Code, Name: s.Name, City: s.City, Transfer: s.Transfer, Lines: s.Lines}
		if s.Coordinate != nil {
			st.Coordinate = &catalog.Coordinate{Lat: s.Coordinate.Lat, Lon: s.Coordinate.Lon}
		}
		stations = append(stations, st)
	}
	cat, err := catalog.New(stations...)
	if err != nil {
		return nil, fmt.Errorf("%w: catalog: %w", ErrInvalidNetwork, err)
	}

	n := &Network{
		Graph:   g,
		Catalog: cat,
		Lines:   make(map[string][]string, len(doc.Lines)),
		Aliases: make(map[string]string, len(doc.Aliases)),
		lineOf:  make(map[string][]string),
	}

	// 5) Lines.
	if err := n.addLines(doc.Lines); err != nil {
		return nil, err
	}

	// 6) Aliases.
	for from, to := range doc.Aliases {
		if g.HasVertex(from) {
			return nil, fmt.Errorf("%w: alias %s shadows a station", ErrInvalidNetwork, from)
		}
		if !g.HasVertex(to) {
			return nil, fmt.Errorf("%w: alias %s→%s: %w", ErrInvalidNetwork, from, to, core.ErrVertexNotFound)
		}
		n.Aliases[from] = to
	}

	return n, nil
}

// addLines records line membership after checking every line is a set of
// graph stations connected by its own segments.
func (n *Network) addLines(lines map[string][]string) error {
	for name, members := range lines {
		seen := make(map[string]bool, len(members))
		for _, code := range members {
			if !n.Graph.HasVertex(code) {
				return fmt.Errorf("%w: line %s: %s: %w", ErrInvalidNetwork, name, code, core.ErrVertexNotFound)
			}
			if seen[code] {
				return fmt.Errorf("%w: line %s lists %s twice", ErrInvalidNetwork, name, code)
			}
			seen[code] = true
		}

		sub := core.Induced(n.Graph, members)
		for _, code := range members[1:] {
			res, err := bfs.FewestHops(sub, members[0], code)
			if err != nil {
				return fmt.Errorf("%w: line %s: %w", ErrInvalidNetwork, name, err)
			}
			if !res.Found() {
				return fmt.Errorf("%w: line %s is not connected (%s–%s)", ErrInvalidNetwork, name, members[0], code)
			}
		}

		n.Lines[name] = append([]string(nil), members...)
		for _, code := range members {
			n.lineOf[code] = append(n.lineOf[code], name)
		}
	}
	for code := range n.lineOf {
		sort.Strings(n.lineOf[code])
	}

	return nil
}

// decodeStrict decodes exactly one YAML document, rejecting unknown fields.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(out)
}

// newValidator returns a validator with the "stationcode" rule registered.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("stationcode", func(fl validator.FieldLevel) bool {
		return stationCode.MatchString(fl.Field().String())
	})

	return v
}
