// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"sort"

	"github.com/katalvlaran/railnet/catalog"
	"github.com/katalvlaran/railnet/core"
)

// ErrInvalidNetwork wraps every decoding or consistency failure of a dataset.
var ErrInvalidNetwork = errors.New("network: invalid network")

// ErrUnknownLine is returned by Line for a name that is not a line of the network.
var ErrUnknownLine = errors.New("network: unknown line")

// Network is a loaded, validated and immutable transit dataset.
type Network struct {
	Graph   *core.Graph
	Catalog *catalog.Catalog
	Lines   map[string][]string // line name → member stations
	Aliases map[string]string   // alternative code → graph station

	lineOf map[string][]string // station → line names, sorted
}

// LinesOf returns the names of the lines serving code, sorted by name.
// Stations on no line return nil.
func (n *Network) LinesOf(code string) []string {
	ls := n.lineOf[code]
	if len(ls) == 0 {
		return nil
	}

	return append([]string(nil), ls...)
}

// LineNames returns all line names, sorted.
func (n *Network) LineNames() []string {
	names := make([]string, 0, len(n.Lines))
	for name := range n.Lines {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Line returns the subgraph induced by the members of one line.
func (n *Network) Line(name string) (*core.Graph, error) {
	members, ok := n.Lines[name]
	if !ok {
		return nil, ErrUnknownLine
	}

	return core.Induced(n.Graph, members), nil
}

// document mirrors the YAML layout of a dataset.
type document struct {
	Stations []stationDoc        `yaml:"stations" validate:"required,min=1,dive"`
	Graph    []vertexDoc         `yaml:"graph" validate:"required,min=1,dive"`
	Lines    map[string][]string `yaml:"lines" validate:"dive,keys,required,endkeys,min=1,dive,stationcode"`
	Aliases  map[string]string   `yaml:"aliases" validate:"dive,keys,stationcode,endkeys,stationcode"`
}

type stationDoc struct {
	Code       string         `yaml:"code" validate:"required,stationcode"`
	Name       string         `yaml:"name" validate:"required"`
	City       string         `yaml:"city"`
	Transfer   bool           `yaml:"transfer"`
	Lines      []string       `yaml:"lines" validate:"dive,required"`
	Coordinate *coordinateDoc `yaml:"coordinate"`
}

type coordinateDoc struct {
	Lat float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

type vertexDoc struct {
	Code      string        `yaml:"code" validate:"required,stationcode"`
	Neighbors []neighborDoc `yaml:"neighbors" validate:"dive"`
}

type neighborDoc struct {
	To string  `yaml:"to" validate:"required,stationcode"`
	Km float64 `yaml:"km" validate:"gte=0"`
}
