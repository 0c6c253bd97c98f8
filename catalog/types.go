// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
)

// Sentinel errors for catalog construction.
var (
	// ErrEmptyCode is returned for a station without a code.
	ErrEmptyCode = errors.New("catalog: empty station code")

	// ErrDuplicateCode is returned when two stations share a code.
	ErrDuplicateCode = errors.New("catalog: duplicate station code")

	// ErrBadCoordinate is returned for a latitude outside [-90,90] or a
	// longitude outside [-180,180].
	ErrBadCoordinate = errors.New("catalog: coordinate out of range")
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Station is one catalog entry: a code, its display name, an optional
// position, and the lines the catalog lists it under.
type Station struct {
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	City       string      `json:"city,omitempty"`
	Transfer   bool        `json:"is_transfer,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	Lines      []string    `json:"lines,omitempty"`
}
