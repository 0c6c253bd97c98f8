// SPDX-License-Identifier: MIT

// Package catalog holds the station directory: codes, display names and
// coordinates. It is immutable after New and safe for concurrent reads.
package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Catalog is an ordered, read-only set of stations keyed by code.
type Catalog struct {
	order []string
	byID  map[string]Station
}

// New builds a Catalog keeping the definition order of stations.
// Returns ErrEmptyCode, ErrDuplicateCode or ErrBadCoordinate on invalid input.
func New(stations ...Station) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(stations)),
		byID:  make(map[string]Station, len(stations)),
	}
	for i, s := range stations {
		if s.Code == "" {
			return nil, fmt.Errorf("%w: entry %d (%q)", ErrEmptyCode, i, s.Name)
		}
		if _, dup := c.byID[s.Code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, s.Code)
		}
		if p := s.Coordinate; p != nil {
			if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
				return nil, fmt.Errorf("%w: %s (%v,%v)", ErrBadCoordinate, s.Code, p.Lat, p.Lon)
			}
		}
		c.order = append(c.order, s.Code)
		c.byID[s.Code] = clone(s)
	}

	return c, nil
}

// Lookup returns the station with exactly this code.
func (c *Catalog) Lookup(code string) (Station, bool) {
	s, ok := c.byID[code]
	if !ok {
		return Station{}, false
	}

	return clone(s), true
}

// Codes returns all codes in definition order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Stations returns copies of all stations in definition order.
func (c *Catalog) Stations() []Station {
	out := make([]Station, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, clone(c.byID[code]))
	}

	return out
}

// Len returns the number of stations.
func (c *Catalog) Len() int { return len(c.order) }

// Name returns a display name for code:
//
//  1. the name of the exact catalog entry;
//  2. otherwise the name of the first entry (definition order) whose code
//     contains code or is contained in it;
//  3. otherwise "Station " + code.
//
// Step 2 is a loose match: "BN" names Bundaran HI. An empty code falls
// through to step 3.
func (c *Catalog) Name(code string) string {
	if s, ok := c.byID[code]; ok {
		return s.Name
	}
	if code != "" {
		for _, k := range c.order {
			if strings.Contains(k, code) || strings.Contains(code, k) {
				return c.byID[k].Name
			}
		}
	}

	return "Station " + code
}

// Distance returns the great-circle distance in km between two catalog
// stations. ok is false when either station is unknown or has no coordinate.
func (c *Catalog) Distance(a, b string) (km float64, ok bool) {
	sa, okA := c.byID[a]
	sb, okB := c.byID[b]
	if !okA || !okB || sa.Coordinate == nil || sb.Coordinate == nil {
		return 0, false
	}

	return Haversine(*sa.Coordinate, *sb.Coordinate), true
}

// Haversine returns the great-circle distance in km between p and q on a
// sphere of radius EarthRadiusKm.
func Haversine(p, q Coordinate) float64 {
	const rad = math.Pi / 180
	dLat := (q.Lat - p.Lat) * rad
	dLon := (q.Lon - p.Lon) * rad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.Lat*rad)*math.Cos(q.Lat*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func clone(s Station) Station {
	if s.Coordinate != nil {
		p := *s.Coordinate
		s.Coordinate = &p
	}
	if s.Lines != nil {
		s.Lines = append([]string(nil), s.Lines...)
	}

	return s
}
