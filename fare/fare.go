// SPDX-License-Identifier: MIT

package fare

// TravelTimeMinutes returns the journey time of a weighted route of pathLen
// stations: hops × MinutesPerHop plus InterchangeMinutes for every
// intermediate station. Paths of fewer than one station take 0 minutes.
func (t Tariff) TravelTimeMinutes(pathLen int) int {
	if pathLen <= 0 {
		return 0
	}
	hops := pathLen - 1
	stops := pathLen - 2
	if stops < 0 {
		stops = 0
	}

	return hops*t.MinutesPerHop + stops*t.InterchangeMinutes
}

// TransferTravelTimeMinutes returns the journey time of a fewest-hops route:
// hops × MinutesPerHop plus transfers × InterchangeMinutes.
func (t Tariff) TransferTravelTimeMinutes(pathLen, transfers int) int {
	if pathLen <= 0 {
		return 0
	}

	return (pathLen-1)*t.MinutesPerHop + transfers*t.InterchangeMinutes
}

// PriceIDR returns BaseFareIDR plus FarePerKmIDR × km truncated toward zero.
func (t Tariff) PriceIDR(distanceKm float64) int {
	return t.BaseFareIDR + int(distanceKm*float64(t.FarePerKmIDR))
}

// TravelTimeMinutes applies DefaultTariff.
func TravelTimeMinutes(pathLen int) int { return DefaultTariff().TravelTimeMinutes(pathLen) }

// TransferTravelTimeMinutes applies DefaultTariff.
func TransferTravelTimeMinutes(pathLen, transfers int) int {
	return DefaultTariff().TransferTravelTimeMinutes(pathLen, transfers)
}

// PriceIDR applies DefaultTariff.
func PriceIDR(distanceKm float64) int { return DefaultTariff().PriceIDR(distanceKm) }

// LineChanges counts how often a rider on path must change lines.
//
// The rider boards on the lines shared by the first two stations and keeps
// riding while the next segment is served by at least one line of the running
// set, which narrows to the intersection. When the intersection becomes empty
// a change is counted and the running set restarts with the lines of that
// segment. A segment whose endpoints share no line (off-line stations) counts
// as one change and leaves the rider unboarded, so the following segment
// boards again without another change.
//
// Paths with fewer than two stations have no changes.
//
// Complexity: O(L · k²) for L stations and k lines per station.
func LineChanges(path []string, linesOf LinesFunc) int {
	if len(path) < 2 || linesOf == nil {
		return 0
	}

	changes := 0
	var running []string
	for i := 1; i < len(path); i++ {
		seg := intersect(linesOf(path[i-1]), linesOf(path[i]))
		if len(seg) == 0 {
			changes++
			running = nil
			continue
		}
		if len(running) == 0 {
			running = seg
			continue
		}
		if shared := intersect(running, seg); len(shared) > 0 {
			running = shared
			continue
		}
		changes++
		running = seg
	}

	return changes
}

// intersect returns the elements of a that are also in b, in a's order.
func intersect(a, b []string) []string {
	var out []string
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}

	return out
}
