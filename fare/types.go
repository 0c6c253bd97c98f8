// SPDX-License-Identifier: MIT

package fare

// Default tariff constants of the Jakarta MRT model.
const (
	DefaultMinutesPerHop      = 3
	DefaultInterchangeMinutes = 2
	DefaultBaseFareIDR        = 3000
	DefaultFarePerKmIDR       = 2000
)

// Tariff holds the constants of the journey-time and fare model.
//
// Field tags drive both YAML configuration and validation of overrides.
type Tariff struct {
	MinutesPerHop      int `yaml:"minutes_per_hop" validate:"gte=0"`
	InterchangeMinutes int `yaml:"interchange_minutes" validate:"gte=0"`
	BaseFareIDR        int `yaml:"base_fare_idr" validate:"gte=0"`
	FarePerKmIDR       int `yaml:"fare_per_km_idr" validate:"gte=0"`
}

// DefaultTariff returns 3 min per hop, 2 min per intermediate stop,
// IDR 3000 base fare and IDR 2000 per km.
func DefaultTariff() Tariff {
	return Tariff{
		MinutesPerHop:      DefaultMinutesPerHop,
		InterchangeMinutes: DefaultInterchangeMinutes,
		BaseFareIDR:        DefaultBaseFareIDR,
		FarePerKmIDR:       DefaultFarePerKmIDR,
	}
}

// LinesFunc reports the lines serving a station code.
type LinesFunc func(code string) []string
