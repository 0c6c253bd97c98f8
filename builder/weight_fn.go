// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the segment length, in km, used when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a segment length given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// TenthKmWeightFn samples like UniformWeightFn and rounds the result to
// 0.1 km, never below 0.1. Timetable segment lengths are published that way,
// which also makes integer-metre comparisons exact.
func TenthKmWeightFn(min, max float64) WeightFn {
	uniform := UniformWeightFn(min, max)

	return func(rng *rand.Rand) float64 {
		w := math.Round(uniform(rng)*10) / 10
		if w < 0.1 {
			w = 0.1
		}

		return w
	}
}
