// SPDX-License-Identifier: MIT
// Package: railnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the station ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDPrefix sets the ID scheme to PrefixIDFn(prefix): "S0","S1",...
// Panics on an empty prefix.
func WithIDPrefix(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithIDPrefix(\"\")")
	}

	return WithIDScheme(PrefixIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn ("A".."Z").
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the segment length generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every segment the same length, in km.
func WithConstantWeight(km float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(km))
}

// WithUniformWeights draws segment lengths from TenthKmWeightFn(min, max).
// Requires WithSeed or WithRand to be random; without an RNG every segment
// gets DefaultEdgeWeight.
func WithUniformWeights(min, max float64) BuilderOption {
	return WithWeightFn(TenthKmWeightFn(min, max))
}
