// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/builder"
)

func TestTopologies_Shape(t *testing.T) {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		maxDegree int
	}{
		{"path", builder.Path(5), 5, 4, 2},
		{"cycle", builder.Cycle(6), 6, 6, 2},
		{"star", builder.Star(5), 5, 4, 4},
		{"complete", builder.Complete(5), 5, 10, 4},
		{"grid", builder.Grid(3, 4), 12, 17, 4},
		{"single", builder.Complete(1), 1, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			st := g.Stats()
			assert.Equal(t, tc.vertices, st.VertexCount)
			assert.Equal(t, tc.edges, st.EdgeCount)
			assert.Equal(t, tc.maxDegree, st.MaxDegree)
			assert.InDelta(t, float64(tc.edges)*builder.DefaultEdgeWeight, st.TotalWeight, 1e-12)
		})
	}
}

func TestTopologies_TooSmall(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"complete": builder.Complete(0),
		"grid":     builder.Grid(0, 3),
		"sparse":   builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestPath_OrderAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDPrefix("S"), builder.WithConstantWeight(1.5)},
		builder.Path(4))
	require.NoError(t, err)

	require.Equal(t, []string{"S0", "S1", "S2", "S3"}, g.Vertices())
	ids, err := g.NeighborIDs("S1")
	require.NoError(t, err)
	require.Equal(t, []string{"S0", "S2"}, ids)
	w, ok := g.Weight("S2", "S3")
	require.True(t, ok)
	require.Equal(t, 1.5, w)
}

func TestGrid_IDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	require.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.Vertices())
	require.True(t, g.HasEdge(builder.GridID(0, 1), builder.GridID(1, 1)))
	require.False(t, g.HasEdge(builder.GridID(0, 0), builder.GridID(1, 1)))
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	require.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(0.5, 3)}
	}
	a, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	require.Equal(t, a.Edges(), b.Edges())
	for _, e := range a.Edges() {
		require.GreaterOrEqual(t, e.Weight, 0.5)
		require.LessOrEqual(t, e.Weight, 3.0)
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "ST7", builder.PrefixIDFn("ST")(7))
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 3)(nil))

	tenth := builder.TenthKmWeightFn(0, 0.01)
	assert.Equal(t, builder.DefaultEdgeWeight, tenth(nil))
	assert.Equal(t, 0.1, tenth(rand.New(rand.NewSource(3))), "never below 0.1 km")
	assert.Panics(t, func() { builder.WithIDPrefix("") })
}
