// SPDX-License-Identifier: MIT
package network_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/network"
)

func TestDefault_Jakarta(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)

	g := n.Graph
	require.Equal(t, []string{
		"HI", "BNR", "DKT", "STF", "BKS", "IST", "SNY", "SNP", "ASN", "BLM", "BLA",
		"FTM", "CPR", "HJN", "CLD", "LEB", "KUN", "PAN", "CKK", "CLW", "PRI",
	}, g.Vertices())
	require.Equal(t, 21, g.EdgeCount())
	require.InDelta(t, 32.7, g.TotalWeight(), 1e-9)

	ids, err := g.NeighborIDs("DKT")
	require.NoError(t, err)
	require.Equal(t, []string{"BNR", "STF", "KUN", "PRI"}, ids, "adjacency order is part of the dataset")

	require.Equal(t, 21, n.Catalog.Len())
	s, ok := n.Catalog.Lookup("ASN")
	require.True(t, ok)
	require.True(t, s.Transfer)
	require.NotNil(t, s.Coordinate)
	lb2, ok := n.Catalog.Lookup("LB2")
	require.True(t, ok)
	require.Nil(t, lb2.Coordinate)
	require.False(t, g.HasVertex("LB2"), "catalog-only station")

	require.Equal(t, []string{"blue", "green", "red"}, n.LineNames())
	require.Equal(t, []string{"blue", "green", "red"}, n.LinesOf("DKT"))
	require.Equal(t, []string{"blue", "red"}, n.LinesOf("BLM"))
	require.Equal(t, []string{"red"}, n.LinesOf("PAN"))
	require.Nil(t, n.LinesOf("LB2"))

	require.Equal(t, map[string]string{"BHI": "BNR", "DKA": "DKT", "LBG": "LEB"}, n.Aliases)
}

func TestLine_Induced(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)

	blue, err := n.Line("blue")
	require.NoError(t, err)
	require.Equal(t, 16, blue.VertexCount())
	require.Equal(t, 15, blue.EdgeCount(), "blue is a single chain")
	require.False(t, blue.HasVertex("KUN"))

	_, err = n.Line("purple")
	require.ErrorIs(t, err, network.ErrUnknownLine)
}

func TestDefault_Independent(t *testing.T) {
	a, err := network.Default()
	require.NoError(t, err)
	b, err := network.Default()
	require.NoError(t, err)

	require.NoError(t, a.Graph.AddEdge("HI", "PRI", 9))
	require.False(t, b.Graph.HasEdge("HI", "PRI"))
}

const minimal = `
stations:
  - {code: AA, name: Alpha}
graph:
  - {code: AA, neighbors: [{to: BB, km: 1.5}]}
  - {code: BB, neighbors: [{to: AA, km: 1.5}]}
lines:
  x: [AA, BB]
aliases:
  AX: AA
`

func TestParse_Minimal(t *testing.T) {
	n, err := network.Parse([]byte(minimal))
	require.NoError(t, err)
	require.Equal(t, []string{"AA", "BB"}, n.Graph.Vertices())
	require.Equal(t, "Alpha", n.Catalog.Name("AA"))
	require.Equal(t, []string{"x"}, n.LinesOf("BB"))
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		cause error
	}{
		{
			name: "empty document",
			doc:  ``,
		},
		{
			name: "unknown field",
			doc:  minimal + "colour: red\n",
		},
		{
			name: "lower-case code",
			doc: `
stations: [{code: aa, name: Alpha}]
graph: [{code: AA, neighbors: []}]
`,
		},
		{
			name: "negative km",
			doc: `
stations: [{code: AA, name: Alpha}]
graph:
  - {code: AA, neighbors: [{to: BB, km: -1}]}
  - {code: BB, neighbors: [{to: AA, km: -1}]}
`,
		},
		{
			name: "missing mirror",
			doc: `
stations: [{code: AA, name: Alpha}]
graph:
  - {code: AA, neighbors: [{to: BB, km: 1}]}
  - {code: BB, neighbors: []}
`,
			cause: core.ErrAsymmetricEdge,
		},
		{
			name: "dangling neighbor",
			doc: `
stations: [{code: AA, name: Alpha}]
graph:
  - {code: AA, neighbors: [{to: ZZ, km: 1}]}
`,
			cause: core.ErrDanglingNeighbor,
		},
		{
			name: "line with unknown station",
			doc: `
stations: [{code: AA, name: Alpha}]
graph: [{code: AA, neighbors: []}]
lines: {x: [AA, QQ]}
`,
			cause: core.ErrVertexNotFound,
		},
		{
			name: "disconnected line",
			doc: `
stations: [{code: AA, name: Alpha}]
graph: [{code: AA, neighbors: []}, {code: BB, neighbors: []}]
lines: {x: [AA, BB]}
`,
		},
		{
			name: "alias to unknown",
			doc: `
stations: [{code: AA, name: Alpha}]
graph: [{code: AA, neighbors: []}]
aliases: {AX: ZZ}
`,
			cause: core.ErrVertexNotFound,
		},
		{
			name: "alias shadows station",
			doc: `
stations: [{code: AA, name: Alpha}]
graph: [{code: AA, neighbors: []}, {code: BB, neighbors: []}]
aliases: {AA: BB}
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := network.Parse([]byte(tc.doc))
			require.Nil(t, n)
			require.ErrorIs(t, err, network.ErrInvalidNetwork)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestParse_ValidationErrorsAreInspectable(t *testing.T) {
	_, err := network.Parse([]byte(`
stations: [{code: A, name: ""}]
graph: [{code: AA, neighbors: []}]
`))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{"stationcode", "required"}, tags)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	n, err := network.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, n.Graph.VertexCount())

	_, err = network.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, network.ErrInvalidNetwork)
	require.ErrorIs(t, err, os.ErrNotExist)
}
