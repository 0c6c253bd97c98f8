// SPDX-License-Identifier: MIT
package fare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railnet/fare"
	"github.com/katalvlaran/railnet/network"
)

func TestTravelTimeMinutes(t *testing.T) {
	cases := map[int]int{
		-1: 0,
		0:  0,
		1:  0,
		2:  3,
		3:  8,
		11: 48,
	}
	for pathLen, want := range cases {
		assert.Equal(t, want, fare.TravelTimeMinutes(pathLen), "pathLen=%d", pathLen)
	}
}

func TestTransferTravelTimeMinutes(t *testing.T) {
	assert.Equal(t, 0, fare.TransferTravelTimeMinutes(0, -1))
	assert.Equal(t, 0, fare.TransferTravelTimeMinutes(1, 0))
	assert.Equal(t, 5, fare.TransferTravelTimeMinutes(2, 1))
	assert.Equal(t, 50, fare.TransferTravelTimeMinutes(11, 10))
}

func TestPriceIDR(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 3000},
		{1.0, 5000},
		{1.999, 6998},
		{1.8, 6600},
		{16.1, 35200},
		{18.9, 40800},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fare.PriceIDR(tc.km), "km=%v", tc.km)
	}
}

func TestTariff_Custom(t *testing.T) {
	tr := fare.Tariff{MinutesPerHop: 2, InterchangeMinutes: 1, BaseFareIDR: 0, FarePerKmIDR: 1000}
	assert.Equal(t, 2*4+1*3, tr.TravelTimeMinutes(5))
	assert.Equal(t, 2*4+1*2, tr.TransferTravelTimeMinutes(5, 2))
	assert.Equal(t, 2500, tr.PriceIDR(2.5))
}

func TestLineChanges_Synthetic(t *testing.T) {
	lines := map[string][]string{
		"A": {"x"},
		"B": {"x", "y"},
		"C": {"x", "y"},
		"D": {"y"},
		"E": {"z"},
		"F": {"z"},
	}
	linesOf := func(code string) []string { return lines[code] }

	cases := []struct {
		name string
		path []string
		want int
	}{
		{"empty", nil, 0},
		{"single", []string{"A"}, 0},
		{"one line", []string{"A", "B", "C"}, 0},
		{"narrowing keeps riding", []string{"B", "C", "D"}, 0},
		{"change", []string{"A", "B", "C", "D"}, 1},
		{"off-line segment", []string{"D", "E"}, 1},
		{"off-line then boards again", []string{"D", "E", "F"}, 1},
		{"two off-line segments", []string{"A", "E", "B", "C"}, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fare.LineChanges(tc.path, linesOf), tc.name)
	}
	assert.Equal(t, 0, fare.LineChanges([]string{"A", "B"}, nil))
}

func TestLineChanges_Jakarta(t *testing.T) {
	n, err := network.Default()
	require.NoError(t, err)

	cases := []struct {
		path []string
		want int
	}{
		{[]string{"BNR", "DKT", "KUN", "PAN", "BLM", "BLA", "FTM", "CPR", "HJN", "CLD", "LEB"}, 2},
		{[]string{"HI", "BNR", "DKT", "KUN", "PAN", "CKK", "CLW"}, 1},
		{[]string{"PRI", "DKT", "KUN", "PAN", "CKK", "CLW"}, 1},
		{[]string{"SNY", "SNP", "ASN", "BLM", "PAN"}, 1},
		{[]string{"BNR", "DKT", "STF", "BKS"}, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fare.LineChanges(tc.path, n.LinesOf), "%v", tc.path)
	}
}
