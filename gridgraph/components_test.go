package gridgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponents(t *testing.T) {
	tests := []struct {
		name      string
		values    [][]int
		conn      Connectivity
		threshold int
		want      [][]Cell
	}{
		{
			name:   "all water",
			values: [][]int{{0, 0}, {0, 0}},
			conn:   Conn4,
		},
		{
			name:   "single land cell",
			values: [][]int{{0, 1}},
			conn:   Conn4,
			want:   [][]Cell{{{1, 0}}},
		},
		{
			// members are listed breadth-first from the first cell of each area
			name:   "orthogonal areas",
			values: [][]int{{1, 1, 0, 2}, {0, 1, 0, 2}},
			conn:   Conn4,
			want:   [][]Cell{{{0, 0}, {1, 0}, {1, 1}}, {{3, 0}, {3, 1}}},
		},
		{
			name:   "corner touch splits under Conn4",
			values: [][]int{{1, 0}, {0, 1}},
			conn:   Conn4,
			want:   [][]Cell{{{0, 0}}, {{1, 1}}},
		},
		{
			name:   "corner touch joins under Conn8",
			values: [][]int{{1, 0}, {0, 1}},
			conn:   Conn8,
			want:   [][]Cell{{{0, 0}, {1, 1}}},
		},
		{
			name:      "threshold floods low ground",
			values:    [][]int{{3, 1, 4}},
			conn:      Conn4,
			threshold: 3,
			want:      [][]Cell{{{0, 0}}, {{2, 0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultGridOptions()
			opts.Conn = tt.conn
			if tt.threshold > 0 {
				opts.LandThreshold = tt.threshold
			}
			gg, err := NewGridGraph(tt.values, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gg.ConnectedComponents())
		})
	}
}

// An X of nine land cells is one area only when diagonals count.
func TestConnectedComponents_Diagonals(t *testing.T) {
	x := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(x, Conn8)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	gg, err = From2D(x, Conn4)
	require.NoError(t, err)
	assert.Len(t, gg.ConnectedComponents(), 9)
}
