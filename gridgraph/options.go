package gridgraph

import "math"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one grid position. It is the vertex key of the graphs built
// by ToCoreGraph.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold is the minimum cell value considered walkable "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// StepCost is the weight of an orthogonal step.
	StepCost float64
	// DiagonalCost is the weight of a diagonal step (Conn8 only).
	DiagonalCost float64
}

// DefaultGridOptions returns LandThreshold=1, Conn4, unit orthogonal steps and
// √2 diagonal steps.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		StepCost:      1,
		DiagonalCost:  math.Sqrt2,
	}
}

// GridGraph treats a 2D integer grid as a walkable map. It is immutable once built.
// CellValues[y][x] holds the original input value; cells below LandThreshold are water.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	StepCost        float64
	DiagonalCost    float64
	neighborOffsets [][2]int
}
