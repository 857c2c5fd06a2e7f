// Package gridgraph turns a 2D grid of terrain values into a navigable
// core.Graph keyed by Cell.
//
// Cells with value < LandThreshold are water and never become vertices. A land
// cell's Heuristic is value − LandThreshold, so higher terrain values cost more
// to enter. Neighboring land cells are linked in both directions, StepCost for
// orthogonal and DiagonalCost for diagonal steps.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	if opts.StepCost <= 0 {
		opts.StepCost = 1
	}
	if opts.DiagonalCost <= 0 {
		opts.DiagonalCost = math.Sqrt2 * opts.StepCost
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		StepCost:        opts.StepCost,
		DiagonalCost:    opts.DiagonalCost,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the raw value of c.
func (gg *GridGraph) Value(c Cell) (int, error) {
	if !gg.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	return gg.CellValues[c.Y][c.X], nil
}

// IsLand reports whether c is in bounds and walkable.
func (gg *GridGraph) IsLand(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.LandThreshold
}

// stepCost returns the weight of the move along offset d.
func (gg *GridGraph) stepCost(d [2]int) float64 {
	if d[0] != 0 && d[1] != 0 {
		return gg.DiagonalCost
	}
	return gg.StepCost
}

// ToCoreGraph converts the land cells into a symmetric *core.Graph[Cell].
// Vertices are inserted row-major, so the top-left land cell is the root.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph[Cell] {
	g := core.NewGraph(core.WithSymmetric[Cell]())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if gg.IsLand(c) {
				g.AddVertex(core.NewVertex(c, float64(gg.CellValues[y][x]-gg.LandThreshold)))
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Cell{X: x, Y: y}
			if !gg.IsLand(u) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				v := Cell{X: x + d[0], Y: y + d[1]}
				if !gg.IsLand(v) {
					continue
				}
				// weights are finite and positive, AddEdge cannot fail
				_ = g.AddEdge(u, v, gg.stepCost(d))
			}
		}
	}

	return g
}

// Estimate returns a consistent A* estimate for graphs built by ToCoreGraph:
// Manhattan distance for Conn4, octile distance for Conn8, scaled by the step costs.
func (gg *GridGraph) Estimate() func(v, goal Cell) float64 {
	step, diag := gg.StepCost, math.Min(gg.DiagonalCost, 2*gg.StepCost)
	if gg.Conn == Conn8 {
		return func(v, goal Cell) float64 {
			dx, dy := absInt(v.X-goal.X), absInt(v.Y-goal.Y)
			lo, hi := min(dx, dy), max(dx, dy)
			return float64(lo)*diag + float64(hi-lo)*step
		}
	}

	return func(v, goal Cell) float64 {
		return float64(absInt(v.X-goal.X)+absInt(v.Y-goal.Y)) * step
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
