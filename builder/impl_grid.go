package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "x,y", the key format of graphio grid cells
)

// Grid builds a rows×cols 4-neighborhood grid with IDs "x,y" (row-major).
// Every neighbor pair is linked both ways. The ID scheme option does not apply.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(x, y int) string { return fmt.Sprintf(gridIDFmt, x, y) }

		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if err := addVertex(g, cfg, methodGrid, id(x, y)); err != nil {
					return err
				}
			}
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				if x+1 < cols {
					if err := addEdge(g, cfg, methodGrid, id(x, y), id(x+1, y), true); err != nil {
						return err
					}
				}
				if y+1 < rows {
					if err := addEdge(g, cfg, methodGrid, id(x, y), id(x, y+1), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
