package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	starCenterID     = "Center"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star builds a hub "Center" linked both ways to n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertex(g, cfg, methodStar, starCenterID); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodStar, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodStar, starCenterID, cfg.idFn(i), true); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every pair of n vertices both ways (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j), true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
