package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells,
// according to gg.Conn connectivity. Components are listed in row-major order of
// their first cell, members in breadth-first order from that cell.
//
// It works on the raw grid and agrees with sections.Detect on ToCoreGraph's output.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if seen[i0] || !gg.IsLand(Cell{X: x, Y: y}) {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				comp = append(comp, Cell{X: ux, Y: uy})
				for _, d := range gg.neighborOffsets {
					v := Cell{X: ux + d[0], Y: uy + d[1]}
					if !gg.IsLand(v) {
						continue
					}
					if vi := gg.index(v.X, v.Y); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
