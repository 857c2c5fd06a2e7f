// Package graphio reads and writes string-keyed navigation graphs as YAML.
//
// A document lists vertices and edges explicitly, or embeds a terrain grid that
// is expanded through package gridgraph (cell keys are "x,y"). Both may be mixed:
// explicit entries are applied on top of the grid.
//
//	symmetric: true
//	root: camp
//	vertices:
//	  - {id: camp}
//	  - {id: ford, heuristic: 4}
//	edges:
//	  - {from: camp, to: ford, weight: 1}
//	  - {from: ford, to: keep, weight: 2, both: true}
//	grid:
//	  conn: 8
//	  land_threshold: 1
//	  rows:
//	    - [1, 1, 0]
//	    - [1, 3, 1]
package graphio
