package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/gridgraph"
)

// ErrInvalidDocument wraps every validation failure of a Document.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Document is the YAML form of a graph.
type Document struct {
	Symmetric bool           `yaml:"symmetric,omitempty"`
	Root      string         `yaml:"root,omitempty"`
	Vertices  []VertexRecord `yaml:"vertices,omitempty"`
	Edges     []EdgeRecord   `yaml:"edges,omitempty"`
	Grid      *GridRecord    `yaml:"grid,omitempty"`
}

// VertexRecord declares a vertex and its entry cost.
type VertexRecord struct {
	ID        string  `yaml:"id"`
	Heuristic float64 `yaml:"heuristic,omitempty"`
}

// EdgeRecord declares a directed edge; Both adds the mirror as well.
type EdgeRecord struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
	Both   bool    `yaml:"both,omitempty"`
}

// GridRecord embeds a terrain grid.
type GridRecord struct {
	Conn          int     `yaml:"conn,omitempty"` // 4 (default) or 8
	LandThreshold *int    `yaml:"land_threshold,omitempty"`
	StepCost      float64 `yaml:"step_cost,omitempty"`
	DiagonalCost  float64 `yaml:"diagonal_cost,omitempty"`
	Rows          [][]int `yaml:"rows"`
}

// CellKey is the vertex key of grid cell c.
func CellKey(c gridgraph.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Validate checks the document without building it.
func (d *Document) Validate() error {
	for i, v := range d.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%w: vertex #%d has no id", ErrInvalidDocument, i)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge #%d needs from and to", ErrInvalidDocument, i)
		}
	}
	if d.Grid != nil && d.Grid.Conn != 0 && d.Grid.Conn != 4 && d.Grid.Conn != 8 {
		return fmt.Errorf("%w: grid conn must be 4 or 8, got %d", ErrInvalidDocument, d.Grid.Conn)
	}

	return nil
}

// Graph builds the described graph: grid first, then vertices, then edges.
func (d *Document) Graph() (*core.Graph[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	var opts []core.GraphOption[string]
	if d.Symmetric {
		opts = append(opts, core.WithSymmetric[string]())
	}
	if d.Root != "" {
		opts = append(opts, core.WithRoot(d.Root))
	}
	g := core.NewGraph(opts...)

	if d.Grid != nil {
		if err := d.Grid.apply(g); err != nil {
			return nil, err
		}
	}
	for _, v := range d.Vertices {
		g.AddVertexID(v.ID)
		if v.Heuristic == 0 {
			continue // keeps a grid-derived cost
		}
		if err := g.SetHeuristic(v.ID, v.Heuristic); err != nil {
			return nil, err
		}
	}
	for i, e := range d.Edges {
		add := g.AddEdge
		if e.Both {
			add = g.AddEdgeBoth
		}
		if err := add(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %s→%s: %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// apply copies the grid's land cells and links into g.
func (r *GridRecord) apply(g *core.Graph[string]) error {
	opts := gridgraph.DefaultGridOptions()
	if r.Conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	if r.LandThreshold != nil {
		opts.LandThreshold = *r.LandThreshold
	}
	if r.StepCost > 0 {
		opts.StepCost = r.StepCost
	}
	if r.DiagonalCost > 0 {
		opts.DiagonalCost = r.DiagonalCost
	}
	gg, err := gridgraph.NewGridGraph(r.Rows, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	cells := gg.ToCoreGraph()
	for _, c := range cells.Vertices() {
		h, _ := cells.Heuristic(c)
		g.AddVertex(core.NewVertex(CellKey(c), h))
	}
	for _, e := range cells.Edges() {
		if err = g.AddEdge(CellKey(e.From), CellKey(e.To), e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// FromGraph describes g as a Document. On a symmetric graph every mirrored pair is
// written once with both set.
func FromGraph(g *core.Graph[string]) *Document {
	d := &Document{Symmetric: g.Symmetric()}
	if root, ok := g.Root(); ok {
		d.Root = root
	}
	for _, id := range g.Vertices() {
		h, _ := g.Heuristic(id)
		d.Vertices = append(d.Vertices, VertexRecord{ID: id, Heuristic: h})
	}
	written := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		if written[[2]string{e.From, e.To}] {
			continue
		}
		rec := EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
		if back := g.Edge(e.To, e.From); e.From != e.To && back.IsValid() && back.Weight == e.Weight {
			rec.Both = true
			written[[2]string{e.To, e.From}] = true
		}
		written[[2]string{e.From, e.To}] = true
		d.Edges = append(d.Edges, rec)
	}

	return d
}

// Decode reads one YAML document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Document
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Encode writes d as YAML to w.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Load reads and builds the graph stored at path.
func Load(path string) (*core.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d.Graph()
}

// Save writes g to path as YAML.
func Save(path string, g *core.Graph[string]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Encode(f, FromGraph(g)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
