package sections

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kataras/golog"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = fmt.Errorf("sections: %w", core.ErrNilGraph)

// errFound stops the reachability BFS early once the target is seen.
var errFound = errors.New("sections: target reached")

// Option configures Detect.
type Option func(*Options)

// Options holds Detect parameters.
type Options struct {
	// Trim keeps only the largest section.
	Trim bool

	// Logger receives debug and warning output; defaults to golog.Default.
	Logger *golog.Logger
}

// DefaultOptions returns Options with trimming disabled and golog.Default.
func DefaultOptions() Options {
	return Options{Logger: golog.Default}
}

// WithTrim removes every section except the largest.
func WithTrim() Option {
	return func(o *Options) { o.Trim = true }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *golog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Section is one connected region, members in visit order.
type Section[K comparable] struct {
	ID      string
	Members []K
}

// Result describes a Detect run.
type Result[K comparable] struct {
	// Sections in discovery order. With trimming only the survivor remains.
	Sections []Section[K]

	// Removed lists the vertices deleted by trimming.
	Removed []K
}

// Largest returns the section with the most members; the first one wins ties.
// ok is false for an empty result.
func (r *Result[K]) Largest() (sec Section[K], ok bool) {
	for i, s := range r.Sections {
		if i == 0 || len(s.Members) > len(sec.Members) {
			sec = s
		}
		ok = true
	}

	return sec, ok
}

// Detect assigns a section ID to every vertex of g. Edge direction is ignored.
func Detect[K comparable](g *core.Graph[K], opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result[K]{}
	root, ok := g.Root()
	if !ok {
		g.SetSections(nil)
		return res, nil
	}
	view := g
	if asym := g.Asymmetric(); len(asym) > 0 {
		o.Logger.Warnf("sections: %d directed edges without mirror (first %v→%v); sections ignore direction, a route inside one may still not exist",
			len(asym), asym[0].From, asym[0].To)
		view = undirected(g, root)
	}

	// 1) One full-coverage BFS; every start opens a new traversal tree.
	walk, err := bfs.BFS(view, root, bfs.WithIncludeAll[K]())
	if err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}

	// 2) Parents precede children in Order, so each vertex inherits its parent's section.
	stamps := make(map[K]string, len(walk.Order))
	index := make(map[string]int, len(walk.Starts))
	for _, id := range walk.Order {
		sid, inTree := "", false
		if parent, has := walk.Parent[id]; has {
			sid, inTree = stamps[parent], true
		}
		if !inTree {
			sid = uuid.NewString()
			index[sid] = len(res.Sections)
			res.Sections = append(res.Sections, Section[K]{ID: sid})
		}
		stamps[id] = sid
		i := index[sid]
		res.Sections[i].Members = append(res.Sections[i].Members, id)
	}

	// 3) Optional trim down to the largest section.
	if o.Trim && len(res.Sections) > 1 {
		keep, _ := res.Largest()
		for _, s := range res.Sections {
			if s.ID != keep.ID {
				res.Removed = append(res.Removed, s.Members...)
			}
		}
		g.RemoveVertices(res.Removed)
		for _, id := range res.Removed {
			delete(stamps, id)
		}
		res.Sections = []Section[K]{keep}
		o.Logger.Debugf("sections: trimmed %d vertices, kept section %s (%d members)",
			len(res.Removed), keep.ID, len(keep.Members))
	}
	g.SetSections(stamps)
	o.Logger.Debugf("sections: %d sections over %d vertices", len(res.Sections), g.Len())

	return res, nil
}

// undirected copies g's vertices (same order, same root) with every edge mirrored,
// so BFS over it yields weakly connected components.
func undirected[K comparable](g *core.Graph[K], root K) *core.Graph[K] {
	u := core.NewGraph(core.WithSymmetric[K](), core.WithRoot(root))
	for _, id := range g.Vertices() {
		u.AddVertexID(id)
	}
	for _, e := range g.Edges() {
		_ = u.AddEdge(e.From, e.To, e.Weight) // weights were validated on insert
	}

	return u
}

// PathExists reports whether end is reachable from start. Both must exist.
func PathExists[K comparable](g *core.Graph[K], start, end K) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasVertex(end) {
		return false, fmt.Errorf("sections: end: %w: %v", core.ErrVertexNotFound, end)
	}
	if start == end {
		return true, nil
	}
	_, err := bfs.BFS(g, start, bfs.WithOnVisit(func(id K, _ int) error {
		if id == end {
			return errFound
		}
		return nil
	}))
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("sections: %w", err)
	default:
		return false, nil
	}
}

// VerticesConnected reports whether b is reachable from a. A nil vertex or one
// that is not part of g is never connected.
func VerticesConnected[K comparable](g *core.Graph[K], a, b *core.Vertex[K]) bool {
	if g == nil || a == nil || b == nil {
		return false
	}
	ok, err := PathExists(g, a.ID, b.ID)

	return err == nil && ok
}
