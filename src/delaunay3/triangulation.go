// Package delaunay3 implements an incremental 3D Delaunay triangulation.
//
// Like its 2D counterpart the triangulation is closed by an infinite vertex:
// every hull facet is shared with an infinite cell, so every cell has four
// neighbours and the hull is the link of InfiniteVertex.
package delaunay3

import (
	"domainmesh/src/geometry"

	"go.uber.org/zap"
)

type Vertex int

const InfiniteVertex Vertex = 0

type Triangulation struct {
	points  []geometry.Point3
	index   map[geometry.Point3]Vertex
	cells   []cell
	free    []Cell
	dim     int
	pending []Vertex

	log *zap.Logger
}

type Option func(*Triangulation)

func WithLogger(log *zap.Logger) Option {
	return func(t *Triangulation) {
		t.log = log
	}
}

// New returns a triangulation of points.
func New(points []geometry.Point3, opts ...Option) (*Triangulation, error) {
	t := &Triangulation{
		points: []geometry.Point3{{}},
		index:  make(map[geometry.Point3]Vertex),
		dim:    -1,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.InsertPoints(points...); err != nil {
		return nil, err
	}
	return t, nil
}

// Dimension is -1 when empty and 3 once four points are not coplanar.
func (t *Triangulation) Dimension() int {
	return t.dim
}

func (t *Triangulation) NumberOfVertices() int {
	return len(t.points) - 1
}

func (t *Triangulation) NumberOfFiniteCells() int {
	return len(t.FiniteCells())
}

func (t *Triangulation) Point(v Vertex) geometry.Point3 {
	return t.points[v]
}

func (t *Triangulation) Points() []geometry.Point3 {
	return append([]geometry.Point3(nil), t.points[1:]...)
}

func (t *Triangulation) IsInfinite(c Cell) bool {
	return t.cells[c].infinite()
}

func (t *Triangulation) Vertex(c Cell, i int) Vertex {
	return t.cells[c].v[i]
}

func (t *Triangulation) Neighbor(c Cell, i int) Cell {
	return t.cells[c].n[i]
}

func (t *Triangulation) AllCells() []Cell {
	var cs []Cell
	for c := range t.cells {
		if t.cells[c].alive {
			cs = append(cs, Cell(c))
		}
	}
	return cs
}

func (t *Triangulation) FiniteCells() []Cell {
	var cs []Cell
	for c := range t.cells {
		if t.cells[c].alive && !t.cells[c].infinite() {
			cs = append(cs, Cell(c))
		}
	}
	return cs
}

func (t *Triangulation) Tetrahedron(c Cell) [4]geometry.Point3 {
	r := &t.cells[c]
	return [4]geometry.Point3{t.points[r.v[0]], t.points[r.v[1]], t.points[r.v[2]], t.points[r.v[3]]}
}

// FacetVertices returns the vertices of f ordered counter-clockwise as seen
// from outside f.Cell.
func (t *Triangulation) FacetVertices(f Facet) [3]Vertex {
	r := &t.cells[f.Cell]
	o := outward[f.Index]
	return [3]Vertex{r.v[o[0]], r.v[o[1]], r.v[o[2]]}
}

func (t *Triangulation) Triangle(f Facet) geometry.Triangle3 {
	vs := t.FacetVertices(f)
	return geometry.Triangle3{t.points[vs[0]], t.points[vs[1]], t.points[vs[2]]}
}

// Mirror returns the same facet seen from the neighbouring cell.
func (t *Triangulation) Mirror(f Facet) Facet {
	return Facet{Cell: t.cells[f.Cell].n[f.Index], Index: t.mirrorIndex(f.Cell, f.Index)}
}

// FiniteFacets lists every facet with three finite vertices once.
func (t *Triangulation) FiniteFacets() []Facet {
	var fs []Facet
	for c := range t.cells {
		r := &t.cells[c]
		if !r.alive {
			continue
		}
		k := r.index(InfiniteVertex)
		for i := 0; i < 4; i++ {
			if k >= 0 && k != i {
				continue
			}
			if Cell(c) < r.n[i] {
				fs = append(fs, Facet{Cell: Cell(c), Index: i})
			}
		}
	}
	return fs
}

// HullFacets lists the convex hull facets, seen from their finite cell so
// that they are oriented outwards.
func (t *Triangulation) HullFacets() []Facet {
	var fs []Facet
	for c := range t.cells {
		r := &t.cells[c]
		if !r.alive {
			continue
		}
		if k := r.index(InfiniteVertex); k >= 0 {
			fs = append(fs, t.Mirror(Facet{Cell: Cell(c), Index: k}))
		}
	}
	return fs
}

// Volume is the total volume of the finite cells.
func (t *Triangulation) Volume() float64 {
	var v float64
	for _, c := range t.FiniteCells() {
		p := t.Tetrahedron(c)
		v += p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Dot(p[3].Sub(p[0])) / 6
	}
	return v
}
