// Package triangulation implements a 2D constrained Delaunay triangulation.
//
// The triangulation is closed by an infinite vertex: every hull edge is
// shared with an infinite face (InfiniteVertex, a, b) covering the half plane
// to the left of a->b, so every face has exactly three neighbours. Faces and
// vertices are arena allocated and referenced by integer handles that stay
// valid until the face is destroyed by a later insertion.
package triangulation

import (
	"domainmesh/src/geometry"

	"go.uber.org/zap"
)

// Vertex is a stable handle to a point of the triangulation.
type Vertex int

// InfiniteVertex is shared by all infinite faces.
const InfiniteVertex Vertex = 0

type Triangulation struct {
	points []geometry.Point
	index  map[geometry.Point]Vertex
	faces  []face
	free   []Face
	dim    int

	// Vertices and constraints waiting for the triangulation to reach
	// dimension 2.
	pending []Vertex
	queued  [][2]Vertex

	log *zap.Logger
}

type Option func(*Triangulation)

func WithLogger(log *zap.Logger) Option {
	return func(t *Triangulation) {
		t.log = log
	}
}

func New(opts ...Option) *Triangulation {
	t := &Triangulation{
		points: []geometry.Point{{}},
		index:  make(map[geometry.Point]Vertex),
		dim:    -1,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Dimension is -1 when empty, 0 for a single point, 1 while all points are
// collinear and 2 otherwise.
func (t *Triangulation) Dimension() int {
	return t.dim
}

func (t *Triangulation) NumberOfVertices() int {
	return len(t.points) - 1
}

// NumberOfFaces counts finite faces.
func (t *Triangulation) NumberOfFaces() int {
	return len(t.FiniteFaces())
}

func (t *Triangulation) Point(v Vertex) geometry.Point {
	return t.points[v]
}

func (t *Triangulation) IsInfiniteVertex(v Vertex) bool {
	return v == InfiniteVertex
}

// Vertices returns the finite vertices in insertion order.
func (t *Triangulation) Vertices() []Vertex {
	vs := make([]Vertex, 0, len(t.points)-1)
	for v := 1; v < len(t.points); v++ {
		vs = append(vs, Vertex(v))
	}
	return vs
}

// AllFaces returns finite and infinite faces.
func (t *Triangulation) AllFaces() []Face {
	var fs []Face
	for f := range t.faces {
		if t.faces[f].alive {
			fs = append(fs, Face(f))
		}
	}
	return fs
}

func (t *Triangulation) FiniteFaces() []Face {
	var fs []Face
	for f := range t.faces {
		if t.faces[f].alive && !t.faces[f].infinite() {
			fs = append(fs, Face(f))
		}
	}
	return fs
}

// InfiniteFace returns one face incident to the infinite vertex, or NoFace
// below dimension 2.
func (t *Triangulation) InfiniteFace() Face {
	for f := range t.faces {
		if t.faces[f].alive && t.faces[f].infinite() {
			return Face(f)
		}
	}
	return NoFace
}

func (t *Triangulation) IsInfinite(f Face) bool {
	return t.faces[f].infinite()
}

func (t *Triangulation) Vertex(f Face, i int) Vertex {
	return t.faces[f].v[i]
}

func (t *Triangulation) Neighbor(f Face, i int) Face {
	return t.faces[f].n[i]
}

// IsConstrained reports whether the edge of f opposite to vertex i is
// constrained.
func (t *Triangulation) IsConstrained(f Face, i int) bool {
	return t.faces[f].c[i]
}

// Mirror returns the same edge seen from the neighbouring face.
func (t *Triangulation) Mirror(e Edge) Edge {
	return Edge{Face: t.faces[e.Face].n[e.Index], Index: t.mirrorIndex(e.Face, e.Index)}
}

// FiniteEdges lists every edge between two finite vertices once.
func (t *Triangulation) FiniteEdges() []Edge {
	var es []Edge
	for f := range t.faces {
		r := &t.faces[f]
		if !r.alive {
			continue
		}
		for i := 0; i < 3; i++ {
			if r.v[ccw(i)] == InfiniteVertex || r.v[cw(i)] == InfiniteVertex {
				continue
			}
			if Face(f) < r.n[i] {
				es = append(es, Edge{Face: Face(f), Index: i})
			}
		}
	}
	return es
}

// ConstrainedEdges lists every constrained edge once.
func (t *Triangulation) ConstrainedEdges() []Edge {
	var es []Edge
	for _, e := range t.FiniteEdges() {
		if t.IsConstrained(e.Face, e.Index) {
			es = append(es, e)
		}
	}
	return es
}

// EdgeVertices returns the endpoints of e in the orientation of e.Face.
func (t *Triangulation) EdgeVertices(e Edge) (Vertex, Vertex) {
	r := &t.faces[e.Face]
	return r.v[ccw(e.Index)], r.v[cw(e.Index)]
}

func (t *Triangulation) Segment(e Edge) geometry.Segment {
	a, b := t.EdgeVertices(e)
	return geometry.Segment{Source: t.points[a], Target: t.points[b]}
}

// Triangle returns the corners of a finite face.
func (t *Triangulation) Triangle(f Face) [3]geometry.Point {
	r := &t.faces[f]
	return [3]geometry.Point{t.points[r.v[0]], t.points[r.v[1]], t.points[r.v[2]]}
}

// findEdge returns an edge joining a and b.
func (t *Triangulation) findEdge(a, b Vertex) (Edge, bool) {
	for f := range t.faces {
		r := &t.faces[f]
		if !r.alive {
			continue
		}
		i, j := r.index(a), r.index(b)
		if i >= 0 && j >= 0 {
			return Edge{Face: Face(f), Index: 3 - i - j}, true
		}
	}
	return Edge{}, false
}
