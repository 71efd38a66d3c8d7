package triangulation

import (
	"github.com/pkg/errors"
)

// Face is a stable handle to a triangle of the triangulation.
type Face int

// NoFace is returned where no face exists, e.g. InfiniteFace of a
// triangulation that has not reached dimension 2.
const NoFace Face = -1

// Edge is identified by an incident face and the local index of the vertex
// opposite to it.
type Edge struct {
	Face  Face
	Index int
}

// face is the arena record behind a Face handle. Vertices are in
// counter-clockwise order; n[i] and c[i] describe the edge opposite v[i].
type face struct {
	v     [3]Vertex
	n     [3]Face
	c     [3]bool
	alive bool
}

func ccw(i int) int { return (i + 1) % 3 }

func cw(i int) int { return (i + 2) % 3 }

func (f *face) index(v Vertex) int {
	for i := 0; i < 3; i++ {
		if f.v[i] == v {
			return i
		}
	}
	return -1
}

func (f *face) has(v Vertex) bool {
	return f.index(v) >= 0
}

func (f *face) infinite() bool {
	return f.has(InfiniteVertex)
}

func (t *Triangulation) newFace() Face {
	if n := len(t.free); n > 0 {
		f := t.free[n-1]
		t.free = t.free[:n-1]
		return f
	}
	t.faces = append(t.faces, face{})
	return Face(len(t.faces) - 1)
}

func (t *Triangulation) releaseFace(f Face) {
	t.faces[f] = face{}
	t.free = append(t.free, f)
}

// mirrorIndex returns the index in Neighbor(f, i) of the vertex opposite
// the shared edge.
func (t *Triangulation) mirrorIndex(f Face, i int) int {
	r := &t.faces[f]
	a, b := r.v[ccw(i)], r.v[cw(i)]
	g := &t.faces[r.n[i]]
	for k := 0; k < 3; k++ {
		if g.v[k] != a && g.v[k] != b {
			return k
		}
	}
	panic(errors.Errorf("triangulation: faces %d and %d are not neighbours", f, r.n[i]))
}

func (t *Triangulation) setConstrained(f Face, i int, c bool) {
	j := t.mirrorIndex(f, i)
	g := t.faces[f].n[i]
	t.faces[f].c[i] = c
	t.faces[g].c[j] = c
}

type directed [2]Vertex

type boundary struct {
	face        Face
	index       int
	constrained bool
}

// rebuild replaces the dead faces by the given counter-clockwise triangles.
// The triangles must tile exactly the region covered by dead; edges on the
// border keep their outer neighbour and constraint flag.
func (t *Triangulation) rebuild(dead []Face, tris [][3]Vertex) []Face {
	isDead := make(map[Face]bool, len(dead))
	for _, f := range dead {
		isDead[f] = true
	}
	outer := make(map[directed]boundary)
	for _, f := range dead {
		r := &t.faces[f]
		for i := 0; i < 3; i++ {
			if isDead[r.n[i]] {
				continue
			}
			outer[directed{r.v[ccw(i)], r.v[cw(i)]}] = boundary{
				face:        r.n[i],
				index:       t.mirrorIndex(f, i),
				constrained: r.c[i],
			}
		}
	}
	for _, f := range dead {
		t.releaseFace(f)
	}

	created := make([]Face, len(tris))
	inner := make(map[directed]Face, 3*len(tris))
	for k, tri := range tris {
		f := t.newFace()
		created[k] = f
		t.faces[f] = face{v: tri, n: [3]Face{NoFace, NoFace, NoFace}, alive: true}
		for i := 0; i < 3; i++ {
			inner[directed{tri[ccw(i)], tri[cw(i)]}] = f
		}
	}
	for _, f := range created {
		r := &t.faces[f]
		for i := 0; i < 3; i++ {
			a, b := r.v[ccw(i)], r.v[cw(i)]
			if g, ok := inner[directed{b, a}]; ok {
				r.n[i] = g
				continue
			}
			o, ok := outer[directed{a, b}]
			if !ok {
				panic(errors.Errorf("triangulation: edge %d-%d left open", a, b))
			}
			r.n[i] = o.face
			r.c[i] = o.constrained
			t.faces[o.face].n[o.index] = f
		}
	}
	return created
}
