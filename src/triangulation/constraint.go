package triangulation

import (
	"domainmesh/src/geometry"

	"github.com/pkg/errors"
)

// InsertConstraint forces the segment a-b to be an edge of the
// triangulation and marks it constrained. Faces crossed by the segment are
// removed and the two resulting cavities are retriangulated. A vertex lying
// on the segment splits the constraint in two. Below dimension 2 the
// constraint is queued until the triangulation can hold it.
func (t *Triangulation) InsertConstraint(a, b Vertex) error {
	if err := t.checkVertex(a); err != nil {
		return err
	}
	if err := t.checkVertex(b); err != nil {
		return err
	}
	if a == b {
		return errors.Wrapf(ErrDegenerateConstraint, "constraint %d-%d", a, b)
	}
	if t.dim < 2 {
		t.queued = append(t.queued, [2]Vertex{a, b})
		return nil
	}
	return t.insertConstraint(a, b)
}

// InsertSegment inserts both points and constrains the segment between them.
func (t *Triangulation) InsertSegment(s geometry.Segment) error {
	a, err := t.Insert(s.Source)
	if err != nil {
		return err
	}
	b, err := t.Insert(s.Target)
	if err != nil {
		return err
	}
	if a == b {
		return errors.Wrapf(ErrDegenerateConstraint, "segment %s-%s", s.Source, s.Target)
	}
	return t.InsertConstraint(a, b)
}

func (t *Triangulation) checkVertex(v Vertex) error {
	if v <= InfiniteVertex || int(v) >= len(t.points) {
		return errors.Wrapf(ErrInvalidVertex, "vertex %d", v)
	}
	return nil
}

func (t *Triangulation) insertConstraint(a, b Vertex) error {
	if e, ok := t.findEdge(a, b); ok {
		t.setConstrained(e.Face, e.Index, true)
		return nil
	}
	pa, pb := t.points[a], t.points[b]

	// Find the face around a whose interior the segment enters. A neighbour
	// of a lying on the segment splits it.
	start := NoFace
	var right, left Vertex
	for f := range t.faces {
		r := &t.faces[f]
		k := r.index(a)
		if !r.alive || k < 0 || r.infinite() {
			continue
		}
		u, w := r.v[ccw(k)], r.v[cw(k)]
		for _, x := range [2]Vertex{u, w} {
			if geometry.Orient2D(pa, pb, t.points[x]) == geometry.Collinear && geometry.Between(pa, pb, t.points[x]) {
				if err := t.insertConstraint(a, x); err != nil {
					return err
				}
				return t.insertConstraint(x, b)
			}
		}
		if geometry.Orient2D(pa, t.points[u], pb) > 0 && geometry.Orient2D(pa, t.points[w], pb) < 0 {
			start, right, left = Face(f), u, w
		}
	}
	if start == NoFace {
		return errors.Errorf("triangulation: segment %d-%d leaves the triangulation", a, b)
	}

	// Walk the faces crossed by a-b, collecting the vertices on either side.
	dead := []Face{start}
	rightChain := []Vertex{right}
	leftChain := []Vertex{left}
	f, i := start, t.faces[start].index(a)
	end := b
	for {
		if t.faces[f].c[i] {
			u, w := t.EdgeVertices(Edge{Face: f, Index: i})
			return errors.Wrapf(ErrIntersectingConstraints, "constraint %d-%d crosses %d-%d", a, b, u, w)
		}
		g := t.faces[f].n[i]
		x := t.faces[g].v[t.mirrorIndex(f, i)]
		dead = append(dead, g)
		if x == b {
			break
		}
		if x == InfiniteVertex {
			return errors.Errorf("triangulation: segment %d-%d leaves the triangulation", a, b)
		}
		o := geometry.Orient2D(pa, pb, t.points[x])
		if o == geometry.Collinear {
			end = x
			break
		}
		if o > 0 {
			f, i = g, t.faces[g].index(left)
			leftChain = append(leftChain, x)
			left = x
		} else {
			f, i = g, t.faces[g].index(right)
			rightChain = append(rightChain, x)
			right = x
		}
	}

	var tris [][3]Vertex
	tris = t.triangulateCavity(tris, a, end, leftChain)
	tris = t.triangulateCavity(tris, end, a, reversed(rightChain))
	t.rebuild(dead, tris)

	e, _ := t.findEdge(a, end)
	t.setConstrained(e.Face, e.Index, true)
	if end != b {
		return t.insertConstraint(end, b)
	}
	return nil
}

// triangulateCavity triangulates the polygon a, b, chain[n-1], ..., chain[0]
// lying left of a->b, picking for each base edge the chain vertex whose
// circumcircle holds no other chain vertex.
func (t *Triangulation) triangulateCavity(tris [][3]Vertex, a, b Vertex, chain []Vertex) [][3]Vertex {
	if len(chain) == 0 {
		return tris
	}
	pa, pb := t.points[a], t.points[b]
	ci := 0
	for k := 1; k < len(chain); k++ {
		if geometry.InCircle(pa, pb, t.points[chain[ci]], t.points[chain[k]]) > 0 {
			ci = k
		}
	}
	c := chain[ci]
	tris = t.triangulateCavity(tris, a, c, chain[:ci])
	tris = t.triangulateCavity(tris, c, b, chain[ci+1:])
	return append(tris, [3]Vertex{a, b, c})
}

func reversed(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
