package triangulation

import (
	"domainmesh/src/geometry"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Insert adds p and restores the constrained Delaunay property by edge
// flips. Inserting a point that is already present returns its vertex. A
// point on a constrained edge splits it into two constrained edges.
func (t *Triangulation) Insert(p geometry.Point) (Vertex, error) {
	if !p.IsFinite() {
		return 0, errors.Wrapf(ErrInvalidPoint, "insert %s", p)
	}
	if v, ok := t.index[p]; ok {
		return v, nil
	}
	v := Vertex(len(t.points))
	t.points = append(t.points, p)
	t.index[p] = v

	if t.dim == 2 {
		t.insertPlaced(v)
		return v, nil
	}

	t.pending = append(t.pending, v)
	if !t.lift() {
		return v, nil
	}
	t.log.Debug("triangulation reached dimension 2",
		zap.Int("vertices", t.NumberOfVertices()),
		zap.Int("queuedConstraints", len(t.queued)))

	return v, t.applyQueued()
}

// applyQueued inserts every queued constraint. A constraint that fails is
// dropped from the queue and its error joins the returned one; the others
// are still applied.
func (t *Triangulation) applyQueued() error {
	queued := t.queued
	t.queued = nil
	var err error
	for _, c := range queued {
		if cerr := t.insertConstraint(c[0], c[1]); cerr != nil {
			err = multierr.Append(err, errors.Wrapf(cerr, "apply queued constraint %d-%d", c[0], c[1]))
		}
	}
	return err
}

// InsertPoints inserts the points in order and returns their vertices.
func (t *Triangulation) InsertPoints(points ...geometry.Point) ([]Vertex, error) {
	vs := make([]Vertex, 0, len(points))
	for _, p := range points {
		v, err := t.Insert(p)
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// lift builds the first triangle once the pending points are no longer
// collinear and inserts the remaining pending points into it.
func (t *Triangulation) lift() bool {
	switch len(t.pending) {
	case 1:
		t.dim = 0
		return false
	case 2:
		t.dim = 1
		return false
	}
	a, b := t.pending[0], t.pending[1]
	c := Vertex(-1)
	for _, w := range t.pending[2:] {
		if geometry.Orient2D(t.points[a], t.points[b], t.points[w]) != geometry.Collinear {
			c = w
			break
		}
	}
	if c < 0 {
		t.dim = 1
		return false
	}
	if geometry.Orient2D(t.points[a], t.points[b], t.points[c]) < 0 {
		b, c = c, b
	}
	t.rebuild(nil, [][3]Vertex{
		{a, b, c},
		{InfiniteVertex, c, b},
		{InfiniteVertex, a, c},
		{InfiniteVertex, b, a},
	})
	t.dim = 2

	rest := t.pending
	t.pending = nil
	for _, w := range rest {
		if w != a && w != b && w != c {
			t.insertPlaced(w)
		}
	}
	return true
}

// insertPlaced inserts a vertex whose point is already recorded into a
// triangulation of dimension 2.
func (t *Triangulation) insertPlaced(v Vertex) {
	p := t.points[v]
	f, i := t.locate(p)

	var created []Face
	if i < 0 {
		r := t.faces[f]
		created = t.rebuild([]Face{f}, [][3]Vertex{
			{v, r.v[1], r.v[2]},
			{r.v[0], v, r.v[2]},
			{r.v[0], r.v[1], v},
		})
	} else {
		r := t.faces[f]
		g := r.n[i]
		j := t.mirrorIndex(f, i)
		c, a, b := r.v[i], r.v[ccw(i)], r.v[cw(i)]
		d := t.faces[g].v[j]
		constrained := r.c[i]
		created = t.rebuild([]Face{f, g}, [][3]Vertex{
			{v, b, c},
			{v, c, a},
			{v, a, d},
			{v, d, b},
		})
		if constrained {
			for _, w := range [2]Vertex{a, b} {
				e, _ := t.findEdge(v, w)
				t.setConstrained(e.Face, e.Index, true)
			}
		}
	}
	t.restoreDelaunay(v, created)
}

// locate returns the face containing p. The index is -1 when p is strictly
// inside the face and otherwise names the edge p lies on.
func (t *Triangulation) locate(p geometry.Point) (Face, int) {
	for f := range t.faces {
		r := &t.faces[f]
		if !r.alive {
			continue
		}
		if k := r.index(InfiniteVertex); k >= 0 {
			a, b := t.points[r.v[ccw(k)]], t.points[r.v[cw(k)]]
			switch o := geometry.Orient2D(a, b, p); {
			case o > 0:
				return Face(f), -1
			case o == 0 && geometry.Between(a, b, p):
				return Face(f), k
			}
			continue
		}
		on, inside := -1, true
		for i := 0; i < 3 && inside; i++ {
			switch geometry.Orient2D(t.points[r.v[ccw(i)]], t.points[r.v[cw(i)]], p) {
			case geometry.Clockwise:
				inside = false
			case geometry.Collinear:
				on = i
			}
		}
		if inside {
			return Face(f), on
		}
	}
	panic(errors.Errorf("triangulation: no face contains %s", p))
}

// restoreDelaunay flips unconstrained edges opposite v until every face
// around v passes the empty circle test.
func (t *Triangulation) restoreDelaunay(v Vertex, stack []Face) {
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r := &t.faces[f]
		i := r.index(v)
		if !r.alive || i < 0 || r.c[i] {
			continue
		}
		g := r.n[i]
		j := t.mirrorIndex(f, i)
		if !t.conflict(g, t.points[v]) {
			continue
		}
		a, b := r.v[ccw(i)], r.v[cw(i)]
		x := t.faces[g].v[j]
		stack = append(stack, t.rebuild([]Face{f, g}, [][3]Vertex{
			{v, a, x},
			{v, x, b},
		})...)
	}
}

// conflict reports whether p lies in the circumcircle of f. For an infinite
// face the circle degenerates to the open half plane left of its finite edge.
func (t *Triangulation) conflict(f Face, p geometry.Point) bool {
	r := &t.faces[f]
	if k := r.index(InfiniteVertex); k >= 0 {
		a, b := t.points[r.v[ccw(k)]], t.points[r.v[cw(k)]]
		return geometry.Orient2D(a, b, p) > 0
	}
	return geometry.InCircle(t.points[r.v[0]], t.points[r.v[1]], t.points[r.v[2]], p) > 0
}
