package delaunay3

import (
	"domainmesh/src/geometry"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidPoint = errors.New("delaunay3: point coordinates must be finite")

// Polyhedron is any point container, such as a polyhedron.Polyhedron.
type Polyhedron interface {
	Points() []geometry.Point3
}

// InsertPolyhedron inserts the points of p. An empty polyhedron is a no-op.
func (t *Triangulation) InsertPolyhedron(p Polyhedron) error {
	return t.InsertPoints(p.Points()...)
}

func (t *Triangulation) InsertPoints(points ...geometry.Point3) error {
	for i, p := range points {
		if _, err := t.Insert(p); err != nil {
			return errors.Wrapf(err, "point %d", i)
		}
	}
	if len(points) > 0 {
		t.log.Debug("inserted points",
			zap.Int("points", len(points)),
			zap.Int("vertices", t.NumberOfVertices()),
			zap.Int("dimension", t.dim))
	}
	return nil
}

// Insert adds p by removing every cell whose circumsphere contains it and
// starring the cavity from p. A point already present returns its vertex.
func (t *Triangulation) Insert(p geometry.Point3) (Vertex, error) {
	if !geometry.IsFinite3(p) {
		return 0, errors.Wrapf(ErrInvalidPoint, "insert %v", p)
	}
	if v, ok := t.index[p]; ok {
		return v, nil
	}
	v := Vertex(len(t.points))
	t.points = append(t.points, p)
	t.index[p] = v

	if t.dim == 3 {
		t.insertPlaced(v)
	} else {
		t.pending = append(t.pending, v)
		t.lift()
	}
	return v, nil
}

// lift builds the first tetrahedron once four pending points are not
// coplanar and inserts the rest of the pending points.
func (t *Triangulation) lift() {
	pts := t.pending
	a, b := pts[0], Vertex(-1)
	if len(pts) > 1 {
		b = pts[1]
	}
	c, d := Vertex(-1), Vertex(-1)
	for _, w := range pts[min(2, len(pts)):] {
		switch {
		case c < 0:
			if !geometry.Collinear3(t.points[a], t.points[b], t.points[w]) {
				c = w
			}
		case geometry.Orient3D(t.points[a], t.points[b], t.points[c], t.points[w]) != geometry.Collinear:
			d = w
		}
		if d >= 0 {
			break
		}
	}
	switch {
	case b < 0:
		t.dim = 0
		return
	case c < 0:
		t.dim = 1
		return
	case d < 0:
		t.dim = 2
		return
	}

	if geometry.Orient3D(t.points[a], t.points[b], t.points[c], t.points[d]) < 0 {
		a, b = b, a
	}
	tet := [4]Vertex{a, b, c, d}
	cells := [][4]Vertex{tet}
	for i := 0; i < 4; i++ {
		inf := tet
		inf[i] = InfiniteVertex
		j, k := (i+1)%4, (i+2)%4
		inf[j], inf[k] = inf[k], inf[j]
		cells = append(cells, inf)
	}
	t.rebuild(nil, cells)
	t.dim = 3

	rest := t.pending
	t.pending = nil
	for _, w := range rest {
		if w != a && w != b && w != c && w != d {
			t.insertPlaced(w)
		}
	}
}

func (t *Triangulation) insertPlaced(v Vertex) {
	p := t.points[v]
	start := NoCell
	for c := range t.cells {
		if t.cells[c].alive && t.conflict(Cell(c), p) {
			start = Cell(c)
			break
		}
	}
	if start == NoCell {
		panic(errors.Errorf("delaunay3: no cell conflicts with %v", p))
	}

	inRegion := map[Cell]bool{start: true}
	region := []Cell{start}
	for k := 0; k < len(region); k++ {
		for _, n := range t.cells[region[k]].n {
			if inRegion[n] || !t.conflict(n, p) {
				continue
			}
			inRegion[n] = true
			region = append(region, n)
		}
	}

	var cells [][4]Vertex
	for _, c := range region {
		r := &t.cells[c]
		for i := 0; i < 4; i++ {
			if inRegion[r.n[i]] {
				continue
			}
			vs := r.v
			vs[i] = v
			cells = append(cells, vs)
		}
	}
	t.rebuild(region, cells)
}

// conflict reports whether p lies inside the circumsphere of c. For an
// infinite cell the sphere degenerates to the open half space beyond its
// hull facet, plus the circumcircle of the facet itself.
func (t *Triangulation) conflict(c Cell, p geometry.Point3) bool {
	r := &t.cells[c]
	var q [4]geometry.Point3
	for i, w := range r.v {
		q[i] = t.points[w]
	}
	k := r.index(InfiniteVertex)
	if k < 0 {
		return geometry.InSphere(q[0], q[1], q[2], q[3], p) > 0
	}
	q[k] = p
	switch geometry.Orient3D(q[0], q[1], q[2], q[3]) {
	case 1:
		return true
	case 0:
		o := outward[k]
		return geometry.CoplanarInCircle(q[o[0]], q[o[1]], q[o[2]], p) > 0
	}
	return false
}
