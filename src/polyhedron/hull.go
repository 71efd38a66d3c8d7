package polyhedron

import (
	"domainmesh/src/geometry"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

// HullEpsilon is the distance tolerance handed to quickhull.
var HullEpsilon = 1e-12

// ConvexHull returns the triangulated convex hull of points. The result only
// holds hull vertices, renumbered in order of first use, with facets
// counter-clockwise seen from outside.
func ConvexHull(points []geometry.Point3) (hull *Polyhedron, err error) {
	if !spansVolume(points) {
		return nil, errors.Wrapf(ErrEmptyPointSet, "convex hull of %d points", len(points))
	}
	defer func() {
		if v := recover(); v != nil {
			hull, err = nil, errors.Errorf("polyhedron: quickhull failed: %v", v)
		}
	}()

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, HullEpsilon)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.Errorf("polyhedron: quickhull returned %d indices", len(ch.Indices))
	}

	var centroid r3.Vector
	remap := make(map[int]int)
	hull = &Polyhedron{}
	for _, i := range ch.Indices {
		if _, ok := remap[i]; ok {
			continue
		}
		remap[i] = len(hull.Vertices)
		hull.Vertices = append(hull.Vertices, points[i])
		centroid = centroid.Add(points[i])
	}
	centroid = centroid.Mul(1 / float64(len(hull.Vertices)))

	for k := 0; k+2 < len(ch.Indices); k += 3 {
		a, b, c := remap[ch.Indices[k]], remap[ch.Indices[k+1]], remap[ch.Indices[k+2]]
		switch geometry.Orient3D(hull.Vertices[a], hull.Vertices[b], hull.Vertices[c], centroid) {
		case geometry.Collinear:
			continue
		case geometry.CounterClockwise:
			b, c = c, b
		}
		hull.Facets = append(hull.Facets, []int{a, b, c})
	}
	return hull, nil
}

// spansVolume reports whether some four of the points are not coplanar.
func spansVolume(points []geometry.Point3) bool {
	if len(points) < 4 {
		return false
	}
	a := points[0]
	b, c := -1, -1
	for i := 1; i < len(points); i++ {
		switch {
		case b < 0:
			if points[i] != a {
				b = i
			}
		case c < 0:
			if !geometry.Collinear3(a, points[b], points[i]) {
				c = i
			}
		default:
			if geometry.Orient3D(a, points[b], points[c], points[i]) != geometry.Collinear {
				return true
			}
		}
	}
	return false
}
