package polyhedron

import (
	"github.com/golang/geo/r3"
)

// Plane is the set of points x with Normal.Dot(x) == Offset. Points with a
// larger dot product are in front of it.
type Plane struct {
	Normal r3.Vector
	Offset float64
}

func (pl Plane) Distance(p r3.Vector) float64 {
	return pl.Normal.Dot(p) - pl.Offset
}

// Planes returns the supporting plane of every facet with a unit normal
// pointing outwards. Degenerate facets are skipped.
func (p *Polyhedron) Planes() []Plane {
	var planes []Plane
	for i := range p.Facets {
		corners := p.Facet(i)
		n := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0]))
		if n.Norm() == 0 {
			continue
		}
		n = n.Normalize()
		planes = append(planes, Plane{Normal: n, Offset: n.Dot(corners[0])})
	}
	return planes
}

// IsPointInsidePlanes reports whether point is behind every plane, allowing
// it to be up to margin in front.
func IsPointInsidePlanes(planes []Plane, point r3.Vector, margin float64) bool {
	for _, pl := range planes {
		if pl.Distance(point)-margin > 0 {
			return false
		}
	}
	return true
}

// AreVerticesBehindPlane reports whether no vertex is more than margin in
// front of plane.
func AreVerticesBehindPlane(plane Plane, vertices []r3.Vector, margin float64) bool {
	for _, v := range vertices {
		if plane.Distance(v)-margin > 0 {
			return false
		}
	}
	return true
}

// Contains reports whether point lies inside the convex polyhedron p,
// within margin of its surface.
func (p *Polyhedron) Contains(point r3.Vector, margin float64) bool {
	return IsPointInsidePlanes(p.Planes(), point, margin)
}

// IsConvex reports whether every vertex is behind every facet plane.
func (p *Polyhedron) IsConvex(margin float64) bool {
	for _, pl := range p.Planes() {
		if !AreVerticesBehindPlane(pl, p.Vertices, margin) {
			return false
		}
	}
	return true
}
