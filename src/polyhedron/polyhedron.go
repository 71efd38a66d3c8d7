// Package polyhedron holds surface meshes read from OFF files or built as
// convex hulls.
package polyhedron

import (
	"domainmesh/src/geometry"

	"github.com/pkg/errors"
)

var (
	ErrMalformedOFF  = errors.New("polyhedron: malformed OFF data")
	ErrEmptyPointSet = errors.New("polyhedron: point set does not span a volume")
)

// Polyhedron is a list of vertices and facets indexing into it. Facets are
// ordered counter-clockwise when seen from outside.
type Polyhedron struct {
	Vertices []geometry.Point3
	Facets   [][]int
}

// Points returns a copy of the vertex positions.
func (p *Polyhedron) Points() []geometry.Point3 {
	if p == nil || len(p.Vertices) == 0 {
		return nil
	}
	return append([]geometry.Point3(nil), p.Vertices...)
}

func (p *Polyhedron) SizeOfVertices() int {
	return len(p.Vertices)
}

func (p *Polyhedron) SizeOfFacets() int {
	return len(p.Facets)
}

func (p *Polyhedron) IsEmpty() bool {
	return p == nil || len(p.Vertices) == 0
}

// Facet returns the corner positions of facet i.
func (p *Polyhedron) Facet(i int) []geometry.Point3 {
	f := p.Facets[i]
	out := make([]geometry.Point3, len(f))
	for k, v := range f {
		out[k] = p.Vertices[v]
	}
	return out
}

// FacetTriangles fans every facet into triangles around its first corner.
func (p *Polyhedron) FacetTriangles() []geometry.Triangle3 {
	var tris []geometry.Triangle3
	for _, f := range p.Facets {
		for k := 1; k+1 < len(f); k++ {
			tris = append(tris, geometry.Triangle3{p.Vertices[f[0]], p.Vertices[f[k]], p.Vertices[f[k+1]]})
		}
	}
	return tris
}

func (p *Polyhedron) Bounds() geometry.Bounds3 {
	return geometry.EmptyBounds3().Extend(p.Vertices...)
}

// NumberOfEdges counts the distinct undirected facet edges.
func (p *Polyhedron) NumberOfEdges() int {
	seen := make(map[[2]int]bool)
	for _, f := range p.Facets {
		for k := range f {
			a, b := f[k], f[(k+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			seen[[2]int{a, b}] = true
		}
	}
	return len(seen)
}

// SurfaceArea is the total area of the facets.
func (p *Polyhedron) SurfaceArea() float64 {
	var a float64
	for _, t := range p.FacetTriangles() {
		a += t.Area()
	}
	return a
}

// Volume is the signed volume enclosed by a closed, outward oriented
// surface.
func (p *Polyhedron) Volume() float64 {
	var v float64
	for _, t := range p.FacetTriangles() {
		v += t[0].Dot(t[1].Cross(t[2])) / 6
	}
	return v
}

// Validate checks that every facet has at least three corners that index
// existing vertices.
func (p *Polyhedron) Validate() error {
	for i, f := range p.Facets {
		if len(f) < 3 {
			return errors.Wrapf(ErrMalformedOFF, "facet %d has %d corners", i, len(f))
		}
		for _, v := range f {
			if v < 0 || v >= len(p.Vertices) {
				return errors.Wrapf(ErrMalformedOFF, "facet %d references vertex %d of %d", i, v, len(p.Vertices))
			}
		}
	}
	return nil
}
