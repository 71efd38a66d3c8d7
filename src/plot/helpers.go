package plot

import (
	"domainmesh/src/delaunay3"
	"domainmesh/src/domain"
	"domainmesh/src/geometry"
	"domainmesh/src/polyhedron"
	"domainmesh/src/triangulation"
)

// PlotTriangulatedPolygon draws constrained edges in red and the remaining
// edges of in-domain faces in blue, then rescales the view about its
// centre. Other edges are skipped.
func PlotTriangulatedPolygon(ax *Axes2D, cdt *triangulation.Triangulation, fi *domain.FaceInfo, scale float64) {
	constrained := Style{Stroke: Red, LineWidth: 1.5}
	inside := Style{Stroke: Blue, LineWidth: 1}
	for _, e := range cdt.FiniteEdges() {
		s := cdt.Segment(e)
		switch {
		case cdt.IsConstrained(e.Face, e.Index):
			ax.Segment(s.Source, s.Target, constrained)
		case fi.InDomain(e.Face):
			ax.Segment(s.Source, s.Target, inside)
		}
	}
	ax.Rescale(scale)
}

// PlotFacets adds every finite facet of dt with the given style, leaving
// the limits alone.
func PlotFacets(ax *Axes3D, dt *delaunay3.Triangulation, style Style) {
	for _, f := range dt.FiniteFacets() {
		tri := dt.Triangle(f)
		ax.AddPoly3D(tri[:], style)
	}
}

// PlotTriangulatedPolyhedron adds every finite facet of dt in grey with black
// edges, growing the limits facet by facet so that all of them are in view.
func PlotTriangulatedPolyhedron(ax *Axes3D, dt *delaunay3.Triangulation) {
	style := Style{Fill: Grey, Stroke: Black, LineWidth: 0.5}
	for _, f := range dt.FiniteFacets() {
		tri := dt.Triangle(f)
		ax.AddPoly3D(tri[:], style)
		ax.ExtendLimits(tri[:]...)
	}
}

// PlotPolyhedronVertices adds a single red polygon through all vertices of p
// and sets equal limits on every axis, covering all coordinates plus margin.
func PlotPolyhedronVertices(ax *Axes3D, p *polyhedron.Polyhedron, margin float64) {
	if p.IsEmpty() {
		return
	}
	b := p.Bounds()
	lo := min(b.Min.X, b.Min.Y, b.Min.Z) - margin
	hi := max(b.Max.X, b.Max.Y, b.Max.Z) + margin
	ax.SetLimits(geometry.Bounds3{
		Min: geometry.NewPoint3(lo, lo, lo),
		Max: geometry.NewPoint3(hi, hi, hi),
	})
	ax.AddPoly3D(p.Points(), Style{Fill: Red})
}
