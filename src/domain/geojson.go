package domain

import (
	"io"
	"math"

	"domainmesh/src/geometry"
	"domainmesh/src/triangulation"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Mesh is a FaceGraph that can also report face coordinates.
type Mesh interface {
	FaceGraph
	IsInfinite(f triangulation.Face) bool
	Triangle(f triangulation.Face) [3]geometry.Point
}

func ring(tri [3]geometry.Point) orb.Ring {
	r := make(orb.Ring, 0, 4)
	for _, p := range tri {
		r = append(r, orb.Point{p.X, p.Y})
	}
	return append(r, r[0])
}

// FeatureCollection exports every finite face as a polygon feature carrying
// its nesting level and domain membership.
func FeatureCollection(m Mesh, fi *FaceInfo) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range m.AllFaces() {
		if m.IsInfinite(f) {
			continue
		}
		feat := geojson.NewFeature(orb.Polygon{ring(m.Triangle(f))})
		feat.ID = int(f)
		if l, ok := fi.Level(f); ok {
			feat.Properties["level"] = l
		}
		feat.Properties["in_domain"] = fi.InDomain(f)
		fc.Append(feat)
	}
	return fc
}

// WriteGeoJSON writes the FeatureCollection of m to w.
func WriteGeoJSON(w io.Writer, m Mesh, fi *FaceInfo) error {
	data, err := FeatureCollection(m, fi).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal feature collection")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write feature collection")
}

// DomainPolygons returns the finite faces inside the domain.
func DomainPolygons(m Mesh, fi *FaceInfo) orb.MultiPolygon {
	var mp orb.MultiPolygon
	for _, f := range m.AllFaces() {
		if m.IsInfinite(f) || !fi.InDomain(f) {
			continue
		}
		mp = append(mp, orb.Polygon{ring(m.Triangle(f))})
	}
	return mp
}

// DomainArea is the total area of the faces inside the domain.
func DomainArea(m Mesh, fi *FaceInfo) float64 {
	var area float64
	for _, p := range DomainPolygons(m, fi) {
		area += math.Abs(planar.Area(p))
	}
	return area
}
