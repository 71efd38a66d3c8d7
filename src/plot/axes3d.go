package plot

import (
	"sort"

	"domainmesh/src/geometry"

	"github.com/go-gl/mathgl/mgl64"
)

type poly3D struct {
	verts []geometry.Point3
	style Style
}

// Axes3D collects 3D polygons. Polygons do not move the limits; use
// SetLimits or ExtendLimits. With no limits at all the view fits the
// polygons.
type Axes3D struct {
	Elevation, Azimuth float64

	polys  []poly3D
	limits geometry.Bounds3
}

func newAxes3D() *Axes3D {
	return &Axes3D{
		Elevation: DefaultElevation,
		Azimuth:   DefaultAzimuth,
		limits:    geometry.EmptyBounds3(),
	}
}

// AddPoly3D adds a filled polygon through verts.
func (ax *Axes3D) AddPoly3D(verts []geometry.Point3, style Style) {
	ax.polys = append(ax.polys, poly3D{verts: append([]geometry.Point3(nil), verts...), style: style})
}

func (ax *Axes3D) Len() int {
	return len(ax.polys)
}

func (ax *Axes3D) Limits() geometry.Bounds3 {
	return ax.limits
}

func (ax *Axes3D) SetLimits(b geometry.Bounds3) {
	ax.limits = b
}

func (ax *Axes3D) SetXLim(lo, hi float64) {
	ax.setLim(0, lo, hi)
}

func (ax *Axes3D) SetYLim(lo, hi float64) {
	ax.setLim(1, lo, hi)
}

func (ax *Axes3D) SetZLim(lo, hi float64) {
	ax.setLim(2, lo, hi)
}

func (ax *Axes3D) setLim(axis int, lo, hi float64) {
	mn, mx := ax.limits.Min, ax.limits.Max
	switch axis {
	case 0:
		mn.X, mx.X = lo, hi
	case 1:
		mn.Y, mx.Y = lo, hi
	case 2:
		mn.Z, mx.Z = lo, hi
	}
	ax.limits = geometry.Bounds3{Min: mn, Max: mx}
}

// ExtendLimits grows the limits so that they enclose points.
func (ax *Axes3D) ExtendLimits(points ...geometry.Point3) {
	ax.limits = ax.limits.Extend(points...)
}

func (ax *Axes3D) viewBounds() geometry.Bounds3 {
	b := ax.limits
	if b.IsEmpty() {
		b = geometry.EmptyBounds3()
		for _, p := range ax.polys {
			b = b.Extend(p.verts...)
		}
	}
	return b
}

type projected struct {
	points []Vec2
	depth  float64
	style  Style
}

// normalize maps b onto the cube [-1,1]^3.
func normalize(b geometry.Bounds3) func(geometry.Point3) mgl64.Vec3 {
	s := b.Size()
	scale := func(v, lo, size float64) float64 {
		if size == 0 {
			return 0
		}
		return 2*(v-lo)/size - 1
	}
	return func(p geometry.Point3) mgl64.Vec3 {
		return mgl64.Vec3{scale(p.X, b.Min.X, s.X), scale(p.Y, b.Min.Y, s.Y), scale(p.Z, b.Min.Z, s.Z)}
	}
}

func toCanvas(c Canvas, ndc mgl64.Vec2) Vec2 {
	w, h := c.Size()
	side := min(w, h) * (1 - 2*axesMargin)
	return Vec2{X: w/2 + ndc.X()*side/2, Y: h/2 - ndc.Y()*side/2}
}

// project sorts the polygons back to front.
func (ax *Axes3D) project(c Canvas) []projected {
	b := ax.viewBounds()
	if b.IsEmpty() {
		return nil
	}
	norm := normalize(b)
	cam := NewCamera(ax.Elevation, ax.Azimuth)
	out := make([]projected, 0, len(ax.polys))
	for _, p := range ax.polys {
		pr := projected{points: make([]Vec2, len(p.verts)), style: p.style}
		for i, v := range p.verts {
			ndc, depth := cam.Project(norm(v))
			pr.points[i] = toCanvas(c, ndc)
			pr.depth += depth / float64(len(p.verts))
		}
		out = append(out, pr)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].depth < out[j].depth })
	return out
}

// box returns the edges of the limits cube in normalized coordinates.
func box() [][2]mgl64.Vec3 {
	var edges [][2]mgl64.Vec3
	for i := 0; i < 8; i++ {
		a := mgl64.Vec3{float64(i&1)*2 - 1, float64(i>>1&1)*2 - 1, float64(i>>2&1)*2 - 1}
		for bit := 0; bit < 3; bit++ {
			if i&(1<<bit) != 0 {
				continue
			}
			j := i | 1<<bit
			b := mgl64.Vec3{float64(j&1)*2 - 1, float64(j>>1&1)*2 - 1, float64(j>>2&1)*2 - 1}
			edges = append(edges, [2]mgl64.Vec3{a, b})
		}
	}
	return edges
}

func (ax *Axes3D) draw(c Canvas) {
	polys := ax.project(c)
	if polys == nil {
		return
	}
	cam := NewCamera(ax.Elevation, ax.Azimuth)
	frame := Style{Stroke: Frame, LineWidth: 0.5}
	for _, e := range box() {
		a, _ := cam.Project(e[0])
		b, _ := cam.Project(e[1])
		c.Line(toCanvas(c, a), toCanvas(c, b), frame)
	}
	for _, p := range polys {
		c.Polygon(p.points, p.style)
	}
}
