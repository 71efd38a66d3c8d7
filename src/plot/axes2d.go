package plot

import (
	"domainmesh/src/geometry"

	"github.com/paulmach/orb"
)

// margin around the plotting area, as a fraction of the canvas.
const axesMargin = 0.05

type shape2D struct {
	points []orb.Point
	closed bool
	style  Style
}

// Axes2D collects line segments and polygons in data coordinates. Its
// limits follow the data until set explicitly.
type Axes2D struct {
	shapes []shape2D
	limits orb.Bound
	set    bool
}

func newAxes2D() *Axes2D {
	return &Axes2D{}
}

func toOrb(p geometry.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

func (ax *Axes2D) extend(pts ...orb.Point) {
	for _, p := range pts {
		if !ax.set {
			ax.limits = orb.Bound{Min: p, Max: p}
			ax.set = true
			continue
		}
		ax.limits = ax.limits.Extend(p)
	}
}

func (ax *Axes2D) Segment(a, b geometry.Point, style Style) {
	pts := []orb.Point{toOrb(a), toOrb(b)}
	ax.shapes = append(ax.shapes, shape2D{points: pts, style: style})
	ax.extend(pts...)
}

// Polygon adds a closed polygon through points.
func (ax *Axes2D) Polygon(points []geometry.Point, style Style) {
	pts := make([]orb.Point, len(points))
	for i, p := range points {
		pts[i] = toOrb(p)
	}
	ax.shapes = append(ax.shapes, shape2D{points: pts, closed: true, style: style})
	ax.extend(pts...)
}

func (ax *Axes2D) Len() int {
	return len(ax.shapes)
}

// Limits returns the current view and whether it has been set.
func (ax *Axes2D) Limits() (orb.Bound, bool) {
	return ax.limits, ax.set
}

func (ax *Axes2D) SetLimits(b orb.Bound) {
	ax.limits = b
	ax.set = true
}

// Rescale grows or shrinks the limits by scale about their midpoint.
func (ax *Axes2D) Rescale(scale float64) {
	if !ax.set {
		return
	}
	mid := ax.limits.Center()
	xr := (ax.limits.Max[0] - mid[0]) * scale
	yr := (ax.limits.Max[1] - mid[1]) * scale
	ax.limits = orb.Bound{
		Min: orb.Point{mid[0] - xr, mid[1] - yr},
		Max: orb.Point{mid[0] + xr, mid[1] + yr},
	}
}

// transform maps data coordinates into the canvas, flipping y.
func (ax *Axes2D) transform(c Canvas) func(orb.Point) Vec2 {
	w, h := c.Size()
	mx, my := w*axesMargin, h*axesMargin
	b := ax.limits
	dx, dy := b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return func(p orb.Point) Vec2 {
		return Vec2{
			X: mx + (p[0]-b.Min[0])/dx*(w-2*mx),
			Y: h - my - (p[1]-b.Min[1])/dy*(h-2*my),
		}
	}
}

func (ax *Axes2D) draw(c Canvas) {
	if !ax.set {
		return
	}
	tr := ax.transform(c)
	for _, s := range ax.shapes {
		pts := make([]Vec2, len(s.points))
		for i, p := range s.points {
			pts[i] = tr(p)
		}
		if s.closed {
			c.Polygon(pts, s.style)
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			c.Line(pts[i], pts[i+1], s.style)
		}
	}
}
