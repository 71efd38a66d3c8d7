package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Bounds3 is an axis aligned box that grows as points are added. The zero
// value is not empty; use EmptyBounds3.
type Bounds3 struct {
	Min, Max r3.Vector
}

func EmptyBounds3() Bounds3 {
	return Bounds3{
		Min: r3.Vector{X: Infinity, Y: Infinity, Z: Infinity},
		Max: r3.Vector{X: -Infinity, Y: -Infinity, Z: -Infinity},
	}
}

func (b Bounds3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing b and the given points.
func (b Bounds3) Extend(points ...Point3) Bounds3 {
	for _, p := range points {
		b.Min = r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return b
}

func (b Bounds3) Union(o Bounds3) Bounds3 {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min, o.Max)
}

func (b Bounds3) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds3) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Pad grows the box by margin on every side.
func (b Bounds3) Pad(margin float64) Bounds3 {
	m := r3.Vector{X: margin, Y: margin, Z: margin}
	return Bounds3{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Cube returns the smallest cube sharing b's center that contains b.
func (b Bounds3) Cube() Bounds3 {
	s := b.Size()
	half := math.Max(s.X, math.Max(s.Y, s.Z)) / 2
	c := b.Center()
	h := r3.Vector{X: half, Y: half, Z: half}
	return Bounds3{Min: c.Sub(h), Max: c.Add(h)}
}
