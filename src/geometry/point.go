package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Point3 is a location in space. It is an r3.Vector so that hull and
// triangulation code can hand points to r3-based libraries without copying.
type Point3 = r3.Vector

func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func IsFinite3(p Point3) bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Segment is a directed line segment between two points.
type Segment struct {
	Source, Target Point
}

// Triangle3 is a triangle in space.
type Triangle3 [3]Point3

func (t Triangle3) Vertex(i int) Point3 {
	return t[i%3]
}

// Normal returns the unnormalized normal (b-a)x(c-a).
func (t Triangle3) Normal() r3.Vector {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

func (t Triangle3) Area() float64 {
	return t.Normal().Norm() / 2
}
