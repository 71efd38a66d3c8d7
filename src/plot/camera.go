package plot

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default view angles in degrees, matching the usual 3D plot orientation.
const (
	DefaultElevation = 30
	DefaultAzimuth   = -60
)

// Camera looks at the cube [-1,1]^3 orthographically from the direction
// given by an elevation above the xy plane and an azimuth around z.
type Camera struct {
	view mgl64.Mat4
	proj mgl64.Mat4
}

func NewCamera(elev, azim float64) Camera {
	e, a := mgl64.DegToRad(elev), mgl64.DegToRad(azim)
	eye := mgl64.Vec3{
		math.Cos(e) * math.Cos(a),
		math.Cos(e) * math.Sin(a),
		math.Sin(e),
	}.Mul(10)
	up := mgl64.Vec3{0, 0, 1}
	if math.Abs(math.Cos(e)) < 1e-9 {
		up = mgl64.Vec3{-math.Cos(a), -math.Sin(a), 0}
	}
	r := math.Sqrt(3)
	return Camera{
		view: mgl64.LookAtV(eye, mgl64.Vec3{}, up),
		proj: mgl64.Ortho(-r, r, -r, r, 10-r, 10+r),
	}
}

// Project maps p to normalized device coordinates in [-1,1] and returns its
// depth along the view direction, larger values being closer to the eye.
func (c Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec2, depth float64) {
	v := c.view.Mul4x1(p.Vec4(1))
	q := c.proj.Mul4x1(v)
	return mgl64.Vec2{q.X() / q.W(), q.Y() / q.W()}, v.Z()
}
