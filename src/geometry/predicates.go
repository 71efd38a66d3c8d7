package geometry

import (
	"math"
	"math/big"
)

// Orientation of an ordered point triple.
const (
	Clockwise        = -1
	Collinear        = 0
	CounterClockwise = 1
)

// Orient2D returns +1 if a, b, c turn counter-clockwise, -1 if clockwise and
// 0 if they are collinear. The sign is exact.
func Orient2D(a, b, c Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight
	bound := orient2dErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > bound || -det > bound {
		return sign(det)
	}
	return orient2dExact(a, b, c)
}

func orient2dExact(a, b, c Point) int {
	return ratDet2(
		ratSub(b.X, a.X), ratSub(b.Y, a.Y),
		ratSub(c.X, a.X), ratSub(c.Y, a.Y),
	).Sign()
}

// InCircle returns +1 if d lies inside the circle through the
// counter-clockwise triangle a, b, c, -1 if outside and 0 if on it.
func InCircle(a, b, c, d Point) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	bound := incircleErrBound * permanent
	if det > bound || -det > bound {
		return sign(det)
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d Point) int {
	var m [3][3]*big.Rat
	for i, p := range [3]Point{a, b, c} {
		dx, dy := ratSub(p.X, d.X), ratSub(p.Y, d.Y)
		m[i] = [3]*big.Rat{dx, dy, ratAdd(ratMul(dx, dx), ratMul(dy, dy))}
	}
	return ratDet3(m).Sign()
}

// Orient3D returns +1 if d lies on the side of the plane through a, b, c
// that the normal (b-a)x(c-a) points to, -1 on the other side and 0 if the
// four points are coplanar. A tetrahedron a, b, c, d is positively oriented
// when Orient3D(a, b, c, d) > 0.
func Orient3D(a, b, c, d Point3) int {
	var m, abs [3][3]float64
	for i, p := range [3]Point3{b, c, d} {
		m[i] = [3]float64{p.X - a.X, p.Y - a.Y, p.Z - a.Z}
		abs[i] = [3]float64{math.Abs(m[i][0]), math.Abs(m[i][1]), math.Abs(m[i][2])}
	}
	det := det3(m)
	bound := orient3dErrBound * perm3(abs)
	if det > bound || -det > bound {
		return sign(det)
	}
	return orient3dExact(a, b, c, d)
}

func orient3dExact(a, b, c, d Point3) int {
	ra := ratVecOf(a)
	var m [3][3]*big.Rat
	for i, p := range [3]Point3{b, c, d} {
		m[i] = ratVecOf(p).sub(ra)
	}
	return ratDet3(m).Sign()
}

// InSphere returns +1 if e lies inside the sphere through the positively
// oriented tetrahedron a, b, c, d, -1 if outside and 0 if on it.
func InSphere(a, b, c, d, e Point3) int {
	var m, abs [4][4]float64
	for i, p := range [4]Point3{a, b, c, d} {
		dx, dy, dz := p.X-e.X, p.Y-e.Y, p.Z-e.Z
		m[i] = [4]float64{dx, dy, dz, dx*dx + dy*dy + dz*dz}
		abs[i] = [4]float64{math.Abs(dx), math.Abs(dy), math.Abs(dz), m[i][3]}
	}
	det := det4(m)
	bound := insphereErrBound * perm4(abs)
	if det > bound || -det > bound {
		return -sign(det)
	}
	return inSphereExact(a, b, c, d, e)
}

func inSphereExact(a, b, c, d, e Point3) int {
	re := ratVecOf(e)
	var m [4][4]*big.Rat
	for i, p := range [4]Point3{a, b, c, d} {
		v := ratVecOf(p).sub(re)
		m[i] = [4]*big.Rat{v[0], v[1], v[2], v.dot(v)}
	}
	return -ratDet4(m).Sign()
}

// CoplanarInCircle returns +1 if p lies inside the circumcircle of the
// triangle a, b, c, -1 if outside and 0 if on it. All four points are
// expected to be coplanar; p is compared by its distance to the
// circumcenter. Degenerate triangles report -1.
func CoplanarInCircle(a, b, c, p Point3) int {
	ra := ratVecOf(a)
	u := ratVecOf(b).sub(ra)
	v := ratVecOf(c).sub(ra)
	w := u.cross(v)
	ww := w.dot(w)
	if ww.Sign() == 0 {
		return Clockwise
	}
	num := v.scale(u.dot(u)).sub(u.scale(v.dot(v))).cross(w)
	inv := new(big.Rat).Inv(new(big.Rat).Mul(big.NewRat(2, 1), ww))
	center := ra.add(num.scale(inv))

	r := ra.sub(center)
	d := ratVecOf(p).sub(center)
	return new(big.Rat).Sub(r.dot(r), d.dot(d)).Sign()
}

// Between reports whether p lies strictly between a and b, assuming the
// three points are collinear.
func Between(a, b, p Point) bool {
	if a.X != b.X {
		return (a.X < p.X && p.X < b.X) || (b.X < p.X && p.X < a.X)
	}
	return (a.Y < p.Y && p.Y < b.Y) || (b.Y < p.Y && p.Y < a.Y)
}

// Collinear3 reports whether three points in space lie on one line.
func Collinear3(a, b, c Point3) bool {
	xy := func(p Point3) Point { return Point{X: p.X, Y: p.Y} }
	yz := func(p Point3) Point { return Point{X: p.Y, Y: p.Z} }
	zx := func(p Point3) Point { return Point{X: p.Z, Y: p.X} }
	for _, proj := range []func(Point3) Point{xy, yz, zx} {
		if Orient2D(proj(a), proj(b), proj(c)) != Collinear {
			return false
		}
	}
	return true
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func perm3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]+m[1][2]*m[2][1]) +
		m[0][1]*(m[1][0]*m[2][2]+m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]+m[1][1]*m[2][0])
}

func minor4(m [4][4]float64, j int) [3][3]float64 {
	var out [3][3]float64
	for i := 1; i < 4; i++ {
		col := 0
		for k := 0; k < 4; k++ {
			if k == j {
				continue
			}
			out[i-1][col] = m[i][k]
			col++
		}
	}
	return out
}

func det4(m [4][4]float64) float64 {
	var s float64
	for j := 0; j < 4; j++ {
		term := m[0][j] * det3(minor4(m, j))
		if j%2 == 1 {
			s -= term
		} else {
			s += term
		}
	}
	return s
}

func perm4(m [4][4]float64) float64 {
	var s float64
	for j := 0; j < 4; j++ {
		s += m[0][j] * perm3(minor4(m, j))
	}
	return s
}
