package geometry

import (
	"math/big"
)

// rat converts a finite float64 to an exact rational.
func rat(v float64) *big.Rat {
	return new(big.Rat).SetFloat64(v)
}

func ratSub(a, b float64) *big.Rat {
	return new(big.Rat).Sub(rat(a), rat(b))
}

func ratMul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func ratAdd(xs ...*big.Rat) *big.Rat {
	s := new(big.Rat)
	for _, x := range xs {
		s.Add(s, x)
	}
	return s
}

func ratNeg(a *big.Rat) *big.Rat {
	return new(big.Rat).Neg(a)
}

// ratDet2 is a*d - b*c.
func ratDet2(a, b, c, d *big.Rat) *big.Rat {
	return new(big.Rat).Sub(ratMul(a, d), ratMul(b, c))
}

// ratDet3 expands the 3x3 determinant along its first row.
func ratDet3(m [3][3]*big.Rat) *big.Rat {
	c0 := ratMul(m[0][0], ratDet2(m[1][1], m[1][2], m[2][1], m[2][2]))
	c1 := ratMul(m[0][1], ratDet2(m[1][0], m[1][2], m[2][0], m[2][2]))
	c2 := ratMul(m[0][2], ratDet2(m[1][0], m[1][1], m[2][0], m[2][1]))
	return ratAdd(c0, ratNeg(c1), c2)
}

// ratDet4 expands the 4x4 determinant along its first row.
func ratDet4(m [4][4]*big.Rat) *big.Rat {
	s := new(big.Rat)
	for j := 0; j < 4; j++ {
		var minor [3][3]*big.Rat
		for i := 1; i < 4; i++ {
			col := 0
			for k := 0; k < 4; k++ {
				if k == j {
					continue
				}
				minor[i-1][col] = m[i][k]
				col++
			}
		}
		term := ratMul(m[0][j], ratDet3(minor))
		if j%2 == 1 {
			s.Sub(s, term)
		} else {
			s.Add(s, term)
		}
	}
	return s
}

// ratVec is an exact 3D vector.
type ratVec [3]*big.Rat

func ratVecOf(p Point3) ratVec {
	return ratVec{rat(p.X), rat(p.Y), rat(p.Z)}
}

func (a ratVec) sub(b ratVec) ratVec {
	return ratVec{
		new(big.Rat).Sub(a[0], b[0]),
		new(big.Rat).Sub(a[1], b[1]),
		new(big.Rat).Sub(a[2], b[2]),
	}
}

func (a ratVec) add(b ratVec) ratVec {
	return ratVec{
		new(big.Rat).Add(a[0], b[0]),
		new(big.Rat).Add(a[1], b[1]),
		new(big.Rat).Add(a[2], b[2]),
	}
}

func (a ratVec) scale(s *big.Rat) ratVec {
	return ratVec{ratMul(a[0], s), ratMul(a[1], s), ratMul(a[2], s)}
}

func (a ratVec) dot(b ratVec) *big.Rat {
	return ratAdd(ratMul(a[0], b[0]), ratMul(a[1], b[1]), ratMul(a[2], b[2]))
}

func (a ratVec) cross(b ratVec) ratVec {
	return ratVec{
		ratDet2(a[1], a[2], b[1], b[2]),
		ratDet2(a[2], a[0], b[2], b[0]),
		ratDet2(a[0], a[1], b[0], b[1]),
	}
}
