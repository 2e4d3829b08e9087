package lattice

import "strings"

// Matrix is a 3x3 integer matrix applied to column vectors.
type Matrix [3][3]int

// Identity is the identity rotation.
var Identity = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Counter-clockwise quarter turns about each positive axis (right-hand rule).
var quarter = [3]Matrix{
	X: {
		{1, 0, 0},
		{0, 0, -1},
		{0, 1, 0},
	},
	Y: {
		{0, 0, 1},
		{0, 1, 0},
		{-1, 0, 0},
	},
	Z: {
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	},
}

// QuarterTurns returns the rotation by n quarter turns about the positive
// direction of axis a, following the right-hand rule. Negative n turns the
// other way; n is taken modulo 4.
func QuarterTurns(a Axis, n int) Matrix {
	n = ((n % 4) + 4) % 4
	m := Identity
	for i := 0; i < n; i++ {
		m = quarter[a].Mul(m)
	}
	return m
}

// Mul returns the product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply returns m·v.
func (m Matrix) Apply(v Vec) Vec {
	var out Vec
	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Inverse returns the inverse of a rotation. Rotations are orthogonal, so
// this is the transpose; the result is meaningless for other matrices.
func (m Matrix) Inverse() Matrix {
	return m.Transpose()
}

// Det returns the determinant.
func (m Matrix) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsRotation reports whether m is one of the 24 rotations of the cube:
// a signed permutation matrix with determinant +1.
func (m Matrix) IsRotation() bool {
	for i := 0; i < 3; i++ {
		rowNonZero, colNonZero := 0, 0
		for j := 0; j < 3; j++ {
			if m[i][j] < -1 || m[i][j] > 1 {
				return false
			}
			if m[i][j] != 0 {
				rowNonZero++
			}
			if m[j][i] != 0 {
				colNonZero++
			}
		}
		if rowNonZero != 1 || colNonZero != 1 {
			return false
		}
	}
	return m.Det() == 1
}

func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < 3; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Vec(m[i]).String())
	}
	b.WriteByte(']')
	return b.String()
}
