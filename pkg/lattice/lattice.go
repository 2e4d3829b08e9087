// Package lattice provides exact integer geometry for the cube model:
// lattice points, 3x3 rotation matrices and the 24-element group of
// rotations that map the cube onto itself.
//
// Everything here is integer arithmetic. Quarter turns about a principal
// axis are signed permutation matrices, so composing any number of them
// never drifts and never needs a tolerance.
package lattice

import "fmt"

// Axis is a principal world axis.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
	Z Axis = 2
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "?"
	}
}

// Vec is an integer point or direction in 3D. Cubelet coordinates use
// components in {-1, 0, 1}.
type Vec [3]int

// V builds a Vec from its components.
func V(x, y, z int) Vec {
	return Vec{x, y, z}
}

// Unit returns the unit vector along axis a with the given sign (+1 or -1).
func Unit(a Axis, sign int) Vec {
	var v Vec
	v[a] = sign
	return v
}

func (v Vec) X() int { return v[0] }
func (v Vec) Y() int { return v[1] }
func (v Vec) Z() int { return v[2] }

// At returns the component along axis a.
func (v Vec) At(a Axis) int {
	return v[a]
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

// Less orders vectors by x, then y, then z.
func (v Vec) Less(o Vec) bool {
	for i := 0; i < 3; i++ {
		if v[i] != o[i] {
			return v[i] < o[i]
		}
	}
	return false
}

// InCube reports whether every component is in {-1, 0, 1}.
func (v Vec) InCube() bool {
	for _, c := range v {
		if c < -1 || c > 1 {
			return false
		}
	}
	return true
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v[0], v[1], v[2])
}

// Points returns the 27 points of the {-1,0,1}³ lattice ordered by x, y, z.
func Points() []Vec {
	points := make([]Vec, 0, 27)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				points = append(points, V(x, y, z))
			}
		}
	}
	return points
}
