package cubedemo

import (
	"fmt"

	"github.com/SeamusWaldron/cubedemo/pkg/lattice"
)

// Sign convention, used by every code path in this package:
//
// A clockwise turn is clockwise as seen from outside the cube, looking at
// the face toward the origin along its outward normal. With the right-hand
// rule that is a -90° rotation about the outward normal. So R carries the
// Front right column up to Up, U carries the Front top row to Left and F
// carries the Up bottom row to Right.

// rotations[face][n+2] is the world rotation for n signed clockwise
// quarter turns of face, n in {-2, -1, 1, 2}. Index 2 is unused.
var rotations = buildRotations()

func buildRotations() [6][5]lattice.Matrix {
	var table [6][5]lattice.Matrix
	for _, f := range Faces {
		for _, n := range []int{-2, -1, 1, 2} {
			// Clockwise about the outward normal is negative about the
			// positive axis for +1 faces and positive for -1 faces.
			table[f][n+2] = lattice.QuarterTurns(f.Axis(), -n*f.Offset())
		}
		table[f][2] = lattice.Identity
	}
	return table
}

// RotationMatrix returns the exact world rotation a move applies to the
// cubelets of its slice.
func RotationMatrix(m Move) lattice.Matrix {
	n := m.QuarterTurns()
	if !m.Face.Valid() || n < -2 || n > 2 || n == 0 {
		panic(fmt.Sprintf("cubedemo: invalid move face=%d turns=%d", m.Face, m.Turns))
	}
	return rotations[m.Face][n+2]
}

// AxisAngle returns the move as a rotation about a positive world axis in
// degrees, right-hand rule. Renderers can feed it straight to a pivot.
func (m Move) AxisAngle() (lattice.Axis, int) {
	return m.Face.Axis(), -90 * m.QuarterTurns() * m.Face.Offset()
}

// Rotate returns the state after applying m to c. c is not modified.
//
// The 9 cubelets in the face's slice get position R·p and orientation R·O,
// where R comes from RotationMatrix; the other 18 are copied unchanged.
func Rotate(c *Cube, m Move) *Cube {
	next := c.Clone()
	next.turn(m)
	return next
}

// Apply applies moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.turn(m)
	}
}

// turn applies a single move in place. A half turn is one table lookup,
// never two quarter turns.
func (c *Cube) turn(m Move) {
	r := RotationMatrix(m)

	selected := make([]Cubelet, 0, 9)
	for _, cl := range c.cubelets {
		if InSlice(m.Face, cl.position) {
			selected = append(selected, cl)
		}
	}

	for _, cl := range selected {
		cl.position = r.Apply(cl.position)
		cl.orientation = r.Mul(cl.orientation)
		c.cubelets[cl.id] = cl
	}
}
