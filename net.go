package cubedemo

import (
	"strings"

	"github.com/SeamusWaldron/cubedemo/pkg/lattice"
)

// Grid is one face of a net, indexed [row][col] as seen from outside the
// cube with Up above Front:
//
//	[0][0] [0][1] [0][2]
//	[1][0] [1][1] [1][2]
//	[2][0] [2][1] [2][2]
type Grid [3][3]Color

// Uniform returns the grid's color if all nine cells match.
func (g Grid) Uniform() (Color, bool) {
	first := g[0][0]
	for _, row := range g {
		for _, c := range row {
			if c != first {
				return first, false
			}
		}
	}
	return first, true
}

// Column returns the three cells of column col, top to bottom.
func (g Grid) Column(col int) [3]Color {
	return [3]Color{g[0][col], g[1][col], g[2][col]}
}

// Net is the cube unfolded into six grids, indexed by Face.
type Net struct {
	Faces [6]Grid
}

// Face returns the grid for a face.
func (n Net) Face(f Face) Grid {
	return n.Faces[f]
}

// gridCell maps a cubelet position on face f to its grid cell. Neighbouring
// faces in the cross share edges: Left|Front|Right|Back left to right, Up
// above Front, Down below Front.
func gridCell(f Face, pos lattice.Vec) (row, col int) {
	x, y, z := pos.X(), pos.Y(), pos.Z()
	switch f {
	case Front:
		return 1 - y, x + 1
	case Right:
		return 1 - y, 1 - z
	case Back:
		return 1 - y, 1 - x
	case Left:
		return 1 - y, z + 1
	case Up:
		return z + 1, x + 1
	default: // Down
		return 1 - z, x + 1
	}
}

// Flatten projects the cube onto a net. For each face it reads, from each
// of the 9 cubelets in that face's slice, the sticker whose local face now
// points along the face's outward normal. The cube is not modified.
//
// Flatten panics if the cube fails Validate.
func Flatten(c *Cube) Net {
	c.mustValidate()

	var net Net
	for _, f := range Faces {
		for _, cl := range c.cubelets {
			if !InSlice(f, cl.position) {
				continue
			}
			row, col := gridCell(f, cl.position)
			net.Faces[f][row][col] = cl.ColorFacing(f)
		}
	}
	return net
}

// crossOrigin is the top-left cell of each face in the 9x12 cross.
var crossOrigin = [6][2]int{
	Up:    {0, 3},
	Left:  {3, 0},
	Front: {3, 3},
	Right: {3, 6},
	Back:  {3, 9},
	Down:  {6, 3},
}

// Cross lays the net out as a 9x12 cross:
//
//	    U
//	L   F   R   B
//	    D
//
// Cells outside the six faces are NoColor.
func (n Net) Cross() [9][12]Color {
	var out [9][12]Color
	for r := range out {
		for c := range out[r] {
			out[r][c] = NoColor
		}
	}
	for _, f := range Faces {
		r0, c0 := crossOrigin[f][0], crossOrigin[f][1]
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				out[r0+r][c0+c] = n.Faces[f][r][c]
			}
		}
	}
	return out
}

// String returns the cross as letters, one cell per two columns.
func (n Net) String() string {
	var b strings.Builder
	for _, row := range n.Cross() {
		var line strings.Builder
		for _, c := range row {
			line.WriteString(c.String())
			line.WriteByte(' ')
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
