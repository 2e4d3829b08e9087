package cubedemo

import "github.com/SeamusWaldron/cubedemo/pkg/lattice"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Left face when solved
	Red    Color = 5 // Right face when solved
	Black  Color = 6 // Interior side, never visible on a face

	// NoColor marks empty cells of a net layout.
	NoColor Color = 0xFF
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Black:
		return "K"
	case NoColor:
		return " "
	default:
		return "?"
	}
}

// Face identifies one of the six faces of the cube, both as a world
// direction and as a side of a single cubelet.
type Face int

const (
	Up    Face = 0
	Down  Face = 1
	Front Face = 2
	Back  Face = 3
	Left  Face = 4
	Right Face = 5
)

// Faces lists every face in declaration order.
var Faces = [6]Face{Up, Down, Front, Back, Left, Right}

// Letter returns the face's notation letter.
func (f Face) Letter() byte {
	switch f {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Front:
		return 'F'
	case Back:
		return 'B'
	case Left:
		return 'L'
	case Right:
		return 'R'
	default:
		return '?'
	}
}

func (f Face) String() string {
	return string(f.Letter())
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Up && f <= Right
}

// FaceFromLetter returns the face for a notation letter. Only the six
// uppercase letters are accepted.
func FaceFromLetter(b byte) (Face, bool) {
	switch b {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'F':
		return Front, true
	case 'B':
		return Back, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	default:
		return 0, false
	}
}

// Axis returns the principal world axis the face is perpendicular to.
func (f Face) Axis() lattice.Axis {
	switch f {
	case Left, Right:
		return lattice.X
	case Up, Down:
		return lattice.Y
	default:
		return lattice.Z
	}
}

// Offset returns the face's coordinate along its axis: +1 for Up, Right
// and Front, -1 for Down, Left and Back.
func (f Face) Offset() int {
	switch f {
	case Up, Right, Front:
		return 1
	default:
		return -1
	}
}

// Normal returns the face's outward unit normal.
func (f Face) Normal() lattice.Vec {
	return lattice.Unit(f.Axis(), f.Offset())
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	default:
		return Left
	}
}

// SolvedColor returns the color a face shows when the cube is solved.
func (f Face) SolvedColor() Color {
	switch f {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Left:
		return Orange
	default:
		return Red
	}
}

// faceForNormal maps an axis-aligned unit vector back to its face.
func faceForNormal(n lattice.Vec) (Face, bool) {
	for _, f := range Faces {
		if f.Normal() == n {
			return f, true
		}
	}
	return 0, false
}
