package cubedemo

import (
	"fmt"

	"github.com/SeamusWaldron/cubedemo/pkg/lattice"
)

// Kind is the role of a cubelet, fixed by how many stickers it carries.
type Kind int

const (
	Core   Kind = 0 // hidden piece at the origin
	Center Kind = 1
	Edge   Kind = 2
	Corner Kind = 3
)

func (k Kind) String() string {
	switch k {
	case Core:
		return "core"
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Cubelet is one of the 27 pieces of the cube.
//
// The identity is the piece's coordinate in the solved cube and never
// changes. Position and orientation describe where the piece is now.
// Colors are indexed by the piece's own (local) faces and never change;
// turning the cube only changes which world face each local face points at.
type Cubelet struct {
	id          lattice.Vec
	position    lattice.Vec
	orientation lattice.Matrix
	colors      [6]Color
}

// newCubelet returns the piece with the given identity in its solved place.
func newCubelet(id lattice.Vec) Cubelet {
	c := Cubelet{
		id:          id,
		position:    id,
		orientation: lattice.Identity,
	}
	for _, f := range Faces {
		if id.At(f.Axis()) == f.Offset() {
			c.colors[f] = f.SolvedColor()
		} else {
			c.colors[f] = Black
		}
	}
	return c
}

// ID returns the cubelet's solved-state coordinate.
func (c Cubelet) ID() lattice.Vec { return c.id }

// Position returns the cubelet's current coordinate.
func (c Cubelet) Position() lattice.Vec { return c.position }

// Orientation returns the rotation taking the cubelet's local frame to the
// world frame.
func (c Cubelet) Orientation() lattice.Matrix { return c.orientation }

// Colors returns the sticker colors keyed by local face. Sides without a
// sticker are Black.
func (c Cubelet) Colors() [6]Color { return c.colors }

// Color returns the sticker on a local face.
func (c Cubelet) Color(local Face) Color { return c.colors[local] }

// Kind returns whether the cubelet is a corner, edge, center or the core.
func (c Cubelet) Kind() Kind {
	n := 0
	for _, v := range c.id {
		if v != 0 {
			n++
		}
	}
	return Kind(n)
}

// WorldFace returns the world direction a local face currently points at.
func (c Cubelet) WorldFace(local Face) Face {
	f, ok := faceForNormal(c.orientation.Apply(local.Normal()))
	if !ok {
		panic(fmt.Errorf("%w: cubelet %v has orientation %v", ErrInconsistentState, c.id, c.orientation))
	}
	return f
}

// LocalFace returns the local face currently pointing at world direction
// world, found by mapping the world normal back through the inverse of the
// orientation.
func (c Cubelet) LocalFace(world Face) Face {
	f, ok := faceForNormal(c.orientation.Inverse().Apply(world.Normal()))
	if !ok {
		panic(fmt.Errorf("%w: cubelet %v has orientation %v", ErrInconsistentState, c.id, c.orientation))
	}
	return f
}

// ColorFacing returns the sticker color visible from world direction world.
func (c Cubelet) ColorFacing(world Face) Color {
	return c.colors[c.LocalFace(world)]
}

// AtHome reports whether the cubelet sits in its solved place with its
// solved orientation.
func (c Cubelet) AtHome() bool {
	return c.position == c.id && c.orientation == lattice.Identity
}

func (c Cubelet) String() string {
	return fmt.Sprintf("%s %v at %v", c.Kind(), c.id, c.position)
}
