package cubedemo

import (
	"fmt"
	"sort"

	"github.com/SeamusWaldron/cubedemo/pkg/lattice"
)

// Cube is the state of a 3x3x3 cube: 27 cubelets keyed by identity.
//
// A Cube is created solved and changes only through the rotation engine
// (Apply, ApplyNotation) or Reset. It is not safe for concurrent use;
// callers must finish one move before starting the next.
type Cube struct {
	cubelets map[lattice.Vec]Cubelet
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front, Red on the right.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns every cubelet to its solved place and orientation.
// Sticker colors are regenerated identically.
func (c *Cube) Reset() {
	c.cubelets = make(map[lattice.Vec]Cubelet, 27)
	for _, id := range lattice.Points() {
		c.cubelets[id] = newCubelet(id)
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{cubelets: make(map[lattice.Vec]Cubelet, len(c.cubelets))}
	for id, cl := range c.cubelets {
		clone.cubelets[id] = cl
	}
	return clone
}

// Len returns the number of cubelets. Always 27 for a valid cube.
func (c *Cube) Len() int {
	return len(c.cubelets)
}

// Cubelet returns the cubelet with the given identity.
func (c *Cube) Cubelet(id lattice.Vec) (Cubelet, bool) {
	cl, ok := c.cubelets[id]
	return cl, ok
}

// Cubelets returns all cubelets ordered by identity.
func (c *Cube) Cubelets() []Cubelet {
	out := make([]Cubelet, 0, len(c.cubelets))
	for _, cl := range c.cubelets {
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].id.Less(out[j].id)
	})
	return out
}

// At returns the cubelet currently at position pos.
func (c *Cube) At(pos lattice.Vec) (Cubelet, bool) {
	for _, cl := range c.cubelets {
		if cl.position == pos {
			return cl, true
		}
	}
	return Cubelet{}, false
}

// Equal reports whether two cubes have every cubelet in the same position
// and orientation.
func (c *Cube) Equal(o *Cube) bool {
	if len(c.cubelets) != len(o.cubelets) {
		return false
	}
	for id, cl := range c.cubelets {
		other, ok := o.cubelets[id]
		if !ok || cl != other {
			return false
		}
	}
	return true
}

// IsPristine reports whether every cubelet is in its solved place with its
// solved orientation. Stricter than IsSolved: a center turned in place
// still looks solved but is not pristine.
func (c *Cube) IsPristine() bool {
	for _, cl := range c.cubelets {
		if !cl.AtHome() {
			return false
		}
	}
	return true
}

// IsSolved returns true if every face shows a single color, its own.
func (c *Cube) IsSolved() bool {
	net := Flatten(c)
	for _, f := range Faces {
		color, uniform := net.Face(f).Uniform()
		if !uniform || color != f.SolvedColor() {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: 27 cubelets keyed by their
// identities, positions forming a permutation of the lattice, every
// orientation a cube rotation and every sticker set unchanged since
// construction. Errors wrap ErrInconsistentState.
func (c *Cube) Validate() error {
	if len(c.cubelets) != 27 {
		return fmt.Errorf("%w: %d cubelets", ErrInconsistentState, len(c.cubelets))
	}

	occupied := make(map[lattice.Vec]lattice.Vec, 27)
	for id, cl := range c.cubelets {
		if !id.InCube() || cl.id != id {
			return fmt.Errorf("%w: cubelet %v stored under %v", ErrInconsistentState, cl.id, id)
		}
		if !cl.position.InCube() {
			return fmt.Errorf("%w: cubelet %v outside the cube at %v", ErrInconsistentState, id, cl.position)
		}
		if prev, taken := occupied[cl.position]; taken {
			return fmt.Errorf("%w: cubelets %v and %v share position %v", ErrInconsistentState, prev, id, cl.position)
		}
		occupied[cl.position] = id
		if !cl.orientation.IsRotation() {
			return fmt.Errorf("%w: cubelet %v orientation %v is not a rotation", ErrInconsistentState, id, cl.orientation)
		}
		if cl.colors != newCubelet(id).colors {
			return fmt.Errorf("%w: cubelet %v stickers changed", ErrInconsistentState, id)
		}
	}
	return nil
}

// mustValidate panics if the cube breaks its invariants.
func (c *Cube) mustValidate() {
	if err := c.Validate(); err != nil {
		panic(err)
	}
}

// ApplyNotation parses a whitespace-separated move sequence and applies it.
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// String returns the cube's net as a text cross.
func (c *Cube) String() string {
	return Flatten(c).String()
}
