package cubedemo

import "github.com/SeamusWaldron/cubedemo/pkg/lattice"

// InSlice reports whether a cubelet at pos belongs to the layer turned by
// face: its coordinate along the face's axis equals the face's offset.
// Callers must pass the current position, never the identity.
func InSlice(face Face, pos lattice.Vec) bool {
	return pos.At(face.Axis()) == face.Offset()
}

// Slice returns the 9 cubelets currently in the layer of face, ordered by
// identity.
func (c *Cube) Slice(face Face) []Cubelet {
	out := make([]Cubelet, 0, 9)
	for _, cl := range c.Cubelets() {
		if InSlice(face, cl.position) {
			out = append(out, cl)
		}
	}
	return out
}
