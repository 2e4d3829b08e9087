package lattice

// group holds the 24 cube rotations, identity first.
var group = generateGroup()

// generateGroup closes {I} under quarter turns about X and Y, which
// together generate every rotation of the cube.
func generateGroup() []Matrix {
	seen := map[Matrix]bool{Identity: true}
	out := []Matrix{Identity}
	for i := 0; i < len(out); i++ {
		for _, g := range []Matrix{quarter[X], quarter[Y]} {
			next := g.Mul(out[i])
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
			}
		}
	}
	return out
}

// Group returns the 24 rotations of the cube. The identity is first; the
// order of the rest is stable between calls.
func Group() []Matrix {
	out := make([]Matrix, len(group))
	copy(out, group)
	return out
}

// GroupIndex returns the position of m in Group(), or -1 if m is not a
// cube rotation.
func GroupIndex(m Matrix) int {
	for i, g := range group {
		if g == m {
			return i
		}
	}
	return -1
}
