// Package cubedemo models a 3x3x3 twisty puzzle: move notation, the state
// of its 27 cubelets, an exact rotation engine and a flattened color net.
//
// # Features
//
//   - Strict move notation parsing with classified errors
//   - 27 cubelets keyed by identity with exact integer orientations
//   - Pure rotation engine with a single documented sign convention
//   - Flattening into a six-face net for display and snapshot tests
//   - Seeded shuffles, undo/redo history and timed playback sequences
//
// # Quick Start
//
//	cube := cubedemo.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(cubedemo.R, cubedemo.U, cubedemo.RPrime, cubedemo.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cubedemo.Flatten(cube))
//
// # Notation
//
// A move is a face letter (U, D, F, B, L, R), an optional 2 for a half
// turn and an optional ' for counter-clockwise, in that order: R, R', R2,
// R2'. Clockwise means clockwise when looking at the face from outside.
//
// # Rendering
//
// The package never references a renderer. A presentation layer reads
// Cubelet positions, orientations and colors, or asks a Timeline for the
// discrete states before and after each move, and animates between them
// itself.
package cubedemo
