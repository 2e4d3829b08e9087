package cubedemo

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(cubedemo.R, cubedemo.U, cubedemo.RPrime, cubedemo.UPrime)
var (
	// Right face moves
	R      = Move{Face: Right, Turns: Quarter, Clockwise: true} // Right clockwise
	RPrime = Move{Face: Right, Turns: Quarter}                  // Right counter-clockwise
	R2     = Move{Face: Right, Turns: Half, Clockwise: true}    // Right 180

	// Left face moves
	L      = Move{Face: Left, Turns: Quarter, Clockwise: true}
	LPrime = Move{Face: Left, Turns: Quarter}
	L2     = Move{Face: Left, Turns: Half, Clockwise: true}

	// Up face moves
	U      = Move{Face: Up, Turns: Quarter, Clockwise: true}
	UPrime = Move{Face: Up, Turns: Quarter}
	U2     = Move{Face: Up, Turns: Half, Clockwise: true}

	// Down face moves
	D      = Move{Face: Down, Turns: Quarter, Clockwise: true}
	DPrime = Move{Face: Down, Turns: Quarter}
	D2     = Move{Face: Down, Turns: Half, Clockwise: true}

	// Front face moves
	F      = Move{Face: Front, Turns: Quarter, Clockwise: true}
	FPrime = Move{Face: Front, Turns: Quarter}
	F2     = Move{Face: Front, Turns: Half, Clockwise: true}

	// Back face moves
	B      = Move{Face: Back, Turns: Quarter, Clockwise: true}
	BPrime = Move{Face: Back, Turns: Quarter}
	B2     = Move{Face: Back, Turns: Half, Clockwise: true}
)

// Sexy move: R U R' U' - six repetitions return the cube to where it started.
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// DemoSequence is the scramble the player demo runs and then undoes,
// on repeat.
var DemoSequence = []Move{
	R, L, U2, F, UPrime, D, F2, R2, B2, L,
	U2, FPrime, BPrime, U, R2, D, F2, U, R2, U,
}

// ShortDemoSequence is a shorter scramble for quick walkthroughs.
var ShortDemoSequence = []Move{
	UPrime, L, R2.Reversed(), F, BPrime, R, D, LPrime, F2,
}
