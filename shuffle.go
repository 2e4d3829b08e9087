package cubedemo

import "math/rand/v2"

// NewRand returns a seeded random source. The same seed always yields the
// same shuffle.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns count random moves. Each move picks its face (6),
// magnitude (2) and direction (2) uniformly, i.e. a uniform token in
// [0, 24). A nil rng uses the global source.
func Shuffle(count int, rng *rand.Rand) []Move {
	if count <= 0 {
		return nil
	}
	moves := make([]Move, count)
	for i := range moves {
		var token int
		if rng != nil {
			token = rng.IntN(24)
		} else {
			token = rand.IntN(24)
		}
		moves[i] = MoveFromToken(uint8(token))
	}
	return moves
}
