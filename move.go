package cubedemo

import (
	"strings"
	"time"
	"unicode"
)

// Turns is the magnitude of a face turn.
type Turns int

const (
	Quarter Turns = 1 // 90 degrees
	Half    Turns = 2 // 180 degrees
)

// Move represents a single face turn.
//
// Duration and Delay are hints for whoever animates the move. The model
// never reads them.
type Move struct {
	Face      Face  // Which face to turn
	Turns     Turns // Quarter or Half
	Clockwise bool  // Direction, seen from outside looking at the face

	Duration time.Duration // Animation length (optional)
	Delay    time.Duration // Pause after the animation (optional)
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, R2'
func (m Move) Notation() string {
	var b strings.Builder
	b.WriteByte(m.Face.Letter())
	if m.Turns == Half {
		b.WriteByte('2')
	}
	if !m.Clockwise {
		b.WriteByte('\'')
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Reversed returns the move that undoes this one.
// R becomes R', R' becomes R, R2 becomes R2'. Timing is kept.
func (m Move) Reversed() Move {
	m.Clockwise = !m.Clockwise
	return m
}

// WithTiming returns a copy of the move with the given animation hints.
func (m Move) WithTiming(duration, delay time.Duration) Move {
	m.Duration = duration
	m.Delay = delay
	return m
}

// Equal reports whether two moves turn the same face the same way.
// Timing hints are ignored.
func (m Move) Equal(o Move) bool {
	return m.Face == o.Face && m.Turns == o.Turns && m.Clockwise == o.Clockwise
}

// QuarterTurns returns the signed number of clockwise quarter turns:
// +1, -1, +2 or -2.
func (m Move) QuarterTurns() int {
	n := int(m.Turns)
	if !m.Clockwise {
		n = -n
	}
	return n
}

// Merge combines two same-face moves into one.
// Returns ok=false if the faces differ. If the moves cancel out, the
// result is the zero Move and cancels is true.
func (m Move) Merge(other Move) (merged Move, cancels, ok bool) {
	if m.Face != other.Face {
		return Move{}, false, false
	}

	combined := ((m.QuarterTurns()+other.QuarterTurns())%4 + 4) % 4
	merged = Move{Face: m.Face, Duration: other.Duration, Delay: other.Delay}
	switch combined {
	case 0:
		return Move{}, true, true
	case 1:
		merged.Turns, merged.Clockwise = Quarter, true
	case 2:
		merged.Turns, merged.Clockwise = Half, true
	case 3:
		merged.Turns, merged.Clockwise = Quarter, false
	}
	return merged, false, true
}

// Token encodes the move as a number in [0, 24).
// Encoding: face*4 + kind where kind is
// 0 = quarter clockwise, 1 = quarter counter-clockwise,
// 2 = half clockwise, 3 = half counter-clockwise.
func (m Move) Token() uint8 {
	kind := uint8(0)
	if m.Turns == Half {
		kind = 2
	}
	if !m.Clockwise {
		kind++
	}
	return uint8(m.Face)*4 + kind
}

// MoveFromToken decodes a token produced by Token.
func MoveFromToken(token uint8) Move {
	token %= 24
	m := Move{Face: Face(token / 4), Turns: Quarter, Clockwise: true}
	kind := token % 4
	if kind >= 2 {
		m.Turns = Half
	}
	if kind%2 == 1 {
		m.Clockwise = false
	}
	return m
}

// AllMoves returns the 24 distinct moves in token order.
func AllMoves() []Move {
	moves := make([]Move, 24)
	for i := range moves {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}

// ParseMove parses a single notation token into a Move.
// The grammar is a face letter (U, D, F, B, L, R), an optional 2 for a
// half turn, then an optional ' for counter-clockwise. Surrounding
// whitespace is ignored. Invalid tokens return a *ParseError.
func ParseMove(s string) (Move, error) {
	return parseToken(s, 0)
}

func parseToken(tok string, index int) (Move, error) {
	rest := strings.TrimLeftFunc(tok, unicode.IsSpace)
	lead := len(tok) - len(rest)
	s := strings.TrimRightFunc(rest, unicode.IsSpace)
	if len(s) == 0 {
		return Move{}, &ParseError{Token: tok, Index: index, Kind: KindEmpty}
	}

	face, ok := FaceFromLetter(s[0])
	if !ok {
		return Move{}, &ParseError{Token: tok, Index: index, Offset: lead, Kind: KindUnknownFace}
	}

	m := Move{Face: face, Turns: Quarter, Clockwise: true}
	pos := 1
	if pos < len(s) && s[pos] == '2' {
		m.Turns = Half
		pos++
	}
	if pos < len(s) && s[pos] == '\'' {
		m.Clockwise = false
		pos++
	}
	if pos == len(s) {
		return m, nil
	}

	kind := KindTrailing
	if pos == 1 || s[pos] == '2' || s[pos] == '\'' {
		kind = KindMalformedSuffix
	}
	return Move{}, &ParseError{Token: tok, Index: index, Offset: lead + pos, Kind: kind}
}

// ParseSequence parses tokens in order and stops at the first invalid one.
// The returned *ParseError carries that token's index; no moves are
// returned alongside an error.
func ParseSequence(tokens []string) ([]Move, error) {
	moves := make([]Move, 0, len(tokens))
	for i, tok := range tokens {
		move, err := parseToken(tok, i)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	return ParseSequence(strings.Fields(s))
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: reversed order,
// each move reversed.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Reversed()
	}
	return inv
}

// SimplifyMoves merges adjacent same-face moves and drops the ones that
// cancel. Cancellations cascade: R U U' R' simplifies to nothing.
func SimplifyMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if len(out) == 0 {
			out = append(out, m)
			continue
		}
		last := out[len(out)-1]
		merged, cancels, ok := last.Merge(m)
		switch {
		case !ok:
			out = append(out, m)
		case cancels:
			out = out[:len(out)-1]
		default:
			out[len(out)-1] = merged
		}
	}
	return out
}
