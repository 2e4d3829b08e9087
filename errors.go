package cubedemo

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubedemo package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubedemo: invalid move notation")

	// History errors
	ErrNothingToUndo = errors.New("cubedemo: nothing to undo")
	ErrNothingToRedo = errors.New("cubedemo: nothing to redo")

	// State errors. Only ever reported through a panic: a cube that fails
	// validation was corrupted by the rotation engine, not by its caller.
	ErrInconsistentState = errors.New("cubedemo: inconsistent cube state")
)

// ParseErrorKind classifies why a notation token was rejected.
type ParseErrorKind int

const (
	KindEmpty           ParseErrorKind = iota // empty token
	KindUnknownFace                           // first character is not U, D, F, B, L or R
	KindMalformedSuffix                       // modifier out of order, repeated or unknown
	KindTrailing                              // characters after a complete suffix
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "empty token"
	case KindUnknownFace:
		return "unknown face"
	case KindMalformedSuffix:
		return "malformed suffix"
	case KindTrailing:
		return "trailing characters"
	default:
		return "unknown"
	}
}

// ParseError describes a rejected notation token.
type ParseError struct {
	Token  string         // the offending token, as given, surrounding whitespace included
	Index  int            // position of the token in a sequence, 0 for single tokens
	Offset int            // byte offset of the first bad character within Token
	Kind   ParseErrorKind // classification
}

func (e *ParseError) Error() string {
	if e.Kind == KindEmpty {
		return fmt.Sprintf("cubedemo: token %d: %s", e.Index, e.Kind)
	}
	return fmt.Sprintf("cubedemo: token %d %q: %s at offset %d", e.Index, e.Token, e.Kind, e.Offset)
}

// Unwrap lets errors.Is match ErrInvalidNotation.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNotation
}
