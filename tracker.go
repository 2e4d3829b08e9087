package cubedemo

// Tracker wraps a Cube and keeps the moves applied to it so they can be
// undone and redone.
type Tracker struct {
	cube    *Cube
	cfg     *config
	history []Move
	undone  []Move
	onMove  []func(m Move, c *Cube)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube: NewCube(),
		cfg:  cfg,
	}
}

// OnMove registers a callback that fires after every applied move,
// including undo and redo. The cube passed in is the live state and must
// not be modified.
func (t *Tracker) OnMove(cb func(m Move, c *Cube)) {
	t.onMove = append(t.onMove, cb)
}

// Reset resets the tracker to a solved cube and forgets all history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.undone = nil
}

// ApplyMove applies a move and records it. Any redo history is dropped.
func (t *Tracker) ApplyMove(m Move) {
	t.apply(m)
	t.record(m)
	t.undone = nil
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// ApplyNotation parses and applies a move sequence. Nothing is applied if
// any token is invalid.
func (t *Tracker) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	t.ApplyMoves(moves)
	return nil
}

// Undo reverts the most recent move by applying its reverse.
func (t *Tracker) Undo() (Move, error) {
	if len(t.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.apply(last.Reversed())
	t.undone = append(t.undone, last)
	return last, nil
}

// Redo reapplies the most recently undone move.
func (t *Tracker) Redo() (Move, error) {
	if len(t.undone) == 0 {
		return Move{}, ErrNothingToRedo
	}
	m := t.undone[len(t.undone)-1]
	t.undone = t.undone[:len(t.undone)-1]
	t.apply(m)
	t.record(m)
	return m, nil
}

func (t *Tracker) apply(m Move) {
	t.cube.Apply(m)
	for _, cb := range t.onMove {
		cb(m, t.cube)
	}
}

func (t *Tracker) record(m Move) {
	if !t.cfg.moveHistory {
		return
	}
	t.history = append(t.history, m)
	if limit := t.cfg.historyLimit; limit > 0 && len(t.history) > limit {
		t.history = append([]Move(nil), t.history[len(t.history)-limit:]...)
	}
}

// Moves returns a copy of the recorded move history, oldest first.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// MoveCount returns the number of recorded moves.
func (t *Tracker) MoveCount() int {
	return len(t.history)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
