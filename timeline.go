package cubedemo

import "time"

// Step is one move of a Timeline with the discrete states around it.
type Step struct {
	Index  int           // position in the timeline
	Move   Move          // the move, with timing hints filled in
	Start  time.Duration // offset at which the move's animation begins
	Before *Cube         // state before the move
	After  *Cube         // state after the move
}

// End returns the offset at which the move's animation finishes.
func (s Step) End() time.Duration {
	return s.Start + s.Move.Duration
}

// Timeline is a move sequence folded over the rotation engine, with each
// move's start time derived from the timing hints of the moves before it:
// step i starts at the sum of (Duration + Delay) of steps 0..i-1.
//
// Timelines only hold discrete states. Anything shown between a step's
// Before and After is up to the presentation layer. The cubes a Timeline
// hands out are shared between steps and must not be modified.
type Timeline struct {
	start *Cube
	steps []Step
	total time.Duration
}

// NewTimeline plays moves from start. start itself is not modified.
func NewTimeline(start *Cube, moves []Move, opts ...TimelineOption) *Timeline {
	cfg := defaultTimelineConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	seq := moves
	if cfg.loop {
		seq = append(append([]Move(nil), moves...), InvertMoves(moves)...)
	}

	tl := &Timeline{
		start: start.Clone(),
		steps: make([]Step, 0, len(seq)),
	}

	state := tl.start
	var at time.Duration
	for i, m := range seq {
		if m.Duration == 0 {
			m.Duration = cfg.duration
		}
		if m.Delay == 0 {
			m.Delay = cfg.delay
		}
		next := Rotate(state, m)
		tl.steps = append(tl.steps, Step{
			Index:  i,
			Move:   m,
			Start:  at,
			Before: state,
			After:  next,
		})
		state = next
		at += m.Duration + m.Delay
	}
	tl.total = at
	return tl
}

// Steps returns the timeline's steps in order.
func (tl *Timeline) Steps() []Step {
	out := make([]Step, len(tl.steps))
	copy(out, tl.steps)
	return out
}

// Len returns the number of steps.
func (tl *Timeline) Len() int {
	return len(tl.steps)
}

// Step returns step i.
func (tl *Timeline) Step(i int) Step {
	return tl.steps[i]
}

// Total returns the time from the first move's start to the end of the
// last move's delay.
func (tl *Timeline) Total() time.Duration {
	return tl.total
}

// Initial returns the state before the first move.
func (tl *Timeline) Initial() *Cube {
	return tl.start
}

// Final returns the state after the last move.
func (tl *Timeline) Final() *Cube {
	if len(tl.steps) == 0 {
		return tl.start
	}
	return tl.steps[len(tl.steps)-1].After
}

// At returns the last settled state at offset t, and the index of the step
// being animated at t or -1 between animations.
func (tl *Timeline) At(t time.Duration) (*Cube, int) {
	state := tl.start
	for _, s := range tl.steps {
		if t < s.Start {
			return state, -1
		}
		if t < s.End() {
			return s.Before, s.Index
		}
		state = s.After
	}
	return state, -1
}
