package cubedemo

import (
	"testing"
	"time"
)

func TestTimelineDefaultTiming(t *testing.T) {
	tl := NewTimeline(NewCube(), []Move{R, U, RPrime})
	if tl.Len() != 3 {
		t.Fatalf("expected 3 steps, got %d", tl.Len())
	}

	wantStarts := []time.Duration{0, 200 * time.Millisecond, 400 * time.Millisecond}
	for i, s := range tl.Steps() {
		if s.Index != i {
			t.Errorf("step %d has index %d", i, s.Index)
		}
		if s.Start != wantStarts[i] {
			t.Errorf("step %d starts at %v, want %v", i, s.Start, wantStarts[i])
		}
		if s.Move.Duration != DefaultMoveDuration || s.Move.Delay != DefaultMoveDelay {
			t.Errorf("step %d should use default timing, got %v/%v", i, s.Move.Duration, s.Move.Delay)
		}
	}
	if tl.Total() != 600*time.Millisecond {
		t.Errorf("total = %v, want 600ms", tl.Total())
	}
}

func TestTimelineCustomTiming(t *testing.T) {
	moves := []Move{
		R.WithTiming(time.Second, 500*time.Millisecond),
		U,
	}
	tl := NewTimeline(NewCube(), moves, WithDefaultDuration(50*time.Millisecond), WithDefaultDelay(0))
	s1 := tl.Step(1)
	if s1.Start != 1500*time.Millisecond {
		t.Errorf("second step starts at %v, want 1.5s", s1.Start)
	}
	if s1.End() != 1550*time.Millisecond {
		t.Errorf("second step ends at %v, want 1.55s", s1.End())
	}
	if tl.Total() != 1550*time.Millisecond {
		t.Errorf("total = %v, want 1.55s", tl.Total())
	}
}

func TestTimelineStatesChain(t *testing.T) {
	start := NewCube()
	moves := Shuffle(12, NewRand(5))
	tl := NewTimeline(start, moves)

	if !start.IsPristine() {
		t.Error("NewTimeline should not modify its start cube")
	}
	if !tl.Initial().Equal(start) {
		t.Error("initial state should equal the start cube")
	}

	steps := tl.Steps()
	for i, s := range steps {
		if !s.After.Equal(Rotate(s.Before, s.Move)) {
			t.Errorf("step %d After should be Before rotated by %s", i, s.Move)
		}
		if i > 0 && steps[i-1].After != s.Before {
			t.Errorf("step %d Before should be step %d After", i, i-1)
		}
	}

	want := NewCube()
	want.Apply(moves...)
	if !tl.Final().Equal(want) {
		t.Error("final state should match applying every move")
	}
}

func TestTimelineAt(t *testing.T) {
	tl := NewTimeline(NewCube(), []Move{R, U})

	state, active := tl.At(50 * time.Millisecond)
	if active != 0 || state != tl.Initial() {
		t.Errorf("at 50ms the first move should be animating from the initial state, got step %d", active)
	}

	state, active = tl.At(150 * time.Millisecond)
	if active != -1 || state != tl.Step(0).After {
		t.Errorf("at 150ms the first move should have settled, got step %d", active)
	}

	state, active = tl.At(250 * time.Millisecond)
	if active != 1 || state != tl.Step(1).Before {
		t.Errorf("at 250ms the second move should be animating, got step %d", active)
	}

	state, active = tl.At(tl.Total())
	if active != -1 || state != tl.Final() {
		t.Error("at the end the final state should be settled")
	}
}

func TestTimelineLoop(t *testing.T) {
	moves := []Move{UPrime, L, R2, F}
	tl := NewTimeline(NewCube(), moves, WithLoop(true))
	if tl.Len() != 2*len(moves) {
		t.Fatalf("looped timeline should have %d steps, got %d", 2*len(moves), tl.Len())
	}
	if !tl.Final().IsPristine() {
		t.Error("looped timeline should end where it started")
	}
	if tl.Step(len(moves)).Move.Notation() != "F'" {
		t.Errorf("first inverse step = %s, want F'", tl.Step(len(moves)).Move)
	}
}

func TestTimelineEmpty(t *testing.T) {
	tl := NewTimeline(NewCube(), nil)
	if tl.Len() != 0 || tl.Total() != 0 {
		t.Error("empty timeline should have no steps and no length")
	}
	if !tl.Final().IsPristine() {
		t.Error("empty timeline should end in its start state")
	}
}
