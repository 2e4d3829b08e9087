package cubedemo

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubedemo/pkg/lattice"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.IsPristine() {
		t.Error("New cube should be pristine")
	}
	if c.Len() != 27 {
		t.Errorf("New cube should have 27 cubelets, got %d", c.Len())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("New cube should be valid: %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		c := NewCube()
		m := Move{Face: face, Turns: Quarter, Clockwise: true}
		c.Apply(m, m, m, m)
		if !c.IsPristine() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R2, R2)
	if !c.IsPristine() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(moves...)
		if i < 5 && c.IsSolved() {
			t.Errorf("Cube should not be solved after %d repetitions", i+1)
		}
	}
	if !c.IsPristine() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPermTwice_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should scramble the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm twice should return to solved")
		t.Log(c.String())
	}

	// Each T-perm nets one U', so the Up center ends turned 180 degrees in place.
	upCenter := lattice.V(0, 1, 0)
	for _, cl := range c.Cubelets() {
		if cl.ID() == upCenter {
			if cl.Position() != upCenter || cl.Orientation() != RotationMatrix(U2) {
				t.Errorf("Up center should sit home turned by U2, got %v", cl.Orientation())
			}
			continue
		}
		if !cl.AtHome() {
			t.Errorf("%s should be home", cl)
		}
	}
	if c.IsPristine() {
		t.Error("a center turned in place should not count as pristine")
	}
}

func TestDemoSequence_LoopEndsPristine(t *testing.T) {
	if got := FormatMoves(DemoSequence); got != "R L U2 F U' D F2 R2 B2 L U2 F' B' U R2 D F2 U R2 U" {
		t.Errorf("DemoSequence = %q", got)
	}
	c := NewCube()
	c.Apply(DemoSequence...)
	if c.IsSolved() {
		t.Error("demo scramble should not be solved")
	}
	c.Apply(InvertMoves(DemoSequence)...)
	if !c.IsPristine() {
		t.Error("demo scramble followed by its inverse should be pristine")
	}
}

func TestResetRestoresSolved(t *testing.T) {
	c := NewCube()
	c.Apply(Shuffle(25, NewRand(3))...)
	if c.IsPristine() {
		t.Fatal("shuffled cube should not be pristine")
	}
	c.Reset()
	if !c.IsPristine() || !c.Equal(NewCube()) {
		t.Error("Reset should restore the solved state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	c.Apply(R, U)
	clone := c.Clone()
	if !clone.Equal(c) {
		t.Fatal("clone should equal original")
	}
	clone.Reset()
	if c.IsSolved() {
		t.Error("resetting the clone should not affect the original")
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewCube()
	want.Apply(SexyMove...)
	if !c.Equal(want) {
		t.Error("ApplyNotation should match applying the parsed moves")
	}
}

func TestApplyNotationInvalidAppliesNothing(t *testing.T) {
	c := NewCube()
	err := c.ApplyNotation("R U X")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation, got %v", err)
	}
	if !c.IsPristine() {
		t.Error("no move should be applied when notation is invalid")
	}
}

func TestCubeletKinds(t *testing.T) {
	counts := make(map[Kind]int)
	for _, cl := range NewCube().Cubelets() {
		counts[cl.Kind()]++
	}
	want := map[Kind]int{Core: 1, Center: 6, Edge: 12, Corner: 8}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("expected %d %s cubelets, got %d", n, k, counts[k])
		}
	}
}

func TestCubeletColors(t *testing.T) {
	c := NewCube()
	corner, ok := c.Cubelet(lattice.V(1, 1, 1))
	if !ok {
		t.Fatal("corner (1,1,1) missing")
	}
	colors := corner.Colors()
	want := [6]Color{Up: White, Down: Black, Front: Green, Back: Black, Left: Black, Right: Red}
	if colors != want {
		t.Errorf("corner colors = %v, want %v", colors, want)
	}

	core, _ := c.Cubelet(lattice.V(0, 0, 0))
	for _, f := range Faces {
		if core.Color(f) != Black {
			t.Errorf("core should have no stickers, %s is %s", f, core.Color(f))
		}
	}
}

func TestColorsTravelWithCubelet(t *testing.T) {
	c := NewCube()
	c.Apply(R)

	// The front-right edge is now up-right, its green sticker facing up.
	cl, ok := c.At(lattice.V(1, 1, 0))
	if !ok {
		t.Fatal("no cubelet at (1,1,0)")
	}
	if cl.ID() != lattice.V(1, 0, 1) {
		t.Fatalf("expected front-right edge at (1,1,0), got %v", cl.ID())
	}
	if cl.ColorFacing(Up) != Green || cl.ColorFacing(Right) != Red {
		t.Errorf("edge shows %s up and %s right, want G and R", cl.ColorFacing(Up), cl.ColorFacing(Right))
	}
	if cl.WorldFace(Front) != Up || cl.LocalFace(Up) != Front {
		t.Error("local Front should now point Up")
	}
	if cl.Colors() != newCubelet(cl.ID()).Colors() {
		t.Error("stickers must never change")
	}
}

func TestSliceMembershipIsDynamic(t *testing.T) {
	c := NewCube()
	for _, f := range Faces {
		if n := len(c.Slice(f)); n != 9 {
			t.Errorf("slice %s has %d cubelets, want 9", f, n)
		}
	}

	c.Apply(R)
	found := false
	for _, cl := range c.Slice(Up) {
		if cl.ID() == lattice.V(1, 0, 1) {
			found = true
		}
		if !InSlice(Up, cl.Position()) {
			t.Errorf("cubelet %v at %v is not in the Up layer", cl.ID(), cl.Position())
		}
	}
	if !found {
		t.Error("after R the front-right edge should belong to the Up slice")
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	c := NewCube()
	id := lattice.V(1, 1, 1)
	cl := c.cubelets[id]
	cl.position = lattice.V(0, 0, 0)
	c.cubelets[id] = cl

	err := c.Validate()
	if !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Flatten should panic on an inconsistent cube")
		}
	}()
	Flatten(c)
}

func TestValidateDetectsMissingCubelet(t *testing.T) {
	c := NewCube()
	delete(c.cubelets, lattice.V(0, 0, 0))
	if err := c.Validate(); !errors.Is(err, ErrInconsistentState) {
		t.Errorf("expected ErrInconsistentState, got %v", err)
	}
}

func TestValidateDetectsBadOrientation(t *testing.T) {
	c := NewCube()
	id := lattice.V(0, 1, 0)
	cl := c.cubelets[id]
	cl.orientation = lattice.Matrix{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	c.cubelets[id] = cl
	if err := c.Validate(); !errors.Is(err, ErrInconsistentState) {
		t.Errorf("expected ErrInconsistentState, got %v", err)
	}
}
