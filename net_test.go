package cubedemo

import (
	"strings"
	"testing"
)

func TestFlattenSolved(t *testing.T) {
	net := Flatten(NewCube())
	for _, f := range Faces {
		color, uniform := net.Face(f).Uniform()
		if !uniform || color != f.SolvedColor() {
			t.Errorf("solved %s face should be all %s, got %v", f, f.SolvedColor(), net.Face(f))
		}
	}
}

func TestFlattenAfterR(t *testing.T) {
	c := NewCube()
	before := Flatten(c)
	c.Apply(R)
	net := Flatten(c)

	// Front's right column moved up to Up's right column.
	up := net.Face(Up)
	if col := up.Column(2); col != [3]Color{Green, Green, Green} {
		t.Errorf("Up right column = %v, want all green", col)
	}
	green := 0
	for _, row := range up {
		for _, color := range row {
			if color == Green {
				green++
			}
		}
	}
	if green != 3 {
		t.Errorf("Up should show exactly 3 green stickers, got %d", green)
	}
	for _, col := range []int{0, 1} {
		if up.Column(col) != [3]Color{White, White, White} {
			t.Errorf("Up column %d should stay white, got %v", col, up.Column(col))
		}
	}

	if col := net.Face(Front).Column(2); col != [3]Color{Yellow, Yellow, Yellow} {
		t.Errorf("Front right column = %v, want all yellow", col)
	}
	if net.Face(Left) != before.Face(Left) {
		t.Error("Left face should be unchanged by R")
	}
	if color, uniform := net.Face(Right).Uniform(); !uniform || color != Red {
		t.Error("Right face should still be all red")
	}
}

func TestFlattenAdjacentMoves(t *testing.T) {
	tests := []struct {
		move  Move
		face  Face
		cells func(Grid) [3]Color
		want  Color
	}{
		// U carries the Front top row to Left.
		{U, Left, func(g Grid) [3]Color { return g[0] }, Green},
		// F carries the Up bottom row to Right's left column.
		{F, Right, func(g Grid) [3]Color { return g.Column(0) }, White},
		// L carries the Up left column to Front.
		{L, Front, func(g Grid) [3]Color { return g.Column(0) }, White},
		// D carries the Front bottom row to Right.
		{D, Right, func(g Grid) [3]Color { return g[2] }, Green},
		// B carries the Up top row to Left's left column.
		{B, Left, func(g Grid) [3]Color { return g.Column(0) }, White},
	}
	for _, tt := range tests {
		c := NewCube()
		c.Apply(tt.move)
		got := tt.cells(Flatten(c).Face(tt.face))
		if got != [3]Color{tt.want, tt.want, tt.want} {
			t.Errorf("after %s, %s cells = %v, want all %s", tt.move, tt.face, got, tt.want)
		}
	}
}

func TestFlattenColorCountsAfterScramble(t *testing.T) {
	c := NewCube()
	c.Apply(Shuffle(40, NewRand(11))...)
	net := Flatten(c)

	counts := make(map[Color]int)
	for _, f := range Faces {
		grid := net.Face(f)
		if grid[1][1] != f.SolvedColor() {
			t.Errorf("%s center should stay %s, got %s", f, f.SolvedColor(), grid[1][1])
		}
		for _, row := range grid {
			for _, color := range row {
				counts[color]++
			}
		}
	}
	for _, f := range Faces {
		if counts[f.SolvedColor()] != 9 {
			t.Errorf("expected 9 %s stickers, got %d", f.SolvedColor(), counts[f.SolvedColor()])
		}
	}
	if counts[Black] != 0 {
		t.Errorf("interior sides should never be visible, got %d", counts[Black])
	}
}

func TestFlattenDoesNotMutate(t *testing.T) {
	c := NewCube()
	c.Apply(R, U)
	snapshot := c.Clone()
	Flatten(c)
	if !c.Equal(snapshot) {
		t.Error("Flatten should not modify the cube")
	}
}

func TestNetCross(t *testing.T) {
	cross := Flatten(NewCube()).Cross()
	tests := []struct {
		row, col int
		want     Color
	}{
		{0, 0, NoColor},
		{0, 3, White},
		{4, 0, Orange},
		{4, 4, Green},
		{4, 7, Red},
		{4, 10, Blue},
		{8, 5, Yellow},
		{8, 11, NoColor},
	}
	for _, tt := range tests {
		if got := cross[tt.row][tt.col]; got != tt.want {
			t.Errorf("cross[%d][%d] = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestNetString(t *testing.T) {
	want := strings.Join([]string{
		"      W W W",
		"      W W W",
		"      W W W",
		"O O O G G G R R R B B B",
		"O O O G G G R R R B B B",
		"O O O G G G R R R B B B",
		"      Y Y Y",
		"      Y Y Y",
		"      Y Y Y",
	}, "\n") + "\n"
	if got := NewCube().String(); got != want {
		t.Errorf("solved net:\n%s\nwant:\n%s", got, want)
	}
}
