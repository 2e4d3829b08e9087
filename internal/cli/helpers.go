package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubedemo"
	"github.com/SeamusWaldron/cubedemo/internal/render"
)

// parseArgs parses moves given as one or more arguments. Arguments may
// hold several space-separated moves each.
func parseArgs(args []string) ([]cubedemo.Move, error) {
	moves, err := cubedemo.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}
	return moves, nil
}

// printCube writes the net of c followed by its solved status.
func printCube(w io.Writer, c *cubedemo.Cube) {
	fmt.Fprint(w, render.Net(cubedemo.Flatten(c), plain))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Solved: %v\n", c.IsSolved())
}
