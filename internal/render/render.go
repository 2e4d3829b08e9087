// Package render draws cube nets and move sequences in the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubedemo"
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	SolvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	MoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	CurrentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Foreground(lipgloss.Color("82"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps sticker colors to ANSI 256 palette entries.
var stickerColors = map[cubedemo.Color]lipgloss.Color{
	cubedemo.White:  lipgloss.Color("255"),
	cubedemo.Yellow: lipgloss.Color("226"),
	cubedemo.Green:  lipgloss.Color("34"),
	cubedemo.Blue:   lipgloss.Color("27"),
	cubedemo.Orange: lipgloss.Color("208"),
	cubedemo.Red:    lipgloss.Color("196"),
	cubedemo.Black:  lipgloss.Color("232"),
}

// Block is the glyph drawn for one sticker.
const Block = "██"

// stickerStyles caches one style per color.
var stickerStyles = func() map[cubedemo.Color]lipgloss.Style {
	styles := make(map[cubedemo.Color]lipgloss.Style, len(stickerColors))
	for c, ansi := range stickerColors {
		styles[c] = lipgloss.NewStyle().Foreground(ansi)
	}
	return styles
}()

// Sticker renders one cell of a net.
func Sticker(c cubedemo.Color) string {
	if c == cubedemo.NoColor {
		return "  "
	}
	style, ok := stickerStyles[c]
	if !ok {
		return "??"
	}
	return style.Render(Block)
}

// Net renders a net as a colored cross. With plain set it falls back to
// the letter layout of Net.String, which survives copy and paste.
func Net(n cubedemo.Net, plain bool) string {
	if plain {
		return n.String()
	}

	var b strings.Builder
	for _, row := range n.Cross() {
		for _, c := range row {
			b.WriteString(Sticker(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Sequence renders moves as notation, highlighting the move at index
// current. A negative current highlights nothing. Long sequences are
// windowed to the last max moves before the highlight.
func Sequence(moves []cubedemo.Move, current, max int) string {
	if len(moves) == 0 {
		return ""
	}

	end := len(moves)
	if current >= 0 && current < len(moves) {
		end = current + 1
	}
	start := 0
	if max > 0 && end > max {
		start = end - max
	}

	parts := make([]string, 0, end-start+1)
	if start > 0 {
		parts = append(parts, "...")
	}
	for i := start; i < len(moves) && (max <= 0 || i < start+max); i++ {
		if i == current {
			parts = append(parts, CurrentMoveStyle.Render(moves[i].Notation()))
		} else {
			parts = append(parts, MoveStyle.Render(moves[i].Notation()))
		}
	}
	return strings.Join(parts, " ")
}
