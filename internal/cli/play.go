package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubedemo"
	"github.com/SeamusWaldron/cubedemo/internal/render"
	"github.com/SeamusWaldron/cubedemo/internal/script"
)

var playCmd = &cobra.Command{
	Use:   "play [moves...]",
	Short: "Play a move sequence step by step",
	Long: `Play a move sequence on a solved cube, one move at a time, paced by each
move's duration and delay.

Without arguments the built-in demo is played: a fixed scramble followed by
its inverse, on repeat.

Usage:
  cubedemo play                          # Built-in demo
  cubedemo play R U R' U'                # Play the given moves
  cubedemo play --script demo.yaml       # Play a script file
  cubedemo play --loop --speed 2 F B     # Play F B, then undo it, forever
  cubedemo play --frames R U             # Print every state and exit`,
	RunE: runPlay,
}

var (
	playScript   string
	playLoop     bool
	playSpeed    float64
	playDuration time.Duration
	playDelay    time.Duration
	playFrames   bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playScript, "script", "f", "", "Script file to play")
	playCmd.Flags().BoolVarP(&playLoop, "loop", "l", false, "Append the inverse sequence and repeat forever")
	playCmd.Flags().Float64VarP(&playSpeed, "speed", "s", 1.0, "Playback speed multiplier")
	playCmd.Flags().DurationVar(&playDuration, "duration", cubedemo.DefaultMoveDuration, "Duration of each move")
	playCmd.Flags().DurationVar(&playDelay, "delay", cubedemo.DefaultMoveDelay, "Pause after each move")
	playCmd.Flags().BoolVar(&playFrames, "frames", false, "Print every state instead of starting the player")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playSpeed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", playSpeed)
	}

	s, err := loadPlayScript(cmd, args)
	if err != nil {
		return err
	}
	tl, err := s.Timeline()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"steps": tl.Len(),
		"total": tl.Total(),
		"loop":  s.Loop,
	}).Debug("built timeline")

	if playFrames {
		printFrames(cmd.OutOrStdout(), tl)
		return nil
	}

	model := newPlayModel(tl, playSpeed, s.Loop)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player error: %w", err)
	}
	return nil
}

// loadPlayScript picks the script to play: --script, then the move
// arguments, then the built-in demo. Flags given explicitly override the
// script's own settings.
func loadPlayScript(cmd *cobra.Command, args []string) (*script.Script, error) {
	var s *script.Script
	switch {
	case playScript != "":
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine --script with move arguments")
		}
		loaded, err := script.Load(playScript)
		if err != nil {
			return nil, err
		}
		s = loaded
	case len(args) > 0:
		moves, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		s = &script.Script{
			Moves:    cubedemo.FormatMoves(moves),
			Duration: playDuration,
			Delay:    playDelay,
		}
	default:
		s = script.Default()
	}

	flags := cmd.Flags()
	if flags.Changed("loop") {
		s.Loop = playLoop
	}
	if flags.Changed("duration") {
		s.Duration = playDuration
	}
	if flags.Changed("delay") {
		s.Delay = playDelay
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// printFrames writes the initial state and the state after every step.
func printFrames(w io.Writer, tl *cubedemo.Timeline) {
	fmt.Fprintf(w, "Step 0/%d: start\n", tl.Len())
	fmt.Fprint(w, render.Net(cubedemo.Flatten(tl.Initial()), plain))
	for _, step := range tl.Steps() {
		fmt.Fprintf(w, "\nStep %d/%d: %s at %s\n", step.Index+1, tl.Len(), step.Move.Notation(), step.Start)
		fmt.Fprint(w, render.Net(cubedemo.Flatten(step.After), plain))
	}
	fmt.Fprintf(w, "\nSolved: %v\n", tl.Final().IsSolved())
}

// Player model
type playModel struct {
	timeline *cubedemo.Timeline
	moves    []cubedemo.Move
	pos      int // steps played
	speed    float64
	loop     bool
	paused   bool
	gen      int // bumped to drop ticks scheduled before a pause, reset or speed change
	quitting bool
}

func newPlayModel(tl *cubedemo.Timeline, speed float64, loop bool) *playModel {
	moves := make([]cubedemo.Move, 0, tl.Len())
	for _, s := range tl.Steps() {
		moves = append(moves, s.Move)
	}
	return &playModel{
		timeline: tl,
		moves:    moves,
		speed:    speed,
		loop:     loop,
	}
}

type playTickMsg struct{ gen int }

func (m *playModel) Init() tea.Cmd {
	return m.scheduleNextStep()
}

// scheduleNextStep waits out the next move's duration and delay, scaled by
// the playback speed.
func (m *playModel) scheduleNextStep() tea.Cmd {
	if m.paused {
		return nil
	}

	var wait time.Duration
	switch {
	case m.pos < m.timeline.Len():
		mv := m.timeline.Step(m.pos).Move
		wait = mv.Duration + mv.Delay
	case m.loop && m.timeline.Len() > 0:
		wait = cubedemo.DefaultMoveDelay
	default:
		return nil
	}
	wait = time.Duration(float64(wait) / m.speed)

	gen := m.gen
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

func (m *playModel) advance() {
	switch {
	case m.pos < m.timeline.Len():
		m.pos++
	case m.loop:
		m.pos = 0
	}
}

func (m *playModel) restart() tea.Cmd {
	m.gen++
	return m.scheduleNextStep()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "p":
			m.paused = !m.paused
			return m, m.restart()

		case "n", "right":
			if m.paused {
				m.advance()
			}

		case "b", "left":
			if m.paused && m.pos > 0 {
				m.pos--
			}

		case "r":
			m.pos = 0
			return m, m.restart()

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}
			return m, m.restart()

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
			return m, m.restart()
		}

	case playTickMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		m.advance()
		return m, m.scheduleNextStep()
	}

	return m, nil
}

// state returns the cube after the steps played so far.
func (m *playModel) state() *cubedemo.Cube {
	if m.pos == 0 {
		return m.timeline.Initial()
	}
	return m.timeline.Step(m.pos - 1).After
}

func (m *playModel) View() string {
	if m.quitting {
		return "Player stopped.\n"
	}

	var b strings.Builder

	b.WriteString(render.TitleStyle.Render("Cube Demo"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.pos, m.timeline.Len())
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.loop {
		progress += " [LOOP]"
	}
	b.WriteString(render.StatusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	state := m.state()
	b.WriteString(render.Net(cubedemo.Flatten(state), plain))
	b.WriteString("\n")

	if state.IsSolved() {
		b.WriteString(render.SolvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	if len(m.moves) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(render.Sequence(m.moves, m.pos-1, 20))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "SPACE/p=pause  r=restart  +/-=speed  q=quit"
	if m.paused {
		help = "SPACE/p=resume  n=next  b=back  r=restart  q=quit"
	}
	b.WriteString(render.HelpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
