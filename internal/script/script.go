// Package script loads demo scripts: a move sequence plus the playback
// hints the terminal player uses to pace it.
//
// Example:
//
//	moves: "R U R' U'"
//	repeat: 6
//	duration: 100ms
//	delay: 100ms
//	shuffle:
//	  count: 10
//	  seed: 42
//	loop: false
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubedemo"
)

// Script describes a demo run.
type Script struct {
	Moves    string        `yaml:"moves"`
	Repeat   int           `yaml:"repeat,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Delay    time.Duration `yaml:"delay,omitempty"`
	Loop     bool          `yaml:"loop,omitempty"`
	Shuffle  *Shuffle      `yaml:"shuffle,omitempty"`
}

// Shuffle asks for a seeded scramble played before the moves.
type Shuffle struct {
	Count int    `yaml:"count"`
	Seed  uint64 `yaml:"seed"`
}

// Default returns the built-in demo: a fixed scramble followed by its
// inverse, forever.
func Default() *Script {
	return &Script{
		Moves:    cubedemo.FormatMoves(cubedemo.DemoSequence),
		Duration: cubedemo.DefaultMoveDuration,
		Delay:    cubedemo.DefaultMoveDelay,
		Loop:     true,
	}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"moves":  s.Moves,
		"repeat": s.Repeat,
		"loop":   s.Loop,
	}).Debug("loaded demo script")
	return s, nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the script as YAML.
func (s *Script) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// Validate checks the numeric fields and the move notation.
func (s *Script) Validate() error {
	if s.Repeat < 0 {
		return fmt.Errorf("repeat must not be negative, got %d", s.Repeat)
	}
	if s.Duration < 0 || s.Delay < 0 {
		return fmt.Errorf("duration and delay must not be negative")
	}
	if s.Shuffle != nil && s.Shuffle.Count < 0 {
		return fmt.Errorf("shuffle count must not be negative, got %d", s.Shuffle.Count)
	}
	if _, err := cubedemo.ParseMoves(s.Moves); err != nil {
		return fmt.Errorf("invalid moves: %w", err)
	}
	return nil
}

// Sequence returns the moves to play: the optional shuffle, then the
// script's moves repeated Repeat times (at least once). Script timing is
// attached to every move.
func (s *Script) Sequence() ([]cubedemo.Move, error) {
	moves, err := cubedemo.ParseMoves(s.Moves)
	if err != nil {
		return nil, fmt.Errorf("invalid moves: %w", err)
	}

	var seq []cubedemo.Move
	if s.Shuffle != nil && s.Shuffle.Count > 0 {
		seq = append(seq, cubedemo.Shuffle(s.Shuffle.Count, cubedemo.NewRand(s.Shuffle.Seed))...)
	}

	repeat := s.Repeat
	if repeat == 0 {
		repeat = 1
	}
	for i := 0; i < repeat; i++ {
		seq = append(seq, moves...)
	}

	for i := range seq {
		seq[i] = seq[i].WithTiming(s.Duration, s.Delay)
	}
	return seq, nil
}

// Timeline builds the playback timeline from a solved cube.
func (s *Script) Timeline() (*cubedemo.Timeline, error) {
	seq, err := s.Sequence()
	if err != nil {
		return nil, err
	}
	return cubedemo.NewTimeline(cubedemo.NewCube(), seq, cubedemo.WithLoop(s.Loop)), nil
}
