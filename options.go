package cubedemo

import "time"

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory  bool
	historyLimit int
}

func defaultConfig() *config {
	return &config{
		moveHistory:  true,
		historyLimit: 0,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are stored and can be undone.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithHistoryLimit caps the number of remembered moves. Older moves are
// dropped first and can no longer be undone. Zero means unlimited.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.historyLimit = n
	}
}

// DefaultMoveDuration and DefaultMoveDelay are the animation hints used
// for moves that carry none.
const (
	DefaultMoveDuration = 100 * time.Millisecond
	DefaultMoveDelay    = 100 * time.Millisecond
)

// TimelineOption configures a Timeline.
type TimelineOption func(*timelineConfig)

type timelineConfig struct {
	duration time.Duration
	delay    time.Duration
	loop     bool
}

func defaultTimelineConfig() *timelineConfig {
	return &timelineConfig{
		duration: DefaultMoveDuration,
		delay:    DefaultMoveDelay,
	}
}

// WithDefaultDuration sets the animation length for moves with a zero Duration.
func WithDefaultDuration(d time.Duration) TimelineOption {
	return func(c *timelineConfig) {
		c.duration = d
	}
}

// WithDefaultDelay sets the pause after moves with a zero Delay.
func WithDefaultDelay(d time.Duration) TimelineOption {
	return func(c *timelineConfig) {
		c.delay = d
	}
}

// WithLoop appends the inverse of the sequence, so the timeline ends in
// the state it started from and can be replayed back to back.
func WithLoop(enabled bool) TimelineOption {
	return func(c *timelineConfig) {
		c.loop = enabled
	}
}
