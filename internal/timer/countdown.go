// Package timer implements the focus countdown: a seconds counter driven by
// a one-second tick while running, with Focus / Short Break / Long Break modes.
package timer

import (
	"fmt"
	"strings"
	"time"
)

// Mode is a countdown preset.
type Mode string

const (
	ModeFocus      Mode = "Focus"
	ModeShortBreak Mode = "Short Break"
	ModeLongBreak  Mode = "Long Break"
)

// Modes lists the presets in display order.
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

// Durations maps each mode to its length.
type Durations map[Mode]time.Duration

// DefaultDurations are the classic 25/5/15 minute Pomodoro presets.
func DefaultDurations() Durations {
	return Durations{
		ModeFocus:      25 * time.Minute,
		ModeShortBreak: 5 * time.Minute,
		ModeLongBreak:  15 * time.Minute,
	}
}

// Seconds returns the whole-second length of mode, falling back to Focus.
func (d Durations) Seconds(mode Mode) int {
	if v, ok := d[mode]; ok && v > 0 {
		return int(v / time.Second)
	}
	if v, ok := d[ModeFocus]; ok && v > 0 {
		return int(v / time.Second)
	}
	return int(DefaultDurations()[ModeFocus] / time.Second)
}

var modeAliases = map[string]Mode{
	"focus":       ModeFocus,
	"f":           ModeFocus,
	"short break": ModeShortBreak,
	"short":       ModeShortBreak,
	"s":           ModeShortBreak,
	"long break":  ModeLongBreak,
	"long":        ModeLongBreak,
	"l":           ModeLongBreak,
}

// ParseMode returns the mode named s. Matching ignores case and accepts
// the short forms "focus", "short" and "long".
func ParseMode(s string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown timer mode %q", s)
}

// NextMode cycles to the following preset.
func NextMode(m Mode) Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeFocus
}

// Event is the outcome of a tick.
type Event int

const (
	// Ignored means the tick was stale or the countdown is not running.
	Ignored Event = iota
	// Ticked means one second was consumed and the countdown keeps running.
	Ticked
	// Expired means the countdown reached zero and stopped itself.
	Expired
)

// Countdown is the {Idle, Running} x {mode} state machine.
//
// Every transition that invalidates a scheduled tick bumps the generation;
// ticks carrying an older generation are ignored, which is how a pending
// tick is cancelled.
type Countdown struct {
	durations Durations
	mode      Mode
	remaining int
	running   bool
	gen       int
}

// New creates an idle countdown in Focus mode.
func New(d Durations) *Countdown {
	if d == nil {
		d = DefaultDurations()
	}
	c := &Countdown{durations: d, mode: ModeFocus}
	c.remaining = d.Seconds(ModeFocus)
	return c
}

// Mode returns the current preset.
func (c *Countdown) Mode() Mode { return c.mode }

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool { return c.running }

// Generation identifies the currently valid tick schedule.
func (c *Countdown) Generation() int { return c.gen }

// Total returns the full length of the current mode in seconds.
func (c *Countdown) Total() int { return c.durations.Seconds(c.mode) }

// Progress returns the consumed share of the current mode in [0, 1].
func (c *Countdown) Progress() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	p := float64(total-c.remaining) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Start begins ticking and returns the generation the ticks must carry.
// A countdown sitting at zero is refilled first.
func (c *Countdown) Start() int {
	if c.remaining <= 0 {
		c.remaining = c.Total()
	}
	c.running = true
	c.gen++
	return c.gen
}

// Pause stops ticking and keeps the remaining time.
func (c *Countdown) Pause() {
	c.running = false
	c.gen++
}

// Toggle starts a paused countdown or pauses a running one.
// It reports whether the countdown is now running.
func (c *Countdown) Toggle() bool {
	if c.running {
		c.Pause()
		return false
	}
	c.Start()
	return true
}

// Reset restores the full duration of the current mode and stops.
func (c *Countdown) Reset() {
	c.remaining = c.Total()
	c.running = false
	c.gen++
}

// SetMode switches preset, restores its full duration and stops.
func (c *Countdown) SetMode(m Mode) {
	c.mode = m
	c.Reset()
}

// Tick consumes one second if gen is current and the countdown is running.
func (c *Countdown) Tick(gen int) Event {
	if !c.running || gen != c.gen {
		return Ignored
	}
	if c.remaining <= 1 {
		c.remaining = 0
		c.running = false
		c.gen++
		return Expired
	}
	c.remaining--
	return Ticked
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
