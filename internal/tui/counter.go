package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	counterFPS       = 60
	counterFrames    = 90 // 1.5s at counterFPS
	counterFrequency = 6.0
	counterDamping   = 1.0 // critically damped: no overshoot
)

// counterTickMsg advances the count-up animation. gen ties the tick to the
// animation that scheduled it.
type counterTickMsg struct {
	gen int
}

// counter animates the displayed total towards a target with a spring.
// Only the displayed number moves; the result itself is already final.
type counter struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	frame    int
	gen      int
	running  bool
	interval time.Duration
}

func newCounter() counter {
	return counter{
		spring:   harmonica.NewSpring(harmonica.FPS(counterFPS), counterFrequency, counterDamping),
		interval: time.Second / counterFPS,
	}
}

// Start animates from the currently displayed value to target. Any running
// animation is superseded: its pending ticks carry an older gen and are dropped.
func (c *counter) Start(target int64) tea.Cmd {
	c.gen++
	c.target = float64(target)
	c.vel = 0
	c.frame = 0
	c.running = true
	return c.tick()
}

// Stop halts the animation and clears the display.
func (c *counter) Stop() {
	c.gen++
	c.running = false
	c.pos, c.vel, c.target = 0, 0, 0
}

// Update steps the spring for a tick from the current animation.
func (c *counter) Update(msg counterTickMsg) tea.Cmd {
	if !c.running || msg.gen != c.gen {
		return nil
	}

	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
	c.frame++

	if c.frame >= counterFrames || (math.Abs(c.target-c.pos) < 0.5 && math.Abs(c.vel) < 0.5) {
		c.pos = c.target
		c.vel = 0
		c.running = false
		return nil
	}
	return c.tick()
}

// Value returns the number to display.
func (c counter) Value() int64 {
	if c.pos <= 0 {
		return 0
	}
	if c.pos >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(c.pos))
}

// Running reports whether the animation is in progress.
func (c counter) Running() bool { return c.running }

func (c counter) tick() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return counterTickMsg{gen: gen}
	})
}
