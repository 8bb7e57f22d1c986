package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastCountdownID atomic.Int64

type countdownTickMsg struct {
	id int64
}

// countdown tracks the time left until a resend is allowed. Each start gets
// a new id so ticks from an earlier run are ignored.
type countdown struct {
	id    int64
	until time.Time
	now   func() time.Time
}

func newCountdown(now func() time.Time) countdown {
	return countdown{now: now}
}

func (c *countdown) start(until time.Time) tea.Cmd {
	c.id = lastCountdownID.Add(1)
	c.until = until
	if c.done() {
		return nil
	}
	return c.tick()
}

func (c *countdown) startIn(d time.Duration) tea.Cmd {
	return c.start(c.now().Add(d))
}

func (c *countdown) update(msg countdownTickMsg) tea.Cmd {
	if msg.id != c.id || c.done() {
		return nil
	}
	return c.tick()
}

func (c *countdown) tick() tea.Cmd {
	id := c.id
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{id: id}
	})
}

func (c *countdown) remaining() time.Duration {
	left := c.until.Sub(c.now())
	if left < 0 {
		return 0
	}
	return left
}

func (c *countdown) done() bool {
	return c.remaining() <= 0
}

// label appends the time left to text while the countdown runs.
func (c *countdown) label(text string) string {
	if c.done() {
		return text
	}
	return text + " (" + formatCountdown(c.remaining()) + ")"
}
