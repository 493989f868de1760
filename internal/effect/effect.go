// Package effect models the short timed visual effects of the profile page (counters, typed
// text, status notices) as small state machines driven by a schedule.Scheduler.
package effect

import (
	"time"

	"github.com/leighmacdonald/folio/internal/schedule"
)

type State int

const (
	Pending State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Effect is a timed effect that advances only through scheduler callbacks.
type Effect interface {
	State() State
	// Start begins the effect. Starting an effect that is not Pending does nothing.
	Start(sched schedule.Scheduler)
}

// machine holds the shared lifecycle bookkeeping.
type machine struct {
	state    State
	onChange func()
}

func (m *machine) State() State {
	return m.state
}

func (m *machine) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

// Counter counts up from zero to Target in Steps increments.
type Counter struct {
	machine
	Target   int
	Steps    int
	Interval time.Duration
	current  float64
}

const (
	DefaultCounterSteps    = 50
	DefaultCounterInterval = 30 * time.Millisecond
)

func NewCounter(target int, onChange func()) *Counter {
	return &Counter{
		machine:  machine{onChange: onChange},
		Target:   target,
		Steps:    DefaultCounterSteps,
		Interval: DefaultCounterInterval,
	}
}

// Value is the number currently displayed.
func (c *Counter) Value() int {
	if c.state == Done {
		return c.Target
	}

	return int(c.current)
}

func (c *Counter) Start(sched schedule.Scheduler) {
	if c.state != Pending {
		return
	}

	c.state = Running
	c.tick(sched)
}

func (c *Counter) tick(sched schedule.Scheduler) {
	steps := max(c.Steps, 1)
	if c.current < float64(c.Target) {
		c.current += float64(c.Target) / float64(steps)
		if c.current < float64(c.Target) {
			c.changed()
			sched.After(c.Interval, func() { c.tick(sched) })

			return
		}
	}

	c.current = float64(c.Target)
	c.state = Done
	c.changed()
}

// Typewriter reveals Text one rune at a time after StartDelay.
type Typewriter struct {
	machine
	Text       string
	StartDelay time.Duration
	Interval   time.Duration
	runes      []rune
	shown      int
}

const (
	DefaultTypewriterDelay    = 500 * time.Millisecond
	DefaultTypewriterInterval = 50 * time.Millisecond
)

func NewTypewriter(text string, onChange func()) *Typewriter {
	return &Typewriter{
		machine:    machine{onChange: onChange},
		Text:       text,
		StartDelay: DefaultTypewriterDelay,
		Interval:   DefaultTypewriterInterval,
		runes:      []rune(text),
	}
}

// Visible is the typed portion of Text.
func (t *Typewriter) Visible() string {
	return string(t.runes[:t.shown])
}

func (t *Typewriter) Start(sched schedule.Scheduler) {
	if t.state != Pending {
		return
	}

	t.state = Running
	sched.After(t.StartDelay, func() { t.tick(sched) })
}

func (t *Typewriter) tick(sched schedule.Scheduler) {
	if t.shown < len(t.runes) {
		t.shown++
	}

	if t.shown >= len(t.runes) {
		t.state = Done
		t.changed()

		return
	}

	t.changed()
	sched.After(t.Interval, func() { t.tick(sched) })
}

// Notice is a status message that expires after TTL.
type Notice struct {
	machine
	Message string
	IsError bool
	TTL     time.Duration
}

const DefaultNoticeTTL = 10 * time.Second

func NewNotice(message string, isError bool, onChange func()) *Notice {
	return &Notice{
		machine: machine{onChange: onChange},
		Message: message,
		IsError: isError,
		TTL:     DefaultNoticeTTL,
	}
}

// Visible reports whether the notice should still be shown.
func (n *Notice) Visible() bool {
	return n.state == Running
}

func (n *Notice) Start(sched schedule.Scheduler) {
	if n.state != Pending {
		return
	}

	n.state = Running
	n.changed()
	sched.After(n.TTL, func() {
		n.state = Done
		n.changed()
	})
}

// Dismiss ends a notice early.
func (n *Notice) Dismiss() {
	if n.state == Done {
		return
	}

	n.state = Done
	n.changed()
}
