// Package nav implements the section navigator. It owns the ordered list of sections and the
// current index, arbitrates navigation input into a single serialized stream of transitions,
// and drives the indicator and the staggered reveal of each section's elements.
//
// A Navigator is not safe for concurrent use. Every method, and every callback handed to the
// Scheduler, must run on the same goroutine.
package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leighmacdonald/folio/internal/schedule"
)

// ErrConfig is returned by New when the navigator cannot be constructed from its inputs.
var ErrConfig = errors.New("invalid navigator config")

const (
	DefaultTransitionDelay = 800 * time.Millisecond
	DefaultMinInterval     = 800 * time.Millisecond
	DefaultStagger         = 100 * time.Millisecond
	DefaultSwipeThreshold  = 50.0
	DefaultSwipeBudget     = 300 * time.Millisecond
	DefaultMaxDigitKeys    = 5
)

// Section is one full-viewport content panel.
type Section interface {
	SetActive(active bool)
	Elements() []Element
}

// Element is an animatable child of a Section.
type Element interface {
	SetStyle(property string, value string)
	SetVisible(visible bool)
	// Delay returns an explicit reveal delay when the element defines one.
	Delay() (time.Duration, bool)
}

// Timing holds the tunable durations and thresholds of a Navigator.
type Timing struct {
	TransitionDelay time.Duration
	MinInterval     time.Duration
	Stagger         time.Duration
	SwipeThreshold  float64
	SwipeBudget     time.Duration
	MaxDigitKeys    int
	Inputs          InputSources
}

func DefaultTiming() Timing {
	return Timing{
		TransitionDelay: DefaultTransitionDelay,
		MinInterval:     DefaultMinInterval,
		Stagger:         DefaultStagger,
		SwipeThreshold:  DefaultSwipeThreshold,
		SwipeBudget:     DefaultSwipeBudget,
		MaxDigitKeys:    DefaultMaxDigitKeys,
		Inputs:          AllInputs,
	}
}

// Navigator serializes section transitions.
type Navigator struct {
	sections []Section
	sched    schedule.Scheduler
	clock    schedule.Clock
	logger   *slog.Logger
	timing   Timing

	current       int
	transitioning bool
	lastInput     time.Time
	hasInput      bool
	// generation is bumped on every reveal so callbacks from an earlier visit are dropped.
	generation uint64

	swipe swipeTracker

	onIndicator  func(Indicator)
	onTransition func(from int, to int)
}

type Option func(*Navigator)

func WithTiming(timing Timing) Option {
	return func(n *Navigator) { n.timing = timing }
}

func WithTransitionDelay(delay time.Duration) Option {
	return func(n *Navigator) { n.timing.TransitionDelay = delay }
}

func WithMinInterval(interval time.Duration) Option {
	return func(n *Navigator) { n.timing.MinInterval = interval }
}

func WithStagger(stagger time.Duration) Option {
	return func(n *Navigator) { n.timing.Stagger = stagger }
}

func WithSwipe(threshold float64, budget time.Duration) Option {
	return func(n *Navigator) {
		n.timing.SwipeThreshold = threshold
		n.timing.SwipeBudget = budget
	}
}

func WithInputSources(sources InputSources) Option {
	return func(n *Navigator) { n.timing.Inputs = sources }
}

func WithMaxDigitKeys(count int) Option {
	return func(n *Navigator) { n.timing.MaxDigitKeys = count }
}

// WithClock overrides the time source used for debouncing and swipe timing.
func WithClock(clock schedule.Clock) Option {
	return func(n *Navigator) { n.clock = clock }
}

// WithIndicatorListener registers fn to receive the indicator every time it changes.
func WithIndicatorListener(fn func(Indicator)) Option {
	return func(n *Navigator) { n.onIndicator = fn }
}

// WithTransitionListener registers fn to be called when an active transition starts.
// Passive intersection updates do not call it.
func WithTransitionListener(fn func(from int, to int)) Option {
	return func(n *Navigator) { n.onTransition = fn }
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

// New builds a navigator over sections and activates sections[start].
func New(sections []Section, start int, sched schedule.Scheduler, opts ...Option) (*Navigator, error) {
	if len(sections) == 0 {
		return nil, errors.Join(ErrConfig, errors.New("no sections"))
	}

	if start < 0 || start >= len(sections) {
		return nil, errors.Join(ErrConfig, fmt.Errorf("start index %d out of range [0, %d)", start, len(sections)))
	}

	if sched == nil {
		return nil, errors.Join(ErrConfig, errors.New("nil scheduler"))
	}

	navigator := &Navigator{
		sections: sections,
		sched:    sched,
		clock:    schedule.SystemClock{},
		logger:   slog.Default(),
		timing:   DefaultTiming(),
		current:  start,
	}

	if clock, ok := sched.(schedule.Clock); ok {
		navigator.clock = clock
	}

	for _, opt := range opts {
		opt(navigator)
	}

	navigator.activate(start)
	navigator.reveal(start)
	navigator.publish()

	return navigator, nil
}

// Configure replaces the timing values. It does not touch an in-flight transition.
func (n *Navigator) Configure(timing Timing) {
	n.timing = timing
}

func (n *Navigator) Timing() Timing {
	return n.timing
}

func (n *Navigator) Current() int {
	return n.current
}

func (n *Navigator) Count() int {
	return len(n.sections)
}

func (n *Navigator) Transitioning() bool {
	return n.transitioning
}

func (n *Navigator) Indicator() Indicator {
	return IndicatorFor(n.current, len(n.sections))
}

// RequestNext moves to the following section. It reports whether a transition started.
func (n *Navigator) RequestNext() bool {
	return n.RequestGoTo(n.current + 1)
}

// RequestPrevious moves to the preceding section. It reports whether a transition started.
func (n *Navigator) RequestPrevious() bool {
	return n.RequestGoTo(n.current - 1)
}

// RequestGoTo starts a transition to index. Out of range targets, the current index, requests
// during a transition and requests arriving before MinInterval has passed since the last
// accepted one are ignored.
func (n *Navigator) RequestGoTo(index int) bool {
	if index < 0 || index >= len(n.sections) || index == n.current {
		n.logger.Debug("Navigation ignored", slog.Int("target", index), slog.Int("current", n.current))

		return false
	}

	if n.transitioning {
		n.logger.Debug("Navigation dropped, transition in flight", slog.Int("target", index))

		return false
	}

	now := n.clock.Now()
	if n.hasInput && now.Sub(n.lastInput) < n.timing.MinInterval {
		n.logger.Debug("Navigation debounced", slog.Int("target", index),
			slog.Duration("since_last", now.Sub(n.lastInput)))

		return false
	}

	from := n.current
	n.transitioning = true
	n.lastInput = now
	n.hasInput = true
	n.current = index

	n.activate(index)
	n.publish()
	n.reveal(index)

	if n.onTransition != nil {
		n.onTransition(from, index)
	}

	n.logger.Debug("Transition started", slog.Int("from", from), slog.Int("to", index))

	n.sched.After(n.timing.TransitionDelay, func() {
		n.transitioning = false
		n.logger.Debug("Transition settled", slog.Int("current", n.current))
	})

	return true
}

// OnSectionIntersected records that viewport scrolling brought index into view. The current
// index and indicator follow, but no transition lock is taken and no reveal is replayed.
func (n *Navigator) OnSectionIntersected(index int) {
	if index < 0 || index >= len(n.sections) || index == n.current || n.transitioning {
		return
	}

	n.current = index
	n.activate(index)
	n.publish()
}

func (n *Navigator) activate(index int) {
	for idx, section := range n.sections {
		section.SetActive(idx == index)
	}
}

func (n *Navigator) publish() {
	if n.onIndicator != nil {
		n.onIndicator(n.Indicator())
	}
}
