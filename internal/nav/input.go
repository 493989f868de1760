package nav

import (
	"log/slog"
	"math"
	"time"
)

// InputSources is a set of enabled input kinds.
type InputSources uint8

const (
	InputWheel InputSources = 1 << iota
	InputTouch
	InputKeyboard
	InputIndicator

	AllInputs = InputWheel | InputTouch | InputKeyboard | InputIndicator
)

func (s InputSources) Has(source InputSources) bool {
	return s&source != 0
}

// Key identifies the keys the navigator reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyDown
	KeyUp
	KeySpace
	KeyPageDown
	KeyPageUp
	KeyHome
	KeyEnd
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

// Digit returns the 1-based digit of a digit key, or 0.
func (k Key) Digit() int {
	if k < KeyDigit1 || k > KeyDigit9 {
		return 0
	}

	return int(k-KeyDigit1) + 1
}

// DigitKey returns the key for digit d in 1..9.
func DigitKey(d int) Key {
	if d < 1 || d > 9 {
		return KeyNone
	}

	return KeyDigit1 + Key(d-1)
}

// Event is a raw input event.
type Event interface {
	source() InputSources
}

type WheelEvent struct {
	DeltaY float64
}

type TouchStartEvent struct {
	X float64
	Y float64
}

type TouchEndEvent struct {
	X float64
	Y float64
}

type KeyEvent struct {
	Key Key
}

// DotEvent is the activation of the indicator marker bound to Index.
type DotEvent struct {
	Index int
}

func (WheelEvent) source() InputSources      { return InputWheel }
func (TouchStartEvent) source() InputSources { return InputTouch }
func (TouchEndEvent) source() InputSources   { return InputTouch }
func (KeyEvent) source() InputSources        { return InputKeyboard }
func (DotEvent) source() InputSources        { return InputIndicator }

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionNext
	ActionPrevious
	ActionGoTo
)

// Action is the navigation intent decoded from an event.
type Action struct {
	Kind  ActionKind
	Index int
}

type swipeTracker struct {
	active bool
	startY float64
	at     time.Time
}

// Classify decodes event into an Action without applying it. Touch events update the swipe
// tracker, so a TouchStartEvent always yields ActionNone.
func (n *Navigator) Classify(event Event) Action {
	if event == nil || !n.timing.Inputs.Has(event.source()) {
		return Action{}
	}

	switch evt := event.(type) {
	case WheelEvent:
		switch {
		case evt.DeltaY > 0:
			return Action{Kind: ActionNext}
		case evt.DeltaY < 0:
			return Action{Kind: ActionPrevious}
		}
	case TouchStartEvent:
		n.swipe = swipeTracker{active: true, startY: evt.Y, at: n.clock.Now()}
	case TouchEndEvent:
		return n.endSwipe(evt)
	case KeyEvent:
		return n.classifyKey(evt.Key)
	case DotEvent:
		return Action{Kind: ActionGoTo, Index: evt.Index}
	}

	return Action{}
}

func (n *Navigator) endSwipe(evt TouchEndEvent) Action {
	if !n.swipe.active {
		return Action{}
	}

	start := n.swipe
	n.swipe = swipeTracker{}

	delta := start.startY - evt.Y
	if math.Abs(delta) <= n.timing.SwipeThreshold || n.clock.Now().Sub(start.at) > n.timing.SwipeBudget {
		return Action{}
	}

	if delta > 0 {
		return Action{Kind: ActionNext}
	}

	return Action{Kind: ActionPrevious}
}

func (n *Navigator) classifyKey(key Key) Action {
	switch key {
	case KeyDown, KeySpace, KeyPageDown:
		return Action{Kind: ActionNext}
	case KeyUp, KeyPageUp:
		return Action{Kind: ActionPrevious}
	case KeyHome:
		return Action{Kind: ActionGoTo, Index: 0}
	case KeyEnd:
		return Action{Kind: ActionGoTo, Index: len(n.sections) - 1}
	}

	digit := key.Digit()
	if digit == 0 || digit > n.timing.MaxDigitKeys || digit > len(n.sections) {
		return Action{}
	}

	return Action{Kind: ActionGoTo, Index: digit - 1}
}

// OnInput classifies event and applies the resulting action. It reports whether a transition
// started.
func (n *Navigator) OnInput(event Event) bool {
	action := n.Classify(event)

	switch action.Kind {
	case ActionNext:
		return n.RequestNext()
	case ActionPrevious:
		return n.RequestPrevious()
	case ActionGoTo:
		return n.RequestGoTo(action.Index)
	case ActionNone:
		n.logger.Debug("Input ignored", slog.Any("event", event))
	}

	return false
}
