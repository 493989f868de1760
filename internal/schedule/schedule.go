// Package schedule provides the timer and clock abstraction used by the navigator and the
// visual effects. All callbacks are expected to run on a single goroutine.
package schedule

import (
	"sort"
	"time"
)

// Scheduler runs fn once after delay has elapsed. Callbacks are fire-and-forget.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type pending struct {
	due time.Time
	seq uint64
	fn  func()
}

// Virtual is a deterministic Scheduler and Clock. Time only moves when Advance is called.
type Virtual struct {
	now   time.Time
	seq   uint64
	queue []pending
}

func NewVirtual() *Virtual {
	return &Virtual{now: time.Unix(0, 0)}
}

func (v *Virtual) Now() time.Time {
	return v.now
}

func (v *Virtual) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}

	v.seq++
	v.queue = append(v.queue, pending{due: v.now.Add(delay), seq: v.seq, fn: fn})
}

// Pending returns the number of callbacks that have not fired yet.
func (v *Virtual) Pending() int {
	return len(v.queue)
}

// Advance moves the clock forward by d, running every callback that comes due in order of
// due time. Callbacks scheduled from within a callback are run too when they fall inside the
// window.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now.Add(d)

	for {
		idx := v.next()
		if idx < 0 || v.queue[idx].due.After(target) {
			break
		}

		item := v.queue[idx]
		v.queue = append(v.queue[:idx], v.queue[idx+1:]...)
		if item.due.After(v.now) {
			v.now = item.due
		}
		item.fn()
	}

	v.now = target
}

// Flush runs callbacks until nothing is left, moving the clock to each due time.
func (v *Virtual) Flush() {
	for len(v.queue) > 0 {
		idx := v.next()
		v.Advance(v.queue[idx].due.Sub(v.now))
	}
}

func (v *Virtual) next() int {
	if len(v.queue) == 0 {
		return -1
	}

	sort.SliceStable(v.queue, func(i, j int) bool {
		if v.queue[i].due.Equal(v.queue[j].due) {
			return v.queue[i].seq < v.queue[j].seq
		}

		return v.queue[i].due.Before(v.queue[j].due)
	})

	return 0
}
