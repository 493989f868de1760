package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/schedule"
	"golang.org/x/exp/slices"
)

// timerMsg is delivered back to the update loop when a scheduled callback is due.
type timerMsg struct {
	id uint64
}

type timer struct {
	id    uint64
	delay time.Duration
}

// teaScheduler implements schedule.Scheduler on top of tea.Tick so every callback runs inside
// Update, on the same goroutine as the navigator.
type teaScheduler struct {
	clock   schedule.Clock
	nextID  uint64
	waiting map[uint64]func()
	queued  []timer
}

func newTeaScheduler(clock schedule.Clock) *teaScheduler {
	if clock == nil {
		clock = schedule.SystemClock{}
	}

	return &teaScheduler{clock: clock, waiting: map[uint64]func(){}}
}

func (s *teaScheduler) Now() time.Time {
	return s.clock.Now()
}

func (s *teaScheduler) After(delay time.Duration, fn func()) {
	s.nextID++
	s.waiting[s.nextID] = fn
	s.queued = append(s.queued, timer{id: s.nextID, delay: delay})
}

// commands turns every callback queued since the last call into a tick command.
func (s *teaScheduler) commands() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(s.queued))
	for idx, queued := range s.queued {
		id := queued.id
		if queued.delay <= 0 {
			cmds[idx] = func() tea.Msg { return timerMsg{id: id} }

			continue
		}

		cmds[idx] = tea.Tick(queued.delay, func(_ time.Time) tea.Msg {
			return timerMsg{id: id}
		})
	}
	s.queued = nil

	return tea.Batch(cmds...)
}

// fire runs the callback for id. Unknown ids are ignored.
func (s *teaScheduler) fire(id uint64) {
	fn, found := s.waiting[id]
	if !found {
		return
	}

	delete(s.waiting, id)
	fn()
}

func (s *teaScheduler) pending() []uint64 {
	ids := make([]uint64, 0, len(s.waiting))
	for id := range s.waiting {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
