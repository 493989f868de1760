package ui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/effect"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/leighmacdonald/folio/internal/schedule"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	conf, err := config.NewLoader(nil, t.TempDir()).Read()
	require.NoError(t, err)

	return conf
}

func newTestModel(t *testing.T, conf config.Config) (*rootModel, *schedule.Virtual) {
	t.Helper()

	clock := schedule.NewVirtual()
	model, err := newRootModel(conf, profile.Default(), clock, BuildInfo{Version: "test"})
	require.NoError(t, err)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return model, clock
}

// fireAll delivers every pending timer, including the ones scheduled by earlier timers.
func fireAll(t *testing.T, model *rootModel) {
	t.Helper()

	for range 1000 {
		pending := model.sched.pending()
		if len(pending) == 0 {
			return
		}

		for _, id := range pending {
			model.Update(timerMsg{id: id})
		}
	}

	t.Fatal("timers did not settle")
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestStartSectionOutOfRange(t *testing.T) {
	conf := testConfig(t)
	conf.StartSection = 9

	_, err := newRootModel(conf, profile.Default(), schedule.NewVirtual(), BuildInfo{})
	require.ErrorIs(t, err, nav.ErrConfig)
}

func TestKeyNavigation(t *testing.T) {
	model, clock := newTestModel(t, testConfig(t))
	fireAll(t, model)

	model.Update(runes("j"))
	require.Equal(t, 1, model.navigator.Current())
	require.True(t, model.sections[1].active)
	for _, block := range model.sections[1].blocks {
		require.False(t, block.shown())
	}

	// Still inside the transition.
	model.Update(runes("j"))
	require.Equal(t, 1, model.navigator.Current())

	fireAll(t, model)
	for _, block := range model.sections[1].blocks {
		require.True(t, block.shown())
	}

	clock.Advance(time.Second)
	model.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.Equal(t, 2, model.navigator.Current())

	fireAll(t, model)
	clock.Advance(time.Second)
	model.Update(runes("k"))
	require.Equal(t, 1, model.navigator.Current())
}

func TestDigitJump(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))

	model.Update(runes("5"))
	require.Equal(t, 4, model.navigator.Current())
	require.InDelta(t, 1.0, model.indicator.indicator.Fill, 0.0001)
	require.Equal(t, []bool{false, false, false, false, true}, model.indicator.indicator.Dots)
}

func TestWheel(t *testing.T) {
	model, clock := newTestModel(t, testConfig(t))

	for range 5 {
		model.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	require.Equal(t, 1, model.navigator.Current())

	fireAll(t, model)
	clock.Advance(time.Second)
	model.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	require.Equal(t, 0, model.navigator.Current())
}

func TestDragSwipe(t *testing.T) {
	model, clock := newTestModel(t, testConfig(t))

	model.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, X: 10, Y: 30})
	clock.Advance(100 * time.Millisecond)
	model.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease, X: 10, Y: 20})
	require.Equal(t, 1, model.navigator.Current())

	fireAll(t, model)
	clock.Advance(time.Second)

	// Too slow to count as a swipe.
	model.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, X: 10, Y: 30})
	clock.Advance(time.Second)
	model.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease, X: 10, Y: 10})
	require.Equal(t, 1, model.navigator.Current())
}

func TestScrollModeIsPassive(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))
	fireAll(t, model)

	model.Update(runes("v"))
	require.Equal(t, config.ModeScroll, model.mode)
	require.Len(t, model.spans, len(model.sections))

	model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 1, model.navigator.Current())
	require.False(t, model.navigator.Transitioning())
	require.True(t, model.sections[1].active)
	// No reveal was staged for the section scrolled into view.
	for _, block := range model.sections[1].blocks {
		require.False(t, block.visible)
	}
}

func TestSnapAfterScrollShowsSection(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))
	fireAll(t, model)

	model.Update(runes("v"))
	model.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 1, model.navigator.Current())

	model.Update(runes("v"))
	require.Equal(t, config.ModeSnap, model.mode)
	for _, block := range model.sections[1].blocks {
		require.True(t, block.shown())
	}
	require.Contains(t, model.View(), "About Me")
}

func TestScrollModeJump(t *testing.T) {
	conf := testConfig(t)
	conf.Mode = config.ModeScroll
	model, _ := newTestModel(t, conf)

	model.Update(runes("3"))
	require.Equal(t, 2, model.navigator.Current())
	require.Equal(t, model.spans[2].start, model.viewport.YOffset)
}

func TestCountersStartOnFirstVisit(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))

	var counters []*effect.Counter
	for _, block := range model.sections[1].blocks {
		if counter, ok := block.effect.(*effect.Counter); ok {
			counters = append(counters, counter)
		}
	}
	require.NotEmpty(t, counters)
	for _, counter := range counters {
		require.Equal(t, effect.Pending, counter.State())
	}

	model.Update(runes("2"))
	fireAll(t, model)
	for _, counter := range counters {
		require.Equal(t, effect.Done, counter.State())
		require.Equal(t, counter.Target, counter.Value())
	}
}

func TestHelpToggle(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))

	model.Update(runes("?"))
	require.True(t, model.showHelp)
	model.Update(runes("j"))
	require.Equal(t, 0, model.navigator.Current())
	require.Contains(t, model.View(), "Next section")

	model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, model.showHelp)
}

func TestConfigReload(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))

	conf := testConfig(t)
	conf.Mode = config.ModeScroll
	conf.MinIntervalMs = 10
	model.Update(conf)

	require.Equal(t, config.ModeScroll, model.mode)
	require.Equal(t, 10*time.Millisecond, model.navigator.Timing().MinInterval)
	require.NotNil(t, model.statusModel.notice)
	require.True(t, model.statusModel.notice.Visible())

	fireAll(t, model)
	require.False(t, model.statusModel.notice.Visible())
}

func TestView(t *testing.T) {
	model, _ := newTestModel(t, testConfig(t))
	fireAll(t, model)

	view := model.View()
	require.Contains(t, view, "HOME")
	require.Contains(t, view, "Alex Nguyen")
	require.Contains(t, view, "1/5 Home")
	require.LessOrEqual(t, len(strings.Split(view, "\n")), 40)
}

func TestViewBeforeResize(t *testing.T) {
	model, err := newRootModel(testConfig(t), profile.Default(), schedule.NewVirtual(), BuildInfo{})
	require.NoError(t, err)
	require.Empty(t, model.View())

	model.Update(runes("j"))
	require.Equal(t, 0, model.navigator.Current())
}
