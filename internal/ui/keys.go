package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/ui/input"
)

// keyFor maps a terminal key press onto the navigator's key codes.
func keyFor(msg tea.KeyMsg) nav.Key {
	switch {
	case key.Matches(msg, input.Default.Next):
		return nav.KeyDown
	case key.Matches(msg, input.Default.Previous):
		return nav.KeyUp
	case key.Matches(msg, input.Default.First):
		return nav.KeyHome
	case key.Matches(msg, input.Default.Last):
		return nav.KeyEnd
	case key.Matches(msg, input.Default.Jump):
		if runes := msg.Runes; len(runes) == 1 {
			return nav.DigitKey(int(runes[0] - '0'))
		}
	}

	return nav.KeyNone
}

// jumpKey reports keys that address a section directly rather than moving by one.
func jumpKey(navKey nav.Key) bool {
	return navKey == nav.KeyHome || navKey == nav.KeyEnd || navKey.Digit() > 0
}
