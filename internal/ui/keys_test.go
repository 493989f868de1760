package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want nav.Key
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, nav.KeyDown},
		{"j", runes("j"), nav.KeyDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, nav.KeyDown},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, nav.KeyDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, nav.KeyUp},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, nav.KeyUp},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, nav.KeyHome},
		{"G", runes("G"), nav.KeyEnd},
		{"digit", runes("4"), nav.DigitKey(4)},
		{"unbound", runes("x"), nav.KeyNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, keyFor(tc.msg))
		})
	}
}
