package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIntersecting(t *testing.T) {
	spans := []span{{0, 20}, {20, 40}, {40, 100}}

	tests := []struct {
		name   string
		top    int
		height int
		want   int
	}{
		{"first fully visible", 0, 20, 0},
		{"second mostly visible", 12, 20, 1},
		{"even split goes to earlier", 10, 20, 0},
		{"tall section fills viewport", 50, 20, 2},
		{"past the end", 200, 20, -1},
		{"empty viewport", 0, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, intersecting(spans, tc.top, tc.height, visibilityThreshold))
		})
	}
}

func TestIntersectingThreshold(t *testing.T) {
	spans := []span{{0, 10}, {10, 20}}
	// Only 3 of 10 lines of the second span are visible.
	require.Equal(t, 0, intersecting(spans, 0, 13, visibilityThreshold))
	require.Equal(t, -1, intersecting(spans, 8, 5, 0.9))
}

func TestTeaScheduler(t *testing.T) {
	sched := newTeaScheduler(nil)
	require.Nil(t, sched.commands())

	fired := 0
	sched.After(0, func() { fired++ })
	sched.After(time.Millisecond, func() { fired += 10 })
	require.NotNil(t, sched.commands())
	require.Nil(t, sched.commands())

	ids := sched.pending()
	require.Len(t, ids, 2)

	sched.fire(ids[1])
	sched.fire(ids[1])
	require.Equal(t, 10, fired)

	sched.fire(ids[0])
	require.Equal(t, 11, fired)
	require.Empty(t, sched.pending())
}
