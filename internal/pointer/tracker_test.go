package pointer

import (
	"testing"

	"github.com/phinze/controlpanel/internal/panel"
	"github.com/stretchr/testify/assert"
)

func TestTrackerSequence(t *testing.T) {
	var tr Tracker

	steps := []struct {
		name   string
		sample Sample
		want   []panel.PointerEvent
	}{
		{"idle", Sample{Focused: true, X: 1, Y: 1}, nil},
		{"press", Sample{Pressed: true, Focused: true, X: 10, Y: 20}, []panel.PointerEvent{{Action: panel.ActionDown, X: 10, Y: 20}}},
		{"hold still", Sample{Pressed: true, Focused: true, X: 10, Y: 20}, nil},
		{"drag", Sample{Pressed: true, Focused: true, X: 15, Y: 20}, []panel.PointerEvent{{Action: panel.ActionMove, X: 15, Y: 20}}},
		{"release", Sample{Focused: true, X: 16, Y: 21}, []panel.PointerEvent{{Action: panel.ActionUp, X: 16, Y: 21}}},
		{"hover", Sample{Focused: true, X: 30, Y: 30}, nil},
	}

	for _, st := range steps {
		got := tr.Next(st.sample)
		assert.Equal(t, st.want, got, st.name)
	}
	assert.False(t, tr.Pressed())
}

func TestTrackerFocusLossCancels(t *testing.T) {
	var tr Tracker

	tr.Next(Sample{Pressed: true, Focused: true, X: 5, Y: 5})
	assert.True(t, tr.Pressed())

	got := tr.Next(Sample{Pressed: true, Focused: false, X: 5, Y: 5})
	assert.Equal(t, []panel.PointerEvent{{Action: panel.ActionCancel, X: 5, Y: 5}}, got)
	assert.False(t, tr.Pressed())

	// Still unfocused: nothing more.
	assert.Nil(t, tr.Next(Sample{Pressed: true, Focused: false}))

	// Refocused with the button still down starts a new press.
	got = tr.Next(Sample{Pressed: true, Focused: true, X: 6, Y: 6})
	assert.Equal(t, []panel.PointerEvent{{Action: panel.ActionDown, X: 6, Y: 6}}, got)
}
