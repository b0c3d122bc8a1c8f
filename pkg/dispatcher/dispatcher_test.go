package dispatcher_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewitt/gestic/pkg/action"
	"github.com/adewitt/gestic/pkg/dispatcher"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/realize"
)

// recordedAction counts executions into a shared journal.
type recordedAction struct {
	name    string
	journal *[]string
	fail    bool
}

func (a *recordedAction) Execute() error {
	*a.journal = append(*a.journal, a.name)
	if a.fail {
		return fmt.Errorf("action %s failed", a.name)
	}
	return nil
}

func trigger(kind gesture.Kind, fingers uint8, direction string, threshold float64) gesture.Trigger {
	th := gesture.Thresholds{}
	switch kind {
	case gesture.Swipe:
		th.Swipe = uint32(threshold)
	case gesture.Shear:
		th.Shear = uint32(threshold)
	case gesture.Pinch:
		th.Pinch = threshold
	case gesture.Rotate:
		th.Rotation = threshold
	}
	return gesture.Realize(gesture.Descriptor{Kind: kind, Fingers: fingers, Direction: direction}, th)
}

func TestDispatchRunsPairedAction(t *testing.T) {
	var journal []string
	rs := &realize.Ruleset{
		Triggers: []gesture.Trigger{
			trigger(gesture.Swipe, 3, "up", 100),
			trigger(gesture.Pinch, 2, "in", 1.4),
		},
		Actions: []action.Action{
			&recordedAction{name: "swipe-up", journal: &journal},
			&recordedAction{name: "pinch-in", journal: &journal},
		},
	}
	d := dispatcher.New(rs)

	require.NoError(t, d.Dispatch(gesture.Event{Kind: gesture.Pinch, Fingers: 2, Direction: "in", Magnitude: 1.6}))
	assert.Equal(t, []string{"pinch-in"}, journal)
}

func TestDispatchFirstMatchWins(t *testing.T) {
	var journal []string
	rs := &realize.Ruleset{
		Triggers: []gesture.Trigger{
			trigger(gesture.Swipe, 3, "up", 100),
			trigger(gesture.Swipe, 3, "up", 50),
		},
		Actions: []action.Action{
			&recordedAction{name: "first", journal: &journal},
			&recordedAction{name: "second", journal: &journal},
		},
	}
	d := dispatcher.New(rs)

	require.NoError(t, d.Dispatch(gesture.Event{Kind: gesture.Swipe, Fingers: 3, Direction: "up", Magnitude: 120}))
	assert.Equal(t, []string{"first"}, journal, "configuration order decides ties")
}

func TestDispatchNoMatchIsNoop(t *testing.T) {
	var journal []string
	rs := &realize.Ruleset{
		Triggers: []gesture.Trigger{trigger(gesture.Swipe, 3, "up", 100)},
		Actions:  []action.Action{&recordedAction{name: "swipe-up", journal: &journal}},
	}
	d := dispatcher.New(rs)

	require.NoError(t, d.Dispatch(gesture.Event{Kind: gesture.Rotate, Fingers: 2, Direction: "clockwise", Magnitude: 90}))
	assert.Empty(t, journal)
}

func TestDispatchPropagatesActionFailure(t *testing.T) {
	var journal []string
	rs := &realize.Ruleset{
		Triggers: []gesture.Trigger{trigger(gesture.Swipe, 3, "up", 100)},
		Actions:  []action.Action{&recordedAction{name: "boom", journal: &journal, fail: true}},
	}
	d := dispatcher.New(rs)

	err := d.Dispatch(gesture.Event{Kind: gesture.Swipe, Fingers: 3, Direction: "up", Magnitude: 120})
	require.Error(t, err)
	assert.Equal(t, []string{"boom"}, journal)
}

func TestRunDrainsChannel(t *testing.T) {
	var journal []string
	rs := &realize.Ruleset{
		Triggers: []gesture.Trigger{trigger(gesture.Swipe, 3, "up", 100)},
		Actions:  []action.Action{&recordedAction{name: "swipe-up", journal: &journal}},
	}
	d := dispatcher.New(rs)

	events := make(chan gesture.Event, 3)
	events <- gesture.Event{Kind: gesture.Swipe, Fingers: 3, Direction: "up", Magnitude: 120}
	events <- gesture.Event{Kind: gesture.Swipe, Fingers: 3, Direction: "up", Magnitude: 10}
	events <- gesture.Event{Kind: gesture.Swipe, Fingers: 3, Direction: "up", Magnitude: 150}
	close(events)

	d.Run(events)
	assert.Equal(t, []string{"swipe-up", "swipe-up"}, journal)
}
