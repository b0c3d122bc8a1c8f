// Package realize turns a loaded configuration document into the trigger and
// action sequences the dispatcher runs.
package realize

import (
	"github.com/adewitt/gestic/pkg/action"
	"github.com/adewitt/gestic/pkg/config"
	"github.com/adewitt/gestic/pkg/device"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/logging"
)

// Ruleset holds the realized trigger/action pairs. The two slices are always
// the same length and index-aligned: Triggers[i] fires Actions[i].
type Ruleset struct {
	Triggers []gesture.Trigger
	Actions  []action.Action
}

// Len returns the number of trigger/action pairs.
func (r *Ruleset) Len() int { return len(r.Triggers) }

// Options overrides the collaborators the realization step consumes. The
// zero value uses the real uinput device and the gesture trigger factory.
type Options struct {
	// OpenDevice constructs the shared input device when the first
	// keyboard action is realized.
	OpenDevice device.Opener

	// TriggerFactory realizes trigger descriptors.
	TriggerFactory gesture.FactoryFunc
}

// Realize consumes doc and produces the ruleset for the given platform: the
// global trigger list followed by the wayland list or the x11 list, never
// both, order preserved. Per entry the action is realized first, then the
// trigger, each exactly once.
//
// Realize is a one-shot build step. The document is consumed; realizing the
// same document twice fails with DOCUMENT_CONSUMED. The only other failure
// is shared device initialization, which is fatal.
func Realize(doc *config.Document, isWayland bool, opts Options) (*Ruleset, error) {
	logger := logging.GetLogger("realize")

	if err := doc.Consume(); err != nil {
		return nil, err
	}

	if opts.OpenDevice == nil {
		opts.OpenDevice = device.Open
	}
	if opts.TriggerFactory == nil {
		opts.TriggerFactory = gesture.Realize
	}

	platform := doc.X11Triggers
	if isWayland {
		platform = doc.WaylandTriggers
	}
	entries := make([]config.Entry, 0, len(doc.GlobalTriggers)+len(platform))
	entries = append(entries, doc.GlobalTriggers...)
	entries = append(entries, platform...)

	thresholds := doc.Thresholds()
	factory := action.NewFactory(opts.OpenDevice)

	rs := &Ruleset{
		Triggers: make([]gesture.Trigger, 0, len(entries)),
		Actions:  make([]action.Action, 0, len(entries)),
	}
	for _, entry := range entries {
		act, err := factory.Make(entry.Action)
		if err != nil {
			return nil, err
		}
		rs.Actions = append(rs.Actions, act)
		rs.Triggers = append(rs.Triggers, opts.TriggerFactory(entry.Trigger, thresholds))
	}

	logger.Debug().
		Bool("wayland", isWayland).
		Int("pairs", rs.Len()).
		Msg("Configuration realized")
	return rs, nil
}
