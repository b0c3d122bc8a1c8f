// Package dispatcher runs the realized ruleset: gesture events in, action
// executions out.
//
// Actions are invoked strictly one at a time. The realized keyboard actions
// share one virtual device and rely on this serial-invocation contract; the
// dispatcher is where it is enforced.
package dispatcher

import (
	"github.com/rs/zerolog"

	"github.com/adewitt/gestic/pkg/action"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/logging"
	"github.com/adewitt/gestic/pkg/realize"
)

// Dispatcher matches incoming gesture events against the realized triggers
// and executes the paired action of the first match.
type Dispatcher struct {
	triggers []gesture.Trigger
	actions  []action.Action
	logger   zerolog.Logger
}

// New builds a dispatcher over an index-aligned ruleset.
func New(rs *realize.Ruleset) *Dispatcher {
	return &Dispatcher{
		triggers: rs.Triggers,
		actions:  rs.Actions,
		logger:   logging.GetLogger("dispatcher"),
	}
}

// Dispatch routes one event. Triggers are consulted in configuration order;
// the first match wins and its action runs to completion before Dispatch
// returns. An event matching nothing is not an error.
func (d *Dispatcher) Dispatch(ev gesture.Event) error {
	for i, trigger := range d.triggers {
		if !trigger.Matches(ev) {
			continue
		}
		d.logger.Info().
			Str("kind", string(ev.Kind)).
			Uint8("fingers", ev.Fingers).
			Str("direction", ev.Direction).
			Int("rule", i).
			Msg("Trigger fired")
		if err := d.actions[i].Execute(); err != nil {
			d.logger.Error().Err(err).Int("rule", i).Msg("Action failed")
			return err
		}
		return nil
	}
	d.logger.Trace().Str("kind", string(ev.Kind)).Msg("Event matched no trigger")
	return nil
}

// Run dispatches events until the channel closes. Action failures are
// logged by Dispatch and do not stop the loop.
func (d *Dispatcher) Run(events <-chan gesture.Event) {
	for ev := range events {
		_ = d.Dispatch(ev)
	}
}
