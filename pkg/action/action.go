// Package action realizes action descriptors into executable objects.
//
// Each realized action implements one capability: execute, observing side
// effects in the outside world, and report success or failure. Keyboard
// actions share a single virtual keyboard created lazily by the Factory;
// command and script actions are stateless.
package action

import (
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/adewitt/gestic/pkg/device"
	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/keys"
)

// Action is an executable effect performed when a trigger fires.
//
// Execute is not safe for concurrent invocation against the same shared
// device; the dispatcher runs actions one at a time.
type Action interface {
	Execute() error
}

// KeyboardInput emits a key sequence through the shared virtual keyboard:
// modifiers are held, the sequence is tapped in order, then the modifiers
// are released in reverse order.
type KeyboardInput struct {
	device    device.Keyboard
	modifiers []keys.Key
	sequence  []keys.Key
	logger    zerolog.Logger
}

// Device returns the shared keyboard handle this action emits through.
func (a *KeyboardInput) Device() device.Keyboard { return a.device }

// Modifiers returns the modifier keys held around the sequence.
func (a *KeyboardInput) Modifiers() []keys.Key { return a.modifiers }

// Sequence returns the keys tapped in order.
func (a *KeyboardInput) Sequence() []keys.Key { return a.sequence }

func (a *KeyboardInput) Execute() error {
	a.logger.Debug().
		Int("modifiers", len(a.modifiers)).
		Int("sequence", len(a.sequence)).
		Msg("Emitting keyboard input")

	held := make([]int, 0, len(a.modifiers))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := a.device.KeyUp(held[i]); err != nil {
				a.logger.Warn().Err(err).Int("code", held[i]).Msg("Failed to release modifier")
			}
		}
	}

	for _, mod := range a.modifiers {
		code, err := keys.Code(mod)
		if err != nil {
			release()
			return errors.Wrapf(err, errors.ErrActionExecute, "cannot press modifier %q", mod)
		}
		if err := a.device.KeyDown(code); err != nil {
			release()
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to press modifier %q", mod)
		}
		held = append(held, code)
	}

	for _, key := range a.sequence {
		code, err := keys.Code(key)
		if err != nil {
			release()
			return errors.Wrapf(err, errors.ErrActionExecute, "cannot emit key %q", key)
		}
		if err := a.device.KeyPress(code); err != nil {
			release()
			return errors.Wrapf(err, errors.ErrActionExecute, "failed to emit key %q", key)
		}
	}

	release()
	return nil
}

// Command runs an external program. Stateless; does not touch the device.
type Command struct {
	path   string
	args   []string
	logger zerolog.Logger
}

func (a *Command) Path() string   { return a.path }
func (a *Command) Args() []string { return a.args }

func (a *Command) Execute() error {
	a.logger.Debug().Str("path", a.path).Strs("args", a.args).Msg("Executing command")
	if err := exec.Command(a.path, a.args...).Run(); err != nil {
		return errors.Wrapf(err, errors.ErrActionExecute, "command %s failed", a.path)
	}
	return nil
}

// Script runs an inline script through the shell. The code string is handed
// to `sh -c` verbatim. Stateless; does not touch the device.
type Script struct {
	code   string
	logger zerolog.Logger
}

func (a *Script) Code() string { return a.code }

func (a *Script) Execute() error {
	a.logger.Debug().Str("code", a.code).Msg("Executing inline script")
	if err := exec.Command("sh", "-c", a.code).Run(); err != nil {
		return errors.Wrap(err, errors.ErrActionExecute, "inline script failed")
	}
	return nil
}

var (
	_ Action = (*KeyboardInput)(nil)
	_ Action = (*Command)(nil)
	_ Action = (*Script)(nil)
)
