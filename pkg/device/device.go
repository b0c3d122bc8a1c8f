// Package device provides the virtual keyboard used to emit synthetic key
// events.
//
// One Keyboard is shared by reference among every keyboard action realized
// from a single document. The device is not safe for concurrent use; the
// dispatcher invokes actions one at a time, and this package relies on that
// contract rather than locking.
package device

import (
	"github.com/bendahl/uinput"

	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/logging"
)

const uinputPath = "/dev/uinput"

// Keyboard emits synthetic key events identified by Linux input event codes.
type Keyboard interface {
	// KeyDown presses and holds a key.
	KeyDown(code int) error
	// KeyUp releases a held key.
	KeyUp(code int) error
	// KeyPress taps a key (down then up).
	KeyPress(code int) error
	// Close destroys the virtual device.
	Close() error
}

// Opener constructs a Keyboard. The realization step calls it at most once,
// lazily, on the first keyboard action it encounters.
type Opener func() (Keyboard, error)

// Open creates the uinput-backed virtual keyboard.
func Open() (Keyboard, error) {
	logger := logging.GetLogger("device")
	kb, err := uinput.CreateKeyboard(uinputPath, []byte("gestic virtual keyboard"))
	if err != nil {
		logger.Error().Err(err).Str("path", uinputPath).Msg("Failed to create virtual keyboard")
		return nil, errors.Wrap(err, errors.ErrDeviceInit, "failed to create virtual keyboard")
	}
	logger.Debug().Str("path", uinputPath).Msg("Virtual keyboard created")
	return uinputKeyboard{kb: kb}, nil
}

type uinputKeyboard struct {
	kb uinput.Keyboard
}

func (d uinputKeyboard) KeyDown(code int) error  { return d.kb.KeyDown(code) }
func (d uinputKeyboard) KeyUp(code int) error    { return d.kb.KeyUp(code) }
func (d uinputKeyboard) KeyPress(code int) error { return d.kb.KeyPress(code) }
func (d uinputKeyboard) Close() error            { return d.kb.Close() }
