package action

import (
	"github.com/rs/zerolog"

	"github.com/adewitt/gestic/pkg/config"
	"github.com/adewitt/gestic/pkg/device"
	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/keys"
	"github.com/adewitt/gestic/pkg/logging"
)

// Factory realizes action descriptors. It owns the shared virtual keyboard:
// the device opens lazily on the first KeyboardInput descriptor and every
// keyboard action made by the same Factory holds the identical handle. Make
// a fresh Factory per realization pass.
type Factory struct {
	open     device.Opener
	keyboard device.Keyboard
	logger   zerolog.Logger
}

// NewFactory creates a factory that opens the shared device with open.
func NewFactory(open device.Opener) *Factory {
	return &Factory{
		open:   open,
		logger: logging.GetLogger("action"),
	}
}

// Make realizes one descriptor. Descriptor fields are carried into the
// realized action verbatim; the only failure is the shared device's own
// initialization, which is fatal to the realization pass.
func (f *Factory) Make(d config.ActionDescriptor) (Action, error) {
	switch d.Kind {
	case config.ActionKeyboardInput:
		kb, err := f.sharedKeyboard()
		if err != nil {
			return nil, err
		}
		return &KeyboardInput{
			device:    kb,
			modifiers: append([]keys.Key(nil), d.Modifiers...),
			sequence:  append([]keys.Key(nil), d.Sequence...),
			logger:    f.logger,
		}, nil

	case config.ActionExecuteCommand:
		return &Command{
			path:   d.Path,
			args:   append([]string(nil), d.Args...),
			logger: f.logger,
		}, nil

	case config.ActionInlineScript:
		return &Script{code: d.Code, logger: f.logger}, nil
	}

	// Unreachable for schema-valid documents.
	return nil, errors.Newf(errors.ErrInternal, "unhandled action kind %q", d.Kind)
}

// sharedKeyboard opens the device on first need. Construction is
// single-threaded, so a plain nil check suffices.
func (f *Factory) sharedKeyboard() (device.Keyboard, error) {
	if f.keyboard != nil {
		return f.keyboard, nil
	}
	kb, err := f.open()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDeviceInit, "keyboard actions are unavailable")
	}
	f.logger.Debug().Msg("Shared input device opened")
	f.keyboard = kb
	return kb, nil
}
