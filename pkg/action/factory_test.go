package action_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewitt/gestic/pkg/action"
	"github.com/adewitt/gestic/pkg/config"
	"github.com/adewitt/gestic/pkg/device"
	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/keys"
)

// countingOpener fails after recording how often it ran, or hands out a
// fresh fake keyboard per call.
type countingOpener struct {
	opens int
	fail  bool
}

func (c *countingOpener) open() (device.Keyboard, error) {
	c.opens++
	if c.fail {
		return nil, fmt.Errorf("uinput unavailable")
	}
	return &fakeKeyboard{}, nil
}

func keyboardDescriptor(seq ...keys.Key) config.ActionDescriptor {
	return config.ActionDescriptor{Kind: config.ActionKeyboardInput, Sequence: seq}
}

func TestFactorySharesOneDevice(t *testing.T) {
	opener := &countingOpener{}
	factory := action.NewFactory(opener.open)

	first, err := factory.Make(keyboardDescriptor("a"))
	require.NoError(t, err)
	second, err := factory.Make(keyboardDescriptor("b"))
	require.NoError(t, err)

	assert.Equal(t, 1, opener.opens, "device opens at most once per factory")
	assert.Same(t,
		first.(*action.KeyboardInput).Device(),
		second.(*action.KeyboardInput).Device(),
		"keyboard actions from one factory share the identical device")
}

func TestFactoryNoDeviceWithoutKeyboardActions(t *testing.T) {
	opener := &countingOpener{}
	factory := action.NewFactory(opener.open)

	_, err := factory.Make(config.ActionDescriptor{
		Kind: config.ActionExecuteCommand,
		Path: "/bin/echo",
		Args: []string{"hi"},
	})
	require.NoError(t, err)
	_, err = factory.Make(config.ActionDescriptor{
		Kind: config.ActionInlineScript,
		Code: "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, opener.opens, "command and script actions never touch the device")
}

func TestFactoryDeviceInitFailureIsFatal(t *testing.T) {
	opener := &countingOpener{fail: true}
	factory := action.NewFactory(opener.open)

	_, err := factory.Make(keyboardDescriptor("a"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeviceInit))
}

func TestFactoryCopiesDescriptorFields(t *testing.T) {
	factory := action.NewFactory((&countingOpener{}).open)

	desc := config.ActionDescriptor{
		Kind:      config.ActionKeyboardInput,
		Modifiers: []keys.Key{"leftmeta"},
		Sequence:  []keys.Key{"l"},
	}
	made, err := factory.Make(desc)
	require.NoError(t, err)

	kb := made.(*action.KeyboardInput)
	assert.Equal(t, []keys.Key{"leftmeta"}, kb.Modifiers())
	assert.Equal(t, []keys.Key{"l"}, kb.Sequence())

	// The realized action holds its own copy.
	desc.Sequence[0] = "q"
	assert.Equal(t, []keys.Key{"l"}, kb.Sequence())
}

func TestFactoryCommandVerbatim(t *testing.T) {
	factory := action.NewFactory((&countingOpener{}).open)

	made, err := factory.Make(config.ActionDescriptor{
		Kind: config.ActionExecuteCommand,
		Path: "/bin/echo",
		Args: []string{"hi"},
	})
	require.NoError(t, err)

	cmd := made.(*action.Command)
	assert.Equal(t, "/bin/echo", cmd.Path())
	assert.Equal(t, []string{"hi"}, cmd.Args())
}

func TestFactoryScriptVerbatim(t *testing.T) {
	factory := action.NewFactory((&countingOpener{}).open)

	made, err := factory.Make(config.ActionDescriptor{
		Kind: config.ActionInlineScript,
		Code: "xdotool key super",
	})
	require.NoError(t, err)
	assert.Equal(t, "xdotool key super", made.(*action.Script).Code())
}
