package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/keys"
)

// rawEntry defers trigger and action decoding so the kind tag can be
// inspected before the payload shape is known.
type rawEntry struct {
	Trigger map[string]interface{} `koanf:"trigger"`
	Action  map[string]interface{} `koanf:"action"`
}

type rawDocument struct {
	SwipeDistance    uint32     `koanf:"swipe_distance"`
	ShearDistance    uint32     `koanf:"shear_distance"`
	PinchDistance    float64    `koanf:"pinch_distance"`
	RotationDistance float64    `koanf:"rotation_distance"`
	GlobalTriggers   []rawEntry `koanf:"global_triggers"`
	X11Triggers      []rawEntry `koanf:"x11_triggers"`
	WaylandTriggers  []rawEntry `koanf:"wayland_triggers"`
}

func decodeDocument(k *koanf.Koanf) (*Document, error) {
	var raw rawDocument
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigDecode, "document does not match schema")
	}

	doc := &Document{
		SwipeDistance:    raw.SwipeDistance,
		ShearDistance:    raw.ShearDistance,
		PinchDistance:    raw.PinchDistance,
		RotationDistance: raw.RotationDistance,
	}

	lists := []struct {
		name    string
		raw     []rawEntry
		decoded *[]Entry
	}{
		{"global_triggers", raw.GlobalTriggers, &doc.GlobalTriggers},
		{"x11_triggers", raw.X11Triggers, &doc.X11Triggers},
		{"wayland_triggers", raw.WaylandTriggers, &doc.WaylandTriggers},
	}
	for _, list := range lists {
		for i, re := range list.raw {
			entry, err := decodeEntry(re)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigDecode,
					"invalid entry %s[%d]", list.name, i)
			}
			*list.decoded = append(*list.decoded, entry)
		}
	}

	return doc, nil
}

func decodeEntry(re rawEntry) (Entry, error) {
	trigger, err := decodeTrigger(re.Trigger)
	if err != nil {
		return Entry{}, err
	}
	action, err := decodeAction(re.Action)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Trigger: trigger, Action: action}, nil
}

func decodeTrigger(m map[string]interface{}) (gesture.Descriptor, error) {
	kind, err := kindOf(m, "trigger")
	if err != nil {
		return gesture.Descriptor{}, err
	}
	if !gesture.KnownKind(gesture.Kind(kind)) {
		return gesture.Descriptor{}, errors.Newf(errors.ErrConfigDecode,
			"unknown trigger kind %q", kind)
	}

	var payload struct {
		Fingers   uint8  `mapstructure:"fingers"`
		Direction string `mapstructure:"direction"`
	}
	if err := decodePayload(m, &payload); err != nil {
		return gesture.Descriptor{}, errors.Wrapf(err, errors.ErrConfigDecode,
			"malformed %s trigger", kind)
	}
	return gesture.Descriptor{
		Kind:      gesture.Kind(kind),
		Fingers:   payload.Fingers,
		Direction: payload.Direction,
	}, nil
}

func decodeAction(m map[string]interface{}) (ActionDescriptor, error) {
	kind, err := kindOf(m, "action")
	if err != nil {
		return ActionDescriptor{}, err
	}

	switch ActionKind(kind) {
	case ActionKeyboardInput:
		var payload struct {
			Modifiers []keys.Key `mapstructure:"modifiers"`
			Sequence  []keys.Key `mapstructure:"sequence"`
		}
		if err := decodePayload(m, &payload); err != nil {
			return ActionDescriptor{}, errors.Wrap(err, errors.ErrConfigDecode,
				"malformed KeyboardInput action")
		}
		return ActionDescriptor{
			Kind:      ActionKeyboardInput,
			Modifiers: payload.Modifiers,
			Sequence:  payload.Sequence,
		}, nil

	case ActionExecuteCommand:
		var payload struct {
			Path string   `mapstructure:"path"`
			Args []string `mapstructure:"args"`
		}
		if err := decodePayload(m, &payload); err != nil {
			return ActionDescriptor{}, errors.Wrap(err, errors.ErrConfigDecode,
				"malformed ExecuteCommand action")
		}
		return ActionDescriptor{
			Kind: ActionExecuteCommand,
			Path: payload.Path,
			Args: payload.Args,
		}, nil

	case ActionInlineScript:
		var payload struct {
			Code string `mapstructure:"code"`
		}
		if err := decodePayload(m, &payload); err != nil {
			return ActionDescriptor{}, errors.Wrap(err, errors.ErrConfigDecode,
				"malformed InlineScript action")
		}
		return ActionDescriptor{Kind: ActionInlineScript, Code: payload.Code}, nil
	}

	return ActionDescriptor{}, errors.Newf(errors.ErrConfigDecode,
		"unknown action kind %q", kind)
}

// kindOf extracts the variant tag from a descriptor table.
func kindOf(m map[string]interface{}, what string) (string, error) {
	if m == nil {
		return "", errors.Newf(errors.ErrConfigDecode, "entry is missing its %s", what)
	}
	v, ok := m["kind"]
	if !ok {
		return "", errors.Newf(errors.ErrConfigDecode, "%s has no kind tag", what)
	}
	kind, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrConfigDecode, "%s kind tag is not a string", what)
	}
	return kind, nil
}

// decodePayload maps a descriptor table onto a variant payload struct.
// Fields beyond the payload (including the kind tag) are ignored.
func decodePayload(m map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}
