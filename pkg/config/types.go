package config

import (
	"github.com/adewitt/gestic/pkg/errors"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/keys"
)

// Document is a fully decoded configuration document.
//
// Thresholds are informational magnitudes shared by every trigger of one
// geometry kind; they are not validated for sign or range. A Document is
// built once by Load and consumed exactly once by the realization step.
type Document struct {
	SwipeDistance    uint32
	ShearDistance    uint32
	PinchDistance    float64
	RotationDistance float64

	GlobalTriggers  []Entry
	X11Triggers     []Entry
	WaylandTriggers []Entry

	consumed bool
}

// Thresholds returns the four document-wide threshold values.
func (d *Document) Thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		Swipe:    d.SwipeDistance,
		Shear:    d.ShearDistance,
		Pinch:    d.PinchDistance,
		Rotation: d.RotationDistance,
	}
}

// Consume marks the document consumed. The document moves Loaded →
// Realized(consumed) on first call; there is no transition back, so a second
// call fails with DOCUMENT_CONSUMED.
func (d *Document) Consume() error {
	if d.consumed {
		return errors.New(errors.ErrDocConsumed, "document already realized; load a fresh one")
	}
	d.consumed = true
	return nil
}

// Entry pairs a trigger descriptor with the action it fires. Immutable once
// parsed.
type Entry struct {
	Trigger gesture.Descriptor
	Action  ActionDescriptor
}

// ActionKind discriminates the closed set of action variants.
type ActionKind string

const (
	ActionKeyboardInput  ActionKind = "KeyboardInput"
	ActionExecuteCommand ActionKind = "ExecuteCommand"
	ActionInlineScript   ActionKind = "InlineScript"
)

// ActionDescriptor is the configuration-time description of an action. Only
// the fields of the variant named by Kind are populated.
type ActionDescriptor struct {
	Kind ActionKind

	// KeyboardInput
	Modifiers []keys.Key
	Sequence  []keys.Key

	// ExecuteCommand
	Path string
	Args []string

	// InlineScript
	Code string
}

// AppliedDefault records that an optional field was absent and received its
// documented default. Advisory only; it never affects the decoded value.
type AppliedDefault struct {
	Field string
}
