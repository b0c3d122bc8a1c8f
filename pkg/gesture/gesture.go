// Package gesture realizes trigger descriptors into gesture recognizers.
//
// A recognizer holds the descriptor's shape plus the document-wide threshold
// for its geometry kind. Reducing raw touch geometry to Events is the job of
// the platform event source, not this package; a recognizer only decides
// whether a reduced event crosses its threshold.
package gesture

// Kind identifies a gesture geometry class.
type Kind string

const (
	Swipe  Kind = "Swipe"
	Shear  Kind = "Shear"
	Pinch  Kind = "Pinch"
	Rotate Kind = "Rotate"
)

// KnownKind reports whether k is one of the closed set of gesture kinds.
func KnownKind(k Kind) bool {
	switch k {
	case Swipe, Shear, Pinch, Rotate:
		return true
	}
	return false
}

// Descriptor is the configuration-time description of a trigger.
type Descriptor struct {
	Kind      Kind
	Fingers   uint8
	Direction string
}

// Thresholds carries the four document-wide sensitivity magnitudes. Every
// trigger of a given kind realized from one document shares the same value.
type Thresholds struct {
	Swipe    uint32
	Shear    uint32
	Pinch    float64
	Rotation float64
}

// Trigger is a realized gesture recognizer.
type Trigger struct {
	kind      Kind
	fingers   uint8
	direction string
	threshold float64
}

// FactoryFunc is the trigger-realization capability consumed by the
// realization step: descriptor plus document thresholds in, recognizer out.
type FactoryFunc func(Descriptor, Thresholds) Trigger

// Realize builds a recognizer from a descriptor, selecting the threshold
// matching the descriptor's geometry kind. Threshold values are taken as
// given; zero or negative magnitudes are not rejected here.
func Realize(d Descriptor, t Thresholds) Trigger {
	var threshold float64
	switch d.Kind {
	case Swipe:
		threshold = float64(t.Swipe)
	case Shear:
		threshold = float64(t.Shear)
	case Pinch:
		threshold = t.Pinch
	case Rotate:
		threshold = t.Rotation
	}
	return Trigger{
		kind:      d.Kind,
		fingers:   d.Fingers,
		direction: d.Direction,
		threshold: threshold,
	}
}

func (t Trigger) Kind() Kind         { return t.kind }
func (t Trigger) Fingers() uint8     { return t.fingers }
func (t Trigger) Direction() string  { return t.direction }
func (t Trigger) Threshold() float64 { return t.threshold }

// Event is a reduced gesture observation produced by the platform event
// source: one geometry kind, finger count, direction, and the accumulated
// magnitude (distance, scale, or angle).
type Event struct {
	Kind      Kind
	Fingers   uint8
	Direction string
	Magnitude float64
}

// Matches reports whether the event fires this trigger: same shape, and the
// magnitude has crossed the threshold.
func (t Trigger) Matches(ev Event) bool {
	if ev.Kind != t.kind || ev.Fingers != t.fingers || ev.Direction != t.direction {
		return false
	}
	return ev.Magnitude >= t.threshold
}
