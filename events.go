package sixaxis

// EventType identifies the kind of raw input event delivered to a
// controller. Values match the Linux evdev event types.
type EventType uint16

const (
	// EventTypeKey is a button press or release (evdev EV_KEY).
	EventTypeKey EventType = 0x01
	// EventTypeAbsolute is an absolute axis sample (evdev EV_ABS).
	EventTypeAbsolute EventType = 0x03
)

// Event is a single decoded input event. Events are normally produced
// by the background device reader, but HandleEvent accepts them from
// any source.
type Event struct {
	Type  EventType
	Code  uint16
	Value int32
}

// AxisSlot addresses one of the four analogue axes on the controller.
type AxisSlot int

const (
	AxisLeftX AxisSlot = iota
	AxisLeftY
	AxisRightX
	AxisRightY

	axisCount = 4
)

// axisSlots maps the raw evdev ABS code reported by the controller to
// an axis slot. The right stick reports on codes 3 and 4, not 2 and 3.
// Any other ABS code (pressure sensors, tilt) is ignored.
var axisSlots = map[uint16]AxisSlot{
	0: AxisLeftX,
	1: AxisLeftY,
	3: AxisRightX,
	4: AxisRightY,
}

// axisRawMax is the largest amplitude the hardware reports on an
// analogue axis.
const axisRawMax = 255.0

func (s AxisSlot) String() string {
	switch s {
	case AxisLeftX:
		return "left_x"
	case AxisLeftY:
		return "left_y"
	case AxisRightX:
		return "right_x"
	case AxisRightY:
		return "right_y"
	default:
		return "unknown"
	}
}
