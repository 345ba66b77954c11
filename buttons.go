package sixaxis

// Button identifies one of the seventeen buttons on the controller.
// The value doubles as the bit index in the press bitfield, so
// Button.Mask() can be combined with the field returned by
// DrainButtonPresses.
type Button int

const (
	ButtonSelect Button = iota
	ButtonLeftStick
	ButtonRightStick
	ButtonStart
	ButtonDUp
	ButtonDRight
	ButtonDDown
	ButtonDLeft
	ButtonL2
	ButtonR2
	ButtonL1
	ButtonR1
	ButtonTriangle
	ButtonCircle
	ButtonCross
	ButtonSquare
	ButtonPS

	buttonCount = 17
)

// keyCodes maps the raw evdev key code reported by the controller to a
// button. The table is closed: it encodes the SixAxis report protocol,
// and codes outside it are dropped during event decoding.
var keyCodes = map[uint16]Button{
	304: ButtonCross,
	305: ButtonCircle,
	307: ButtonTriangle,
	308: ButtonSquare,
	310: ButtonL1,
	311: ButtonR1,
	312: ButtonL2,
	313: ButtonR2,
	314: ButtonSelect,
	315: ButtonStart,
	316: ButtonPS,
	317: ButtonLeftStick,
	318: ButtonRightStick,
	544: ButtonDUp,
	545: ButtonDDown,
	546: ButtonDLeft,
	547: ButtonDRight,
}

var buttonNames = [buttonCount]string{
	"select", "left_stick", "right_stick", "start",
	"d_up", "d_right", "d_down", "d_left",
	"l2", "r2", "l1", "r1",
	"triangle", "circle", "cross", "square",
	"ps",
}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Mask returns the bitfield with only this button's bit set.
func (b Button) Mask() uint32 {
	return 1 << uint(b)
}

// ButtonHandler is called with the button that triggered it. Handlers
// run synchronously on the goroutine delivering the event, so they
// must return quickly or hand work off themselves.
type ButtonHandler func(button Button)

// HandlerToken identifies a handler registration so it can be removed
// with UnregisterButtonHandler.
type HandlerToken uint64

type handlerRegistration struct {
	token   HandlerToken
	mask    uint32
	handler ButtonHandler
}
