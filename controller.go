package sixaxis

import (
	"sync"
)

// Controller tracks the state of a single PS3 SixAxis controller: four
// calibrated analogue axes and a press bitfield for its seventeen
// buttons. Events are fed in by a background reader once Connect has
// been called, or directly through HandleEvent. All exported methods
// are safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	axes [axisCount]*axis

	// pressed holds the buttons currently held down; history
	// accumulates every press since the last drain and is only cleared
	// by DrainButtonPresses, so a press-release pair between two polls
	// is still observable.
	pressed  uint32
	history  uint32
	handlers []handlerRegistration
	nextTok  HandlerToken

	cfg  *Config
	stop func()
}

// New creates a disconnected controller using the given configuration.
// A nil cfg uses DefaultConfig.
func New(cfg *Config) *Controller {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &Controller{cfg: cfg}
	for i := range c.axes {
		c.axes[i] = newAxis(cfg.DeadZone, cfg.HotZone, cfg.invert(i))
	}
	return c
}

// HandleEvent decodes one raw event and updates the controller state,
// invoking any button handlers whose mask matches a press. This is the
// single mutation point for axis and button state; every event the
// background reader produces lands here, in arrival order.
//
// Events with an unrecognized type, axis code or key code are ignored.
func (c *Controller) HandleEvent(e Event) {
	switch e.Type {
	case EventTypeAbsolute:
		slot, ok := axisSlots[e.Code]
		if !ok {
			return
		}
		v := float64(e.Value) / axisRawMax
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		c.mu.Lock()
		c.axes[slot].set(v)
		c.mu.Unlock()

	case EventTypeKey:
		button, ok := keyCodes[e.Code]
		if !ok {
			return
		}
		c.handleKey(button, e.Value)
	}
}

// handleKey applies one button transition. The hardware re-reports
// value 1 for a held button; every such report fires the handlers
// again, there is no edge debounce.
func (c *Controller) handleKey(button Button, value int32) {
	mask := button.Mask()

	if value != 1 {
		c.mu.Lock()
		c.pressed &^= mask
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.pressed |= mask
	c.history |= mask
	var fire []ButtonHandler
	for _, reg := range c.handlers {
		if reg.mask&mask != 0 {
			fire = append(fire, reg.handler)
		}
	}
	c.mu.Unlock()

	// Handlers run outside the lock so they may call back into the
	// controller, but still synchronously on the delivering goroutine.
	for _, h := range fire {
		h(button)
	}
}

// CorrectedValue returns the calibrated position of one axis in
// [-1.0, 1.0].
func (c *Controller) CorrectedValue(slot AxisSlot) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.axes[slot].correctedValue()
}

// CorrectedValues returns the calibrated positions of all four axes in
// slot order: left X, left Y, right X, right Y.
func (c *Controller) CorrectedValues() (values [axisCount]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, a := range c.axes {
		values[i] = a.correctedValue()
	}
	return
}

// IsPressed reports whether the button is currently held down.
func (c *Controller) IsPressed(button Button) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pressed&button.Mask() != 0
}

// DrainButtonPresses returns the bitfield of every button pressed
// since the previous call and clears it. Test individual buttons with
// Button.Mask. Unlike IsPressed this catches presses that were already
// released again by the time of the call.
func (c *Controller) DrainButtonPresses() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.history
	c.history = 0
	return old
}

// RegisterButtonHandler registers a handler to be called whenever one
// of the given buttons is pressed. Handlers fire in registration order
// on the goroutine delivering the event. The returned token removes
// the registration via UnregisterButtonHandler.
func (c *Controller) RegisterButtonHandler(handler ButtonHandler, buttons ...Button) HandlerToken {
	var mask uint32
	for _, b := range buttons {
		mask |= b.Mask()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextTok++
	c.handlers = append(c.handlers, handlerRegistration{
		token:   c.nextTok,
		mask:    mask,
		handler: handler,
	})
	return c.nextTok
}

// UnregisterButtonHandler removes the registration identified by the
// token. Unknown or already removed tokens are ignored; other
// registrations are never affected.
func (c *Controller) UnregisterButtonHandler(token HandlerToken) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, reg := range c.handlers {
		if reg.token == token {
			c.handlers = append(c.handlers[:i], c.handlers[i+1:]...)
			return
		}
	}
}

// RecentreAxes sets the calibration centre of every axis to its
// current reading, zeroing the sticks at their present rest position.
func (c *Controller) RecentreAxes() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.axes {
		a.recentre()
	}
}

// ResetAxisCalibration restores the default centre and observed bounds
// on every axis. Dead zones, hot zones and inversion are untouched.
func (c *Controller) ResetAxisCalibration() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.axes {
		a.reset()
	}
}

// IsConnected reports whether a background event feed is attached.
func (c *Controller) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Connect locates the controller and starts the background reader
// feeding events into HandleEvent. The device is found by the
// configured path if one is set, otherwise by scanning input devices
// for the configured controller name; scanning that yields nothing
// fails with ErrDeviceNotFound immediately, there is no retry.
//
// Connect returns false with a nil error when already connected.
// Calibration state is untouched, so it survives a
// disconnect/reconnect cycle.
func (c *Controller) Connect() (ok bool, err error) {
	path := c.cfg.DevicePath
	if path == "" {
		if path, err = findDeviceByName(c.cfg.DeviceName); err != nil {
			return false, err
		}
	}
	return c.ConnectPath(path)
}

// ConnectPath connects to the input device node at the given path,
// bypassing discovery.
func (c *Controller) ConnectPath(path string) (ok bool, err error) {
	c.mu.Lock()
	if c.stop != nil {
		c.mu.Unlock()
		return false, nil
	}
	c.mu.Unlock()

	dev, err := openDevice(path)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	if c.stop != nil {
		// lost the race against a concurrent Connect
		c.mu.Unlock()
		_ = dev.close()
		return false, nil
	}
	c.stop = c.startReadLoop(dev)
	c.mu.Unlock()
	return true, nil
}

// Disconnect detaches and terminates the background reader and closes
// the device. It is a no-op when not connected and is safe to call
// repeatedly and from any goroutine.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.mu.Unlock()
	if stop != nil {
		stop()
	}
}
