package sixaxis

// WithController connects a controller for the duration of fn and
// always disconnects afterwards, even when fn returns an error. When
// cfg.BindDefaults is set, START is bound to resetting the axis
// calibration and SELECT to recentring the sticks before fn runs.
func WithController(cfg *Config, fn func(*Controller) error) error {
	c := New(cfg)
	if _, err := c.Connect(); err != nil {
		return err
	}
	defer c.Disconnect()

	if c.cfg.BindDefaults {
		c.RegisterButtonHandler(func(Button) { c.ResetAxisCalibration() }, ButtonStart)
		c.RegisterButtonHandler(func(Button) { c.RecentreAxes() }, ButtonSelect)
	}

	return fn(c)
}
