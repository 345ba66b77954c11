package sixaxis

// axis holds the calibration state for one analogue axis. Raw samples
// arrive normalized to [0.0, 1.0]; correctedValue maps them to
// [-1.0, 1.0] around the calibrated centre.
//
// All access goes through the owning Controller's lock.
type axis struct {
	value  float64
	centre float64
	min    float64
	max    float64

	deadZone float64
	hotZone  float64
	invert   bool
}

const (
	defaultCentre = 0.5
	defaultMax    = 0.9
	defaultMin    = 0.1
)

func newAxis(deadZone, hotZone float64, invert bool) *axis {
	return &axis{
		value:    defaultCentre,
		centre:   defaultCentre,
		max:      defaultMax,
		min:      defaultMin,
		deadZone: clampZone(deadZone),
		hotZone:  clampZone(hotZone),
		invert:   invert,
	}
}

// clampZone forces a zone fraction into [0, 1). Values at or above 1
// would put the zone boundary past the opposite end of the range.
func clampZone(z float64) float64 {
	if z < 0 {
		return 0
	}
	if z >= 1 {
		return 0.999
	}
	return z
}

// set records a raw sample and widens the observed bounds. Only the
// bound the sample actually exceeds moves; the opposite bound is left
// alone even if the sample is outside both. This one-sided policy is
// what makes calibration converge from the conservative 0.1/0.9
// defaults, so it is kept exactly as is.
func (a *axis) set(raw float64) {
	a.value = raw
	if raw > a.max {
		a.max = raw
	} else if raw < a.min {
		a.min = raw
	}
}

// correctedValue returns the centre-compensated, scaled position of
// the axis in [-1.0, 1.0]. Inside the dead zone the result is 0.0, at
// or beyond the hot zone it is +/-1.0, and in between it ramps
// linearly. Because min and max auto-expand, the extremes always map
// to exactly +/-1.0 regardless of the range the hardware achieves.
//
// If the dead and hot zones meet or cross (deadZone+hotZone >= 1 on a
// side), there is no linear region left and any reading outside the
// dead zone saturates to +/-1.0.
func (a *axis) correctedValue() float64 {
	highRange := a.max - a.centre
	highStart := a.centre + a.deadZone*highRange
	highEnd := a.max - a.hotZone*highRange

	lowRange := a.centre - a.min
	lowStart := a.centre - a.deadZone*lowRange
	lowEnd := a.min + a.hotZone*lowRange

	var result float64
	switch {
	case a.value > highStart:
		if a.value > highEnd || highEnd <= highStart {
			result = 1.0
		} else {
			result = (a.value - highStart) / (highEnd - highStart)
		}
	case a.value < lowStart:
		if a.value < lowEnd || lowStart <= lowEnd {
			result = -1.0
		} else {
			result = (a.value - lowStart) / (lowStart - lowEnd)
		}
	}

	if a.invert {
		return -result
	}
	return result
}

// recentre moves the calibration centre to the current reading.
func (a *axis) recentre() {
	a.centre = a.value
}

// reset restores the default calibration bounds. The dead zone, hot
// zone and inversion are construction-time settings and are not
// touched.
func (a *axis) reset() {
	a.centre = defaultCentre
	a.max = defaultMax
	a.min = defaultMin
}
