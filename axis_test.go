package sixaxis

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestAxisSet_OneSidedBoundUpdate(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		wantMin float64
		wantMax float64
	}{
		{"inside bounds", 0.5, defaultMin, defaultMax},
		{"above max widens max only", 0.95, defaultMin, 0.95},
		{"below min widens min only", 0.02, 0.02, defaultMax},
		{"at max leaves bounds", 0.9, defaultMin, defaultMax},
		{"at min leaves bounds", 0.1, defaultMin, defaultMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAxis(0.05, 0, false)
			a.set(tt.raw)
			if a.value != tt.raw {
				t.Errorf("value = %v, want %v", a.value, tt.raw)
			}
			if a.min != tt.wantMin {
				t.Errorf("min = %v, want %v", a.min, tt.wantMin)
			}
			if a.max != tt.wantMax {
				t.Errorf("max = %v, want %v", a.max, tt.wantMax)
			}
			if a.min > a.max {
				t.Errorf("min %v > max %v", a.min, a.max)
			}
		})
	}
}

func TestAxisCorrectedValue(t *testing.T) {
	// dead_zone=0.05, hot_zone=0, centre=0.5, min=0.1, max=0.9
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"at centre", 0.5, 0.0},
		{"at max", 0.9, 1.0},
		{"at min", 0.1, -1.0},
		{"inside dead zone high", 0.515, 0.0},
		{"inside dead zone low", 0.485, 0.0},
		{"on the high ramp", 0.7, 0.47368421052631576},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAxis(0.05, 0, false)
			a.set(tt.raw)
			got := a.correctedValue()
			if !almostEqual(got, tt.want) {
				t.Errorf("correctedValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisCorrectedValue_ExactExtremes(t *testing.T) {
	a := newAxis(0.05, 0, false)

	// Expanding the upper bound must still map the new extreme to
	// exactly 1.0.
	a.set(0.97)
	if got := a.correctedValue(); got != 1.0 {
		t.Errorf("correctedValue() at expanded max = %v, want exactly 1.0", got)
	}

	a.set(0.03)
	if got := a.correctedValue(); got != -1.0 {
		t.Errorf("correctedValue() at expanded min = %v, want exactly -1.0", got)
	}
}

func TestAxisCorrectedValue_Invert(t *testing.T) {
	for _, raw := range []float64{0.1, 0.3, 0.5, 0.55, 0.7, 0.9} {
		plain := newAxis(0.05, 0, false)
		flipped := newAxis(0.05, 0, true)
		plain.set(raw)
		flipped.set(raw)

		if got, want := flipped.correctedValue(), -plain.correctedValue(); !almostEqual(got, want) {
			t.Errorf("raw %v: inverted = %v, want %v", raw, got, want)
		}
	}
}

func TestAxisCorrectedValue_HotZone(t *testing.T) {
	// hot_zone=0.25 on the default range puts high_end at 0.8: any
	// reading beyond that saturates.
	a := newAxis(0, 0.25, false)

	a.set(0.85)
	if got := a.correctedValue(); got != 1.0 {
		t.Errorf("correctedValue() in hot zone = %v, want 1.0", got)
	}

	a.set(0.15)
	if got := a.correctedValue(); got != -1.0 {
		t.Errorf("correctedValue() in low hot zone = %v, want -1.0", got)
	}
}

func TestAxisCorrectedValue_DegenerateZones(t *testing.T) {
	// dead and hot zones covering the whole range leave no linear
	// region; anything past the dead zone saturates instead of
	// dividing by a zero-width ramp.
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"above the fold", 0.75, 1.0},
		{"below the fold", 0.25, -1.0},
		{"at centre", 0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAxis(0.5, 0.5, false)
			a.set(tt.raw)
			if got := a.correctedValue(); got != tt.want {
				t.Errorf("correctedValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAxisRecentreAndReset(t *testing.T) {
	a := newAxis(0, 0, false)
	a.set(0.75)
	a.recentre()
	if got := a.correctedValue(); got != 0.0 {
		t.Errorf("correctedValue() after recentre = %v, want 0.0", got)
	}

	a.set(0.99)
	a.set(0.01)
	a.reset()
	if a.centre != defaultCentre || a.max != defaultMax || a.min != defaultMin {
		t.Errorf("reset left centre=%v max=%v min=%v", a.centre, a.max, a.min)
	}
}

func TestClampZone(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1.0, 0.999},
		{2.0, 0.999},
	}
	for _, tt := range tests {
		if got := clampZone(tt.in); got != tt.want {
			t.Errorf("clampZone(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
