package system

import (
	"math"

	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

// TiltFilter turns raw tilt samples into per-frame displacements.
// Each new sample is blended into the previous value so sudden changes are
// damped; the first sample is taken as-is.
type TiltFilter struct {
	config *config.TiltConfig

	x, y        float64
	initialized bool
}

// NewTiltFilter creates a tilt filter
func NewTiltFilter(cfg *config.TiltConfig) *TiltFilter {
	return &TiltFilter{config: cfg}
}

// Update blends a raw sample (x to the left, y downward) into the filter and
// returns the desired displacement for this frame.
func (f *TiltFilter) Update(rawX, rawY float64) (dx, dy int) {
	if !f.initialized {
		f.x, f.y = rawX, rawY
		f.initialized = true
	} else {
		alpha := f.config.Alpha
		f.x = f.x*alpha + rawX*(1-alpha)
		f.y = f.y*alpha + rawY*(1-alpha)
	}

	return f.displacement()
}

// Reset forgets the smoothed value
func (f *TiltFilter) Reset() {
	f.x, f.y = 0, 0
	f.initialized = false
}

// Value returns the smoothed tilt
func (f *TiltFilter) Value() (x, y float64) {
	return f.x, f.y
}

// displacement scales the smoothed tilt and clamps it to the configured step
func (f *TiltFilter) displacement() (dx, dy int) {
	weight := f.config.Weight
	maxStep := f.config.MaxStep

	dx = clampStep(int(math.Round(-f.x*weight)), maxStep)
	dy = clampStep(int(math.Round(f.y*weight)), maxStep)
	return dx, dy
}

func clampStep(v, maxStep int) int {
	if maxStep <= 0 || abs(v) <= maxStep {
		return v
	}
	return sign(v) * maxStep
}
