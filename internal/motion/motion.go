// Package motion owns the rotation input side: pointer drags and the
// auto-rotation clock. Both are pure functions of their inputs; the
// Controller only stores what the caller would otherwise keep in a closure.
package motion

import (
	"math"
	"time"

	"github.com/san-kum/polyview/internal/geom"
)

const (
	// DragDegreesPerPixel converts pointer travel to rotation.
	DragDegreesPerPixel = 0.5

	DefaultPeriod = 10 * time.Second
)

// ApplyDrag turns a pointer delta into rotation: horizontal travel spins
// about Y, vertical travel about X.
func ApplyDrag(r geom.Rotation, dx, dy float64) geom.Rotation {
	r.Y += dx * DragDegreesPerPixel
	r.X += dy * DragDegreesPerPixel
	return r
}

// AutoAngle maps elapsed time onto [0, 360) degrees, one full turn per
// period. A non-positive period yields 0.
func AutoAngle(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	e := elapsed % period
	if e < 0 {
		e += period
	}
	return float64(e) / float64(period) * 360
}

// Input is one frame's worth of rotation input.
type Input struct {
	Rotation     geom.Rotation
	AutoRotating bool
	DragDX       float64
	DragDY       float64
	Elapsed      time.Duration
	Period       time.Duration
}

// Resolve returns the rotation snapshot for the frame: drag is applied
// only when not auto-rotating, and auto-rotation overrides Y.
func Resolve(in Input) geom.Rotation {
	if in.AutoRotating {
		r := in.Rotation
		r.Y = AutoAngle(in.Elapsed, in.Period)
		return r
	}
	return ApplyDrag(in.Rotation, in.DragDX, in.DragDY)
}

// Controller keeps the caller-owned rotation between frames.
type Controller struct {
	Base   geom.Rotation
	Period time.Duration

	auto  bool
	start time.Time
}

func NewController(initial geom.Rotation, period time.Duration) *Controller {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Controller{Base: initial, Period: period}
}

// AutoRotating reports whether the clock drives Y.
func (c *Controller) AutoRotating() bool { return c.auto }

// Drag applies a pointer delta. Ignored while auto-rotating.
func (c *Controller) Drag(dx, dy float64) {
	if c.auto {
		return
	}
	c.Base = ApplyDrag(c.Base, dx, dy)
}

// SetAuto switches auto-rotation. The clock starts at the current Y so
// the shape does not jump, and stopping freezes Y where it was.
func (c *Controller) SetAuto(on bool, now time.Time) {
	if on == c.auto {
		return
	}
	if on {
		offset := time.Duration(math.Mod(c.Base.Y, 360) / 360 * float64(c.Period))
		c.start = now.Add(-offset)
	} else {
		c.Base.Y = AutoAngle(now.Sub(c.start), c.Period)
	}
	c.auto = on
}

// Toggle flips auto-rotation.
func (c *Controller) Toggle(now time.Time) { c.SetAuto(!c.auto, now) }

// Rotation returns the snapshot to render at now.
func (c *Controller) Rotation(now time.Time) geom.Rotation {
	return Resolve(Input{
		Rotation:     c.Base,
		AutoRotating: c.auto,
		Elapsed:      now.Sub(c.start),
		Period:       c.Period,
	}).Normalized()
}
