// Package touch maps touch controller samples to panel pixel coordinates.
//
// The touch sensor reports in its native portrait frame: tx runs along the
// panel's short side and ty along its long side. The panel's default
// orientation is landscape.
package touch

import (
	"tinygo.org/x/drivers"
)

// Remap converts a native sensor sample to pixel coordinates for a w×h
// landscape panel shown at rotation rot. Samples outside the sensor range
// (tx in [0,h), ty in [0,w)) are clamped first. Rotation0 is the landscape
// default; the other rotations turn the output clockwise in 90° steps.
func Remap(tx, ty int, rot drivers.Rotation, w, h int) (x, y int) {
	tx = clamp(tx, h)
	ty = clamp(ty, w)
	switch rot {
	case drivers.Rotation90:
		return h - 1 - tx, w - 1 - ty
	case drivers.Rotation180:
		return ty, h - 1 - tx
	case drivers.Rotation270:
		return tx, ty
	default:
		return w - 1 - ty, tx
	}
}

// Size returns the output coordinate space for rotation rot.
func Size(rot drivers.Rotation, w, h int) (width, height int) {
	switch rot {
	case drivers.Rotation90, drivers.Rotation270:
		return h, w
	default:
		return w, h
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Remapper binds a rotation to a panel size.
type Remapper struct {
	Rotation drivers.Rotation
	W, H     int
}

// Map converts a native sample.
func (m Remapper) Map(tx, ty int) (x, y int) {
	return Remap(tx, ty, m.Rotation, m.W, m.H)
}

// Size returns the output coordinate space.
func (m Remapper) Size() (width, height int) {
	return Size(m.Rotation, m.W, m.H)
}
