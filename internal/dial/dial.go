// Package dial maps scalar guess/target values onto a fixed semicircular
// gauge. All functions are pure; the package knows nothing about rounds or
// game state.
package dial

import "math"

// Clamp restricts v to [lo, hi]. Total function, no failure mode.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ValueToAngle maps a value in [0,100] to an angle in degrees on the
// bottom semicircle: 0 -> 180 (left end), 100 -> 360 (right end). The
// bottom arc is the deliberate convention for a downward-opening gauge.
//
// Input must already be clamped; out-of-range values produce angles
// outside the arc on purpose, so callers go through Clamp first.
func ValueToAngle(v float64) float64 {
	return 180 + (v/100)*180
}

// PolarToXY converts an angle in degrees around the given center and
// radius to Cartesian coordinates.
func PolarToXY(cx, cy, r, angleDeg float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}

// Point is the full pipeline for a pre-clamped value: value -> angle ->
// coordinates on the gauge.
func Point(cx, cy, r, v float64) (x, y float64) {
	return PolarToXY(cx, cy, r, ValueToAngle(v))
}
