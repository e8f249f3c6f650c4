package migrate

import (
	"math"
)

const (
	// TrapMax is the trap multiplier far outside the disc edge: unperturbed
	// inward migration.
	TrapMax = 1.0
	// TrapMin is the trap multiplier deep inside the disc edge: the maximal
	// outward push.
	TrapMin = -10.0
)

// Trap returns the migration-rate multiplier of a planet trap centred on an
// inner disc edge at radius dedge with fractional half-width h, evaluated at
// orbital radius r.
//
// Outside dedge*(1 + h) the multiplier is 1. Inside dedge*(1 - h) it is -10.
// Across the window it follows half a period of a cosine, passing through
// -4.5 at r = dedge. Trap requires h > 0 and dedge > 0; see Edge.Validate.
func Trap(r, h, dedge float64) float64 {
	outer, inner := dedge*(1+h), dedge*(1-h)

	switch {
	case r > outer:
		return TrapMax
	case r > inner:
		return 5.5*math.Cos(((outer-r)*2*math.Pi)/(4*h*dedge)) - 4.5
	default:
		return TrapMin
	}
}
