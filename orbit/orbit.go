/*package orbit converts between Cartesian two-body states and Keplerian
orbital elements.

All angles are in radians. Inclination lies in [0, pi] and the remaining
angles lie in [0, 2 pi).
*/
package orbit

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/discedge/geom"
)

// tiny is the threshold below which masses, eccentricities and node vectors
// are treated as zero.
const tiny = 1e-308

var (
	// ErrMassless indicates that the primary has no mass, so the two-body
	// problem has no gravitational parameter.
	ErrMassless = errors.New("orbit: primary has zero mass")
	// ErrCoincident indicates that the body sits on top of its primary.
	ErrCoincident = errors.New("orbit: body coincides with primary")
	// ErrParabolic indicates elements with e == 1, which have no finite
	// semimajor axis.
	ErrParabolic = errors.New("orbit: parabolic orbits unsupported")
	// ErrElements indicates an inconsistent set of elements.
	ErrElements = errors.New("orbit: inconsistent elements")
)

// Orbit is a set of osculating Keplerian elements relative to a primary.
type Orbit struct {
	A     float64 // semimajor axis, negative for hyperbolic orbits
	E     float64 // eccentricity
	Inc   float64 // inclination
	Omega float64 // longitude of the ascending node
	Peri  float64 // argument of pericenter
	F     float64 // true anomaly

	H float64 // specific angular momentum
	N float64 // mean motion
	P float64 // period, infinite for unbound orbits
	R float64 // separation from the primary
	V float64 // relative speed
}

// Mu returns the gravitational parameter of a body with mass m orbiting a
// primary with mass mPrimary.
func Mu(G, m, mPrimary float64) float64 { return G * (m + mPrimary) }

// FromState computes the orbit of a body with mass m orbiting a primary with
// mass mPrimary, given the relative position dx and relative velocity dv of
// the body with respect to the primary.
//
// ErrMassless is returned if the primary is massless and ErrCoincident if
// dx is zero. In both cases the returned Orbit is the zero value.
func FromState(G, m, mPrimary float64, dx, dv geom.Vec) (Orbit, error) {
	if mPrimary <= tiny {
		return Orbit{}, ErrMassless
	}
	mu := Mu(G, m, mPrimary)
	if mu <= tiny {
		return Orbit{}, ErrMassless
	}

	o := Orbit{}
	o.R = dx.Norm()
	if o.R <= tiny {
		return Orbit{}, ErrCoincident
	}

	v2 := dv.Norm2()
	o.V = math.Sqrt(v2)
	vCirc2 := mu / o.R
	o.A = -mu / (v2 - 2*vCirc2)

	h := dx.Cross(dv)
	o.H = h.Norm()

	vr := dx.Dot(dv) / o.R
	ev := dx.Scale(v2 - vCirc2).Sub(dv.Scale(o.R * vr)).Scale(1 / mu)
	o.E = ev.Norm()

	o.N = math.Sqrt(math.Abs(mu / (o.A * o.A * o.A)))
	if o.A > 0 {
		o.P = 2 * math.Pi / o.N
	} else {
		o.P = math.Inf(1)
	}

	if o.H <= tiny {
		// Radial orbits have no orbital plane.
		return o, nil
	}

	o.Inc = math.Acos(clamp(h[2] / o.H))
	node := geom.Vec{-h[1], h[0], 0}
	nn := node.Norm()
	retro := 1.0
	if h[2] < 0 {
		retro = -1
	}

	if nn > tiny {
		o.Omega = acos2(node[0], nn, node[1])
	}

	switch {
	case o.E > tiny && nn > tiny:
		o.Peri = acos2(node.Dot(ev), nn*o.E, ev[2])
		o.F = acos2(ev.Dot(dx), o.E*o.R, vr)
	case o.E > tiny:
		o.Peri = angle(retro * math.Atan2(ev[1], ev[0]))
		o.F = acos2(ev.Dot(dx), o.E*o.R, vr)
	case nn > tiny:
		o.F = acos2(node.Dot(dx), nn*o.R, dx[2])
	default:
		o.F = angle(retro * math.Atan2(dx[1], dx[0]))
	}

	return o, nil
}

// ToState computes the relative position and velocity of a body with mass m
// around a primary with mass mPrimary from its orbital elements. Only A, E,
// Inc, Omega, Peri and F are read.
func ToState(G, m, mPrimary float64, o Orbit) (dx, dv geom.Vec, err error) {
	if mPrimary <= tiny {
		return dx, dv, ErrMassless
	}
	mu := Mu(G, m, mPrimary)

	switch {
	case o.E == 1:
		return dx, dv, ErrParabolic
	case o.E < 0:
		return dx, dv, fmt.Errorf(
			"%w: eccentricity must be non-negative, but is %g",
			ErrElements, o.E,
		)
	case o.E > 1 && o.A > 0:
		return dx, dv, fmt.Errorf(
			"%w: hyperbolic orbit with e = %g needs a < 0, but a = %g",
			ErrElements, o.E, o.A,
		)
	case o.E < 1 && o.A <= 0:
		return dx, dv, fmt.Errorf(
			"%w: bound orbit with e = %g needs a > 0, but a = %g",
			ErrElements, o.E, o.A,
		)
	case o.E > 1 && math.Cos(o.F) < -1/o.E:
		return dx, dv, fmt.Errorf(
			"%w: true anomaly %g is beyond the asymptote of a hyperbolic "+
				"orbit with e = %g", ErrElements, o.F, o.E,
		)
	}

	semiLatus := o.A * (1 - o.E*o.E)
	r := semiLatus / (1 + o.E*math.Cos(o.F))
	v0 := math.Sqrt(mu / semiLatus)

	sf, cf := math.Sincos(o.F)
	rot := geom.OrbitMatrix(o.Omega, o.Inc, o.Peri)
	dx = geom.Vec{r * cf, r * sf, 0}.Rotate(rot)
	dv = geom.Vec{-v0 * sf, v0 * (o.E + cf), 0}.Rotate(rot)

	return dx, dv, nil
}

// acos2 returns the angle whose cosine is num/denom, placed in the lower half
// of [0, 2 pi) when disambiguator is negative.
func acos2(num, denom, disambiguator float64) float64 {
	cs := num / denom
	var val float64
	if cs > -1 && cs < 1 {
		val = math.Acos(cs)
		if disambiguator < 0 {
			val = -val
		}
	} else if cs <= -1 {
		val = math.Pi
	}
	return angle(val)
}

// angle maps x onto [0, 2 pi).
func angle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	return x
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
