/*package migrate implements disc-driven orbital migration with a planet trap
at the inner edge of the disc.

Each body is given e-folding timescales for its semimajor axis, eccentricity
and inclination. Accel turns these into an acceleration which orbit-averages
to exponential damping (or growth) of the three elements. Near the inner disc
edge the semimajor axis rate is multiplied by Trap, which reverses inward
migration and stops bodies from falling onto the central star.

Eccentricity damping conserves angular momentum, so it also drives some
semimajor axis evolution and pericenter precession.
*/
package migrate

import (
	"github.com/phil-mansfield/discedge/geom"
	"github.com/phil-mansfield/discedge/nbody"
	"github.com/phil-mansfield/discedge/orbit"
)

// Status describes which channels contributed to an evaluation of Accel.
type Status struct {
	// NoOrbit is set when the orbit of the body could not be computed (a
	// massless reference body or coincident positions), so semimajor axis
	// damping was skipped.
	NoOrbit bool
	// Trapped is set when the trap multiplier was evaluated. Trap and A hold
	// the multiplier and the semimajor axis it was evaluated at.
	Trapped bool
	Trap    float64
	A       float64
}

// Accel returns the migration acceleration of p relative to the reference
// body source. G is the gravitational constant of the simulation. Neither
// particle is modified.
//
// Semimajor axis damping runs only when ts.TauA is set, edge is non-nil and
// the orbit of p around source is defined. Eccentricity and inclination
// damping run whenever ts.TauE or ts.TauInc is set.
func Accel(
	G float64, p, source *nbody.Particle, ts Timescales, edge *Edge,
) (geom.Vec, Status) {
	dx, dv := p.Xs.Sub(source.Xs), p.Vs.Sub(source.Vs)
	r2 := dx.Norm2()
	status := Status{}

	invTauA := 0.0
	if ts.TauA.IsSet() && edge != nil {
		o, err := orbit.FromState(G, p.Mass, source.Mass, dx, dv)
		if err != nil {
			status.NoOrbit = true
		} else {
			status.Trapped, status.A = true, o.A
			status.Trap = Trap(o.A, edge.Width, edge.Radius)
			invTauA = status.Trap / ts.TauA.Value()
		}
	}

	a := dv.Scale(invTauA / 2)

	if ts.TauE.IsSet() || ts.TauInc.IsSet() {
		tauE, tauInc := ts.TauE.Value(), ts.TauInc.Value()
		if r2 > 0 {
			prefac := 2 * dx.Dot(dv) / r2 / tauE
			a.AddScaled(prefac, dx)
		}
		a[2] += 2 * dv[2] / tauInc
	}

	return a, status
}
