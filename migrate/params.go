package migrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/discedge/nbody"
)

// ErrInvalidEdge is returned for disc edges with a non-positive radius or
// width.
var ErrInvalidEdge = errors.New("migrate: invalid inner disc edge")

// Timescale is an e-folding timescale tau, so that an element x evolves as
// dx/dt = x/tau. Negative values damp the element and positive values grow
// it. The zero value is unset, which behaves like an infinite timescale.
type Timescale struct {
	tau float64
	set bool
}

// Tau returns a timescale of length tau. Zero and infinite values give an
// unset timescale.
func Tau(tau float64) Timescale {
	if tau == 0 || math.IsInf(tau, 0) {
		return Timescale{}
	}
	return Timescale{tau: tau, set: true}
}

// IsSet returns true if the timescale has a finite value.
func (t Timescale) IsSet() bool { return t.set }

// Value returns the timescale, or +Inf if it is unset.
func (t Timescale) Value() float64 {
	if !t.set {
		return math.Inf(1)
	}
	return t.tau
}

func (t Timescale) String() string {
	if !t.set {
		return "unset"
	}
	return fmt.Sprintf("%g", t.tau)
}

// Timescales are the per-particle parameters of the effect. Any subset may
// be unset, and an unset timescale switches off its channel.
type Timescales struct {
	TauA   Timescale // semimajor axis
	TauE   Timescale // eccentricity
	TauInc Timescale // inclination
}

// Any returns true if at least one timescale is set.
func (ts Timescales) Any() bool {
	return ts.TauA.IsSet() || ts.TauE.IsSet() || ts.TauInc.IsSet()
}

// Validate returns an error if any timescale is NaN.
func (ts Timescales) Validate() error {
	if math.IsNaN(ts.TauA.tau) {
		return fmt.Errorf("tau_a is NaN")
	} else if math.IsNaN(ts.TauE.tau) {
		return fmt.Errorf("tau_e is NaN")
	} else if math.IsNaN(ts.TauInc.tau) {
		return fmt.Errorf("tau_inc is NaN")
	}
	return nil
}

// Edge describes the inner disc edge that hosts the planet trap.
type Edge struct {
	Radius float64 // inner_disc_edge, the centre of the trap
	Width  float64 // disc_edge_width, fractional half-width of the trap
}

// Validate returns an error wrapping ErrInvalidEdge unless both the radius
// and the width are positive and finite.
func (e *Edge) Validate() error {
	if !(e.Radius > 0) || math.IsInf(e.Radius, 0) {
		return fmt.Errorf(
			"%w: inner_disc_edge must be positive, but is %g",
			ErrInvalidEdge, e.Radius,
		)
	} else if !(e.Width > 0) || math.IsInf(e.Width, 0) {
		return fmt.Errorf(
			"%w: disc_edge_width must be positive, but is %g",
			ErrInvalidEdge, e.Width,
		)
	}
	return nil
}

// Config holds the per-effect parameters.
type Config struct {
	// Coordinates selects the frame orbits are measured in.
	Coordinates nbody.Coordinates
	// Primary is the index of the reference particle for
	// nbody.CoordinatesParticle. It is ignored by the other frames.
	Primary int
	// Edge is the inner disc edge. If nil, semimajor axis damping is off.
	Edge *Edge
}

// DefaultConfig returns a configuration using Jacobi coordinates with no
// disc edge.
func DefaultConfig() Config {
	return Config{Coordinates: nbody.CoordinatesJacobi}
}

// Validate checks the configuration for a simulation of n particles.
func (c *Config) Validate(n int) error {
	if !c.Coordinates.Valid() {
		return fmt.Errorf("Unrecognized coordinate system %v.", c.Coordinates)
	}
	if c.Coordinates == nbody.CoordinatesParticle &&
		(c.Primary < 0 || c.Primary >= n) {
		return fmt.Errorf(
			"Primary must be in range [0, %d) for %d particles, but is %d.",
			n, n, c.Primary,
		)
	}
	if c.Edge != nil {
		if err := c.Edge.Validate(); err != nil {
			return err
		}
	}
	return nil
}
