/*package nbody contains the host N-body integrator which carries the disc
migration effect: particle state, direct-sum gravity, a leapfrog stepper and
the reference-frame helpers used by additional effects.
*/
package nbody

import (
	"github.com/phil-mansfield/discedge/geom"
)

// Particle is a point mass. Xs and Vs are the Cartesian position and
// velocity.
type Particle struct {
	Xs   geom.Vec
	Vs   geom.Vec
	Mass float64
	Id   int64
}

// Effect is an additional, non-gravitational acceleration. Accelerate adds
// its contribution for every particle in sim to acc, which is indexed like
// sim.Particles. Effects must not modify sim.
type Effect interface {
	Name() string
	Accelerate(sim *Simulation, acc []geom.Vec)
}

// Simulation is the state of an N-body integration.
type Simulation struct {
	G, T, Dt  float64
	Particles []Particle
	Effects   []Effect

	acc []geom.Vec
}

// NewSimulation returns a simulation of the given particles. The particles
// are copied.
func NewSimulation(G, dt float64, ps []Particle) *Simulation {
	sim := &Simulation{G: G, Dt: dt}
	sim.Particles = make([]Particle, len(ps))
	copy(sim.Particles, ps)
	return sim
}

// Add registers an effect. Effects are evaluated in the order they were
// added.
func (sim *Simulation) Add(e Effect) { sim.Effects = append(sim.Effects, e) }
