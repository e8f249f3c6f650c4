package nbody

import (
	"fmt"

	"github.com/phil-mansfield/discedge/geom"
)

// Accelerations overwrites acc with the total acceleration of every
// particle: gravity followed by each registered effect.
func (sim *Simulation) Accelerations(acc []geom.Vec) {
	if len(acc) != len(sim.Particles) {
		panic(fmt.Sprintf(
			"Acceleration buffer has length %d, but there are %d particles.",
			len(acc), len(sim.Particles),
		))
	}

	for i := range acc {
		acc[i] = geom.Vec{}
	}
	Gravity(sim.G, sim.Particles, acc)
	for _, e := range sim.Effects {
		e.Accelerate(sim, acc)
	}
}

// Step advances the simulation by one kick-drift-kick leapfrog step of
// length sim.Dt. Velocity-dependent effects are evaluated with the
// velocities at the start of each kick.
func (sim *Simulation) Step() {
	if len(sim.acc) != len(sim.Particles) {
		sim.acc = make([]geom.Vec, len(sim.Particles))
	}
	ps, dt := sim.Particles, sim.Dt

	sim.Accelerations(sim.acc)
	for i := range ps {
		ps[i].Vs.AddScaled(dt/2, sim.acc[i])
	}

	for i := range ps {
		ps[i].Xs.AddScaled(dt, ps[i].Vs)
	}

	sim.Accelerations(sim.acc)
	for i := range ps {
		ps[i].Vs.AddScaled(dt/2, sim.acc[i])
	}

	sim.T += dt
}

// Integrate takes the given number of steps. If snap is non-nil it is called
// on the initial state and after every every'th step; an error returned by
// snap stops the integration.
func (sim *Simulation) Integrate(
	steps, every int, snap func(*Simulation) error,
) error {
	if steps < 0 {
		return fmt.Errorf("Cannot integrate a negative number of steps, %d.", steps)
	} else if sim.Dt <= 0 {
		return fmt.Errorf("Timestep must be positive, but is %g.", sim.Dt)
	}
	if every <= 0 {
		every = 1
	}

	if snap != nil {
		if err := snap(sim); err != nil {
			return err
		}
	}

	for step := 1; step <= steps; step++ {
		sim.Step()
		if snap != nil && (step%every == 0 || step == steps) {
			if err := snap(sim); err != nil {
				return err
			}
		}
	}

	return nil
}

// COM returns a particle with the total mass of ps located at their centre
// of mass and moving with their centre-of-mass velocity.
func COM(ps []Particle) Particle {
	com := Particle{}
	for i := range ps {
		com = comOfPair(com, &ps[i])
	}
	return com
}

// comOfPair adds p into the centre of mass com.
func comOfPair(com Particle, p *Particle) Particle {
	m := com.Mass + p.Mass
	if m == 0 {
		return com
	}
	out := Particle{Mass: m}
	out.Xs = com.Xs.Scale(com.Mass / m).Add(p.Xs.Scale(p.Mass / m))
	out.Vs = com.Vs.Scale(com.Mass / m).Add(p.Vs.Scale(p.Mass / m))
	return out
}

// MoveToCOM shifts all particles into the centre-of-mass frame.
func (sim *Simulation) MoveToCOM() {
	com := COM(sim.Particles)
	for i := range sim.Particles {
		sim.Particles[i].Xs = sim.Particles[i].Xs.Sub(com.Xs)
		sim.Particles[i].Vs = sim.Particles[i].Vs.Sub(com.Vs)
	}
}

// Energy returns the total kinetic plus gravitational potential energy.
func (sim *Simulation) Energy() float64 {
	ps := sim.Particles
	E := 0.0
	for i := range ps {
		E += 0.5 * ps[i].Mass * ps[i].Vs.Norm2()
		for j := i + 1; j < len(ps); j++ {
			r := ps[j].Xs.Sub(ps[i].Xs).Norm()
			if r > 0 {
				E -= sim.G * ps[i].Mass * ps[j].Mass / r
			}
		}
	}
	return E
}

// AngularMomentum returns the total angular momentum about the origin.
func (sim *Simulation) AngularMomentum() geom.Vec {
	L := geom.Vec{}
	for i := range sim.Particles {
		p := &sim.Particles[i]
		L.AddScaled(p.Mass, p.Xs.Cross(p.Vs))
	}
	return L
}

// Momentum returns the total linear momentum.
func (sim *Simulation) Momentum() geom.Vec {
	P := geom.Vec{}
	for i := range sim.Particles {
		P.AddScaled(sim.Particles[i].Mass, sim.Particles[i].Vs)
	}
	return P
}
