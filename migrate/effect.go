package migrate

import (
	"fmt"

	"github.com/phil-mansfield/discedge/geom"
	"github.com/phil-mansfield/discedge/nbody"
	"github.com/phil-mansfield/discedge/stats"
)

// Name is the name the effect is registered under.
const Name = "inner_disc_edge"

// Effect applies disc migration with an inner-edge planet trap to a
// simulation. It implements nbody.Effect.
type Effect struct {
	cfg   Config
	ts    []Timescales
	stats *stats.Collector
}

var _ nbody.Effect = &Effect{}

// New creates an effect for a simulation with n particles. The
// configuration is validated here so that invalid disc edges are rejected
// before integration starts. col may be nil.
func New(cfg Config, n int, col *stats.Collector) (*Effect, error) {
	if n < 0 {
		return nil, fmt.Errorf("Particle count must be non-negative, but is %d.", n)
	}
	if err := cfg.Validate(n); err != nil {
		return nil, err
	}

	e := &Effect{cfg: cfg, ts: make([]Timescales, n), stats: col}
	if cfg.Edge != nil {
		edge := *cfg.Edge
		e.cfg.Edge = &edge
	}
	return e, nil
}

// SetTimescales attaches timescales to particle i.
func (e *Effect) SetTimescales(i int, ts Timescales) error {
	if i < 0 || i >= len(e.ts) {
		return fmt.Errorf(
			"Particle index %d is out of range for %d particles.", i, len(e.ts),
		)
	}
	if err := ts.Validate(); err != nil {
		return fmt.Errorf("Particle %d: %s", i, err.Error())
	}
	e.ts[i] = ts
	return nil
}

// Timescales returns the timescales of particle i. Particles with no
// timescales attached return the zero value.
func (e *Effect) Timescales(i int) Timescales {
	if i < 0 || i >= len(e.ts) {
		return Timescales{}
	}
	return e.ts[i]
}

// Config returns a copy of the configuration the effect was created with.
func (e *Effect) Config() Config {
	cfg := e.cfg
	if cfg.Edge != nil {
		edge := *cfg.Edge
		cfg.Edge = &edge
	}
	return cfg
}

// Name returns "inner_disc_edge".
func (e *Effect) Name() string { return Name }

// Accelerate adds the migration acceleration of every particle to acc. Back
// reactions onto the reference bodies are always included.
func (e *Effect) Accelerate(sim *nbody.Simulation, acc []geom.Vec) {
	nbody.ApplyFrameForce(
		sim, e.cfg.Coordinates, true, e.cfg.Primary, e.pairForce, acc,
	)
}

func (e *Effect) pairForce(
	sim *nbody.Simulation, i int, p, source *nbody.Particle,
) geom.Vec {
	ts := e.Timescales(i)
	if !ts.Any() {
		return geom.Vec{}
	}

	a, status := Accel(sim.G, p, source, ts, e.cfg.Edge)
	e.stats.ObserveForce(status.NoOrbit, status.Trapped, status.Trap)
	return a
}
