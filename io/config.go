package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/discedge/migrate"
	"github.com/phil-mansfield/discedge/nbody"
)

const (
	ExampleRunFile = `[Run]

#######################
# Required Parameters #
#######################

# Text file containing the initial conditions. Run discedge with
# -ExampleConfig Particles to see the expected format.
Particles = path/to/particles.txt
# File that snapshots will be written to.
Output = path/to/output.txt

# Length of a single leapfrog step and the number of steps to take, both in
# code units. Dt should be a small fraction of the shortest orbital period.
Dt = 0.01
Steps = 10000

#######################
# Optional Parameters #
#######################

# Gravitational constant in code units. Default is 1.
# G = 1

# Number of steps between snapshots. Default is 1.
# SnapshotEvery = 100

# Writes a plot of semimajor axis against time. Requires python and
# matplotlib.
# Plot = a.png

# Writes run counters in the Prometheus text format at exit.
# MetricsFile = run.prom

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out

[InnerDiscEdge]

# All parameters here are optional. If InnerDiscEdge and DiscEdgeWidth are not
# set, tau_a is ignored and only eccentricity and inclination damping are
# applied.

# Frame that orbits are measured in. Must be one of
# [ Jacobi | Barycentric | Particle ]. Default is Jacobi.
# Coordinates = Jacobi

# Index of the reference particle used when Coordinates = Particle. Default
# is 0.
# Primary = 0

# Radius of the inner disc edge, where the planet trap is centred.
# InnerDiscEdge = 0.1

# Fractional half-width of the trap. Migration is reversed between
# InnerDiscEdge*(1 - DiscEdgeWidth) and InnerDiscEdge*(1 + DiscEdgeWidth).
# DiscEdgeWidth = 0.1`

	ExampleParticlesFile = `# Each row is one particle. Columns are:
# m x y z vx vy vz tau_a tau_e tau_inc
#
# Timescales are e-folding times of the semimajor axis, eccentricity and
# inclination. Negative values damp, positive values grow. A timescale of 0 or
# inf is ignored. The first particle is conventionally the star.
1.0   0.0 0.0 0.0   0.0 0.0 0.0            0      0      0
1e-5  1.6 0.0 0.0   0.0 0.790569415 0.0   -1e3   -1e2   inf
3e-5  2.4 0.0 0.0   0.0 0.645497224 0.01  -2e3   -1e2   -1e2`
)

type RunConfig struct {
	// Required
	Particles, Output string
	Dt                float64
	Steps             int

	// Optional
	G                    float64
	SnapshotEvery        int
	Plot, MetricsFile    string
	LogFile, ProfileFile string
}

type InnerDiscEdgeConfig struct {
	Coordinates                  string
	Primary                      int
	InnerDiscEdge, DiscEdgeWidth float64
}

type RunWrapper struct {
	Run           RunConfig
	InnerDiscEdge InnerDiscEdgeConfig
}

func DefaultRunWrapper() *RunWrapper {
	run := RunConfig{G: 1, SnapshotEvery: 1}
	edge := InnerDiscEdgeConfig{Coordinates: "Jacobi"}
	return &RunWrapper{run, edge}
}

// ReadRunConfig reads and validates a run configuration file.
func ReadRunConfig(fname string) (*RunWrapper, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// ParseRunConfig reads and validates a run configuration held in a string.
func ParseRunConfig(text string) (*RunWrapper, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}

func (con *RunConfig) ValidParticles() bool     { return con.Particles != "" }
func (con *RunConfig) ValidOutput() bool        { return con.Output != "" }
func (con *RunConfig) ValidDt() bool            { return con.Dt > 0 }
func (con *RunConfig) ValidSteps() bool         { return con.Steps > 0 }
func (con *RunConfig) ValidG() bool             { return con.G > 0 }
func (con *RunConfig) ValidSnapshotEvery() bool { return con.SnapshotEvery > 0 }
func (con *RunConfig) ValidPlot() bool          { return con.Plot != "" }
func (con *RunConfig) ValidMetricsFile() bool   { return con.MetricsFile != "" }
func (con *RunConfig) ValidLogFile() bool       { return con.LogFile != "" }
func (con *RunConfig) ValidProfileFile() bool   { return con.ProfileFile != "" }

// CheckInit returns an error describing the first invalid value in the
// configuration.
func (wrap *RunWrapper) CheckInit() error {
	con := &wrap.Run
	if !con.ValidParticles() {
		return fmt.Errorf("Invalid/non-existent 'Particles' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDt() {
		return fmt.Errorf("'Dt' must be positive, but is %g.", con.Dt)
	} else if !con.ValidSteps() {
		return fmt.Errorf("'Steps' must be positive, but is %d.", con.Steps)
	} else if !con.ValidG() {
		return fmt.Errorf("'G' must be positive, but is %g.", con.G)
	} else if !con.ValidSnapshotEvery() {
		return fmt.Errorf(
			"'SnapshotEvery' must be positive, but is %d.", con.SnapshotEvery,
		)
	}

	ec := &wrap.InnerDiscEdge
	if _, err := nbody.ParseCoordinates(ec.Coordinates); err != nil {
		return err
	}
	if ec.ValidInnerDiscEdge() != ec.ValidDiscEdgeWidth() {
		return fmt.Errorf(
			"You must set both 'InnerDiscEdge' and 'DiscEdgeWidth' or neither.",
		)
	}
	if ec.Primary < 0 {
		return fmt.Errorf("'Primary' must be non-negative, but is %d.", ec.Primary)
	}

	if ec.ValidInnerDiscEdge() {
		edge := &migrate.Edge{Radius: ec.InnerDiscEdge, Width: ec.DiscEdgeWidth}
		if err := edge.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidInnerDiscEdge returns true if the edge radius was set. Whether its
// value is usable is checked by migrate.Edge.Validate.
func (ec *InnerDiscEdgeConfig) ValidInnerDiscEdge() bool {
	return ec.InnerDiscEdge != 0
}

// ValidDiscEdgeWidth returns true if the edge width was set.
func (ec *InnerDiscEdgeConfig) ValidDiscEdgeWidth() bool {
	return ec.DiscEdgeWidth != 0
}

// Migrate converts the [InnerDiscEdge] section into an effect configuration.
// The particle count is checked later by migrate.New.
func (ec *InnerDiscEdgeConfig) Migrate() (migrate.Config, error) {
	cfg := migrate.DefaultConfig()

	coords, err := nbody.ParseCoordinates(ec.Coordinates)
	if err != nil {
		return cfg, err
	}
	cfg.Coordinates = coords
	cfg.Primary = ec.Primary

	if ec.ValidInnerDiscEdge() || ec.ValidDiscEdgeWidth() {
		cfg.Edge = &migrate.Edge{
			Radius: ec.InnerDiscEdge, Width: ec.DiscEdgeWidth,
		}
		if err := cfg.Edge.Validate(); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
