package io

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/phil-mansfield/discedge/nbody"
	"github.com/phil-mansfield/discedge/orbit"
)

const snapshotHeader = "# t id m a e inc x y z vx vy vz\n"

// SnapshotWriter writes one text row per particle per snapshot. Orbital
// elements are measured relative to the first particle, and are NaN for the
// first particle itself and for any particle whose orbit is undefined.
type SnapshotWriter struct {
	w       *bufio.Writer
	started bool
}

func NewSnapshotWriter(w io.Writer) *SnapshotWriter {
	return &SnapshotWriter{w: bufio.NewWriter(w)}
}

// Write appends a snapshot of sim.
func (sw *SnapshotWriter) Write(sim *nbody.Simulation) error {
	if !sw.started {
		if _, err := sw.w.WriteString(snapshotHeader); err != nil {
			return err
		}
		sw.started = true
	}

	for i := range sim.Particles {
		p := &sim.Particles[i]
		a, e, inc := Elements(sim, i)
		_, err := fmt.Fprintf(
			sw.w, "%.8g %d %.8g %.10g %.8g %.8g %.10g %.10g %.10g %.10g %.10g %.10g\n",
			sim.T, p.Id, p.Mass, a, e, inc,
			p.Xs[0], p.Xs[1], p.Xs[2], p.Vs[0], p.Vs[1], p.Vs[2],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (sw *SnapshotWriter) Flush() error { return sw.w.Flush() }

// Elements returns the semimajor axis, eccentricity and inclination of
// particle i relative to particle 0, or NaNs if they are undefined.
func Elements(sim *nbody.Simulation, i int) (a, e, inc float64) {
	nan := math.NaN()
	if i == 0 || len(sim.Particles) < 2 {
		return nan, nan, nan
	}
	p, primary := &sim.Particles[i], &sim.Particles[0]
	o, err := orbit.FromState(
		sim.G, p.Mass, primary.Mass, p.Xs.Sub(primary.Xs), p.Vs.Sub(primary.Vs),
	)
	if err != nil {
		return nan, nan, nan
	}
	return o.A, o.E, o.Inc
}

// History records the semimajor axis of every particle over a run.
type History struct {
	Ts  []float64
	Ids []int64
	As  [][]float64
}

// Append records the current state of sim. The particle set must not change
// between calls.
func (h *History) Append(sim *nbody.Simulation) {
	if len(h.As) == 0 {
		h.As = make([][]float64, len(sim.Particles))
		h.Ids = make([]int64, len(sim.Particles))
		for i := range sim.Particles {
			h.Ids[i] = sim.Particles[i].Id
		}
	}

	h.Ts = append(h.Ts, sim.T)
	for i := range sim.Particles {
		a, _, _ := Elements(sim, i)
		h.As[i] = append(h.As[i], a)
	}
}
