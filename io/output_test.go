package io

import (
	"bytes"
	"math"
	"strings"
	"testing"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/discedge/geom"
	"github.com/phil-mansfield/discedge/migrate"
	"github.com/phil-mansfield/discedge/nbody"
)

func testSim() *nbody.Simulation {
	return nbody.NewSimulation(1, 0.1, []nbody.Particle{
		{Mass: 1, Id: 0},
		{Xs: geom.Vec{2, 0, 0}, Vs: geom.Vec{0, math.Sqrt(0.5), 0}, Id: 7},
		{Xs: geom.Vec{5, 0, 0}, Vs: geom.Vec{0, 0, 0}, Mass: 1e-3, Id: 9},
	})
}

func TestSnapshotWriter(t *testing.T) {
	sim := testSim()
	buf := &bytes.Buffer{}
	sw := NewSnapshotWriter(buf)

	require.NoError(t, sw.Write(sim))
	sim.T = 0.5
	require.NoError(t, sw.Write(sim))
	require.NoError(t, sw.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+2*3)
	assert.Equal(t, strings.TrimSpace(snapshotHeader), lines[0])

	fields := strings.Fields(lines[2])
	require.Len(t, fields, 12)
	assert.Equal(t, "0", fields[0])
	assert.Equal(t, "7", fields[1])
	assert.Equal(t, "2", fields[3])
	assert.Equal(t, "2", fields[6])

	assert.Equal(t, "NaN", strings.Fields(lines[1])[3])
	assert.Equal(t, "0.5", strings.Fields(lines[4])[0])
}

func TestElements(t *testing.T) {
	sim := testSim()

	a, e, inc := Elements(sim, 1)
	assert.InDelta(t, 2, a, 1e-12)
	assert.InDelta(t, 0, e, 1e-12)
	assert.InDelta(t, 0, inc, 1e-12)

	a, _, _ = Elements(sim, 0)
	assert.True(t, math.IsNaN(a))

	sim.Particles[2].Xs = sim.Particles[0].Xs
	a, _, _ = Elements(sim, 2)
	assert.True(t, math.IsNaN(a))
}

func TestHistoryAndPlot(t *testing.T) {
	sim := testSim()
	h := &History{}

	err := PlotHistory("a.png", h, nil)
	assert.Error(t, err)

	h.Append(sim)
	sim.T = 1
	h.Append(sim)

	assert.Equal(t, []float64{0, 1}, h.Ts)
	assert.Equal(t, []int64{0, 7, 9}, h.Ids)
	require.Len(t, h.As, 3)
	assert.True(t, math.IsNaN(h.As[0][1]))
	assert.InDelta(t, 2, h.As[1][1], 1e-12)

	plt.Reset()
	assert.NoError(t, PlotHistory("a.png", h, &migrate.Edge{Radius: 1, Width: 0.1}))
	plt.Reset()
}

func TestFinite(t *testing.T) {
	xs, ys := finite(
		[]float64{0, 1, 2, 3},
		[]float64{1, math.NaN(), math.Inf(1), 4},
	)
	assert.Equal(t, []float64{0, 3}, xs)
	assert.Equal(t, []float64{1, 4}, ys)
}
