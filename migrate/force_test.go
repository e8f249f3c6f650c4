package migrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/discedge/geom"
	"github.com/phil-mansfield/discedge/nbody"
)

var (
	star     = nbody.Particle{Mass: 1}
	testEdge = &Edge{Radius: 1, Width: 0.1}
)

func planet(x, v geom.Vec) nbody.Particle {
	return nbody.Particle{Xs: x, Vs: v, Mass: 1e-5, Id: 1}
}

func TestAccelTauAOnlyParallelToVelocity(t *testing.T) {
	table := []struct {
		x, v geom.Vec
	}{
		{geom.Vec{2, 0, 0}, geom.Vec{0, 0.7, 0}},        // outside the edge
		{geom.Vec{1, 0, 0}, geom.Vec{0, 1, 0.01}},       // inside the window
		{geom.Vec{0.3, 0.1, 0}, geom.Vec{-0.5, 1.8, 0}}, // inside the edge
	}

	ts := Timescales{TauA: Tau(-1e3)}
	for i, test := range table {
		p := planet(test.x, test.v)
		a, status := Accel(1, &p, &star, ts, testEdge)
		require.True(t, status.Trapped, "%d)", i+1)
		require.False(t, status.NoOrbit, "%d)", i+1)

		k := status.Trap / -1e3 / 2
		assert.True(t, a.EpsEq(test.v.Scale(k), 1e-15),
			"%d) a = %v is not %g * %v", i+1, a, k, test.v)
		assert.InDelta(t, 0, a.Cross(test.v).Norm(), 1e-15, "%d)", i+1)
		assert.Equal(t, Trap(status.A, testEdge.Width, testEdge.Radius), status.Trap)
	}
}

func TestAccelTrapDirection(t *testing.T) {
	ts := Timescales{TauA: Tau(-1e3)}

	// Outside the edge the drag opposes the velocity: inward migration.
	p := planet(geom.Vec{2, 0, 0}, geom.Vec{0, math.Sqrt(0.5), 0})
	a, _ := Accel(1, &p, &star, ts, testEdge)
	assert.True(t, a.Dot(p.Vs) < 0)

	// Inside the edge the trap reverses it: outward migration.
	p = planet(geom.Vec{0.5, 0, 0}, geom.Vec{0, math.Sqrt(2), 0})
	a, status := Accel(1, &p, &star, ts, testEdge)
	assert.True(t, a.Dot(p.Vs) > 0)
	assert.Equal(t, TrapMin, status.Trap)
}

func TestAccelChannelsOff(t *testing.T) {
	p := planet(geom.Vec{1, 0.2, 0.1}, geom.Vec{-0.1, 1, 0.05})

	a, status := Accel(1, &p, &star, Timescales{}, testEdge)
	assert.Equal(t, geom.Vec{}, a)
	assert.False(t, status.Trapped)

	// No edge: semimajor axis damping is disabled even with tau_a.
	a, status = Accel(1, &p, &star, Timescales{TauA: Tau(-10)}, nil)
	assert.Equal(t, geom.Vec{}, a)
	assert.False(t, status.Trapped)
	assert.False(t, status.NoOrbit)
}

func TestAccelAtRest(t *testing.T) {
	p := planet(geom.Vec{1, 0.5, -0.2}, geom.Vec{})
	a, status := Accel(1, &p, &star, Timescales{TauA: Tau(-50)}, testEdge)
	assert.Equal(t, geom.Vec{}, a)
	assert.True(t, status.Trapped)
}

func TestAccelCircularEccentricityDamping(t *testing.T) {
	p := planet(geom.Vec{1, 0, 0}, geom.Vec{0, 1, 0})
	ts := Timescales{TauE: Tau(100)}

	a, _ := Accel(1, &p, &star, ts, testEdge)
	assert.Equal(t, 0.0, a[0])
	assert.Equal(t, 0.0, a[1])
	assert.Equal(t, 0.0, a[2])
}

func TestAccelEccentricityInclination(t *testing.T) {
	p := planet(geom.Vec{3, 4, 0}, geom.Vec{1, 2, 0.5})

	a, _ := Accel(1, &p, &star, Timescales{TauE: Tau(10), TauInc: Tau(5)}, nil)
	assert.True(t, a.EpsEq(geom.Vec{0.264, 0.352, 0.2}, 1e-15), "a = %v", a)

	a, _ = Accel(1, &p, &star, Timescales{TauInc: Tau(5)}, nil)
	assert.Equal(t, geom.Vec{0, 0, 0.2}, a)

	a, _ = Accel(1, &p, &star, Timescales{TauE: Tau(10)}, nil)
	assert.True(t, a.EpsEq(geom.Vec{0.264, 0.352, 0}, 1e-15), "a = %v", a)
}

func TestAccelRelativeToSource(t *testing.T) {
	moving := nbody.Particle{
		Xs: geom.Vec{10, -3, 2}, Vs: geom.Vec{0.3, 0.1, -0.2}, Mass: 1,
	}
	dx, dv := geom.Vec{1.05, 0, 0}, geom.Vec{0, 0.9, 0.02}
	ts := Timescales{TauA: Tau(-100), TauE: Tau(-30), TauInc: Tau(-60)}

	p0 := planet(dx, dv)
	p1 := planet(moving.Xs.Add(dx), moving.Vs.Add(dv))

	a0, s0 := Accel(1, &p0, &star, ts, testEdge)
	a1, s1 := Accel(1, &p1, &moving, ts, testEdge)
	assert.True(t, a0.EpsEq(a1, 1e-12), "%v != %v", a0, a1)
	assert.InDelta(t, s0.A, s1.A, 1e-12)
}

func TestAccelNoOrbit(t *testing.T) {
	ts := Timescales{TauA: Tau(-100), TauInc: Tau(10)}

	// Massless reference body.
	ghost := nbody.Particle{}
	p := planet(geom.Vec{1, 0, 0}, geom.Vec{0, 1, 0.3})
	a, status := Accel(1, &p, &ghost, ts, testEdge)
	assert.True(t, status.NoOrbit)
	assert.False(t, status.Trapped)
	assert.True(t, a.EpsEq(geom.Vec{0, 0, 0.06}, 1e-15), "a = %v", a)

	// Coincident with the reference body.
	p = planet(geom.Vec{}, geom.Vec{0, 1, 0.3})
	ts.TauE = Tau(-5)
	a, status = Accel(1, &p, &star, ts, testEdge)
	assert.True(t, status.NoOrbit)
	for i := 0; i < 3; i++ {
		assert.False(t, math.IsNaN(a[i]), "a = %v", a)
	}
	assert.True(t, a.EpsEq(geom.Vec{0, 0, 0.06}, 1e-15), "a = %v", a)
}

func TestAccelDoesNotModify(t *testing.T) {
	p := planet(geom.Vec{1, 0.1, 0}, geom.Vec{0, 1, 0.1})
	src := star
	pCopy, srcCopy := p, src

	Accel(1, &p, &src, Timescales{Tau(-1), Tau(-2), Tau(-3)}, testEdge)
	assert.Equal(t, pCopy, p)
	assert.Equal(t, srcCopy, src)
}

func TestTimescale(t *testing.T) {
	assert.False(t, Timescale{}.IsSet())
	assert.True(t, math.IsInf(Timescale{}.Value(), 1))
	assert.False(t, Tau(0).IsSet())
	assert.False(t, Tau(math.Inf(1)).IsSet())
	assert.False(t, Tau(math.Inf(-1)).IsSet())
	assert.Equal(t, -3.0, Tau(-3).Value())
	assert.Equal(t, "unset", Tau(0).String())
	assert.Equal(t, "-3", Tau(-3).String())

	assert.False(t, Timescales{}.Any())
	assert.True(t, Timescales{TauInc: Tau(1)}.Any())
	assert.Error(t, Timescales{TauE: Tau(math.NaN())}.Validate())
	assert.NoError(t, Timescales{TauE: Tau(2)}.Validate())
}

func BenchmarkAccel(b *testing.B) {
	p := planet(geom.Vec{1.02, 0.1, 0.01}, geom.Vec{-0.1, 0.98, 0.01})
	ts := Timescales{Tau(-100), Tau(-30), Tau(-60)}
	for i := 0; i < b.N; i++ {
		Accel(1, &p, &star, ts, testEdge)
	}
}
