package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveForce(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveForce(false, true, 1)
	c.ObserveForce(false, true, -4.5)
	c.ObserveForce(true, false, 0)
	c.ObserveForce(false, false, -10)

	assert.Equal(t, 4.0, testutil.ToFloat64(c.Evaluations))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.InvalidOrbits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.TrapReversals))
}

func TestObserveStep(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveStep(0.5)
	c.ObserveStep(1.0)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SimTime))
}

func TestReregisterReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := NewCollector(reg)
	require.NoError(t, err)
	c2, err := NewCollector(reg)
	require.NoError(t, err)

	c1.ObserveStep(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(c2.Steps))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.ObserveForce(true, true, -1)
	c.ObserveStep(1)
	assert.NoError(t, c.WriteTextfile(filepath.Join(t.TempDir(), "none.prom")))
}

func TestWriteTextfile(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	c.ObserveForce(true, false, 0)

	fname := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, c.WriteTextfile(fname))

	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	text := string(b)
	assert.True(t, strings.Contains(text, "discedge_invalid_orbits_total 1"), text)
	assert.True(t, strings.Contains(text, "discedge_force_evaluations_total 1"), text)
}
