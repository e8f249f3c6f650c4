package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/discedge/geom"
	"github.com/phil-mansfield/discedge/migrate"
	"github.com/phil-mansfield/discedge/nbody"
)

// Column layout of particle files. See ExampleParticlesFile.
const (
	mCol = iota
	xCol
	yCol
	zCol
	vxCol
	vyCol
	vzCol
	tauACol
	tauECol
	tauIncCol
	particleCols
)

// ReadParticles reads initial conditions from a text table. Particle Ids are
// their row indices. The returned timescales are indexed like the particles.
func ReadParticles(
	fname string,
) (ps []nbody.Particle, ts []migrate.Timescales, err error) {
	colIdxs := make([]int, particleCols)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, nil, err
	}
	return particlesFromColumns(fname, cols)
}

func particlesFromColumns(
	fname string, cols [][]float64,
) ([]nbody.Particle, []migrate.Timescales, error) {
	if len(cols) != particleCols {
		return nil, nil, fmt.Errorf(
			"Particle file '%s' must have %d columns, but %d were read.",
			fname, particleCols, len(cols),
		)
	}
	n := len(cols[mCol])
	if n == 0 {
		return nil, nil, fmt.Errorf("Particle file '%s' is empty.", fname)
	}

	ps := make([]nbody.Particle, n)
	ts := make([]migrate.Timescales, n)
	for i := range ps {
		m := cols[mCol][i]
		if m < 0 {
			return nil, nil, fmt.Errorf(
				"Particle %d in '%s' has negative mass %g.", i, fname, m,
			)
		}

		ps[i] = nbody.Particle{
			Xs:   geom.Vec{cols[xCol][i], cols[yCol][i], cols[zCol][i]},
			Vs:   geom.Vec{cols[vxCol][i], cols[vyCol][i], cols[vzCol][i]},
			Mass: m,
			Id:   int64(i),
		}
		ts[i] = migrate.Timescales{
			TauA:   migrate.Tau(cols[tauACol][i]),
			TauE:   migrate.Tau(cols[tauECol][i]),
			TauInc: migrate.Tau(cols[tauIncCol][i]),
		}
		if err := ts[i].Validate(); err != nil {
			return nil, nil, fmt.Errorf(
				"Particle %d in '%s': %s", i, fname, err.Error(),
			)
		}
	}

	return ps, ts, nil
}
