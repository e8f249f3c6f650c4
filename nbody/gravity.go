package nbody

import (
	"math"

	"github.com/phil-mansfield/discedge/geom"
)

// Gravity adds the direct-sum Newtonian accelerations between all pairs of
// particles to acc. Massless particles feel gravity but do not source it.
func Gravity(G float64, ps []Particle, acc []geom.Vec) {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			mi, mj := ps[i].Mass, ps[j].Mass
			if mi == 0 && mj == 0 {
				continue
			}

			d := ps[j].Xs.Sub(ps[i].Xs)
			r2 := d.Norm2()
			if r2 == 0 {
				continue
			}
			inv3 := G / (r2 * math.Sqrt(r2))

			acc[i].AddScaled(mj*inv3, d)
			acc[j].AddScaled(-mi*inv3, d)
		}
	}
}
