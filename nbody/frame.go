package nbody

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/discedge/geom"
)

// Coordinates selects the reference body an effect measures relative
// states against.
type Coordinates int

const (
	// CoordinatesJacobi measures each particle against the centre of mass of
	// all particles interior to it in the particle ordering.
	CoordinatesJacobi Coordinates = iota
	// CoordinatesBarycentric measures every particle against the barycentre.
	CoordinatesBarycentric
	// CoordinatesParticle measures every particle against a single primary.
	CoordinatesParticle
)

var coordinateNames = []string{"Jacobi", "Barycentric", "Particle"}

func (c Coordinates) String() string {
	if c < 0 || int(c) >= len(coordinateNames) {
		return fmt.Sprintf("Coordinates(%d)", int(c))
	}
	return coordinateNames[c]
}

// Valid returns true if c is one of the known coordinate systems.
func (c Coordinates) Valid() bool { return c >= 0 && int(c) < len(coordinateNames) }

// ParseCoordinates parses a coordinate system name, ignoring case and
// surrounding whitespace.
func ParseCoordinates(s string) (Coordinates, error) {
	name := strings.ToLower(strings.Trim(s, " \t"))
	for i, cn := range coordinateNames {
		if name == strings.ToLower(cn) {
			return Coordinates(i), nil
		}
	}
	return 0, fmt.Errorf(
		"Coordinates must be one of [%s]. '%s' is not recognized.",
		strings.Join(coordinateNames, " | "), s,
	)
}

// PairForce computes the acceleration on particle i, p, relative to the
// reference body source. Neither particle may be modified.
type PairForce func(sim *Simulation, i int, p, source *Particle) geom.Vec

// ApplyFrameForce evaluates force for every particle in sim against the
// reference body selected by coords and adds the result to acc. primary is
// the index of the reference particle and is only used for
// CoordinatesParticle.
//
// If backReactions is true, the opposite acceleration, weighted by the mass
// ratio of the particle to the reference body, is applied to the particles
// that make up the reference body so that total momentum is unchanged.
// Reference bodies without mass receive no back reaction.
func ApplyFrameForce(
	sim *Simulation, coords Coordinates, backReactions bool, primary int,
	force PairForce, acc []geom.Vec,
) {
	ps := sim.Particles
	if len(acc) != len(ps) {
		panic(fmt.Sprintf(
			"Acceleration buffer has length %d, but there are %d particles.",
			len(acc), len(ps),
		))
	}
	if len(ps) == 0 {
		return
	}

	switch coords {
	case CoordinatesJacobi:
		com := ps[0]
		for i := 1; i < len(ps); i++ {
			p := &ps[i]
			a := force(sim, i, p, &com)
			acc[i] = acc[i].Add(a)

			if backReactions && com.Mass > 0 {
				ratio := p.Mass / com.Mass
				for j := 0; j < i; j++ {
					acc[j].AddScaled(-ratio, a)
				}
			}
			com = comOfPair(com, p)
		}

	case CoordinatesBarycentric:
		com := COM(ps)
		for i := range ps {
			p := &ps[i]
			a := force(sim, i, p, &com)
			acc[i] = acc[i].Add(a)

			if backReactions && com.Mass > 0 {
				ratio := p.Mass / com.Mass
				for j := range ps {
					acc[j].AddScaled(-ratio, a)
				}
			}
		}

	case CoordinatesParticle:
		if primary < 0 || primary >= len(ps) {
			panic(fmt.Sprintf(
				"Primary index %d is out of range for %d particles.",
				primary, len(ps),
			))
		}
		src := ps[primary]
		for i := range ps {
			if i == primary {
				continue
			}
			p := &ps[i]
			a := force(sim, i, p, &src)
			acc[i] = acc[i].Add(a)

			if backReactions && src.Mass > 0 {
				acc[primary].AddScaled(-p.Mass/src.Mass, a)
			}
		}

	default:
		panic(fmt.Sprintf("Unrecognized coordinate system %v.", coords))
	}
}
