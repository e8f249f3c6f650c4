package geom

import (
	. "math"

	"github.com/phil-mansfield/discedge/math/mat"
)

// RotationX creates a matrix which rotates vectors by theta around the x
// axis.
func RotationX(theta float64) *mat.Matrix {
	return mat.NewMatrix([]float64{
		1, 0, 0,
		0, Cos(theta), -Sin(theta),
		0, Sin(theta), Cos(theta),
	}, 3, 3)
}

// RotationZ creates a matrix which rotates vectors by theta around the z
// axis.
func RotationZ(theta float64) *mat.Matrix {
	return mat.NewMatrix([]float64{
		Cos(theta), -Sin(theta), 0,
		Sin(theta), Cos(theta), 0,
		0, 0, 1,
	}, 3, 3)
}

// OrbitMatrix creates the rotation from an orbit's perifocal frame (x towards
// pericenter, z along the angular momentum) to the reference frame. Omega is
// the longitude of the ascending node, inc the inclination and peri the
// argument of pericenter. The three rotations are applied as
// Rz(Omega) Rx(inc) Rz(peri).
func OrbitMatrix(Omega, inc, peri float64) *mat.Matrix {
	return RotationZ(Omega).Mult(RotationX(inc)).Mult(RotationZ(peri))
}

// Rotate returns v rotated by the given 3 x 3 rotation matrix.
func (v Vec) Rotate(m *mat.Matrix) Vec {
	if m.Width != 3 || m.Height != 3 {
		panic("Rotation matrix must be 3 x 3.")
	}
	return Vec{
		m.Vals[0]*v[0] + m.Vals[1]*v[1] + m.Vals[2]*v[2],
		m.Vals[3]*v[0] + m.Vals[4]*v[1] + m.Vals[5]*v[2],
		m.Vals[6]*v[0] + m.Vals[7]*v[1] + m.Vals[8]*v[2],
	}
}
