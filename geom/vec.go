/*package geom contains the vector and rotation routines used for working with
particle states.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Add returns v + u.
func (v Vec) Add(u Vec) Vec { return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }

// Sub returns v - u.
func (v Vec) Sub(u Vec) Vec { return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Scale returns k * v.
func (v Vec) Scale(k float64) Vec { return Vec{k * v[0], k * v[1], k * v[2]} }

// Dot returns the inner product of v and u.
func (v Vec) Dot(u Vec) float64 { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }

// Cross returns v x u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Norm2 returns the squared Euclidean norm of v.
func (v Vec) Norm2() float64 { return v.Dot(v) }

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// AddScaled increments v by k * u in place. It is the accumulator form used
// by force loops.
func (v *Vec) AddScaled(k float64, u Vec) {
	v[0] += k * u[0]
	v[1] += k * u[1]
	v[2] += k * u[2]
}

// EpsEq returns true if every component of v and u differ by at most eps.
func (v Vec) EpsEq(u Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v[i]-u[i]) > eps {
			return false
		}
	}
	return true
}
