package planetpos

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// eclipticObliquity is the mean obliquity of the ecliptic at J2000 in radians.
const eclipticObliquity = 23.43928 * deg2rad

// Perifocal2Ecliptic rotates a vector from the orbital-plane frame into
// heliocentric ecliptic coordinates, given the inclination i, argument of
// perihelion ω and longitude of the ascending node Ω (all in radians), via
// the 3-1-3 composition R3(-Ω)·R1(-i)·R3(-ω).
func Perifocal2Ecliptic(i, ω, Ω float64, v []float64) []float64 {
	var rot mat64.Dense
	rot.Mul(R3(-Ω), R1(-i))
	rot.Mul(&rot, R3(-ω))
	return MxV33(&rot, v)
}

// Ecliptic2ICRF rotates an ecliptic vector about the x axis by the J2000
// obliquity, into the equatorial ICRF frame.
func Ecliptic2ICRF(v []float64) []float64 {
	return MxV33(R1(-eclipticObliquity), v)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
