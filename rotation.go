package orbitalmech

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// R3R1R3 composes a 3-1-3 Euler rotation sequence, applied right to left.
func R3R1R3(θ1, θ2, θ3 float64) *mat64.Dense {
	var m mat64.Dense
	m.Mul(R1(θ2), R3(θ1))
	m.Mul(R3(θ3), &m)
	return &m
}

// PQW2ECI converts a given vector from the perifocal (PQW) frame to the
// inertial frame for the provided inclination, argument of periapsis and RAAN.
func PQW2ECI(i, ω, Ω float64, v []float64) []float64 {
	return MxV33(R3R1R3(-ω, -i, -Ω), v)
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
