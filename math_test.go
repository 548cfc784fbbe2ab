package orbitalmech

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if norm(v) != 5 {
		t.Fatalf("norm = %f", norm(v))
	}
	u := unit(v)
	if !floats.EqualWithinAbs(norm(u), 1, 1e-15) {
		t.Fatalf("unit vector not of unit norm: %+v", u)
	}
	if !floats.Equal(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of the zero vector must be the zero vector")
	}
}

func TestSign(t *testing.T) {
	if sign(10) != 1 || sign(-0.3) != -1 || sign(0) != 1 {
		t.Fatal("sign fails")
	}
}

func TestDotCross(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{-4, 5, -6}
	if dot(a, b) != 1*-4+2*5+3*-6 {
		t.Fatalf("dot product = %f", dot(a, b))
	}
	c := cross(a, b)
	// Orthogonal to both operands.
	if dot(c, a) != 0 || dot(c, b) != 0 {
		t.Fatalf("cross product not orthogonal: %+v", c)
	}
	if !floats.Equal(cross([]float64{1, 0, 0}, []float64{0, 1, 0}), []float64{0, 0, 1}) {
		t.Fatal("x cross y must be z")
	}
}

func TestMod2pi(t *testing.T) {
	for _, it := range []struct{ in, exp float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	} {
		if got := mod2pi(it.in); !floats.EqualWithinAbs(got, it.exp, 1e-14) {
			t.Fatalf("mod2pi(%f) = %f instead of %f", it.in, got, it.exp)
		}
	}
}

func TestSphericalCartesian(t *testing.T) {
	a := []float64{-352.274, 4521.06, 249.6}
	if !vectorsEqual(a, Spherical2Cartesian(Cartesian2Spherical(a))) {
		t.Fatal("Spherical2Cartesian o Cartesian2Spherical is not identity")
	}
	if !floats.Equal(Cartesian2Spherical([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("spherical coordinates of the origin must be zero")
	}
}

func TestDegRad(t *testing.T) {
	if !floats.EqualWithinAbs(Deg2rad(360), 0, 1e-15) {
		t.Fatal("360 degrees does not wrap to zero")
	}
	if !floats.EqualWithinAbs(Rad2deg(2*math.Pi), 0, 1e-15) {
		t.Fatal("2π does not wrap to zero")
	}
	if !floats.EqualWithinAbs(Rad2deg(math.Pi), 180, 1e-12) {
		t.Fatal("π is not 180 degrees")
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatal("negative degrees must wrap to positive radians")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatal("negative radians must wrap to positive degrees")
	}
}
