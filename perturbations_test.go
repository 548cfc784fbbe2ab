package orbitalmech

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestAtmosphericDensity(t *testing.T) {
	// At the fit midpoint the polynomial reduces to its constant term.
	if !floats.EqualWithinRel(AtmosphericDensity(526.8), math.Pow(10, -12.575), 1e-12) {
		t.Fatalf("density at fit midpoint: %e", AtmosphericDensity(526.8))
	}
	// Exponential branch above 1000 km.
	if !floats.EqualWithinRel(AtmosphericDensity(1500), math.Pow(10, -7e-05*1500-14.464), 1e-12) {
		t.Fatalf("density at 1500 km: %e", AtmosphericDensity(1500))
	}
	// Density decreases with altitude over the asserted range.
	for _, alts := range [][2]float64{{150, 300}, {300, 600}, {600, 900}, {900, 1200}} {
		lo, hi := AtmosphericDensity(alts[0]), AtmosphericDensity(alts[1])
		if !(lo > hi) || hi <= 0 {
			t.Fatalf("density not decreasing between %g and %g km (%e, %e)", alts[0], alts[1], lo, hi)
		}
	}
}

func TestDebyeLength(t *testing.T) {
	SetDiagnosticLogger(nil)
	defer resetDiagnosticLogger()
	if got := DebyeLength(200); got != 5.64e-03 {
		t.Fatalf("first tabulated value not returned exactly: %e", got)
	}
	// Midpoint interpolation of the first interval.
	if !floats.EqualWithinAbs(DebyeLength(225), (5.64e-03+3.92e-03)/2, 1e-15) {
		t.Fatalf("interpolation at 225 km: %e", DebyeLength(225))
	}
	// Flat beyond 2000 km up to 30000 km.
	if DebyeLength(2000) != 3.96e-02 || DebyeLength(2500) != 3.96e-02 || DebyeLength(30000) != 3.96e-02 {
		t.Fatal("Debye length not clamped to the 2000 km value")
	}
	// Linear extrapolation between 30000 and 35000 km.
	if !floats.EqualWithinAbs(DebyeLength(32000), 0.1*32000-2999.7, 1e-9) {
		t.Fatalf("extrapolation at 32000 km: %f", DebyeLength(32000))
	}
	if !math.IsNaN(DebyeLength(199)) || !math.IsNaN(DebyeLength(35001)) {
		t.Fatal("out of range altitudes must return NaN")
	}
}

func TestAtmosphericDrag(t *testing.T) {
	SetDiagnosticLogger(nil)
	defer resetDiagnosticLogger()
	// Position inside the Earth reports a NaN vector.
	ad := AtmosphericDrag(2.2, 4, 500, []float64{Earth.Radius - 1, 0, 0}, []float64{0, 7.7, 0})
	for j := 0; j < 3; j++ {
		if !math.IsNaN(ad[j]) {
			t.Fatal("drag inside the Earth must be a NaN vector")
		}
	}
	// 400 km circular-ish case: drag opposes the velocity.
	R := []float64{Earth.Radius + 400, 0, 0}
	V := []float64{0, 7.7, 0}
	ad = AtmosphericDrag(2.2, 4, 500, R, V)
	if ad[0] != 0 || ad[2] != 0 {
		t.Fatalf("drag not along the velocity axis: %+v", ad)
	}
	ρ := AtmosphericDensity(400)
	exp := -0.5 * ρ * (2.2 * 4 / 500.) * math.Pow(7.7*1000, 2) / 1000
	if !floats.EqualWithinRel(ad[1], exp, 1e-12) {
		t.Fatalf("drag magnitude %e instead of %e", ad[1], exp)
	}
	if ad[1] >= 0 {
		t.Fatal("drag must oppose the velocity")
	}
}

func TestJPerturb(t *testing.T) {
	SetDiagnosticLogger(nil)
	defer resetDiagnosticLogger()
	for _, num := range []int{1, 7} {
		a := JPerturb([]float64{7000, 1000, 2000}, num)
		for j := 0; j < 3; j++ {
			if !math.IsNaN(a[j]) {
				t.Fatalf("num=%d must return a NaN vector", num)
			}
		}
	}
	R := []float64{7000, 1000, 2000}
	x, y, z := R[0], R[1], R[2]
	r := norm(R)
	// J2 term written out independently.
	kJ2 := -3. / 2. * Earth.J2 * (Earth.GM() / (r * r)) * math.Pow(Earth.Radius/r, 2)
	expJ2 := []float64{
		kJ2 * (1 - 5*math.Pow(z/r, 2)) * (x / r),
		kJ2 * (1 - 5*math.Pow(z/r, 2)) * (y / r),
		kJ2 * (3 - 5*math.Pow(z/r, 2)) * (z / r),
	}
	got2 := JPerturb(R, 2)
	for j := 0; j < 3; j++ {
		if !floats.EqualWithinRel(got2[j], expJ2[j], 1e-12) {
			t.Fatalf("J2 acceleration %+v instead of %+v", got2, expJ2)
		}
	}
	// J3 term written out independently: degree 3 must be the cumulative sum.
	kJ3 := 1. / 2. * Earth.J3 * (Earth.GM() / (r * r)) * math.Pow(Earth.Radius/r, 3)
	expJ3 := []float64{
		kJ3 * 5 * (7*math.Pow(z/r, 3) - 3*(z/r)) * (x / r),
		kJ3 * 5 * (7*math.Pow(z/r, 3) - 3*(z/r)) * (y / r),
		kJ3 * -3 * (10*math.Pow(z/r, 2) - (35./3.)*math.Pow(z/r, 4) - 1),
	}
	got3 := JPerturb(R, 3)
	for j := 0; j < 3; j++ {
		if !floats.EqualWithinRel(got3[j], expJ2[j]+expJ3[j], 1e-12) {
			t.Fatalf("J3 cumulative acceleration %+v instead of %+v", got3, []float64{expJ2[0] + expJ3[0], expJ2[1] + expJ3[1], expJ2[2] + expJ3[2]})
		}
	}
	// Each higher degree adds a new non-zero closed-form term.
	prev := got3
	for num := 4; num <= 6; num++ {
		cur := JPerturb(R, num)
		diff := make([]float64, 3)
		for j := 0; j < 3; j++ {
			if math.IsNaN(cur[j]) {
				t.Fatalf("num=%d: NaN acceleration", num)
			}
			diff[j] = cur[j] - prev[j]
		}
		if norm(diff) == 0 {
			t.Fatalf("degree %d added no contribution", num)
		}
		prev = cur
	}
}

func TestSolarRad(t *testing.T) {
	// Earth distance (1 AU) along the x axis.
	a1 := SolarRad(1, 100, []float64{1, 0, 0})
	exp := -1.3 * 1372.5398 / (100 * 2.997e8) / 1000
	if !floats.EqualWithinRel(a1[0], exp, 1e-12) || a1[1] != 0 || a1[2] != 0 {
		t.Fatalf("SRP at 1 AU: %+v", a1)
	}
	// The magnitude falls off with the square of the distance.
	a2 := SolarRad(1, 100, []float64{0, 2, 0})
	if !floats.EqualWithinRel(norm(a2), norm(a1)/4, 1e-12) {
		t.Fatalf("SRP at 2 AU: |a|=%e, expected %e", norm(a2), norm(a1)/4)
	}
	// Direction along the Sun-to-body line, pushing away from the Sun... with
	// the sign convention of the source data (opposite the input vector).
	if a2[1] >= 0 {
		t.Fatalf("SRP direction: %+v", a2)
	}
}

func TestPerturbationsAccel(t *testing.T) {
	R := []float64{6524.834, 6862.875, 6448.296}
	V := []float64{4.901327, 5.533756, -1.976341}

	// Empty perturbations contribute nothing.
	if !floats.Equal(Perturbations{}.Accel(R, V), []float64{0, 0, 0}) {
		t.Fatal("empty perturbations must return a zero vector")
	}

	// Arbitrary hook passes through.
	pertForce := []float64{1, 2, 3}
	perts := Perturbations{Arbitrary: func(R, V []float64) []float64 { return pertForce }}
	if !floats.Equal(pertForce, perts.Accel(R, V)) {
		t.Fatal("arbitrary perturbations fail")
	}

	// Enabled models sum.
	sun := []float64{1, 0, 0}
	perts = Perturbations{Jn: 3, SRP: &SRPConfig{Area: 1, Mass: 100, SunVec: sun}}
	jp := JPerturb(R, 3)
	srp := SolarRad(1, 100, sun)
	total := perts.Accel(R, V)
	for j := 0; j < 3; j++ {
		if !floats.EqualWithinAbs(total[j], jp[j]+srp[j], 1e-18) {
			t.Fatalf("accumulated perturbation %+v instead of %+v + %+v", total, jp, srp)
		}
	}
}
