package orbitalmech

import "math"

// Solar radiation pressure constants, from Earth Space and Planets Journal
// Vol. 51, 1999 pp. 979-986.
const (
	solarFlux        = 1372.5398 // W/m^2 at 1 AU
	lightSpeed       = 2.997e8   // m/s
	radPressureCoeff = 1.3
)

// Debye length versus altitude, tabulated every 50 km from 200 km to 2000 km.
// Values above 1000 km are highly speculative.
var (
	debyeAlt = []float64{200, 250, 300, 350, 400, 450, 500, 550,
		600, 650, 700, 750, 800, 850, 900, 950, 1000, 1050, 1100, 1150,
		1200, 1250, 1300, 1350, 1400, 1450, 1500, 1550, 1600, 1650, 1700,
		1750, 1800, 1850, 1900, 1950, 2000}
	debyeLen = []float64{5.64e-03, 3.92e-03, 3.24e-03, 3.59e-03,
		4.04e-03, 4.28e-03, 4.54e-03, 5.30e-03, 6.55e-03, 7.30e-03, 8.31e-03,
		8.38e-03, 8.45e-03, 9.84e-03, 1.22e-02, 1.37e-02, 1.59e-02, 1.75e-02,
		1.95e-02, 2.09e-02, 2.25e-02, 2.25e-02, 2.25e-02, 2.47e-02, 2.76e-02,
		2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 2.76e-02, 3.21e-02,
		3.96e-02, 3.96e-02, 3.96e-02, 3.96e-02, 3.96e-02}
)

// AtmosphericDensity returns the atmospheric density (kg/m^3) at the given
// altitude (km) above the Earth, from a curve fit of the U.S. Standard
// Atmosphere 1976 data: a scaled 6th order polynomial fit to the log of
// density below 1000 km, and a smooth exponential drop-off above. The fit
// extrapolates outside 100-1000 km but accuracy is only asserted inside.
func AtmosphericDensity(alt float64) float64 {
	if alt > 1000 {
		return math.Pow(10, -7e-05*alt-14.464)
	}
	val := (alt - 526.8000) / 292.8563
	logdensity := 0.34047*math.Pow(val, 6) - 0.5889*math.Pow(val, 5) - 0.5269*math.Pow(val, 4) +
		1.0036*math.Pow(val, 3) + 0.60713*math.Pow(val, 2) - 2.3024*val - 12.575
	return math.Pow(10, logdensity)
}

// DebyeLength returns the Debye length (m) at the given altitude (km).
// Tabulated values are interpolated linearly between 200 km and 2000 km, held
// flat from 2000 km to 30000 km, and extrapolated linearly up to 35000 km.
// Returns NaN outside [200, 35000] km.
func DebyeLength(alt float64) float64 {
	switch {
	case alt > 2000 && alt <= 30000:
		alt = 2000
	case alt > 30000 && alt <= 35000:
		return 0.1*alt - 2999.7
	case alt < 200 || alt > 35000:
		diag("DebyeLength", "alt", alt, "valid", "[200, 35000] km")
		return math.NaN()
	}
	i := 0
	for ; i < len(debyeAlt)-2; i++ {
		if debyeAlt[i+1] > alt {
			break
		}
	}
	a := (alt - debyeAlt[i]) / (debyeAlt[i+1] - debyeAlt[i])
	return debyeLen[i] + a*(debyeLen[i+1]-debyeLen[i])
}

// AtmosphericDrag returns the inertial drag acceleration vector (km/s^2) for a
// spacecraft of drag coefficient Cd, cross-sectional area A (m^2) and mass m
// (kg) at the given Earth-centered inertial position and velocity (km, km/s).
// Earth only. Returns a NaN vector when the position is inside the Earth.
func AtmosphericDrag(Cd, A, m float64, R, V []float64) []float64 {
	r := norm(R)
	v := norm(V)
	alt := r - Earth.Radius
	if alt <= 0 {
		diag("AtmosphericDrag", "r", r, "valid", "altitude above the Earth must be positive")
		return []float64{math.NaN(), math.NaN(), math.NaN()}
	}
	density := AtmosphericDensity(alt)
	// v is converted to m/s for the dynamic pressure, the result back to km/s^2.
	ad := -0.5 * density * (Cd * A / m) * math.Pow(v*1000, 2) / 1000
	advec := make([]float64, 3)
	for j := 0; j < 3; j++ {
		advec[j] = ad / v * V[j]
	}
	return advec
}

// JPerturb returns the total zonal harmonic perturbation acceleration (km/s^2)
// at the given Earth-centered position (km), accumulating the closed-form
// degree terms from J2 up to and including Jnum. num must be between 2 and 6:
// num=2 is J2 alone, num=3 is J2+J3, and so on. Returns a NaN vector when num
// is out of range.
func JPerturb(R []float64, num int) []float64 {
	if num < 2 || num > 6 {
		diag("JPerturb", "num", num, "valid", "2 <= num <= 6")
		return []float64{math.NaN(), math.NaN(), math.NaN()}
	}
	μ := Earth.μ
	req := Earth.Radius
	x, y, z := R[0], R[1], R[2]
	r := norm(R)
	zr := z / r
	ajtot := make([]float64, 3)
	// J2
	{
		k := -3. / 2. * Earth.J2 * (μ / (r * r)) * math.Pow(req/r, 2)
		ajtot[0] = k * (1 - 5*zr*zr) * (x / r)
		ajtot[1] = k * (1 - 5*zr*zr) * (y / r)
		ajtot[2] = k * (3 - 5*zr*zr) * (z / r)
	}
	if num >= 3 {
		k := 1. / 2. * Earth.J3 * (μ / (r * r)) * math.Pow(req/r, 3)
		ajtot[0] += k * 5 * (7*math.Pow(zr, 3) - 3*zr) * (x / r)
		ajtot[1] += k * 5 * (7*math.Pow(zr, 3) - 3*zr) * (y / r)
		ajtot[2] += k * -3 * (10*zr*zr - (35./3.)*math.Pow(zr, 4) - 1)
	}
	if num >= 4 {
		k := 5. / 8. * Earth.J4 * (μ / (r * r)) * math.Pow(req/r, 4)
		ajtot[0] += k * (3 - 42*zr*zr + 63*math.Pow(zr, 4)) * (x / r)
		ajtot[1] += k * (3 - 42*zr*zr + 63*math.Pow(zr, 4)) * (y / r)
		ajtot[2] += k * (15 - 70*zr*zr + 63*math.Pow(zr, 4)) * (z / r)
	}
	if num >= 5 {
		k := 1. / 8. * Earth.J5 * (μ / (r * r)) * math.Pow(req/r, 5)
		ajtot[0] += k * 3 * (35*zr - 210*math.Pow(zr, 3) + 231*math.Pow(zr, 5)) * (x / r)
		ajtot[1] += k * 3 * (35*zr - 210*math.Pow(zr, 3) + 231*math.Pow(zr, 5)) * (y / r)
		ajtot[2] += k * -(15 - 315*zr*zr + 945*math.Pow(zr, 4) - 693*math.Pow(zr, 6))
	}
	if num >= 6 {
		k := -1. / 16. * Earth.J6 * (μ / (r * r)) * math.Pow(req/r, 6)
		ajtot[0] += k * (35 - 945*zr*zr + 3465*math.Pow(zr, 4) - 3003*math.Pow(zr, 6)) * (x / r)
		ajtot[1] += k * (35 - 945*zr*zr + 3465*math.Pow(zr, 4) - 3003*math.Pow(zr, 6)) * (y / r)
		ajtot[2] += k * -(3003*math.Pow(zr, 6) - 4851*math.Pow(zr, 4) + 2205*zr*zr - 245) * (z / r)
	}
	return ajtot
}

// SolarRad returns the inertial solar radiation pressure acceleration vector
// (km/s^2) for a spacecraft of Sun-facing cross-sectional area A (m^2) and
// mass m (kg). sunvec is the position vector from the Sun to the orbiting
// planet in AU; the output vector components follow the same axes. The
// pressure falls off with the cube of the Sun distance in AU.
func SolarRad(A, m float64, sunvec []float64) []float64 {
	sundist := norm(sunvec)
	k := (-radPressureCoeff * A * solarFlux) / (m * lightSpeed * math.Pow(sundist, 3)) / 1000
	arvec := make([]float64, 3)
	for j := 0; j < 3; j++ {
		arvec[j] = k * sunvec[j]
	}
	return arvec
}

// DragConfig holds the spacecraft ballistic properties for the drag model.
type DragConfig struct {
	Cd   float64 // drag coefficient
	Area float64 // cross-sectional area (m^2)
	Mass float64 // mass (kg)
}

// SRPConfig holds the spacecraft properties and Sun geometry for the solar
// radiation pressure model.
type SRPConfig struct {
	Area   float64   // Sun-facing cross-sectional area (m^2)
	Mass   float64   // mass (kg)
	SunVec []float64 // Sun to orbiting planet vector (AU)
}

// Perturbations selects which perturbation models to accumulate.
type Perturbations struct {
	Jn        int                            // Zonal harmonics J2..Jn to apply (0 or 1 disables)
	Drag      *DragConfig                    // Atmospheric drag (nil disables)
	SRP       *SRPConfig                     // Solar radiation pressure (nil disables)
	Arbitrary func(R, V []float64) []float64 // Additional arbitrary perturbation.
}

func (p Perturbations) isEmpty() bool {
	return p.Jn <= 1 && p.Drag == nil && p.SRP == nil && p.Arbitrary == nil
}

// Accel returns the total perturbing acceleration vector (km/s^2) at the given
// inertial state. Each enabled model is evaluated independently and summed;
// the call retains no state.
func (p Perturbations) Accel(R, V []float64) []float64 {
	pert := make([]float64, 3)
	if p.isEmpty() {
		return pert
	}
	if p.Jn > 1 {
		for j, a := range JPerturb(R, p.Jn) {
			pert[j] += a
		}
	}
	if p.Drag != nil {
		for j, a := range AtmosphericDrag(p.Drag.Cd, p.Drag.Area, p.Drag.Mass, R, V) {
			pert[j] += a
		}
	}
	if p.SRP != nil {
		for j, a := range SolarRad(p.SRP.Area, p.SRP.Mass, p.SRP.SunVec) {
			pert[j] += a
		}
	}
	if p.Arbitrary != nil {
		for j, a := range p.Arbitrary(R, V) {
			pert[j] += a
		}
	}
	return pert
}
