package orbitalmech

import "math"

// anomalyε is the Newton-Raphson step tolerance of the anomaly solvers.
const anomalyε = 1e-13

// maxAnomalyIter caps the solver iterations; past it the last estimate is
// returned with a convergence failure.
var maxAnomalyIter = 200

// EccToTrueAnomaly maps an eccentric anomaly angle into the corresponding true
// anomaly angle. The orbit must be circular or non-rectilinear elliptic
// (0 <= e < 1). The half-angle form keeps the mapping well conditioned near
// f = π. Returns NaN when e is out of range.
func EccToTrueAnomaly(Ecc, e float64) float64 {
	if e < 0 || e >= 1 {
		diag("EccToTrueAnomaly", "e", e, "valid", "0 <= e < 1")
		return math.NaN()
	}
	sE, cE := math.Sincos(Ecc / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE)
}

// TrueToEccAnomaly maps a true anomaly angle into the corresponding eccentric
// anomaly angle (0 <= e < 1). Returns NaN when e is out of range.
func TrueToEccAnomaly(f, e float64) float64 {
	if e < 0 || e >= 1 {
		diag("TrueToEccAnomaly", "e", e, "valid", "0 <= e < 1")
		return math.NaN()
	}
	sf, cf := math.Sincos(f / 2)
	return 2 * math.Atan2(math.Sqrt(1-e)*sf, math.Sqrt(1+e)*cf)
}

// EccToMeanAnomaly maps an eccentric anomaly angle into the corresponding mean
// elliptic anomaly angle through Kepler's equation (0 <= e < 1).
// Returns NaN when e is out of range.
func EccToMeanAnomaly(Ecc, e float64) float64 {
	if e < 0 || e >= 1 {
		diag("EccToMeanAnomaly", "e", e, "valid", "0 <= e < 1")
		return math.NaN()
	}
	return Ecc - e*math.Sin(Ecc)
}

// MeanToEccAnomaly solves Kepler's equation for the eccentric anomaly via
// Newton-Raphson, starting from the mean anomaly itself. The iteration stops
// once the correction step falls below 1e-13 or after 200 iterations; in the
// latter case the last estimate is returned with converged set to false.
// Returns NaN when e is out of range.
func MeanToEccAnomaly(M, e float64) (Ecc float64, converged bool) {
	if e < 0 || e >= 1 {
		diag("MeanToEccAnomaly", "e", e, "valid", "0 <= e < 1")
		return math.NaN(), false
	}
	Ecc = M
	dE := 10 * anomalyε
	for iter := 0; math.Abs(dE) > anomalyε; iter++ {
		if iter >= maxAnomalyIter {
			diag("MeanToEccAnomaly", "err", "no convergence", "M", M, "e", e)
			return Ecc, false
		}
		dE = (Ecc - e*math.Sin(Ecc) - M) / (1 - e*math.Cos(Ecc))
		Ecc -= dE
	}
	return Ecc, true
}

// HypToTrueAnomaly maps a hyperbolic anomaly angle into the corresponding true
// anomaly angle (e > 1). Returns NaN when e is out of range.
func HypToTrueAnomaly(H, e float64) float64 {
	if e <= 1 {
		diag("HypToTrueAnomaly", "e", e, "valid", "e > 1")
		return math.NaN()
	}
	return 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(H/2))
}

// TrueToHypAnomaly maps a true anomaly angle into the corresponding hyperbolic
// anomaly angle (e > 1). Returns NaN when e is out of range.
func TrueToHypAnomaly(f, e float64) float64 {
	if e <= 1 {
		diag("TrueToHypAnomaly", "e", e, "valid", "e > 1")
		return math.NaN()
	}
	return 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(f/2))
}

// HypToMeanAnomaly maps a hyperbolic anomaly angle into the corresponding mean
// hyperbolic anomaly angle (e > 1). Returns NaN when e is out of range.
func HypToMeanAnomaly(H, e float64) float64 {
	if e <= 1 {
		diag("HypToMeanAnomaly", "e", e, "valid", "e > 1")
		return math.NaN()
	}
	return e*math.Sinh(H) - H
}

// MeanToHypAnomaly solves the hyperbolic Kepler equation for the hyperbolic
// anomaly via Newton-Raphson with the same convergence contract as
// MeanToEccAnomaly. Returns NaN when e is out of range.
func MeanToHypAnomaly(N, e float64) (H float64, converged bool) {
	if e <= 1 {
		diag("MeanToHypAnomaly", "e", e, "valid", "e > 1")
		return math.NaN(), false
	}
	H = N
	dH := 10 * anomalyε
	for iter := 0; math.Abs(dH) > anomalyε; iter++ {
		if iter >= maxAnomalyIter {
			diag("MeanToHypAnomaly", "err", "no convergence", "N", N, "e", e)
			return H, false
		}
		dH = (e*math.Sinh(H) - H - N) / (e*math.Cosh(H) - 1)
		H -= dH
	}
	return H, true
}
