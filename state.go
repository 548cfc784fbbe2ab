package orbitalmech

import "math"

// RV converts the orbital elements to inertial position and velocity vectors
// (km, km/s) about a body of gravitational parameter μ (km^3/s^2).
//
// All five regimes are handled: circular and elliptic directly, parabolic via
// the A = -rp convention, hyperbolic with a < 0, and rectilinear elliptic
// (E == 1, A > 0) where Anom is interpreted as the eccentric anomaly and the
// state lies along the line of apsides with the velocity sign following
// sin(Anom). This is a total function: no element record raises a fault.
func (el Elements) RV(μ float64) (R, V []float64) {
	if el.Regime() == RegimeRectilinear {
		Ecc := el.Anom
		r := el.A * (1 - el.E*math.Cos(Ecc))
		v := math.Sqrt(2*μ/r - μ/el.A)
		ir := PQW2ECI(el.I, el.ArgP, el.RAAN, []float64{1, 0, 0})
		vSign := v
		if math.Sin(Ecc) > 0 {
			vSign = -v
		}
		R = make([]float64, 3)
		V = make([]float64, 3)
		for j := 0; j < 3; j++ {
			R[j] = r * ir[j]
			V[j] = vSign * ir[j]
		}
		return R, V
	}
	p := el.SemiParameter()
	sinν, cosν := math.Sincos(el.Anom)
	r := p / (1 + el.E*cosν)
	R = PQW2ECI(el.I, el.ArgP, el.RAAN, []float64{r * cosν, r * sinν, 0})
	V = PQW2ECI(el.I, el.ArgP, el.RAAN, []float64{-math.Sqrt(μ/p) * sinν, math.Sqrt(μ/p) * (el.E + cosν), 0})
	return R, V
}

// ElementsFromRV computes the classical orbital elements from inertial
// position and velocity vectors (km, km/s) about a body of gravitational
// parameter μ (km^3/s^2).
//
// Degenerate geometry is resolved by tie-breaks rather than failure: a
// parabolic state (|2/r - v²/μ| below geomε) returns A = -rp with E forced to
// one; rectilinear motion (angular momentum below geomε) builds the undefined
// perifocal frame from whichever of the z or y axes is less parallel to the
// radial direction, and returns the eccentric or hyperbolic anomaly in Anom
// with a quadrant fix from the radial velocity sign; a circular state uses the
// radial direction for the undefined eccentricity vector. Output angles are
// normalized to [0, 2π).
func ElementsFromRV(μ float64, R, V []float64) Elements {
	var el Elements
	r := norm(R)
	ir := make([]float64, 3)
	for j := 0; j < 3; j++ {
		ir[j] = R[j] / r
	}

	hVec := cross(R, V)
	h := norm(hVec)

	// Eccentricity vector, scaled by μ.
	cVec := cross(V, hVec)
	for j := 0; j < 3; j++ {
		cVec[j] -= μ * ir[j]
	}
	el.E = norm(cVec) / μ

	ai := 2/r - dot(V, V)/μ
	if math.Abs(ai) > geomε {
		el.A = 1 / ai
	} else {
		// Parabolic: a is undefined, return the negated periapsis radius.
		rp := h * h / μ / 2
		el.A = -rp
		el.E = 1
	}

	var ih, ie, ip []float64
	if h < geomε {
		// Rectilinear motion: the perifocal frame is arbitrary about ir.
		ie = ir
		ihz := cross(ie, []float64{0, 0, 1})
		ihy := cross(ie, []float64{0, 1, 0})
		if norm(ihz) > norm(ihy) {
			ih = unit(ihz)
		} else {
			ih = unit(ihy)
		}
		ip = cross(ih, ie)
	} else {
		ih = unit(hVec)
		if math.Abs(el.E) > geomε {
			ie = unit(cVec)
		} else {
			// Circular: ie and ip are arbitrary in the orbit plane.
			ie = ir
		}
		ip = cross(ih, ie)
	}

	// 3-1-3 orbit plane orientation angles.
	el.RAAN = mod2pi(math.Atan2(ih[0], -ih[1]))
	el.I = math.Acos(ih[2])
	el.ArgP = mod2pi(math.Atan2(ie[2], ip[2]))

	if h < geomε {
		if ai > 0 {
			// Rectilinear elliptic: return the eccentric anomaly.
			Ecc := math.Acos(1 - r*ai)
			if dot(R, V) > 0 {
				Ecc = 2*math.Pi - Ecc
			}
			el.Anom = Ecc
		} else {
			// Rectilinear hyperbolic: return the hyperbolic anomaly.
			H := math.Acosh(1 - r*ai)
			if dot(R, V) < 0 {
				H = 2*math.Pi - H
			}
			el.Anom = H
		}
	} else {
		el.Anom = mod2pi(math.Atan2(dot(cross(ie, ir), ih), dot(ie, ir)))
	}

	return el
}
