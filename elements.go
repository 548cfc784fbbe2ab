// Package orbitalmech is a stateless orbital mechanics kernel: anomaly angle
// conversions, classical orbital element and Cartesian state interconversion
// across all orbit regimes, and the dominant non-Keplerian perturbation models
// (atmospheric drag, zonal gravity harmonics, solar radiation pressure).
//
// Every operation is a pure function over caller-owned values, so everything
// here is safe for concurrent use. Domain violations return the IEEE NaN
// sentinel (or a NaN vector) and report through the diagnostic logger; callers
// branch on finiteness, never on the log.
package orbitalmech

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e1                          // 20 km
	// geomε separates the parabolic and rectilinear regimes when classifying a
	// Cartesian state.
	geomε = 1e-12
)

// OrbitRegime identifies which of the five orbit regimes an element record
// encodes. Exactly one regime applies to a record at any time.
type OrbitRegime uint8

const (
	// RegimeCircular is a near-zero eccentricity orbit.
	RegimeCircular OrbitRegime = iota + 1
	// RegimeElliptic is a 2-D elliptic orbit (0 < e < 1, a > 0).
	RegimeElliptic
	// RegimeRectilinear is a 1-D elliptic orbit (e = 1, a > 0); the anomaly
	// field carries the eccentric anomaly.
	RegimeRectilinear
	// RegimeParabolic is a parabolic orbit, encoded as e = 1 with A holding
	// the negated periapsis radius.
	RegimeParabolic
	// RegimeHyperbolic is a hyperbolic orbit (e > 1, a < 0).
	RegimeHyperbolic
)

func (r OrbitRegime) String() string {
	switch r {
	case RegimeCircular:
		return "circular"
	case RegimeElliptic:
		return "elliptic"
	case RegimeRectilinear:
		return "rectilinear"
	case RegimeParabolic:
		return "parabolic"
	case RegimeHyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Elements defines an orbit via its classical orbital elements.
//
// The encoding is overloaded the same way across both conversion directions:
// a parabolic orbit is declared by E == 1 with A carrying the *negated*
// periapsis radius (the semi-major axis is undefined for a parabola), and a
// rectilinear orbit by E == 1 with A > 0, in which case Anom carries the
// eccentric (or hyperbolic) anomaly instead of the true anomaly. Use Regime
// to resolve the encoding explicitly.
type Elements struct {
	A    float64 // semi-major axis (km); -(periapsis radius) for parabolic orbits
	E    float64 // eccentricity
	I    float64 // inclination (rad)
	RAAN float64 // right ascension of the ascending node (rad)
	ArgP float64 // argument of periapsis (rad)
	Anom float64 // true anomaly (rad); eccentric or hyperbolic anomaly when rectilinear
}

// Regime returns the orbit regime this record encodes.
func (el Elements) Regime() OrbitRegime {
	switch {
	case el.E == 1 && el.A > 0:
		return RegimeRectilinear
	case el.E == 1:
		return RegimeParabolic
	case el.E > 1:
		return RegimeHyperbolic
	case el.E < eccentricityε:
		return RegimeCircular
	default:
		return RegimeElliptic
	}
}

// SemiParameter returns the semi-latus rectum, honoring the parabolic
// convention where A carries the negated periapsis radius.
func (el Elements) SemiParameter() float64 {
	if el.Regime() == RegimeParabolic {
		return 2 * -el.A
	}
	return el.A * (1 - el.E*el.E)
}

// Energyξ returns the specific mechanical energy ξ for the given gravitational
// parameter μ (km^3/s^2).
func (el Elements) Energyξ(μ float64) float64 {
	return -μ / (2 * el.A)
}

// Apoapsis returns the apoapsis radius.
func (el Elements) Apoapsis() float64 {
	return el.A * (1 + el.E)
}

// Periapsis returns the periapsis radius.
func (el Elements) Periapsis() float64 {
	return el.A * (1 - el.E)
}

// ArgLatitudeU returns the argument of latitude.
func (el Elements) ArgLatitudeU() float64 {
	return math.Mod(el.Anom+el.ArgP, 2*math.Pi)
}

// Tildeω returns the longitude of periapsis.
func (el Elements) Tildeω() float64 {
	return math.Mod(el.ArgP+el.RAAN, 2*math.Pi)
}

// TrueLongλ returns the *approximate* true longitude (cf. Vallado page 103).
// NOTE: One should only need this for equatorial orbits.
func (el Elements) TrueLongλ() float64 {
	return math.Mod(el.ArgP+el.RAAN+el.Anom, 2*math.Pi)
}

// Period returns the orbital period for the given gravitational parameter.
// Only meaningful for elliptic orbits.
func (el Elements) Period(μ float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(el.A, 3)/μ)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// String implements the stringer interface.
func (el Elements) String() string {
	if el.E < eccentricityε {
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f u=%.3f", el.A, el.E, Rad2deg(el.I), Rad2deg(el.RAAN), Rad2deg(el.ArgLatitudeU()))
	}
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", el.A, el.E, Rad2deg(el.I), Rad2deg(el.RAAN), Rad2deg(el.ArgP), Rad2deg(el.Anom))
}

// Equals returns whether two element sets describe the same orbit with free
// anomaly. Use StrictlyEquals to also check the anomaly.
func (el Elements) Equals(o Elements) (bool, error) {
	if !floats.EqualWithinAbs(el.A, o.A, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(el.E, o.E, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(el.I, o.I, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !floats.EqualWithinAbs(mod2pi(el.RAAN), mod2pi(o.RAAN), angleε) {
		return false, errors.New("RAAN invalid")
	}
	if el.E < eccentricityε {
		// Circular orbit: ω alone is ill-defined, compare the argument of latitude.
		if !floats.EqualWithinAbs(mod2pi(el.ArgLatitudeU()), mod2pi(o.ArgLatitudeU()), angleε) {
			return false, errors.New("argument of latitude invalid")
		}
	} else if !floats.EqualWithinAbs(mod2pi(el.ArgP), mod2pi(o.ArgP), angleε) {
		return false, errors.New("argument of periapsis invalid")
	}
	return true, nil
}

// StrictlyEquals returns whether two element sets are identical.
func (el Elements) StrictlyEquals(o Elements) (bool, error) {
	if el.E > eccentricityε && !floats.EqualWithinAbs(mod2pi(el.Anom), mod2pi(o.Anom), angleε) {
		return false, errors.New("anomaly invalid")
	}
	return el.Equals(o)
}

// Radii2ae returns the semi major axis and the eccentricity from the radii.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
