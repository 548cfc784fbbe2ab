package orbitalmech

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

// ppMu guards the lazy VSOP87 ephemeris cache on the package-level planet
// definitions.
var ppMu sync.Mutex

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object and the gravity field constants
// used by the perturbation models.
type CelestialObject struct {
	Name   string
	Radius float64 // equatorial radius (km)
	a      float64 // heliocentric semi-major axis (km)
	μ      float64 // gravitational parameter (km^3/s^2)
	SOI    float64 // sphere of influence wrt the Sun (km)
	J2     float64
	J3     float64
	J4     float64
	J5     float64
	J6     float64
	PP     *planetposition.V87Planet
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the zonal harmonic J_n factor for the provided n.
// Degrees 2 through 6 are supported.
func (c CelestialObject) J(n uint8) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	case 5:
		return c.J5
	case 6:
		return c.J6
	default:
		return 0.0
	}
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI && c.J2 == b.J2
}

// HelioState returns the heliocentric position and velocity of this planet at
// a given epoch in equatorial coordinates, through the VSOP87 theory. The
// VSOP87 data directory must be enabled in the configuration (see omConfig);
// panics otherwise, as there is no other ephemeris source in this kernel.
func (c *CelestialObject) HelioState(dt time.Time) (R, V []float64) {
	if c.Name == "Sun" {
		return []float64{0, 0, 0}, []float64{0, 0, 0}
	}
	if !omConfig().VSOP87 {
		panic("VSOP87 is disabled: enable it in conf.toml to compute heliocentric states")
	}
	var l, b, r float64
	if c.Name == "Pluto" {
		// Special case in Sonia Keys' Meeus.
		lA, bA, rA := pluto.Heliocentric(julian.TimeToJD(dt))
		l, b, r = lA.Rad(), bA.Rad(), rA
	} else {
		lA, bA, rA := c.vsop87().Position2000(julian.TimeToJD(dt))
		l, b, r = lA.Rad(), bA.Rad(), rA
	}
	r *= AU
	v := math.Sqrt(2*Sun.μ/r - Sun.μ/c.a)
	R, V = make([]float64, 3), make([]float64, 3)
	sB, cB := math.Sincos(b)
	sL, cL := math.Sincos(l)
	R[0] = r * cB * cL
	R[1] = r * cB * sL
	R[2] = r * sB
	// Direction of the velocity vector.
	vDir := unit(cross(R, []float64{0, 0, -1}))
	for i := 0; i < 3; i++ {
		V[i] = v * vDir[i]
	}
	return R, V
}

// vsop87 returns the VSOP87 ephemeris for this planet, loading it on first
// use. Safe for concurrent use: the ephemeris file is loaded at most once per
// object.
func (c *CelestialObject) vsop87() *planetposition.V87Planet {
	ppMu.Lock()
	defer ppMu.Unlock()
	if c.PP != nil {
		return c.PP
	}
	var vsopPosition int
	switch c.Name {
	case "Mercury":
		vsopPosition = 1
	case "Venus":
		vsopPosition = 2
	case "Earth":
		vsopPosition = 3
	case "Mars":
		vsopPosition = 4
	case "Jupiter":
		vsopPosition = 5
	case "Saturn":
		vsopPosition = 6
	case "Uranus":
		vsopPosition = 7
	default:
		panic(fmt.Errorf("unknown object: %s", c.Name))
	}
	planet, err := planetposition.LoadPlanetPath(vsopPosition-1, omConfig().VSOP87Dir)
	if err != nil {
		panic(fmt.Errorf("could not load planet number %d: %s", vsopPosition, err))
	}
	c.PP = planet
	return c.PP
}

// SunVectorAU returns the Sun-to-planet position vector at the given epoch in
// astronomical units, in the form SolarRad expects.
func (c *CelestialObject) SunVectorAU(dt time.Time) []float64 {
	R, _ := c.HelioState(dt)
	return []float64{R[0] / AU, R[1] / AU, R[2] / AU}
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Sun is the central star.
var Sun = CelestialObject{"Sun", 695700, -1, 1.32712440017987e11, -1, 0, 0, 0, 0, 0, nil}

// Venus is the second planet.
var Venus = CelestialObject{"Venus", 6051.8, 108208601, 3.24858599e5, 0.616e6, 0.000027, 0, 0, 0, 0, nil}

// Earth is the default central body of the drag and zonal harmonic models.
// Zonal values J2 through J6 from Vallado.
var Earth = CelestialObject{"Earth", 6378.1363, 149598023, 3.98600433e5, 924645.0, 1082.6269e-6, -2.5324e-6, -1.6204e-6, -0.2276e-6, 0.5396e-6, nil}

// Mars is the fourth planet.
var Mars = CelestialObject{"Mars", 3396.19, 227939282.5616, 4.28283100e4, 576000, 1964e-6, 36e-6, -18e-6, 0, 0, nil}

// Jupiter is the fifth planet.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 778298361, 1.266865361e8, 48.2e6, 0.01475, 0, -0.00058, 0, 0, nil}

// Saturn is the sixth planet.
// TODO: SOI
var Saturn = CelestialObject{"Saturn", 60268.0, 1429394133, 3.7931208e7, 0, 0.01645, 0, -0.001, 0, 0, nil}

// Uranus is the seventh planet.
// TODO: SOI
var Uranus = CelestialObject{"Uranus", 25559.0, 2875038615, 5.7939513e6, 0, 0.012, 0, 0, 0, 0, nil}

// Pluto is not a planet anymore.
// WARNING: Pluto SOI is not defined.
var Pluto = CelestialObject{"Pluto", 1151.0, 5915799000, 9. * 1e2, 1, 0, 0, 0, 0, 0, nil}
