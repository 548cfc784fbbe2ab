package orbitalmech

import (
	"fmt"
	"math"
	"os"
	"sync"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

// resetDiagnosticLogger restores the default stderr diagnostic logger after a
// test has replaced or silenced it.
func resetDiagnosticLogger() {
	SetDiagnosticLogger(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)))
}

// resetConfig forces the next omConfig call to reload from the environment.
func resetConfig() {
	cfgOnce = sync.Once{}
	config = _omconfig{Diagnostics: true}
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinRel(a[i], b[i], 1e-3) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal modulo 2π.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff < angleε || diff > 2*math.Pi-angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", math.Abs(Rad2deg(diff)))
}
