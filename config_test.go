package orbitalmech

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	prev, hadPrev := os.LookupEnv("ORBITALMECH_CONFIG")
	os.Unsetenv("ORBITALMECH_CONFIG")
	resetConfig()
	defer func() {
		if hadPrev {
			os.Setenv("ORBITALMECH_CONFIG", prev)
		}
		resetConfig()
	}()
	cfg := omConfig()
	if !cfg.Diagnostics {
		t.Fatal("diagnostics must default to enabled")
	}
	if cfg.VSOP87 || cfg.VSOP87Dir != "" {
		t.Fatal("VSOP87 must default to disabled")
	}
	// The load only happens once.
	if omConfig() != cfg {
		t.Fatal("configuration not cached")
	}
}

func TestConfigMissingFile(t *testing.T) {
	prev, hadPrev := os.LookupEnv("ORBITALMECH_CONFIG")
	os.Setenv("ORBITALMECH_CONFIG", "/nonexistent/orbitalmech")
	resetConfig()
	defer func() {
		if hadPrev {
			os.Setenv("ORBITALMECH_CONFIG", prev)
		} else {
			os.Unsetenv("ORBITALMECH_CONFIG")
		}
		resetConfig()
	}()
	assertPanic(t, func() {
		omConfig()
	})
}
