package orbitalmech

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  = _omconfig{Diagnostics: true}
)

// _omconfig is a "hidden" struct, just use `omConfig`
type _omconfig struct {
	VSOP87      bool
	VSOP87Dir   string
	Diagnostics bool
}

// omConfig returns the orbitalmech configuration, loading it on first use.
// Configuration is optional: when the ORBITALMECH_CONFIG environment variable
// is not set, the defaults apply (diagnostics enabled, VSOP87 disabled).
// The load is guarded so concurrent first uses observe a single load.
func omConfig() _omconfig {
	cfgOnce.Do(loadConfig)
	return config
}

func loadConfig() {
	confPath := os.Getenv("ORBITALMECH_CONFIG")
	if confPath == "" {
		return
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	viper.SetDefault("diagnostics.enabled", true)
	config = _omconfig{
		VSOP87:      viper.GetBool("VSOP87.enabled"),
		VSOP87Dir:   viper.GetString("VSOP87.directory"),
		Diagnostics: viper.GetBool("diagnostics.enabled"),
	}
}
