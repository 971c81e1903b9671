package planetpos

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	defaultKeplerTolerance = 1e-6
	defaultKeplerMaxIters  = 100
)

var (
	cfgOnce sync.Once
	config  = _pposconfig{tolerance: defaultKeplerTolerance, maxIters: defaultKeplerMaxIters}
)

// _pposconfig is a "hidden" struct, just use pposConfig.
type _pposconfig struct {
	tolerance float64
	maxIters  int
}

// pposConfig returns the solver configuration. A conf.toml in the directory
// named by the PLANETPOS_CONFIG environment variable may override the
// defaults with the keys kepler.tolerance and kepler.max_iterations; without
// one the built-in defaults stand.
func pposConfig() _pposconfig {
	cfgOnce.Do(func() {
		confPath := os.Getenv("PLANETPOS_CONFIG")
		if confPath == "" {
			return
		}
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing or unreadable file keeps the defaults.
			return
		}
		if tol := v.GetFloat64("kepler.tolerance"); tol > 0 {
			config.tolerance = tol
		}
		if iters := v.GetInt("kepler.max_iterations"); iters > 0 {
			config.maxIters = iters
		}
	})
	return config
}
