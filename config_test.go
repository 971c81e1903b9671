package planetpos

import "testing"

func TestConfigDefaults(t *testing.T) {
	// Without PLANETPOS_CONFIG the built-in defaults must apply.
	t.Setenv("PLANETPOS_CONFIG", "")
	cfg := pposConfig()
	if cfg.tolerance != defaultKeplerTolerance {
		t.Fatalf("tolerance %g != %g", cfg.tolerance, defaultKeplerTolerance)
	}
	if cfg.maxIters != defaultKeplerMaxIters {
		t.Fatalf("max iterations %d != %d", cfg.maxIters, defaultKeplerMaxIters)
	}
}
