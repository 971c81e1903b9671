package planetpos

import "math"

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E via Newton-Raphson iteration. M is the mean anomaly in radians
// and e the eccentricity, 0 ≤ e < 1. A non-positive tol selects the
// configured default tolerance (1e-6 radians unless overridden).
//
// The stopping test compares the increment applied on the previous
// iteration, which is one step looser than testing the current one. The
// extra Newton step makes the result accurate to roughly tol squared.
func SolveKepler(M, e, tol float64) (float64, error) {
	cfg := pposConfig()
	if tol <= 0 {
		tol = cfg.tolerance
	}
	return solveKepler(M, e, tol, cfg.maxIters)
}

func solveKepler(M, e, tol float64, maxIters int) (float64, error) {
	diff := math.Inf(1)
	y := M + math.Sin(M)
	for iter := 0; math.Abs(diff) > tol; iter++ {
		if iter >= maxIters {
			return y, ConvergenceError{MeanAnomaly: M, Eccentricity: e, Tolerance: tol, Iterations: iter}
		}
		Δx := M - (y - e*math.Sin(y))
		Δy := Δx / (1 - e*math.Cos(y))
		y += Δy
		diff = Δy
	}
	return y, nil
}
