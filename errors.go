package planetpos

import "fmt"

// InvalidPlanetError reports a planet reference which does not resolve to
// any of the eight major planets. Index is -1 when the lookup was by name.
type InvalidPlanetError struct {
	Index int
	Name  string
}

func (e InvalidPlanetError) Error() string {
	if e.Index == -1 {
		return fmt.Sprintf("planetpos: unknown planet %q (expected Mercury through Neptune)", e.Name)
	}
	return fmt.Sprintf("planetpos: planet index %d outside [0,7] (0-indexed, 0 = Mercury)", e.Index)
}

// InvalidTimeError reports a time value which is not a finite number.
type InvalidTimeError struct {
	Value float64
}

func (e InvalidTimeError) Error() string {
	return fmt.Sprintf("planetpos: time value %v is not a finite number", e.Value)
}

// ConvergenceError reports a Newton-Raphson iteration which failed to reach
// the requested tolerance within the iteration cap.
type ConvergenceError struct {
	MeanAnomaly  float64
	Eccentricity float64
	Tolerance    float64
	Iterations   int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("planetpos: Kepler solver did not reach %g after %d iterations (M=%g, e=%g)",
		e.Tolerance, e.Iterations, e.MeanAnomaly, e.Eccentricity)
}
