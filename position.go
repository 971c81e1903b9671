package planetpos

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// j2000JD is the Julian date the element propagation is referenced to
// (1 Jan 2000, 00:00).
const j2000JD = 2451544.5

// Options configures a position computation. The zero value requests
// ecliptic coordinates from the full elliptical model, with t in decimal
// years.
type Options struct {
	// UnixTime interprets t as milliseconds since the Unix epoch instead of
	// decimal years.
	UnixTime bool
	// ICRF rotates the result into the equatorial (ICRF) frame.
	ICRF bool
	// Circular uses the mean anomaly in place of the eccentric anomaly,
	// skipping the Kepler solve. Slightly faster, exact only for e = 0.
	Circular bool
	// Tolerance overrides the Kepler solver tolerance when positive.
	Tolerance float64
}

// Position computes the heliocentric position in AU of the referenced planet
// at time t. t is in decimal years (t = 2000.0 is the J2000 epoch) unless
// Options.UnixTime is set.
func Position(ref PlanetRef, t float64, opts Options) ([]float64, error) {
	planet, err := ref.Resolve()
	if err != nil {
		return nil, err
	}
	return planet.PositionAt(t, opts)
}

// PositionAt computes the heliocentric position of this planet in AU at time
// t, in decimal years or Unix milliseconds per Options.UnixTime.
func (p Planet) PositionAt(t float64, opts Options) ([]float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, InvalidTimeError{Value: t}
	}
	var T float64
	if opts.UnixTime {
		T = (unix2JD(t) - j2000JD) / 36525
	} else {
		T = (t - 2000.0) / 100.0
	}
	return p.positionT(T, opts)
}

// PositionAtEpoch computes the heliocentric position of this planet in AU at
// the given instant. Options.UnixTime is ignored.
func (p Planet) PositionAtEpoch(dt time.Time, opts Options) ([]float64, error) {
	return p.positionT((julian.TimeToJD(dt)-j2000JD)/36525, opts)
}

// unix2JD converts milliseconds since the Unix epoch to a Julian date.
func unix2JD(ms float64) float64 {
	return ms/86400000.0 + 2440587.5
}

// positionT evaluates the propagated elements at T Julian centuries past
// J2000 and returns the Cartesian position.
func (p Planet) positionT(T float64, opts Options) ([]float64, error) {
	a, e, i, L, ϖ, Ω := p.elementsAt(T)
	ω := ϖ - Ω
	M := math.Mod(L-ϖ+math.Pi, 2*math.Pi) - math.Pi

	E := M
	if !opts.Circular {
		var err error
		E, err = SolveKepler(M, e, opts.Tolerance)
		if err != nil {
			return nil, err
		}
	}

	sinE, cosE := math.Sincos(E)
	x := a * (cosE - e)
	y := a * math.Sqrt(1-e*e) * sinE

	pos := Perifocal2Ecliptic(i, ω, Ω, []float64{x, y, 0})
	if opts.ICRF {
		pos = Ecliptic2ICRF(pos)
	}
	return pos, nil
}
