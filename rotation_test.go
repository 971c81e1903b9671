package planetpos

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	if r1.At(0, 0) != 1 || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1")
	}
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("R1 cosines misplaced")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("R1 sines misplaced")
	}
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("R3 cosines misplaced")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("R3 sines misplaced")
	}
}

func TestPerifocal2Ecliptic(t *testing.T) {
	// Compare the matrix composition against the expanded rotation formula.
	i, ω, Ω := 0.3, 0.7, 1.1
	x, y := 1.3, -0.4
	sinI, cosI := math.Sincos(i)
	sinω, cosω := math.Sincos(ω)
	sinΩ, cosΩ := math.Sincos(Ω)
	exp := []float64{
		(cosω*cosΩ-sinω*sinΩ*cosI)*x - (sinω*cosΩ+cosω*sinΩ*cosI)*y,
		(cosω*sinΩ+sinω*cosΩ*cosI)*x + (-sinω*sinΩ+cosω*cosΩ*cosI)*y,
		sinI * (sinω*x + cosω*y),
	}
	got := Perifocal2Ecliptic(i, ω, Ω, []float64{x, y, 0})
	for j := 0; j < 3; j++ {
		if !floats.EqualWithinAbs(got[j], exp[j], 1e-14) {
			t.Fatalf("component %d\ngot %+v\nexp %+v", j, got, exp)
		}
	}
	if !floats.EqualWithinAbs(norm(got), math.Hypot(x, y), 1e-14) {
		t.Fatal("rotation changed the vector norm")
	}
}

func TestEcliptic2ICRF(t *testing.T) {
	sinε, cosε := math.Sincos(eclipticObliquity)
	v := []float64{0.25, -1.5, 0.75}
	exp := []float64{v[0], cosε*v[1] - sinε*v[2], sinε*v[1] + cosε*v[2]}
	got := Ecliptic2ICRF(v)
	for j := 0; j < 3; j++ {
		if !floats.EqualWithinAbs(got[j], exp[j], 1e-14) {
			t.Fatalf("component %d\ngot %+v\nexp %+v", j, got, exp)
		}
	}
	if !floats.EqualWithinAbs(norm(got), norm(v), 1e-14) {
		t.Fatal("rotation changed the vector norm")
	}
}
