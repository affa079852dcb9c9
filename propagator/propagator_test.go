package propagator

import (
	"math"
	"testing"

	"github.com/hpop/orbit/eop"
	"github.com/hpop/orbit/forcemodel"
)

const gmEarth = 3.986004418e14

func twoBodyEnv() *forcemodel.Environment {
	return &forcemodel.Environment{
		GMEarth: gmEarth,
		REarth:  6378137.0,
		GMSun:   1.32712440018e20,
		GMMoon:  4.9048695e12,
		Coeff:   forcemodel.NewCoeffTable(0),
		EOP:     eop.NewTable([]eop.Row{{MJD: 59000, DAT: 37}, {MJD: 61000, DAT: 37}}),
		SpW:     eop.NewSpWTable([]eop.SpWRow{{MJD: 59000}, {MJD: 61000}}),
	}
}

func TestTwoBodyPropagationConservesRadiusAndEnergy(t *testing.T) {
	env := twoBodyEnv()
	aux := forcemodel.AuxParam{MjdUTC: 60000, NMax: 0, MMax: 0}

	y0 := [6]float64{7000e3, 0, 0, 0, 7546, 0}
	eph := Propagate(y0, 540, 10, aux, env)

	r0 := norm(y0[0], y0[1], y0[2])
	e0 := energy(y0, gmEarth)

	for k := 0; k < eph.Len(); k++ {
		s := eph.At(k)
		r := norm(s[0], s[1], s[2])
		if math.Abs(r-r0) > 1e3 {
			t.Fatalf("step %d: |r|=%f, want ~%f (circular orbit)", k, r, r0)
		}
		e := energy(s, gmEarth)
		if math.Abs(e-e0) > 1e-3 {
			t.Fatalf("step %d: energy=%f, want ~%f", k, e, e0)
		}
	}
}

func norm(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

func energy(s [6]float64, gm float64) float64 {
	v2 := s[3]*s[3] + s[4]*s[4] + s[5]*s[5]
	r := norm(s[0], s[1], s[2])
	return v2/2 - gm/r
}

func TestEph0EqualsY0(t *testing.T) {
	env := twoBodyEnv()
	aux := forcemodel.AuxParam{MjdUTC: 60000}
	y0 := [6]float64{7000e3, 1, 2, 3, 7546, 4}
	eph := Propagate(y0, 5, 10, aux, env)
	if eph.At(0) != y0 {
		t.Errorf("Eph[0] = %v, want %v", eph.At(0), y0)
	}
}
