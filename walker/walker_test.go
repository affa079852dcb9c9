package walker

import (
	"math"
	"testing"
)

func TestWalkerFZeroPlanesShareAnomalyPattern(t *testing.T) {
	seed := Seed{SemiMajorAxisKm: 27878, InclinationDeg: 55}
	els := Synthesize(seed, Params{T: 24, S: 3, F: 0})

	byPlane := map[int][]float64{}
	for _, e := range els {
		byPlane[e.Plane] = append(byPlane[e.Plane], e.AnomalyDeg)
	}
	ref := byPlane[0]
	for plane := 1; plane < 3; plane++ {
		for i, a := range byPlane[plane] {
			if math.Abs(a-ref[i]) > 1e-9 {
				t.Errorf("plane %d slot %d anomaly=%f, want %f (F=0 planes identical)", plane, i, a, ref[i])
			}
		}
	}
}

func TestWalker24_3_1AnomalyFormula(t *testing.T) {
	seed := Seed{SemiMajorAxisKm: 27878, InclinationDeg: 55}
	els := Synthesize(seed, Params{T: 24, S: 3, F: 1})

	for _, e := range els {
		want := math.Mod(float64(e.Slot)*45+float64(e.Plane)*15, 360)
		if math.Abs(e.AnomalyDeg-want) > 1e-9 {
			t.Errorf("plane %d slot %d anomaly=%f, want %f", e.Plane, e.Slot, e.AnomalyDeg, want)
		}
	}
}

func TestWalker24_3_1PlaneRAANs(t *testing.T) {
	seed := Seed{SemiMajorAxisKm: 27878, InclinationDeg: 55, RAAN0Deg: 10}
	els := Synthesize(seed, Params{T: 24, S: 3, F: 1})

	want := map[int]float64{0: 10, 1: 130, 2: 250}
	seen := map[int]bool{}
	for _, e := range els {
		if !seen[e.Plane] {
			if math.Abs(e.RAANDeg-want[e.Plane]) > 1e-9 {
				t.Errorf("plane %d RAAN=%f, want %f", e.Plane, e.RAANDeg, want[e.Plane])
			}
			seen[e.Plane] = true
		}
	}
}

func TestWalkerProducesTSatellitesEightPerPlane(t *testing.T) {
	seed := Seed{SemiMajorAxisKm: 27878, InclinationDeg: 55}
	els := Synthesize(seed, Params{T: 24, S: 3, F: 1})
	if len(els) != 24 {
		t.Fatalf("len(els) = %d, want 24", len(els))
	}
	counts := map[int]int{}
	for _, e := range els {
		counts[e.Plane]++
	}
	for p, c := range counts {
		if c != 8 {
			t.Errorf("plane %d has %d satellites, want 8", p, c)
		}
	}
}

func TestStateVectorCircularOrbitSpeed(t *testing.T) {
	const gmEarth = 398600.4418 // km^3/s^2
	el := Element{SemiMajorAxisKm: 27878, Eccentricity: 0, InclinationDeg: 55}
	pos, vel := StateVector(el, gmEarth)

	r := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	v := math.Sqrt(vel[0]*vel[0] + vel[1]*vel[1] + vel[2]*vel[2])
	wantV := math.Sqrt(gmEarth / r)
	if math.Abs(v-wantV) > 1e-6 {
		t.Errorf("speed = %f, want circular speed %f", v, wantV)
	}
}
