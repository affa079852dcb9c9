package forcemodel

import (
	"math"
	"testing"
)

func TestAccelPointMassZeroGM(t *testing.T) {
	a := AccelPointMass([3]float64{7e6, 0, 0}, [3]float64{1e8, 0, 0}, 0)
	if a != ([3]float64{}) {
		t.Errorf("AccelPointMass with GM=0 = %v, want zero", a)
	}
}

func TestIlluminationIsBinary(t *testing.T) {
	rSun := [3]float64{1.5e11, 0, 0}
	cases := [][3]float64{
		{7e6, 0, 0},
		{-7e6, 0, 0},
		{0, 7e6, 0},
	}
	for _, r := range cases {
		v := Illumination(r, rSun)
		if v != 0 && v != 1 {
			t.Errorf("Illumination(%v) = %f, want 0 or 1", r, v)
		}
	}
}

func TestIlluminationSunlitWhenDotPositive(t *testing.T) {
	rSun := [3]float64{1.5e11, 0, 0}
	r := [3]float64{7e6, 1e6, 0}
	if Illumination(r, rSun) != 1 {
		t.Error("r.rSun > 0 should always be illuminated")
	}
}

func TestEclipseOnAntiSunLine(t *testing.T) {
	rSun := [3]float64{1.5e11, 0, 0}
	r := [3]float64{-7e6, 0, 0} // anti-sun line, within shadow cylinder
	if Illumination(r, rSun) != 0 {
		t.Error("anti-sun line within Earth's radius should be eclipsed")
	}
	rOpposite := [3]float64{7e6, 0, 0}
	if Illumination(rOpposite, rSun) != 1 {
		t.Error("sunward side should be illuminated")
	}
}

func TestAccelTwoBodyMagnitude(t *testing.T) {
	const gmEarth = 3.986004418e14
	r := [3]float64{7000e3, 0, 0}
	a := AccelTwoBody(r, gmEarth)
	want := -gmEarth / (7000e3 * 7000e3)
	if math.Abs(a[0]-want) > 1e-6 {
		t.Errorf("AccelTwoBody = %v, want x=%f", a, want)
	}
	if a[1] != 0 || a[2] != 0 {
		t.Errorf("AccelTwoBody off-axis components should be zero: %v", a)
	}
}

func TestAccelRelativitySmallCorrection(t *testing.T) {
	const gmEarth = 3.986004418e14
	r := [3]float64{7000e3, 0, 0}
	v := [3]float64{0, 7546, 0}
	a := AccelRelativity(r, v, gmEarth)
	mag := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if mag <= 0 || mag > 1e-6 {
		t.Errorf("relativistic correction magnitude = %e, want small but nonzero", mag)
	}
}
