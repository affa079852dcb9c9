package timeframe

import (
	"math"
	"testing"
)

func TestMjdCalDatRoundTrip(t *testing.T) {
	mjd := Mjd(2024, 3, 15, 12, 30, 0)
	y, mo, d, h, mi, s := CalDat(mjd)
	if y != 2024 || mo != 3 || d != 15 || h != 12 || mi != 30 || math.Abs(s) > 1e-6 {
		t.Errorf("CalDat(Mjd(...)) = %d-%d-%d %d:%d:%f, want 2024-3-15 12:30:0", y, mo, d, h, mi, s)
	}
}

func TestJ2000MJD(t *testing.T) {
	mjd := Mjd(2000, 1, 1, 12, 0, 0)
	if math.Abs(mjd-J2000MJD) > 1e-9 {
		t.Errorf("Mjd(J2000 epoch) = %f, want %f", mjd, J2000MJD)
	}
}

func TestPrecessionIdentityAtJ2000(t *testing.T) {
	P := PrecessionMatrix(0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(P[i][j]-want) > 1e-9 {
				t.Errorf("P(T=0)[%d][%d] = %f, want %f", i, j, P[i][j], want)
			}
		}
	}
}

func TestPrecessionOrthogonal(t *testing.T) {
	P := PrecessionMatrix(0.5)
	checkOrthogonal(t, "PrecessionMatrix", P)
}

func TestNutationOrthogonal(t *testing.T) {
	N := NutationMatrix(0.1)
	checkOrthogonal(t, "NutationMatrix", N)
}

func TestMeanObliquityAtJ2000(t *testing.T) {
	// Sanity-check that mean obliquity is in the expected ~23.4 degree range.
	eps := MeanObliquity(0) * rad2deg
	if eps < 23.0 || eps > 23.6 {
		t.Errorf("MeanObliquity(T=0) = %f deg, want ~23.44", eps)
	}
}

func TestECEFGeodeticRoundTrip(t *testing.T) {
	lat0, lon0, h0 := 37.4*deg2rad, -122.1*deg2rad, 500.0
	x, y, z := GeodeticToECEF(lat0, lon0, h0)
	lat, lon, h := ECEFToGeodetic(x, y, z)
	if math.Abs(lat-lat0) > 1e-10 || math.Abs(lon-lon0) > 1e-10 || math.Abs(h-h0) > 1e-6 {
		t.Errorf("roundtrip: got (%f,%f,%f) want (%f,%f,%f)", lat, lon, h, lat0, lon0, h0)
	}
}

func TestECEFGeodeticPole(t *testing.T) {
	lat, _, h := ECEFToGeodetic(0, 0, 6356752.314245)
	if math.Abs(lat-math.Pi/2) > 1e-9 {
		t.Errorf("pole latitude = %f, want pi/2", lat)
	}
	if math.Abs(h) > 1.0 {
		t.Errorf("pole height = %f, want ~0", h)
	}
}

func TestGMSTIncreasesWithTime(t *testing.T) {
	g1 := GMST(J2000MJD)
	g2 := GMST(J2000MJD + 1.0)
	// GMST gains ~4 minutes per day relative to a full day in UT, so after
	// wrapping into [0, 2pi) the two should simply differ.
	if math.Abs(g1-g2) < 1e-6 {
		t.Error("GMST did not advance after one day")
	}
}

func TestECIToECEFOrthogonal(t *testing.T) {
	E := ECIToECEF(0.1, J2000MJD+40.0, 1e-6, 2e-6)
	checkOrthogonal(t, "ECIToECEF", E)
}

func checkOrthogonal(t *testing.T, name string, m [3][3]float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * m[j][k]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(s-want) > 1e-9 {
				t.Errorf("%s * %s^T [%d][%d] = %f, want %f", name, name, i, j, s, want)
			}
		}
	}
}
