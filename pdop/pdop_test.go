package pdop

import (
	"math"
	"testing"

	"github.com/hpop/orbit/timeframe"
)

func TestPDOPSanityFourSatellites(t *testing.T) {
	obsX, obsY, obsZ := timeframe.GeodeticToECEF(0, 0, 0)
	obs := [3]float64{obsX, obsY, obsZ}
	const farKm = 20000e3

	dirs := [][3]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1 / math.Sqrt(3), -1 / math.Sqrt(3), -1 / math.Sqrt(3)},
	}
	sats := make([][][3]float64, len(dirs))
	for i, d := range dirs {
		sats[i] = [][3]float64{{obs[0] + d[0]*farKm, obs[1] + d[1]*farKm, obs[2] + d[2]*farKm}}
	}

	// The fourth direction points below the observer's horizon, so the
	// elevation mask is opened fully to keep all four rows in the geometry.
	val := pdopAtCell(sats, 0, obs, normalize(obs), -math.Pi/2)
	if math.IsNaN(val) {
		t.Fatal("expected finite PDOP with 4 well-spread satellites")
	}
	if val >= 2 {
		t.Errorf("PDOP = %f, want < 2", val)
	}
}

func TestPDOPNaNWithThreeSatellites(t *testing.T) {
	obsX, obsY, obsZ := timeframe.GeodeticToECEF(0, 0, 0)
	obs := [3]float64{obsX, obsY, obsZ}
	const farKm = 20000e3

	dirs := [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	sats := make([][][3]float64, len(dirs))
	for i, d := range dirs {
		sats[i] = [][3]float64{{obs[0] + d[0]*farKm, obs[1] + d[1]*farKm, obs[2] + d[2]*farKm}}
	}

	val := pdopAtCell(sats, 0, obs, normalize(obs), 0)
	if !math.IsNaN(val) {
		t.Errorf("PDOP = %f, want NaN with only 3 satellites", val)
	}
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

func TestVisibilityIntervalsDetectsRun(t *testing.T) {
	obsX, obsY, obsZ := timeframe.GeodeticToECEF(0, 0, 0)
	obs := [3]float64{obsX, obsY, obsZ}
	const farKm = 20000e3

	track := make([][3]float64, 5)
	for i := range track {
		if i == 0 || i == 4 {
			// below horizon: place satellite on the opposite side of Earth
			track[i] = [3]float64{-obs[0] * 2, obs[1], obs[2]}
		} else {
			track[i] = [3]float64{obs[0] + farKm, obs[1], obs[2]}
		}
	}

	intervals := VisibilityIntervals([][][3]float64{track}, 5, 0, 0, 0, 0)
	if len(intervals) != 1 {
		t.Fatalf("len(intervals) = %d, want 1", len(intervals))
	}
	if intervals[0].StartStep != 1 || intervals[0].StopStep != 3 {
		t.Errorf("interval = %+v, want [1,3]", intervals[0])
	}
}
