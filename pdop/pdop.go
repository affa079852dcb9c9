// Package pdop computes Position Dilution of Precision and per-satellite
// visibility over a (time, lat, lon) grid from Earth-fixed ephemerides
// (spec §4.13). Matrix inversion for the geometry matrix uses
// gonum.org/v1/gonum/mat, the same linear-algebra package the retrieval
// pack's weather-station and chain-client repos already depend on.
package pdop

import (
	"math"

	"github.com/hpop/orbit/timeframe"
	"github.com/hpop/orbit/vecmat"
	"gonum.org/v1/gonum/mat"
)

// GridBounds describes a regular (lat, lon) sampling grid at a fixed
// altitude above the WGS-84 ellipsoid.
type GridBounds struct {
	LatMinDeg, LatMaxDeg, LatStepDeg float64
	LonMinDeg, LonMaxDeg, LonStepDeg float64
	AltitudeM                        float64
}

// Cell is one (time_step, lat, lon) PDOP sample (spec §6 PDOP CSV).
type Cell struct {
	TimeStep int
	LatDeg   float64
	LonDeg   float64
	PDOP     float64 // NaN if underdetermined
}

// ComputeGridPDOP is the single canonical PDOP entry point (spec §9
// design note: the source's shorter duplicate signature is not
// reproduced here). satPositionsECEF[s][t] is satellite s's ECEF position
// (meters) at time step t; numSteps is the number of time steps to
// evaluate; minElevationDeg is the visibility mask (0 by default).
func ComputeGridPDOP(satPositionsECEF [][][3]float64, numSteps int, bounds GridBounds, minElevationDeg float64) []Cell {
	var cells []Cell
	minElevRad := minElevationDeg * math.Pi / 180.0

	for lat := bounds.LatMinDeg; lat <= bounds.LatMaxDeg+1e-9; lat += bounds.LatStepDeg {
		for lon := bounds.LonMinDeg; lon <= bounds.LonMaxDeg+1e-9; lon += bounds.LonStepDeg {
			obsX, obsY, obsZ := timeframe.GeodeticToECEF(lat*math.Pi/180.0, lon*math.Pi/180.0, bounds.AltitudeM)
			obs := [3]float64{obsX, obsY, obsZ}
			obsNorm := vecmat.Norm3(obs)
			up := [3]float64{obs[0] / obsNorm, obs[1] / obsNorm, obs[2] / obsNorm}

			for t := 0; t < numSteps; t++ {
				cells = append(cells, Cell{
					TimeStep: t, LatDeg: lat, LonDeg: lon,
					PDOP: pdopAtCell(satPositionsECEF, t, obs, up, minElevRad),
				})
			}
		}
	}
	return cells
}

func pdopAtCell(satPositionsECEF [][][3]float64, t int, obs, up [3]float64, minElevRad float64) float64 {
	var rows [][4]float64
	for _, track := range satPositionsECEF {
		if t >= len(track) {
			continue
		}
		los := vecmat.Sub3(track[t], obs)
		d := vecmat.Norm3(los)
		if d == 0 {
			continue
		}
		u := [3]float64{los[0] / d, los[1] / d, los[2] / d}
		elev := math.Asin(vecmat.Dot3(u, up))
		if elev >= minElevRad {
			rows = append(rows, [4]float64{u[0], u[1], u[2], 1})
		}
	}

	if len(rows) < 4 {
		return math.NaN()
	}

	a := mat.NewDense(len(rows), 4, nil)
	for i, row := range rows {
		a.SetRow(i, row[:])
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)

	var q mat.Dense
	if err := q.Inverse(&ata); err != nil {
		return math.NaN()
	}

	sum := q.At(0, 0) + q.At(1, 1) + q.At(2, 2)
	if sum < 0 {
		return math.NaN()
	}
	return math.Sqrt(sum)
}

// VisibilityInterval is a contiguous run of steps during which a
// satellite was visible at the reference grid cell.
type VisibilityInterval struct {
	SatelliteIndex      int
	StartStep, StopStep int
}

// VisibilityIntervals scans each satellite's visibility mask at a single
// reference (lat, lon) cell and emits contiguous [start,stop] runs (spec
// §4.13).
func VisibilityIntervals(satPositionsECEF [][][3]float64, numSteps int, refLatDeg, refLonDeg, altitudeM, minElevationDeg float64) []VisibilityInterval {
	minElevRad := minElevationDeg * math.Pi / 180.0
	obsX, obsY, obsZ := timeframe.GeodeticToECEF(refLatDeg*math.Pi/180.0, refLonDeg*math.Pi/180.0, altitudeM)
	obs := [3]float64{obsX, obsY, obsZ}
	obsNorm := vecmat.Norm3(obs)
	up := [3]float64{obs[0] / obsNorm, obs[1] / obsNorm, obs[2] / obsNorm}

	var out []VisibilityInterval
	for s, track := range satPositionsECEF {
		inRun := false
		start := 0
		for t := 0; t < numSteps && t < len(track); t++ {
			los := vecmat.Sub3(track[t], obs)
			d := vecmat.Norm3(los)
			visible := false
			if d > 0 {
				u := [3]float64{los[0] / d, los[1] / d, los[2] / d}
				visible = math.Asin(vecmat.Dot3(u, up)) >= minElevRad
			}
			switch {
			case visible && !inRun:
				inRun = true
				start = t
			case !visible && inRun:
				inRun = false
				out = append(out, VisibilityInterval{SatelliteIndex: s, StartStep: start, StopStep: t - 1})
			}
		}
		if inRun {
			out = append(out, VisibilityInterval{SatelliteIndex: s, StartStep: start, StopStep: numSteps - 1})
		}
	}
	return out
}
