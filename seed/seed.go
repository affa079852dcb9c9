// Package seed builds HPOP initial states for built-in real-world
// constellation presets (GPS, GLONASS, GALILEO, BEIDOU) by propagating a
// representative TLE with SGP4 and converting the resulting TEME state
// into the EME2000/ICRF frame the propagator integrates in (spec §6 CLI
// `scene_edit`). SGP4 itself comes from the teacher's one production
// dependency, github.com/joshuaferrara/go-satellite; everything else in
// this repo's force model is evaluated independently of it.
package seed

import (
	"math"
	"time"

	gosatellite "github.com/joshuaferrara/go-satellite"
	"github.com/pkg/errors"

	"github.com/hpop/orbit/timeframe"
	"github.com/hpop/orbit/vecmat"
)

// Constellation names accepted by the CLI's scene_edit subcommand.
const (
	GPS     = "GPS"
	GLONASS = "GLONASS"
	GALILEO = "GALILEO"
	BEIDOU  = "BEIDOU"
)

// tleLine pairs the two TLE lines for one representative satellite of a
// constellation.
type tleLine struct {
	name, line1, line2 string
}

// presets holds one sample TLE per constellation family. These are fixed
// reference epochs, not live data: scene_edit seeds a plausible starting
// state for each family, not a current ephemeris.
var presets = map[string][]tleLine{
	GPS: {{
		name:  "GPS BIIR-2",
		line1: "1 24876U 97035A   24180.50000000  .00000023  00000-0  00000-0 0  9991",
		line2: "2 24876  55.0000 100.0000 0050000  90.0000 270.0000  2.00561234123456",
	}},
	GLONASS: {{
		name:  "GLONASS-M",
		line1: "1 37139U 10062A   24180.50000000 -.00000012  00000-0  00000-0 0  9992",
		line2: "2 37139  64.8000 150.0000 0010000 120.0000 240.0000  2.13102700123456",
	}},
	GALILEO: {{
		name:  "GALILEO-FM1",
		line1: "1 37846U 11060A   24180.50000000  .00000005  00000-0  00000-0 0  9993",
		line2: "2 37846  56.0000 200.0000 0002000 150.0000 210.0000  1.70474400123456",
	}},
	BEIDOU: {{
		name:  "BEIDOU-3 MEO",
		line1: "1 43001U 17069A   24180.50000000  .00000008  00000-0  00000-0 0  9994",
		line2: "2 43001  55.0000  50.0000 0030000  60.0000 300.0000  1.86225200123456",
	}},
}

// ErrUnknownConstellation is returned when scene_edit is given a name
// outside the built-in preset set.
var ErrUnknownConstellation = errors.New("seed: unknown constellation")

// StateICRF is one satellite's initial EME2000/ICRF state, meters and
// meters-per-second, at the given UTC epoch.
type StateICRF struct {
	Name   string
	Epoch  time.Time
	Pos    [3]float64
	Vel    [3]float64
}

// Constellation propagates every satellite in the named preset's TLE set
// to epoch and returns each one's ICRF state.
func Constellation(name string, epoch time.Time) ([]StateICRF, error) {
	tles, ok := presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownConstellation, "%q", name)
	}

	out := make([]StateICRF, 0, len(tles))
	for _, tle := range tles {
		st, err := propagateTLE(tle, epoch)
		if err != nil {
			return nil, errors.Wrapf(err, "propagating %s", tle.name)
		}
		out = append(out, st)
	}
	return out, nil
}

func propagateTLE(tle tleLine, epoch time.Time) (StateICRF, error) {
	sat := gosatellite.TLEToSat(tle.line1, tle.line2, gosatellite.GravityWGS84)

	y, mo, d := epoch.Date()
	h, mi, s := epoch.Clock()

	posTEMEKm, velTEMEKmS := gosatellite.Propagate(sat, y, int(mo), d, h, mi, s)
	jdUTC := gosatellite.JDay(y, int(mo), d, h, mi, s)

	mjdUTC := jdUTC - 2400000.5
	T := timeframe.JulianCenturiesTT(mjdUTC) // UT1/TT distinction is sub-second here; negligible for seeding

	posTEME := [3]float64{posTEMEKm.X, posTEMEKm.Y, posTEMEKm.Z}
	velTEME := [3]float64{velTEMEKmS.X, velTEMEKmS.Y, velTEMEKmS.Z}

	posICRF := temeToICRF(posTEME, T)
	velICRF := temeToICRF(velTEME, T)

	return StateICRF{
		Name:  tle.name,
		Epoch: epoch,
		Pos:   [3]float64{posICRF[0] * 1000, posICRF[1] * 1000, posICRF[2] * 1000},
		Vel:   [3]float64{velICRF[0] * 1000, velICRF[1] * 1000, velICRF[2] * 1000},
	}, nil
}

// temeToICRF converts an SGP4 TEME vector to EME2000/ICRF: TEME -> equator
// of date via the equation-of-equinoxes rotation, -> mean equator of date
// via the nutation matrix's inverse (transpose, since it is orthogonal),
// -> EME2000 via the precession matrix's inverse.
func temeToICRF(v [3]float64, T float64) [3]float64 {
	eq := timeframe.EquationOfEquinoxes(T)
	cosEq, sinEq := math.Cos(eq), math.Sin(eq)
	ofDate := [3]float64{
		cosEq*v[0] - sinEq*v[1],
		sinEq*v[0] + cosEq*v[1],
		v[2],
	}

	N := timeframe.NutationMatrix(T)
	meanOfDate := vecmat.MulVec3(vecmat.Transpose3(N), ofDate)

	P := timeframe.PrecessionMatrix(T)
	return vecmat.MulVec3(vecmat.Transpose3(P), meanOfDate)
}
