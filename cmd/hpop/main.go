// Command hpop dispatches the two CLI entry points in spec §6:
//
//	hpop scene_edit {BEIDOU|GPS|GLONASS|GALILEO|Walker [a e i Ω ω ν T S F]}
//	hpop Perturbation_force YYYY MM DD HH mm SS a e i Ω ω ν n m A_drag mass CD CR A_solar
//
// Exit 0 on success, 1 on file or argument errors (spec §7).
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/hpop/orbit/eop"
	"github.com/hpop/orbit/forcemodel"
	"github.com/hpop/orbit/ioglue"
	"github.com/hpop/orbit/propagator"
	"github.com/hpop/orbit/seed"
	"github.com/hpop/orbit/timeframe"
	"github.com/hpop/orbit/vecmat"
	"github.com/hpop/orbit/walker"
)

const (
	gmEarth = 3.986004418e14
	rEarth  = 6378137.0
	gmSun   = 1.32712440018e20
	gmMoon  = 4.9048695e12
)

func main() {
	if len(os.Args) < 2 {
		fail("usage: hpop scene_edit ... | hpop Perturbation_force ...")
	}

	var err error
	switch os.Args[1] {
	case "scene_edit":
		err = runSceneEdit(os.Args[2:])
	case "Perturbation_force":
		err = runPerturbationForce(os.Args[2:])
	default:
		fail(fmt.Sprintf("unknown subcommand %q", os.Args[1]))
		return
	}
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "hpop:", msg)
	os.Exit(1)
}

func runSceneEdit(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("scene_edit: missing constellation argument")
	}

	name := args[0]
	epoch := time.Now().UTC()

	switch name {
	case seed.GPS, seed.GLONASS, seed.GALILEO, seed.BEIDOU:
		states, err := seed.Constellation(name, epoch)
		if err != nil {
			return err
		}
		for _, s := range states {
			fmt.Printf("%s: pos=%v vel=%v\n", s.Name, s.Pos, s.Vel)
		}
		return nil

	case "Walker":
		if len(args) != 10 {
			return fmt.Errorf("scene_edit Walker: expected 9 numeric args (a e i Ω ω ν T S F), got %d", len(args)-1)
		}
		vals := make([]float64, 6)
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(args[1+i], 64)
			if err != nil {
				return fmt.Errorf("scene_edit Walker: bad numeric argument %q: %w", args[1+i], err)
			}
			vals[i] = v
		}
		T, err := strconv.Atoi(args[7])
		if err != nil {
			return fmt.Errorf("scene_edit Walker: bad T: %w", err)
		}
		S, err := strconv.Atoi(args[8])
		if err != nil {
			return fmt.Errorf("scene_edit Walker: bad S: %w", err)
		}
		F, err := strconv.Atoi(args[9])
		if err != nil {
			return fmt.Errorf("scene_edit Walker: bad F: %w", err)
		}

		wseed := walker.Seed{
			SemiMajorAxisKm: vals[0], Eccentricity: vals[1], InclinationDeg: vals[2],
			RAAN0Deg: vals[3], ArgPeriapsisDeg: vals[4], Anomaly0Deg: vals[5],
		}
		els := walker.Synthesize(wseed, walker.Params{T: T, S: S, F: F})
		for _, el := range els {
			pos, vel := walker.StateVector(el, gmEarth/1e9)
			fmt.Printf("plane=%d slot=%d pos=%v vel=%v\n", el.Plane, el.Slot, pos, vel)
		}
		return nil

	default:
		return fmt.Errorf("scene_edit: unknown constellation %q", name)
	}
}

func runPerturbationForce(args []string) error {
	const wantArgs = 19
	if len(args) != wantArgs {
		return fmt.Errorf("Perturbation_force: expected %d arguments, got %d", wantArgs, len(args))
	}

	ymd := make([]int, 6)
	for i := 0; i < 6; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("Perturbation_force: bad date/time field %q: %w", args[i], err)
		}
		ymd[i] = v
	}

	nums := make([]float64, 13)
	for i := 0; i < 13; i++ {
		v, err := strconv.ParseFloat(args[6+i], 64)
		if err != nil {
			return fmt.Errorf("Perturbation_force: bad numeric field %q: %w", args[6+i], err)
		}
		nums[i] = v
	}

	el := walker.Element{
		SemiMajorAxisKm: nums[0], Eccentricity: nums[1], InclinationDeg: nums[2],
		RAANDeg: nums[3], ArgPeriapsisDeg: nums[4], AnomalyDeg: nums[5],
	}
	posKm, velKmS := walker.StateVector(el, gmEarth/1e9)
	y0 := [6]float64{posKm[0] * 1000, posKm[1] * 1000, posKm[2] * 1000, velKmS[0] * 1000, velKmS[1] * 1000, velKmS[2] * 1000}

	epochMJD := timeframe.Mjd(ymd[0], ymd[1], ymd[2], ymd[3], ymd[4], float64(ymd[5]))

	aux := forcemodel.AuxParam{
		MjdUTC:    epochMJD,
		NMax:      int(nums[6]),
		MMax:      int(nums[7]),
		AreaDrag:  nums[8],
		Mass:      nums[9],
		CD:        nums[10],
		CR:        nums[11],
		AreaSolar: nums[12],
		// Matches the ground-truth Perturbation_force flag set: third-body
		// Sun/Moon and tide terms off, drag and solar radiation pressure on.
		SRad: true, Drag: true,
	}

	env := &forcemodel.Environment{
		GMEarth: gmEarth, REarth: rEarth, GMSun: gmSun, GMMoon: gmMoon,
		Coeff: forcemodel.NewCoeffTable(maxInt(aux.NMax, 0)),
		EOP:   eop.NewTable(nil),
		SpW:   eop.NewSpWTable(nil),
	}

	eph := propagator.Propagate(y0, 540, 30, aux, env)

	// WriteECEFEphemeris takes Earth-fixed states: rotate each ECI state.
	const arcsec2rad = math.Pi / 648000.0
	ecef := make([][6]float64, eph.Len())
	for k, s := range eph.States {
		mjdUTC := eph.TimeAtStep(k)
		rec := env.EOP.Lookup(mjdUTC)
		off := timeframe.EOPOffsets{DUT1Sec: rec.DUT1, DATSec: rec.DAT}
		E := timeframe.ECIToECEF(timeframe.JulianCenturiesTT(timeframe.TTFromUTC(mjdUTC, off)),
			timeframe.UT1FromUTC(mjdUTC, off), rec.XP*arcsec2rad, rec.YP*arcsec2rad)
		r := vecmat.MulVec3(E, [3]float64{s[0], s[1], s[2]})
		v := vecmat.Sub3(vecmat.MulVec3(E, [3]float64{s[3], s[4], s[5]}), vecmat.Cross3([3]float64{0, 0, forcemodel.EarthRotationRad}, r))
		ecef[k] = [6]float64{r[0], r[1], r[2], v[0], v[1], v[2]}
	}
	epoch := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], ymd[3], ymd[4], ymd[5], 0, time.UTC)

	w := os.Stdout
	return ioglue.WriteECEFEphemeris(w, epoch, 30, ecef)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
