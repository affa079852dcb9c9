// Package propagator drives the RK4 integrator over the composite force
// model to produce a dense ephemeris (spec §4.11).
package propagator

import (
	"github.com/hpop/orbit/forcemodel"
	"github.com/hpop/orbit/rk4"
)

// Ephemeris is the ordered sequence of state vectors at t_k = k*Δt from
// epoch, 0 <= k <= N (spec §3). Eph[0] is always the initial state.
type Ephemeris struct {
	Epoch   float64 // Mjd_UTC at t=0
	DeltaT  float64 // seconds
	States  [][6]float64
}

// Propagate integrates from Y0 (ECI, meters/meters-per-second) for N
// steps of DeltaT seconds using the given AuxParam and shared force-model
// Environment, returning a dense ephemeris with Eph[0] = Y0 (spec §4.11).
func Propagate(y0 [6]float64, n int, deltaT float64, aux forcemodel.AuxParam, env *forcemodel.Environment) *Ephemeris {
	rhs := func(t float64, y []float64, ctx any) []float64 {
		state := [6]float64{y[0], y[1], y[2], y[3], y[4], y[5]}
		a := forcemodel.TotalAcceleration(t, state, aux, env)
		return []float64{y[3], y[4], y[5], a[0], a[1], a[2]}
	}

	integ := rk4.New(rhs, 6, nil)

	eph := &Ephemeris{Epoch: aux.MjdUTC, DeltaT: deltaT, States: make([][6]float64, n+1)}
	eph.States[0] = y0

	y := []float64{y0[0], y0[1], y0[2], y0[3], y0[4], y0[5]}
	t := 0.0
	for k := 1; k <= n; k++ {
		integ.Step(&t, y, deltaT)
		eph.States[k] = [6]float64{y[0], y[1], y[2], y[3], y[4], y[5]}
	}
	return eph
}

// At returns the state vector at step k.
func (e *Ephemeris) At(k int) [6]float64 {
	return e.States[k]
}

// Len returns the number of recorded states (N+1).
func (e *Ephemeris) Len() int {
	return len(e.States)
}

// TimeAtStep returns the MJD UTC at step k.
func (e *Ephemeris) TimeAtStep(k int) float64 {
	return e.Epoch + float64(k)*e.DeltaT/86400.0
}
