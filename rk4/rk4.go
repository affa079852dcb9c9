// Package rk4 implements a fixed-step classical four-stage Runge-Kutta
// integrator (spec §4.10). It carries no adaptive step control: the
// propagator selects a Δt suitable for the orbit regime and force-model
// order being integrated.
package rk4

// RHS is the right-hand side of the ODE dY/dt = f(t, Y, ctx). ctx is an
// opaque value threaded through unchanged, typically an AuxParam plus the
// shared force-model environment.
type RHS func(t float64, y []float64, ctx any) []float64

// Integrator drives a fixed-step RK4 advance over a state of dimension
// StateDim. The four stage vectors are preallocated once and reused every
// Step call, so stepping allocates nothing beyond them.
type Integrator struct {
	rhs       RHS
	stateDim  int
	ctx       any
	k1, k2, k3, k4 []float64
	tmp       []float64
}

// New constructs an Integrator for the given right-hand side, state
// dimension, and opaque context.
func New(rhs RHS, stateDim int, ctx any) *Integrator {
	return &Integrator{
		rhs:      rhs,
		stateDim: stateDim,
		ctx:      ctx,
		k1:       make([]float64, stateDim),
		k2:       make([]float64, stateDim),
		k3:       make([]float64, stateDim),
		k4:       make([]float64, stateDim),
		tmp:      make([]float64, stateDim),
	}
}

// Step advances *y from *t to *t+h in place using the classical RK4
// scheme (spec §4.10):
//
//	k1 = f(t, Y)
//	k2 = f(t+h/2, Y+h*k1/2)
//	k3 = f(t+h/2, Y+h*k2/2)
//	k4 = f(t+h,   Y+h*k3)
//	Y  = Y + h*(k1+2k2+2k3+k4)/6
//	t  = t+h
func (in *Integrator) Step(t *float64, y []float64, h float64) {
	t0 := *t

	copy(in.k1, in.rhs(t0, y, in.ctx))

	for i := range in.tmp {
		in.tmp[i] = y[i] + h*0.5*in.k1[i]
	}
	copy(in.k2, in.rhs(t0+h/2, in.tmp, in.ctx))

	for i := range in.tmp {
		in.tmp[i] = y[i] + h*0.5*in.k2[i]
	}
	copy(in.k3, in.rhs(t0+h/2, in.tmp, in.ctx))

	for i := range in.tmp {
		in.tmp[i] = y[i] + h*in.k3[i]
	}
	copy(in.k4, in.rhs(t0+h, in.tmp, in.ctx))

	for i := range y {
		y[i] += h * (in.k1[i] + 2*in.k2[i] + 2*in.k3[i] + in.k4[i]) / 6.0
	}
	*t = t0 + h
}
