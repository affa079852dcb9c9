// Package forcemodel implements the composite perturbation model that
// drives the propagator's RK4 right-hand side (spec §4.4-4.9): harmonic
// gravity (with an anelastic-Earth tide variant), third-body point mass,
// solar radiation pressure, atmospheric drag, and the Schwarzschild
// relativistic correction. Every accelerator here is a pure function of
// its inputs — no package-level scratch — so the same *CoeffTable,
// *eop.Table and *eop.SpWTable can be shared read-only across concurrent
// per-satellite propagation goroutines (spec §5).
package forcemodel

// AuxParam carries per-satellite configuration through the ODE right-hand
// side alongside the state vector (spec §3).
type AuxParam struct {
	MjdUTC float64 // epoch MJD UTC at integrator t=0

	AreaDrag  float64 // m^2
	AreaSolar float64 // m^2
	Mass      float64 // kg
	CR        float64 // solar radiation pressure coefficient
	CD        float64 // drag coefficient

	NMax int // max gravity degree, 0 <= m <= n <= 360
	MMax int // max gravity order

	Sun             bool
	Moon            bool
	SRad            bool
	Drag            bool
	SolidEarthTides bool
	OceanTides      bool
	Relativity      bool
}
