// Package legendre computes fully-normalized associated Legendre functions
// Pnm(sin phi) and their latitude derivatives, the building block of the
// spherical-harmonic gravity field in the forcemodel package (spec §4.3).
// Values are returned as dense lower-triangular tables rather than a
// general-purpose recursive evaluator: the gravity summation walks every
// (n,m) pair up to the truncation degree each force evaluation, so a
// precomputed table avoids recomputing shared diagonal/sectorial terms.
package legendre

import "math"

// Table holds P[n][m] = fully-normalized Pnm(sin phi) and Pd[n][m] =
// dPnm/dphi for 0 <= m <= n <= degree.
type Table struct {
	degree int
	P      [][]float64
	Pd     [][]float64
}

// Compute builds the normalized Legendre table up to the given degree for
// geocentric latitude phi (radians). Uses the standard diagonal recursion
// (sectorial terms Pnn) followed by the two-term vertical recursion, with
// normalization factors folded in directly so the caller never multiplies
// by an un-normalized Legendre value (the classic source of a factor-of-N
// bug in hand-rolled gravity codes).
func Compute(degree int, phi float64) *Table {
	n := degree
	t := &Table{degree: n, P: make([][]float64, n+1), Pd: make([][]float64, n+1)}
	for i := range t.P {
		t.P[i] = make([]float64, i+1)
		t.Pd[i] = make([]float64, i+1)
	}

	s, c := math.Sin(phi), math.Cos(phi)

	t.P[0][0] = 1
	t.Pd[0][0] = 0
	if n == 0 {
		return t
	}

	t.P[1][0] = math.Sqrt(3) * s
	t.Pd[1][0] = math.Sqrt(3) * c
	t.P[1][1] = math.Sqrt(3) * c
	t.Pd[1][1] = -math.Sqrt(3) * s

	for i := 2; i <= n; i++ {
		fi := float64(i)
		// Sectorial: Pnn from P(n-1,n-1).
		normSect := math.Sqrt((2*fi + 1) / (2 * fi))
		t.P[i][i] = normSect * c * t.P[i-1][i-1]
		t.Pd[i][i] = normSect * (c*t.Pd[i-1][i-1] - s*t.P[i-1][i-1])

		for m := 0; m < i; m++ {
			fm := float64(m)
			a := math.Sqrt((2*fi - 1) * (2*fi + 1) / ((fi - fm) * (fi + fm)))
			b := 0.0
			var pnm2, pdnm2 float64
			if i-2 >= m {
				b = math.Sqrt((2*fi + 1) * (fi + fm - 1) * (fi - fm - 1) / ((fi - fm) * (fi + fm) * (2*fi - 3)))
				pnm2 = t.P[i-2][m]
				pdnm2 = t.Pd[i-2][m]
			}
			t.P[i][m] = a*s*t.P[i-1][m] - b*pnm2
			t.Pd[i][m] = a*(s*t.Pd[i-1][m]+c*t.P[i-1][m]) - b*pdnm2
		}
	}
	return t
}

// At returns Pnm(sin phi) for the given degree/order.
func (t *Table) At(n, m int) float64 {
	return t.P[n][m]
}

// DAt returns dPnm/dphi for the given degree/order.
func (t *Table) DAt(n, m int) float64 {
	return t.Pd[n][m]
}

// Degree returns the maximum degree this table was computed to.
func (t *Table) Degree() int {
	return t.degree
}
