package legendre

import (
	"math"
	"testing"
)

func TestP00IsOne(t *testing.T) {
	tab := Compute(4, 0.3)
	if tab.At(0, 0) != 1 {
		t.Errorf("P00 = %f, want 1", tab.At(0, 0))
	}
}

func TestDP00DPhiIsZero(t *testing.T) {
	tab := Compute(4, 0.7)
	if tab.DAt(0, 0) != 0 {
		t.Errorf("dP00/dphi = %f, want 0", tab.DAt(0, 0))
	}
}

func TestP11Formula(t *testing.T) {
	phi := 0.4
	tab := Compute(3, phi)
	want := math.Sqrt(3) * math.Cos(phi)
	if math.Abs(tab.At(1, 1)-want) > 1e-12 {
		t.Errorf("P11 = %f, want sqrt(3)*cos(phi) = %f", tab.At(1, 1), want)
	}
}

func TestDegreeZeroTableOnlyHasP00(t *testing.T) {
	tab := Compute(0, 0.2)
	if tab.Degree() != 0 {
		t.Errorf("Degree() = %d, want 0", tab.Degree())
	}
	if tab.At(0, 0) != 1 {
		t.Errorf("P00 = %f, want 1", tab.At(0, 0))
	}
}

func TestHigherDegreeFiniteAndBounded(t *testing.T) {
	// Normalized Legendre functions of a real argument in [-1,1] stay
	// finite and within a generous bound for moderate degree: fully
	// normalized |Pnm| <= sqrt(2(2n+1)), checked here against 2*sqrt(2n+1).
	tab := Compute(20, 0.9)
	for n := 0; n <= 20; n++ {
		for m := 0; m <= n; m++ {
			v := tab.At(n, m)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("P(%d,%d) = %v, not finite", n, m, v)
			}
			if bound := 2 * math.Sqrt(float64(2*n+1)); math.Abs(v) > bound {
				t.Errorf("P(%d,%d) = %v, exceeds bound %v", n, m, v, bound)
			}
		}
	}
}
