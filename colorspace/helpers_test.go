package colorspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// grid returns n^3 colors evenly spaced over [0, 1]^3.
func grid[T Float](n int) []Vec3[T] {
	out := make([]Vec3[T], 0, n*n*n)
	step := T(1) / T(n-1)
	for i := range n {
		for j := range n {
			for k := range n {
				out = append(out, Vec3[T]{T(i) * step, T(j) * step, T(k) * step})
			}
		}
	}
	return out
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// assertRoundTrip checks inv(fwd(c)) against c for every grid color.
func assertRoundTrip[T Float](t *testing.T, fwd, inv func(Vec3[T]) Vec3[T], tol T) {
	t.Helper()
	var worst T
	var worstColor Vec3[T]
	for _, c := range grid[T](16) {
		if d := inv(fwd(c)).MaxAbsDiff(c); d > worst {
			worst, worstColor = d, c
		}
	}
	if worst > tol {
		t.Errorf("round trip error %g at %v exceeds %g", worst, worstColor, tol)
	}
}

func assertVec[T Float](t *testing.T, name string, got, want Vec3[T], margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}
