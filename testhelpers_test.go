package cfft

import (
	"math/cmplx"
	"testing"
)

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	diff := got - want
	if diff < 0 {
		diff = -diff
	}

	if diff > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for j := 0; j < n; j++ {
		var sum complex128

		for k := 0; k < n; k++ {
			angle := -2 * 3.141592653589793 * float64(j*k) / float64(n)
			sum += x[k] * cmplx.Rect(1, angle)
		}

		out[j] = sum
	}

	return out
}
