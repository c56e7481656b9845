package kernel

import (
	"math/cmplx"
	"testing"
)

func TestButterfly_SinglePair(t *testing.T) {
	t.Parallel()

	wa := make([]complex128, 2)
	Twiddle(wa)

	xa := []complex128{1, 2, 3, 4}
	ya := make([]complex128, 4)

	Butterfly(ya, xa, wa, 0, 2, 2, 2, 1)

	a0, b0 := xa[0], xa[2]
	a1, b1 := xa[1], xa[3]

	want := []complex128{
		a0 + b0,
		(a0 - b0) * wa[0],
		a1 + b1,
		(a1 - b1) * wa[1],
	}

	for i := range want {
		if cmplx.Abs(ya[i]-want[i]) > 1e-12 {
			t.Fatalf("ya[%d] = %v, want %v", i, ya[i], want[i])
		}
	}
}

func TestButterfly_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	wa := make([]complex128, 1)
	Twiddle(wa)

	xa := []complex128{5, -3}
	xaCopy := append([]complex128(nil), xa...)
	ya := make([]complex128, 2)

	Butterfly(ya, xa, wa, 0, 1, 1, 1, 1)

	for i := range xa {
		if xa[i] != xaCopy[i] {
			t.Fatalf("xa mutated at %d: got %v want %v", i, xa[i], xaCopy[i])
		}
	}
}
