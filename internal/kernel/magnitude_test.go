package kernel

import (
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	t.Parallel()

	if got := Magnitude(complex128(3 + 4i)); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Magnitude(3+4i) = %v, want 5", got)
	}

	if got := Magnitude(complex64(0)); got != 0 {
		t.Fatalf("Magnitude(0) = %v, want 0", got)
	}
}
