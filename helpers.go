package cfft

import (
	"github.com/dmarchuk/cfft/internal/kernel"
	"github.com/dmarchuk/cfft/internal/numeric"
)

// isPowerOfTwo reports whether n is a positive power of two. This is
// deliberately not expressed as clp2(n) == n: Clp2's documented
// special case Clp2(1) = 2 would make that check reject n = 1 even
// though 1 = 2^0 is a positive power of two (see DESIGN.md).
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// pwr2 wraps numeric.Pwr2, translating its sentinel into ErrDomain.
func pwr2(n int) (int, error) {
	p, err := numeric.Pwr2(n)
	if err != nil {
		return 0, ErrDomain
	}

	return p, nil
}

// clp2 wraps numeric.Clp2 for use by the Bluestein kernel's extended
// size computation.
func clp2(n int) int {
	return numeric.Clp2(n)
}

// fromReal promotes a real sample of any supported float precision to
// a zero-imaginary complex value of type T.
func fromReal[T Complex, F Float](v F) T {
	var f float64

	switch x := any(v).(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	}

	return kernel.FromFloat64[T](f, 0)
}
