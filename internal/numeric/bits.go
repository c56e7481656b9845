// Package numeric implements the scalar bit and floating-point helpers
// the FFT kernels are built on: integer log2/power-of-two rounding and
// an overflow-robust hypot.
package numeric

import "errors"

// ErrNonPositive is returned by Pwr2 when called on a non-positive
// argument.
var ErrNonPositive = errors.New("numeric: argument must be positive")

// Pwr2 returns floor(log2(x)) for a positive integer x using the
// standard 32/16/8/4/2/1 nibble-cascade.
func Pwr2(x int) (int, error) {
	if x <= 0 {
		return 0, ErrNonPositive
	}

	v := uint64(x)
	n := 0

	if v >= 1<<32 {
		n += 32
		v >>= 32
	}

	if v >= 1<<16 {
		n += 16
		v >>= 16
	}

	if v >= 1<<8 {
		n += 8
		v >>= 8
	}

	if v >= 1<<4 {
		n += 4
		v >>= 4
	}

	if v >= 1<<2 {
		n += 2
		v >>= 2
	}

	if v >= 1<<1 {
		n++
	}

	return n, nil
}

// Clp2 returns the smallest power of two that is at least max(x, 2),
// except that Clp2(0) = 1 and Clp2(1) = 2, matching the reference
// implementation's special cases at the low end.
func Clp2(x int) int {
	switch x {
	case 0:
		return 1
	case 1:
		return 2
	default:
		v := uint64(x - 1)
		v |= v >> 1
		v |= v >> 2
		v |= v >> 4
		v |= v >> 8
		v |= v >> 16
		v |= v >> 32

		return int(v + 1)
	}
}

// Swap exchanges the elements at indices i and j of x.
func Swap[T any](x []T, i, j int) {
	x[i], x[j] = x[j], x[i]
}
