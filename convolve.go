package cfft

// Convolve returns the linear convolution of a and b, computed via a
// power-of-two radix-2 kernel sized to avoid wraparound: both operands
// are zero-padded to the smallest power of two P >= len(a)+len(b)-1,
// transformed, multiplied pointwise, and inverse-transformed. The
// result has length len(a)+len(b)-1, or 0 when either operand is empty.
//
// Padding always lands on a power of two rather than the nearest
// chirp-z size, so only Radix2Kernel is needed here; BluesteinKernel's
// Inverse is unimplemented and would otherwise make this unusable for
// non-power-of-two padded lengths.
func Convolve[T Complex](a, b []T) ([]T, error) {
	if a == nil || b == nil {
		return nil, ErrNilSlice
	}

	if len(a) == 0 || len(b) == 0 {
		return []T{}, nil
	}

	resultLen := len(a) + len(b) - 1

	p := 1
	for p < resultLen {
		p *= 2
	}

	k, err := NewRadix2Kernel[T](p)
	if err != nil {
		return nil, err
	}

	bufA := make([]T, p)
	copy(bufA, a)

	bufB := make([]T, p)
	copy(bufB, b)

	if err := k.Forward(bufA); err != nil {
		return nil, err
	}

	if err := k.Forward(bufB); err != nil {
		return nil, err
	}

	for i := range bufA {
		bufA[i] *= bufB[i]
	}

	if err := k.Inverse(bufA); err != nil {
		return nil, err
	}

	return bufA[:resultLen], nil
}
