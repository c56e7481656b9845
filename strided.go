package cfft

// ForwardStrided computes the forward DFT of every stride'th element of
// x starting at x[0], in place: the N samples at x[0], x[stride],
// x[2*stride], ... are gathered into the kernel's strided scratch
// buffer, transformed, and scattered back to the same positions.
//
// This avoids a caller-side gather/scatter allocation when the signal
// to transform is interleaved with other data, e.g. one channel of a
// multi-channel buffer. With stride == 1, Forward is applied directly
// to x[:N] without going through the scratch buffer.
func (k *Radix2Kernel[T]) ForwardStrided(x []T, stride int) error {
	return k.transformStrided(x, stride, false)
}

// InverseStrided is the strided counterpart of Inverse; see
// ForwardStrided for the gather/scatter semantics.
func (k *Radix2Kernel[T]) InverseStrided(x []T, stride int) error {
	return k.transformStrided(x, stride, true)
}

func (k *Radix2Kernel[T]) transformStrided(x []T, stride int, inverse bool) error {
	if x == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	n := k.fftsize

	if stride == 1 {
		if len(x) < n {
			return ErrLengthMismatch
		}

		if inverse {
			return k.Inverse(x[:n])
		}

		return k.Forward(x[:n])
	}

	lastIndex := n - 1
	maxInt := int(^uint(0) >> 1)
	if lastIndex > 0 && stride > (maxInt-1)/lastIndex {
		return ErrInvalidStride
	}

	if len(x) < 1+lastIndex*stride {
		return ErrLengthMismatch
	}

	buf := k.stridedBuf[:n]
	for i := 0; i < n; i++ {
		buf[i] = x[i*stride]
	}

	var err error
	if inverse {
		err = k.Inverse(buf)
	} else {
		err = k.Forward(buf)
	}
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		x[i*stride] = buf[i]
	}

	return nil
}
