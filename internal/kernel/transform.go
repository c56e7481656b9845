package kernel

// Forward computes the forward DFT of buf in place, using scratch as
// the ping-pong partner and twiddle as the N/2-length table for a
// transform of size N = 2*len(twiddle). ifswap must be precomputed by
// the caller as (log2 N) mod 2 == 1; it determines which buffer the
// final DITNN pass lands in.
func Forward[T Complex](buf, scratch, twiddle []T, ifswap bool) {
	hs := len(twiddle)

	if ifswap {
		copy(scratch, buf)
		DITNN(scratch, buf, twiddle, hs)
	} else {
		DITNN(buf, scratch, twiddle, hs)
	}
}

// Inverse computes the inverse DFT of buf in place by conjugating,
// running the forward driver, conjugating again and scaling by 1/N.
// See Forward for the meaning of scratch, twiddle and ifswap.
func Inverse[T Complex](buf, scratch, twiddle []T, ifswap bool) {
	hs := len(twiddle)
	n := len(buf)

	if ifswap {
		for i, v := range buf {
			scratch[i] = Conjugate(v)
		}

		DITNN(scratch, buf, twiddle, hs)
	} else {
		for i, v := range buf {
			buf[i] = Conjugate(v)
		}

		DITNN(buf, scratch, twiddle, hs)
	}

	scale := 1.0 / float64(n)
	for i, v := range buf {
		buf[i] = ScaleConjugate(v, scale)
	}
}
