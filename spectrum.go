package cfft

import "github.com/dmarchuk/cfft/internal/kernel"

// FFTShift rotates x in place by floor(N/2), placing the zero
// frequency at the center of the sequence: element i moves to
// (i + N/2) mod N.
//
// For even N this is a single pass of N/2 pairwise swaps. For odd N,
// floor(N/2) and N are always coprime, so the rotation is a single
// cycle visiting every element exactly once; that cycle is followed
// with one temporary rather than allocating a second buffer.
func FFTShift[T any](x []T) {
	n := len(x)
	if n == 0 {
		return
	}

	if n%2 == 0 {
		half := n / 2
		for i := 0; i < half; i++ {
			x[i], x[i+half] = x[i+half], x[i]
		}

		return
	}

	shift := n / 2
	cur := 0
	val := x[0]

	for {
		dest := (cur + shift) % n
		val, x[dest] = x[dest], val
		cur = dest

		if cur == 0 {
			break
		}
	}
}

// FFTFreq returns a length-N sample-frequency grid for a signal
// sampled at interval dt, with step Δf = 1/(dt*N). Indices
// 0..ceil(N/2)-1 hold the non-negative frequencies in increasing
// order; the remaining indices hold the negative frequencies,
// wrapping so the full range spans [-0.5/dt, 0.5/dt).
func FFTFreq[F Float](n int, dt float64) []F {
	dst := make([]F, n)
	FFTFreqInto(dst, dt)

	return dst
}

// FFTFreqInto fills dst, of length N, with the same grid FFTFreq
// returns, without allocating.
func FFTFreqInto[F Float](dst []F, dt float64) {
	n := len(dst)
	if n == 0 {
		return
	}

	df := 1.0 / (dt * float64(n))
	half := n / 2

	if n%2 == 0 {
		for i := 0; i < half; i++ {
			dst[i] = F(df * float64(i))
		}

		for i := half; i < n; i++ {
			dst[i] = F(df * float64(i-n))
		}

		return
	}

	for i := 0; i <= half; i++ {
		dst[i] = F(df * float64(i))
	}

	for i := half + 1; i < n; i++ {
		dst[i] = F(df * float64(i-n))
	}
}

// FFTAmpl fills ampl with the amplitude of spec, normalized by
// floor(len(ampl)/2): ampl[i] = apy2(spec[i]) / floor(len(ampl)/2).
//
// Returns ErrNilSlice if either slice is nil, ErrLengthMismatch if
// spec is shorter than ampl.
func FFTAmpl[T Complex, F Float](ampl []F, spec []T) error {
	if ampl == nil || spec == nil {
		return ErrNilSlice
	}

	if len(spec) < len(ampl) {
		return ErrLengthMismatch
	}

	divisor := float64(len(ampl) / 2)

	for i := range ampl {
		ampl[i] = F(kernel.Magnitude(spec[i]) / divisor)
	}

	return nil
}
