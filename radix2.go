package cfft

import (
	"github.com/dmarchuk/cfft/internal/kernel"
)

// Radix2Kernel is a reusable, fixed-size in-place radix-2
// decimation-in-time FFT kernel for power-of-two sizes. It owns a
// scratch cache and a twiddle table sized at construction; any number
// of forward or inverse transforms of size N can be run on it without
// further allocation.
//
// A Radix2Kernel is immutable after construction except for its
// scratch buffers (the ping-pong cache and the strided gather buffer),
// which a transform call mutates for its duration. It is not safe for
// concurrent use.
type Radix2Kernel[T Complex] struct {
	fftsize    int
	cache      []T
	twiddle    []T
	stridedBuf []T
	ifswap     bool
	feat       Features
}

// NewRadix2Kernel constructs a kernel for transforms of size n. n must
// be a positive power of two, otherwise ErrDomain is returned.
func NewRadix2Kernel[T Complex](n int) (*Radix2Kernel[T], error) {
	if !isPowerOfTwo(n) {
		return nil, ErrDomain
	}

	p, err := pwr2(n)
	if err != nil {
		return nil, ErrDomain
	}

	k := &Radix2Kernel[T]{
		fftsize:    n,
		cache:      make([]T, n),
		twiddle:    make([]T, n/2),
		stridedBuf: make([]T, n),
		ifswap:     p%2 == 1,
		feat:       detectFeatures(),
	}

	kernel.Twiddle(k.twiddle)

	return k, nil
}

// Len returns the kernel's configured transform size.
func (k *Radix2Kernel[T]) Len() int {
	return k.fftsize
}

// Features reports the CPU vector-extension bits detected when this
// kernel was constructed. Informational only.
func (k *Radix2Kernel[T]) Features() Features {
	return k.feat
}

// Forward computes the forward DFT of x in place, using
// X[j] = sum_n x[n]*exp(-2*pi*i*j*n/N) (unscaled).
func (k *Radix2Kernel[T]) Forward(x []T) error {
	if len(x) != k.fftsize {
		return ErrLengthMismatch
	}

	kernel.Forward(x, k.cache, k.twiddle, k.ifswap)

	return nil
}

// Inverse computes the inverse DFT of x in place, using
// x[n] = (1/N) * sum_j X[j]*exp(+2*pi*i*j*n/N).
//
// The forward radix-2 driver is reused by conjugating x before and
// after the transform (conj(DFT(conj(X))) = IDFT(X) up to the 1/N
// scale, which is applied at the end).
func (k *Radix2Kernel[T]) Inverse(x []T) error {
	if len(x) != k.fftsize {
		return ErrLengthMismatch
	}

	kernel.Inverse(x, k.cache, k.twiddle, k.ifswap)

	return nil
}

// ForwardCopy returns a freshly allocated forward transform of x,
// leaving x unmodified.
func (k *Radix2Kernel[T]) ForwardCopy(x []T) ([]T, error) {
	out := make([]T, len(x))
	copy(out, x)

	if err := k.Forward(out); err != nil {
		return nil, err
	}

	return out, nil
}

// InverseCopy returns a freshly allocated inverse transform of x,
// leaving x unmodified.
func (k *Radix2Kernel[T]) InverseCopy(x []T) ([]T, error) {
	out := make([]T, len(x))
	copy(out, x)

	if err := k.Inverse(out); err != nil {
		return nil, err
	}

	return out, nil
}

// ForwardReal returns a freshly allocated forward transform of a
// real-valued input, promoting each sample to a zero-imaginary complex
// value before delegating to ForwardCopy.
func ForwardReal[T Complex, F Float](k *Radix2Kernel[T], x []F) ([]T, error) {
	buf := make([]T, len(x))
	for i, v := range x {
		buf[i] = fromReal[T](v)
	}

	return k.ForwardCopy(buf)
}

// InverseReal returns a freshly allocated inverse transform of a
// real-valued input, promoting each sample to a zero-imaginary complex
// value before delegating to InverseCopy.
//
// The reference implementation this kernel is adapted from delegates
// its real-input inverse to the forward routine instead of the inverse
// one; that looks like a bug, not an intentional shortcut, so this
// implementation calls InverseCopy as the name promises. Callers
// relying on the original's behavior should call ForwardReal directly.
func InverseReal[T Complex, F Float](k *Radix2Kernel[T], x []F) ([]T, error) {
	buf := make([]T, len(x))
	for i, v := range x {
		buf[i] = fromReal[T](v)
	}

	return k.InverseCopy(buf)
}
