package cfft

import "github.com/dmarchuk/cfft/internal/kernel"

// BluesteinKernel is a reusable, fixed-size forward FFT kernel for
// sizes that are not a power of two, computed via the chirp-z
// (Bluestein) construction: the DFT of size N is expressed as a
// circular convolution computed by a radix-2 engine over a padded
// extended size M.
//
// A BluesteinKernel is immutable after construction except for its
// three scratch caches, which Forward mutates for its duration. It is
// not safe for concurrent use. Inverse is documented future work (see
// §4.7 of the design): calling Inverse returns ErrUnsupported.
type BluesteinKernel[T Complex] struct {
	fftsize   int
	extsize   int
	cache0    []T
	cache1    []T
	cache2    []T
	twiddle   []T
	circulant []T
	ifswap    bool
	feat      Features
}

// NewBluesteinKernel constructs a kernel for transforms of size n. n
// must be at least 3 and must not be a power of two, otherwise
// ErrDomain is returned (power-of-two sizes belong to Radix2Kernel).
func NewBluesteinKernel[T Complex](n int) (*BluesteinKernel[T], error) {
	if n < 3 || isPowerOfTwo(n) {
		return nil, ErrDomain
	}

	m := clp2(2 * (n - 1))

	pm, err := pwr2(m)
	if err != nil {
		return nil, ErrDomain
	}

	k := &BluesteinKernel[T]{
		fftsize:   n,
		extsize:   m,
		cache0:    make([]T, m),
		cache1:    make([]T, m),
		cache2:    make([]T, m),
		twiddle:   make([]T, m/2),
		circulant: make([]T, m),
		ifswap:    pm%2 == 1,
		feat:      detectFeatures(),
	}

	kernel.Twiddle(k.twiddle)
	kernel.Chirp(k.circulant, n)

	return k, nil
}

// Len returns the kernel's configured logical transform size N.
func (k *BluesteinKernel[T]) Len() int {
	return k.fftsize
}

// ExtLen returns the extended power-of-two size M the chirp-z
// construction pads to internally.
func (k *BluesteinKernel[T]) ExtLen() int {
	return k.extsize
}

// Features reports the CPU vector-extension bits detected when this
// kernel was constructed. Informational only.
func (k *BluesteinKernel[T]) Features() Features {
	return k.feat
}

// Forward computes the forward DFT of x in place via the chirp-z
// transform:
//
//  1. H = DFT_M(chirp) is computed into cache1.
//  2. y[i] = x[i]/chirp[i] for i<N, zero-padded to M, is formed in
//     cache2 and transformed to Y = DFT_M(y).
//  3. Y is multiplied pointwise by H.
//  4. The product is inverse-transformed.
//  5. x[i] = result[i]/chirp[i] for i<N reconstructs the output.
func (k *BluesteinKernel[T]) Forward(x []T) error {
	if len(x) != k.fftsize {
		return ErrLengthMismatch
	}

	chi := k.circulant
	n := k.fftsize

	copy(k.cache1, chi)
	kernel.Forward(k.cache1, k.cache0, k.twiddle, k.ifswap)

	for i := 0; i < n; i++ {
		k.cache2[i] = x[i] / chi[i]
	}

	for i := n; i < k.extsize; i++ {
		k.cache2[i] = T(0)
	}

	kernel.Forward(k.cache2, k.cache0, k.twiddle, k.ifswap)

	for i := range k.cache2 {
		k.cache2[i] *= k.cache1[i]
	}

	kernel.Inverse(k.cache2, k.cache0, k.twiddle, k.ifswap)

	for i := 0; i < n; i++ {
		x[i] = k.cache2[i] / chi[i]
	}

	return nil
}

// ForwardCopy returns a freshly allocated forward transform of x,
// leaving x unmodified.
func (k *BluesteinKernel[T]) ForwardCopy(x []T) ([]T, error) {
	out := make([]T, len(x))
	copy(out, x)

	if err := k.Forward(out); err != nil {
		return nil, err
	}

	return out, nil
}

// ForwardRealBluestein returns a freshly allocated forward transform of
// a real-valued input on a BluesteinKernel, promoting each sample to a
// zero-imaginary complex value before delegating to ForwardCopy.
func ForwardRealBluestein[T Complex, F Float](k *BluesteinKernel[T], x []F) ([]T, error) {
	buf := make([]T, len(x))
	for i, v := range x {
		buf[i] = fromReal[T](v)
	}

	return k.ForwardCopy(buf)
}

// Inverse is documented future work: NonRadix2FFT's inverse transform
// is not implemented upstream, and this kernel does not implement it
// either. It always returns ErrUnsupported without mutating x.
func (k *BluesteinKernel[T]) Inverse(x []T) error {
	return ErrUnsupported
}
