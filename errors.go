package cfft

import "errors"

// Sentinel errors returned by kernel construction and transform calls.
var (
	// ErrDomain is returned when a kernel is constructed with a size
	// that is not valid for its algorithm: Radix2Kernel requires a
	// positive power of two, BluesteinKernel requires a size that is
	// not a power of two.
	ErrDomain = errors.New("cfft: invalid transform size")

	// ErrLengthMismatch is returned when a signal buffer's length does
	// not equal the kernel's configured size.
	ErrLengthMismatch = errors.New("cfft: signal length does not match kernel size")

	// ErrNilSlice is returned when a required slice argument is nil.
	ErrNilSlice = errors.New("cfft: nil slice")

	// ErrInvalidStride is returned when a stride parameter is less
	// than 1 or would overflow index computation.
	ErrInvalidStride = errors.New("cfft: invalid stride")

	// ErrUnsupported is returned when an operation is requested that
	// is documented future work, such as the inverse transform on a
	// BluesteinKernel.
	ErrUnsupported = errors.New("cfft: operation not supported")
)
