package cfft

import "github.com/dmarchuk/cfft/internal/kernel"

// Complex is a type constraint for the complex number types supported
// by the engine. The canonical definition lives in internal/kernel.
type Complex = kernel.Complex

// Float is a type constraint for the real floating-point types used by
// real-valued auxiliary operations (fftfreq, fftampl).
type Float interface {
	~float32 | ~float64
}
