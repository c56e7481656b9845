package kernel

import "github.com/dmarchuk/cfft/internal/numeric"

// Magnitude returns apy2(re(c), im(c)) for a complex value of any
// supported precision.
func Magnitude[T Complex](c T) float64 {
	re, im := toFloat64(c)
	return numeric.Apy2(re, im)
}
