package kernel

// FromFloat64 builds a complex value of type T from float64 components,
// narrowing to float32 when T is complex64. Mirrors the dispatch used
// throughout this package for precision-generic numeric code.
func FromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		v, _ := any(complex(float32(re), float32(im))).(T)
		return v
	case complex128:
		v, _ := any(complex(re, im)).(T)
		return v
	default:
		return zero
	}
}

// ToFloat64 extracts the real and imaginary parts of c as float64,
// widening from float32 when T is complex64.
func ToFloat64[T Complex](c T) (re, im float64) {
	switch v := any(c).(type) {
	case complex64:
		return float64(real(v)), float64(imag(v))
	case complex128:
		return real(v), imag(v)
	default:
		return 0, 0
	}
}

func fromFloat64[T Complex](re, im float64) T {
	return FromFloat64[T](re, im)
}

func toFloat64[T Complex](c T) (float64, float64) {
	return ToFloat64[T](c)
}
