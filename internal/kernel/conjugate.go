package kernel

// Conjugate returns the complex conjugate of c.
func Conjugate[T Complex](c T) T {
	re, im := ToFloat64(c)
	return FromFloat64[T](re, -im)
}

// ScaleConjugate returns conj(c) * scale.
func ScaleConjugate[T Complex](c T, scale float64) T {
	re, im := ToFloat64(c)
	return FromFloat64[T](re*scale, -im*scale)
}
