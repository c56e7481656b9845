package numeric

import "math"

// Apy2 computes hypot(x, y) = sqrt(x^2+y^2) without intermediate
// overflow, propagating NaN operands explicitly rather than relying on
// IEEE-754 NaN propagation through the subtraction/division below.
//
// If either operand is NaN, that NaN is returned. Otherwise let
// w = max(|x|,|y|), z = min(|x|,|y|); if z = 0 the result is w,
// otherwise w*sqrt(1+(z/w)^2).
func Apy2(x, y float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	if math.IsNaN(y) {
		return y
	}

	ax, ay := math.Abs(x), math.Abs(y)

	w, z := ax, ay
	if z > w {
		w, z = z, w
	}

	if z == 0 {
		return w
	}

	r := z / w

	return w * math.Sqrt(1+r*r)
}
