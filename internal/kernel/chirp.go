package kernel

import "math"

// Chirp fills ca, a table of length M = len(ca), with the Bluestein
// chirp chi(i) = exp(i*pi*i^2/N) wrapped into a circulant layout over
// the extended size M for a logical transform length N.
//
// ca[0] = 1; for i = 1..N-1, ca[i] = ca[M-i] = chi(i); the interior
// i = N..M-N is zero-padded.
func Chirp[T Complex](ca []T, n int) {
	m := len(ca)

	ca[0] = fromFloat64[T](1, 0)

	for i := 1; i < n; i++ {
		fi := float64(i)
		angle := math.Pi * fi * fi / float64(n)

		v := fromFloat64[T](math.Cos(angle), math.Sin(angle))
		ca[i] = v
		ca[m-i] = v
	}

	for i := n; i <= m-n; i++ {
		ca[i] = fromFloat64[T](0, 0)
	}
}
