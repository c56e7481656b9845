package kernel

// Butterfly performs one decimation-in-time butterfly pass over ns
// contiguous pairs of half-spectra, reading from xa and writing to ya
// (ya and xa must be distinct buffers; xa is never modified).
//
// si is the 0-based start offset for this sub-problem, hs is the
// whole-transform half-size, ns is the number of pairs to process, ss
// is the output stride, and pd is both the input stride and the
// twiddle stride (the sub-problem's half-span).
//
// For k = 0..ns-1, with xi = si+k*pd, yi = si+k*ss:
//
//	a, b := xa[xi], xa[xi+hs]
//	ya[yi]    = a + b
//	ya[yi+pd] = (a - b) * wa[k*pd]
func Butterfly[T Complex](ya, xa, wa []T, si, hs, ns, ss, pd int) {
	for k := 0; k < ns; k++ {
		xi := si + k*pd
		yi := si + k*ss
		wi := k * pd

		a, b := xa[xi], xa[xi+hs]

		ya[yi] = a + b
		ya[yi+pd] = (a - b) * wa[wi]
	}
}
