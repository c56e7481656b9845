package kernel

// DITNN schedules log2(2*hs) decimation-in-time butterfly passes over
// sa and ba, ping-ponging between the two buffers so that no pass ever
// reads and writes the same buffer. hs is N/2 for a transform of size
// N = 2*hs.
//
// The result is in natural order. It lands in ba when the number of
// passes is odd, in sa when even; callers precompute that parity (see
// Radix2Kernel.ifswap in radix2.go) rather than inspecting it here.
func DITNN[T Complex](sa, ba, wa []T, hs int) {
	ns, pd, ss := hs, 1, 2
	fromSA := true

	for ns > 0 {
		for si := 0; si < pd; si++ {
			if fromSA {
				Butterfly(ba, sa, wa, si, hs, ns, ss, pd)
			} else {
				Butterfly(sa, ba, wa, si, hs, ns, ss, pd)
			}
		}

		ns /= 2
		pd *= 2
		ss *= 2
		fromSA = !fromSA
	}
}
