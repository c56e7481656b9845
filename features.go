package cfft

import "github.com/dmarchuk/cfft/internal/cpuinfo"

// Features describes the vector-extension support of the CPU a kernel
// was constructed on. It is informational only: no transform in this
// package branches on it.
type Features = cpuinfo.Features

// detectFeatures reports the CPU feature bits detected when the process
// started. It is provided for diagnostics and benchmarking reports;
// every kernel type exposes it via a Features method.
func detectFeatures() Features {
	return cpuinfo.Detect()
}
