package cpuinfo

import (
	"runtime"
	"testing"
)

func TestDetect_ReportsRuntimeArch(t *testing.T) {
	t.Parallel()

	f := Detect()

	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
}

func TestDetect_IsStable(t *testing.T) {
	t.Parallel()

	a := Detect()
	b := Detect()

	if a != b {
		t.Fatalf("Detect() is not stable across calls: %+v != %+v", a, b)
	}
}
