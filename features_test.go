package cfft

import "testing"

func TestKernelFeatures_MatchesDetected(t *testing.T) {
	t.Parallel()

	k, err := NewRadix2Kernel[complex128](8)
	if err != nil {
		t.Fatalf("NewRadix2Kernel(8) failed: %v", err)
	}

	want := detectFeatures()
	got := k.Features()

	if got != want {
		t.Fatalf("Features() = %+v, want %+v", got, want)
	}
}

func TestBluesteinFeatures_MatchesDetected(t *testing.T) {
	t.Parallel()

	k, err := NewBluesteinKernel[complex128](5)
	if err != nil {
		t.Fatalf("NewBluesteinKernel(5) failed: %v", err)
	}

	want := detectFeatures()
	got := k.Features()

	if got != want {
		t.Fatalf("Features() = %+v, want %+v", got, want)
	}
}
