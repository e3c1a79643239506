package filter

import (
	"math"
	"testing"
)

func TestGaussianKernel(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		wantSize int
	}{
		{"zero radius", 0, 1},
		{"negative radius", -1, 1},
		{"radius 1", 1, 7},
		{"radius 2.5", 2.5, 17},
		{"radius 5", 5, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.radius)
			if len(k) != tt.wantSize {
				t.Fatalf("len = %d, want %d", len(k), tt.wantSize)
			}
			var sum float64
			for _, v := range k {
				sum += float64(v)
			}
			if math.Abs(sum-1) > 1e-4 {
				t.Errorf("sum = %v, want 1", sum)
			}
			// Symmetric and peaked at the center.
			c := len(k) / 2
			for i := 0; i < c; i++ {
				if math.Abs(float64(k[i]-k[len(k)-1-i])) > 1e-6 {
					t.Errorf("kernel not symmetric at %d", i)
				}
				if k[i] > k[c] {
					t.Errorf("k[%d] = %v > center %v", i, k[i], k[c])
				}
			}
		})
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(3)
	b := CachedGaussianKernel(3)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel did not reuse the cached kernel")
	}
}

func TestKernelExtent(t *testing.T) {
	if got := KernelExtent(0); got != 0 {
		t.Errorf("KernelExtent(0) = %d", got)
	}
	if got := KernelExtent(5); got != 15 {
		t.Errorf("KernelExtent(5) = %d, want 15", got)
	}
}
