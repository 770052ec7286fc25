package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelSumsToOne(t *testing.T) {
	for _, sigma := range []float64{0.5, 1.0, 2.5} {
		k := GaussianKernel(sigma)
		if len(k)%2 != 1 {
			t.Errorf("sigma=%v: even kernel size %d", sigma, len(k))
		}
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("sigma=%v: kernel sums to %v, want 1", sigma, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	k := GaussianKernel(1.5)
	mid := len(k) / 2
	for i := 0; i <= mid; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Errorf("kernel[%d]=%v != kernel[%d]=%v", i, k[i], len(k)-1-i, k[len(k)-1-i])
		}
		if i < mid && k[i] > k[i+1] {
			t.Errorf("kernel not increasing toward centre at %d", i)
		}
	}
}

func TestGaussianKernelIdentity(t *testing.T) {
	for _, sigma := range []float64{0, -1} {
		k := GaussianKernel(sigma)
		if len(k) != 1 || k[0] != 1 {
			t.Errorf("sigma=%v: got %v, want [1]", sigma, k)
		}
	}
}

func TestBoxKernel(t *testing.T) {
	k := BoxKernel(2)
	if len(k) != 5 {
		t.Fatalf("radius 2: got size %d, want 5", len(k))
	}
	for i, v := range k {
		if v != 0.2 {
			t.Errorf("kernel[%d]: got %v, want 0.2", i, v)
		}
	}
	if k := BoxKernel(0); len(k) != 1 || k[0] != 1 {
		t.Errorf("radius 0: got %v, want [1]", k)
	}
}

func TestGaussianCacheReturnsSameKernel(t *testing.T) {
	a := gaussianCache.gaussian(1.25)
	b := gaussianCache.gaussian(1.25)
	if &a[0] != &b[0] {
		t.Error("repeated sigma did not hit the cache")
	}
}
