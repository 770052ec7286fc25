package filter

import (
	"math"
	"testing"

	"github.com/jiapei100/openimaj"
)

// imgBand fetches band i, failing the test on an index error.
func imgBand(t *testing.T, m *openimaj.MultiBand[float32], i int) openimaj.Band[float32] {
	t.Helper()
	b, err := m.Band(i)
	if err != nil {
		t.Fatalf("Band(%d): %v", i, err)
	}
	return b
}

func constBand(w, h int, v float32) openimaj.Band[float32] {
	b := openimaj.NewFloatBand(w, h)
	b.Fill(v)
	return b
}

func TestConvolveWeightedSum(t *testing.T) {
	c := NewConvolve(3, 1, []float32{1, 2, 3})
	win := openimaj.NewFloatBandData(3, 1, []float32{10, 20, 30})
	if got := c.ProcessKernel(win); got != 140 {
		t.Errorf("got %v, want 140", got)
	}
}

func TestBoxPreservesConstant(t *testing.T) {
	b := constBand(6, 6, 0.5)
	out := b.ProcessKernel(NewBox(1), false)
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("got %dx%d, want 4x4", out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := out.Pixel(x, y); math.Abs(float64(got)-0.5) > 1e-6 {
				t.Fatalf("(%d,%d): got %v, want 0.5", x, y, got)
			}
		}
	}
}

func TestGaussianPreservesConstant(t *testing.T) {
	g := NewGaussian(1.0)
	b := constBand(g.KernelWidth()+2, g.KernelHeight()+2, 1)
	out := b.ProcessKernel(g, false)
	if got := out.Pixel(0, 0); math.Abs(float64(got)-1) > 1e-5 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestGaussianSmoothsImage(t *testing.T) {
	img := openimaj.NewRGB(9, 9)
	// A single bright pixel in the middle of band 0.
	imgBand(t, img, 0).SetPixel(4, 4, 1)
	out := img.ProcessKernel(NewGaussian(1.0), true)

	centre := imgBand(t, out, 0).Pixel(4, 4)
	if centre <= 0 || centre >= 1 {
		t.Errorf("centre after blur: got %v, want in (0,1)", centre)
	}
	if got := imgBand(t, out, 0).Pixel(4, 3); got <= 0 {
		t.Errorf("neighbour after blur: got %v, want > 0", got)
	}
	if got := imgBand(t, out, 1).Pixel(4, 4); got != 0 {
		t.Errorf("zero band gained energy: got %v", got)
	}
}

func TestMedianRejectsOutlier(t *testing.T) {
	m := NewMedian(3, 3)
	win := openimaj.NewFloatBandData(3, 3, []float32{
		0.1, 0.1, 0.1,
		0.1, 9.0, 0.1,
		0.1, 0.1, 0.1,
	})
	if got := m.ProcessKernel(win); got != 0.1 {
		t.Errorf("got %v, want 0.1", got)
	}
}

func TestMedianEvenWindowTakesLowerMiddle(t *testing.T) {
	m := NewMedian(2, 2)
	win := openimaj.NewFloatBandData(2, 2, []float32{4, 1, 3, 2})
	if got := m.ProcessKernel(win); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}
