package filter

import (
	"sort"

	"github.com/jiapei100/openimaj"
)

// Convolve is a window processor computing the weighted sum of each window
// under a fixed kernel. It implements openimaj.KernelProcessor[float32].
type Convolve struct {
	width   int
	height  int
	weights []float32 // row-major, width*height values
}

var _ openimaj.KernelProcessor[float32] = (*Convolve)(nil)

// NewConvolve creates a convolution processor from row-major weights.
// len(weights) must be width*height; extra weights are ignored and missing
// ones read as zero.
func NewConvolve(width, height int, weights []float32) *Convolve {
	w := make([]float32, width*height)
	copy(w, weights)
	return &Convolve{width: width, height: height, weights: w}
}

// NewGaussian creates a 2D Gaussian convolution processor for the given
// sigma, built as the outer product of the 1D kernel. Kernels are cached
// per sigma.
func NewGaussian(sigma float64) *Convolve {
	k := gaussianCache.gaussian(sigma)
	return newOuterProduct(k)
}

// NewBox creates a (2*radius+1) square box-average processor.
func NewBox(radius int) *Convolve {
	return newOuterProduct(BoxKernel(radius))
}

// newOuterProduct builds a square 2D kernel from a 1D kernel.
func newOuterProduct(k []float32) *Convolve {
	n := len(k)
	weights := make([]float32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			weights[y*n+x] = k[y] * k[x]
		}
	}
	return &Convolve{width: n, height: n, weights: weights}
}

// KernelWidth returns the kernel width.
func (c *Convolve) KernelWidth() int { return c.width }

// KernelHeight returns the kernel height.
func (c *Convolve) KernelHeight() int { return c.height }

// ProcessKernel returns the weighted sum of the window under the kernel.
func (c *Convolve) ProcessKernel(window openimaj.Band[float32]) float32 {
	var sum float32
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			sum += c.weights[y*c.width+x] * window.Pixel(x, y)
		}
	}
	return sum
}

// Median is a window processor selecting the median value of each window.
// It implements openimaj.KernelProcessor[float32] and holds no per-window
// state, so one instance may be shared across parallel band fanout.
type Median struct {
	width  int
	height int
}

var _ openimaj.KernelProcessor[float32] = (*Median)(nil)

// NewMedian creates a median processor over a width x height window.
func NewMedian(width, height int) *Median {
	return &Median{width: width, height: height}
}

// KernelWidth returns the window width.
func (m *Median) KernelWidth() int { return m.width }

// KernelHeight returns the window height.
func (m *Median) KernelHeight() int { return m.height }

// ProcessKernel returns the median of the window. For an even element
// count the lower of the two middle values is returned.
func (m *Median) ProcessKernel(window openimaj.Band[float32]) float32 {
	vals := make([]float32, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			vals = append(vals, window.Pixel(x, y))
		}
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals[(len(vals)-1)/2]
}
