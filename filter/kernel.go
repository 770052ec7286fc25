package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is 2*ceil(sigma*3)+1, covering three standard deviations
// on each side. For sigma <= 0, returns the single-element identity kernel.
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// The normalization constant of the Gaussian is dropped; the kernel
	// is normalized to unit sum below instead.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// BoxKernel generates a 1D box (uniform) kernel for the given radius.
// All values are equal: 1/(2*radius+1).
func BoxKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	size := radius*2 + 1
	kernel := make([]float32, size)
	val := float32(1.0) / float32(size)

	for i := range kernel {
		kernel[i] = val
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation when
// the same sigma is used repeatedly. Keyed by sigma*100 to sidestep float
// precision.
type kernelCache struct {
	mu    sync.RWMutex
	cache map[int][]float32
	limit int
}

var gaussianCache = &kernelCache{cache: make(map[int][]float32), limit: 64}

// gaussian returns a cached Gaussian kernel for sigma, computing and
// caching it on a miss.
func (c *kernelCache) gaussian(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(sigma)

	c.mu.Lock()
	if len(c.cache) >= c.limit {
		clear(c.cache)
	}
	c.cache[key] = k
	c.mu.Unlock()

	return k
}
