package filter

import (
	"math"

	"github.com/jiapei100/openimaj"
)

// MitchellSupport is the half-width of the Mitchell filter's support.
const MitchellSupport = 2.0

// Mitchell returns the Mitchell-Netravali cubic weight for offset t, with
// B = C = 1/3. The weight is zero outside (-2, 2).
func Mitchell(t float64) float64 {
	const b, c = 1.0 / 3.0, 1.0 / 3.0

	tt := t * t
	if t < 0 {
		t = -t
	}
	if t < 1.0 {
		t = ((12.0-9.0*b-6.0*c)*(t*tt) + (-18.0+12.0*b+6.0*c)*tt + (6.0 - 2*b))
		return t / 6.0
	}
	if t < 2.0 {
		t = ((-1.0*b-6.0*c)*(t*tt) + (6.0*b+30.0*c)*tt + (-12.0*b-48.0*c)*t + (8.0*b + 24*c))
		return t / 6.0
	}
	return 0.0
}

// Resample resamples b to width x height with the Mitchell filter, one
// separable pass per axis. Filter support widens proportionally when
// downsampling; source reads past the edges clamp to the edge.
func Resample(b openimaj.Band[float32], width, height int) openimaj.Band[float32] {
	horizontal := resampleRows(b, width)
	return transposeBand(resampleRows(transposeBand(horizontal), height))
}

// ResampleImage resamples every band of a float image, preserving band
// order and the colour-space tag.
func ResampleImage(m *openimaj.MultiBand[float32], width, height int) *openimaj.MultiBand[float32] {
	return m.Process(openimaj.ProcessorFunc[float32](func(b openimaj.Band[float32]) openimaj.Band[float32] {
		return Resample(b, width, height)
	}))
}

// resampleRows resamples each row of b to the given width.
func resampleRows(b openimaj.Band[float32], width int) openimaj.Band[float32] {
	srcW, srcH := b.Width(), b.Height()
	out := b.New(width, srcH)
	if width <= 0 || srcW == 0 {
		return out
	}

	scale := float64(srcW) / float64(width)
	fscale := scale
	if fscale < 1 {
		fscale = 1
	}
	support := MitchellSupport * fscale

	for x := 0; x < width; x++ {
		center := (float64(x)+0.5)*scale - 0.5
		lo := int(math.Ceil(center - support))
		hi := int(math.Floor(center + support))

		var weights []float64
		var sum float64
		for i := lo; i <= hi; i++ {
			w := Mitchell((float64(i) - center) / fscale)
			weights = append(weights, w)
			sum += w
		}

		for y := 0; y < srcH; y++ {
			var acc float64
			for i := lo; i <= hi; i++ {
				sx := i
				if sx < 0 {
					sx = 0
				} else if sx >= srcW {
					sx = srcW - 1
				}
				acc += weights[i-lo] * float64(b.Pixel(sx, y))
			}
			if sum != 0 {
				acc /= sum
			}
			out.SetPixel(x, y, float32(acc))
		}
	}
	return out
}

// transposeBand returns the band with rows and columns swapped.
func transposeBand(b openimaj.Band[float32]) openimaj.Band[float32] {
	w, h := b.Width(), b.Height()
	out := b.New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixel(y, x, b.Pixel(x, y))
		}
	}
	return out
}
