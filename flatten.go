package openimaj

import "image"

// FlattenAverage reduces the bands to a single band holding the arithmetic
// mean at each location: the elementwise sum of all bands divided by the
// band count, under the element type's division semantics. The sum is fully
// accumulated before dividing, so rounding does not depend on band order.
// The accumulation itself also uses the element type's arithmetic, so
// fixed-width integer elements ([ByteBand]) wrap when a band sum exceeds the
// type's range. Returns nil for an empty image.
func (m *MultiBand[T]) FlattenAverage() Band[T] {
	if len(m.bands) == 0 {
		return nil
	}
	out := m.bands[0].New(m.Width(), m.Height())
	for _, b := range m.bands {
		out.AddBand(b)
	}
	out.Divide(m.ops.FromInt(len(m.bands)))
	return out
}

// FlattenMax reduces the bands to a single band holding, at each location,
// the maximum value across bands under the element type's total order.
// Returns nil for an empty image.
func (m *MultiBand[T]) FlattenMax() Band[T] {
	if len(m.bands) == 0 {
		return nil
	}
	out := m.bands[0].Clone()
	w, h := m.Width(), m.Height()
	for _, b := range m.bands[1:] {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if v := b.Pixel(x, y); m.ops.Less(out.Pixel(x, y), v) {
					out.SetPixel(x, y, v)
				}
			}
		}
	}
	return out
}

// ContentArea returns the axis-aligned bounding rectangle covering every
// band's own non-empty content rectangle: the union, not the intersection.
// Bands without content contribute nothing; an image with no content
// returns the zero rectangle.
func (m *MultiBand[T]) ContentArea() image.Rectangle {
	var area image.Rectangle
	for _, b := range m.bands {
		area = area.Union(b.ContentArea())
	}
	return area
}

// InterleavedBytes returns a buffer of NumBands() * Width() * Height()
// bytes in which all bands' values for each pixel are contiguous, in band
// order, pixel by pixel in row-major order:
//
//	out[NumBands()*(x + y*Width()) + band]
//
// Each band contributes its own byte conversion (see [Band.Bytes]).
func (m *MultiBand[T]) InterleavedBytes() []byte {
	width, height, nb := m.Width(), m.Height(), len(m.bands)
	out := make([]byte, nb*width*height)
	for n, b := range m.bands {
		band := b.Bytes()
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				out[nb*(x+y*width)+n] = band[x+y*width]
			}
		}
	}
	return out
}

// PackedPixels returns one packed 32-bit value per pixel in row-major
// order.
//
// A 1-band image delegates to the band's own packing (grey broadcast to the
// colour channels, alpha 0xFF). A 3-band image is packed as opaque RGB
// (band 0 red, band 1 green, band 2 blue); a 4-band image as ARGB with the
// alpha taken from band 3. Each channel is masked to its low 8 bits before
// shifting. Any other band count fails with [ErrUnsupportedBandCount].
func (m *MultiBand[T]) PackedPixels() ([]uint32, error) {
	switch len(m.bands) {
	case 1:
		return m.bands[0].PackedPixels(), nil
	case 3:
		width, height := m.Width(), m.Height()
		rp, gp, bp := m.bands[0].Bytes(), m.bands[1].Bytes(), m.bands[2].Bytes()

		out := make([]uint32, width*height)
		for i := range out {
			out[i] = 0xff<<24 | uint32(rp[i])<<16 | uint32(gp[i])<<8 | uint32(bp[i])
		}
		return out, nil
	case 4:
		width, height := m.Width(), m.Height()
		rp, gp, bp := m.bands[0].Bytes(), m.bands[1].Bytes(), m.bands[2].Bytes()
		ap := m.bands[3].Bytes()

		out := make([]uint32, width*height)
		for i := range out {
			out[i] = uint32(ap[i])<<24 | uint32(rp[i])<<16 | uint32(gp[i])<<8 | uint32(bp[i])
		}
		return out, nil
	default:
		return nil, ErrUnsupportedBandCount
	}
}
