package openimaj

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ToImage converts the image to a stdlib *image.NRGBA via its packed ARGB
// pixels. The packed channels are straight (non-premultiplied) alpha, which
// is what NRGBA stores; converting into an alpha-premultiplied type would
// corrupt translucent pixels. Only 1-, 3- and 4-band images can be
// converted; any other band count fails with [ErrUnsupportedBandCount].
func ToImage[T any](m *MultiBand[T]) (*image.NRGBA, error) {
	packed, err := m.PackedPixels()
	if err != nil {
		return nil, err
	}
	width, height := m.Width(), m.Height()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range packed {
		img.Pix[4*i+0] = uint8(p >> 16)
		img.Pix[4*i+1] = uint8(p >> 8)
		img.Pix[4*i+2] = uint8(p)
		img.Pix[4*i+3] = uint8(p >> 24)
	}
	return img, nil
}

// FromImage converts a stdlib image into a 4-band RGBA float image with
// elements in [0, 1].
func FromImage(img image.Image) *MultiBand[float32] {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := NewRGBA(width, height)

	bands := out.Bands()
	r := bands[0].(*FloatBand)
	g := bands[1].(*FloatBand)
	b := bands[2].(*FloatBand)
	a := bands[3].(*FloatBand)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := y*width + x
			r.pix[i] = float32(c.R) / 255
			g.pix[i] = float32(c.G) / 255
			b.pix[i] = float32(c.B) / 255
			a.pix[i] = float32(c.A) / 255
		}
	}
	return out
}

// Scaled resamples a float image to width x height using the given scaler
// (for example [draw.CatmullRom]); a nil scaler selects Catmull-Rom. The
// image is scaled in 8-bit straight-alpha space, so the result is quantized
// to byte precision. The band count (1, 3 or 4) and colour-space tag are preserved;
// other band counts fail with [ErrUnsupportedBandCount].
func Scaled(m *MultiBand[float32], width, height int, scaler draw.Scaler) (*MultiBand[float32], error) {
	src, err := ToImage(m)
	if err != nil {
		return nil, err
	}
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	// Scaling NRGBA to NRGBA keeps the channels straight-alpha end to end.
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := FromImage(dst)
	switch m.NumBands() {
	case 1:
		// Grey went out broadcast to R=G=B; take red back as the band.
		out.bands = out.bands[:1]
	case 3:
		out.bands = out.bands[:3]
	}
	out.space = m.space
	out.workers = m.workers
	return out, nil
}
