package openimaj

import (
	"image"
	"image/color"
	"testing"
)

func TestToImage(t *testing.T) {
	m := NewRGB(1, 1)
	if _, err := m.Fill(1, 0.5, 0); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	img, err := ToImage(m)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 1, 1) {
		t.Fatalf("bounds: got %v", got)
	}
	r, g, b, a := img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("got RGBA %d %d %d %d, want 255 128 0 255", r, g, b, a)
	}
}

func TestToImageUnsupportedBands(t *testing.T) {
	m, err := NewFloat(Custom, NewFloatBand(1, 1), NewFloatBand(1, 1))
	if err != nil {
		t.Fatalf("NewFloat: %v", err)
	}
	if _, err := ToImage(m); err == nil {
		t.Error("ToImage on a 2-band image: got nil error")
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 200})

	m := FromImage(src)
	if m.NumBands() != 4 || m.ColourSpace() != RGBA {
		t.Fatalf("got %d bands, space %v", m.NumBands(), m.ColourSpace())
	}
	if got := band(t, m, 0).Pixel(0, 0); got != 1 {
		t.Errorf("red at (0,0): got %v, want 1", got)
	}
	if got := band(t, m, 3).Pixel(1, 0); got != float32(200)/255 {
		t.Errorf("alpha at (1,0): got %v", got)
	}

	out, err := ToImage(m)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	for i, want := range []uint8{255, 128, 0, 255, 10, 20, 30, 200} {
		if got := out.Pix[i]; got != want {
			t.Errorf("Pix[%d]: got %d, want %d", i, got, want)
		}
	}
}

func TestToImageTranslucentPixel(t *testing.T) {
	// Straight-alpha channels must survive the conversion: a translucent
	// pixel with R > A is only representable in a non-premultiplied image.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 0, B: 0, A: 100})

	out, err := ToImage(FromImage(src))
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	got := color.NRGBAModel.Convert(out.At(0, 0)).(color.NRGBA)
	if got.R != 200 || got.A != 100 {
		t.Errorf("round trip: got R=%d A=%d, want R=200 A=100", got.R, got.A)
	}
}

func TestScaledPreservesBandCount(t *testing.T) {
	m := NewRGB(4, 4)
	if _, err := m.Fill(0.5, 0.5, 0.5); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	out, err := Scaled(m, 2, 2, nil)
	if err != nil {
		t.Fatalf("Scaled: %v", err)
	}
	if out.Width() != 2 || out.Height() != 2 {
		t.Fatalf("got %dx%d, want 2x2", out.Width(), out.Height())
	}
	if out.NumBands() != 3 || out.ColourSpace() != RGB {
		t.Errorf("got %d bands, space %v, want 3 RGB", out.NumBands(), out.ColourSpace())
	}
	// A constant image stays constant under any interpolation, up to the
	// 8-bit quantization of the scaling path.
	got := band(t, out, 0).Pixel(1, 1)
	if got < 0.49 || got > 0.51 {
		t.Errorf("constant image changed under scaling: got %v", got)
	}
}

func TestScaledGrey(t *testing.T) {
	b := NewFloatBand(3, 3)
	b.Fill(1)
	m, err := NewFloat(Grey, b)
	if err != nil {
		t.Fatalf("NewFloat: %v", err)
	}
	out, err := Scaled(m, 6, 6, nil)
	if err != nil {
		t.Fatalf("Scaled: %v", err)
	}
	if out.NumBands() != 1 || out.ColourSpace() != Grey {
		t.Errorf("got %d bands, space %v, want 1 Grey", out.NumBands(), out.ColourSpace())
	}
	if got := band(t, out, 0).Pixel(3, 3); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}
