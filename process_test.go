package openimaj

import "testing"

// doubler doubles every element of a band, returning a fresh band.
type doubler struct{}

func (doubler) ProcessBand(b Band[float32]) Band[float32] {
	out := b.Clone()
	out.Multiply(2)
	return out
}

func TestProcessIsPure(t *testing.T) {
	m := NewRGB(2, 2)
	band(t, m, 0).Fill(0.25)
	out := m.Process(doubler{})
	if got := band(t, out, 0).Pixel(0, 0); got != 0.5 {
		t.Errorf("processed band: got %v, want 0.5", got)
	}
	if got := band(t, m, 0).Pixel(0, 0); got != 0.25 {
		t.Errorf("source mutated by Process: got %v, want 0.25", got)
	}
	if out.NumBands() != m.NumBands() || out.ColourSpace() != m.ColourSpace() {
		t.Errorf("shape metadata not preserved: %d bands, space %v",
			out.NumBands(), out.ColourSpace())
	}
}

func TestProcessInPlaceReplacesBandSlots(t *testing.T) {
	m := NewRGB(2, 2)
	band(t, m, 1).Fill(0.5)
	alias := band(t, m, 1)

	if got := m.ProcessInPlace(doubler{}); got != m {
		t.Fatal("ProcessInPlace did not return the receiver")
	}
	if got := band(t, m, 1).Pixel(0, 0); got != 1 {
		t.Errorf("replaced band: got %v, want 1", got)
	}
	// The slot was swapped, not mutated through.
	if got := alias.Pixel(0, 0); got != 0.5 {
		t.Errorf("pre-existing alias changed: got %v, want 0.5", got)
	}
}

func TestProcessFuncAdapter(t *testing.T) {
	m := NewRGB(1, 1)
	band(t, m, 0).Fill(3)
	out := m.Process(ProcessorFunc[float32](func(b Band[float32]) Band[float32] {
		c := b.Clone()
		c.Add(1)
		return c
	}))
	if got := band(t, out, 0).Pixel(0, 0); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
}

func TestProcessKernelAcrossBands(t *testing.T) {
	m := NewRGB(3, 3)
	for i := 0; i < m.NumBands(); i++ {
		band(t, m, i).Fill(1)
	}
	out := m.ProcessKernel(sumKernel{w: 3, h: 3}, false)
	for i := 0; i < out.NumBands(); i++ {
		b := band(t, out, i)
		if b.Width() != 1 || b.Height() != 1 {
			t.Fatalf("band %d: got %dx%d, want 1x1", i, b.Width(), b.Height())
		}
		if got := b.Pixel(0, 0); got != 9 {
			t.Errorf("band %d: got %v, want 9", i, got)
		}
	}
	if got := m.Width(); got != 3 {
		t.Errorf("source resized by pure kernel pass: width %d", got)
	}
}

func TestProcessKernelInPlacePadded(t *testing.T) {
	m := NewRGB(2, 2)
	band(t, m, 0).Fill(1)
	m.ProcessKernelInPlace(sumKernel{w: 3, h: 3}, true)
	if m.Width() != 2 || m.Height() != 2 {
		t.Fatalf("padded pass resized image: %dx%d", m.Width(), m.Height())
	}
	// Every 3x3 window over a 2x2 all-ones band covers all four elements.
	if got := band(t, m, 0).Pixel(0, 0); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
}

func TestProcessPixels(t *testing.T) {
	m := NewRGB(2, 1)
	band(t, m, 2).Fill(0.5)
	out := m.ProcessPixels(PixelProcessorFunc[float32](func(v float32) float32 {
		return v + 0.25
	}))
	if got := band(t, out, 2).Pixel(0, 0); got != 0.75 {
		t.Errorf("got %v, want 0.75", got)
	}
	if got := band(t, m, 2).Pixel(0, 0); got != 0.5 {
		t.Errorf("source mutated: got %v, want 0.5", got)
	}

	m.ProcessPixelsInPlace(PixelProcessorFunc[float32](func(v float32) float32 {
		return 1 - v
	}))
	if got := band(t, m, 2).Pixel(1, 0); got != 0.5 {
		t.Errorf("in place: got %v, want 0.5", got)
	}
	if got := band(t, m, 0).Pixel(0, 0); got != 1 {
		t.Errorf("in place on zero band: got %v, want 1", got)
	}
}
