package openimaj

import (
	"image"
	"math"
)

// FloatBand is a single-band array of float32 elements with a nominal [0,1]
// range, stored row-major. It implements [Band].
//
// Byte conversion clamps 255*v into [0,255]; values outside the nominal
// range are legal and survive arithmetic untouched.
type FloatBand struct {
	width  int
	height int
	pix    []float32
}

var (
	_ Band[float32] = (*FloatBand)(nil)
	_ Ops[float32]  = Float32Ops{}
)

// NewFloatBand creates a zeroed width x height float band.
func NewFloatBand(width, height int) *FloatBand {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &FloatBand{
		width:  width,
		height: height,
		pix:    make([]float32, width*height),
	}
}

// NewFloatBandData creates a width x height float band initialized from
// data in row-major order. The data is copied; missing trailing elements
// remain zero.
func NewFloatBandData(width, height int, data []float32) *FloatBand {
	b := NewFloatBand(width, height)
	copy(b.pix, data)
	return b
}

// Float32Ops is the [Ops] implementation pairing [MultiBand] with
// [FloatBand].
type Float32Ops struct{}

// NewBand returns a zeroed FloatBand.
func (Float32Ops) NewBand(width, height int) Band[float32] { return NewFloatBand(width, height) }

// FromInt converts n to float32.
func (Float32Ops) FromInt(n int) float32 { return float32(n) }

// Less reports a < b.
func (Float32Ops) Less(a, b float32) bool { return a < b }

// NewFloat constructs a float multi-band image from the given bands, in
// order. All bands must share identical dimensions.
func NewFloat(space ColourSpace, bands ...Band[float32]) (*MultiBand[float32], error) {
	return New[float32](Float32Ops{}, space, bands...)
}

// NewRGB creates a width x height float image with three zeroed bands
// tagged as RGB.
func NewRGB(width, height int) *MultiBand[float32] {
	return NewSized[float32](Float32Ops{}, RGB, width, height)
}

// NewRGBA creates a width x height float image with four zeroed bands
// tagged as RGBA.
func NewRGBA(width, height int) *MultiBand[float32] {
	return NewSized[float32](Float32Ops{}, RGBA, width, height)
}

// Width returns the number of columns.
func (b *FloatBand) Width() int { return b.width }

// Height returns the number of rows.
func (b *FloatBand) Height() int { return b.height }

// Data returns the raw row-major element buffer. The slice aliases the
// band's storage.
func (b *FloatBand) Data() []float32 { return b.pix }

// New returns a zeroed FloatBand of the given dimensions.
func (b *FloatBand) New(width, height int) Band[float32] { return NewFloatBand(width, height) }

// Clone returns a deep copy of the band.
func (b *FloatBand) Clone() Band[float32] {
	out := NewFloatBand(b.width, b.height)
	copy(out.pix, b.pix)
	return out
}

// Equals reports whether other has identical dimensions and contents.
func (b *FloatBand) Equals(other Band[float32]) bool {
	if other == nil || other.Width() != b.width || other.Height() != b.height {
		return false
	}
	if o, ok := other.(*FloatBand); ok {
		for i, v := range b.pix {
			if o.pix[i] != v {
				return false
			}
		}
		return true
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if other.Pixel(x, y) != b.pix[y*b.width+x] {
				return false
			}
		}
	}
	return true
}

// Pixel returns the element at (x, y), or 0 when out of range.
func (b *FloatBand) Pixel(x, y int) float32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// SetPixel stores v at (x, y). Out-of-range coordinates are ignored.
func (b *FloatBand) SetPixel(x, y int, v float32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = v
}

// Fill sets every element to v.
func (b *FloatBand) Fill(v float32) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Add adds v to every element.
func (b *FloatBand) Add(v float32) {
	for i := range b.pix {
		b.pix[i] += v
	}
}

// AddBand adds the corresponding element of other to every element.
func (b *FloatBand) AddBand(other Band[float32]) {
	b.combine(other, func(a, v float32) float32 { return a + v })
}

// Subtract subtracts v from every element.
func (b *FloatBand) Subtract(v float32) {
	for i := range b.pix {
		b.pix[i] -= v
	}
}

// SubtractBand subtracts the corresponding element of other from every
// element.
func (b *FloatBand) SubtractBand(other Band[float32]) {
	b.combine(other, func(a, v float32) float32 { return a - v })
}

// Multiply multiplies every element by v.
func (b *FloatBand) Multiply(v float32) {
	for i := range b.pix {
		b.pix[i] *= v
	}
}

// MultiplyBand multiplies every element by the corresponding element of
// other.
func (b *FloatBand) MultiplyBand(other Band[float32]) {
	b.combine(other, func(a, v float32) float32 { return a * v })
}

// Divide divides every element by v.
func (b *FloatBand) Divide(v float32) {
	for i := range b.pix {
		b.pix[i] /= v
	}
}

// DivideBand divides every element by the corresponding element of other.
func (b *FloatBand) DivideBand(other Band[float32]) {
	b.combine(other, func(a, v float32) float32 { return a / v })
}

// combine applies f elementwise over the region where b and other overlap.
func (b *FloatBand) combine(other Band[float32], f func(a, v float32) float32) {
	w, h := b.width, b.height
	if ow := other.Width(); ow < w {
		w = ow
	}
	if oh := other.Height(); oh < h {
		h = oh
	}
	if o, ok := other.(*FloatBand); ok {
		for y := 0; y < h; y++ {
			row, orow := b.pix[y*b.width:], o.pix[y*o.width:]
			for x := 0; x < w; x++ {
				row[x] = f(row[x], orow[x])
			}
		}
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.pix[y*b.width+x] = f(b.pix[y*b.width+x], other.Pixel(x, y))
		}
	}
}

// Clip clamps every element into [min, max].
func (b *FloatBand) Clip(min, max float32) {
	for i, v := range b.pix {
		if v < min {
			b.pix[i] = min
		} else if v > max {
			b.pix[i] = max
		}
	}
}

// ClipMin clamps every element below min up to min.
func (b *FloatBand) ClipMin(min float32) {
	for i, v := range b.pix {
		if v < min {
			b.pix[i] = min
		}
	}
}

// ClipMax clamps every element above max down to max.
func (b *FloatBand) ClipMax(max float32) {
	for i, v := range b.pix {
		if v > max {
			b.pix[i] = max
		}
	}
}

// Threshold sets elements at or below t to 0 and all others to 1.
func (b *FloatBand) Threshold(t float32) {
	for i, v := range b.pix {
		if v <= t {
			b.pix[i] = 0
		} else {
			b.pix[i] = 1
		}
	}
}

// Abs replaces every element with its absolute value.
func (b *FloatBand) Abs() {
	for i, v := range b.pix {
		if v < 0 {
			b.pix[i] = -v
		}
	}
}

// Inverse reflects every element about the band's current maximum.
func (b *FloatBand) Inverse() {
	max := b.Max()
	for i, v := range b.pix {
		b.pix[i] = max - v
	}
}

// Normalise linearly rescales the contents to [0, 1]. A flat band is left
// unchanged.
func (b *FloatBand) Normalise() {
	if len(b.pix) == 0 {
		return
	}
	min, max := b.Min(), b.Max()
	if max <= min {
		return
	}
	scale := 1 / (max - min)
	for i, v := range b.pix {
		b.pix[i] = (v - min) * scale
	}
}

// Zero sets every element to 0.
func (b *FloatBand) Zero() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}

// FlipX mirrors the band horizontally.
func (b *FloatBand) FlipX() {
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.width : (y+1)*b.width]
		for i, j := 0, b.width-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// FlipY mirrors the band vertically.
func (b *FloatBand) FlipY() {
	tmp := make([]float32, b.width)
	for i, j := 0, b.height-1; i < j; i, j = i+1, j-1 {
		top := b.pix[i*b.width : (i+1)*b.width]
		bottom := b.pix[j*b.width : (j+1)*b.width]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// ShiftLeft rotates the contents n columns to the left with wrap-around.
func (b *FloatBand) ShiftLeft(n int) { b.rotate(n) }

// ShiftRight rotates the contents n columns to the right with wrap-around.
func (b *FloatBand) ShiftRight(n int) { b.rotate(-n) }

// rotate shifts every row left by n columns, wrapping. Negative n shifts
// right.
func (b *FloatBand) rotate(n int) {
	if b.width == 0 {
		return
	}
	n = ((n % b.width) + b.width) % b.width
	if n == 0 {
		return
	}
	tmp := make([]float32, b.width)
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.width : (y+1)*b.width]
		copy(tmp, row[n:])
		copy(tmp[b.width-n:], row[:n])
		copy(row, tmp)
	}
}

// Min returns the smallest element, or 0 for an empty band.
func (b *FloatBand) Min() float32 {
	if len(b.pix) == 0 {
		return 0
	}
	min := b.pix[0]
	for _, v := range b.pix[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest element, or 0 for an empty band.
func (b *FloatBand) Max() float32 {
	if len(b.pix) == 0 {
		return 0
	}
	max := b.pix[0]
	for _, v := range b.pix[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// ExtractROI copies the w x h region at (x, y) into a new band.
// Out-of-range source coordinates read as 0.
func (b *FloatBand) ExtractROI(x, y, w, h int) Band[float32] {
	out := NewFloatBand(w, h)
	b.ExtractROIInto(x, y, out)
	return out
}

// ExtractROIInto fills out with the region of the receiver starting at
// (x, y), using out's dimensions as the region size.
func (b *FloatBand) ExtractROIInto(x, y int, out Band[float32]) {
	if o, ok := out.(*FloatBand); ok {
		for j := 0; j < o.height; j++ {
			for i := 0; i < o.width; i++ {
				o.pix[j*o.width+i] = b.Pixel(x+i, y+j)
			}
		}
		return
	}
	w, h := out.Width(), out.Height()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			out.SetPixel(i, j, b.Pixel(x+i, y+j))
		}
	}
}

// ContentArea returns the bounding rectangle of non-zero elements in the
// half-open convention, or the zero rectangle for an all-zero band.
func (b *FloatBand) ContentArea() image.Rectangle {
	return contentArea(b.width, b.height, func(x, y int) bool {
		return b.pix[y*b.width+x] != 0
	})
}

// Bytes returns one byte per element in row-major order, clamping 255*v
// into [0, 255].
func (b *FloatBand) Bytes() []byte {
	out := make([]byte, len(b.pix))
	for i, v := range b.pix {
		out[i] = floatToByte(v)
	}
	return out
}

// PackedPixels returns one opaque grey ARGB value per element.
func (b *FloatBand) PackedPixels() []uint32 {
	out := make([]uint32, len(b.pix))
	for i, v := range b.pix {
		g := uint32(floatToByte(v))
		out[i] = 0xff<<24 | g<<16 | g<<8 | g
	}
	return out
}

// Process applies the stateless per-band transform p.
func (b *FloatBand) Process(p Processor[float32]) Band[float32] {
	return p.ProcessBand(b)
}

// ProcessKernel slides k over the band. See [Band.ProcessKernel].
func (b *FloatBand) ProcessKernel(k KernelProcessor[float32], pad bool) Band[float32] {
	return processKernel[float32](b, k, pad)
}

// ProcessPixels applies g to every element, returning a new band.
func (b *FloatBand) ProcessPixels(g PixelProcessor[float32]) Band[float32] {
	out := b.Clone().(*FloatBand)
	out.ProcessPixelsInPlace(g)
	return out
}

// ProcessPixelsInPlace applies g to every element in place.
func (b *FloatBand) ProcessPixelsInPlace(g PixelProcessor[float32]) {
	for i, v := range b.pix {
		b.pix[i] = g.ProcessPixel(v)
	}
}

// floatToByte converts a nominal-[0,1] value to a byte, clamping.
func floatToByte(v float32) byte {
	s := math.Round(float64(v) * 255)
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return byte(s)
}

// contentArea scans a width x height grid for cells where nonZero reports
// true and returns their half-open bounding rectangle, or the zero
// rectangle when there are none.
func contentArea(width, height int, nonZero func(x, y int) bool) image.Rectangle {
	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !nonZero(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// processKernel drives a sliding-window pass over b. With pad set, windows
// are centred on every element and the output matches the input size;
// without it the output shrinks by the kernel size minus one per dimension.
func processKernel[T any](b Band[T], k KernelProcessor[T], pad bool) Band[T] {
	kw, kh := k.KernelWidth(), k.KernelHeight()
	window := b.New(kw, kh)

	if pad {
		hw, hh := kw/2, kh/2
		out := b.New(b.Width(), b.Height())
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				b.ExtractROIInto(x-hw, y-hh, window)
				out.SetPixel(x, y, k.ProcessKernel(window))
			}
		}
		return out
	}

	ow, oh := b.Width()-kw+1, b.Height()-kh+1
	if ow < 0 {
		ow = 0
	}
	if oh < 0 {
		oh = 0
	}
	out := b.New(ow, oh)
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			b.ExtractROIInto(x, y, window)
			out.SetPixel(x, y, k.ProcessKernel(window))
		}
	}
	return out
}
