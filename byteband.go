package openimaj

import "image"

// ByteBand is a single-band array of full-range uint8 elements, stored
// row-major. It implements [Band].
//
// Arithmetic uses native uint8 semantics: addition and subtraction wrap,
// division truncates. Byte conversion is the identity.
type ByteBand struct {
	width  int
	height int
	pix    []uint8
}

var (
	_ Band[uint8] = (*ByteBand)(nil)
	_ Ops[uint8]  = Uint8Ops{}
)

// NewByteBand creates a zeroed width x height byte band.
func NewByteBand(width, height int) *ByteBand {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ByteBand{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// NewByteBandData creates a width x height byte band initialized from data
// in row-major order. The data is copied; missing trailing elements remain
// zero.
func NewByteBandData(width, height int, data []uint8) *ByteBand {
	b := NewByteBand(width, height)
	copy(b.pix, data)
	return b
}

// Uint8Ops is the [Ops] implementation pairing [MultiBand] with [ByteBand].
type Uint8Ops struct{}

// NewBand returns a zeroed ByteBand.
func (Uint8Ops) NewBand(width, height int) Band[uint8] { return NewByteBand(width, height) }

// FromInt converts n to uint8, clamping into [0, 255].
func (Uint8Ops) FromInt(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Less reports a < b.
func (Uint8Ops) Less(a, b uint8) bool { return a < b }

// NewByte constructs a byte multi-band image from the given bands, in
// order. All bands must share identical dimensions.
func NewByte(space ColourSpace, bands ...Band[uint8]) (*MultiBand[uint8], error) {
	return New[uint8](Uint8Ops{}, space, bands...)
}

// Width returns the number of columns.
func (b *ByteBand) Width() int { return b.width }

// Height returns the number of rows.
func (b *ByteBand) Height() int { return b.height }

// Data returns the raw row-major element buffer. The slice aliases the
// band's storage.
func (b *ByteBand) Data() []uint8 { return b.pix }

// New returns a zeroed ByteBand of the given dimensions.
func (b *ByteBand) New(width, height int) Band[uint8] { return NewByteBand(width, height) }

// Clone returns a deep copy of the band.
func (b *ByteBand) Clone() Band[uint8] {
	out := NewByteBand(b.width, b.height)
	copy(out.pix, b.pix)
	return out
}

// Equals reports whether other has identical dimensions and contents.
func (b *ByteBand) Equals(other Band[uint8]) bool {
	if other == nil || other.Width() != b.width || other.Height() != b.height {
		return false
	}
	if o, ok := other.(*ByteBand); ok {
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
func (b *ByteBand) Pixel(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// SetPixel stores v at (x, y). Out-of-range coordinates are ignored.
func (b *ByteBand) SetPixel(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = v
}

// Fill sets every element to v.
func (b *ByteBand) Fill(v uint8) {
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Add adds v to every element, wrapping.
func (b *ByteBand) Add(v uint8) {
	for i := range b.pix {
		b.pix[i] += v
	}
}

// AddBand adds the corresponding element of other to every element,
// wrapping.
func (b *ByteBand) AddBand(other Band[uint8]) {
	b.combine(other, func(a, v uint8) uint8 { return a + v })
}

// Subtract subtracts v from every element, wrapping.
func (b *ByteBand) Subtract(v uint8) {
	for i := range b.pix {
		b.pix[i] -= v
	}
}

// SubtractBand subtracts the corresponding element of other from every
// element, wrapping.
func (b *ByteBand) SubtractBand(other Band[uint8]) {
	b.combine(other, func(a, v uint8) uint8 { return a - v })
}

// Multiply multiplies every element by v, wrapping.
func (b *ByteBand) Multiply(v uint8) {
	for i := range b.pix {
		b.pix[i] *= v
	}
}

// MultiplyBand multiplies every element by the corresponding element of
// other, wrapping.
func (b *ByteBand) MultiplyBand(other Band[uint8]) {
	b.combine(other, func(a, v uint8) uint8 { return a * v })
}

// Divide divides every element by v, truncating.
func (b *ByteBand) Divide(v uint8) {
	for i := range b.pix {
		b.pix[i] /= v
	}
}

// DivideBand divides every element by the corresponding element of other,
// truncating.
func (b *ByteBand) DivideBand(other Band[uint8]) {
	b.combine(other, func(a, v uint8) uint8 { return a / v })
}

// combine applies f elementwise over the region where b and other overlap.
func (b *ByteBand) combine(other Band[uint8], f func(a, v uint8) uint8) {
	w, h := b.width, b.height
	if ow := other.Width(); ow < w {
		w = ow
	}
	if oh := other.Height(); oh < h {
		h = oh
	}
	if o, ok := other.(*ByteBand); ok {
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
func (b *ByteBand) Clip(min, max uint8) {
	for i, v := range b.pix {
		if v < min {
			b.pix[i] = min
		} else if v > max {
			b.pix[i] = max
		}
	}
}

// ClipMin clamps every element below min up to min.
func (b *ByteBand) ClipMin(min uint8) {
	for i, v := range b.pix {
		if v < min {
			b.pix[i] = min
		}
	}
}

// ClipMax clamps every element above max down to max.
func (b *ByteBand) ClipMax(max uint8) {
	for i, v := range b.pix {
		if v > max {
			b.pix[i] = max
		}
	}
}

// Threshold sets elements at or below t to 0 and all others to 1.
func (b *ByteBand) Threshold(t uint8) {
	for i, v := range b.pix {
		if v <= t {
			b.pix[i] = 0
		} else {
			b.pix[i] = 1
		}
	}
}

// Abs is a no-op: uint8 elements are never negative.
func (b *ByteBand) Abs() {}

// Inverse reflects every element about the band's current maximum.
func (b *ByteBand) Inverse() {
	max := b.Max()
	for i, v := range b.pix {
		b.pix[i] = max - v
	}
}

// Normalise linearly stretches the contents to [0, 255]. A flat band is
// left unchanged.
func (b *ByteBand) Normalise() {
	if len(b.pix) == 0 {
		return
	}
	min, max := b.Min(), b.Max()
	if max <= min {
		return
	}
	span := int(max) - int(min)
	for i, v := range b.pix {
		b.pix[i] = uint8((int(v) - int(min)) * 255 / span)
	}
}

// Zero sets every element to 0.
func (b *ByteBand) Zero() {
	for i := range b.pix {
		b.pix[i] = 0
	}
}

// FlipX mirrors the band horizontally.
func (b *ByteBand) FlipX() {
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.width : (y+1)*b.width]
		for i, j := 0, b.width-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// FlipY mirrors the band vertically.
func (b *ByteBand) FlipY() {
	tmp := make([]uint8, b.width)
	for i, j := 0, b.height-1; i < j; i, j = i+1, j-1 {
		top := b.pix[i*b.width : (i+1)*b.width]
		bottom := b.pix[j*b.width : (j+1)*b.width]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// ShiftLeft rotates the contents n columns to the left with wrap-around.
func (b *ByteBand) ShiftLeft(n int) { b.rotate(n) }

// ShiftRight rotates the contents n columns to the right with wrap-around.
func (b *ByteBand) ShiftRight(n int) { b.rotate(-n) }

func (b *ByteBand) rotate(n int) {
	if b.width == 0 {
		return
	}
	n = ((n % b.width) + b.width) % b.width
	if n == 0 {
		return
	}
	tmp := make([]uint8, b.width)
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.width : (y+1)*b.width]
		copy(tmp, row[n:])
		copy(tmp[b.width-n:], row[:n])
		copy(row, tmp)
	}
}

// Min returns the smallest element, or 0 for an empty band.
func (b *ByteBand) Min() uint8 {
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
func (b *ByteBand) Max() uint8 {
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
func (b *ByteBand) ExtractROI(x, y, w, h int) Band[uint8] {
	out := NewByteBand(w, h)
	b.ExtractROIInto(x, y, out)
	return out
}

// ExtractROIInto fills out with the region of the receiver starting at
// (x, y), using out's dimensions as the region size.
func (b *ByteBand) ExtractROIInto(x, y int, out Band[uint8]) {
	if o, ok := out.(*ByteBand); ok {
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
func (b *ByteBand) ContentArea() image.Rectangle {
	return contentArea(b.width, b.height, func(x, y int) bool {
		return b.pix[y*b.width+x] != 0
	})
}

// Bytes returns a copy of the elements in row-major order.
func (b *ByteBand) Bytes() []byte {
	out := make([]byte, len(b.pix))
	copy(out, b.pix)
	return out
}

// PackedPixels returns one opaque grey ARGB value per element.
func (b *ByteBand) PackedPixels() []uint32 {
	out := make([]uint32, len(b.pix))
	for i, v := range b.pix {
		g := uint32(v)
		out[i] = 0xff<<24 | g<<16 | g<<8 | g
	}
	return out
}

// Process applies the stateless per-band transform p.
func (b *ByteBand) Process(p Processor[uint8]) Band[uint8] {
	return p.ProcessBand(b)
}

// ProcessKernel slides k over the band. See [Band.ProcessKernel].
func (b *ByteBand) ProcessKernel(k KernelProcessor[uint8], pad bool) Band[uint8] {
	return processKernel[uint8](b, k, pad)
}

// ProcessPixels applies g to every element, returning a new band.
func (b *ByteBand) ProcessPixels(g PixelProcessor[uint8]) Band[uint8] {
	out := b.Clone().(*ByteBand)
	out.ProcessPixelsInPlace(g)
	return out
}

// ProcessPixelsInPlace applies g to every element in place.
func (b *ByteBand) ProcessPixelsInPlace(g PixelProcessor[uint8]) {
	for i, v := range b.pix {
		b.pix[i] = g.ProcessPixel(v)
	}
}
