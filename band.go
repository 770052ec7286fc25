package openimaj

import "image"

// Band is the single-band collaborator contract: a 2-D numeric array of
// elements of type T holding one channel of a multi-band image. [FloatBand]
// and [ByteBand] are the concrete implementations shipped with this package;
// a [MultiBand] works with any implementation.
//
// Numeric semantics (byte conversion, inverse, normalisation, ordering of
// clip bounds) belong to the element type and are defined by each
// implementation.
//
// Mutating methods operate in place. Methods taking another band operate
// elementwise over the overlapping region of the two bands; the container
// validates full-shape equality before fanning out, so standalone misuse
// degrades to a partial application rather than an out-of-range access.
type Band[T any] interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int

	// New returns a fresh zeroed band of the same concrete type with the
	// given dimensions.
	New(width, height int) Band[T]
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Band[T]
	// Equals reports whether the receiver and other have identical
	// dimensions and elementwise-equal contents.
	Equals(other Band[T]) bool

	// Pixel returns the element at (x, y), or the zero value when the
	// coordinate is out of range.
	Pixel(x, y int) T
	// SetPixel stores v at (x, y). Out-of-range coordinates are ignored.
	SetPixel(x, y int, v T)
	// Fill sets every element to v.
	Fill(v T)

	Add(v T)
	AddBand(other Band[T])
	Subtract(v T)
	SubtractBand(other Band[T])
	Multiply(v T)
	MultiplyBand(other Band[T])
	Divide(v T)
	DivideBand(other Band[T])

	// Clip clamps every element into [min, max].
	Clip(min, max T)
	// ClipMin clamps every element below min up to min.
	ClipMin(min T)
	// ClipMax clamps every element above max down to max.
	ClipMax(max T)
	// Threshold sets elements at or below t to zero and all others to the
	// element type's unit value.
	Threshold(t T)

	Abs()
	// Inverse reflects every element about the band's current maximum.
	Inverse()
	// Normalise rescales the band contents to the element type's full
	// nominal range. A flat band is left unchanged.
	Normalise()
	// Zero sets every element to the zero value.
	Zero()

	// FlipX mirrors the band horizontally (columns reversed).
	FlipX()
	// FlipY mirrors the band vertically (rows reversed).
	FlipY()
	// ShiftLeft moves the contents n columns to the left, wrapping the
	// leftmost columns around to the right edge.
	ShiftLeft(n int)
	// ShiftRight moves the contents n columns to the right, wrapping the
	// rightmost columns around to the left edge.
	ShiftRight(n int)

	// Min returns the smallest element, or zero for an empty band.
	Min() T
	// Max returns the largest element, or zero for an empty band.
	Max() T

	// ExtractROI copies the w x h region whose top-left corner is (x, y)
	// into a new band. Source coordinates outside the band read as zero,
	// so the region may extend past any edge.
	ExtractROI(x, y, w, h int) Band[T]
	// ExtractROIInto fills out with the region of the receiver starting
	// at (x, y), using out's own dimensions as the region size.
	ExtractROIInto(x, y int, out Band[T])

	// ContentArea returns the bounding rectangle of non-zero elements in
	// the half-open stdlib convention (Max is one past the last non-zero
	// row and column). An all-zero band returns the zero rectangle.
	ContentArea() image.Rectangle

	// Bytes returns one byte per element in row-major order, converted by
	// the element type's byte rule.
	Bytes() []byte
	// PackedPixels returns one packed 32-bit ARGB value per element, with
	// the element's byte value broadcast to the three colour channels and
	// alpha forced to 0xFF.
	PackedPixels() []uint32

	// Process applies a stateless per-band transform.
	Process(p Processor[T]) Band[T]
	// ProcessKernel slides k over the band and collects one output
	// element per window position. With pad set, windows are centred on
	// every element (out-of-range reads are zero) and the output matches
	// the input size; without it the output shrinks by the kernel size
	// minus one in each dimension.
	ProcessKernel(k KernelProcessor[T], pad bool) Band[T]
	// ProcessPixels applies g independently to every element, returning
	// the result as a new band.
	ProcessPixels(g PixelProcessor[T]) Band[T]
	// ProcessPixelsInPlace applies g independently to every element,
	// mutating the receiver.
	ProcessPixelsInPlace(g PixelProcessor[T])
}

// Ops supplies the element-type capabilities a [MultiBand] cannot express
// generically: constructing bands of the matching concrete type, converting
// integers to elements, and the total order used by flatten-by-max. It
// replaces per-subtype factory inheritance with a small capability object
// passed at construction time.
type Ops[T any] interface {
	// NewBand returns a zeroed band of the concrete type paired with T.
	NewBand(width, height int) Band[T]
	// FromInt converts an integer (for example a band count) to an
	// element value.
	FromInt(n int) T
	// Less reports whether a orders before b.
	Less(a, b T) bool
}

// Processor is a stateless per-band transform. Implementations must not
// mutate the input band; they return the transformed result as a new band.
type Processor[T any] interface {
	ProcessBand(b Band[T]) Band[T]
}

// ProcessorFunc adapts a plain function to the [Processor] interface.
type ProcessorFunc[T any] func(Band[T]) Band[T]

// ProcessBand calls f(b).
func (f ProcessorFunc[T]) ProcessBand(b Band[T]) Band[T] { return f(b) }

// KernelProcessor is a sliding-window transform: it maps one kernel-sized
// window of a band to a single output element.
type KernelProcessor[T any] interface {
	// KernelWidth returns the window width in elements.
	KernelWidth() int
	// KernelHeight returns the window height in elements.
	KernelHeight() int
	// ProcessKernel computes the output element for one window.
	ProcessKernel(window Band[T]) T
}

// PixelProcessor is a per-element transform applied independently to every
// element of every band.
type PixelProcessor[T any] interface {
	ProcessPixel(v T) T
}

// PixelProcessorFunc adapts a plain function to the [PixelProcessor]
// interface.
type PixelProcessorFunc[T any] func(T) T

// ProcessPixel calls f(v).
func (f PixelProcessorFunc[T]) ProcessPixel(v T) T { return f(v) }
