package openimaj

import (
	"github.com/jiapei100/openimaj/internal/parallel"
)

// MultiBand is a generic multi-band image: an ordered sequence of
// same-shaped single-band arrays plus an advisory colour-space tag. Band
// order is semantically significant (band 0 is red for RGB packing).
//
// The zero value is not usable; construct instances with [New], [NewSized]
// or the concrete helpers [NewFloat], [NewRGB], [NewRGBA] and [NewByte].
//
// A MultiBand uniquely owns its band sequence. Bands returned by
// [MultiBand.Band] are aliases into that sequence: mutating a returned band
// mutates the image. A MultiBand is not safe for concurrent mutation.
type MultiBand[T any] struct {
	bands   []Band[T]
	space   ColourSpace
	ops     Ops[T]
	workers int
}

// New constructs a multi-band image from the given bands, in order. All
// bands must share identical dimensions; otherwise New fails with
// [ErrDimensionMismatch]. The image takes ownership of the band values (not
// the slice they were passed in).
func New[T any](ops Ops[T], space ColourSpace, bands ...Band[T]) (*MultiBand[T], error) {
	m := &MultiBand[T]{
		bands: make([]Band[T], 0, len(bands)),
		space: space,
		ops:   ops,
	}
	for _, b := range bands {
		if err := m.AddBand(b); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewSized constructs a width x height image with one zeroed band per
// channel of the colour space. A colour space without an implied band count
// (Custom) produces an empty image.
func NewSized[T any](ops Ops[T], space ColourSpace, width, height int) *MultiBand[T] {
	n := space.NumBands()
	bands := make([]Band[T], 0, n)
	for i := 0; i < n; i++ {
		bands = append(bands, ops.NewBand(width, height))
	}
	return &MultiBand[T]{bands: bands, space: space, ops: ops}
}

// SetWorkers sets the number of goroutines used to fan operations out
// across bands. Values below 2 select sequential execution (the default).
// Parallel execution is a pure optimization: results and errors are
// identical to sequential band-order execution. Returns the image.
func (m *MultiBand[T]) SetWorkers(n int) *MultiBand[T] {
	m.workers = n
	return m
}

// ColourSpace returns the advisory colour-space tag.
func (m *MultiBand[T]) ColourSpace() ColourSpace { return m.space }

// SetColourSpace replaces the advisory colour-space tag.
func (m *MultiBand[T]) SetColourSpace(space ColourSpace) { m.space = space }

// NumBands returns the number of bands.
func (m *MultiBand[T]) NumBands() int { return len(m.bands) }

// Width returns the width of band 0, or 0 for an empty image.
func (m *MultiBand[T]) Width() int {
	if len(m.bands) == 0 {
		return 0
	}
	return m.bands[0].Width()
}

// Height returns the height of band 0, or 0 for an empty image.
func (m *MultiBand[T]) Height() int {
	if len(m.bands) == 0 {
		return 0
	}
	return m.bands[0].Height()
}

// AddBand appends a band. If the image already holds bands, the new band
// must match their dimensions; otherwise AddBand fails with
// [ErrDimensionMismatch].
func (m *MultiBand[T]) AddBand(b Band[T]) error {
	if len(m.bands) > 0 && (b.Width() != m.Width() || b.Height() != m.Height()) {
		return ErrDimensionMismatch
	}
	m.bands = append(m.bands, b)
	return nil
}

// Band returns the band at index i. The returned band aliases the image's
// storage: mutations through it are visible in the image. Fails with
// [ErrIndexOutOfRange] when i is outside [0, NumBands()).
func (m *MultiBand[T]) Band(i int) (Band[T], error) {
	if i < 0 || i >= len(m.bands) {
		return nil, ErrIndexOutOfRange
	}
	return m.bands[i], nil
}

// Bands returns the underlying band sequence. The slice aliases the image's
// storage; treat it as read-only.
func (m *MultiBand[T]) Bands() []Band[T] { return m.bands }

// DeleteBand removes the band at index i, preserving the order of the
// remaining bands. Fails with [ErrIndexOutOfRange] when i is outside
// [0, NumBands()).
func (m *MultiBand[T]) DeleteBand(i int) error {
	if i < 0 || i >= len(m.bands) {
		return ErrIndexOutOfRange
	}
	m.bands = append(m.bands[:i], m.bands[i+1:]...)
	return nil
}

// AdoptBands transfers ownership of from's band sequence to the receiver,
// replacing the receiver's bands. The donor is left empty.
func (m *MultiBand[T]) AdoptBands(from *MultiBand[T]) *MultiBand[T] {
	m.bands = from.bands
	from.bands = nil
	return m
}

// Clone returns a deep copy: a new image of the same shape whose bands are
// clones, sharing no band storage with the receiver.
func (m *MultiBand[T]) Clone() *MultiBand[T] {
	out := &MultiBand[T]{
		bands:   make([]Band[T], len(m.bands)),
		space:   m.space,
		ops:     m.ops,
		workers: m.workers,
	}
	for i, b := range m.bands {
		out.bands[i] = b.Clone()
	}
	return out
}

// Equals reports whether other has the same band count and pairwise-equal
// bands, in order. The colour-space tag does not participate.
func (m *MultiBand[T]) Equals(other *MultiBand[T]) bool {
	if other == nil || len(m.bands) != len(other.bands) {
		return false
	}
	for i, b := range m.bands {
		if !b.Equals(other.bands[i]) {
			return false
		}
	}
	return true
}

// CopyFrom copies the pixel contents of other into the receiver band by
// band. Fails with [ErrArityMismatch] when band counts differ and
// [ErrDimensionMismatch] when dimensions differ.
func (m *MultiBand[T]) CopyFrom(other *MultiBand[T]) (*MultiBand[T], error) {
	if len(other.bands) != len(m.bands) {
		return nil, ErrArityMismatch
	}
	if other.Width() != m.Width() || other.Height() != m.Height() {
		return nil, ErrDimensionMismatch
	}
	w, h := m.Width(), m.Height()
	m.forEach(func(i int) {
		dst, src := m.bands[i], other.bands[i]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetPixel(x, y, src.Pixel(x, y))
			}
		}
	})
	return m, nil
}

// Pixel returns the values of all bands at (x, y), in band order.
func (m *MultiBand[T]) Pixel(x, y int) []T {
	out := make([]T, len(m.bands))
	for i, b := range m.bands {
		out[i] = b.Pixel(x, y)
	}
	return out
}

// SetPixel sets the values of the bands at (x, y). When len(values) differs
// from the band count the assignment is right-aligned: with more values
// than bands only the trailing NumBands() values are used, and with fewer
// values than bands the values align to the last bands, leaving leading
// bands untouched. This mirrors the historical behaviour exactly and is not
// an error.
func (m *MultiBand[T]) SetPixel(x, y int, values ...T) {
	n := len(m.bands)
	if len(values) == n {
		for i, b := range m.bands {
			b.SetPixel(x, y, values[i])
		}
		return
	}
	offset := len(values) - n
	for i, b := range m.bands {
		if i+offset >= 0 {
			b.SetPixel(x, y, values[i+offset])
		}
	}
}

// Fill sets every pixel of band i to values[i]. Fails with
// [ErrArityMismatch] unless len(values) equals the band count.
func (m *MultiBand[T]) Fill(values ...T) (*MultiBand[T], error) {
	if len(values) != len(m.bands) {
		return nil, ErrArityMismatch
	}
	m.forEach(func(i int) {
		m.bands[i].Fill(values[i])
	})
	return m, nil
}

// ExtractROI copies the w x h region whose top-left corner is (x, y) into a
// new image, band by band. Out-of-range source coordinates read as zero.
func (m *MultiBand[T]) ExtractROI(x, y, w, h int) *MultiBand[T] {
	out := &MultiBand[T]{
		bands:   make([]Band[T], len(m.bands)),
		space:   m.space,
		ops:     m.ops,
		workers: m.workers,
	}
	m.forEach(func(i int) {
		out.bands[i] = m.bands[i].ExtractROI(x, y, w, h)
	})
	return out
}

// ExtractROIInto fills out with the region of the receiver starting at
// (x, y), using out's dimensions as the region size. Fails with
// [ErrArityMismatch] when band counts differ.
func (m *MultiBand[T]) ExtractROIInto(x, y int, out *MultiBand[T]) (*MultiBand[T], error) {
	if len(out.bands) != len(m.bands) {
		return nil, ErrArityMismatch
	}
	m.forEach(func(i int) {
		m.bands[i].ExtractROIInto(x, y, out.bands[i])
	})
	return out, nil
}

// Min returns the smallest element of each band, in band order.
func (m *MultiBand[T]) Min() []T {
	out := make([]T, len(m.bands))
	for i, b := range m.bands {
		out[i] = b.Min()
	}
	return out
}

// Max returns the largest element of each band, in band order.
func (m *MultiBand[T]) Max() []T {
	out := make([]T, len(m.bands))
	for i, b := range m.bands {
		out[i] = b.Max()
	}
	return out
}

// forEach runs fn for every band index, sequentially or fanned out across
// the configured workers. All validation happens before forEach is called,
// so parallel execution cannot change observable results.
func (m *MultiBand[T]) forEach(fn func(i int)) {
	n := len(m.bands)
	if m.workers > 1 && n > 1 {
		logger().Debug("parallel band fanout", "bands", n, "workers", m.workers)
		parallel.Do(m.workers, n, fn)
		return
	}
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// applyOperand validates op against the receiver's shape and then applies
// scalar (for scalar and vector operands) or pair (for image and
// single-band operands) to every band. Validation strictly precedes
// mutation: a shape error leaves the image unchanged.
func (m *MultiBand[T]) applyOperand(op Operand[T], scalar func(b Band[T], v T), pair func(dst, src Band[T])) error {
	switch op.kind {
	case OperandScalar:
		m.forEach(func(i int) { scalar(m.bands[i], op.scalar) })
	case OperandVector:
		if len(op.vector) != len(m.bands) {
			return ErrArityMismatch
		}
		m.forEach(func(i int) { scalar(m.bands[i], op.vector[i]) })
	case OperandImage:
		other := op.image
		if other == nil || len(other.bands) != len(m.bands) {
			return ErrArityMismatch
		}
		if other.Width() != m.Width() || other.Height() != m.Height() {
			return ErrDimensionMismatch
		}
		m.forEach(func(i int) { pair(m.bands[i], other.bands[i]) })
	case OperandSingleBand:
		if op.band == nil {
			return ErrUnsupportedOperand
		}
		if op.band.Width() != m.Width() || op.band.Height() != m.Height() {
			return ErrDimensionMismatch
		}
		m.forEach(func(i int) { pair(m.bands[i], op.band) })
	default:
		return ErrUnsupportedOperand
	}
	return nil
}

// perBand resolves an operand that must be a scalar or per-band vector into
// a per-band value lookup. Image and single-band operands (and the zero
// operand) fail with [ErrUnsupportedOperand].
func (m *MultiBand[T]) perBand(op Operand[T]) (func(i int) T, error) {
	switch op.kind {
	case OperandScalar:
		v := op.scalar
		return func(int) T { return v }, nil
	case OperandVector:
		if len(op.vector) != len(m.bands) {
			return nil, ErrArityMismatch
		}
		vec := op.vector
		return func(i int) T { return vec[i] }, nil
	default:
		return nil, ErrUnsupportedOperand
	}
}

// Add returns a new image with op added to every band. The receiver is
// unchanged.
func (m *MultiBand[T]) Add(op Operand[T]) (*MultiBand[T], error) {
	return m.pure(op, (*MultiBand[T]).AddInPlace)
}

// AddInPlace adds op to every band, mutating the image. Returns the image
// for chaining.
func (m *MultiBand[T]) AddInPlace(op Operand[T]) (*MultiBand[T], error) {
	return m, m.applyOperand(op, Band[T].Add, Band[T].AddBand)
}

// Subtract returns a new image with op subtracted from every band. The
// receiver is unchanged.
func (m *MultiBand[T]) Subtract(op Operand[T]) (*MultiBand[T], error) {
	return m.pure(op, (*MultiBand[T]).SubtractInPlace)
}

// SubtractInPlace subtracts op from every band, mutating the image. Returns
// the image for chaining.
func (m *MultiBand[T]) SubtractInPlace(op Operand[T]) (*MultiBand[T], error) {
	return m, m.applyOperand(op, Band[T].Subtract, Band[T].SubtractBand)
}

// Multiply returns a new image with every band multiplied by op. The
// receiver is unchanged.
func (m *MultiBand[T]) Multiply(op Operand[T]) (*MultiBand[T], error) {
	return m.pure(op, (*MultiBand[T]).MultiplyInPlace)
}

// MultiplyInPlace multiplies every band by op, mutating the image. Returns
// the image for chaining.
func (m *MultiBand[T]) MultiplyInPlace(op Operand[T]) (*MultiBand[T], error) {
	return m, m.applyOperand(op, Band[T].Multiply, Band[T].MultiplyBand)
}

// Divide returns a new image with every band divided by op. The receiver is
// unchanged.
func (m *MultiBand[T]) Divide(op Operand[T]) (*MultiBand[T], error) {
	return m.pure(op, (*MultiBand[T]).DivideInPlace)
}

// DivideInPlace divides every band by op, mutating the image. Returns the
// image for chaining.
func (m *MultiBand[T]) DivideInPlace(op Operand[T]) (*MultiBand[T], error) {
	return m, m.applyOperand(op, Band[T].Divide, Band[T].DivideBand)
}

// pure implements the clone-then-in-place rule shared by the pure binary
// operations.
func (m *MultiBand[T]) pure(op Operand[T], inPlace func(*MultiBand[T], Operand[T]) (*MultiBand[T], error)) (*MultiBand[T], error) {
	out := m.Clone()
	if _, err := inPlace(out, op); err != nil {
		return nil, err
	}
	return out, nil
}

// Clip returns a new image with every band clamped into [min, max]. Both
// operands must be scalars or per-band vectors.
func (m *MultiBand[T]) Clip(min, max Operand[T]) (*MultiBand[T], error) {
	out := m.Clone()
	if _, err := out.ClipInPlace(min, max); err != nil {
		return nil, err
	}
	return out, nil
}

// ClipInPlace clamps every band into [min, max], mutating the image. Both
// operands must be scalars or per-band vectors.
func (m *MultiBand[T]) ClipInPlace(min, max Operand[T]) (*MultiBand[T], error) {
	lo, err := m.perBand(min)
	if err != nil {
		return nil, err
	}
	hi, err := m.perBand(max)
	if err != nil {
		return nil, err
	}
	m.forEach(func(i int) { m.bands[i].Clip(lo(i), hi(i)) })
	return m, nil
}

// ClipMin returns a new image with every band clamped from below.
func (m *MultiBand[T]) ClipMin(min Operand[T]) (*MultiBand[T], error) {
	return m.pure(min, (*MultiBand[T]).ClipMinInPlace)
}

// ClipMinInPlace clamps every band from below, mutating the image.
func (m *MultiBand[T]) ClipMinInPlace(min Operand[T]) (*MultiBand[T], error) {
	v, err := m.perBand(min)
	if err != nil {
		return nil, err
	}
	m.forEach(func(i int) { m.bands[i].ClipMin(v(i)) })
	return m, nil
}

// ClipMax returns a new image with every band clamped from above.
func (m *MultiBand[T]) ClipMax(max Operand[T]) (*MultiBand[T], error) {
	return m.pure(max, (*MultiBand[T]).ClipMaxInPlace)
}

// ClipMaxInPlace clamps every band from above, mutating the image.
func (m *MultiBand[T]) ClipMaxInPlace(max Operand[T]) (*MultiBand[T], error) {
	v, err := m.perBand(max)
	if err != nil {
		return nil, err
	}
	m.forEach(func(i int) { m.bands[i].ClipMax(v(i)) })
	return m, nil
}

// Threshold returns a new image with every band thresholded: elements at or
// below the threshold become zero, all others the element type's unit value.
func (m *MultiBand[T]) Threshold(t Operand[T]) (*MultiBand[T], error) {
	return m.pure(t, (*MultiBand[T]).ThresholdInPlace)
}

// ThresholdInPlace thresholds every band, mutating the image.
func (m *MultiBand[T]) ThresholdInPlace(t Operand[T]) (*MultiBand[T], error) {
	v, err := m.perBand(t)
	if err != nil {
		return nil, err
	}
	m.forEach(func(i int) { m.bands[i].Threshold(v(i)) })
	return m, nil
}

// Abs replaces every element of every band with its absolute value,
// mutating the image. Returns the image for chaining.
func (m *MultiBand[T]) Abs() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].Abs() })
	return m
}

// Inverse inverts every band about its own maximum, mutating the image.
// Returns the image for chaining.
func (m *MultiBand[T]) Inverse() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].Inverse() })
	return m
}

// Normalise rescales every band to the element type's full nominal range,
// mutating the image. Returns the image for chaining.
func (m *MultiBand[T]) Normalise() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].Normalise() })
	return m
}

// Zero sets every element of every band to zero, mutating the image.
// Returns the image for chaining.
func (m *MultiBand[T]) Zero() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].Zero() })
	return m
}

// FlipX mirrors every band horizontally, mutating the image. Returns the
// image for chaining.
func (m *MultiBand[T]) FlipX() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].FlipX() })
	return m
}

// FlipY mirrors every band vertically, mutating the image. Returns the
// image for chaining.
func (m *MultiBand[T]) FlipY() *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].FlipY() })
	return m
}

// ShiftLeft shifts every band n columns to the left with wrap-around,
// mutating the image. Returns the image for chaining.
func (m *MultiBand[T]) ShiftLeft(n int) *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].ShiftLeft(n) })
	return m
}

// ShiftRight shifts every band n columns to the right with wrap-around,
// mutating the image. Returns the image for chaining.
func (m *MultiBand[T]) ShiftRight(n int) *MultiBand[T] {
	m.forEach(func(i int) { m.bands[i].ShiftRight(n) })
	return m
}
