package openimaj

// OperandKind identifies the broadcast shape of an [Operand].
type OperandKind uint8

const (
	// OperandInvalid is the kind of the zero Operand. Operations given an
	// invalid operand fail with [ErrUnsupportedOperand].
	OperandInvalid OperandKind = iota

	// OperandScalar applies one value uniformly to every band.
	OperandScalar

	// OperandVector applies one value per band, positionally. The vector
	// length must equal the band count.
	OperandVector

	// OperandImage pairs the bands of another multi-band image
	// positionally. Band counts and dimensions must match.
	OperandImage

	// OperandSingleBand broadcasts one band to every band of the target.
	OperandSingleBand
)

// String returns a string representation of the operand kind.
func (k OperandKind) String() string {
	switch k {
	case OperandScalar:
		return "Scalar"
	case OperandVector:
		return "Vector"
	case OperandImage:
		return "Image"
	case OperandSingleBand:
		return "SingleBand"
	default:
		return "Invalid"
	}
}

// Operand is the right-hand side of a broadcasting operation: a closed
// variant over the shapes a [MultiBand] can combine with. Construct one with
// [Scalar], [Vector], [Image] or [SingleBand]; the zero Operand is invalid.
type Operand[T any] struct {
	kind   OperandKind
	scalar T
	vector []T
	image  *MultiBand[T]
	band   Band[T]
}

// Kind returns the broadcast shape of the operand.
func (o Operand[T]) Kind() OperandKind { return o.kind }

// Scalar returns an operand applying v uniformly to every band.
func Scalar[T any](v T) Operand[T] {
	return Operand[T]{kind: OperandScalar, scalar: v}
}

// Vector returns an operand applying values[i] to band i. The operation
// fails with [ErrArityMismatch] unless len(values) equals the band count of
// the target image.
func Vector[T any](values ...T) Operand[T] {
	return Operand[T]{kind: OperandVector, vector: values}
}

// Image returns an operand pairing the bands of m positionally with the
// bands of the target image.
func Image[T any](m *MultiBand[T]) Operand[T] {
	return Operand[T]{kind: OperandImage, image: m}
}

// SingleBand returns an operand applying b to every band of the target
// image.
func SingleBand[T any](b Band[T]) Operand[T] {
	return Operand[T]{kind: OperandSingleBand, band: b}
}
