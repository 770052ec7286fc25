package openimaj

import "errors"

// All errors reported by this package signal a precondition violation in how
// the caller composed an operation. They are detected synchronously before
// any band is mutated and are never retried or recovered internally.
var (
	// ErrDimensionMismatch indicates bands of unequal size were combined
	// into one image, or a cross-image operand has a different width or
	// height.
	ErrDimensionMismatch = errors.New("openimaj: bands are not the same size")

	// ErrArityMismatch indicates a per-band vector operand whose length
	// differs from the band count, or a cross-image operand with a
	// different number of bands.
	ErrArityMismatch = errors.New("openimaj: operand arity does not match band count")

	// ErrIndexOutOfRange indicates a band index outside [0, NumBands()).
	ErrIndexOutOfRange = errors.New("openimaj: band index out of range")

	// ErrUnsupportedOperand indicates a binary operation was given an
	// operand of a kind it cannot broadcast, including the zero Operand.
	ErrUnsupportedOperand = errors.New("openimaj: unsupported operand kind")

	// ErrUnsupportedBandCount indicates packing was requested for a band
	// count other than 1, 3 or 4.
	ErrUnsupportedBandCount = errors.New("openimaj: unsupported band count")
)
