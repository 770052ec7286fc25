// Package openimaj provides a generic multi-band pixel array engine.
//
// # Overview
//
// A multi-band image groups several same-shaped single-band numeric arrays
// ("bands") into one logical image: band 0 is red and band 2 is blue for an
// RGB image, or each band is an arbitrary feature channel. The package
// provides the generic container ([MultiBand]), broadcasting arithmetic over
// scalars, per-band vectors and other images ([Operand]), a pluggable
// per-band processing pipeline ([Processor], [KernelProcessor],
// [PixelProcessor]), and conversions to packed interleaved pixel formats.
//
// Two concrete band types are included: [FloatBand] (float32 elements with a
// nominal [0,1] range) and [ByteBand] (full-range uint8 elements). The
// container itself is generic; any type implementing [Band] works.
//
// # Quick Start
//
//	import "github.com/jiapei100/openimaj"
//
//	// Create a 3-band 64x48 RGB image
//	img := openimaj.NewRGB(64, 48)
//
//	// Fill it with a colour and brighten every band
//	img.Fill(0.2, 0.4, 0.6)
//	img.AddInPlace(openimaj.Scalar(float32(0.1)))
//
//	// Per-band broadcast: scale red down, leave green, boost blue
//	img.MultiplyInPlace(openimaj.Vector[float32](0.5, 1, 1.5))
//
//	// Pack to ARGB32 for display
//	pixels, err := img.PackedPixels()
//
// # Broadcasting
//
// Every binary operation takes an [Operand], a closed variant over the four
// supported right-hand-side shapes:
//
//   - [Scalar]: one value applied to every band
//   - [Vector]: one value per band, applied positionally
//   - [Image]: another multi-band image, bands paired positionally
//   - [SingleBand]: one band applied to every band
//
// Shape and arity are validated before any band is mutated, so a failed
// operation leaves the image unchanged.
//
// # Concurrency
//
// A MultiBand is not safe for concurrent mutation; callers must serialize
// access or work on independent clones. [MultiBand.SetWorkers] enables
// data-parallel execution across bands as a pure optimization: observable
// results are identical to sequential band-order execution.
package openimaj
