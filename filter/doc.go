// Package filter provides stock processors for float multi-band images:
// convolution kernels (Gaussian, box, arbitrary weights), a median window
// processor, and Mitchell cubic resampling.
//
// Everything here plugs into the processing pipeline of the parent package:
// the window processors implement openimaj.KernelProcessor[float32] and are
// applied with MultiBand.ProcessKernel or Band.ProcessKernel.
//
//	img := openimaj.NewRGB(640, 480)
//	blurred := img.ProcessKernel(filter.NewGaussian(2.0), true)
package filter
