package openimaj

// Process applies the stateless per-band transform p to every band,
// returning the results as a new image. Band order, band count and the
// colour-space tag are preserved; the receiver is unchanged.
func (m *MultiBand[T]) Process(p Processor[T]) *MultiBand[T] {
	out := m.emptyLike()
	m.forEach(func(i int) {
		out.bands[i] = p.ProcessBand(m.bands[i])
	})
	return out
}

// ProcessInPlace applies p to every band and replaces each band with its
// transformed result. Returns the image for chaining.
//
// The replacement swaps the band slot rather than mutating the old band, so
// aliases obtained from [MultiBand.Band] beforehand keep their old contents.
// A transform may legitimately change a band's dimensions (a shrinking
// kernel pass, for example); keeping the bands same-shaped afterwards is the
// caller's responsibility.
func (m *MultiBand[T]) ProcessInPlace(p Processor[T]) *MultiBand[T] {
	m.forEach(func(i int) {
		m.bands[i] = p.ProcessBand(m.bands[i])
	})
	return m
}

// ProcessKernel slides k over every band, collecting one output element per
// window position, and returns the results as a new image. With pad set the
// output bands match the input size (edge windows read zero outside the
// band); without it each band shrinks by the kernel size minus one in each
// dimension. The receiver is unchanged.
func (m *MultiBand[T]) ProcessKernel(k KernelProcessor[T], pad bool) *MultiBand[T] {
	out := m.emptyLike()
	m.forEach(func(i int) {
		out.bands[i] = m.bands[i].ProcessKernel(k, pad)
	})
	return out
}

// ProcessKernelInPlace applies k to every band and replaces each band with
// its output. Returns the image for chaining. See [MultiBand.ProcessInPlace]
// for the replacement semantics.
func (m *MultiBand[T]) ProcessKernelInPlace(k KernelProcessor[T], pad bool) *MultiBand[T] {
	m.forEach(func(i int) {
		m.bands[i] = m.bands[i].ProcessKernel(k, pad)
	})
	return m
}

// ProcessPixels applies g independently to every element of every band,
// returning the results as a new image. The receiver is unchanged.
func (m *MultiBand[T]) ProcessPixels(g PixelProcessor[T]) *MultiBand[T] {
	out := m.emptyLike()
	m.forEach(func(i int) {
		out.bands[i] = m.bands[i].ProcessPixels(g)
	})
	return out
}

// ProcessPixelsInPlace applies g independently to every element of every
// band, mutating the image. Returns the image for chaining.
func (m *MultiBand[T]) ProcessPixelsInPlace(g PixelProcessor[T]) *MultiBand[T] {
	m.forEach(func(i int) {
		m.bands[i].ProcessPixelsInPlace(g)
	})
	return m
}

// emptyLike returns a new image with the receiver's shape metadata and a
// band slice of the same length, ready to be filled slot by slot.
func (m *MultiBand[T]) emptyLike() *MultiBand[T] {
	return &MultiBand[T]{
		bands:   make([]Band[T], len(m.bands)),
		space:   m.space,
		ops:     m.ops,
		workers: m.workers,
	}
}
