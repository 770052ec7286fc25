package openimaj

import "testing"

func benchImage(w, h int) *MultiBand[float32] {
	img := NewRGB(w, h)
	img.Fill(0.25, 0.5, 0.75)
	return img
}

func BenchmarkAddScalarInPlace(b *testing.B) {
	img := benchImage(512, 512)
	op := Scalar[float32](0.001)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.AddInPlace(op)
	}
}

func BenchmarkAddImageInPlace(b *testing.B) {
	img := benchImage(512, 512)
	other := benchImage(512, 512)
	op := Image(other)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.AddInPlace(op)
	}
}

func BenchmarkMultiplyPure(b *testing.B) {
	img := benchImage(512, 512)
	op := Scalar[float32](0.5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := img.Multiply(op); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlattenAverage(b *testing.B) {
	img := benchImage(512, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.FlattenAverage()
	}
}

func BenchmarkPackedPixels(b *testing.B) {
	img := benchImage(512, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := img.PackedPixels(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddInPlaceParallel(b *testing.B) {
	img := benchImage(1024, 1024)
	img.SetWorkers(4)
	op := Scalar[float32](0.001)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.AddInPlace(op)
	}
}
