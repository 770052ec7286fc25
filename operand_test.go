package openimaj

import "testing"

func TestOperandKinds(t *testing.T) {
	tests := []struct {
		name string
		op   Operand[float32]
		want OperandKind
	}{
		{"zero value", Operand[float32]{}, OperandInvalid},
		{"scalar", Scalar[float32](1), OperandScalar},
		{"vector", Vector[float32](1, 2), OperandVector},
		{"image", Image(NewRGB(1, 1)), OperandImage},
		{"band", SingleBand[float32](NewFloatBand(1, 1)), OperandSingleBand},
	}
	for _, tt := range tests {
		if got := tt.op.Kind(); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOperandKindString(t *testing.T) {
	tests := []struct {
		kind OperandKind
		want string
	}{
		{OperandInvalid, "Invalid"},
		{OperandScalar, "Scalar"},
		{OperandVector, "Vector"},
		{OperandImage, "Image"},
		{OperandSingleBand, "SingleBand"},
		{OperandKind(99), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("OperandKind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestColourSpaceNumBands(t *testing.T) {
	tests := []struct {
		space ColourSpace
		want  int
	}{
		{Grey, 1},
		{RGB, 3},
		{HSV, 3},
		{RGBA, 4},
		{Custom, 0},
	}
	for _, tt := range tests {
		if got := tt.space.NumBands(); got != tt.want {
			t.Errorf("%v.NumBands(): got %d, want %d", tt.space, got, tt.want)
		}
	}
}
