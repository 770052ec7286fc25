package openimaj

// ColourSpace describes how the band ordering of a [MultiBand] should be
// interpreted. It is purely advisory metadata: it is never validated against
// the actual band count except implicitly at packing time.
type ColourSpace uint8

const (
	// Custom is an application-defined band interpretation.
	Custom ColourSpace = iota

	// Grey is a single luminance band.
	Grey

	// RGB is red, green, blue in band order 0, 1, 2.
	RGB

	// RGBA is RGB plus an alpha band at index 3.
	RGBA

	// HSV is hue, saturation, value in band order 0, 1, 2.
	HSV
)

// NumBands returns the conventional band count for the colour space, or 0
// when the space does not imply one (Custom).
func (c ColourSpace) NumBands() int {
	switch c {
	case Grey:
		return 1
	case RGB, HSV:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

// String returns a string representation of the colour space.
func (c ColourSpace) String() string {
	switch c {
	case Custom:
		return "Custom"
	case Grey:
		return "Grey"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case HSV:
		return "HSV"
	default:
		return "Unknown"
	}
}
