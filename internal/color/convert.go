package color

import "math"

// SRGBToLinear converts an sRGB component in [0,1] to linear light.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component in [0,1] back to sRGB.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinearColor converts the RGB components of c to linear light.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// LinearToSRGBColor converts the RGB components of c back to sRGB.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// U8ToF32 maps each component from [0,255] to [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// F32ToU8 maps each component from [0,1] to [0,255], clamping and rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{R: Quantize(c.R), G: Quantize(c.G), B: Quantize(c.B), A: Quantize(c.A)}
}

// Quantize clamps v to [0,1] and rounds it to the nearest 8-bit level.
func Quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
