// Package blend implements the Porter-Duff operators the recoloring pipeline
// composites with. Colors are non-premultiplied float components in [0,1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/haircolor/internal/color"

// Mode represents a compositing operator.
type Mode int

const (
	// ModeSourceOver lays the source over the destination, weighted by source alpha.
	ModeSourceOver Mode = iota
	// ModeSourceCopy replaces the destination with the source.
	ModeSourceCopy
	// ModeSourceIn keeps the source only where the destination is opaque.
	ModeSourceIn
)

// String returns the operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "SourceOver"
	case ModeSourceCopy:
		return "SourceCopy"
	case ModeSourceIn:
		return "SourceIn"
	default:
		return "Unknown"
	}
}

// Blend composites src onto dst using the given mode.
// Unknown modes fall back to source-over.
func Blend(src, dst color.ColorF32, mode Mode) color.ColorF32 {
	switch mode {
	case ModeSourceCopy:
		return src
	case ModeSourceIn:
		return sourceIn(src, dst)
	default:
		return sourceOver(src, dst)
	}
}

// BlendU8 is Blend for 8-bit colors.
func BlendU8(src, dst color.ColorU8, mode Mode) color.ColorU8 {
	// Fast paths for the common fully transparent / opaque source pixels.
	if mode == ModeSourceOver {
		switch src.A {
		case 0:
			return dst
		case 255:
			return src
		}
	}
	return color.F32ToU8(Blend(color.U8ToF32(src), color.U8ToF32(dst), mode))
}

// sourceOver: Ao = As + Ad(1-As), Co = (Cs*As + Cd*Ad*(1-As)) / Ao.
func sourceOver(src, dst color.ColorF32) color.ColorF32 {
	inv := 1 - src.A
	outA := src.A + dst.A*inv
	if outA == 0 {
		return color.ColorF32{}
	}
	return color.ColorF32{
		R: (src.R*src.A + dst.R*dst.A*inv) / outA,
		G: (src.G*src.A + dst.G*dst.A*inv) / outA,
		B: (src.B*src.A + dst.B*dst.A*inv) / outA,
		A: outA,
	}
}

// sourceIn: Ao = As*Ad, Co = Cs.
func sourceIn(src, dst color.ColorF32) color.ColorF32 {
	a := src.A * dst.A
	if a == 0 {
		return color.ColorF32{}
	}
	return color.ColorF32{R: src.R, G: src.G, B: src.B, A: a}
}
