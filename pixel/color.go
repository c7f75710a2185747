package pixel

import (
	"image/color"
	"math"
)

// Color4 is a four-channel float color, used for texture border colors.
// Components are nominally in [0, 1] and are not premultiplied.
type Color4 struct {
	R, G, B, A float32
}

// RGBA returns a Color4 from its components.
func RGBA(r, g, b, a float32) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color4, undoing the alpha
// premultiplication of the color.Color contract.
func FromColor(c color.Color) Color4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color4{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// NRGBA converts c to an 8-bit straight-alpha color.
func (c Color4) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with an optional
// leading '#'. ok is false for any other length or a non-hex digit.
func Hex(hex string) (c Color4, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var v [4]uint32
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d, valid := hexDigit(hex[i])
			if !valid {
				return Color4{}, false
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color4{}, false
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color4{}, false
	}
	return Color4{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
		A: float32(v[3]) / 255,
	}, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// Slice returns the components in R, G, B, A order.
func (c Color4) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// ToLinear converts the color channels from sRGB to linear. Alpha is
// always linear.
func (c Color4) ToLinear() Color4 {
	return Color4{R: srgbToLinear(c.R), G: srgbToLinear(c.G), B: srgbToLinear(c.B), A: c.A}
}

// ToSrgb converts the color channels from linear to sRGB.
func (c Color4) ToSrgb() Color4 {
	return Color4{R: linearToSrgb(c.R), G: linearToSrgb(c.G), B: linearToSrgb(c.B), A: c.A}
}

func srgbToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

func linearToSrgb(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
