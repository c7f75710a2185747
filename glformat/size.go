package glformat

import (
	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

// PixelSize returns the size in bytes of one pixel in the given native
// format and type.
//
// Packed types cover all channels and determine the size on their own.
// Otherwise the size is the type's channel width times the format's
// channel count. DepthStencil is only valid with a packed depth/stencil
// type; every other unknown combination is a contract violation.
func PixelSize(format gl.PixelFormat, typ gl.PixelType) (int, error) {
	var width int
	switch typ {
	case gl.UnsignedByte, gl.Byte:
		width = 1
	case gl.UnsignedShort, gl.Short, gl.HalfFloat, gl.HalfFloatOES:
		width = 2
	case gl.UnsignedInt, gl.Int, gl.Float:
		width = 4

	case gl.UnsignedByte332, gl.UnsignedByte233Rev:
		return 1, nil
	case gl.UnsignedShort565, gl.UnsignedShort565Rev,
		gl.UnsignedShort4444, gl.UnsignedShort4444Rev,
		gl.UnsignedShort5551, gl.UnsignedShort1555Rev:
		return 2, nil
	case gl.UnsignedInt8888, gl.UnsignedInt8888Rev,
		gl.UnsignedInt1010102, gl.UnsignedInt2101010Rev,
		gl.UnsignedInt10F11F11FRev, gl.UnsignedInt5999Rev,
		gl.UnsignedInt248:
		return 4, nil
	case gl.Float32UnsignedInt248Rev:
		return 8, nil
	default:
		return 0, glhal.Violation("PixelSize", "invalid pixel type %v", typ)
	}

	switch format {
	case gl.Red, gl.RedInteger, gl.Green, gl.Blue, gl.GreenInteger, gl.BlueInteger,
		gl.Luminance, gl.DepthComponent, gl.StencilIndex:
		return width, nil
	case gl.RG, gl.RGInteger, gl.LuminanceAlpha:
		return 2 * width, nil
	case gl.RGB, gl.RGBInteger, gl.BGR, gl.BGRInteger, gl.SRGB:
		return 3 * width, nil
	case gl.RGBA, gl.RGBAInteger, gl.BGRA, gl.BGRAInteger, gl.SRGBAlpha:
		return 4 * width, nil
	case gl.DepthStencil:
		return 0, glhal.Violation("PixelSize", "pixel type %v is invalid for %v", typ, format)
	}
	return 0, glhal.Violation("PixelSize", "invalid pixel format %v", format)
}

// PixelSize is like the package-level [PixelSize] but first rejects
// format and type values the target does not define.
func (r Registry) PixelSize(format gl.PixelFormat, typ gl.PixelType) (int, error) {
	if !r.HasNativePixelFormat(format) {
		return 0, glhal.Unsupported("PixelSize", format.String(), r.p.Target.String())
	}
	if !r.HasNativePixelType(typ) {
		return 0, glhal.Unsupported("PixelSize", typ.String(), r.p.Target.String())
	}
	return PixelSize(format, typ)
}

// HasNativePixelFormat reports whether the target defines format.
func (r Registry) HasNativePixelFormat(format gl.PixelFormat) bool {
	t := r.p.Target
	switch format {
	case gl.RGB, gl.RGBA, gl.DepthComponent, gl.DepthStencil:
		return true
	case gl.Red, gl.RG:
		return t != profile.WebGL1
	case gl.Luminance, gl.LuminanceAlpha, gl.SRGB, gl.SRGBAlpha:
		return t.IsES2Class()
	case gl.RedInteger, gl.RGInteger, gl.RGBInteger, gl.RGBAInteger:
		return !t.IsES2Class()
	case gl.Green, gl.Blue, gl.GreenInteger, gl.BlueInteger, gl.BGR, gl.BGRInteger, gl.BGRAInteger:
		return t == profile.GL
	case gl.BGRA:
		return !t.IsWebGL()
	case gl.StencilIndex:
		return t == profile.GL || t == profile.GLES3
	}
	return false
}

// HasNativePixelType reports whether the target defines typ.
func (r Registry) HasNativePixelType(typ gl.PixelType) bool {
	t := r.p.Target
	switch typ {
	case gl.UnsignedByte, gl.UnsignedShort, gl.UnsignedInt, gl.Float,
		gl.UnsignedShort565, gl.UnsignedShort4444, gl.UnsignedShort5551, gl.UnsignedInt248:
		return true
	case gl.Byte, gl.Short, gl.Int, gl.HalfFloat,
		gl.UnsignedInt10F11F11FRev, gl.UnsignedInt5999Rev, gl.Float32UnsignedInt248Rev:
		return !t.IsES2Class()
	case gl.HalfFloatOES:
		return t.IsES2Class()
	case gl.UnsignedInt2101010Rev:
		return t != profile.WebGL1
	case gl.UnsignedShort4444Rev, gl.UnsignedShort1555Rev:
		return !t.IsWebGL()
	case gl.UnsignedByte332, gl.UnsignedByte233Rev, gl.UnsignedShort565Rev,
		gl.UnsignedInt8888, gl.UnsignedInt8888Rev, gl.UnsignedInt1010102:
		return t == profile.GL
	}
	return false
}
