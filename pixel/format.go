// Package pixel holds the portable pixel vocabulary: uncompressed and
// block-compressed formats, image descriptors with their memory layout,
// colors, and conversions to and from Go images.
package pixel

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Format is a portable pixel format: the channel layout and per-channel
// encoding of uncompressed pixel data, independent of any API.
//
// A Format is either one of the named values below or an
// implementation-specific native value created with [Wrap]. The two are
// told apart by an explicit tag bit, never by magnitude.
type Format uint32

// implementationSpecific tags a Format that carries a native value.
const implementationSpecific Format = 1 << 31

// Named formats. Zero is not a valid format.
const (
	R8Unorm Format = iota + 1
	RG8Unorm
	RGB8Unorm
	RGBA8Unorm
	R8Snorm
	RG8Snorm
	RGB8Snorm
	RGBA8Snorm
	R8Srgb
	RG8Srgb
	RGB8Srgb
	RGBA8Srgb
	R8UI
	RG8UI
	RGB8UI
	RGBA8UI
	R8I
	RG8I
	RGB8I
	RGBA8I
	R16Unorm
	RG16Unorm
	RGB16Unorm
	RGBA16Unorm
	R16Snorm
	RG16Snorm
	RGB16Snorm
	RGBA16Snorm
	R16UI
	RG16UI
	RGB16UI
	RGBA16UI
	R16I
	RG16I
	RGB16I
	RGBA16I
	R16F
	RG16F
	RGB16F
	RGBA16F
	R32UI
	RG32UI
	RGB32UI
	RGBA32UI
	R32I
	RG32I
	RGB32I
	RGBA32I
	R32F
	RG32F
	RGB32F
	RGBA32F

	Depth16Unorm
	Depth24Unorm
	Depth32F
	Stencil8UI
	Depth16UnormStencil8UI
	Depth24UnormStencil8UI
	Depth32FStencil8UI

	RGB565Unorm
	RGBA4Unorm
	RGB5A1Unorm
	RGB10A2Unorm
	RGB10A2UI
	RG11B10F
	RGB9E5F
	BGRA8Unorm

	formatCount
)

type formatKind uint8

const (
	kindUnorm formatKind = iota
	kindSnorm
	kindSrgb
	kindUint
	kindSint
	kindFloat
	kindDepth
	kindStencil
	kindDepthStencil
	kindPacked
)

type formatInfo struct {
	name     string
	channels uint8
	size     uint8
	kind     formatKind
	gpu      gputypes.TextureFormat
}

// formats is indexed by Format.
var formats = [formatCount]formatInfo{
	R8Unorm:                {"R8Unorm", 1, 1, kindUnorm, gputypes.TextureFormatR8Unorm},
	RG8Unorm:               {"RG8Unorm", 2, 2, kindUnorm, gputypes.TextureFormatRG8Unorm},
	RGB8Unorm:              {"RGB8Unorm", 3, 3, kindUnorm, gputypes.TextureFormatUndefined},
	RGBA8Unorm:             {"RGBA8Unorm", 4, 4, kindUnorm, gputypes.TextureFormatRGBA8Unorm},
	R8Snorm:                {"R8Snorm", 1, 1, kindSnorm, gputypes.TextureFormatR8Snorm},
	RG8Snorm:               {"RG8Snorm", 2, 2, kindSnorm, gputypes.TextureFormatRG8Snorm},
	RGB8Snorm:              {"RGB8Snorm", 3, 3, kindSnorm, gputypes.TextureFormatUndefined},
	RGBA8Snorm:             {"RGBA8Snorm", 4, 4, kindSnorm, gputypes.TextureFormatRGBA8Snorm},
	R8Srgb:                 {"R8Srgb", 1, 1, kindSrgb, gputypes.TextureFormatUndefined},
	RG8Srgb:                {"RG8Srgb", 2, 2, kindSrgb, gputypes.TextureFormatUndefined},
	RGB8Srgb:               {"RGB8Srgb", 3, 3, kindSrgb, gputypes.TextureFormatUndefined},
	RGBA8Srgb:              {"RGBA8Srgb", 4, 4, kindSrgb, gputypes.TextureFormatRGBA8UnormSrgb},
	R8UI:                   {"R8UI", 1, 1, kindUint, gputypes.TextureFormatR8Uint},
	RG8UI:                  {"RG8UI", 2, 2, kindUint, gputypes.TextureFormatRG8Uint},
	RGB8UI:                 {"RGB8UI", 3, 3, kindUint, gputypes.TextureFormatUndefined},
	RGBA8UI:                {"RGBA8UI", 4, 4, kindUint, gputypes.TextureFormatRGBA8Uint},
	R8I:                    {"R8I", 1, 1, kindSint, gputypes.TextureFormatR8Sint},
	RG8I:                   {"RG8I", 2, 2, kindSint, gputypes.TextureFormatRG8Sint},
	RGB8I:                  {"RGB8I", 3, 3, kindSint, gputypes.TextureFormatUndefined},
	RGBA8I:                 {"RGBA8I", 4, 4, kindSint, gputypes.TextureFormatRGBA8Sint},
	R16Unorm:               {"R16Unorm", 1, 2, kindUnorm, gputypes.TextureFormatR16Unorm},
	RG16Unorm:              {"RG16Unorm", 2, 4, kindUnorm, gputypes.TextureFormatRG16Unorm},
	RGB16Unorm:             {"RGB16Unorm", 3, 6, kindUnorm, gputypes.TextureFormatUndefined},
	RGBA16Unorm:            {"RGBA16Unorm", 4, 8, kindUnorm, gputypes.TextureFormatRGBA16Unorm},
	R16Snorm:               {"R16Snorm", 1, 2, kindSnorm, gputypes.TextureFormatR16Snorm},
	RG16Snorm:              {"RG16Snorm", 2, 4, kindSnorm, gputypes.TextureFormatRG16Snorm},
	RGB16Snorm:             {"RGB16Snorm", 3, 6, kindSnorm, gputypes.TextureFormatUndefined},
	RGBA16Snorm:            {"RGBA16Snorm", 4, 8, kindSnorm, gputypes.TextureFormatRGBA16Snorm},
	R16UI:                  {"R16UI", 1, 2, kindUint, gputypes.TextureFormatR16Uint},
	RG16UI:                 {"RG16UI", 2, 4, kindUint, gputypes.TextureFormatRG16Uint},
	RGB16UI:                {"RGB16UI", 3, 6, kindUint, gputypes.TextureFormatUndefined},
	RGBA16UI:               {"RGBA16UI", 4, 8, kindUint, gputypes.TextureFormatRGBA16Uint},
	R16I:                   {"R16I", 1, 2, kindSint, gputypes.TextureFormatR16Sint},
	RG16I:                  {"RG16I", 2, 4, kindSint, gputypes.TextureFormatRG16Sint},
	RGB16I:                 {"RGB16I", 3, 6, kindSint, gputypes.TextureFormatUndefined},
	RGBA16I:                {"RGBA16I", 4, 8, kindSint, gputypes.TextureFormatRGBA16Sint},
	R16F:                   {"R16F", 1, 2, kindFloat, gputypes.TextureFormatR16Float},
	RG16F:                  {"RG16F", 2, 4, kindFloat, gputypes.TextureFormatRG16Float},
	RGB16F:                 {"RGB16F", 3, 6, kindFloat, gputypes.TextureFormatUndefined},
	RGBA16F:                {"RGBA16F", 4, 8, kindFloat, gputypes.TextureFormatRGBA16Float},
	R32UI:                  {"R32UI", 1, 4, kindUint, gputypes.TextureFormatR32Uint},
	RG32UI:                 {"RG32UI", 2, 8, kindUint, gputypes.TextureFormatRG32Uint},
	RGB32UI:                {"RGB32UI", 3, 12, kindUint, gputypes.TextureFormatUndefined},
	RGBA32UI:               {"RGBA32UI", 4, 16, kindUint, gputypes.TextureFormatRGBA32Uint},
	R32I:                   {"R32I", 1, 4, kindSint, gputypes.TextureFormatR32Sint},
	RG32I:                  {"RG32I", 2, 8, kindSint, gputypes.TextureFormatRG32Sint},
	RGB32I:                 {"RGB32I", 3, 12, kindSint, gputypes.TextureFormatUndefined},
	RGBA32I:                {"RGBA32I", 4, 16, kindSint, gputypes.TextureFormatRGBA32Sint},
	R32F:                   {"R32F", 1, 4, kindFloat, gputypes.TextureFormatR32Float},
	RG32F:                  {"RG32F", 2, 8, kindFloat, gputypes.TextureFormatRG32Float},
	RGB32F:                 {"RGB32F", 3, 12, kindFloat, gputypes.TextureFormatUndefined},
	RGBA32F:                {"RGBA32F", 4, 16, kindFloat, gputypes.TextureFormatRGBA32Float},
	Depth16Unorm:           {"Depth16Unorm", 1, 2, kindDepth, gputypes.TextureFormatDepth16Unorm},
	Depth24Unorm:           {"Depth24Unorm", 1, 4, kindDepth, gputypes.TextureFormatDepth24Plus},
	Depth32F:               {"Depth32F", 1, 4, kindDepth, gputypes.TextureFormatDepth32Float},
	Stencil8UI:             {"Stencil8UI", 1, 1, kindStencil, gputypes.TextureFormatStencil8},
	Depth16UnormStencil8UI: {"Depth16UnormStencil8UI", 2, 4, kindDepthStencil, gputypes.TextureFormatUndefined},
	Depth24UnormStencil8UI: {"Depth24UnormStencil8UI", 2, 4, kindDepthStencil, gputypes.TextureFormatDepth24PlusStencil8},
	Depth32FStencil8UI:     {"Depth32FStencil8UI", 2, 8, kindDepthStencil, gputypes.TextureFormatDepth32FloatStencil8},
	RGB565Unorm:            {"RGB565Unorm", 3, 2, kindPacked, gputypes.TextureFormatUndefined},
	RGBA4Unorm:             {"RGBA4Unorm", 4, 2, kindPacked, gputypes.TextureFormatUndefined},
	RGB5A1Unorm:            {"RGB5A1Unorm", 4, 2, kindPacked, gputypes.TextureFormatUndefined},
	RGB10A2Unorm:           {"RGB10A2Unorm", 4, 4, kindPacked, gputypes.TextureFormatRGB10A2Unorm},
	RGB10A2UI:              {"RGB10A2UI", 4, 4, kindPacked, gputypes.TextureFormatRGB10A2Uint},
	RG11B10F:               {"RG11B10F", 3, 4, kindPacked, gputypes.TextureFormatRG11B10Ufloat},
	RGB9E5F:                {"RGB9E5F", 3, 4, kindPacked, gputypes.TextureFormatRGB9E5Ufloat},
	BGRA8Unorm:             {"BGRA8Unorm", 4, 4, kindUnorm, gputypes.TextureFormatBGRA8Unorm},
}

// Wrap creates an implementation-specific format from a native value. The
// native value must fit in 31 bits, as every GL enumeration does.
func Wrap(native uint32) Format {
	return Format(native) | implementationSpecific
}

// IsImplementationSpecific reports whether f carries a native value.
func (f Format) IsImplementationSpecific() bool {
	return f&implementationSpecific != 0
}

// Unwrap returns the native value of an implementation-specific format.
// For named formats the result is meaningless.
func (f Format) Unwrap() uint32 {
	return uint32(f &^ implementationSpecific)
}

// IsValid reports whether f is a named format or an implementation-specific
// one.
func (f Format) IsValid() bool {
	return f.IsImplementationSpecific() || (f > 0 && f < formatCount)
}

func (f Format) info() (formatInfo, bool) {
	if f == 0 || f >= formatCount {
		return formatInfo{}, false
	}
	return formats[f], true
}

func (f Format) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("ImplementationSpecific(%#x)", f.Unwrap())
	}
	if info, ok := f.info(); ok {
		return info.name
	}
	return fmt.Sprintf("Format(%#x)", uint32(f))
}

// Size returns the size of one pixel in bytes. Implementation-specific and
// invalid formats have no known size and return 0.
func (f Format) Size() int {
	info, _ := f.info()
	return int(info.size)
}

// Channels returns the number of channels. Depth-stencil formats count as
// two channels.
func (f Format) Channels() int {
	info, _ := f.info()
	return int(info.channels)
}

// IsSrgb reports whether f stores color channels in the sRGB encoding.
func (f Format) IsSrgb() bool {
	info, ok := f.info()
	return ok && info.kind == kindSrgb
}

// IsInteger reports whether f holds unnormalized integers.
func (f Format) IsInteger() bool {
	info, ok := f.info()
	return ok && (info.kind == kindUint || info.kind == kindSint || f == RGB10A2UI)
}

// IsFloat reports whether f holds floating-point channels.
func (f Format) IsFloat() bool {
	info, ok := f.info()
	return ok && (info.kind == kindFloat || f == RG11B10F || f == RGB9E5F)
}

// HasDepth reports whether f has a depth component.
func (f Format) HasDepth() bool {
	info, ok := f.info()
	return ok && (info.kind == kindDepth || info.kind == kindDepthStencil)
}

// HasStencil reports whether f has a stencil component.
func (f Format) HasStencil() bool {
	info, ok := f.info()
	return ok && (info.kind == kindStencil || info.kind == kindDepthStencil)
}

// IsPacked reports whether all channels of f share one packed word.
func (f Format) IsPacked() bool {
	info, ok := f.info()
	return ok && info.kind == kindPacked
}

// Formats returns all named formats in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatCount-1)
	for f := Format(1); f < formatCount; f++ {
		out = append(out, f)
	}
	return out
}

// GPUFormat returns the equivalent WebGPU texture format, if one exists.
func (f Format) GPUFormat() (gputypes.TextureFormat, bool) {
	info, ok := f.info()
	if !ok || info.gpu == gputypes.TextureFormatUndefined {
		return gputypes.TextureFormatUndefined, false
	}
	return info.gpu, true
}

// FromGPUFormat returns the portable format equivalent to a WebGPU
// uncompressed texture format.
func FromGPUFormat(g gputypes.TextureFormat) (Format, bool) {
	if g == gputypes.TextureFormatUndefined {
		return 0, false
	}
	for f := Format(1); f < formatCount; f++ {
		if formats[f].gpu == g {
			return f, true
		}
	}
	return 0, false
}

// FormatCount bounds the named formats: every named Format is in
// [1, FormatCount).
const FormatCount = int(formatCount)
