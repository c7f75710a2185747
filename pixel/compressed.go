package pixel

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// CompressedFormat is a portable block-compressed pixel format. Like
// [Format], it is either a named value or an implementation-specific native
// value created with [WrapCompressed].
type CompressedFormat uint32

// Named compressed formats. Zero is not a valid format.
const (
	BC1RGBUnorm CompressedFormat = iota + 1
	BC1RGBSrgb
	BC1RGBAUnorm
	BC1RGBASrgb
	BC2RGBAUnorm
	BC2RGBASrgb
	BC3RGBAUnorm
	BC3RGBASrgb
	BC4RUnorm
	BC4RSnorm
	BC5RGUnorm
	BC5RGSnorm
	BC6hRGBUfloat
	BC6hRGBSfloat
	BC7RGBAUnorm
	BC7RGBASrgb
	EACR11Unorm
	EACR11Snorm
	EACRG11Unorm
	EACRG11Snorm
	ETC2RGB8Unorm
	ETC2RGB8Srgb
	ETC2RGB8A1Unorm
	ETC2RGB8A1Srgb
	ETC2RGBA8Unorm
	ETC2RGBA8Srgb
	ASTC4x4RGBAUnorm
	ASTC4x4RGBASrgb
	ASTC5x4RGBAUnorm
	ASTC5x4RGBASrgb
	ASTC5x5RGBAUnorm
	ASTC5x5RGBASrgb
	ASTC6x5RGBAUnorm
	ASTC6x5RGBASrgb
	ASTC6x6RGBAUnorm
	ASTC6x6RGBASrgb
	ASTC8x5RGBAUnorm
	ASTC8x5RGBASrgb
	ASTC8x6RGBAUnorm
	ASTC8x6RGBASrgb
	ASTC8x8RGBAUnorm
	ASTC8x8RGBASrgb
	ASTC10x5RGBAUnorm
	ASTC10x5RGBASrgb
	ASTC10x6RGBAUnorm
	ASTC10x6RGBASrgb
	ASTC10x8RGBAUnorm
	ASTC10x8RGBASrgb
	ASTC10x10RGBAUnorm
	ASTC10x10RGBASrgb
	ASTC12x10RGBAUnorm
	ASTC12x10RGBASrgb
	ASTC12x12RGBAUnorm
	ASTC12x12RGBASrgb

	compressedFormatCount
)

type compressedInfo struct {
	name       string
	blockW     uint8
	blockH     uint8
	blockBytes uint8
	srgb       bool
	gpu        gputypes.TextureFormat
}

var compressedFormats = [compressedFormatCount]compressedInfo{
	BC1RGBUnorm:        {"BC1RGBUnorm", 4, 4, 8, false, gputypes.TextureFormatUndefined},
	BC1RGBSrgb:         {"BC1RGBSrgb", 4, 4, 8, true, gputypes.TextureFormatUndefined},
	BC1RGBAUnorm:       {"BC1RGBAUnorm", 4, 4, 8, false, gputypes.TextureFormatBC1RGBAUnorm},
	BC1RGBASrgb:        {"BC1RGBASrgb", 4, 4, 8, true, gputypes.TextureFormatBC1RGBAUnormSrgb},
	BC2RGBAUnorm:       {"BC2RGBAUnorm", 4, 4, 16, false, gputypes.TextureFormatBC2RGBAUnorm},
	BC2RGBASrgb:        {"BC2RGBASrgb", 4, 4, 16, true, gputypes.TextureFormatBC2RGBAUnormSrgb},
	BC3RGBAUnorm:       {"BC3RGBAUnorm", 4, 4, 16, false, gputypes.TextureFormatBC3RGBAUnorm},
	BC3RGBASrgb:        {"BC3RGBASrgb", 4, 4, 16, true, gputypes.TextureFormatBC3RGBAUnormSrgb},
	BC4RUnorm:          {"BC4RUnorm", 4, 4, 8, false, gputypes.TextureFormatBC4RUnorm},
	BC4RSnorm:          {"BC4RSnorm", 4, 4, 8, false, gputypes.TextureFormatBC4RSnorm},
	BC5RGUnorm:         {"BC5RGUnorm", 4, 4, 16, false, gputypes.TextureFormatBC5RGUnorm},
	BC5RGSnorm:         {"BC5RGSnorm", 4, 4, 16, false, gputypes.TextureFormatBC5RGSnorm},
	BC6hRGBUfloat:      {"BC6hRGBUfloat", 4, 4, 16, false, gputypes.TextureFormatBC6HRGBUfloat},
	BC6hRGBSfloat:      {"BC6hRGBSfloat", 4, 4, 16, false, gputypes.TextureFormatBC6HRGBFloat},
	BC7RGBAUnorm:       {"BC7RGBAUnorm", 4, 4, 16, false, gputypes.TextureFormatBC7RGBAUnorm},
	BC7RGBASrgb:        {"BC7RGBASrgb", 4, 4, 16, true, gputypes.TextureFormatBC7RGBAUnormSrgb},
	EACR11Unorm:        {"EACR11Unorm", 4, 4, 8, false, gputypes.TextureFormatEACR11Unorm},
	EACR11Snorm:        {"EACR11Snorm", 4, 4, 8, false, gputypes.TextureFormatEACR11Snorm},
	EACRG11Unorm:       {"EACRG11Unorm", 4, 4, 16, false, gputypes.TextureFormatEACRG11Unorm},
	EACRG11Snorm:       {"EACRG11Snorm", 4, 4, 16, false, gputypes.TextureFormatEACRG11Snorm},
	ETC2RGB8Unorm:      {"ETC2RGB8Unorm", 4, 4, 8, false, gputypes.TextureFormatETC2RGB8Unorm},
	ETC2RGB8Srgb:       {"ETC2RGB8Srgb", 4, 4, 8, true, gputypes.TextureFormatETC2RGB8UnormSrgb},
	ETC2RGB8A1Unorm:    {"ETC2RGB8A1Unorm", 4, 4, 8, false, gputypes.TextureFormatETC2RGB8A1Unorm},
	ETC2RGB8A1Srgb:     {"ETC2RGB8A1Srgb", 4, 4, 8, true, gputypes.TextureFormatETC2RGB8A1UnormSrgb},
	ETC2RGBA8Unorm:     {"ETC2RGBA8Unorm", 4, 4, 16, false, gputypes.TextureFormatETC2RGBA8Unorm},
	ETC2RGBA8Srgb:      {"ETC2RGBA8Srgb", 4, 4, 16, true, gputypes.TextureFormatETC2RGBA8UnormSrgb},
	ASTC4x4RGBAUnorm:   {"ASTC4x4RGBAUnorm", 4, 4, 16, false, gputypes.TextureFormatASTC4x4Unorm},
	ASTC4x4RGBASrgb:    {"ASTC4x4RGBASrgb", 4, 4, 16, true, gputypes.TextureFormatASTC4x4UnormSrgb},
	ASTC5x4RGBAUnorm:   {"ASTC5x4RGBAUnorm", 5, 4, 16, false, gputypes.TextureFormatASTC5x4Unorm},
	ASTC5x4RGBASrgb:    {"ASTC5x4RGBASrgb", 5, 4, 16, true, gputypes.TextureFormatASTC5x4UnormSrgb},
	ASTC5x5RGBAUnorm:   {"ASTC5x5RGBAUnorm", 5, 5, 16, false, gputypes.TextureFormatASTC5x5Unorm},
	ASTC5x5RGBASrgb:    {"ASTC5x5RGBASrgb", 5, 5, 16, true, gputypes.TextureFormatASTC5x5UnormSrgb},
	ASTC6x5RGBAUnorm:   {"ASTC6x5RGBAUnorm", 6, 5, 16, false, gputypes.TextureFormatASTC6x5Unorm},
	ASTC6x5RGBASrgb:    {"ASTC6x5RGBASrgb", 6, 5, 16, true, gputypes.TextureFormatASTC6x5UnormSrgb},
	ASTC6x6RGBAUnorm:   {"ASTC6x6RGBAUnorm", 6, 6, 16, false, gputypes.TextureFormatASTC6x6Unorm},
	ASTC6x6RGBASrgb:    {"ASTC6x6RGBASrgb", 6, 6, 16, true, gputypes.TextureFormatASTC6x6UnormSrgb},
	ASTC8x5RGBAUnorm:   {"ASTC8x5RGBAUnorm", 8, 5, 16, false, gputypes.TextureFormatASTC8x5Unorm},
	ASTC8x5RGBASrgb:    {"ASTC8x5RGBASrgb", 8, 5, 16, true, gputypes.TextureFormatASTC8x5UnormSrgb},
	ASTC8x6RGBAUnorm:   {"ASTC8x6RGBAUnorm", 8, 6, 16, false, gputypes.TextureFormatASTC8x6Unorm},
	ASTC8x6RGBASrgb:    {"ASTC8x6RGBASrgb", 8, 6, 16, true, gputypes.TextureFormatASTC8x6UnormSrgb},
	ASTC8x8RGBAUnorm:   {"ASTC8x8RGBAUnorm", 8, 8, 16, false, gputypes.TextureFormatASTC8x8Unorm},
	ASTC8x8RGBASrgb:    {"ASTC8x8RGBASrgb", 8, 8, 16, true, gputypes.TextureFormatASTC8x8UnormSrgb},
	ASTC10x5RGBAUnorm:  {"ASTC10x5RGBAUnorm", 10, 5, 16, false, gputypes.TextureFormatASTC10x5Unorm},
	ASTC10x5RGBASrgb:   {"ASTC10x5RGBASrgb", 10, 5, 16, true, gputypes.TextureFormatASTC10x5UnormSrgb},
	ASTC10x6RGBAUnorm:  {"ASTC10x6RGBAUnorm", 10, 6, 16, false, gputypes.TextureFormatASTC10x6Unorm},
	ASTC10x6RGBASrgb:   {"ASTC10x6RGBASrgb", 10, 6, 16, true, gputypes.TextureFormatASTC10x6UnormSrgb},
	ASTC10x8RGBAUnorm:  {"ASTC10x8RGBAUnorm", 10, 8, 16, false, gputypes.TextureFormatASTC10x8Unorm},
	ASTC10x8RGBASrgb:   {"ASTC10x8RGBASrgb", 10, 8, 16, true, gputypes.TextureFormatASTC10x8UnormSrgb},
	ASTC10x10RGBAUnorm: {"ASTC10x10RGBAUnorm", 10, 10, 16, false, gputypes.TextureFormatASTC10x10Unorm},
	ASTC10x10RGBASrgb:  {"ASTC10x10RGBASrgb", 10, 10, 16, true, gputypes.TextureFormatASTC10x10UnormSrgb},
	ASTC12x10RGBAUnorm: {"ASTC12x10RGBAUnorm", 12, 10, 16, false, gputypes.TextureFormatASTC12x10Unorm},
	ASTC12x10RGBASrgb:  {"ASTC12x10RGBASrgb", 12, 10, 16, true, gputypes.TextureFormatASTC12x10UnormSrgb},
	ASTC12x12RGBAUnorm: {"ASTC12x12RGBAUnorm", 12, 12, 16, false, gputypes.TextureFormatASTC12x12Unorm},
	ASTC12x12RGBASrgb:  {"ASTC12x12RGBASrgb", 12, 12, 16, true, gputypes.TextureFormatASTC12x12UnormSrgb},
}

// WrapCompressed creates an implementation-specific compressed format from
// a native value that fits in 31 bits.
func WrapCompressed(native uint32) CompressedFormat {
	return CompressedFormat(native) | CompressedFormat(implementationSpecific)
}

// IsImplementationSpecific reports whether f carries a native value.
func (f CompressedFormat) IsImplementationSpecific() bool {
	return f&CompressedFormat(implementationSpecific) != 0
}

// Unwrap returns the native value of an implementation-specific format.
func (f CompressedFormat) Unwrap() uint32 {
	return uint32(f &^ CompressedFormat(implementationSpecific))
}

// IsValid reports whether f is named or implementation-specific.
func (f CompressedFormat) IsValid() bool {
	return f.IsImplementationSpecific() || (f > 0 && f < compressedFormatCount)
}

func (f CompressedFormat) info() (compressedInfo, bool) {
	if f == 0 || f >= compressedFormatCount {
		return compressedInfo{}, false
	}
	return compressedFormats[f], true
}

func (f CompressedFormat) String() string {
	if f.IsImplementationSpecific() {
		return fmt.Sprintf("ImplementationSpecific(%#x)", f.Unwrap())
	}
	if info, ok := f.info(); ok {
		return info.name
	}
	return fmt.Sprintf("CompressedFormat(%#x)", uint32(f))
}

// BlockSize returns the footprint of one block in pixels. All named
// formats use single-layer blocks. Implementation-specific formats return
// zeros.
func (f CompressedFormat) BlockSize() (width, height int) {
	info, _ := f.info()
	return int(info.blockW), int(info.blockH)
}

// BlockBytes returns the size of one block in bytes.
func (f CompressedFormat) BlockBytes() int {
	info, _ := f.info()
	return int(info.blockBytes)
}

// IsSrgb reports whether f stores color in the sRGB encoding.
func (f CompressedFormat) IsSrgb() bool {
	info, ok := f.info()
	return ok && info.srgb
}

// DataSize returns the byte size of a width x height x depth image in
// format f, rounding partial blocks up. It returns 0 for
// implementation-specific formats.
func (f CompressedFormat) DataSize(width, height, depth int) int {
	bw, bh := f.BlockSize()
	if bw == 0 {
		return 0
	}
	bx := (width + bw - 1) / bw
	by := (height + bh - 1) / bh
	return bx * by * max(depth, 1) * f.BlockBytes()
}

// CompressedFormats returns all named compressed formats.
func CompressedFormats() []CompressedFormat {
	out := make([]CompressedFormat, 0, compressedFormatCount-1)
	for f := CompressedFormat(1); f < compressedFormatCount; f++ {
		out = append(out, f)
	}
	return out
}

// GPUFormat returns the equivalent WebGPU texture format, if one exists.
func (f CompressedFormat) GPUFormat() (gputypes.TextureFormat, bool) {
	info, ok := f.info()
	if !ok || info.gpu == gputypes.TextureFormatUndefined {
		return gputypes.TextureFormatUndefined, false
	}
	return info.gpu, true
}

// CompressedFromGPUFormat returns the portable compressed format equivalent
// to a WebGPU block-compressed texture format.
func CompressedFromGPUFormat(g gputypes.TextureFormat) (CompressedFormat, bool) {
	if g == gputypes.TextureFormatUndefined {
		return 0, false
	}
	for f := CompressedFormat(1); f < compressedFormatCount; f++ {
		if compressedFormats[f].gpu == g {
			return f, true
		}
	}
	return 0, false
}

// CompressedFormatCount bounds the named compressed formats.
const CompressedFormatCount = int(compressedFormatCount)
