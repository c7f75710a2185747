package gl

import "fmt"

var pixelFormatNames = map[PixelFormat]string{
	StencilIndex:   "StencilIndex",
	DepthComponent: "DepthComponent",
	Red:            "Red",
	Green:          "Green",
	Blue:           "Blue",
	RGB:            "RGB",
	RGBA:           "RGBA",
	Luminance:      "Luminance",
	LuminanceAlpha: "LuminanceAlpha",
	BGR:            "BGR",
	BGRA:           "BGRA",
	RG:             "RG",
	RGInteger:      "RGInteger",
	DepthStencil:   "DepthStencil",
	SRGB:           "SRGB",
	SRGBAlpha:      "SRGBAlpha",
	RedInteger:     "RedInteger",
	GreenInteger:   "GreenInteger",
	BlueInteger:    "BlueInteger",
	RGBInteger:     "RGBInteger",
	RGBAInteger:    "RGBAInteger",
	BGRInteger:     "BGRInteger",
	BGRAInteger:    "BGRAInteger",
}

var pixelTypeNames = map[PixelType]string{
	Byte:                     "Byte",
	UnsignedByte:             "UnsignedByte",
	Short:                    "Short",
	UnsignedShort:            "UnsignedShort",
	Int:                      "Int",
	UnsignedInt:              "UnsignedInt",
	Float:                    "Float",
	HalfFloat:                "HalfFloat",
	UnsignedByte332:          "UnsignedByte332",
	UnsignedShort4444:        "UnsignedShort4444",
	UnsignedShort5551:        "UnsignedShort5551",
	UnsignedInt8888:          "UnsignedInt8888",
	UnsignedInt1010102:       "UnsignedInt1010102",
	UnsignedByte233Rev:       "UnsignedByte233Rev",
	UnsignedShort565:         "UnsignedShort565",
	UnsignedShort565Rev:      "UnsignedShort565Rev",
	UnsignedShort4444Rev:     "UnsignedShort4444Rev",
	UnsignedShort1555Rev:     "UnsignedShort1555Rev",
	UnsignedInt8888Rev:       "UnsignedInt8888Rev",
	UnsignedInt2101010Rev:    "UnsignedInt2101010Rev",
	UnsignedInt248:           "UnsignedInt248",
	UnsignedInt10F11F11FRev:  "UnsignedInt10F11F11FRev",
	UnsignedInt5999Rev:       "UnsignedInt5999Rev",
	HalfFloatOES:             "HalfFloatOES",
	Float32UnsignedInt248Rev: "Float32UnsignedInt248Rev",
}

var compressedPixelFormatNames = map[CompressedPixelFormat]string{
	CompressedRGBS3TCDXT1:                 "CompressedRGBS3TCDXT1",
	CompressedRGBAS3TCDXT1:                "CompressedRGBAS3TCDXT1",
	CompressedRGBAS3TCDXT3:                "CompressedRGBAS3TCDXT3",
	CompressedRGBAS3TCDXT5:                "CompressedRGBAS3TCDXT5",
	CompressedSRGBS3TCDXT1:                "CompressedSRGBS3TCDXT1",
	CompressedSRGBAlphaS3TCDXT1:           "CompressedSRGBAlphaS3TCDXT1",
	CompressedSRGBAlphaS3TCDXT3:           "CompressedSRGBAlphaS3TCDXT3",
	CompressedSRGBAlphaS3TCDXT5:           "CompressedSRGBAlphaS3TCDXT5",
	CompressedRedRGTC1:                    "CompressedRedRGTC1",
	CompressedSignedRedRGTC1:              "CompressedSignedRedRGTC1",
	CompressedRGRGTC2:                     "CompressedRGRGTC2",
	CompressedSignedRGRGTC2:               "CompressedSignedRGRGTC2",
	CompressedRGBABPTCUnorm:               "CompressedRGBABPTCUnorm",
	CompressedSRGBAlphaBPTCUnorm:          "CompressedSRGBAlphaBPTCUnorm",
	CompressedRGBBPTCSignedFloat:          "CompressedRGBBPTCSignedFloat",
	CompressedRGBBPTCUnsignedFloat:        "CompressedRGBBPTCUnsignedFloat",
	CompressedR11EAC:                      "CompressedR11EAC",
	CompressedSignedR11EAC:                "CompressedSignedR11EAC",
	CompressedRG11EAC:                     "CompressedRG11EAC",
	CompressedSignedRG11EAC:               "CompressedSignedRG11EAC",
	CompressedRGB8ETC2:                    "CompressedRGB8ETC2",
	CompressedSRGB8ETC2:                   "CompressedSRGB8ETC2",
	CompressedRGB8PunchthroughAlpha1ETC2:  "CompressedRGB8PunchthroughAlpha1ETC2",
	CompressedSRGB8PunchthroughAlpha1ETC2: "CompressedSRGB8PunchthroughAlpha1ETC2",
	CompressedRGBA8ETC2EAC:                "CompressedRGBA8ETC2EAC",
	CompressedSRGB8Alpha8ETC2EAC:          "CompressedSRGB8Alpha8ETC2EAC",
	CompressedRGBAASTC4x4:                 "CompressedRGBAASTC4x4",
	CompressedRGBAASTC5x4:                 "CompressedRGBAASTC5x4",
	CompressedRGBAASTC5x5:                 "CompressedRGBAASTC5x5",
	CompressedRGBAASTC6x5:                 "CompressedRGBAASTC6x5",
	CompressedRGBAASTC6x6:                 "CompressedRGBAASTC6x6",
	CompressedRGBAASTC8x5:                 "CompressedRGBAASTC8x5",
	CompressedRGBAASTC8x6:                 "CompressedRGBAASTC8x6",
	CompressedRGBAASTC8x8:                 "CompressedRGBAASTC8x8",
	CompressedRGBAASTC10x5:                "CompressedRGBAASTC10x5",
	CompressedRGBAASTC10x6:                "CompressedRGBAASTC10x6",
	CompressedRGBAASTC10x8:                "CompressedRGBAASTC10x8",
	CompressedRGBAASTC10x10:               "CompressedRGBAASTC10x10",
	CompressedRGBAASTC12x10:               "CompressedRGBAASTC12x10",
	CompressedRGBAASTC12x12:               "CompressedRGBAASTC12x12",
	CompressedSRGB8Alpha8ASTC4x4:          "CompressedSRGB8Alpha8ASTC4x4",
	CompressedSRGB8Alpha8ASTC5x4:          "CompressedSRGB8Alpha8ASTC5x4",
	CompressedSRGB8Alpha8ASTC5x5:          "CompressedSRGB8Alpha8ASTC5x5",
	CompressedSRGB8Alpha8ASTC6x5:          "CompressedSRGB8Alpha8ASTC6x5",
	CompressedSRGB8Alpha8ASTC6x6:          "CompressedSRGB8Alpha8ASTC6x6",
	CompressedSRGB8Alpha8ASTC8x5:          "CompressedSRGB8Alpha8ASTC8x5",
	CompressedSRGB8Alpha8ASTC8x6:          "CompressedSRGB8Alpha8ASTC8x6",
	CompressedSRGB8Alpha8ASTC8x8:          "CompressedSRGB8Alpha8ASTC8x8",
	CompressedSRGB8Alpha8ASTC10x5:         "CompressedSRGB8Alpha8ASTC10x5",
	CompressedSRGB8Alpha8ASTC10x6:         "CompressedSRGB8Alpha8ASTC10x6",
	CompressedSRGB8Alpha8ASTC10x8:         "CompressedSRGB8Alpha8ASTC10x8",
	CompressedSRGB8Alpha8ASTC10x10:        "CompressedSRGB8Alpha8ASTC10x10",
	CompressedSRGB8Alpha8ASTC12x10:        "CompressedSRGB8Alpha8ASTC12x10",
	CompressedSRGB8Alpha8ASTC12x12:        "CompressedSRGB8Alpha8ASTC12x12",
}

var textureFormatNames = map[TextureFormat]string{
	RGB8:              "RGB8",
	RGB16:             "RGB16",
	RGBA4:             "RGBA4",
	RGB5A1:            "RGB5A1",
	RGBA8:             "RGBA8",
	RGB10A2:           "RGB10A2",
	RGBA16:            "RGBA16",
	DepthComponent16:  "DepthComponent16",
	DepthComponent24:  "DepthComponent24",
	DepthComponent32:  "DepthComponent32",
	R8:                "R8",
	R16:               "R16",
	RG8:               "RG8",
	RG16:              "RG16",
	R16F:              "R16F",
	R32F:              "R32F",
	RG16F:             "RG16F",
	RG32F:             "RG32F",
	R8I:               "R8I",
	R8UI:              "R8UI",
	R16I:              "R16I",
	R16UI:             "R16UI",
	R32I:              "R32I",
	R32UI:             "R32UI",
	RG8I:              "RG8I",
	RG8UI:             "RG8UI",
	RG16I:             "RG16I",
	RG16UI:            "RG16UI",
	RG32I:             "RG32I",
	RG32UI:            "RG32UI",
	RGBA32F:           "RGBA32F",
	RGB32F:            "RGB32F",
	RGBA16F:           "RGBA16F",
	RGB16F:            "RGB16F",
	Depth24Stencil8:   "Depth24Stencil8",
	R11FG11FB10F:      "R11FG11FB10F",
	RGB9E5:            "RGB9E5",
	SRGB8:             "SRGB8",
	SRGB8Alpha8:       "SRGB8Alpha8",
	DepthComponent32F: "DepthComponent32F",
	Depth32FStencil8:  "Depth32FStencil8",
	StencilIndex8:     "StencilIndex8",
	RGB565:            "RGB565",
	RGBA32UI:          "RGBA32UI",
	RGB32UI:           "RGB32UI",
	RGBA16UI:          "RGBA16UI",
	RGB16UI:           "RGB16UI",
	RGBA8UI:           "RGBA8UI",
	RGB8UI:            "RGB8UI",
	RGBA32I:           "RGBA32I",
	RGB32I:            "RGB32I",
	RGBA16I:           "RGBA16I",
	RGB16I:            "RGB16I",
	RGBA8I:            "RGBA8I",
	RGB8I:             "RGB8I",
	R8Snorm:           "R8Snorm",
	RG8Snorm:          "RG8Snorm",
	RGB8Snorm:         "RGB8Snorm",
	RGBA8Snorm:        "RGBA8Snorm",
	R16Snorm:          "R16Snorm",
	RG16Snorm:         "RG16Snorm",
	RGB16Snorm:        "RGB16Snorm",
	RGBA16Snorm:       "RGBA16Snorm",
	SR8:               "SR8",
	SRG8:              "SRG8",
	RGB10A2UI:         "RGB10A2UI",
	BGRA8:             "BGRA8",
}

var enumNames = map[Enum]string{
	TEXTURE_1D:                       "TEXTURE_1D",
	TEXTURE_2D:                       "TEXTURE_2D",
	TEXTURE_3D:                       "TEXTURE_3D",
	TEXTURE_RECTANGLE:                "TEXTURE_RECTANGLE",
	TEXTURE_CUBE_MAP:                 "TEXTURE_CUBE_MAP",
	TEXTURE_CUBE_MAP_POSITIVE_X:      "TEXTURE_CUBE_MAP_POSITIVE_X",
	TEXTURE_CUBE_MAP_NEGATIVE_X:      "TEXTURE_CUBE_MAP_NEGATIVE_X",
	TEXTURE_CUBE_MAP_POSITIVE_Y:      "TEXTURE_CUBE_MAP_POSITIVE_Y",
	TEXTURE_CUBE_MAP_NEGATIVE_Y:      "TEXTURE_CUBE_MAP_NEGATIVE_Y",
	TEXTURE_CUBE_MAP_POSITIVE_Z:      "TEXTURE_CUBE_MAP_POSITIVE_Z",
	TEXTURE_CUBE_MAP_NEGATIVE_Z:      "TEXTURE_CUBE_MAP_NEGATIVE_Z",
	TEXTURE_1D_ARRAY:                 "TEXTURE_1D_ARRAY",
	TEXTURE_2D_ARRAY:                 "TEXTURE_2D_ARRAY",
	TEXTURE_WIDTH:                    "TEXTURE_WIDTH",
	TEXTURE_HEIGHT:                   "TEXTURE_HEIGHT",
	TEXTURE_INTERNAL_FORMAT:          "TEXTURE_INTERNAL_FORMAT",
	TEXTURE_BORDER_COLOR:             "TEXTURE_BORDER_COLOR",
	TEXTURE_MAG_FILTER:               "TEXTURE_MAG_FILTER",
	TEXTURE_MIN_FILTER:               "TEXTURE_MIN_FILTER",
	TEXTURE_WRAP_S:                   "TEXTURE_WRAP_S",
	TEXTURE_WRAP_T:                   "TEXTURE_WRAP_T",
	TEXTURE_DEPTH:                    "TEXTURE_DEPTH",
	TEXTURE_WRAP_R:                   "TEXTURE_WRAP_R",
	TEXTURE_MAX_ANISOTROPY:           "TEXTURE_MAX_ANISOTROPY",
	MAX_TEXTURE_MAX_ANISOTROPY:       "MAX_TEXTURE_MAX_ANISOTROPY",
	TEXTURE0:                         "TEXTURE0",
	MAX_COMBINED_TEXTURE_IMAGE_UNITS: "MAX_COMBINED_TEXTURE_IMAGE_UNITS",
	NEAREST:                          "NEAREST",
	LINEAR:                           "LINEAR",
	NEAREST_MIPMAP_NEAREST:           "NEAREST_MIPMAP_NEAREST",
	LINEAR_MIPMAP_NEAREST:            "LINEAR_MIPMAP_NEAREST",
	NEAREST_MIPMAP_LINEAR:            "NEAREST_MIPMAP_LINEAR",
	LINEAR_MIPMAP_LINEAR:             "LINEAR_MIPMAP_LINEAR",
	REPEAT:                           "REPEAT",
	CLAMP_TO_BORDER:                  "CLAMP_TO_BORDER",
	CLAMP_TO_EDGE:                    "CLAMP_TO_EDGE",
	MIRRORED_REPEAT:                  "MIRRORED_REPEAT",
	MIRROR_CLAMP_TO_EDGE:             "MIRROR_CLAMP_TO_EDGE",
	UNPACK_ROW_LENGTH:                "UNPACK_ROW_LENGTH",
	UNPACK_SKIP_ROWS:                 "UNPACK_SKIP_ROWS",
	UNPACK_SKIP_PIXELS:               "UNPACK_SKIP_PIXELS",
	UNPACK_ALIGNMENT:                 "UNPACK_ALIGNMENT",
	PACK_ALIGNMENT:                   "PACK_ALIGNMENT",
	UNPACK_SKIP_IMAGES:               "UNPACK_SKIP_IMAGES",
	UNPACK_IMAGE_HEIGHT:              "UNPACK_IMAGE_HEIGHT",
	VENDOR:                           "VENDOR",
	RENDERER:                         "RENDERER",
	VERSION:                          "VERSION",
	EXTENSIONS:                       "EXTENSIONS",
}

func (f PixelFormat) String() string {
	if s, ok := pixelFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("PixelFormat(%#x)", uint32(f))
}

func (t PixelType) String() string {
	if s, ok := pixelTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("PixelType(%#x)", uint32(t))
}

func (f CompressedPixelFormat) String() string {
	if s, ok := compressedPixelFormatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("CompressedPixelFormat(%#x)", uint32(f))
}

func (f TextureFormat) String() string {
	if s, ok := textureFormatNames[f]; ok {
		return s
	}
	// Unsized internal formats share values with pixel formats.
	if s, ok := pixelFormatNames[PixelFormat(f)]; ok {
		return s
	}
	return fmt.Sprintf("TextureFormat(%#x)", uint32(f))
}

func (e Enum) String() string {
	if s, ok := enumNames[e]; ok {
		return "GL_" + s
	}
	return fmt.Sprintf("Enum(%#x)", uint32(e))
}
