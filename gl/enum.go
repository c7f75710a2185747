// Package gl defines the native GL vocabulary used by glhal: typed
// enumerations for pixel formats, pixel types, compressed formats and
// texture internal formats, the raw constants for texture targets and
// parameters, and the driver interfaces texture code is written against.
//
// Values match the Khronos registry so that a [Functions] implementation
// can pass them to the driver unchanged.
package gl

// Enum is an untyped GL enumeration value.
type Enum uint32

// Texture is a native texture object name. Zero is never a valid texture.
type Texture uint32

// PixelFormat is the native channel layout of client pixel data.
type PixelFormat uint32

// PixelType is the native per-channel encoding of client pixel data,
// including packed encodings that cover all channels at once.
type PixelType uint32

// CompressedPixelFormat is a native block-compressed format.
type CompressedPixelFormat uint32

// TextureFormat is a native texture internal format. Sized values are
// used on GL, GLES3 and WebGL2; GLES2 and WebGL1 use the unsized channel
// layout (the [PixelFormat] value).
type TextureFormat uint32

// Pixel formats.
const (
	StencilIndex   PixelFormat = 0x1901
	DepthComponent PixelFormat = 0x1902
	Red            PixelFormat = 0x1903
	Green          PixelFormat = 0x1904
	Blue           PixelFormat = 0x1905
	RGB            PixelFormat = 0x1907
	RGBA           PixelFormat = 0x1908
	Luminance      PixelFormat = 0x1909
	LuminanceAlpha PixelFormat = 0x190A
	BGR            PixelFormat = 0x80E0
	BGRA           PixelFormat = 0x80E1
	RG             PixelFormat = 0x8227
	RGInteger      PixelFormat = 0x8228
	DepthStencil   PixelFormat = 0x84F9
	SRGB           PixelFormat = 0x8C40
	SRGBAlpha      PixelFormat = 0x8C42
	RedInteger     PixelFormat = 0x8D94
	GreenInteger   PixelFormat = 0x8D95
	BlueInteger    PixelFormat = 0x8D96
	RGBInteger     PixelFormat = 0x8D98
	RGBAInteger    PixelFormat = 0x8D99
	BGRInteger     PixelFormat = 0x8D9A
	BGRAInteger    PixelFormat = 0x8D9B
)

// Pixel types.
const (
	Byte                     PixelType = 0x1400
	UnsignedByte             PixelType = 0x1401
	Short                    PixelType = 0x1402
	UnsignedShort            PixelType = 0x1403
	Int                      PixelType = 0x1404
	UnsignedInt              PixelType = 0x1405
	Float                    PixelType = 0x1406
	HalfFloat                PixelType = 0x140B
	UnsignedByte332          PixelType = 0x8032
	UnsignedShort4444        PixelType = 0x8033
	UnsignedShort5551        PixelType = 0x8034
	UnsignedInt8888          PixelType = 0x8035
	UnsignedInt1010102       PixelType = 0x8036
	UnsignedByte233Rev       PixelType = 0x8362
	UnsignedShort565         PixelType = 0x8363
	UnsignedShort565Rev      PixelType = 0x8364
	UnsignedShort4444Rev     PixelType = 0x8365
	UnsignedShort1555Rev     PixelType = 0x8366
	UnsignedInt8888Rev       PixelType = 0x8367
	UnsignedInt2101010Rev    PixelType = 0x8368
	UnsignedInt248           PixelType = 0x84FA
	UnsignedInt10F11F11FRev  PixelType = 0x8C3B
	UnsignedInt5999Rev       PixelType = 0x8C3E
	HalfFloatOES             PixelType = 0x8D61
	Float32UnsignedInt248Rev PixelType = 0x8DAD
)

// Sized texture internal formats.
const (
	RGB8              TextureFormat = 0x8051
	RGB16             TextureFormat = 0x8054
	RGBA4             TextureFormat = 0x8056
	RGB5A1            TextureFormat = 0x8057
	RGBA8             TextureFormat = 0x8058
	RGB10A2           TextureFormat = 0x8059
	RGBA16            TextureFormat = 0x805B
	DepthComponent16  TextureFormat = 0x81A5
	DepthComponent24  TextureFormat = 0x81A6
	DepthComponent32  TextureFormat = 0x81A7
	R8                TextureFormat = 0x8229
	R16               TextureFormat = 0x822A
	RG8               TextureFormat = 0x822B
	RG16              TextureFormat = 0x822C
	R16F              TextureFormat = 0x822D
	R32F              TextureFormat = 0x822E
	RG16F             TextureFormat = 0x822F
	RG32F             TextureFormat = 0x8230
	R8I               TextureFormat = 0x8231
	R8UI              TextureFormat = 0x8232
	R16I              TextureFormat = 0x8233
	R16UI             TextureFormat = 0x8234
	R32I              TextureFormat = 0x8235
	R32UI             TextureFormat = 0x8236
	RG8I              TextureFormat = 0x8237
	RG8UI             TextureFormat = 0x8238
	RG16I             TextureFormat = 0x8239
	RG16UI            TextureFormat = 0x823A
	RG32I             TextureFormat = 0x823B
	RG32UI            TextureFormat = 0x823C
	RGBA32F           TextureFormat = 0x8814
	RGB32F            TextureFormat = 0x8815
	RGBA16F           TextureFormat = 0x881A
	RGB16F            TextureFormat = 0x881B
	Depth24Stencil8   TextureFormat = 0x88F0
	R11FG11FB10F      TextureFormat = 0x8C3A
	RGB9E5            TextureFormat = 0x8C3D
	SRGB8             TextureFormat = 0x8C41
	SRGB8Alpha8       TextureFormat = 0x8C43
	DepthComponent32F TextureFormat = 0x8CAC
	Depth32FStencil8  TextureFormat = 0x8CAD
	StencilIndex8     TextureFormat = 0x8D48
	RGB565            TextureFormat = 0x8D62
	RGBA32UI          TextureFormat = 0x8D70
	RGB32UI           TextureFormat = 0x8D71
	RGBA16UI          TextureFormat = 0x8D76
	RGB16UI           TextureFormat = 0x8D77
	RGBA8UI           TextureFormat = 0x8D7C
	RGB8UI            TextureFormat = 0x8D7D
	RGBA32I           TextureFormat = 0x8D82
	RGB32I            TextureFormat = 0x8D83
	RGBA16I           TextureFormat = 0x8D88
	RGB16I            TextureFormat = 0x8D89
	RGBA8I            TextureFormat = 0x8D8E
	RGB8I             TextureFormat = 0x8D8F
	R8Snorm           TextureFormat = 0x8F94
	RG8Snorm          TextureFormat = 0x8F95
	RGB8Snorm         TextureFormat = 0x8F96
	RGBA8Snorm        TextureFormat = 0x8F97
	R16Snorm          TextureFormat = 0x8F98
	RG16Snorm         TextureFormat = 0x8F99
	RGB16Snorm        TextureFormat = 0x8F9A
	RGBA16Snorm       TextureFormat = 0x8F9B
	SR8               TextureFormat = 0x8FBD
	SRG8              TextureFormat = 0x8FBE
	RGB10A2UI         TextureFormat = 0x906F
	BGRA8             TextureFormat = 0x93A1
)

// Compressed pixel formats.
const (
	CompressedRGBS3TCDXT1                 CompressedPixelFormat = 0x83F0
	CompressedRGBAS3TCDXT1                CompressedPixelFormat = 0x83F1
	CompressedRGBAS3TCDXT3                CompressedPixelFormat = 0x83F2
	CompressedRGBAS3TCDXT5                CompressedPixelFormat = 0x83F3
	CompressedSRGBS3TCDXT1                CompressedPixelFormat = 0x8C4C
	CompressedSRGBAlphaS3TCDXT1           CompressedPixelFormat = 0x8C4D
	CompressedSRGBAlphaS3TCDXT3           CompressedPixelFormat = 0x8C4E
	CompressedSRGBAlphaS3TCDXT5           CompressedPixelFormat = 0x8C4F
	CompressedRedRGTC1                    CompressedPixelFormat = 0x8DBB
	CompressedSignedRedRGTC1              CompressedPixelFormat = 0x8DBC
	CompressedRGRGTC2                     CompressedPixelFormat = 0x8DBD
	CompressedSignedRGRGTC2               CompressedPixelFormat = 0x8DBE
	CompressedRGBABPTCUnorm               CompressedPixelFormat = 0x8E8C
	CompressedSRGBAlphaBPTCUnorm          CompressedPixelFormat = 0x8E8D
	CompressedRGBBPTCSignedFloat          CompressedPixelFormat = 0x8E8E
	CompressedRGBBPTCUnsignedFloat        CompressedPixelFormat = 0x8E8F
	CompressedR11EAC                      CompressedPixelFormat = 0x9270
	CompressedSignedR11EAC                CompressedPixelFormat = 0x9271
	CompressedRG11EAC                     CompressedPixelFormat = 0x9272
	CompressedSignedRG11EAC               CompressedPixelFormat = 0x9273
	CompressedRGB8ETC2                    CompressedPixelFormat = 0x9274
	CompressedSRGB8ETC2                   CompressedPixelFormat = 0x9275
	CompressedRGB8PunchthroughAlpha1ETC2  CompressedPixelFormat = 0x9276
	CompressedSRGB8PunchthroughAlpha1ETC2 CompressedPixelFormat = 0x9277
	CompressedRGBA8ETC2EAC                CompressedPixelFormat = 0x9278
	CompressedSRGB8Alpha8ETC2EAC          CompressedPixelFormat = 0x9279
	CompressedRGBAASTC4x4                 CompressedPixelFormat = 0x93B0
	CompressedRGBAASTC5x4                 CompressedPixelFormat = 0x93B1
	CompressedRGBAASTC5x5                 CompressedPixelFormat = 0x93B2
	CompressedRGBAASTC6x5                 CompressedPixelFormat = 0x93B3
	CompressedRGBAASTC6x6                 CompressedPixelFormat = 0x93B4
	CompressedRGBAASTC8x5                 CompressedPixelFormat = 0x93B5
	CompressedRGBAASTC8x6                 CompressedPixelFormat = 0x93B6
	CompressedRGBAASTC8x8                 CompressedPixelFormat = 0x93B7
	CompressedRGBAASTC10x5                CompressedPixelFormat = 0x93B8
	CompressedRGBAASTC10x6                CompressedPixelFormat = 0x93B9
	CompressedRGBAASTC10x8                CompressedPixelFormat = 0x93BA
	CompressedRGBAASTC10x10               CompressedPixelFormat = 0x93BB
	CompressedRGBAASTC12x10               CompressedPixelFormat = 0x93BC
	CompressedRGBAASTC12x12               CompressedPixelFormat = 0x93BD
	CompressedSRGB8Alpha8ASTC4x4          CompressedPixelFormat = 0x93D0
	CompressedSRGB8Alpha8ASTC5x4          CompressedPixelFormat = 0x93D1
	CompressedSRGB8Alpha8ASTC5x5          CompressedPixelFormat = 0x93D2
	CompressedSRGB8Alpha8ASTC6x5          CompressedPixelFormat = 0x93D3
	CompressedSRGB8Alpha8ASTC6x6          CompressedPixelFormat = 0x93D4
	CompressedSRGB8Alpha8ASTC8x5          CompressedPixelFormat = 0x93D5
	CompressedSRGB8Alpha8ASTC8x6          CompressedPixelFormat = 0x93D6
	CompressedSRGB8Alpha8ASTC8x8          CompressedPixelFormat = 0x93D7
	CompressedSRGB8Alpha8ASTC10x5         CompressedPixelFormat = 0x93D8
	CompressedSRGB8Alpha8ASTC10x6         CompressedPixelFormat = 0x93D9
	CompressedSRGB8Alpha8ASTC10x8         CompressedPixelFormat = 0x93DA
	CompressedSRGB8Alpha8ASTC10x10        CompressedPixelFormat = 0x93DB
	CompressedSRGB8Alpha8ASTC12x10        CompressedPixelFormat = 0x93DC
	CompressedSRGB8Alpha8ASTC12x12        CompressedPixelFormat = 0x93DD
)

// Texture targets.
const (
	TEXTURE_1D                  Enum = 0x0DE0
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_RECTANGLE           Enum = 0x84F5
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851A
	TEXTURE_1D_ARRAY            Enum = 0x8C18
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
)

// Texture parameters and level queries.
const (
	TEXTURE_WIDTH                    Enum = 0x1000
	TEXTURE_HEIGHT                   Enum = 0x1001
	TEXTURE_INTERNAL_FORMAT          Enum = 0x1003
	TEXTURE_BORDER_COLOR             Enum = 0x1004
	TEXTURE_MAG_FILTER               Enum = 0x2800
	TEXTURE_MIN_FILTER               Enum = 0x2801
	TEXTURE_WRAP_S                   Enum = 0x2802
	TEXTURE_WRAP_T                   Enum = 0x2803
	TEXTURE_DEPTH                    Enum = 0x8071
	TEXTURE_WRAP_R                   Enum = 0x8072
	TEXTURE_MAX_ANISOTROPY           Enum = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY       Enum = 0x84FF
	TEXTURE0                         Enum = 0x84C0
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
)

// Texture parameter values.
const (
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703
	REPEAT                 Enum = 0x2901
	CLAMP_TO_BORDER        Enum = 0x812D
	CLAMP_TO_EDGE          Enum = 0x812F
	MIRRORED_REPEAT        Enum = 0x8370
	MIRROR_CLAMP_TO_EDGE   Enum = 0x8743
)

// Pixel storage parameters.
const (
	UNPACK_ROW_LENGTH   Enum = 0x0CF2
	UNPACK_SKIP_ROWS    Enum = 0x0CF3
	UNPACK_SKIP_PIXELS  Enum = 0x0CF4
	UNPACK_ALIGNMENT    Enum = 0x0CF5
	PACK_ALIGNMENT      Enum = 0x0D05
	UNPACK_SKIP_IMAGES  Enum = 0x806D
	UNPACK_IMAGE_HEIGHT Enum = 0x806E
)

// Error codes and strings.
const (
	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502
	OUT_OF_MEMORY     = 0x0505

	VENDOR     Enum = 0x1F00
	RENDERER   Enum = 0x1F01
	VERSION    Enum = 0x1F02
	EXTENSIONS Enum = 0x1F03
)
