package gl

// Functions is the subset of a GL context that texture code needs.
//
// Pixel data is passed as byte slices laid out according to the current
// unpack state (see [UNPACK_ALIGNMENT]). A nil slice allocates storage
// without uploading. Errors are not returned by the calls themselves;
// callers read them back through GetError, matching the driver model.
type Functions interface {
	GetError() uint32
	GetString(name Enum) string
	GetInteger(pname Enum) int32
	GetFloat(pname Enum) float32

	GenTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)

	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	TexParameterfv(target, pname Enum, params []float32)
	GetTexParameteri(target, pname Enum) int32
	GetTexParameterf(target, pname Enum) float32
	GetTexParameterfv(target, pname Enum, dst []float32)
	GetTexLevelParameteri(target Enum, level int, pname Enum) int32

	PixelStorei(pname Enum, param int32)

	TexImage1D(target Enum, level int, internal TextureFormat, width int, format PixelFormat, typ PixelType, data []byte)
	TexImage2D(target Enum, level int, internal TextureFormat, width, height int, format PixelFormat, typ PixelType, data []byte)
	TexImage3D(target Enum, level int, internal TextureFormat, width, height, depth int, format PixelFormat, typ PixelType, data []byte)
	TexSubImage1D(target Enum, level, x, width int, format PixelFormat, typ PixelType, data []byte)
	TexSubImage2D(target Enum, level, x, y, width, height int, format PixelFormat, typ PixelType, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format PixelFormat, typ PixelType, data []byte)

	CompressedTexImage2D(target Enum, level int, format CompressedPixelFormat, width, height int, data []byte)
	CompressedTexImage3D(target Enum, level int, format CompressedPixelFormat, width, height, depth int, data []byte)
	CompressedTexSubImage2D(target Enum, level, x, y, width, height int, format CompressedPixelFormat, data []byte)
	CompressedTexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format CompressedPixelFormat, data []byte)

	GenerateMipmap(target Enum)

	// GetTexImage reads a level back into dst using the pack state.
	// Not available on GLES or WebGL.
	GetTexImage(target Enum, level int, format PixelFormat, typ PixelType, dst []byte)
}

// DirectStateAccess is implemented by drivers exposing
// EXT_direct_state_access (or the equivalent core entry points). Each call
// names the texture explicitly, so no binding is disturbed. target is the
// texture's bind target, or a cube map face for per-face uploads.
type DirectStateAccess interface {
	TextureParameteri(t Texture, target, pname Enum, param int32)
	TextureParameterf(t Texture, target, pname Enum, param float32)
	TextureParameterfv(t Texture, target, pname Enum, params []float32)
	GetTextureParameteri(t Texture, target, pname Enum) int32
	GetTextureParameterf(t Texture, target, pname Enum) float32
	GetTextureParameterfv(t Texture, target, pname Enum, dst []float32)
	GetTextureLevelParameteri(t Texture, target Enum, level int, pname Enum) int32

	TextureImage1D(t Texture, target Enum, level int, internal TextureFormat, width int, format PixelFormat, typ PixelType, data []byte)
	TextureImage2D(t Texture, target Enum, level int, internal TextureFormat, width, height int, format PixelFormat, typ PixelType, data []byte)
	TextureImage3D(t Texture, target Enum, level int, internal TextureFormat, width, height, depth int, format PixelFormat, typ PixelType, data []byte)
	TextureSubImage1D(t Texture, target Enum, level, x, width int, format PixelFormat, typ PixelType, data []byte)
	TextureSubImage2D(t Texture, target Enum, level, x, y, width, height int, format PixelFormat, typ PixelType, data []byte)
	TextureSubImage3D(t Texture, target Enum, level, x, y, z, width, height, depth int, format PixelFormat, typ PixelType, data []byte)

	CompressedTextureImage2D(t Texture, target Enum, level int, format CompressedPixelFormat, width, height int, data []byte)
	CompressedTextureImage3D(t Texture, target Enum, level int, format CompressedPixelFormat, width, height, depth int, data []byte)
	CompressedTextureSubImage2D(t Texture, target Enum, level, x, y, width, height int, format CompressedPixelFormat, data []byte)
	CompressedTextureSubImage3D(t Texture, target Enum, level, x, y, z, width, height, depth int, format CompressedPixelFormat, data []byte)

	GenerateTextureMipmap(t Texture, target Enum)
	GetTextureImage(t Texture, target Enum, level int, format PixelFormat, typ PixelType, dst []byte)
}

// CubeMapFace returns the upload target of cube map face i, in the order
// +X, -X, +Y, -Y, +Z, -Z.
func CubeMapFace(i int) Enum {
	return TEXTURE_CUBE_MAP_POSITIVE_X + Enum(i)
}
