package texture

import "github.com/gogpu/glhal/gl"

// access is the set of per-texture driver calls. bindAccess routes them
// through a texture unit, dsaAccess names the texture directly. Both take
// the same target: the bind target, or a cube face for face uploads.
type access interface {
	parameteri(target, pname gl.Enum, v int32)
	parameterf(target, pname gl.Enum, v float32)
	parameterfv(target, pname gl.Enum, v []float32)
	getParameterfv(target, pname gl.Enum, dst []float32)
	levelParameteri(target gl.Enum, level int, pname gl.Enum) int32

	image1D(target gl.Enum, level int, internal gl.TextureFormat, w int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	image2D(target gl.Enum, level int, internal gl.TextureFormat, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	image3D(target gl.Enum, level int, internal gl.TextureFormat, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	subImage1D(target gl.Enum, level, x, w int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	subImage2D(target gl.Enum, level, x, y, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	subImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	compressedImage2D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h int, data []byte)
	compressedImage3D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h, d int, data []byte)
	compressedSubImage2D(target gl.Enum, level, x, y, w, h int, format gl.CompressedPixelFormat, data []byte)
	compressedSubImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.CompressedPixelFormat, data []byte)

	generateMipmap(target gl.Enum)
	readImage(target gl.Enum, level int, format gl.PixelFormat, typ gl.PixelType, dst []byte)
}

// bindAccess binds the texture to the context's scratch unit before every
// call and leaves it bound.
type bindAccess struct {
	t *Texture
}

func (a bindAccess) fns() gl.Functions {
	a.t.c.bindScratch(a.t)
	return a.t.c.f
}

func (a bindAccess) parameteri(target, pname gl.Enum, v int32) {
	a.fns().TexParameteri(target, pname, v)
}

func (a bindAccess) parameterf(target, pname gl.Enum, v float32) {
	a.fns().TexParameterf(target, pname, v)
}

func (a bindAccess) parameterfv(target, pname gl.Enum, v []float32) {
	a.fns().TexParameterfv(target, pname, v)
}

func (a bindAccess) getParameterfv(target, pname gl.Enum, dst []float32) {
	a.fns().GetTexParameterfv(target, pname, dst)
}

func (a bindAccess) levelParameteri(target gl.Enum, level int, pname gl.Enum) int32 {
	return a.fns().GetTexLevelParameteri(target, level, pname)
}

func (a bindAccess) image1D(target gl.Enum, level int, internal gl.TextureFormat, w int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexImage1D(target, level, internal, w, format, typ, data)
}

func (a bindAccess) image2D(target gl.Enum, level int, internal gl.TextureFormat, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexImage2D(target, level, internal, w, h, format, typ, data)
}

func (a bindAccess) image3D(target gl.Enum, level int, internal gl.TextureFormat, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexImage3D(target, level, internal, w, h, d, format, typ, data)
}

func (a bindAccess) subImage1D(target gl.Enum, level, x, w int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexSubImage1D(target, level, x, w, format, typ, data)
}

func (a bindAccess) subImage2D(target gl.Enum, level, x, y, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexSubImage2D(target, level, x, y, w, h, format, typ, data)
}

func (a bindAccess) subImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.fns().TexSubImage3D(target, level, x, y, z, w, h, d, format, typ, data)
}

func (a bindAccess) compressedImage2D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h int, data []byte) {
	a.fns().CompressedTexImage2D(target, level, format, w, h, data)
}

func (a bindAccess) compressedImage3D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h, d int, data []byte) {
	a.fns().CompressedTexImage3D(target, level, format, w, h, d, data)
}

func (a bindAccess) compressedSubImage2D(target gl.Enum, level, x, y, w, h int, format gl.CompressedPixelFormat, data []byte) {
	a.fns().CompressedTexSubImage2D(target, level, x, y, w, h, format, data)
}

func (a bindAccess) compressedSubImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.CompressedPixelFormat, data []byte) {
	a.fns().CompressedTexSubImage3D(target, level, x, y, z, w, h, d, format, data)
}

func (a bindAccess) generateMipmap(target gl.Enum) {
	a.fns().GenerateMipmap(target)
}

func (a bindAccess) readImage(target gl.Enum, level int, format gl.PixelFormat, typ gl.PixelType, dst []byte) {
	a.fns().GetTexImage(target, level, format, typ, dst)
}

// dsaAccess names the texture in every call. No binding changes.
type dsaAccess struct {
	d    gl.DirectStateAccess
	name gl.Texture
}

func (a dsaAccess) parameteri(target, pname gl.Enum, v int32) {
	a.d.TextureParameteri(a.name, target, pname, v)
}

func (a dsaAccess) parameterf(target, pname gl.Enum, v float32) {
	a.d.TextureParameterf(a.name, target, pname, v)
}

func (a dsaAccess) parameterfv(target, pname gl.Enum, v []float32) {
	a.d.TextureParameterfv(a.name, target, pname, v)
}

func (a dsaAccess) getParameterfv(target, pname gl.Enum, dst []float32) {
	a.d.GetTextureParameterfv(a.name, target, pname, dst)
}

func (a dsaAccess) levelParameteri(target gl.Enum, level int, pname gl.Enum) int32 {
	return a.d.GetTextureLevelParameteri(a.name, target, level, pname)
}

func (a dsaAccess) image1D(target gl.Enum, level int, internal gl.TextureFormat, w int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureImage1D(a.name, target, level, internal, w, format, typ, data)
}

func (a dsaAccess) image2D(target gl.Enum, level int, internal gl.TextureFormat, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureImage2D(a.name, target, level, internal, w, h, format, typ, data)
}

func (a dsaAccess) image3D(target gl.Enum, level int, internal gl.TextureFormat, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureImage3D(a.name, target, level, internal, w, h, d, format, typ, data)
}

func (a dsaAccess) subImage1D(target gl.Enum, level, x, w int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureSubImage1D(a.name, target, level, x, w, format, typ, data)
}

func (a dsaAccess) subImage2D(target gl.Enum, level, x, y, w, h int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureSubImage2D(a.name, target, level, x, y, w, h, format, typ, data)
}

func (a dsaAccess) subImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	a.d.TextureSubImage3D(a.name, target, level, x, y, z, w, h, d, format, typ, data)
}

func (a dsaAccess) compressedImage2D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h int, data []byte) {
	a.d.CompressedTextureImage2D(a.name, target, level, format, w, h, data)
}

func (a dsaAccess) compressedImage3D(target gl.Enum, level int, format gl.CompressedPixelFormat, w, h, d int, data []byte) {
	a.d.CompressedTextureImage3D(a.name, target, level, format, w, h, d, data)
}

func (a dsaAccess) compressedSubImage2D(target gl.Enum, level, x, y, w, h int, format gl.CompressedPixelFormat, data []byte) {
	a.d.CompressedTextureSubImage2D(a.name, target, level, x, y, w, h, format, data)
}

func (a dsaAccess) compressedSubImage3D(target gl.Enum, level, x, y, z, w, h, d int, format gl.CompressedPixelFormat, data []byte) {
	a.d.CompressedTextureSubImage3D(a.name, target, level, x, y, z, w, h, d, format, data)
}

func (a dsaAccess) generateMipmap(target gl.Enum) {
	a.d.GenerateTextureMipmap(a.name, target)
}

func (a dsaAccess) readImage(target gl.Enum, level int, format gl.PixelFormat, typ gl.PixelType, dst []byte) {
	a.d.GetTextureImage(a.name, target, level, format, typ, dst)
}
