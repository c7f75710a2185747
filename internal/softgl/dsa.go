package softgl

import "github.com/gogpu/glhal/gl"

// Direct-access entry points. Each resolves the named texture without
// touching unit bindings and then shares the bind-path implementation.

func (d *Device) TextureParameteri(t gl.Texture, target, pname gl.Enum, param int32) {
	d.Stats.Parameter++
	if o, ok := d.named("TextureParameteri", t, target); ok {
		d.report("TextureParameteri", d.setParami(o, pname, param))
	}
}

func (d *Device) TextureParameterf(t gl.Texture, target, pname gl.Enum, param float32) {
	d.Stats.Parameter++
	if o, ok := d.named("TextureParameterf", t, target); ok {
		d.report("TextureParameterf", d.setParamf(o, pname, param))
	}
}

func (d *Device) TextureParameterfv(t gl.Texture, target, pname gl.Enum, params []float32) {
	d.Stats.Parameter++
	if o, ok := d.named("TextureParameterfv", t, target); ok {
		d.report("TextureParameterfv", d.setParamfv(o, pname, params))
	}
}

func (d *Device) GetTextureParameteri(t gl.Texture, target, pname gl.Enum) int32 {
	return int32(d.GetTextureParameterf(t, target, pname))
}

func (d *Device) GetTextureParameterf(t gl.Texture, target, pname gl.Enum) float32 {
	var v [4]float32
	d.GetTextureParameterfv(t, target, pname, v[:])
	return v[0]
}

func (d *Device) GetTextureParameterfv(t gl.Texture, target, pname gl.Enum, dst []float32) {
	if o, ok := d.named("GetTextureParameterfv", t, target); ok {
		d.report("GetTextureParameterfv", d.getParamf(o, pname, dst))
	}
}

func (d *Device) GetTextureLevelParameteri(t gl.Texture, target gl.Enum, lvl int, pname gl.Enum) int32 {
	o, ok := d.named("GetTextureLevelParameteri", t, target)
	if !ok {
		return 0
	}
	v, code := d.levelParam(o, target, lvl, pname)
	d.report("GetTextureLevelParameteri", code)
	return v
}

func (d *Device) TextureImage1D(t gl.Texture, target gl.Enum, lvl int, internal gl.TextureFormat, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureImage1D", t, target); ok {
		d.report("TextureImage1D", d.texImage(o, target, lvl, internal, [3]int{width, 1, 1}, 1, format, typ, data))
	}
}

func (d *Device) TextureImage2D(t gl.Texture, target gl.Enum, lvl int, internal gl.TextureFormat, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureImage2D", t, target); ok {
		d.report("TextureImage2D", d.texImage(o, target, lvl, internal, [3]int{width, height, 1}, 2, format, typ, data))
	}
}

func (d *Device) TextureImage3D(t gl.Texture, target gl.Enum, lvl int, internal gl.TextureFormat, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureImage3D", t, target); ok {
		d.report("TextureImage3D", d.texImage(o, target, lvl, internal, [3]int{width, height, depth}, 3, format, typ, data))
	}
}

func (d *Device) TextureSubImage1D(t gl.Texture, target gl.Enum, lvl, x, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureSubImage1D", t, target); ok {
		d.report("TextureSubImage1D", d.texSubImage(o, target, lvl, [3]int{x, 0, 0}, [3]int{width, 1, 1}, 1, format, typ, data))
	}
}

func (d *Device) TextureSubImage2D(t gl.Texture, target gl.Enum, lvl, x, y, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureSubImage2D", t, target); ok {
		d.report("TextureSubImage2D", d.texSubImage(o, target, lvl, [3]int{x, y, 0}, [3]int{width, height, 1}, 2, format, typ, data))
	}
}

func (d *Device) TextureSubImage3D(t gl.Texture, target gl.Enum, lvl, x, y, z, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.named("TextureSubImage3D", t, target); ok {
		d.report("TextureSubImage3D", d.texSubImage(o, target, lvl, [3]int{x, y, z}, [3]int{width, height, depth}, 3, format, typ, data))
	}
}

func (d *Device) CompressedTextureImage2D(t gl.Texture, target gl.Enum, lvl int, format gl.CompressedPixelFormat, width, height int, data []byte) {
	if o, ok := d.named("CompressedTextureImage2D", t, target); ok {
		d.report("CompressedTextureImage2D", d.compressedImage(o, target, lvl, format, [3]int{width, height, 1}, 2, data))
	}
}

func (d *Device) CompressedTextureImage3D(t gl.Texture, target gl.Enum, lvl int, format gl.CompressedPixelFormat, width, height, depth int, data []byte) {
	if o, ok := d.named("CompressedTextureImage3D", t, target); ok {
		d.report("CompressedTextureImage3D", d.compressedImage(o, target, lvl, format, [3]int{width, height, depth}, 3, data))
	}
}

func (d *Device) CompressedTextureSubImage2D(t gl.Texture, target gl.Enum, lvl, x, y, width, height int, format gl.CompressedPixelFormat, data []byte) {
	if o, ok := d.named("CompressedTextureSubImage2D", t, target); ok {
		d.report("CompressedTextureSubImage2D", d.compressedSubImage(o, target, lvl, [3]int{x, y, 0}, [3]int{width, height, 1}, 2, format, data))
	}
}

func (d *Device) CompressedTextureSubImage3D(t gl.Texture, target gl.Enum, lvl, x, y, z, width, height, depth int, format gl.CompressedPixelFormat, data []byte) {
	if o, ok := d.named("CompressedTextureSubImage3D", t, target); ok {
		d.report("CompressedTextureSubImage3D", d.compressedSubImage(o, target, lvl, [3]int{x, y, z}, [3]int{width, height, depth}, 3, format, data))
	}
}

func (d *Device) GenerateTextureMipmap(t gl.Texture, target gl.Enum) {
	if o, ok := d.named("GenerateTextureMipmap", t, target); ok {
		d.report("GenerateTextureMipmap", d.generateMipmap(o))
	}
}

func (d *Device) GetTextureImage(t gl.Texture, target gl.Enum, lvl int, format gl.PixelFormat, typ gl.PixelType, dst []byte) {
	if o, ok := d.named("GetTextureImage", t, target); ok {
		d.report("GetTextureImage", d.readImage(o, target, lvl, format, typ, dst))
	}
}
