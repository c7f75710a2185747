package softgl

import (
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
)

// faceKey returns the image key face for an upload target on o.
func faceKey(o *object, target gl.Enum) gl.Enum {
	if o.target == gl.TEXTURE_CUBE_MAP {
		return target
	}
	return o.target
}

// checkImageTarget validates an upload target against the object and the
// entry point's dimension count.
func checkImageTarget(o *object, target gl.Enum, n int) uint32 {
	if bindTarget(target) != o.target {
		return gl.INVALID_ENUM
	}
	if o.target == gl.TEXTURE_CUBE_MAP && target == gl.TEXTURE_CUBE_MAP {
		return gl.INVALID_ENUM
	}
	if dims(o.target) != n {
		return gl.INVALID_ENUM
	}
	return gl.NO_ERROR
}

// checkPixels validates a client format/type pair and returns its size.
func (d *Device) checkPixels(format gl.PixelFormat, typ gl.PixelType) (int, uint32) {
	if !d.reg.HasNativePixelFormat(format) || !d.reg.HasNativePixelType(typ) {
		return 0, gl.INVALID_ENUM
	}
	if format == gl.DepthStencil && typ != gl.UnsignedInt248 && typ != gl.Float32UnsignedInt248Rev {
		return 0, gl.INVALID_OPERATION
	}
	size, err := glformat.PixelSize(format, typ)
	if err != nil {
		return 0, gl.INVALID_OPERATION
	}
	return size, gl.NO_ERROR
}

// unpackInto copies client data laid out per the unpack state into a
// tightly packed buffer.
func (d *Device) unpackInto(size [3]int, ps int, data []byte) ([]byte, uint32) {
	tight := make([]byte, size[0]*size[1]*size[2]*ps)
	if data == nil {
		return tight, gl.NO_ERROR
	}
	l := d.unpack.ComputeLayout(size, ps)
	if len(data) < l.Size {
		return nil, gl.INVALID_OPERATION
	}
	row := size[0] * ps
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			src := l.At(0, y, z)
			dst := (z*size[1] + y) * row
			copy(tight[dst:dst+row], data[src:src+row])
		}
	}
	return tight, gl.NO_ERROR
}

func (d *Device) texImage(o *object, target gl.Enum, lvl int, internal gl.TextureFormat, size [3]int, n int, format gl.PixelFormat, typ gl.PixelType, data []byte) uint32 {
	d.Stats.Upload++
	if code := checkImageTarget(o, target, n); code != gl.NO_ERROR {
		return code
	}
	if lvl < 0 || (o.target == gl.TEXTURE_RECTANGLE && lvl != 0) {
		return gl.INVALID_VALUE
	}
	if size[0] < 0 || size[1] < 0 || size[2] < 0 {
		return gl.INVALID_VALUE
	}
	if o.target == gl.TEXTURE_CUBE_MAP && size[0] != size[1] {
		return gl.INVALID_VALUE
	}
	ps, code := d.checkPixels(format, typ)
	if code != gl.NO_ERROR {
		return code
	}
	if internal == 0 || (d.p.Target.IsES2Class() && internal != gl.TextureFormat(format)) {
		return gl.INVALID_OPERATION
	}
	tight, code := d.unpackInto(size, ps, data)
	if code != gl.NO_ERROR {
		return code
	}
	o.images[imageKey{faceKey(o, target), lvl}] = &level{
		internal:  internal,
		format:    format,
		typ:       typ,
		pixelSize: ps,
		size:      size,
		data:      tight,
	}
	return gl.NO_ERROR
}

func (d *Device) texSubImage(o *object, target gl.Enum, lvl int, off, size [3]int, n int, format gl.PixelFormat, typ gl.PixelType, data []byte) uint32 {
	d.Stats.Upload++
	if code := checkImageTarget(o, target, n); code != gl.NO_ERROR {
		return code
	}
	l, ok := o.images[imageKey{faceKey(o, target), lvl}]
	if !ok || l.compressed != 0 {
		return gl.INVALID_OPERATION
	}
	for i := range 3 {
		if off[i] < 0 || size[i] < 0 || off[i]+size[i] > l.size[i] {
			return gl.INVALID_VALUE
		}
	}
	ps, code := d.checkPixels(format, typ)
	if code != gl.NO_ERROR {
		return code
	}
	if ps != l.pixelSize {
		return gl.INVALID_OPERATION
	}
	if data == nil {
		return gl.INVALID_VALUE
	}
	tight, code := d.unpackInto(size, ps, data)
	if code != gl.NO_ERROR {
		return code
	}
	row := size[0] * ps
	for z := 0; z < size[2]; z++ {
		for y := 0; y < size[1]; y++ {
			dst := (((off[2]+z)*l.size[1]+off[1]+y)*l.size[0] + off[0]) * ps
			src := (z*size[1] + y) * row
			copy(l.data[dst:dst+row], tight[src:src+row])
		}
	}
	return gl.NO_ERROR
}

// compressedFormat resolves a native compressed format to its portable
// block description on the device's target.
func (d *Device) compressedFormat(format gl.CompressedPixelFormat) (pixel.CompressedFormat, bool) {
	for _, c := range d.reg.CompressedFormats() {
		if v, err := d.reg.CompressedPixelFormat(c); err == nil && v == format {
			return c, true
		}
	}
	return 0, false
}

func (d *Device) compressedImage(o *object, target gl.Enum, lvl int, format gl.CompressedPixelFormat, size [3]int, n int, data []byte) uint32 {
	d.Stats.Upload++
	if code := checkImageTarget(o, target, n); code != gl.NO_ERROR {
		return code
	}
	if lvl < 0 || size[0] < 0 || size[1] < 0 || size[2] < 0 {
		return gl.INVALID_VALUE
	}
	c, ok := d.compressedFormat(format)
	if !ok {
		return gl.INVALID_ENUM
	}
	if len(data) != c.DataSize(size[0], size[1], size[2]) {
		return gl.INVALID_VALUE
	}
	o.images[imageKey{faceKey(o, target), lvl}] = &level{
		internal:   gl.TextureFormat(format),
		compressed: format,
		size:       size,
		data:       append([]byte(nil), data...),
	}
	return gl.NO_ERROR
}

func (d *Device) compressedSubImage(o *object, target gl.Enum, lvl int, off, size [3]int, n int, format gl.CompressedPixelFormat, data []byte) uint32 {
	d.Stats.Upload++
	if code := checkImageTarget(o, target, n); code != gl.NO_ERROR {
		return code
	}
	l, ok := o.images[imageKey{faceKey(o, target), lvl}]
	if !ok || l.compressed != format {
		return gl.INVALID_OPERATION
	}
	c, _ := d.compressedFormat(format)
	bw, bh := c.BlockSize()
	bb := c.BlockBytes()
	for i := range 3 {
		if off[i] < 0 || size[i] < 0 || off[i]+size[i] > l.size[i] {
			return gl.INVALID_VALUE
		}
	}
	if off[0]%bw != 0 || off[1]%bh != 0 ||
		(size[0]%bw != 0 && off[0]+size[0] != l.size[0]) ||
		(size[1]%bh != 0 && off[1]+size[1] != l.size[1]) {
		return gl.INVALID_OPERATION
	}
	if len(data) != c.DataSize(size[0], size[1], size[2]) {
		return gl.INVALID_VALUE
	}
	levelBX := (l.size[0] + bw - 1) / bw
	levelBY := (l.size[1] + bh - 1) / bh
	subBX := (size[0] + bw - 1) / bw
	subBY := (size[1] + bh - 1) / bh
	row := subBX * bb
	for z := 0; z < size[2]; z++ {
		for by := 0; by < subBY; by++ {
			dst := (((off[2]+z)*levelBY+off[1]/bh+by)*levelBX + off[0]/bw) * bb
			src := (z*subBY + by) * row
			copy(l.data[dst:dst+row], data[src:src+row])
		}
	}
	return gl.NO_ERROR
}

// generateMipmap fills levels 1..n of every face from level 0 by nearest
// sampling. Array layers are not reduced.
func (d *Device) generateMipmap(o *object) uint32 {
	if o.target == gl.TEXTURE_RECTANGLE {
		return gl.INVALID_ENUM
	}
	faces := []gl.Enum{o.target}
	if o.target == gl.TEXTURE_CUBE_MAP {
		faces = faces[:0]
		for i := range 6 {
			faces = append(faces, gl.CubeMapFace(i))
		}
	}
	for _, face := range faces {
		base, ok := o.images[imageKey{face, 0}]
		if !ok || base.compressed != 0 {
			return gl.INVALID_OPERATION
		}
	}
	layerAxis := -1
	switch o.target {
	case gl.TEXTURE_1D_ARRAY:
		layerAxis = 1
	case gl.TEXTURE_2D_ARRAY:
		layerAxis = 2
	}
	for _, face := range faces {
		prev := o.images[imageKey{face, 0}]
		for lvl := 1; ; lvl++ {
			var size [3]int
			done := true
			for i := range 3 {
				size[i] = prev.size[i]
				if i != layerAxis && prev.size[i] > 1 {
					size[i] = prev.size[i] / 2
					done = false
				}
			}
			if done {
				break
			}
			next := &level{
				internal:  prev.internal,
				format:    prev.format,
				typ:       prev.typ,
				pixelSize: prev.pixelSize,
				size:      size,
				data:      make([]byte, size[0]*size[1]*size[2]*prev.pixelSize),
			}
			ps := prev.pixelSize
			for z := 0; z < size[2]; z++ {
				sz := z
				if layerAxis != 2 {
					sz = min(z*2, prev.size[2]-1)
				}
				for y := 0; y < size[1]; y++ {
					sy := y
					if layerAxis != 1 {
						sy = min(y*2, prev.size[1]-1)
					}
					for x := 0; x < size[0]; x++ {
						sx := min(x*2, prev.size[0]-1)
						src := ((sz*prev.size[1]+sy)*prev.size[0] + sx) * ps
						dst := ((z*size[1]+y)*size[0] + x) * ps
						copy(next.data[dst:dst+ps], prev.data[src:src+ps])
					}
				}
			}
			o.images[imageKey{face, lvl}] = next
			prev = next
		}
	}
	return gl.NO_ERROR
}

func (d *Device) levelParam(o *object, target gl.Enum, lvl int, pname gl.Enum) (int32, uint32) {
	if !d.p.HasLevelQueries() {
		return 0, gl.INVALID_ENUM
	}
	if bindTarget(target) != o.target {
		return 0, gl.INVALID_ENUM
	}
	l, ok := o.images[imageKey{faceKey(o, target), lvl}]
	if !ok {
		return 0, gl.NO_ERROR
	}
	switch pname {
	case gl.TEXTURE_WIDTH:
		return int32(l.size[0]), gl.NO_ERROR
	case gl.TEXTURE_HEIGHT:
		return int32(l.size[1]), gl.NO_ERROR
	case gl.TEXTURE_DEPTH:
		return int32(l.size[2]), gl.NO_ERROR
	case gl.TEXTURE_INTERNAL_FORMAT:
		return int32(l.internal), gl.NO_ERROR
	}
	return 0, gl.INVALID_ENUM
}

func (d *Device) readImage(o *object, target gl.Enum, lvl int, format gl.PixelFormat, typ gl.PixelType, dst []byte) uint32 {
	if !d.p.HasImageReadback() {
		return gl.INVALID_OPERATION
	}
	if bindTarget(target) != o.target || (o.target == gl.TEXTURE_CUBE_MAP && target == gl.TEXTURE_CUBE_MAP) {
		return gl.INVALID_ENUM
	}
	l, ok := o.images[imageKey{faceKey(o, target), lvl}]
	if !ok || l.compressed != 0 {
		return gl.INVALID_OPERATION
	}
	ps, code := d.checkPixels(format, typ)
	if code != gl.NO_ERROR {
		return code
	}
	if ps != l.pixelSize {
		return gl.INVALID_OPERATION
	}
	layout := pixel.Storage{Alignment: d.packAlign}.ComputeLayout(l.size, ps)
	if len(dst) < layout.Size {
		return gl.INVALID_OPERATION
	}
	row := l.size[0] * ps
	for z := 0; z < l.size[2]; z++ {
		for y := 0; y < l.size[1]; y++ {
			src := (z*l.size[1] + y) * row
			at := layout.At(0, y, z)
			copy(dst[at:at+row], l.data[src:src+row])
		}
	}
	return gl.NO_ERROR
}

// TexImage1D specifies a level of the 1D texture bound to target.
func (d *Device) TexImage1D(target gl.Enum, lvl int, internal gl.TextureFormat, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexImage1D", bindTarget(target)); ok {
		d.report("TexImage1D", d.texImage(o, target, lvl, internal, [3]int{width, 1, 1}, 1, format, typ, data))
	}
}

// TexImage2D specifies a level of a 2D, rectangle, 1D array texture or a
// cube map face.
func (d *Device) TexImage2D(target gl.Enum, lvl int, internal gl.TextureFormat, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexImage2D", bindTarget(target)); ok {
		d.report("TexImage2D", d.texImage(o, target, lvl, internal, [3]int{width, height, 1}, 2, format, typ, data))
	}
}

// TexImage3D specifies a level of a 3D or 2D array texture.
func (d *Device) TexImage3D(target gl.Enum, lvl int, internal gl.TextureFormat, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexImage3D", bindTarget(target)); ok {
		d.report("TexImage3D", d.texImage(o, target, lvl, internal, [3]int{width, height, depth}, 3, format, typ, data))
	}
}

func (d *Device) TexSubImage1D(target gl.Enum, lvl, x, width int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexSubImage1D", bindTarget(target)); ok {
		d.report("TexSubImage1D", d.texSubImage(o, target, lvl, [3]int{x, 0, 0}, [3]int{width, 1, 1}, 1, format, typ, data))
	}
}

func (d *Device) TexSubImage2D(target gl.Enum, lvl, x, y, width, height int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexSubImage2D", bindTarget(target)); ok {
		d.report("TexSubImage2D", d.texSubImage(o, target, lvl, [3]int{x, y, 0}, [3]int{width, height, 1}, 2, format, typ, data))
	}
}

func (d *Device) TexSubImage3D(target gl.Enum, lvl, x, y, z, width, height, depth int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
	if o, ok := d.bound("TexSubImage3D", bindTarget(target)); ok {
		d.report("TexSubImage3D", d.texSubImage(o, target, lvl, [3]int{x, y, z}, [3]int{width, height, depth}, 3, format, typ, data))
	}
}

func (d *Device) CompressedTexImage2D(target gl.Enum, lvl int, format gl.CompressedPixelFormat, width, height int, data []byte) {
	if o, ok := d.bound("CompressedTexImage2D", bindTarget(target)); ok {
		d.report("CompressedTexImage2D", d.compressedImage(o, target, lvl, format, [3]int{width, height, 1}, 2, data))
	}
}

func (d *Device) CompressedTexImage3D(target gl.Enum, lvl int, format gl.CompressedPixelFormat, width, height, depth int, data []byte) {
	if o, ok := d.bound("CompressedTexImage3D", bindTarget(target)); ok {
		d.report("CompressedTexImage3D", d.compressedImage(o, target, lvl, format, [3]int{width, height, depth}, 3, data))
	}
}

func (d *Device) CompressedTexSubImage2D(target gl.Enum, lvl, x, y, width, height int, format gl.CompressedPixelFormat, data []byte) {
	if o, ok := d.bound("CompressedTexSubImage2D", bindTarget(target)); ok {
		d.report("CompressedTexSubImage2D", d.compressedSubImage(o, target, lvl, [3]int{x, y, 0}, [3]int{width, height, 1}, 2, format, data))
	}
}

func (d *Device) CompressedTexSubImage3D(target gl.Enum, lvl, x, y, z, width, height, depth int, format gl.CompressedPixelFormat, data []byte) {
	if o, ok := d.bound("CompressedTexSubImage3D", bindTarget(target)); ok {
		d.report("CompressedTexSubImage3D", d.compressedSubImage(o, target, lvl, [3]int{x, y, z}, [3]int{width, height, depth}, 3, format, data))
	}
}

// GenerateMipmap builds the mip chain of the texture bound to target.
func (d *Device) GenerateMipmap(target gl.Enum) {
	if o, ok := d.bound("GenerateMipmap", target); ok {
		d.report("GenerateMipmap", d.generateMipmap(o))
	}
}

// GetTexLevelParameteri reads the size or internal format of a level.
func (d *Device) GetTexLevelParameteri(target gl.Enum, lvl int, pname gl.Enum) int32 {
	o, ok := d.bound("GetTexLevelParameteri", bindTarget(target))
	if !ok {
		return 0
	}
	v, code := d.levelParam(o, target, lvl, pname)
	d.report("GetTexLevelParameteri", code)
	return v
}

// GetTexImage reads a level into dst using the pack alignment.
func (d *Device) GetTexImage(target gl.Enum, lvl int, format gl.PixelFormat, typ gl.PixelType, dst []byte) {
	if o, ok := d.bound("GetTexImage", bindTarget(target)); ok {
		d.report("GetTexImage", d.readImage(o, target, lvl, format, typ, dst))
	}
}
