package softgl

import (
	"github.com/gogpu/glhal/gl"
)

// level is one image of a texture: a mip level of a face.
type level struct {
	internal   gl.TextureFormat
	format     gl.PixelFormat
	typ        gl.PixelType
	compressed gl.CompressedPixelFormat
	pixelSize  int
	size       [3]int
	data       []byte
}

type imageKey struct {
	face  gl.Enum
	level int
}

// object is a texture object.
type object struct {
	target gl.Enum

	wrap       [3]gl.Enum
	minFilter  gl.Enum
	magFilter  gl.Enum
	anisotropy float32
	border     [4]float32

	images map[imageKey]*level
}

// assignTarget fixes the object's target on first use and reports whether
// target matches it.
func (o *object) assignTarget(target gl.Enum) bool {
	if o.target == 0 {
		o.target = target
		o.wrap = [3]gl.Enum{gl.REPEAT, gl.REPEAT, gl.REPEAT}
		o.minFilter = gl.NEAREST_MIPMAP_LINEAR
		o.magFilter = gl.LINEAR
		o.anisotropy = 1
		if target == gl.TEXTURE_RECTANGLE {
			o.wrap = [3]gl.Enum{gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE}
			o.minFilter = gl.LINEAR
		}
		o.images = make(map[imageKey]*level)
		return true
	}
	return o.target == target
}

// dims returns the number of image dimensions for the object's target.
func dims(target gl.Enum) int {
	switch target {
	case gl.TEXTURE_1D:
		return 1
	case gl.TEXTURE_3D, gl.TEXTURE_2D_ARRAY:
		return 3
	}
	return 2
}

// bindTarget maps an upload target to the target the texture is bound to.
func bindTarget(target gl.Enum) gl.Enum {
	if target >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && target <= gl.TEXTURE_CUBE_MAP_NEGATIVE_Z {
		return gl.TEXTURE_CUBE_MAP
	}
	return target
}

func wrapIndex(pname gl.Enum) int {
	switch pname {
	case gl.TEXTURE_WRAP_S:
		return 0
	case gl.TEXTURE_WRAP_T:
		return 1
	case gl.TEXTURE_WRAP_R:
		return 2
	}
	return -1
}

// setParami applies an integer parameter and returns the GL error code.
func (d *Device) setParami(o *object, pname gl.Enum, v int32) uint32 {
	e := gl.Enum(v)
	switch pname {
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R:
		if pname == gl.TEXTURE_WRAP_R && !d.p.HasTexture3D() {
			return gl.INVALID_ENUM
		}
		if !d.validWrap(o.target, e) {
			return gl.INVALID_ENUM
		}
		o.wrap[wrapIndex(pname)] = e
	case gl.TEXTURE_MIN_FILTER:
		switch e {
		case gl.NEAREST, gl.LINEAR:
		case gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
			if o.target == gl.TEXTURE_RECTANGLE {
				return gl.INVALID_ENUM
			}
		default:
			return gl.INVALID_ENUM
		}
		o.minFilter = e
	case gl.TEXTURE_MAG_FILTER:
		if e != gl.NEAREST && e != gl.LINEAR {
			return gl.INVALID_ENUM
		}
		o.magFilter = e
	case gl.TEXTURE_MAX_ANISOTROPY:
		return d.setParamf(o, pname, float32(v))
	default:
		return gl.INVALID_ENUM
	}
	return gl.NO_ERROR
}

func (d *Device) validWrap(target gl.Enum, e gl.Enum) bool {
	switch e {
	case gl.CLAMP_TO_EDGE:
		return true
	case gl.REPEAT, gl.MIRRORED_REPEAT:
		return target != gl.TEXTURE_RECTANGLE
	case gl.CLAMP_TO_BORDER:
		return d.p.HasBorderClamp()
	case gl.MIRROR_CLAMP_TO_EDGE:
		return d.p.HasMirrorClampToEdge() && target != gl.TEXTURE_RECTANGLE
	}
	return false
}

// setParamf applies a float parameter and returns the GL error code.
func (d *Device) setParamf(o *object, pname gl.Enum, v float32) uint32 {
	if pname != gl.TEXTURE_MAX_ANISOTROPY {
		return d.setParami(o, pname, int32(v))
	}
	if !d.p.HasAnisotropy() {
		return gl.INVALID_ENUM
	}
	if v < 1 {
		return gl.INVALID_VALUE
	}
	o.anisotropy = min(v, d.p.Caps.MaxAnisotropy)
	return gl.NO_ERROR
}

// setParamfv applies a vector parameter and returns the GL error code.
func (d *Device) setParamfv(o *object, pname gl.Enum, v []float32) uint32 {
	if pname != gl.TEXTURE_BORDER_COLOR {
		if len(v) == 0 {
			return gl.INVALID_VALUE
		}
		return d.setParamf(o, pname, v[0])
	}
	if !d.p.HasBorderClamp() {
		return gl.INVALID_ENUM
	}
	if len(v) < 4 {
		return gl.INVALID_VALUE
	}
	copy(o.border[:], v)
	return gl.NO_ERROR
}

func (d *Device) getParamf(o *object, pname gl.Enum, dst []float32) uint32 {
	switch pname {
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R:
		dst[0] = float32(o.wrap[wrapIndex(pname)])
	case gl.TEXTURE_MIN_FILTER:
		dst[0] = float32(o.minFilter)
	case gl.TEXTURE_MAG_FILTER:
		dst[0] = float32(o.magFilter)
	case gl.TEXTURE_MAX_ANISOTROPY:
		if !d.p.HasAnisotropy() {
			return gl.INVALID_ENUM
		}
		dst[0] = o.anisotropy
	case gl.TEXTURE_BORDER_COLOR:
		if !d.p.HasBorderClamp() {
			return gl.INVALID_ENUM
		}
		if len(dst) < 4 {
			return gl.INVALID_VALUE
		}
		copy(dst, o.border[:])
	default:
		return gl.INVALID_ENUM
	}
	return gl.NO_ERROR
}

// TexParameteri sets an integer parameter of the texture bound to target.
func (d *Device) TexParameteri(target, pname gl.Enum, param int32) {
	d.Stats.Parameter++
	if o, ok := d.bound("TexParameteri", target); ok {
		if code := d.setParami(o, pname, param); code != gl.NO_ERROR {
			d.setError("TexParameteri", code)
		}
	}
}

// TexParameterf sets a float parameter of the texture bound to target.
func (d *Device) TexParameterf(target, pname gl.Enum, param float32) {
	d.Stats.Parameter++
	if o, ok := d.bound("TexParameterf", target); ok {
		if code := d.setParamf(o, pname, param); code != gl.NO_ERROR {
			d.setError("TexParameterf", code)
		}
	}
}

// TexParameterfv sets a vector parameter of the texture bound to target.
func (d *Device) TexParameterfv(target, pname gl.Enum, params []float32) {
	d.Stats.Parameter++
	if o, ok := d.bound("TexParameterfv", target); ok {
		if code := d.setParamfv(o, pname, params); code != gl.NO_ERROR {
			d.setError("TexParameterfv", code)
		}
	}
}

// GetTexParameteri reads an integer parameter of the texture bound to
// target.
func (d *Device) GetTexParameteri(target, pname gl.Enum) int32 {
	return int32(d.GetTexParameterf(target, pname))
}

// GetTexParameterf reads a scalar parameter of the texture bound to target.
func (d *Device) GetTexParameterf(target, pname gl.Enum) float32 {
	var v [4]float32
	d.GetTexParameterfv(target, pname, v[:])
	return v[0]
}

// GetTexParameterfv reads a parameter of the texture bound to target.
func (d *Device) GetTexParameterfv(target, pname gl.Enum, dst []float32) {
	if o, ok := d.bound("GetTexParameterfv", target); ok {
		if code := d.getParamf(o, pname, dst); code != gl.NO_ERROR {
			d.setError("GetTexParameterfv", code)
		}
	}
}
