// Package softgl is a software model of the GL texture subsystem. It keeps
// texture objects, their parameters and their image levels in memory and
// reports errors through GetError the way a driver does, following the
// rules of the profile it was created for.
//
// Pixel data is stored as uploaded, tightly packed. No format conversion
// is performed: sub-image uploads and readbacks must use a format/type
// pair of the same pixel size as the level they touch.
package softgl

import (
	"fmt"
	"strings"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
)

// Stats counts driver calls, for tests that check state-application
// protocols.
type Stats struct {
	ActiveTexture int
	BindTexture   int
	Parameter     int
	DirectAccess  int
	Upload        int
	PixelStore    int
}

// Device is a software GL context. It is not safe for concurrent use.
type Device struct {
	p   profile.Profile
	reg glformat.Registry

	err uint32

	unit     int
	bindings []map[gl.Enum]gl.Texture
	textures map[gl.Texture]*object
	next     gl.Texture

	unpack    pixel.Storage
	packAlign int

	Stats Stats
}

var (
	_ gl.Functions         = (*Device)(nil)
	_ gl.DirectStateAccess = (*Device)(nil)
)

// New returns a device following the rules of p.
func New(p profile.Profile) *Device {
	units := p.Caps.MaxTextureUnits
	if units <= 0 {
		units = 8
	}
	d := &Device{
		p:         p,
		reg:       glformat.New(p),
		bindings:  make([]map[gl.Enum]gl.Texture, units),
		textures:  make(map[gl.Texture]*object),
		next:      1,
		packAlign: 4,
	}
	for i := range d.bindings {
		d.bindings[i] = make(map[gl.Enum]gl.Texture)
	}
	return d
}

// Profile returns the profile the device follows.
func (d *Device) Profile() profile.Profile { return d.p }

// setError records code unless an error is already pending, matching the
// sticky first-error semantics of glGetError.
func (d *Device) setError(op string, code uint32) {
	glhal.Logger().Debug("softgl: error", "op", op, "code", fmt.Sprintf("%#x", code))
	if d.err == gl.NO_ERROR {
		d.err = code
	}
}

// GetError returns and clears the pending error.
func (d *Device) GetError() uint32 {
	e := d.err
	d.err = gl.NO_ERROR
	return e
}

// GetString answers VENDOR, RENDERER, VERSION and EXTENSIONS.
func (d *Device) GetString(name gl.Enum) string {
	switch name {
	case gl.VENDOR:
		return "glhal"
	case gl.RENDERER:
		return "softgl software renderer"
	case gl.VERSION:
		switch d.p.Target {
		case profile.GLES2:
			return "OpenGL ES 2.0 softgl"
		case profile.GLES3:
			return "OpenGL ES 3.1 softgl"
		case profile.WebGL1:
			return "WebGL 1.0 softgl"
		case profile.WebGL2:
			return "WebGL 2.0 softgl"
		}
		return "4.5.0 softgl"
	case gl.EXTENSIONS:
		return strings.Join(d.extensions(), " ")
	}
	d.setError("GetString", gl.INVALID_ENUM)
	return ""
}

func (d *Device) extensions() []string {
	var exts []string
	c := d.p.Caps
	if c.DirectStateAccess && d.p.Target == profile.GL {
		exts = append(exts, "GL_EXT_direct_state_access")
	}
	if c.TextureFilterAnisotropic {
		if d.p.Target.IsWebGL() {
			exts = append(exts, "EXT_texture_filter_anisotropic")
		} else {
			exts = append(exts, "GL_EXT_texture_filter_anisotropic")
		}
	}
	if c.TextureBorderClamp && d.p.Target.IsES() && !d.p.Target.IsWebGL() {
		exts = append(exts, "GL_EXT_texture_border_clamp")
	}
	if c.Texture3D && d.p.Target == profile.GLES2 {
		exts = append(exts, "GL_OES_texture_3D")
	}
	return exts
}

// GetInteger answers MAX_COMBINED_TEXTURE_IMAGE_UNITS, UNPACK_ALIGNMENT and
// PACK_ALIGNMENT.
func (d *Device) GetInteger(pname gl.Enum) int32 {
	switch pname {
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return int32(len(d.bindings))
	case gl.UNPACK_ALIGNMENT:
		return int32(d.unpack.EffectiveAlignment())
	case gl.PACK_ALIGNMENT:
		return int32(d.packAlign)
	}
	d.setError("GetInteger", gl.INVALID_ENUM)
	return 0
}

// GetFloat answers MAX_TEXTURE_MAX_ANISOTROPY.
func (d *Device) GetFloat(pname gl.Enum) float32 {
	if pname == gl.MAX_TEXTURE_MAX_ANISOTROPY && d.p.HasAnisotropy() {
		return d.p.Caps.MaxAnisotropy
	}
	d.setError("GetFloat", gl.INVALID_ENUM)
	return 0
}

// PixelStorei sets unpack and pack state. Row length, image height and
// skips are not available on GLES2 and WebGL1.
func (d *Device) PixelStorei(pname gl.Enum, param int32) {
	d.Stats.PixelStore++
	v := int(param)
	switch pname {
	case gl.UNPACK_ALIGNMENT, gl.PACK_ALIGNMENT:
		switch v {
		case 1, 2, 4, 8:
		default:
			d.setError("PixelStorei", gl.INVALID_VALUE)
			return
		}
		if pname == gl.UNPACK_ALIGNMENT {
			d.unpack.Alignment = v
		} else {
			d.packAlign = v
		}
		return
	}
	if d.p.Target.IsES2Class() {
		d.setError("PixelStorei", gl.INVALID_ENUM)
		return
	}
	if v < 0 {
		d.setError("PixelStorei", gl.INVALID_VALUE)
		return
	}
	switch pname {
	case gl.UNPACK_ROW_LENGTH:
		d.unpack.RowLength = v
	case gl.UNPACK_IMAGE_HEIGHT:
		d.unpack.ImageHeight = v
	case gl.UNPACK_SKIP_PIXELS:
		d.unpack.Skip[0] = v
	case gl.UNPACK_SKIP_ROWS:
		d.unpack.Skip[1] = v
	case gl.UNPACK_SKIP_IMAGES:
		d.unpack.Skip[2] = v
	default:
		d.setError("PixelStorei", gl.INVALID_ENUM)
	}
}

// GenTexture creates a texture name. The object has no target until it is
// first bound or named by a direct-access call.
func (d *Device) GenTexture() gl.Texture {
	t := d.next
	d.next++
	d.textures[t] = &object{}
	return t
}

// DeleteTexture deletes t and unbinds it from every unit. Deleting zero or
// an unknown name is silently ignored.
func (d *Device) DeleteTexture(t gl.Texture) {
	if _, ok := d.textures[t]; !ok {
		return
	}
	delete(d.textures, t)
	for _, u := range d.bindings {
		for target, bound := range u {
			if bound == t {
				delete(u, target)
			}
		}
	}
}

// ActiveTexture selects the unit BindTexture operates on.
func (d *Device) ActiveTexture(unit gl.Enum) {
	d.Stats.ActiveTexture++
	i := int(unit) - int(gl.TEXTURE0)
	if i < 0 || i >= len(d.bindings) {
		d.setError("ActiveTexture", gl.INVALID_ENUM)
		return
	}
	d.unit = i
}

// BindTexture binds t to target on the active unit. Zero unbinds.
func (d *Device) BindTexture(target gl.Enum, t gl.Texture) {
	d.Stats.BindTexture++
	if !d.hasBindTarget(target) {
		d.setError("BindTexture", gl.INVALID_ENUM)
		return
	}
	if t == 0 {
		delete(d.bindings[d.unit], target)
		return
	}
	obj, ok := d.textures[t]
	if !ok {
		d.setError("BindTexture", gl.INVALID_OPERATION)
		return
	}
	if !obj.assignTarget(target) {
		d.setError("BindTexture", gl.INVALID_OPERATION)
		return
	}
	d.bindings[d.unit][target] = t
}

// Bound returns the texture bound to target on unit.
func (d *Device) Bound(unit int, target gl.Enum) gl.Texture {
	if unit < 0 || unit >= len(d.bindings) {
		return 0
	}
	return d.bindings[unit][target]
}

// ActiveUnit returns the index of the active texture unit.
func (d *Device) ActiveUnit() int { return d.unit }

// Textures returns the number of live texture objects.
func (d *Device) Textures() int { return len(d.textures) }

func (d *Device) hasBindTarget(target gl.Enum) bool {
	switch target {
	case gl.TEXTURE_2D, gl.TEXTURE_CUBE_MAP:
		return true
	case gl.TEXTURE_1D, gl.TEXTURE_1D_ARRAY:
		return d.p.HasTexture1D()
	case gl.TEXTURE_RECTANGLE:
		return d.p.HasTextureRectangle()
	case gl.TEXTURE_3D:
		return d.p.HasTexture3D()
	case gl.TEXTURE_2D_ARRAY:
		return d.p.HasTextureArray()
	}
	return false
}

// bound returns the object bound to target on the active unit.
func (d *Device) bound(op string, target gl.Enum) (*object, bool) {
	if !d.hasBindTarget(target) {
		d.setError(op, gl.INVALID_ENUM)
		return nil, false
	}
	t := d.bindings[d.unit][target]
	if t == 0 {
		d.setError(op, gl.INVALID_OPERATION)
		return nil, false
	}
	return d.textures[t], true
}

// named returns the object t for a direct-access call, assigning its
// target on first use. target may be a cube map face.
func (d *Device) named(op string, t gl.Texture, target gl.Enum) (*object, bool) {
	d.Stats.DirectAccess++
	if !d.p.Caps.DirectStateAccess {
		d.setError(op, gl.INVALID_OPERATION)
		return nil, false
	}
	target = bindTarget(target)
	if !d.hasBindTarget(target) {
		d.setError(op, gl.INVALID_ENUM)
		return nil, false
	}
	obj, ok := d.textures[t]
	if !ok || !obj.assignTarget(target) {
		d.setError(op, gl.INVALID_OPERATION)
		return nil, false
	}
	return obj, true
}

// report records code for op if it is an error.
func (d *Device) report(op string, code uint32) {
	if code != gl.NO_ERROR {
		d.setError(op, code)
	}
}
