package texture

import (
	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/pixel"
)

// dirty marks recorded sampler state not yet applied to the driver.
type dirty uint8

const (
	dirtyWrapS dirty = 1 << iota
	dirtyWrapT
	dirtyWrapR
	dirtyMin
	dirtyMag
	dirtyAnisotropy
	dirtyBorder
)

var wrapParams = [3]gl.Enum{gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R}

type levelKey struct {
	face, level int
}

type levelInfo struct {
	size       [3]int
	format     pixel.Format
	compressed bool
}

// Texture owns one native texture object. Setters validate immediately
// and record the value; recorded state reaches the driver on the next
// Bind, upload, mipmap generation, query or Flush.
//
// A Texture must not be copied. Use Destroy to release the native object.
type Texture struct {
	c    *Context
	kind Kind
	name gl.Texture
	acc  access

	sampler Sampler
	dirty   dirty

	levels    map[levelKey]levelInfo
	destroyed bool
}

// Kind returns the texture kind.
func (t *Texture) Kind() Kind { return t.kind }

// Name returns the native texture name.
func (t *Texture) Name() gl.Texture { return t.name }

// Sampler returns the recorded sampling state, applied or not.
func (t *Texture) Sampler() Sampler { return t.sampler }

// Pending reports whether recorded state has not reached the driver yet.
func (t *Texture) Pending() bool { return t.dirty != 0 }

func (t *Texture) alive() error {
	if t.destroyed {
		return ErrDestroyed
	}
	return nil
}

func (t *Texture) checkWrapping(op string, w Wrapping) error {
	p := t.c.p
	switch {
	case w > MirrorClampToEdge:
		return glhal.Violation(op, "invalid wrapping %v", w)
	case !t.kind.SupportsRepeat() && w != ClampToEdge && w != ClampToBorder:
		return glhal.Violation(op, "%v wrapping is not allowed on %v textures", w, t.kind)
	case w == ClampToBorder && !p.HasBorderClamp():
		return glhal.Violation(op, "%v wrapping needs border clamp, not available on %v", w, p.Target)
	case w == MirrorClampToEdge && !p.HasMirrorClampToEdge():
		return glhal.Violation(op, "%v wrapping is not available on %v", w, p.Target)
	}
	return nil
}

// SetWrapping sets the wrapping of every axis. A single mode applies to
// all axes; otherwise exactly one mode per dimension is required.
func (t *Texture) SetWrapping(w ...Wrapping) error {
	const op = "SetWrapping"
	if err := t.alive(); err != nil {
		return err
	}
	dims := t.kind.Dims()
	var modes [3]Wrapping
	switch len(w) {
	case 1:
		modes = [3]Wrapping{w[0], w[0], w[0]}
	case dims:
		copy(modes[:], w)
	default:
		return glhal.Violation(op, "%d wrapping modes for a %d-dimensional texture", len(w), dims)
	}
	for _, m := range modes[:dims] {
		if err := t.checkWrapping(op, m); err != nil {
			return err
		}
	}
	for i := range dims {
		t.sampler.Wrapping[i] = modes[i]
		t.dirty |= dirtyWrapS << i
	}
	return nil
}

func (t *Texture) checkMinification(op string, f Filter, m Mipmap) error {
	if f > Linear {
		return glhal.Violation(op, "invalid filter %v", f)
	}
	if m > MipmapLinear {
		return glhal.Violation(op, "invalid mipmap mode %v", m)
	}
	if m != MipmapBase && !t.kind.SupportsMipmaps() {
		return glhal.Violation(op, "%v textures have no mip levels", t.kind)
	}
	return nil
}

// SetMinificationFilter sets the filter used when the texture is
// minified and how mip levels are selected.
func (t *Texture) SetMinificationFilter(f Filter, m Mipmap) error {
	const op = "SetMinificationFilter"
	if err := t.alive(); err != nil {
		return err
	}
	if err := t.checkMinification(op, f, m); err != nil {
		return err
	}
	t.sampler.Minification, t.sampler.Mipmap = f, m
	t.dirty |= dirtyMin
	return nil
}

// SetMagnificationFilter sets the filter used when the texture is
// magnified.
func (t *Texture) SetMagnificationFilter(f Filter) error {
	const op = "SetMagnificationFilter"
	if err := t.alive(); err != nil {
		return err
	}
	if f > Linear {
		return glhal.Violation(op, "invalid filter %v", f)
	}
	t.sampler.Magnification = f
	t.dirty |= dirtyMag
	return nil
}

func (t *Texture) checkAnisotropy(op string, v float32) error {
	p := t.c.p
	if !p.HasAnisotropy() {
		return glhal.Violation(op, "anisotropic filtering is not available on %v", p)
	}
	if v < 1 || v > p.Caps.MaxAnisotropy {
		return glhal.Violation(op, "anisotropy %v outside [1, %v]", v, p.Caps.MaxAnisotropy)
	}
	return nil
}

// SetMaxAnisotropy sets the maximum anisotropy. A value of 1 disables
// anisotropic filtering.
func (t *Texture) SetMaxAnisotropy(v float32) error {
	const op = "SetMaxAnisotropy"
	if err := t.alive(); err != nil {
		return err
	}
	if err := t.checkAnisotropy(op, v); err != nil {
		return err
	}
	t.sampler.MaxAnisotropy = v
	t.dirty |= dirtyAnisotropy
	return nil
}

// SetBorderColor sets the color sampled by ClampToBorder.
func (t *Texture) SetBorderColor(c pixel.Color4) error {
	const op = "SetBorderColor"
	if err := t.alive(); err != nil {
		return err
	}
	if !t.c.p.HasBorderClamp() {
		return glhal.Violation(op, "border color is not available on %v", t.c.p.Target)
	}
	t.sampler.BorderColor = c
	t.dirty |= dirtyBorder
	return nil
}

// SetSampler replaces the whole sampling state. Anisotropy of 1 and a
// zero border color are accepted without the matching capabilities.
// Nothing is recorded if any field is rejected.
func (t *Texture) SetSampler(s Sampler) error {
	const op = "SetSampler"
	if err := t.alive(); err != nil {
		return err
	}
	dims := t.kind.Dims()
	for _, w := range s.Wrapping[:dims] {
		if err := t.checkWrapping(op, w); err != nil {
			return err
		}
	}
	if err := t.checkMinification(op, s.Minification, s.Mipmap); err != nil {
		return err
	}
	if s.Magnification > Linear {
		return glhal.Violation(op, "invalid filter %v", s.Magnification)
	}
	p := t.c.p
	if s.MaxAnisotropy != 1 || p.HasAnisotropy() {
		if err := t.checkAnisotropy(op, s.MaxAnisotropy); err != nil {
			return err
		}
	}
	if s.BorderColor != (pixel.Color4{}) && !p.HasBorderClamp() {
		return glhal.Violation(op, "border color is not available on %v", p.Target)
	}

	for i := range dims {
		t.sampler.Wrapping[i] = s.Wrapping[i]
		t.dirty |= dirtyWrapS << i
	}
	t.sampler.Minification, t.sampler.Mipmap = s.Minification, s.Mipmap
	t.sampler.Magnification = s.Magnification
	t.dirty |= dirtyMin | dirtyMag
	if p.HasAnisotropy() {
		t.sampler.MaxAnisotropy = s.MaxAnisotropy
		t.dirty |= dirtyAnisotropy
	}
	if p.HasBorderClamp() {
		t.sampler.BorderColor = s.BorderColor
		t.dirty |= dirtyBorder
	}
	return nil
}

// flush applies recorded state through the texture's protocol. Driver
// errors stay pending for the caller's check.
func (t *Texture) flush() {
	if t.dirty == 0 {
		return
	}
	target := t.kind.Target()
	s := &t.sampler
	for i, pname := range wrapParams[:t.kind.Dims()] {
		if t.dirty&(dirtyWrapS<<i) != 0 {
			t.acc.parameteri(target, pname, int32(s.Wrapping[i].native()))
		}
	}
	if t.dirty&dirtyMin != 0 {
		t.acc.parameteri(target, gl.TEXTURE_MIN_FILTER, int32(minFilterNative(s.Minification, s.Mipmap)))
	}
	if t.dirty&dirtyMag != 0 {
		t.acc.parameteri(target, gl.TEXTURE_MAG_FILTER, int32(magFilterNative(s.Magnification)))
	}
	if t.dirty&dirtyAnisotropy != 0 {
		t.acc.parameterf(target, gl.TEXTURE_MAX_ANISOTROPY, s.MaxAnisotropy)
	}
	if t.dirty&dirtyBorder != 0 {
		t.acc.parameterfv(target, gl.TEXTURE_BORDER_COLOR, s.BorderColor.Slice())
	}
	t.c.logger().Debug("texture: state applied", "texture", uint32(t.name), "kind", t.kind.String(), "mask", uint8(t.dirty))
	t.dirty = 0
}

// Flush applies recorded state now.
func (t *Texture) Flush() error {
	if err := t.alive(); err != nil {
		return err
	}
	t.flush()
	return t.c.check("Flush")
}

// Bind applies recorded state and binds the texture to unit for drawing.
func (t *Texture) Bind(unit int) error {
	const op = "Bind"
	if err := t.alive(); err != nil {
		return err
	}
	if unit < 0 || unit >= len(t.c.units.binds) {
		return glhal.Violation(op, "texture unit %d out of range [0, %d)", unit, len(t.c.units.binds))
	}
	t.flush()
	t.c.bindUnit(unit, t.kind.Target(), t.name)
	return t.c.check(op)
}

// GenerateMipmap fills all levels above zero from level zero.
func (t *Texture) GenerateMipmap() error {
	const op = "GenerateMipmap"
	if err := t.alive(); err != nil {
		return err
	}
	if !t.kind.SupportsMipmaps() {
		return glhal.Violation(op, "%v textures have no mip levels", t.kind)
	}
	t.flush()
	t.acc.generateMipmap(t.kind.Target())
	if err := t.c.check(op); err != nil {
		return err
	}
	t.recordMipChain()
	return nil
}

// recordMipChain records the level sizes GenerateMipmap produced.
// Layer axes keep their size.
func (t *Texture) recordMipChain() {
	layer := -1
	if t.kind.IsLayered() {
		layer = t.kind.LayerAxis()
	}
	for face := range t.kind.Faces() {
		base, ok := t.levels[levelKey{face, 0}]
		if !ok {
			continue
		}
		size := base.size
		for level := 1; ; level++ {
			done := true
			for i := range size {
				if i != layer && size[i] > 1 {
					size[i] /= 2
					done = false
				}
			}
			if done {
				break
			}
			t.levels[levelKey{face, level}] = levelInfo{size: size, format: base.format}
		}
	}
}

// Destroy deletes the native texture. Further calls return ErrDestroyed;
// Destroy itself may be called again.
func (t *Texture) Destroy() error {
	if t.destroyed {
		return nil
	}
	t.destroyed = true
	t.c.f.DeleteTexture(t.name)
	t.c.forget(t.name)
	return t.c.check("Destroy")
}
