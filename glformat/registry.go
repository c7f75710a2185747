// Package glformat translates the portable pixel vocabulary into native GL
// enumerations for one target profile, and computes native pixel sizes.
//
// Tables for every target are built once at package initialization and
// never mutated, so a Registry is safe for concurrent use.
package glformat

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
)

type table struct {
	formats    [pixel.FormatCount]entry
	compressed [pixel.CompressedFormatCount]gl.CompressedPixelFormat
}

var tables [profile.TargetCount]table

func init() {
	for _, t := range profile.Targets() {
		tables[t] = buildTable(t)
	}
}

func buildTable(t profile.Target) table {
	var tab table
	for f := 1; f < pixel.FormatCount; f++ {
		m := mappings[f]
		var l layout
		switch t {
		case profile.GLES2:
			l = m.gles2
		case profile.WebGL1:
			l = m.webgl1
		default:
			if !m.on.has(t) {
				continue
			}
			e := m.core
			if t == profile.GLES3 && m.esInternal != 0 {
				e.internal = m.esInternal
			}
			tab.formats[f] = e
			continue
		}
		if l.format != 0 {
			tab.formats[f] = entry{format: l.format, typ: l.typ, internal: gl.TextureFormat(l.format)}
		}
	}
	for c := 1; c < pixel.CompressedFormatCount; c++ {
		if m := compressedMappings[c]; m.on.has(t) {
			tab.compressed[c] = m.format
		}
	}
	return tab
}

// Native is the native representation of pixel data: the client format
// and type, plus the internal format a texture allocated from it uses.
type Native struct {
	Format   gl.PixelFormat
	Type     gl.PixelType
	Internal gl.TextureFormat
}

// Registry answers format questions for one profile.
type Registry struct {
	p   profile.Profile
	tab *table
}

// New returns the registry for p. It panics if p.Target is unknown.
func New(p profile.Profile) Registry {
	if int(p.Target) >= profile.TargetCount {
		panic("glformat: unknown target " + p.Target.String())
	}
	return Registry{p: p, tab: &tables[p.Target]}
}

// Profile returns the profile the registry was built for.
func (r Registry) Profile() profile.Profile { return r.p }

func (r Registry) lookup(op string, f pixel.Format) (entry, error) {
	if f == 0 || int(f) >= pixel.FormatCount {
		return entry{}, glhal.Violation(op, "invalid pixel format %v", f)
	}
	e := r.tab.formats[f]
	if e.format == 0 {
		return entry{}, glhal.Unsupported(op, f.String(), r.p.Target.String())
	}
	return e, nil
}

// HasPixelFormat reports whether f can be used on the target.
// Implementation-specific formats always can.
func (r Registry) HasPixelFormat(f pixel.Format) (bool, error) {
	if f.IsImplementationSpecific() {
		return true, nil
	}
	if f == 0 || int(f) >= pixel.FormatCount {
		return false, glhal.Violation("HasPixelFormat", "invalid pixel format %v", f)
	}
	return r.tab.formats[f].format != 0, nil
}

// PixelFormat translates f to a native pixel format. Implementation-specific
// formats are unwrapped without a lookup.
func (r Registry) PixelFormat(f pixel.Format) (gl.PixelFormat, error) {
	if f.IsImplementationSpecific() {
		return gl.PixelFormat(f.Unwrap()), nil
	}
	e, err := r.lookup("PixelFormat", f)
	return e.format, err
}

// PixelType translates f to a native pixel type. For an
// implementation-specific format the native type must be supplied in
// extra and is returned as is.
func (r Registry) PixelType(f pixel.Format, extra uint32) (gl.PixelType, error) {
	if f.IsImplementationSpecific() {
		if extra == 0 {
			return 0, glhal.Violation("PixelType", "format %v needs its native pixel type", f)
		}
		return gl.PixelType(extra), nil
	}
	e, err := r.lookup("PixelType", f)
	return e.typ, err
}

// TextureFormat returns the internal format used when allocating a texture
// from data in format f. It is sized on GL, GLES3 and WebGL2 and unsized
// on GLES2 and WebGL1. Implementation-specific formats use the unwrapped
// pixel format as an unsized internal format.
func (r Registry) TextureFormat(f pixel.Format) (gl.TextureFormat, error) {
	if f.IsImplementationSpecific() {
		return gl.TextureFormat(f.Unwrap()), nil
	}
	e, err := r.lookup("TextureFormat", f)
	return e.internal, err
}

// Translate returns the full native representation of f.
func (r Registry) Translate(f pixel.Format, extra uint32) (Native, error) {
	if f.IsImplementationSpecific() {
		t, err := r.PixelType(f, extra)
		if err != nil {
			return Native{}, err
		}
		return Native{Format: gl.PixelFormat(f.Unwrap()), Type: t, Internal: gl.TextureFormat(f.Unwrap())}, nil
	}
	e, err := r.lookup("Translate", f)
	if err != nil {
		return Native{}, err
	}
	return Native{Format: e.format, Type: e.typ, Internal: e.internal}, nil
}

// HasCompressedPixelFormat reports whether c can be used on the target.
func (r Registry) HasCompressedPixelFormat(c pixel.CompressedFormat) (bool, error) {
	if c.IsImplementationSpecific() {
		return true, nil
	}
	if c == 0 || int(c) >= pixel.CompressedFormatCount {
		return false, glhal.Violation("HasCompressedPixelFormat", "invalid compressed format %v", c)
	}
	return r.tab.compressed[c] != 0, nil
}

// CompressedPixelFormat translates c to a native compressed format.
func (r Registry) CompressedPixelFormat(c pixel.CompressedFormat) (gl.CompressedPixelFormat, error) {
	if c.IsImplementationSpecific() {
		return gl.CompressedPixelFormat(c.Unwrap()), nil
	}
	if c == 0 || int(c) >= pixel.CompressedFormatCount {
		return 0, glhal.Violation("CompressedPixelFormat", "invalid compressed format %v", c)
	}
	v := r.tab.compressed[c]
	if v == 0 {
		return 0, glhal.Unsupported("CompressedPixelFormat", c.String(), r.p.Target.String())
	}
	return v, nil
}

// Formats returns the named formats representable on the target.
func (r Registry) Formats() []pixel.Format {
	var out []pixel.Format
	for _, f := range pixel.Formats() {
		if r.tab.formats[f].format != 0 {
			out = append(out, f)
		}
	}
	return out
}

// CompressedFormats returns the named compressed formats representable on
// the target.
func (r Registry) CompressedFormats() []pixel.CompressedFormat {
	var out []pixel.CompressedFormat
	for _, c := range pixel.CompressedFormats() {
		if r.tab.compressed[c] != 0 {
			out = append(out, c)
		}
	}
	return out
}

// Features reports the WebGPU texture features the target's tables can
// serve: a compression family counts when every format of the family that
// has a WebGPU equivalent is representable.
func (r Registry) Features() gputypes.Features {
	families := []struct {
		feature gputypes.Feature
		first   pixel.CompressedFormat
		last    pixel.CompressedFormat
	}{
		{gputypes.FeatureTextureCompressionBC, pixel.BC1RGBAUnorm, pixel.BC7RGBASrgb},
		{gputypes.FeatureTextureCompressionETC2, pixel.EACR11Unorm, pixel.ETC2RGBA8Srgb},
		{gputypes.FeatureTextureCompressionASTC, pixel.ASTC4x4RGBAUnorm, pixel.ASTC12x12RGBASrgb},
	}
	var feats gputypes.Features
	for _, fam := range families {
		all := true
		for c := fam.first; c <= fam.last; c++ {
			if _, ok := c.GPUFormat(); ok && r.tab.compressed[c] == 0 {
				all = false
				break
			}
		}
		if all {
			feats.Insert(fam.feature)
		}
	}
	if r.tab.formats[pixel.Depth32FStencil8UI].format != 0 {
		feats.Insert(gputypes.FeatureDepth32FloatStencil8)
	}
	return feats
}
