// Package profile describes the graphics API profile glhal runs against:
// the target API family and the optional capabilities the driver exposes.
//
// A Profile is a plain value. Several profiles can coexist in one process,
// and every registry lookup or texture dispatch decision reads exactly one
// of them.
package profile

import "fmt"

// Target identifies the API family.
type Target uint8

const (
	// GL is desktop OpenGL (3.0 or newer).
	GL Target = iota
	// GLES2 is OpenGL ES 2.0.
	GLES2
	// GLES3 is OpenGL ES 3.x.
	GLES3
	// WebGL1 is WebGL 1.0 (GLES2 semantics with extra restrictions).
	WebGL1
	// WebGL2 is WebGL 2.0 (GLES3 semantics with extra restrictions).
	WebGL2

	targetCount
)

// TargetCount is the number of known targets. Targets are dense in
// [0, TargetCount).
const TargetCount = int(targetCount)

var targetNames = [targetCount]string{
	GL:     "GL",
	GLES2:  "GLES2",
	GLES3:  "GLES3",
	WebGL1: "WebGL1",
	WebGL2: "WebGL2",
}

func (t Target) String() string {
	if t < targetCount {
		return targetNames[t]
	}
	return fmt.Sprintf("Target(%d)", uint8(t))
}

// Targets returns all known targets in declaration order.
func Targets() []Target {
	return []Target{GL, GLES2, GLES3, WebGL1, WebGL2}
}

// ParseTarget parses a target name as printed by Target.String.
func ParseTarget(s string) (Target, error) {
	for i, n := range targetNames {
		if n == s {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("profile: unknown target %q", s)
}

// IsES reports whether t follows GLES semantics (including WebGL).
func (t Target) IsES() bool { return t != GL }

// IsWebGL reports whether t is a WebGL target.
func (t Target) IsWebGL() bool { return t == WebGL1 || t == WebGL2 }

// IsES2Class reports whether t is GLES2 or WebGL1: unsized internal
// formats, no integer textures, no array textures.
func (t Target) IsES2Class() bool { return t == GLES2 || t == WebGL1 }

// Caps holds optional capabilities reported by the driver.
type Caps struct {
	// DirectStateAccess reports EXT_direct_state_access: texture state can
	// be changed without binding.
	DirectStateAccess bool

	// TextureFilterAnisotropic reports EXT_texture_filter_anisotropic.
	TextureFilterAnisotropic bool
	// MaxAnisotropy is the driver limit; meaningful only with
	// TextureFilterAnisotropic.
	MaxAnisotropy float32

	// TextureBorderClamp reports CLAMP_TO_BORDER and border colors on ES
	// targets. Desktop GL always has them.
	TextureBorderClamp bool

	// Texture3D reports OES_texture_3D on GLES2. GLES3, WebGL2 and GL
	// always have 3D textures.
	Texture3D bool

	// TextureLevelQueries reports glGetTexLevelParameteriv on GLES3, which
	// arrived with GLES 3.1. Desktop GL always has it.
	TextureLevelQueries bool

	// MaxTextureUnits is MAX_COMBINED_TEXTURE_IMAGE_UNITS.
	MaxTextureUnits int
}

// Profile is the runtime capability object: a target plus its caps.
type Profile struct {
	Target Target
	Caps   Caps
}

// minTextureUnits holds the guaranteed minimum texture unit count.
var minTextureUnits = [targetCount]int{
	GL:     48,
	GLES2:  8,
	GLES3:  32,
	WebGL1: 8,
	WebGL2: 32,
}

// Default returns the baseline profile for t: only what every
// conforming implementation of t guarantees.
func Default(t Target) Profile {
	p := Profile{Target: t}
	if t < targetCount {
		p.Caps.MaxTextureUnits = minTextureUnits[t]
	}
	return p
}

func (p Profile) String() string {
	s := p.Target.String()
	if p.Caps.DirectStateAccess {
		s += "+dsa"
	}
	if p.Caps.TextureFilterAnisotropic {
		s += fmt.Sprintf("+aniso(%g)", p.Caps.MaxAnisotropy)
	}
	if p.Caps.TextureBorderClamp {
		s += "+border"
	}
	if p.Caps.Texture3D {
		s += "+3d"
	}
	if p.Caps.TextureLevelQueries {
		s += "+levels"
	}
	return s
}

// HasTexture1D reports whether 1D and 1D array textures exist.
func (p Profile) HasTexture1D() bool { return p.Target == GL }

// HasTextureRectangle reports whether rectangle textures exist.
func (p Profile) HasTextureRectangle() bool { return p.Target == GL }

// HasTextureArray reports whether 2D array textures exist.
func (p Profile) HasTextureArray() bool { return !p.Target.IsES2Class() }

// HasTexture3D reports whether 3D textures exist.
func (p Profile) HasTexture3D() bool {
	switch p.Target {
	case GLES2:
		return p.Caps.Texture3D
	case WebGL1:
		return false
	}
	return true
}

// HasBorderClamp reports whether CLAMP_TO_BORDER and border colors are
// available.
func (p Profile) HasBorderClamp() bool {
	return p.Target == GL || (!p.Target.IsWebGL() && p.Caps.TextureBorderClamp)
}

// HasAnisotropy reports whether anisotropic filtering is available.
func (p Profile) HasAnisotropy() bool { return p.Caps.TextureFilterAnisotropic }

// HasLevelQueries reports whether per-level size queries exist: desktop
// GL, or GLES 3.1 and later.
func (p Profile) HasLevelQueries() bool {
	return p.Target == GL || (p.Target == GLES3 && p.Caps.TextureLevelQueries)
}

// HasImageReadback reports whether texture images can be read back
// directly.
func (p Profile) HasImageReadback() bool { return p.Target == GL }

// HasSizedFormats reports whether texture internal formats are sized.
func (p Profile) HasSizedFormats() bool { return !p.Target.IsES2Class() }

// HasMirrorClampToEdge reports whether MIRROR_CLAMP_TO_EDGE exists.
func (p Profile) HasMirrorClampToEdge() bool { return p.Target == GL }
