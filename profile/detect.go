package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
)

// ErrVersion is returned when a GL_VERSION string cannot be parsed.
var ErrVersion = errors.New("profile: unrecognized GL version string")

// Version is a parsed GL_VERSION string.
type Version struct {
	Major, Minor int
	ES           bool
	WebGL        bool
}

func (v Version) String() string {
	switch {
	case v.WebGL:
		return fmt.Sprintf("WebGL %d.%d", v.Major, v.Minor)
	case v.ES:
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// Target maps the version to an API family. Desktop GL older than 3.0
// is not supported.
func (v Version) Target() (Target, error) {
	switch {
	case v.WebGL && v.Major == 1:
		return WebGL1, nil
	case v.WebGL && v.Major >= 2:
		return WebGL2, nil
	case v.ES && v.Major == 2:
		return GLES2, nil
	case v.ES && v.Major >= 3:
		return GLES3, nil
	case !v.ES && !v.WebGL && v.Major >= 3:
		return GL, nil
	}
	return 0, fmt.Errorf("profile: %v: %w", v, glhal.ErrUnsupported)
}

// ParseVersion parses GL_VERSION strings such as "4.6.0 NVIDIA 535.54",
// "OpenGL ES 3.2 Mesa 23.0" or "WebGL 2.0 (OpenGL ES 3.0 Chromium)".
func ParseVersion(s string) (Version, error) {
	var v Version
	switch {
	case strings.HasPrefix(s, "WebGL "):
		v.WebGL = true
		v.ES = true
		s = s[len("WebGL "):]
	case strings.HasPrefix(s, "OpenGL ES-CM "), strings.HasPrefix(s, "OpenGL ES-CL "):
		return v, fmt.Errorf("%w: %q (fixed-function ES)", ErrVersion, s)
	case strings.HasPrefix(s, "OpenGL ES "):
		v.ES = true
		s = s[len("OpenGL ES "):]
	}
	if _, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrVersion, s)
	}
	return v, nil
}

// Detect builds a profile from a GL_VERSION string and an extension list.
// Limits that need a live driver (anisotropy, texture units) are left at
// the target defaults; see [Query].
func Detect(version string, extensions []string) (Profile, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return Profile{}, err
	}
	t, err := v.Target()
	if err != nil {
		return Profile{}, err
	}
	p := Default(t)
	has := func(names ...string) bool {
		for _, n := range names {
			if hasExtension(extensions, n) {
				return true
			}
		}
		return false
	}
	p.Caps.DirectStateAccess = t == GL && has("GL_EXT_direct_state_access")
	p.Caps.TextureFilterAnisotropic = has(
		"GL_EXT_texture_filter_anisotropic",
		"GL_ARB_texture_filter_anisotropic",
		"EXT_texture_filter_anisotropic",
	) || (t == GL && (v.Major > 4 || (v.Major == 4 && v.Minor >= 6)))
	if p.Caps.TextureFilterAnisotropic {
		p.Caps.MaxAnisotropy = 2
	}
	p.Caps.TextureBorderClamp = t == GL || (v.ES && v.Major == 3 && v.Minor >= 2) ||
		has("GL_EXT_texture_border_clamp", "GL_OES_texture_border_clamp", "GL_NV_texture_border_clamp")
	if t.IsWebGL() {
		p.Caps.TextureBorderClamp = false
	}
	p.Caps.Texture3D = t == GLES2 && has("GL_OES_texture_3D")
	p.Caps.TextureLevelQueries = t == GLES3 && (v.Major > 3 || v.Minor >= 1)
	return p, nil
}

// Query detects the profile of a live driver, including its limits.
func Query(f gl.Functions) (Profile, error) {
	version := f.GetString(gl.VERSION)
	p, err := Detect(version, strings.Fields(f.GetString(gl.EXTENSIONS)))
	if err != nil {
		return Profile{}, err
	}
	if n := int(f.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)); n > 0 {
		p.Caps.MaxTextureUnits = n
	}
	if p.Caps.TextureFilterAnisotropic {
		if m := f.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY); m >= 1 {
			p.Caps.MaxAnisotropy = m
		}
	}
	if code := f.GetError(); code != gl.NO_ERROR {
		return Profile{}, glhal.CheckDriver("profile.Query", code)
	}
	glhal.Logger().Info("profile: detected",
		"version", version,
		"renderer", f.GetString(gl.RENDERER),
		"profile", p.String())
	return p, nil
}

// ClassifyAdapter derives adapter information from a GL_RENDERER string.
func ClassifyAdapter(renderer string) gpucontext.AdapterInfo {
	info := gpucontext.AdapterInfo{Name: renderer, Type: gpucontext.AdapterTypeUnknown}
	r := strings.ToLower(renderer)
	switch {
	case containsAny(r, "llvmpipe", "softpipe", "swiftshader", "swrast", "software", "lavapipe"):
		info.Type = gpucontext.AdapterTypeSoftware
	case containsAny(r, "geforce", "nvidia", "quadro", "radeon rx", "radeon pro"):
		info.Type = gpucontext.AdapterTypeDiscrete
	case containsAny(r, "intel", "mali", "adreno", "powervr", "apple", "vivante", "videocore"):
		info.Type = gpucontext.AdapterTypeIntegrated
	}
	return info
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
