package texture

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/pixel"
)

// Wrapping is the addressing mode of one texture axis.
type Wrapping uint8

const (
	Repeat Wrapping = iota
	MirroredRepeat
	ClampToEdge
	// ClampToBorder samples the border color outside the image. Needs the
	// border clamp capability.
	ClampToBorder
	// MirrorClampToEdge mirrors once, then clamps. Desktop GL only.
	MirrorClampToEdge
)

var wrappingNames = [...]string{"Repeat", "MirroredRepeat", "ClampToEdge", "ClampToBorder", "MirrorClampToEdge"}

func (w Wrapping) String() string {
	if int(w) < len(wrappingNames) {
		return wrappingNames[w]
	}
	return fmt.Sprintf("Wrapping(%#x)", uint8(w))
}

func (w Wrapping) native() gl.Enum {
	switch w {
	case MirroredRepeat:
		return gl.MIRRORED_REPEAT
	case ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case ClampToBorder:
		return gl.CLAMP_TO_BORDER
	case MirrorClampToEdge:
		return gl.MIRROR_CLAMP_TO_EDGE
	}
	return gl.REPEAT
}

func wrappingFromNative(e gl.Enum) (Wrapping, bool) {
	switch e {
	case gl.REPEAT:
		return Repeat, true
	case gl.MIRRORED_REPEAT:
		return MirroredRepeat, true
	case gl.CLAMP_TO_EDGE:
		return ClampToEdge, true
	case gl.CLAMP_TO_BORDER:
		return ClampToBorder, true
	case gl.MIRROR_CLAMP_TO_EDGE:
		return MirrorClampToEdge, true
	}
	return 0, false
}

// Filter selects between texels within one level.
type Filter uint8

const (
	Nearest Filter = iota
	Linear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "Nearest"
	case Linear:
		return "Linear"
	}
	return fmt.Sprintf("Filter(%#x)", uint8(f))
}

// Mipmap selects how minification picks between mip levels.
type Mipmap uint8

const (
	// MipmapBase samples level zero only.
	MipmapBase Mipmap = iota
	MipmapNearest
	MipmapLinear
)

func (m Mipmap) String() string {
	switch m {
	case MipmapBase:
		return "Base"
	case MipmapNearest:
		return "Nearest"
	case MipmapLinear:
		return "Linear"
	}
	return fmt.Sprintf("Mipmap(%#x)", uint8(m))
}

// minFilterTable is indexed by [Filter][Mipmap].
var minFilterTable = [2][3]gl.Enum{
	Nearest: {gl.NEAREST, gl.NEAREST_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR},
	Linear:  {gl.LINEAR, gl.LINEAR_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_LINEAR},
}

func minFilterNative(f Filter, m Mipmap) gl.Enum {
	return minFilterTable[f][m]
}

func minFilterFromNative(e gl.Enum) (Filter, Mipmap, bool) {
	for f, row := range minFilterTable {
		for m, v := range row {
			if v == e {
				return Filter(f), Mipmap(m), true
			}
		}
	}
	return 0, 0, false
}

func magFilterNative(f Filter) gl.Enum {
	if f == Linear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

// Sampler is the complete sampling state of a texture.
type Sampler struct {
	// Wrapping holds one mode per axis; axes beyond the texture's
	// dimension count are ignored.
	Wrapping      [3]Wrapping
	Minification  Filter
	Mipmap        Mipmap
	Magnification Filter
	// MaxAnisotropy of 1 disables anisotropic filtering.
	MaxAnisotropy float32
	BorderColor   pixel.Color4
}

// defaultSampler returns the initial driver state for a texture of kind k.
func defaultSampler(k Kind) Sampler {
	s := Sampler{
		Wrapping:      [3]Wrapping{Repeat, Repeat, Repeat},
		Minification:  Nearest,
		Mipmap:        MipmapLinear,
		Magnification: Linear,
		MaxAnisotropy: 1,
	}
	if k == Rectangle {
		s.Wrapping = [3]Wrapping{ClampToEdge, ClampToEdge, ClampToEdge}
		s.Minification = Linear
		s.Mipmap = MipmapBase
	}
	return s
}

// SamplerFromDescriptor converts a WebGPU-style sampler descriptor.
// Undefined modes take the descriptor defaults: ClampToEdge, Nearest and
// no mipmapping. A zero LOD clamp range selects MipmapBase.
func SamplerFromDescriptor(d gputypes.SamplerDescriptor) Sampler {
	addr := func(m gputypes.AddressMode) Wrapping {
		switch m {
		case gputypes.AddressModeRepeat:
			return Repeat
		case gputypes.AddressModeMirrorRepeat:
			return MirroredRepeat
		}
		return ClampToEdge
	}
	filter := func(m gputypes.FilterMode) Filter {
		if m == gputypes.FilterModeLinear {
			return Linear
		}
		return Nearest
	}
	s := Sampler{
		Wrapping:      [3]Wrapping{addr(d.AddressModeU), addr(d.AddressModeV), addr(d.AddressModeW)},
		Minification:  filter(d.MinFilter),
		Magnification: filter(d.MagFilter),
		MaxAnisotropy: float32(max(d.MaxAnisotropy, 1)),
	}
	switch {
	case d.LodMinClamp == 0 && d.LodMaxClamp == 0:
		s.Mipmap = MipmapBase
	case d.MipmapFilter == gputypes.MipmapFilterModeNearest:
		s.Mipmap = MipmapNearest
	case d.MipmapFilter == gputypes.MipmapFilterModeLinear:
		s.Mipmap = MipmapLinear
	}
	return s
}

// Descriptor converts s to a WebGPU-style sampler descriptor. The result
// is approximate when s uses ClampToBorder or MirrorClampToEdge, which have
// no descriptor equivalent; exact reports whether it is not.
func (s Sampler) Descriptor() (d gputypes.SamplerDescriptor, exact bool) {
	exact = true
	addr := func(w Wrapping) gputypes.AddressMode {
		switch w {
		case Repeat:
			return gputypes.AddressModeRepeat
		case MirroredRepeat:
			return gputypes.AddressModeMirrorRepeat
		case MirrorClampToEdge:
			exact = false
			return gputypes.AddressModeMirrorRepeat
		case ClampToBorder:
			exact = false
		}
		return gputypes.AddressModeClampToEdge
	}
	filter := func(f Filter) gputypes.FilterMode {
		if f == Linear {
			return gputypes.FilterModeLinear
		}
		return gputypes.FilterModeNearest
	}
	d = gputypes.DefaultSamplerDescriptor()
	d.AddressModeU = addr(s.Wrapping[0])
	d.AddressModeV = addr(s.Wrapping[1])
	d.AddressModeW = addr(s.Wrapping[2])
	d.MinFilter = filter(s.Minification)
	d.MagFilter = filter(s.Magnification)
	switch s.Mipmap {
	case MipmapBase:
		d.MipmapFilter = gputypes.MipmapFilterModeNearest
		d.LodMaxClamp = 0
	case MipmapNearest:
		d.MipmapFilter = gputypes.MipmapFilterModeNearest
	case MipmapLinear:
		d.MipmapFilter = gputypes.MipmapFilterModeLinear
	}
	d.MaxAnisotropy = uint16(max(s.MaxAnisotropy, 1))
	return d, exact
}
