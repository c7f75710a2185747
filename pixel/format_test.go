package pixel

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		format Format
		size   int
	}{
		{R8Unorm, 1},
		{RG8Snorm, 2},
		{RGB8Srgb, 3},
		{RGBA8Unorm, 4},
		{RGBA8UI, 4},
		{R16F, 2},
		{RGB16Unorm, 6},
		{RGBA16I, 8},
		{RGB32F, 12},
		{RGBA32UI, 16},
		{Depth16Unorm, 2},
		{Depth24Unorm, 4},
		{Depth32F, 4},
		{Stencil8UI, 1},
		{Depth16UnormStencil8UI, 4},
		{Depth24UnormStencil8UI, 4},
		{Depth32FStencil8UI, 8},
		{RGB565Unorm, 2},
		{RGBA4Unorm, 2},
		{RGB5A1Unorm, 2},
		{RGB10A2Unorm, 4},
		{RG11B10F, 4},
		{RGB9E5F, 4},
		{BGRA8Unorm, 4},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
		})
	}
}

func TestFormatTableComplete(t *testing.T) {
	for _, f := range Formats() {
		info := formats[f]
		if info.name == "" {
			t.Errorf("format %d has no table entry", uint32(f))
		}
		if info.size == 0 || info.channels == 0 {
			t.Errorf("%v has size %d, channels %d", f, info.size, info.channels)
		}
	}
	if got := len(Formats()); got != int(formatCount)-1 {
		t.Errorf("len(Formats()) = %d", got)
	}
}

func TestWrapRoundTrip(t *testing.T) {
	for _, native := range []uint32{0x1908, 0x80E1, 0xdead, 1} {
		f := Wrap(native)
		if !f.IsImplementationSpecific() {
			t.Errorf("Wrap(%#x) not implementation-specific", native)
		}
		if got := f.Unwrap(); got != native {
			t.Errorf("Wrap(%#x).Unwrap() = %#x", native, got)
		}
		if !f.IsValid() {
			t.Errorf("Wrap(%#x) not valid", native)
		}
		if f.Size() != 0 {
			t.Errorf("Wrap(%#x).Size() = %d, want 0", native, f.Size())
		}
	}
	// Large named-looking values are not implementation-specific by magnitude.
	if Format(0x2000).IsImplementationSpecific() {
		t.Error("Format(0x2000) treated as implementation-specific")
	}
	for _, f := range Formats() {
		if f.IsImplementationSpecific() {
			t.Errorf("named format %v has the tag bit", f)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{RGBA8Unorm, "RGBA8Unorm"},
		{Depth32FStencil8UI, "Depth32FStencil8UI"},
		{Wrap(0xdead), "ImplementationSpecific(0xdead)"},
		{Format(0xdead), "Format(0xdead)"},
		{Format(0), "Format(0x0)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPredicates(t *testing.T) {
	if !RGBA8Srgb.IsSrgb() || RGBA8Unorm.IsSrgb() {
		t.Error("IsSrgb mismatch")
	}
	if !R32I.IsInteger() || !RGB10A2UI.IsInteger() || R32F.IsInteger() {
		t.Error("IsInteger mismatch")
	}
	if !RG11B10F.IsFloat() || !RGBA16F.IsFloat() || RGBA16Unorm.IsFloat() {
		t.Error("IsFloat mismatch")
	}
	if !Depth24UnormStencil8UI.HasDepth() || !Depth24UnormStencil8UI.HasStencil() {
		t.Error("depth-stencil predicates mismatch")
	}
	if Stencil8UI.HasDepth() || Depth32F.HasStencil() {
		t.Error("single-aspect predicates mismatch")
	}
	if !RGB565Unorm.IsPacked() || BGRA8Unorm.IsPacked() {
		t.Error("IsPacked mismatch")
	}
}

func TestGPUFormatBridge(t *testing.T) {
	for _, f := range Formats() {
		g, ok := f.GPUFormat()
		if !ok {
			continue
		}
		back, ok := FromGPUFormat(g)
		if !ok || back != f {
			t.Errorf("FromGPUFormat(%v) = %v, %v; want %v", g, back, ok, f)
		}
	}
	if _, ok := RGB8Unorm.GPUFormat(); ok {
		t.Error("RGB8Unorm has no WebGPU equivalent")
	}
	if f, ok := FromGPUFormat(gputypes.TextureFormatDepth24Plus); !ok || f != Depth24Unorm {
		t.Errorf("FromGPUFormat(Depth24Plus) = %v, %v", f, ok)
	}
	if _, ok := FromGPUFormat(gputypes.TextureFormatBC1RGBAUnorm); ok {
		t.Error("compressed WebGPU format mapped to uncompressed format")
	}
}
