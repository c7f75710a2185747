package texture

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

func TestKindTable(t *testing.T) {
	tests := []struct {
		kind    Kind
		dims    int
		target  gl.Enum
		layered bool
		axis    int
		faces   int
	}{
		{Texture1D, 1, gl.TEXTURE_1D, false, 0, 1},
		{Texture2D, 2, gl.TEXTURE_2D, false, 1, 1},
		{Texture3D, 3, gl.TEXTURE_3D, false, 2, 1},
		{Texture1DArray, 2, gl.TEXTURE_1D_ARRAY, true, 1, 1},
		{Texture2DArray, 3, gl.TEXTURE_2D_ARRAY, true, 2, 1},
		{Rectangle, 2, gl.TEXTURE_RECTANGLE, false, 1, 1},
		{CubeMap, 2, gl.TEXTURE_CUBE_MAP, false, 1, 6},
	}
	if len(tests) != len(Kinds()) {
		t.Fatalf("table covers %d kinds, Kinds() has %d", len(tests), len(Kinds()))
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Dims(); got != tt.dims {
				t.Errorf("Dims() = %d, want %d", got, tt.dims)
			}
			if got := tt.kind.Target(); got != tt.target {
				t.Errorf("Target() = %v, want %v", got, tt.target)
			}
			if got := tt.kind.IsLayered(); got != tt.layered {
				t.Errorf("IsLayered() = %v, want %v", got, tt.layered)
			}
			if got := tt.kind.LayerAxis(); got != tt.axis {
				t.Errorf("LayerAxis() = %d, want %d", got, tt.axis)
			}
			if got := tt.kind.Faces(); got != tt.faces {
				t.Errorf("Faces() = %d, want %d", got, tt.faces)
			}
			// Every kind has a full-rank entry point and, one rank lower,
			// a sub-image entry point.
			if shapes[tt.dims].image == nil || shapes[tt.dims].subImage == nil {
				t.Errorf("shapes[%d] lacks uncompressed entry points", tt.dims)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := Texture2DArray.String(); got != "Texture2DArray" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(0xbe).String(); got != "Kind(0xbe)" {
		t.Errorf("String() of unknown kind = %q, want Kind(0xbe)", got)
	}
	if Kind(0xbe).IsValid() {
		t.Error("IsValid() = true for unknown kind")
	}
}

func TestUnknownKindAccessors(t *testing.T) {
	for _, k := range []Kind{kindCount, 0xbe, 0xff} {
		t.Run(k.String(), func(t *testing.T) {
			if got := k.Dims(); got != 0 {
				t.Errorf("Dims() = %d, want 0", got)
			}
			if got := k.Target(); got != 0 {
				t.Errorf("Target() = %v, want 0", got)
			}
			if got := k.LayerAxis(); got != 0 {
				t.Errorf("LayerAxis() = %d, want 0", got)
			}
			if got := k.Faces(); got != 0 {
				t.Errorf("Faces() = %d, want 0", got)
			}
			if k.IsLayered() || k.SupportsRepeat() || k.SupportsMipmaps() {
				t.Error("unknown kind reports a capability")
			}
			if got := k.ViewDimension(); got != gputypes.TextureViewDimensionUndefined {
				t.Errorf("ViewDimension() = %v, want undefined", got)
			}
			if k.IsAvailable(fullGL()) {
				t.Error("IsAvailable() = true for unknown kind")
			}
		})
	}
}

func TestKindCapabilities(t *testing.T) {
	if Rectangle.SupportsRepeat() || Rectangle.SupportsMipmaps() {
		t.Error("Rectangle must not support repeat or mipmaps")
	}
	for _, k := range Kinds() {
		if k != Rectangle && (!k.SupportsRepeat() || !k.SupportsMipmaps()) {
			t.Errorf("%v must support repeat and mipmaps", k)
		}
	}
}

func TestKindAvailability(t *testing.T) {
	tests := []struct {
		target profile.Target
		want   []Kind
	}{
		{profile.GL, Kinds()},
		{profile.GLES3, []Kind{Texture2D, Texture3D, Texture2DArray, CubeMap}},
		{profile.WebGL2, []Kind{Texture2D, Texture3D, Texture2DArray, CubeMap}},
		{profile.GLES2, []Kind{Texture2D, CubeMap}},
		{profile.WebGL1, []Kind{Texture2D, CubeMap}},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			p := profile.Default(tt.target)
			var got []Kind
			for _, k := range Kinds() {
				if k.IsAvailable(p) {
					got = append(got, k)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("available = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("available = %v, want %v", got, tt.want)
				}
			}
		})
	}
	if Kind(0xbe).IsAvailable(profile.Default(profile.GL)) {
		t.Error("unknown kind reported available")
	}
}

func TestViewDimension(t *testing.T) {
	tests := []struct {
		view gputypes.TextureViewDimension
		kind Kind
		ok   bool
	}{
		{gputypes.TextureViewDimension1D, Texture1D, true},
		{gputypes.TextureViewDimension2D, Texture2D, true},
		{gputypes.TextureViewDimension3D, Texture3D, true},
		{gputypes.TextureViewDimension2DArray, Texture2DArray, true},
		{gputypes.TextureViewDimensionCube, CubeMap, true},
		{gputypes.TextureViewDimensionCubeArray, 0, false},
		{gputypes.TextureViewDimensionUndefined, 0, false},
	}
	for _, tt := range tests {
		k, ok := KindFromViewDimension(tt.view)
		if ok != tt.ok || (ok && k != tt.kind) {
			t.Errorf("KindFromViewDimension(%v) = %v, %v, want %v, %v", tt.view, k, ok, tt.kind, tt.ok)
		}
		if ok && k.ViewDimension() != tt.view {
			t.Errorf("%v.ViewDimension() = %v, want %v", k, k.ViewDimension(), tt.view)
		}
	}
	if Texture1DArray.ViewDimension() != gputypes.TextureViewDimensionUndefined {
		t.Error("Texture1DArray has a view dimension")
	}
}
