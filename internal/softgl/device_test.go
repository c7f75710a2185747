package softgl

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

func fullGL() profile.Profile {
	p := profile.Default(profile.GL)
	p.Caps.DirectStateAccess = true
	p.Caps.TextureFilterAnisotropic = true
	p.Caps.MaxAnisotropy = 16
	p.Caps.TextureBorderClamp = true
	return p
}

func wantNoError(t *testing.T, d *Device) {
	t.Helper()
	if code := d.GetError(); code != gl.NO_ERROR {
		t.Fatalf("GetError() = %#x, want NO_ERROR", code)
	}
}

func wantError(t *testing.T, d *Device, want uint32) {
	t.Helper()
	if code := d.GetError(); code != want {
		t.Fatalf("GetError() = %#x, want %#x", code, want)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	es3 := profile.Default(profile.GLES3)
	es3.Caps.TextureBorderClamp = true
	es2 := profile.Default(profile.GLES2)
	es2.Caps.Texture3D = true
	webgl2 := profile.Default(profile.WebGL2)
	webgl2.Caps.TextureFilterAnisotropic = true
	webgl2.Caps.MaxAnisotropy = 8

	glBase := profile.Default(profile.GL)
	glBase.Caps.TextureBorderClamp = true

	tests := []struct {
		name string
		p    profile.Profile
	}{
		{"GL full", fullGL()},
		{"GL base", glBase},
		{"GLES2 with 3D", es2},
		{"GLES3 with border", es3},
		{"WebGL1", profile.Default(profile.WebGL1)},
		{"WebGL2 aniso", webgl2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := profile.Query(New(tt.p))
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if got != tt.p {
				t.Errorf("Query() = %v, want %v", got, tt.p)
			}
		})
	}
}

func TestRendererIsSoftware(t *testing.T) {
	d := New(profile.Default(profile.GL))
	info := profile.ClassifyAdapter(d.GetString(gl.RENDERER))
	if info.Type != gpucontext.AdapterTypeSoftware {
		t.Errorf("ClassifyAdapter().Type = %v, want Software", info.Type)
	}
}

func TestStickyError(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.ActiveTexture(gl.TEXTURE0 + 1000)
	d.GetString(gl.Enum(0xdead))
	wantError(t, d, gl.INVALID_ENUM)
	wantNoError(t, d)
}

func TestBindTargetFixed(t *testing.T) {
	d := New(profile.Default(profile.GL))
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)
	wantNoError(t, d)
	d.BindTexture(gl.TEXTURE_3D, tex)
	wantError(t, d, gl.INVALID_OPERATION)
	if got := d.Bound(0, gl.TEXTURE_2D); got != tex {
		t.Errorf("Bound(0, TEXTURE_2D) = %v, want %v", got, tex)
	}
}

func TestBindTargetsPerProfile(t *testing.T) {
	tests := []struct {
		target gl.Enum
		p      profile.Target
		ok     bool
	}{
		{gl.TEXTURE_1D, profile.GL, true},
		{gl.TEXTURE_1D, profile.GLES3, false},
		{gl.TEXTURE_RECTANGLE, profile.WebGL2, false},
		{gl.TEXTURE_2D_ARRAY, profile.GLES3, true},
		{gl.TEXTURE_2D_ARRAY, profile.GLES2, false},
		{gl.TEXTURE_3D, profile.WebGL1, false},
		{gl.TEXTURE_CUBE_MAP, profile.WebGL1, true},
	}
	for _, tt := range tests {
		t.Run(tt.target.String()+"/"+tt.p.String(), func(t *testing.T) {
			d := New(profile.Default(tt.p))
			d.BindTexture(tt.target, d.GenTexture())
			code := d.GetError()
			if (code == gl.NO_ERROR) != tt.ok {
				t.Errorf("BindTexture error = %#x, want ok=%v", code, tt.ok)
			}
		})
	}
}

func TestDeleteUnbinds(t *testing.T) {
	d := New(profile.Default(profile.GL))
	tex := d.GenTexture()
	d.ActiveTexture(gl.TEXTURE0 + 3)
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.DeleteTexture(tex)
	if got := d.Bound(3, gl.TEXTURE_2D); got != 0 {
		t.Errorf("Bound after delete = %v, want 0", got)
	}
	if d.Textures() != 0 {
		t.Errorf("Textures() = %d, want 0", d.Textures())
	}
}

func TestParameterDefaults(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	if got := gl.Enum(d.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S)); got != gl.REPEAT {
		t.Errorf("default WRAP_S = %v, want REPEAT", got)
	}
	if got := gl.Enum(d.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER)); got != gl.NEAREST_MIPMAP_LINEAR {
		t.Errorf("default MIN_FILTER = %v, want NEAREST_MIPMAP_LINEAR", got)
	}
	wantNoError(t, d)
}

func TestParameterValidation(t *testing.T) {
	tests := []struct {
		name  string
		p     profile.Profile
		apply func(d *Device)
		want  uint32
	}{
		{"border without cap", profile.Default(profile.GLES3), func(d *Device) {
			d.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, []float32{1, 0, 0, 1})
		}, gl.INVALID_ENUM},
		{"clamp to border without cap", profile.Default(profile.WebGL2), func(d *Device) {
			d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_BORDER))
		}, gl.INVALID_ENUM},
		{"anisotropy without cap", profile.Default(profile.GL), func(d *Device) {
			d.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, 4)
		}, gl.INVALID_ENUM},
		{"anisotropy below one", fullGL(), func(d *Device) {
			d.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, 0.5)
		}, gl.INVALID_VALUE},
		{"mipmap mag filter", fullGL(), func(d *Device) {
			d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(gl.LINEAR_MIPMAP_LINEAR))
		}, gl.INVALID_ENUM},
		{"mirror clamp on ES", profile.Default(profile.GLES3), func(d *Device) {
			d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(gl.MIRROR_CLAMP_TO_EDGE))
		}, gl.INVALID_ENUM},
		{"wrap r on ES2", profile.Default(profile.GLES2), func(d *Device) {
			d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_R, int32(gl.REPEAT))
		}, gl.INVALID_ENUM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(tt.p)
			d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
			tt.apply(d)
			wantError(t, d, tt.want)
		})
	}
}

func TestAnisotropyClamped(t *testing.T) {
	d := New(fullGL())
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	d.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, 64)
	if got := d.GetTexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY); got != 16 {
		t.Errorf("anisotropy = %v, want 16", got)
	}
	wantNoError(t, d)
}

func TestUploadAndReadback(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())

	// 3x2 RGB8 rows padded to 12 bytes by the default alignment of 4.
	data := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 0, 0,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 0, 0, 0,
	}
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, 3, 2, gl.RGB, gl.UnsignedByte, data)
	wantNoError(t, d)

	d.PixelStorei(gl.PACK_ALIGNMENT, 1)
	got := make([]byte, 18)
	d.GetTexImage(gl.TEXTURE_2D, 0, gl.RGB, gl.UnsignedByte, got)
	wantNoError(t, d)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	if !bytes.Equal(got, want) {
		t.Errorf("GetTexImage() = %v, want %v", got, want)
	}

	if w := d.GetTexLevelParameteri(gl.TEXTURE_2D, 0, gl.TEXTURE_WIDTH); w != 3 {
		t.Errorf("TEXTURE_WIDTH = %d, want 3", w)
	}
	if f := gl.TextureFormat(d.GetTexLevelParameteri(gl.TEXTURE_2D, 0, gl.TEXTURE_INTERNAL_FORMAT)); f != gl.RGB8 {
		t.Errorf("TEXTURE_INTERNAL_FORMAT = %v, want RGB8", f)
	}
}

func TestUploadShortData(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 4, 4, gl.RGBA, gl.UnsignedByte, make([]byte, 63))
	wantError(t, d, gl.INVALID_OPERATION)
}

func TestUploadES2RequiresUnsized(t *testing.T) {
	d := New(profile.Default(profile.GLES2))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, gl.RGBA, gl.UnsignedByte, nil)
	wantError(t, d, gl.INVALID_OPERATION)
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.TextureFormat(gl.RGBA), 1, 1, gl.RGBA, gl.UnsignedByte, nil)
	wantNoError(t, d)
}

func TestSubImageLayer(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.BindTexture(gl.TEXTURE_2D_ARRAY, d.GenTexture())
	d.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	d.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.R8, 2, 2, 3, gl.Red, gl.UnsignedByte, nil)
	d.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0, 0, 0, 1, 2, 2, 1, gl.Red, gl.UnsignedByte, []byte{1, 2, 3, 4})
	wantNoError(t, d)

	d.PixelStorei(gl.PACK_ALIGNMENT, 1)
	got := make([]byte, 12)
	d.GetTexImage(gl.TEXTURE_2D_ARRAY, 0, gl.Red, gl.UnsignedByte, got)
	want := []byte{0, 0, 0, 0, 1, 2, 3, 4, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("layers = %v, want %v", got, want)
	}
}

func TestSubImageOutOfBounds(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UnsignedByte, nil)
	d.TexSubImage2D(gl.TEXTURE_2D, 0, 1, 1, 2, 2, gl.RGBA, gl.UnsignedByte, make([]byte, 16))
	wantError(t, d, gl.INVALID_VALUE)
}

func TestCubeFaces(t *testing.T) {
	d := New(profile.Default(profile.GLES3))
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	for i := range 6 {
		d.TexImage2D(gl.CubeMapFace(i), 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UnsignedByte, nil)
	}
	wantNoError(t, d)
	d.TexImage2D(gl.TEXTURE_CUBE_MAP, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UnsignedByte, nil)
	wantError(t, d, gl.INVALID_ENUM)
	d.TexImage2D(gl.CubeMapFace(0), 0, gl.RGBA8, 2, 4, gl.RGBA, gl.UnsignedByte, nil)
	wantError(t, d, gl.INVALID_VALUE)

	d.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
	wantNoError(t, d)
	if _, ok := d.Level(tex, gl.CubeMapFace(5), 1); !ok {
		t.Error("face -Z level 1 missing after GenerateMipmap")
	}
}

func TestGenerateMipmapKeepsLayers(t *testing.T) {
	d := New(profile.Default(profile.GL))
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
	d.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, 4, 4, 3, gl.RGBA, gl.UnsignedByte, nil)
	d.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	wantNoError(t, d)

	want := [][3]int{{4, 4, 3}, {2, 2, 3}, {1, 1, 3}}
	for i, size := range want {
		l, ok := d.Level(tex, 0, i)
		if !ok {
			t.Fatalf("level %d missing", i)
		}
		if l.Size != size {
			t.Errorf("level %d size = %v, want %v", i, l.Size, size)
		}
	}
	if _, ok := d.Level(tex, 0, 3); ok {
		t.Error("unexpected level 3")
	}
}

func TestGenerateMipmapNearest(t *testing.T) {
	d := New(profile.Default(profile.GL))
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)
	d.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, 2, 2, gl.Red, gl.UnsignedByte, []byte{9, 1, 2, 3})
	d.GenerateMipmap(gl.TEXTURE_2D)
	l, _ := d.Level(tex, 0, 1)
	if !bytes.Equal(l.Data, []byte{9}) {
		t.Errorf("level 1 = %v, want [9]", l.Data)
	}
}

func TestCompressedUpload(t *testing.T) {
	d := New(profile.Default(profile.GL))
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)

	// 8x8 BC1 is 2x2 blocks of 8 bytes.
	d.CompressedTexImage2D(gl.TEXTURE_2D, 0, gl.CompressedRGBAS3TCDXT1, 8, 8, make([]byte, 32))
	wantNoError(t, d)
	d.CompressedTexImage2D(gl.TEXTURE_2D, 0, gl.CompressedRGBAS3TCDXT1, 8, 8, make([]byte, 31))
	wantError(t, d, gl.INVALID_VALUE)

	block := bytes.Repeat([]byte{7}, 8)
	d.CompressedTexSubImage2D(gl.TEXTURE_2D, 0, 4, 4, 4, 4, gl.CompressedRGBAS3TCDXT1, block)
	wantNoError(t, d)
	l, _ := d.Level(tex, 0, 0)
	if !bytes.Equal(l.Data[24:], block) || !bytes.Equal(l.Data[:24], make([]byte, 24)) {
		t.Errorf("compressed data = %v", l.Data)
	}

	d.CompressedTexSubImage2D(gl.TEXTURE_2D, 0, 2, 0, 4, 4, gl.CompressedRGBAS3TCDXT1, block)
	wantError(t, d, gl.INVALID_OPERATION)
}

func TestDirectAccessLeavesBindings(t *testing.T) {
	d := New(fullGL())
	bound := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, bound)
	tex := d.GenTexture()
	before := d.Stats

	d.TextureParameteri(tex, gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.NEAREST))
	d.TextureImage2D(tex, gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, gl.RGBA, gl.UnsignedByte, nil)
	wantNoError(t, d)

	if d.Stats.BindTexture != before.BindTexture || d.Stats.ActiveTexture != before.ActiveTexture {
		t.Errorf("direct access changed bindings: %+v -> %+v", before, d.Stats)
	}
	if got := d.Bound(0, gl.TEXTURE_2D); got != bound {
		t.Errorf("Bound(0, TEXTURE_2D) = %v, want %v", got, bound)
	}
}

func TestDirectAccessRequiresCap(t *testing.T) {
	d := New(profile.Default(profile.GL))
	d.TextureParameteri(d.GenTexture(), gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.NEAREST))
	wantError(t, d, gl.INVALID_OPERATION)
}

func TestDirectAccessMatchesBind(t *testing.T) {
	d := New(fullGL())
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 4)

	a := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, a)
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_BORDER))
	d.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, []float32{1, 0, 1, 1})
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UnsignedByte, data)

	b := d.GenTexture()
	d.TextureParameteri(b, gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_BORDER))
	d.TextureParameterfv(b, gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, []float32{1, 0, 1, 1})
	d.TextureImage2D(b, gl.TEXTURE_2D, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UnsignedByte, data)
	wantNoError(t, d)

	sa, _ := d.Inspect(a)
	sb, _ := d.Inspect(b)
	if !reflect.DeepEqual(sa, sb) {
		t.Errorf("states differ:\n bind %+v\n dsa  %+v", sa, sb)
	}
}

func TestReadbackUnavailableOnES(t *testing.T) {
	d := New(profile.Default(profile.GLES3))
	d.BindTexture(gl.TEXTURE_2D, d.GenTexture())
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, gl.RGBA, gl.UnsignedByte, nil)
	d.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UnsignedByte, make([]byte, 4))
	wantError(t, d, gl.INVALID_OPERATION)
}

func TestPixelStoreES2(t *testing.T) {
	d := New(profile.Default(profile.GLES2))
	d.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	wantNoError(t, d)
	d.PixelStorei(gl.UNPACK_ROW_LENGTH, 4)
	wantError(t, d, gl.INVALID_ENUM)
	d.PixelStorei(gl.UNPACK_ALIGNMENT, 3)
	wantError(t, d, gl.INVALID_VALUE)
}
