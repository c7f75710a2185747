package texture

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
	"github.com/gogpu/glhal/profile"
)

func seq(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func TestRGBA4x4(t *testing.T) {
	p := fullGL()
	c, _ := newFixture(t, p)

	reg := c.Registry()
	native, err := reg.PixelFormat(pixel.RGBA8Unorm)
	if err != nil || native != gl.RGBA {
		t.Fatalf("PixelFormat(RGBA8Unorm) = %v, %v, want RGBA", native, err)
	}
	typ, err := reg.PixelType(pixel.RGBA8Unorm, 0)
	if err != nil || typ != gl.UnsignedByte {
		t.Fatalf("PixelType(RGBA8Unorm) = %v, %v, want UnsignedByte", typ, err)
	}
	if size, err := glformat.PixelSize(native, typ); err != nil || size != 4 {
		t.Fatalf("PixelSize() = %d, %v, want 4", size, err)
	}

	tex := newTexture(t, c, Texture2D)
	if err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 4, 4, seq(64, 0))); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	size, err := tex.ImageSize(0)
	if err != nil {
		t.Fatalf("ImageSize() error = %v", err)
	}
	if !reflect.DeepEqual(size, []int{4, 4}) {
		t.Errorf("ImageSize(0) = %v, want [4 4]", size)
	}
	if tex.Width() != 4 || tex.Height() != 4 {
		t.Errorf("Width, Height = %d, %d, want 4, 4", tex.Width(), tex.Height())
	}
	img, err := tex.Image(0, pixel.RGBA8Unorm)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if !bytes.Equal(img.Data, seq(64, 0)) {
		t.Errorf("Image() data = %v", img.Data)
	}
}

func TestLayerUpload(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		full   pixel.Image
		layer  pixel.Image
		offset [3]int
		// start and length of the bytes the layer replaces in the full image
		at, n int
	}{
		{
			name:   "2D array layer",
			kind:   Texture2DArray,
			full:   pixel.NewImage3D(pixel.RGBA8Unorm, 2, 2, 3, seq(48, 0)),
			layer:  pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, seq(16, 200)),
			offset: [3]int{0, 0, 1},
			at:     16, n: 16,
		},
		{
			name:   "3D slice",
			kind:   Texture3D,
			full:   pixel.NewImage3D(pixel.RGBA8Unorm, 2, 2, 3, seq(48, 0)),
			layer:  pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, seq(16, 200)),
			offset: [3]int{0, 0, 2},
			at:     32, n: 16,
		},
		{
			name:   "1D array row",
			kind:   Texture1DArray,
			full:   pixel.NewImage2D(pixel.RGBA8Unorm, 2, 3, seq(24, 0)),
			layer:  pixel.NewImage1D(pixel.RGBA8Unorm, 2, seq(8, 200)),
			offset: [3]int{0, 2, 0},
			at:     16, n: 8,
		},
		{
			name:   "2D row",
			kind:   Texture2D,
			full:   pixel.NewImage2D(pixel.RGBA8Unorm, 2, 3, seq(24, 0)),
			layer:  pixel.NewImage1D(pixel.RGBA8Unorm, 2, seq(8, 200)),
			offset: [3]int{0, 0, 0},
			at:     0, n: 8,
		},
	}
	for _, tt := range tests {
		for _, dsa := range []bool{false, true} {
			t.Run(tt.name+map[bool]string{false: "/bind", true: "/dsa"}[dsa], func(t *testing.T) {
				c, _ := newFixture(t, fullGL(), WithDirectStateAccess(dsa))
				tex := newTexture(t, c, tt.kind)
				if err := tex.SetImage(0, tt.full); err != nil {
					t.Fatalf("SetImage() error = %v", err)
				}
				if err := tex.SetSubImage(0, tt.offset, tt.layer); err != nil {
					t.Fatalf("SetSubImage() error = %v", err)
				}
				got, err := tex.Image(0, pixel.RGBA8Unorm)
				if err != nil {
					t.Fatalf("Image() error = %v", err)
				}
				want := append([]byte(nil), tt.full.Data...)
				copy(want[tt.at:tt.at+tt.n], tt.layer.Data)
				if !bytes.Equal(got.Data, want) {
					t.Errorf("data = %v\nwant   %v", got.Data, want)
				}
			})
		}
	}
}

func TestUploadContract(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		upload func(tex *Texture) error
	}{
		{"full rank too low", Texture3D, func(tex *Texture) error {
			return tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, nil))
		}},
		{"sub rank two lower", Texture3D, func(tex *Texture) error {
			return tex.SetSubImage(0, [3]int{}, pixel.NewImage1D(pixel.RGBA8Unorm, 2, make([]byte, 8)))
		}},
		{"sub rank higher", Texture2D, func(tex *Texture) error {
			return tex.SetSubImage(0, [3]int{}, pixel.NewImage3D(pixel.RGBA8Unorm, 1, 1, 1, make([]byte, 4)))
		}},
		{"negative offset", Texture2D, func(tex *Texture) error {
			return tex.SetSubImage(0, [3]int{0, -1, 0}, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, make([]byte, 4)))
		}},
		{"short data", Texture2D, func(tex *Texture) error {
			return tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 4, 4, make([]byte, 60)))
		}},
		{"negative level", Texture2D, func(tex *Texture) error {
			return tex.SetImage(-1, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil))
		}},
		{"rectangle level", Rectangle, func(tex *Texture) error {
			return tex.SetImage(1, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil))
		}},
		{"cube without face", CubeMap, func(tex *Texture) error {
			return tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil))
		}},
		{"face out of range", CubeMap, func(tex *Texture) error {
			return tex.SetFaceImage(6, 0, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil))
		}},
		{"face on 2D", Texture2D, func(tex *Texture) error {
			return tex.SetFaceImage(0, 0, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil))
		}},
		{"native format without type", Texture2D, func(tex *Texture) error {
			return tex.SetImage(0, pixel.NewNativeImage(2, [3]int{1, 1, 1}, uint32(gl.RGBA), 0, 4, nil))
		}},
		{"compressed 1D", Texture1D, func(tex *Texture) error {
			return tex.SetCompressedImage(0, pixel.CompressedImage{Rank: 1, Size: [3]int{4, 1, 1}, Format: pixel.BC1RGBAUnorm})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			returnViolations(t)
			c, d := newFixture(t, fullGL())
			tex := newTexture(t, c, tt.kind)
			before := d.Stats.Upload
			wantContract(t, tt.upload(tex))
			if d.Stats.Upload != before {
				t.Error("rejected upload reached the driver")
			}
		})
	}
}

func TestUploadDriverError(t *testing.T) {
	c, _ := newFixture(t, profile.Default(profile.GLES3))
	tex := newTexture(t, c, Texture2D)
	if err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, nil)); err != nil {
		t.Fatal(err)
	}
	err := tex.SetSubImage(0, [3]int{1, 1, 0}, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, make([]byte, 16)))
	var de *glhal.DriverError
	if !errors.As(err, &de) {
		t.Fatalf("SetSubImage() error = %v, want *glhal.DriverError", err)
	}
	if de.Code != gl.INVALID_VALUE || de.Op != "SetSubImage" {
		t.Errorf("DriverError = %+v, want INVALID_VALUE from SetSubImage", de)
	}
}

func TestUploadUnsupportedFormat(t *testing.T) {
	c, d := newFixture(t, profile.Default(profile.WebGL1))
	tex := newTexture(t, c, Texture2D)
	err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA32UI, 1, 1, nil))
	if !errors.Is(err, glhal.ErrUnsupported) {
		t.Fatalf("SetImage(RGBA32UI) on WebGL1 error = %v, want ErrUnsupported", err)
	}
	if d.Stats.Upload != 0 {
		t.Error("unsupported upload reached the driver")
	}
}

func TestUploadAlignment(t *testing.T) {
	c, d := newFixture(t, profile.Default(profile.GLES3))
	tex := newTexture(t, c, Texture2D)

	img := pixel.NewImage2D(pixel.R8Unorm, 3, 2, []byte{1, 2, 3, 4, 5, 6})
	img.Storage.Alignment = 1
	if err := tex.SetImage(0, img); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	if got := d.GetInteger(gl.UNPACK_ALIGNMENT); got != 1 {
		t.Errorf("UNPACK_ALIGNMENT = %d, want 1", got)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if !bytes.Equal(l.Data, img.Data) {
		t.Errorf("stored %v, want %v", l.Data, img.Data)
	}

	// Default alignment pads the 3-byte rows to 4.
	padded := pixel.NewImage2D(pixel.R8Unorm, 3, 2, []byte{1, 2, 3, 0, 4, 5, 6})
	stores := d.Stats.PixelStore
	if err := tex.SetImage(0, padded); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	if d.Stats.PixelStore != stores+1 {
		t.Errorf("alignment reset issued %d PixelStorei calls, want 1", d.Stats.PixelStore-stores)
	}
	l, _ = d.Level(tex.Name(), 0, 0)
	if !bytes.Equal(l.Data, []byte{1, 2, 3, 4, 5, 6}) {
		t.Errorf("stored %v, want [1 2 3 4 5 6]", l.Data)
	}
}

func TestUploadRowLength(t *testing.T) {
	c, d := newFixture(t, profile.Default(profile.GLES3))
	tex := newTexture(t, c, Texture2D)
	// A 2x2 window into a 4-pixel wide R8 image, starting at pixel 1.
	img := pixel.NewImage2D(pixel.R8Unorm, 2, 2, []byte{0, 1, 2, 0, 0, 3, 4, 0})
	img.Storage = pixel.Storage{Alignment: 1, RowLength: 4, Skip: [3]int{1, 0, 0}}
	if err := tex.SetImage(0, img); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if !bytes.Equal(l.Data, []byte{1, 2, 3, 4}) {
		t.Errorf("stored %v, want [1 2 3 4]", l.Data)
	}

	es2, _ := newFixture(t, profile.Default(profile.GLES2))
	tex2 := newTexture(t, es2, Texture2D)
	if err := tex2.SetImage(0, img); !errors.Is(err, glhal.ErrUnsupported) {
		t.Errorf("row length on GLES2 error = %v, want ErrUnsupported", err)
	}
}

func TestUploadNativeFormat(t *testing.T) {
	c, d := newFixture(t, fullGL())
	tex := newTexture(t, c, Texture2D)
	img := pixel.NewNativeImage(2, [3]int{1, 1, 1}, uint32(gl.BGRA), uint32(gl.UnsignedInt8888Rev), 4, []byte{1, 2, 3, 4})
	if err := tex.SetImage(0, img); err != nil {
		t.Fatalf("SetImage() error = %v", err)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if l.Format != gl.BGRA || l.Type != gl.UnsignedInt8888Rev {
		t.Errorf("stored format/type = %v/%v, want BGRA/UnsignedInt8888Rev", l.Format, l.Type)
	}
}

func TestUploadES2Internal(t *testing.T) {
	c, d := newFixture(t, profile.Default(profile.GLES2))
	tex := newTexture(t, c, Texture2D)
	if err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA16F, 1, 1, nil)); err != nil {
		t.Fatalf("SetImage(RGBA16F) error = %v", err)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if l.Internal != gl.TextureFormat(gl.RGBA) || l.Type != gl.HalfFloatOES {
		t.Errorf("stored internal/type = %v/%v, want RGBA/HalfFloatOES", l.Internal, l.Type)
	}
}

func TestSetImageWithFormat(t *testing.T) {
	c, d := newFixture(t, fullGL())
	tex := newTexture(t, c, Texture2D)
	if err := tex.SetImageWithFormat(0, gl.SRGB8Alpha8, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil)); err != nil {
		t.Fatal(err)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if l.Internal != gl.SRGB8Alpha8 {
		t.Errorf("internal = %v, want SRGB8Alpha8", l.Internal)
	}
}

func TestCompressedUpload(t *testing.T) {
	for _, dsa := range []bool{false, true} {
		t.Run(map[bool]string{false: "bind", true: "dsa"}[dsa], func(t *testing.T) {
			c, d := newFixture(t, fullGL(), WithDirectStateAccess(dsa))
			tex := newTexture(t, c, Texture2D)
			if err := tex.SetCompressedImage(0, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 8, 8, make([]byte, 32))); err != nil {
				t.Fatalf("SetCompressedImage() error = %v", err)
			}
			block := bytes.Repeat([]byte{9}, 8)
			if err := tex.SetCompressedSubImage(0, [3]int{4, 0, 0}, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 4, 4, block)); err != nil {
				t.Fatalf("SetCompressedSubImage() error = %v", err)
			}
			l, _ := d.Level(tex.Name(), 0, 0)
			if l.Compressed != gl.CompressedRGBAS3TCDXT1 {
				t.Errorf("compressed format = %v", l.Compressed)
			}
			if !bytes.Equal(l.Data[8:16], block) {
				t.Errorf("block 1 = %v, want %v", l.Data[8:16], block)
			}
		})
	}
}

func TestCompressedArrayLayer(t *testing.T) {
	c, d := newFixture(t, profile.Default(profile.GLES3))
	tex := newTexture(t, c, Texture2DArray)
	if err := tex.SetCompressedImage(0, pixel.NewCompressedImage3D(pixel.ETC2RGBA8Unorm, 4, 4, 2, make([]byte, 32))); err != nil {
		t.Fatalf("SetCompressedImage() error = %v", err)
	}
	layer := bytes.Repeat([]byte{5}, 16)
	if err := tex.SetCompressedSubImage(0, [3]int{0, 0, 1}, pixel.NewCompressedImage2D(pixel.ETC2RGBA8Unorm, 4, 4, layer)); err != nil {
		t.Fatalf("SetCompressedSubImage() error = %v", err)
	}
	l, _ := d.Level(tex.Name(), 0, 0)
	if !bytes.Equal(l.Data[:16], make([]byte, 16)) || !bytes.Equal(l.Data[16:], layer) {
		t.Errorf("data = %v", l.Data)
	}
}

func TestCompressedFaceSubImage(t *testing.T) {
	returnViolations(t)
	for _, dsa := range []bool{false, true} {
		t.Run(map[bool]string{false: "bind", true: "dsa"}[dsa], func(t *testing.T) {
			c, d := newFixture(t, fullGL(), WithDirectStateAccess(dsa))
			tex := newTexture(t, c, CubeMap)
			for face := range 6 {
				if err := tex.SetFaceCompressedImage(face, 0, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 8, 8, make([]byte, 32))); err != nil {
					t.Fatalf("SetFaceCompressedImage(%d) error = %v", face, err)
				}
			}
			block := bytes.Repeat([]byte{7}, 8)
			if err := tex.SetFaceCompressedSubImage(4, 0, [2]int{0, 4}, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 4, 4, block)); err != nil {
				t.Fatalf("SetFaceCompressedSubImage() error = %v", err)
			}
			for face := range 6 {
				l, ok := d.Level(tex.Name(), gl.CubeMapFace(face), 0)
				if !ok {
					t.Fatalf("face %d has no level 0", face)
				}
				want := make([]byte, 32)
				if face == 4 {
					copy(want[16:24], block)
				}
				if !bytes.Equal(l.Data, want) {
					t.Errorf("face %d data = %v, want %v", face, l.Data, want)
				}
			}
			if err := tex.SetFaceCompressedSubImage(6, 0, [2]int{}, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 4, 4, block)); !errors.Is(err, glhal.ErrContract) {
				t.Errorf("face 6 error = %v, want contract violation", err)
			}
			if err := tex.SetCompressedSubImage(0, [3]int{}, pixel.NewCompressedImage2D(pixel.BC1RGBAUnorm, 4, 4, block)); !errors.Is(err, glhal.ErrContract) {
				t.Errorf("SetCompressedSubImage on a cube map error = %v, want contract violation", err)
			}
		})
	}
}

func TestCompressedUnsupported(t *testing.T) {
	c, _ := newFixture(t, profile.Default(profile.WebGL1))
	tex := newTexture(t, c, Texture2D)
	err := tex.SetCompressedImage(0, pixel.NewCompressedImage2D(pixel.BC7RGBAUnorm, 4, 4, make([]byte, 16)))
	if !errors.Is(err, glhal.ErrUnsupported) {
		t.Errorf("BC7 on WebGL1 error = %v, want ErrUnsupported", err)
	}
}

func TestQueriesPerProfile(t *testing.T) {
	es2, _ := newFixture(t, profile.Default(profile.GLES2))
	tex := newTexture(t, es2, Texture2D)
	if _, err := tex.ImageSize(0); !errors.Is(err, glhal.ErrUnsupported) {
		t.Errorf("ImageSize on GLES2 error = %v, want ErrUnsupported", err)
	}
	es3, _ := newFixture(t, profile.Default(profile.GLES3))
	tex = newTexture(t, es3, Texture2D)
	if _, err := tex.Image(0, pixel.RGBA8Unorm); !errors.Is(err, glhal.ErrUnsupported) {
		t.Errorf("Image on GLES3 error = %v, want ErrUnsupported", err)
	}
	if _, err := tex.ImageSize(0); !errors.Is(err, glhal.ErrUnsupported) {
		t.Errorf("ImageSize on GLES 3.0 error = %v, want ErrUnsupported", err)
	}

	p := profile.Default(profile.GLES3)
	p.Caps.TextureLevelQueries = true
	es31, _ := newFixture(t, p)
	tex = newTexture(t, es31, Texture2D)
	if err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 3, nil)); err != nil {
		t.Fatal(err)
	}
	size, err := tex.ImageSize(0)
	if err != nil {
		t.Fatalf("ImageSize on GLES 3.1 error = %v", err)
	}
	if !reflect.DeepEqual(size, []int{2, 3}) {
		t.Errorf("ImageSize(0) = %v, want [2 3]", size)
	}
}

func TestQuerySamplerDefaults(t *testing.T) {
	for _, k := range []Kind{Texture2D, Rectangle} {
		t.Run(k.String(), func(t *testing.T) {
			c, _ := newFixture(t, fullGL())
			tex := newTexture(t, c, k)
			if err := tex.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil)); err != nil {
				t.Fatal(err)
			}
			got, err := tex.QuerySampler()
			if err != nil {
				t.Fatal(err)
			}
			if want := defaultSampler(k); got != want {
				t.Errorf("QuerySampler() = %+v, want %+v", got, want)
			}
		})
	}
}
