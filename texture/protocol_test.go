package texture

import (
	"reflect"
	"testing"

	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/internal/softgl"
	"github.com/gogpu/glhal/pixel"
)

// configure drives a texture through a fixed sequence of setters and
// uploads shared by both protocols.
func configure(t *testing.T, tex *Texture) {
	t.Helper()
	steps := []func() error{
		func() error { return tex.SetWrapping(ClampToBorder, MirroredRepeat, ClampToEdge) },
		func() error { return tex.SetMinificationFilter(Linear, MipmapNearest) },
		func() error { return tex.SetMagnificationFilter(Nearest) },
		func() error { return tex.SetMaxAnisotropy(8) },
		func() error { return tex.SetBorderColor(pixel.RGBA(0.25, 0.5, 0.75, 1)) },
		func() error {
			return tex.SetImage(0, pixel.NewImage3D(pixel.RGBA8Unorm, 2, 2, 2, make([]byte, 32)))
		},
		func() error {
			layer := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
			return tex.SetSubImage(0, [3]int{0, 0, 1}, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, layer))
		},
		tex.GenerateMipmap,
		func() error { return tex.SetWrapping(Repeat) },
		tex.Flush,
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestProtocolsConverge(t *testing.T) {
	for _, kind := range []Kind{Texture3D, Texture2DArray} {
		t.Run(kind.String(), func(t *testing.T) {
			cb, db := newFixture(t, fullGL(), WithDirectStateAccess(false))
			cd, dd := newFixture(t, fullGL())
			if cb.DirectAccess() || !cd.DirectAccess() {
				t.Fatalf("protocols not as expected: bind=%v dsa=%v", cb.DirectAccess(), cd.DirectAccess())
			}

			tb := newTexture(t, cb, kind)
			td := newTexture(t, cd, kind)
			configure(t, tb)
			configure(t, td)

			sb, _ := db.Inspect(tb.Name())
			sd, _ := dd.Inspect(td.Name())
			if !reflect.DeepEqual(sb, sd) {
				t.Errorf("driver state differs:\n bind %+v\n dsa  %+v", sb, sd)
			}

			qb, err := tb.QuerySampler()
			if err != nil {
				t.Fatal(err)
			}
			qd, err := td.QuerySampler()
			if err != nil {
				t.Fatal(err)
			}
			if qb != qd {
				t.Errorf("queried sampler differs:\n bind %+v\n dsa  %+v", qb, qd)
			}
			if qb != tb.Sampler() {
				t.Errorf("queried sampler %+v, recorded %+v", qb, tb.Sampler())
			}

			if dd.Stats.BindTexture != 0 || dd.Stats.ActiveTexture != 0 {
				t.Errorf("direct access protocol touched bindings: %+v", dd.Stats)
			}
			if db.Stats.DirectAccess != 0 {
				t.Errorf("bind protocol used direct access: %+v", db.Stats)
			}
		})
	}
}

func TestDirectAccessLeavesBindingsAlone(t *testing.T) {
	c, d := newFixture(t, fullGL())
	a := newTexture(t, c, Texture2D)
	if err := a.Bind(0); err != nil {
		t.Fatal(err)
	}
	b := newTexture(t, c, Texture2D)
	if err := b.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, 1, 1, nil)); err != nil {
		t.Fatal(err)
	}
	want := map[gl.Enum]gl.Texture{gl.TEXTURE_2D: a.Name()}
	if got := d.Bindings(0); !reflect.DeepEqual(got, want) {
		t.Errorf("Bindings(0) = %v, want %v", got, want)
	}
	if got := d.Bindings(c.ScratchUnit()); len(got) != 0 {
		t.Errorf("scratch unit bindings = %v, want none", got)
	}
}

func TestCubeMapConverges(t *testing.T) {
	run := func(dsa bool) (softgl.State, error) {
		c, d := newFixture(t, fullGL(), WithDirectStateAccess(dsa))
		tex := newTexture(t, c, CubeMap)
		if err := tex.SetWrapping(ClampToEdge); err != nil {
			return softgl.State{}, err
		}
		for face := range 6 {
			data := make([]byte, 16)
			data[0] = byte(face)
			if err := tex.SetFaceImage(face, 0, pixel.NewImage2D(pixel.RGBA8Unorm, 2, 2, data)); err != nil {
				return softgl.State{}, err
			}
		}
		if err := tex.SetFaceSubImage(3, 0, [2]int{0, 1}, pixel.NewImage1D(pixel.RGBA8Unorm, 2, make([]byte, 8))); err != nil {
			return softgl.State{}, err
		}
		if err := tex.GenerateMipmap(); err != nil {
			return softgl.State{}, err
		}
		st, _ := d.Inspect(tex.Name())
		return st, nil
	}
	sb, err := run(false)
	if err != nil {
		t.Fatal(err)
	}
	sd, err := run(true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sb, sd) {
		t.Errorf("cube map state differs:\n bind %+v\n dsa  %+v", sb, sd)
	}
	if len(sb.Levels) != 12 {
		t.Errorf("cube map has %d images, want 12", len(sb.Levels))
	}
}
