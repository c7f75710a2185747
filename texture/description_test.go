package texture

import (
	"testing"

	"github.com/gogpu/glhal/gl"
)

func TestDescriptionApply(t *testing.T) {
	c, d := newFixture(t, fullGL())
	tex := newTexture(t, c, Texture2D)
	desc := Description{
		Kind:          Texture2D,
		Minification:  Linear,
		Magnification: Nearest,
		Mipmap:        MipmapNearest,
		// The third axis is ignored for 2D textures.
		Wrapping: [3]Wrapping{ClampToEdge, MirroredRepeat, ClampToBorder},
		Image:    3,
	}
	if err := desc.Apply(tex); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := tex.Flush(); err != nil {
		t.Fatal(err)
	}
	st, _ := d.Inspect(tex.Name())
	if st.Wrap != [3]gl.Enum{gl.CLAMP_TO_EDGE, gl.MIRRORED_REPEAT, gl.REPEAT} {
		t.Errorf("wrap = %v", st.Wrap)
	}
	if st.MinFilter != gl.LINEAR_MIPMAP_NEAREST || st.MagFilter != gl.NEAREST {
		t.Errorf("filters = %v/%v", st.MinFilter, st.MagFilter)
	}
}

func TestDescriptionApplyRejects(t *testing.T) {
	returnViolations(t)
	c, _ := newFixture(t, fullGL())

	cube := newTexture(t, c, CubeMap)
	wantContract(t, Description{Kind: Texture2D}.Apply(cube))

	rect := newTexture(t, c, Rectangle)
	wantContract(t, Description{Kind: Rectangle, Wrapping: [3]Wrapping{Repeat, Repeat, Repeat}}.Apply(rect))
	wantContract(t, Description{
		Kind:     Rectangle,
		Wrapping: [3]Wrapping{ClampToEdge, ClampToEdge},
		Mipmap:   MipmapLinear,
	}.Apply(rect))
}
