package texture

import (
	"fmt"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/pixel"
)

// ImageSize queries the size of level from the driver, one entry per
// dimension. Cube maps report face +X. Needs level queries (GL, GLES 3.1).
func (t *Texture) ImageSize(level int) ([]int, error) {
	const op = "ImageSize"
	if err := t.alive(); err != nil {
		return nil, err
	}
	if !t.c.p.HasLevelQueries() {
		return nil, glhal.Unsupported(op, "texture level queries", t.c.p.Target.String())
	}
	if level < 0 {
		return nil, glhal.Violation(op, "negative level %d", level)
	}
	t.flush()
	target := t.faceTarget(0)
	pnames := [3]gl.Enum{gl.TEXTURE_WIDTH, gl.TEXTURE_HEIGHT, gl.TEXTURE_DEPTH}
	size := make([]int, t.kind.Dims())
	for i := range size {
		size[i] = int(t.acc.levelParameteri(target, level, pnames[i]))
	}
	if err := t.c.check(op); err != nil {
		return nil, err
	}
	return size, nil
}

// QuerySampler reads the sampling state back from the driver. Axes
// beyond the texture's dimension count, and anisotropy or border color
// without the capability, are taken from the recorded state.
func (t *Texture) QuerySampler() (Sampler, error) {
	const op = "QuerySampler"
	if err := t.alive(); err != nil {
		return Sampler{}, err
	}
	t.flush()
	target := t.kind.Target()
	s := t.sampler
	var v [4]float32
	get := func(pname gl.Enum) gl.Enum {
		t.acc.getParameterfv(target, pname, v[:])
		return gl.Enum(v[0])
	}

	var bad []string
	for i, pname := range wrapParams[:t.kind.Dims()] {
		e := get(pname)
		w, ok := wrappingFromNative(e)
		if !ok {
			bad = append(bad, fmt.Sprintf("%v=%v", pname, e))
		}
		s.Wrapping[i] = w
	}
	minFilter := get(gl.TEXTURE_MIN_FILTER)
	f, m, ok := minFilterFromNative(minFilter)
	if !ok {
		bad = append(bad, fmt.Sprintf("%v=%v", gl.TEXTURE_MIN_FILTER, minFilter))
	}
	s.Minification, s.Mipmap = f, m
	switch e := get(gl.TEXTURE_MAG_FILTER); e {
	case gl.NEAREST:
		s.Magnification = Nearest
	case gl.LINEAR:
		s.Magnification = Linear
	default:
		bad = append(bad, fmt.Sprintf("%v=%v", gl.TEXTURE_MAG_FILTER, e))
	}
	if t.c.p.HasAnisotropy() {
		t.acc.getParameterfv(target, gl.TEXTURE_MAX_ANISOTROPY, v[:])
		s.MaxAnisotropy = v[0]
	}
	if t.c.p.HasBorderClamp() {
		t.acc.getParameterfv(target, gl.TEXTURE_BORDER_COLOR, v[:])
		s.BorderColor = pixel.Color4{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
	if err := t.c.check(op); err != nil {
		return Sampler{}, err
	}
	if len(bad) > 0 {
		return Sampler{}, fmt.Errorf("texture: %s: unexpected driver values %v", op, bad)
	}
	return s, nil
}

// Image reads level back in format f. Desktop GL only; cube maps are not
// supported.
func (t *Texture) Image(level int, f pixel.Format) (pixel.Image, error) {
	const op = "Image"
	if err := t.alive(); err != nil {
		return pixel.Image{}, err
	}
	if !t.c.p.HasImageReadback() {
		return pixel.Image{}, glhal.Unsupported(op, "texture image readback", t.c.p.Target.String())
	}
	if t.kind == CubeMap {
		return pixel.Image{}, glhal.Violation(op, "cube map readback is not supported")
	}
	n, err := t.c.reg.Translate(f, 0)
	if err != nil {
		return pixel.Image{}, err
	}
	size, err := t.ImageSize(level)
	if err != nil {
		return pixel.Image{}, err
	}
	img := pixel.Image{Rank: len(size), Format: f}
	copy(img.Size[:], size)
	img.Data = make([]byte, img.Layout().Size)
	t.c.setPackAlignment(img.Storage.EffectiveAlignment())
	t.acc.readImage(t.kind.Target(), level, n.Format, n.Type, img.Data)
	if err := t.c.check(op); err != nil {
		return pixel.Image{}, err
	}
	return img, nil
}
