package texture

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glhal/pixel"
)

var (
	_ gpucontext.Texture              = (*Texture)(nil)
	_ gpucontext.TextureUpdater       = (*Texture)(nil)
	_ gpucontext.TextureRegionUpdater = (*Texture)(nil)
	_ gpucontext.TextureCreator       = (*Context)(nil)
)

// Width returns the width of level 0, or 0 before the first upload.
func (t *Texture) Width() int {
	return t.levels[levelKey{0, 0}].size[0]
}

// Height returns the height of level 0, or 0 before the first upload.
// 1D textures have a height of 1.
func (t *Texture) Height() int {
	return t.levels[levelKey{0, 0}].size[1]
}

// rgba returns the level 0 size of a 2D RGBA8 texture.
func (t *Texture) rgba() (w, h int, err error) {
	if err := t.alive(); err != nil {
		return 0, 0, err
	}
	base, ok := t.levels[levelKey{0, 0}]
	if !ok || (t.kind != Texture2D && t.kind != Rectangle) ||
		(base.format != pixel.RGBA8Unorm && base.format != pixel.RGBA8Srgb) {
		return 0, 0, ErrNotRGBA
	}
	return base.size[0], base.size[1], nil
}

// UpdateData replaces level 0 of a 2D RGBA8 texture. data holds
// width*height*4 bytes.
func (t *Texture) UpdateData(data []byte) error {
	w, h, err := t.rgba()
	if err != nil {
		return err
	}
	if len(data) != w*h*4 {
		return ErrDataSize
	}
	f := t.levels[levelKey{0, 0}].format
	return t.SetSubImage(0, [3]int{}, pixel.NewImage2D(f, w, h, data))
}

// UpdateRegion replaces a rectangle of level 0 of a 2D RGBA8 texture.
// data holds densely packed rows of w*4 bytes.
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	tw, th, err := t.rgba()
	if err != nil {
		return err
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > tw || y+h > th {
		return ErrRegion
	}
	if len(data) != w*h*4 {
		return ErrDataSize
	}
	f := t.levels[levelKey{0, 0}].format
	return t.SetSubImage(0, [3]int{x, y, 0}, pixel.NewImage2D(f, w, h, data))
}

// NewTextureFromRGBA creates a linearly filtered, edge-clamped 2D texture
// without mip levels from RGBA8 data.
func (c *Context) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if len(data) != width*height*4 {
		return nil, ErrDataSize
	}
	t, err := c.NewTexture(Texture2D)
	if err != nil {
		return nil, err
	}
	err = t.SetSampler(Sampler{
		Wrapping:      [3]Wrapping{ClampToEdge, ClampToEdge, ClampToEdge},
		Minification:  Linear,
		Mipmap:        MipmapBase,
		Magnification: Linear,
		MaxAnisotropy: 1,
	})
	if err == nil {
		err = t.SetImage(0, pixel.NewImage2D(pixel.RGBA8Unorm, width, height, data))
	}
	if err != nil {
		_ = t.Destroy()
		return nil, err
	}
	return t, nil
}
