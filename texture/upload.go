package texture

import (
	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/glformat"
	"github.com/gogpu/glhal/pixel"
)

// faceTarget returns the upload target for face of the texture.
func (t *Texture) faceTarget(face int) gl.Enum {
	if t.kind == CubeMap {
		return gl.CubeMapFace(face)
	}
	return t.kind.Target()
}

func (t *Texture) checkLevel(op string, level int) error {
	if level < 0 {
		return glhal.Violation(op, "negative level %d", level)
	}
	if level > 0 && !t.kind.SupportsMipmaps() {
		return glhal.Violation(op, "%v textures have only level 0", t.kind)
	}
	return nil
}

func (t *Texture) checkFace(op string, face int) error {
	if t.kind != CubeMap {
		return glhal.Violation(op, "%v textures have no faces", t.kind)
	}
	if face < 0 || face >= 6 {
		return glhal.Violation(op, "cube map face %d out of range [0, 6)", face)
	}
	return nil
}

// checkSubRank enforces the sub-upload rank rule: an image of the
// texture's rank, or one less, which is then a single layer along the
// last axis.
func (t *Texture) checkSubRank(op string, rank int, offset [3]int) error {
	dims := t.kind.Dims()
	if rank != dims && rank != dims-1 {
		return glhal.Violation(op, "rank %d image for a %d-dimensional texture", rank, dims)
	}
	for i := range dims {
		if offset[i] < 0 {
			return glhal.Violation(op, "negative offset %v", offset[:dims])
		}
	}
	return nil
}

// SetImage allocates level and uploads img into it. The internal format
// is the registry's choice for img.Format on the context's profile.
// img.Data may be nil to allocate without uploading.
func (t *Texture) SetImage(level int, img pixel.Image) error {
	const op = "SetImage"
	if t.kind == CubeMap {
		return glhal.Violation(op, "cube map images are set per face")
	}
	return t.setImage(op, 0, level, 0, img)
}

// SetImageWithFormat is like SetImage with an explicit internal format.
func (t *Texture) SetImageWithFormat(level int, internal gl.TextureFormat, img pixel.Image) error {
	const op = "SetImageWithFormat"
	if t.kind == CubeMap {
		return glhal.Violation(op, "cube map images are set per face")
	}
	if internal == 0 {
		return glhal.Violation(op, "zero internal format")
	}
	return t.setImage(op, 0, level, internal, img)
}

// SetFaceImage allocates level of cube map face (+X, -X, +Y, -Y, +Z, -Z)
// and uploads img into it.
func (t *Texture) SetFaceImage(face, level int, img pixel.Image) error {
	const op = "SetFaceImage"
	if err := t.checkFace(op, face); err != nil {
		return err
	}
	return t.setImage(op, face, level, 0, img)
}

func (t *Texture) setImage(op string, face, level int, internal gl.TextureFormat, img pixel.Image) error {
	if err := t.alive(); err != nil {
		return err
	}
	if err := img.Validate(op); err != nil {
		return err
	}
	if dims := t.kind.Dims(); img.Rank != dims {
		return glhal.Violation(op, "rank %d image for a %d-dimensional texture", img.Rank, dims)
	}
	if err := t.checkLevel(op, level); err != nil {
		return err
	}
	n, err := t.c.reg.Translate(img.Format, img.FormatExtra)
	if err != nil {
		return err
	}
	if internal == 0 {
		internal = n.Internal
	}
	t.flush()
	if err := t.c.setUnpack(op, img.Storage); err != nil {
		return err
	}
	shapes[t.kind.Dims()].image(t.acc, t.faceTarget(face), level, internal, img.Extent(), n.Format, n.Type, img.Data)
	if err := t.c.check(op); err != nil {
		return err
	}
	t.levels[levelKey{face, level}] = levelInfo{size: img.Extent(), format: img.Format}
	return nil
}

// SetSubImage uploads img into level at offset. An image of one rank less
// than the texture fills the single layer offset[Dims()-1]: a layer of an
// array, a slice of a 3D texture or a row of a 2D texture. Bounds are
// checked by the driver.
func (t *Texture) SetSubImage(level int, offset [3]int, img pixel.Image) error {
	const op = "SetSubImage"
	if t.kind == CubeMap {
		return glhal.Violation(op, "cube map images are set per face")
	}
	return t.setSubImage(op, 0, level, offset, img)
}

// SetFaceSubImage uploads img into level of a cube map face at offset.
// A rank 1 image fills the row offset[1].
func (t *Texture) SetFaceSubImage(face, level int, offset [2]int, img pixel.Image) error {
	const op = "SetFaceSubImage"
	if err := t.checkFace(op, face); err != nil {
		return err
	}
	return t.setSubImage(op, face, level, [3]int{offset[0], offset[1], 0}, img)
}

func (t *Texture) setSubImage(op string, face, level int, offset [3]int, img pixel.Image) error {
	if err := t.alive(); err != nil {
		return err
	}
	if err := img.Validate(op); err != nil {
		return err
	}
	if err := t.checkSubRank(op, img.Rank, offset); err != nil {
		return err
	}
	if err := t.checkLevel(op, level); err != nil {
		return err
	}
	n, err := t.c.reg.Translate(img.Format, img.FormatExtra)
	if err != nil {
		return err
	}
	t.flush()
	if err := t.c.setUnpack(op, img.Storage); err != nil {
		return err
	}
	shapes[t.kind.Dims()].subImage(t.acc, t.faceTarget(face), level, offset, img.Extent(), n.Format, n.Type, img.Data)
	return t.c.check(op)
}

func (t *Texture) compressedFormat(op string, img pixel.CompressedImage) (gl.CompressedPixelFormat, error) {
	if err := img.Validate(op); err != nil {
		return 0, err
	}
	if t.kind.Dims() == 1 {
		return 0, glhal.Violation(op, "no compressed formats exist for %v textures", t.kind)
	}
	return t.c.reg.CompressedPixelFormat(img.Format)
}

// SetCompressedImage allocates level from block-compressed data.
func (t *Texture) SetCompressedImage(level int, img pixel.CompressedImage) error {
	const op = "SetCompressedImage"
	if t.kind == CubeMap {
		return glhal.Violation(op, "cube map images are set per face")
	}
	return t.setCompressedImage(op, 0, level, img)
}

// SetFaceCompressedImage allocates level of a cube map face from
// block-compressed data.
func (t *Texture) SetFaceCompressedImage(face, level int, img pixel.CompressedImage) error {
	const op = "SetFaceCompressedImage"
	if err := t.checkFace(op, face); err != nil {
		return err
	}
	return t.setCompressedImage(op, face, level, img)
}

func (t *Texture) setCompressedImage(op string, face, level int, img pixel.CompressedImage) error {
	if err := t.alive(); err != nil {
		return err
	}
	format, err := t.compressedFormat(op, img)
	if err != nil {
		return err
	}
	if dims := t.kind.Dims(); img.Rank != dims {
		return glhal.Violation(op, "rank %d image for a %d-dimensional texture", img.Rank, dims)
	}
	if err := t.checkLevel(op, level); err != nil {
		return err
	}
	t.flush()
	shapes[t.kind.Dims()].compressed(t.acc, t.faceTarget(face), level, format, img.Extent(), img.Data)
	if err := t.c.check(op); err != nil {
		return err
	}
	t.levels[levelKey{face, level}] = levelInfo{size: img.Extent(), compressed: true}
	return nil
}

// SetCompressedSubImage uploads block-compressed data into level at
// offset, following the same rank rule as SetSubImage. Offsets must be
// multiples of the block size; the driver checks this.
func (t *Texture) SetCompressedSubImage(level int, offset [3]int, img pixel.CompressedImage) error {
	const op = "SetCompressedSubImage"
	if t.kind == CubeMap {
		return glhal.Violation(op, "cube map images are set per face")
	}
	return t.setCompressedSubImage(op, 0, level, offset, img)
}

// SetFaceCompressedSubImage uploads block-compressed data into level of a
// cube map face at offset.
func (t *Texture) SetFaceCompressedSubImage(face, level int, offset [2]int, img pixel.CompressedImage) error {
	const op = "SetFaceCompressedSubImage"
	if err := t.checkFace(op, face); err != nil {
		return err
	}
	return t.setCompressedSubImage(op, face, level, [3]int{offset[0], offset[1], 0}, img)
}

func (t *Texture) setCompressedSubImage(op string, face, level int, offset [3]int, img pixel.CompressedImage) error {
	if err := t.alive(); err != nil {
		return err
	}
	format, err := t.compressedFormat(op, img)
	if err != nil {
		return err
	}
	if err := t.checkSubRank(op, img.Rank, offset); err != nil {
		return err
	}
	if err := t.checkLevel(op, level); err != nil {
		return err
	}
	t.flush()
	shapes[t.kind.Dims()].compressedSub(t.acc, t.faceTarget(face), level, offset, img.Extent(), format, img.Data)
	return t.c.check(op)
}

// Native returns the native representation an upload of f would use.
func (t *Texture) Native(f pixel.Format, extra uint32) (glformat.Native, error) {
	return t.c.reg.Translate(f, extra)
}
