package texture

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

// Kind identifies a texture variant. Several kinds share a dimension
// count and differ in bind target and capabilities.
type Kind uint8

const (
	Texture1D Kind = iota
	Texture2D
	Texture3D
	Texture1DArray
	Texture2DArray
	// Rectangle is a non-mipmapped 2D texture addressed in texels. It
	// allows only clamping wrap modes.
	Rectangle
	// CubeMap is six square 2D faces uploaded separately through the
	// Face* methods.
	CubeMap

	kindCount
)

type kindInfo struct {
	name      string
	dims      int
	target    gl.Enum
	layered   bool
	repeat    bool
	mipmaps   bool
	faces     int
	view      gputypes.TextureViewDimension
	available func(profile.Profile) bool
}

func always(profile.Profile) bool { return true }

var kinds = [kindCount]kindInfo{
	Texture1D: {
		name: "Texture1D", dims: 1, target: gl.TEXTURE_1D, repeat: true, mipmaps: true, faces: 1,
		view: gputypes.TextureViewDimension1D, available: profile.Profile.HasTexture1D,
	},
	Texture2D: {
		name: "Texture2D", dims: 2, target: gl.TEXTURE_2D, repeat: true, mipmaps: true, faces: 1,
		view: gputypes.TextureViewDimension2D, available: always,
	},
	Texture3D: {
		name: "Texture3D", dims: 3, target: gl.TEXTURE_3D, repeat: true, mipmaps: true, faces: 1,
		view: gputypes.TextureViewDimension3D, available: profile.Profile.HasTexture3D,
	},
	Texture1DArray: {
		name: "Texture1DArray", dims: 2, target: gl.TEXTURE_1D_ARRAY, layered: true, repeat: true, mipmaps: true, faces: 1,
		view: gputypes.TextureViewDimensionUndefined, available: profile.Profile.HasTexture1D,
	},
	Texture2DArray: {
		name: "Texture2DArray", dims: 3, target: gl.TEXTURE_2D_ARRAY, layered: true, repeat: true, mipmaps: true, faces: 1,
		view: gputypes.TextureViewDimension2DArray, available: profile.Profile.HasTextureArray,
	},
	Rectangle: {
		name: "Rectangle", dims: 2, target: gl.TEXTURE_RECTANGLE, faces: 1,
		view: gputypes.TextureViewDimension2D, available: profile.Profile.HasTextureRectangle,
	},
	CubeMap: {
		name: "CubeMap", dims: 2, target: gl.TEXTURE_CUBE_MAP, repeat: true, mipmaps: true, faces: 6,
		view: gputypes.TextureViewDimensionCube, available: always,
	},
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	return []Kind{Texture1D, Texture2D, Texture3D, Texture1DArray, Texture2DArray, Rectangle, CubeMap}
}

func (k Kind) String() string {
	if k < kindCount {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%#x)", uint8(k))
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool { return k < kindCount }

// info returns the table row of k. Unknown kinds get the zero row, so
// every accessor reports zero values for them.
func (k Kind) info() kindInfo {
	if k < kindCount {
		return kinds[k]
	}
	return kindInfo{}
}

// Dims returns the number of image dimensions of k. Cube maps have two.
func (k Kind) Dims() int { return k.info().dims }

// Target returns the bind target of k.
func (k Kind) Target() gl.Enum { return k.info().target }

// IsLayered reports whether the last axis of k indexes array layers.
func (k Kind) IsLayered() bool { return k.info().layered }

// LayerAxis returns the axis a lower-rank sub-image is stacked along: the
// layer of an array, the slice of a 3D texture, the row of a 2D texture.
// Unknown kinds report 0.
func (k Kind) LayerAxis() int { return max(k.info().dims-1, 0) }

// Faces returns the number of faces: 6 for cube maps, 1 otherwise.
func (k Kind) Faces() int { return k.info().faces }

// SupportsRepeat reports whether repeating wrap modes are allowed.
func (k Kind) SupportsRepeat() bool { return k.info().repeat }

// SupportsMipmaps reports whether k can have levels above zero.
func (k Kind) SupportsMipmaps() bool { return k.info().mipmaps }

// IsAvailable reports whether p can create textures of kind k.
func (k Kind) IsAvailable(p profile.Profile) bool {
	return k < kindCount && kinds[k].available(p)
}

// ViewDimension returns the matching view dimension. 1D arrays have no
// equivalent and report TextureViewDimensionUndefined.
func (k Kind) ViewDimension() gputypes.TextureViewDimension { return k.info().view }

// KindFromViewDimension returns the kind a view dimension describes.
// Cube arrays have no equivalent.
func KindFromViewDimension(v gputypes.TextureViewDimension) (Kind, bool) {
	for k := range kindCount {
		if k != Rectangle && kinds[k].view == v && v != gputypes.TextureViewDimensionUndefined {
			return k, true
		}
	}
	return 0, false
}

// shape holds the native entry points for one dimension count. Offsets
// and sizes are always three components; the unused ones are ignored.
type shape struct {
	image         func(a access, target gl.Enum, level int, internal gl.TextureFormat, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	subImage      func(a access, target gl.Enum, level int, off, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte)
	compressed    func(a access, target gl.Enum, level int, format gl.CompressedPixelFormat, size [3]int, data []byte)
	compressedSub func(a access, target gl.Enum, level int, off, size [3]int, format gl.CompressedPixelFormat, data []byte)
}

// shapes is indexed by dimension count. There are no 1D compressed
// formats, so shapes[1] has no compressed entry points.
var shapes = [4]shape{
	1: {
		image: func(a access, target gl.Enum, level int, internal gl.TextureFormat, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.image1D(target, level, internal, size[0], format, typ, data)
		},
		subImage: func(a access, target gl.Enum, level int, off, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.subImage1D(target, level, off[0], size[0], format, typ, data)
		},
	},
	2: {
		image: func(a access, target gl.Enum, level int, internal gl.TextureFormat, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.image2D(target, level, internal, size[0], size[1], format, typ, data)
		},
		subImage: func(a access, target gl.Enum, level int, off, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.subImage2D(target, level, off[0], off[1], size[0], size[1], format, typ, data)
		},
		compressed: func(a access, target gl.Enum, level int, format gl.CompressedPixelFormat, size [3]int, data []byte) {
			a.compressedImage2D(target, level, format, size[0], size[1], data)
		},
		compressedSub: func(a access, target gl.Enum, level int, off, size [3]int, format gl.CompressedPixelFormat, data []byte) {
			a.compressedSubImage2D(target, level, off[0], off[1], size[0], size[1], format, data)
		},
	},
	3: {
		image: func(a access, target gl.Enum, level int, internal gl.TextureFormat, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.image3D(target, level, internal, size[0], size[1], size[2], format, typ, data)
		},
		subImage: func(a access, target gl.Enum, level int, off, size [3]int, format gl.PixelFormat, typ gl.PixelType, data []byte) {
			a.subImage3D(target, level, off[0], off[1], off[2], size[0], size[1], size[2], format, typ, data)
		},
		compressed: func(a access, target gl.Enum, level int, format gl.CompressedPixelFormat, size [3]int, data []byte) {
			a.compressedImage3D(target, level, format, size[0], size[1], size[2], data)
		},
		compressedSub: func(a access, target gl.Enum, level int, off, size [3]int, format gl.CompressedPixelFormat, data []byte) {
			a.compressedSubImage3D(target, level, off[0], off[1], off[2], size[0], size[1], size[2], format, data)
		},
	},
}
