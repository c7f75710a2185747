package pixel

import (
	"github.com/gogpu/glhal"
)

// Storage describes how pixel rows and images are laid out in client
// memory. The zero value means tightly packed rows padded to 4 bytes.
type Storage struct {
	// Alignment is the row alignment in bytes: 1, 2, 4 or 8. Zero means 4.
	Alignment int
	// RowLength is the number of pixels per row in memory. Zero means the
	// image width.
	RowLength int
	// ImageHeight is the number of rows per image in memory. Zero means the
	// image height.
	ImageHeight int
	// Skip is the number of pixels, rows and images to skip before the
	// first pixel.
	Skip [3]int
}

// IsDefault reports whether s needs only the alignment setting.
func (s Storage) IsDefault() bool {
	return s.RowLength == 0 && s.ImageHeight == 0 && s.Skip == [3]int{}
}

// EffectiveAlignment returns the row alignment, defaulting to 4.
func (s Storage) EffectiveAlignment() int {
	if s.Alignment == 0 {
		return 4
	}
	return s.Alignment
}

// Layout is the resolved memory layout of an image.
type Layout struct {
	PixelSize   int
	RowStride   int
	ImageStride int
	Offset      int
	Size        int
}

// At returns the byte offset of pixel (x, y, z).
func (l Layout) At(x, y, z int) int {
	return l.Offset + z*l.ImageStride + y*l.RowStride + x*l.PixelSize
}

// ComputeLayout resolves s for an image of the given extent and pixel size.
// Size is the minimum number of bytes a conforming buffer must hold.
func (s Storage) ComputeLayout(extent [3]int, pixelSize int) Layout {
	rowLength := s.RowLength
	if rowLength == 0 {
		rowLength = extent[0]
	}
	imageHeight := s.ImageHeight
	if imageHeight == 0 {
		imageHeight = extent[1]
	}
	a := s.EffectiveAlignment()
	stride := (rowLength*pixelSize + a - 1) / a * a
	l := Layout{
		PixelSize:   pixelSize,
		RowStride:   stride,
		ImageStride: stride * imageHeight,
	}
	l.Offset = s.Skip[2]*l.ImageStride + s.Skip[1]*stride + s.Skip[0]*pixelSize
	if extent[0] == 0 || extent[1] == 0 || extent[2] == 0 {
		l.Size = 0
		return l
	}
	l.Size = l.At(extent[0]-1, extent[1]-1, extent[2]-1) + pixelSize
	return l
}

// Image describes uncompressed client pixel data of rank 1 to 3.
type Image struct {
	Rank int
	// Size holds the extent along each of the first Rank axes; unused axes
	// are ignored.
	Size   [3]int
	Format Format
	// FormatExtra is the native pixel type accompanying an
	// implementation-specific Format.
	FormatExtra uint32
	// PixelSize is required for implementation-specific formats and
	// ignored otherwise.
	PixelSize int
	Storage   Storage
	// Data may be nil to describe an allocation without contents.
	Data []byte
}

// NewImage1D describes a row of pixels.
func NewImage1D(f Format, width int, data []byte) Image {
	return Image{Rank: 1, Size: [3]int{width, 1, 1}, Format: f, Data: data}
}

// NewImage2D describes a 2D image.
func NewImage2D(f Format, width, height int, data []byte) Image {
	return Image{Rank: 2, Size: [3]int{width, height, 1}, Format: f, Data: data}
}

// NewImage3D describes a 3D image or a stack of 2D layers.
func NewImage3D(f Format, width, height, depth int, data []byte) Image {
	return Image{Rank: 3, Size: [3]int{width, height, depth}, Format: f, Data: data}
}

// NewNativeImage describes pixel data in an implementation-specific
// format/type pair. pixelSize must be the size of one pixel in bytes.
func NewNativeImage(rank int, size [3]int, format, typ uint32, pixelSize int, data []byte) Image {
	return Image{
		Rank:        rank,
		Size:        size,
		Format:      Wrap(format),
		FormatExtra: typ,
		PixelSize:   pixelSize,
		Data:        data,
	}
}

// Extent returns the image size with axes beyond Rank set to 1.
func (img Image) Extent() [3]int {
	return extent(img.Rank, img.Size)
}

// Pixel returns the size of one pixel in bytes.
func (img Image) Pixel() int {
	if img.Format.IsImplementationSpecific() {
		return img.PixelSize
	}
	return img.Format.Size()
}

// Layout resolves the memory layout of img.
func (img Image) Layout() Layout {
	return img.Storage.ComputeLayout(img.Extent(), img.Pixel())
}

// Validate checks img against the descriptor contract: rank within 1-3,
// non-negative extent, a known pixel size, a legal alignment and, when
// Data is non-nil, enough bytes for the layout.
func (img Image) Validate(op string) error {
	if img.Rank < 1 || img.Rank > 3 {
		return glhal.Violation(op, "image rank %d out of range", img.Rank)
	}
	if !img.Format.IsValid() {
		return glhal.Violation(op, "invalid pixel format %v", img.Format)
	}
	for i := 0; i < img.Rank; i++ {
		if img.Size[i] < 0 {
			return glhal.Violation(op, "negative image size %v", img.Size)
		}
	}
	if img.Pixel() <= 0 {
		return glhal.Violation(op, "pixel size of %v is unknown", img.Format)
	}
	switch img.Storage.EffectiveAlignment() {
	case 1, 2, 4, 8:
	default:
		return glhal.Violation(op, "row alignment %d is not 1, 2, 4 or 8", img.Storage.Alignment)
	}
	if img.Data != nil {
		if need := img.Layout().Size; len(img.Data) < need {
			return glhal.Violation(op, "image data too short: %d bytes, need %d", len(img.Data), need)
		}
	}
	return nil
}

// At returns the bytes of pixel (x, y, z). It panics if the pixel lies
// outside Data.
func (img Image) At(x, y, z int) []byte {
	l := img.Layout()
	o := l.At(x, y, z)
	return img.Data[o : o+l.PixelSize]
}

// CompressedImage describes block-compressed client pixel data.
type CompressedImage struct {
	Rank   int
	Size   [3]int
	Format CompressedFormat
	Data   []byte
}

// NewCompressedImage2D describes a 2D compressed image.
func NewCompressedImage2D(f CompressedFormat, width, height int, data []byte) CompressedImage {
	return CompressedImage{Rank: 2, Size: [3]int{width, height, 1}, Format: f, Data: data}
}

// NewCompressedImage3D describes a stack of compressed 2D layers.
func NewCompressedImage3D(f CompressedFormat, width, height, depth int, data []byte) CompressedImage {
	return CompressedImage{Rank: 3, Size: [3]int{width, height, depth}, Format: f, Data: data}
}

// Extent returns the image size with axes beyond Rank set to 1.
func (img CompressedImage) Extent() [3]int {
	return extent(img.Rank, img.Size)
}

// DataSize returns the number of bytes the image needs, or 0 when the
// format is implementation-specific.
func (img CompressedImage) DataSize() int {
	e := img.Extent()
	return img.Format.DataSize(e[0], e[1], e[2])
}

// Validate checks img against the descriptor contract.
func (img CompressedImage) Validate(op string) error {
	if img.Rank < 1 || img.Rank > 3 {
		return glhal.Violation(op, "image rank %d out of range", img.Rank)
	}
	if !img.Format.IsValid() {
		return glhal.Violation(op, "invalid compressed format %v", img.Format)
	}
	for i := 0; i < img.Rank; i++ {
		if img.Size[i] < 0 {
			return glhal.Violation(op, "negative image size %v", img.Size)
		}
	}
	if need := img.DataSize(); img.Data != nil && len(img.Data) < need {
		return glhal.Violation(op, "compressed data too short: %d bytes, need %d", len(img.Data), need)
	}
	return nil
}

func extent(rank int, size [3]int) [3]int {
	e := [3]int{1, 1, 1}
	for i := 0; i < rank && i < 3; i++ {
		e[i] = size[i]
	}
	return e
}
