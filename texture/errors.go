package texture

import "errors"

// Texture errors. Contract violations and profile limitations are
// reported with glhal.ErrContract and glhal.ErrUnsupported instead.
var (
	// ErrDestroyed is returned when operating on a destroyed texture.
	ErrDestroyed = errors.New("texture: texture has been destroyed")

	// ErrDataSize is returned when RGBA data does not match the region.
	ErrDataSize = errors.New("texture: data size does not match region")

	// ErrRegion is returned when a region exceeds the texture bounds.
	ErrRegion = errors.New("texture: region exceeds texture bounds")

	// ErrNotRGBA is returned by the gpucontext adapters for textures whose
	// base level is not an RGBA8 2D image.
	ErrNotRGBA = errors.New("texture: base level is not a 2D RGBA8 image")
)
