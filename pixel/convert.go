package pixel

import (
	"errors"
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrConvert is returned when a conversion between Go images and pixel
// data is not available for a format.
var ErrConvert = errors.New("pixel: conversion not supported for format")

// FromImage converts src into a 2D image in format f. Supported formats
// are RGBA8Unorm, RGBA8Srgb, BGRA8Unorm and R8Unorm. Row 0 of the result
// is the top row of src.
func FromImage(src image.Image, f Format) (Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	switch f {
	case RGBA8Unorm, RGBA8Srgb, BGRA8Unorm:
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		if f == BGRA8Unorm {
			for i := 0; i+3 < len(dst.Pix); i += 4 {
				dst.Pix[i], dst.Pix[i+2] = dst.Pix[i+2], dst.Pix[i]
			}
		}
		return NewImage2D(f, w, h, dst.Pix), nil
	case R8Unorm:
		dst := image.NewGray(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
		img := NewImage2D(f, w, h, dst.Pix)
		img.Storage.Alignment = 1
		return img, nil
	}
	return Image{}, fmt.Errorf("%w: %v", ErrConvert, f)
}

// ToImage converts a 1D or 2D image into a Go image. It supports the same
// formats as [FromImage].
func ToImage(img Image) (image.Image, error) {
	if img.Rank > 2 {
		return nil, fmt.Errorf("%w: rank %d", ErrConvert, img.Rank)
	}
	e := img.Extent()
	l := img.Layout()
	if len(img.Data) < l.Size {
		return nil, fmt.Errorf("pixel: image data too short: %d bytes, need %d", len(img.Data), l.Size)
	}
	r := image.Rect(0, 0, e[0], e[1])
	switch img.Format {
	case RGBA8Unorm, RGBA8Srgb, BGRA8Unorm:
		dst := image.NewNRGBA(r)
		for y := 0; y < e[1]; y++ {
			row := img.Data[l.At(0, y, 0):]
			copy(dst.Pix[y*dst.Stride:], row[:e[0]*4])
		}
		if img.Format == BGRA8Unorm {
			for i := 0; i+3 < len(dst.Pix); i += 4 {
				dst.Pix[i], dst.Pix[i+2] = dst.Pix[i+2], dst.Pix[i]
			}
		}
		return dst, nil
	case R8Unorm:
		dst := image.NewGray(r)
		for y := 0; y < e[1]; y++ {
			row := img.Data[l.At(0, y, 0):]
			copy(dst.Pix[y*dst.Stride:], row[:e[0]])
		}
		return dst, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrConvert, img.Format)
}

// MipLevelCount returns the number of levels in a full mip chain for the
// given extent: each level halves every axis until all reach 1.
func MipLevelCount(extent [3]int) int {
	m := max(extent[0], extent[1], extent[2])
	if m <= 0 {
		return 0
	}
	return 1 + int(math.Floor(math.Log2(float64(m))))
}

// MipChain computes a full mip chain for a 2D image on the CPU, for
// targets or formats where the driver cannot generate mipmaps. Level 0 is
// src itself. Each level is resampled from the previous one with a
// bilinear filter.
func MipChain(src Image) ([]Image, error) {
	if src.Rank != 2 {
		return nil, fmt.Errorf("%w: rank %d", ErrConvert, src.Rank)
	}
	prev, err := ToImage(src)
	if err != nil {
		return nil, err
	}
	n := MipLevelCount(src.Extent())
	levels := make([]Image, 0, n)
	levels = append(levels, src)
	for i := 1; i < n; i++ {
		pb := prev.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, max(1, pb.Dx()/2), max(1, pb.Dy()/2)))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), prev, pb, xdraw.Src, nil)
		level, err := FromImage(dst, src.Format)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
		prev = dst
	}
	return levels, nil
}
