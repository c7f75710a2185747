package pixel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func TestFromImageRoundTrip(t *testing.T) {
	for _, f := range []Format{RGBA8Unorm, RGBA8Srgb, BGRA8Unorm} {
		t.Run(f.String(), func(t *testing.T) {
			src := checker(3, 2)
			img, err := FromImage(src, f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Extent() != [3]int{3, 2, 1} || len(img.Data) != 24 {
				t.Fatalf("FromImage() extent %v, %d bytes", img.Extent(), len(img.Data))
			}
			back, err := ToImage(img)
			if err != nil {
				t.Fatal(err)
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					if got, want := back.At(x, y), src.At(x, y); got != want {
						t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFromImageBGRAOrder(t *testing.T) {
	img, err := FromImage(checker(1, 1), BGRA8Unorm)
	if err != nil {
		t.Fatal(err)
	}
	if img.Data[0] != 200 || img.Data[2] != 0 {
		t.Errorf("BGRA data = %v", img.Data)
	}
}

func TestFromImageGray(t *testing.T) {
	img, err := FromImage(image.NewGray(image.Rect(0, 0, 3, 3)), R8Unorm)
	if err != nil {
		t.Fatal(err)
	}
	if img.Storage.Alignment != 1 || len(img.Data) != 9 {
		t.Errorf("R8 image: alignment %d, %d bytes", img.Storage.Alignment, len(img.Data))
	}
	if err := img.Validate("test"); err != nil {
		t.Error(err)
	}
}

func TestFromImageUnsupported(t *testing.T) {
	if _, err := FromImage(checker(1, 1), RGBA32F); !errors.Is(err, ErrConvert) {
		t.Errorf("FromImage(RGBA32F) error = %v", err)
	}
	if _, err := ToImage(NewImage3D(RGBA8Unorm, 1, 1, 1, make([]byte, 4))); !errors.Is(err, ErrConvert) {
		t.Errorf("ToImage(3D) error = %v", err)
	}
}

func TestMipLevelCount(t *testing.T) {
	tests := []struct {
		extent [3]int
		want   int
	}{
		{[3]int{1, 1, 1}, 1},
		{[3]int{256, 256, 1}, 9},
		{[3]int{300, 2, 1}, 9},
		{[3]int{4, 4, 16}, 5},
		{[3]int{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		if got := MipLevelCount(tt.extent); got != tt.want {
			t.Errorf("MipLevelCount(%v) = %d, want %d", tt.extent, got, tt.want)
		}
	}
}

func TestMipChain(t *testing.T) {
	src, err := FromImage(checker(8, 4), RGBA8Unorm)
	if err != nil {
		t.Fatal(err)
	}
	levels, err := MipChain(src)
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]int{{8, 4, 1}, {4, 2, 1}, {2, 1, 1}, {1, 1, 1}}
	if len(levels) != len(want) {
		t.Fatalf("MipChain() returned %d levels, want %d", len(levels), len(want))
	}
	for i, l := range levels {
		if l.Extent() != want[i] {
			t.Errorf("level %d extent = %v, want %v", i, l.Extent(), want[i])
		}
		if err := l.Validate("test"); err != nil {
			t.Errorf("level %d: %v", i, err)
		}
	}
}
