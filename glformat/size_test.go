package glformat

import (
	"errors"
	"testing"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		format gl.PixelFormat
		typ    gl.PixelType
		want   int
	}{
		{gl.RGBA, gl.UnsignedByte, 4},
		{gl.RGB, gl.UnsignedByte, 3},
		{gl.Red, gl.Float, 4},
		{gl.RG, gl.HalfFloat, 4},
		{gl.LuminanceAlpha, gl.HalfFloatOES, 4},
		{gl.RGBAInteger, gl.Int, 16},
		{gl.BGR, gl.UnsignedShort, 6},
		{gl.SRGBAlpha, gl.UnsignedByte, 4},
		{gl.DepthComponent, gl.UnsignedShort, 2},
		{gl.StencilIndex, gl.UnsignedByte, 1},
		{gl.RGB, gl.UnsignedByte332, 1},
		{gl.RGB, gl.UnsignedByte233Rev, 1},
		{gl.RGB, gl.UnsignedShort565, 2},
		{gl.RGBA, gl.UnsignedShort1555Rev, 2},
		{gl.RGBA, gl.UnsignedInt8888Rev, 4},
		{gl.RGB, gl.UnsignedInt5999Rev, 4},
		{gl.DepthStencil, gl.UnsignedInt248, 4},
		{gl.DepthStencil, gl.Float32UnsignedInt248Rev, 8},
	}
	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.typ.String(), func(t *testing.T) {
			got, err := PixelSize(tt.format, tt.typ)
			if err != nil {
				t.Fatalf("PixelSize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PixelSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPixelSizeContractViolations(t *testing.T) {
	tests := []struct {
		name   string
		format gl.PixelFormat
		typ    gl.PixelType
	}{
		{"depth stencil with float", gl.DepthStencil, gl.Float},
		{"depth stencil with byte", gl.DepthStencil, gl.UnsignedByte},
		{"unknown type", gl.RGBA, gl.PixelType(0xbe)},
		{"unknown format", gl.PixelFormat(0xdead), gl.UnsignedByte},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PixelSize(tt.format, tt.typ); !errors.Is(err, glhal.ErrContract) {
				t.Errorf("PixelSize() error = %v, want contract violation", err)
			}
		})
	}
}

func TestRegistryPixelSizeRejectsForeignValues(t *testing.T) {
	tests := []struct {
		target profile.Target
		format gl.PixelFormat
		typ    gl.PixelType
	}{
		{profile.GLES3, gl.RGBA, gl.UnsignedInt8888Rev},
		{profile.WebGL1, gl.Red, gl.UnsignedByte},
		{profile.GLES2, gl.RGBA, gl.HalfFloat},
		{profile.GLES3, gl.RGBA, gl.HalfFloatOES},
		{profile.GLES3, gl.Luminance, gl.UnsignedByte},
		{profile.WebGL2, gl.RGBA, gl.UnsignedShort4444Rev},
		{profile.WebGL2, gl.StencilIndex, gl.UnsignedByte},
		{profile.GLES2, gl.RGBAInteger, gl.UnsignedByte},
	}
	for _, tt := range tests {
		t.Run(tt.target.String()+"/"+tt.format.String()+"/"+tt.typ.String(), func(t *testing.T) {
			r := New(profile.Default(tt.target))
			if _, err := r.PixelSize(tt.format, tt.typ); !errors.Is(err, glhal.ErrUnsupported) {
				t.Errorf("PixelSize() error = %v, want ErrUnsupported", err)
			}
		})
	}
	r := New(profile.Default(profile.GL))
	if got, err := r.PixelSize(gl.BGRA, gl.UnsignedInt8888Rev); err != nil || got != 4 {
		t.Errorf("GL PixelSize(BGRA, 8888Rev) = %d, %v", got, err)
	}
}
