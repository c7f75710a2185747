package pixel

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-3 }

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color4
		ok   bool
	}{
		{"#fff", Color4{1, 1, 1, 1}, true},
		{"f008", Color4{1, 0, 0, 0x88 / 255.0}, true},
		{"00ff00", Color4{0, 1, 0, 1}, true},
		{"#0000ff80", Color4{0, 0, 1, 0x80 / 255.0}, true},
		{"12345", Color4{}, false},
		{"zzz", Color4{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.ok {
				t.Fatalf("Hex() ok = %v, want %v", ok, tt.ok)
			}
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
				t.Errorf("Hex() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromColorUnpremultiplies(t *testing.T) {
	c := FromColor(color.RGBA{R: 64, G: 0, B: 0, A: 128})
	if math.Abs(float64(c.R)-0.5) > 0.01 || !near(c.A, 128/255.0) {
		t.Errorf("FromColor() = %+v", c)
	}
	if got := c.NRGBA(); got.R != 127 && got.R != 128 {
		t.Errorf("NRGBA().R = %d", got.R)
	}
}

func TestSrgbRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.002, 0.04, 0.2, 0.5, 0.9, 1} {
		c := Color4{v, v, v, 0.5}
		back := c.ToLinear().ToSrgb()
		if !near(back.R, v) || back.A != 0.5 {
			t.Errorf("round trip of %v = %+v", v, back)
		}
	}
	if got := (Color4{R: 0.5}).ToLinear().R; !near(got, 0.214) {
		t.Errorf("ToLinear(0.5) = %v", got)
	}
}

func TestSlice(t *testing.T) {
	s := RGBA(0.1, 0.2, 0.3, 0.4).Slice()
	if len(s) != 4 || s[0] != 0.1 || s[3] != 0.4 {
		t.Errorf("Slice() = %v", s)
	}
}
