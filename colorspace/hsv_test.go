package colorspace

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3[float32]
		want Vec3[float32]
	}{
		{"green", V3[float32](0, 1, 0), V3[float32](1.0/3, 1, 1)},
		{"red", V3[float32](1, 0, 0), V3[float32](0, 1, 1)},
		{"blue", V3[float32](0, 0, 1), V3[float32](2.0/3, 1, 1)},
		{"black", V3[float32](0, 0, 0), V3[float32](0, 0, 0)},
		{"gray", V3[float32](0.5, 0.5, 0.5), V3[float32](0, 0, 0.5)},
		{"steel", V3[float32](0.2, 0.4, 0.6), V3[float32](0.5833333, 0.6666667, 0.6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "RGBToHSV", RGBToHSV(tt.in), tt.want, 5e-4)
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3[float64]
		want Vec3[float64]
	}{
		{"zero saturation", V3(0.4, 0.0, 0.7), V3(0.7, 0.7, 0.7)},
		{"zero value", V3(0.4, 1.0, 0.0), V3(0.0, 0.0, 0.0)},
		{"yellow", V3(1.0/6, 1.0, 1.0), V3(1.0, 1.0, 0.0)},
		{"hue one is red", V3(1.0, 1.0, 1.0), V3(1.0, 0.0, 0.0)},
		{"half saturated blue", V3(2.0/3, 0.5, 0.8), V3(0.4, 0.4, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "HSVToRGB", HSVToRGB(tt.in), tt.want, 1e-9)
		})
	}
}

func TestHSVSaturatesInput(t *testing.T) {
	inputs := []Vec3[float32]{
		V3[float32](1.5, -0.2, 0.3),
		V3[float32](-1, 2, 0.5),
		V3[float32](0.4, 0.6, 7),
	}
	for _, c := range inputs {
		if got, want := RGBToHSV(c), RGBToHSV(c.Saturate()); got != want {
			t.Errorf("RGBToHSV(%v) = %v, want %v", c, got, want)
		}
		if got, want := HSVToRGB(c), HSVToRGB(c.Saturate()); got != want {
			t.Errorf("HSVToRGB(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		assertRoundTrip(t, RGBToHSV[float32], HSVToRGB[float32], 1e-4)
	})
	t.Run("float64", func(t *testing.T) {
		assertRoundTrip(t, RGBToHSV[float64], HSVToRGB[float64], 1e-4)
	})
}

func TestRGBToHSVMatchesColorful(t *testing.T) {
	for _, c := range grid[float64](6) {
		h, s, v := colorful.Color{R: c.X, G: c.Y, B: c.Z}.Hsv()
		got := RGBToHSV(c)

		dh := math.Abs(got.X - h/360)
		dh = math.Min(dh, 1-dh)
		if dh > 1e-6 || math.Abs(got.Y-s) > 1e-6 || math.Abs(got.Z-v) > 1e-12 {
			t.Errorf("RGBToHSV(%v) = %v, colorful says (%v, %v, %v)", c, got, h/360, s, v)
		}
	}
}
