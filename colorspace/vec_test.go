package colorspace

import "testing"

func TestMix(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 2, 8, 0, 2},
		{"end", 2, 8, 1, 8},
		{"middle", 2, 8, 0.5, 5},
		{"extrapolate", 0, 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.a, tt.b, tt.t); got != tt.want {
				t.Errorf("Mix(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestStep(t *testing.T) {
	if got := Step(0.5, 0.4); got != 0 {
		t.Errorf("Step(0.5, 0.4) = %v, want 0", got)
	}
	if got := Step(0.5, 0.5); got != 1 {
		t.Errorf("Step(0.5, 0.5) = %v, want 1", got)
	}
	if got := Step[float32](-1, 3); got != 1 {
		t.Errorf("Step(-1, 3) = %v, want 1", got)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{3, 0},
	}

	for _, tt := range tests {
		if got := Fract(tt.in); got != tt.want {
			t.Errorf("Fract(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSaturate(t *testing.T) {
	got := V3(-0.5, 0.25, 3.0).Saturate()
	want := V3(0.0, 0.25, 1.0)
	if got != want {
		t.Errorf("Saturate() = %v, want %v", got, want)
	}
	if Saturate(float32(1.5)) != 1 {
		t.Errorf("Saturate(1.5) != 1")
	}
}

func TestVec3Of(t *testing.T) {
	v := Vec3Of[float32](V3(0.5, 0.25, 1.0))
	if v != (Vec3[float32]{0.5, 0.25, 1}) {
		t.Errorf("Vec3Of = %v", v)
	}
}

func TestMatrixApply(t *testing.T) {
	m := Matrix3[float64]{
		{1, 2, 3},
		{0, 1, 0},
		{0, 0, 2},
	}
	got := m.Apply(V3(1.0, 1.0, 1.0))
	if want := V3(6.0, 1.0, 2.0); got != want {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	a, b := V3(0.0, 0.5, 1.0), V3(1.0, 0.5, 0.0)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got, want := a.Lerp(b, 0.5), V3(0.5, 0.5, 0.5); got != want {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
}
