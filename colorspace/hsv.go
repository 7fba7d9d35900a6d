package colorspace

const hsvEpsilon = 1e-10

// RGBToHSV converts sRGB to (hue, saturation, value) in [0, 1].
// The input is saturated first.
//
// The conversion is branchless: both channel orderings are computed and the
// right one is selected with Step/Mix, following Sam Hocevar's formulation.
func RGBToHSV[T Float](c Vec3[T]) Vec3[T] {
	c = c.Saturate()

	k := Vec4[T]{0, T(-1.0) / T(3.0), T(2.0) / T(3.0), -1}
	p := mix4(
		Vec4[T]{c.Z, c.Y, k.W, k.Z},
		Vec4[T]{c.Y, c.Z, k.X, k.Y},
		Step(c.Z, c.Y),
	)
	q := mix4(
		Vec4[T]{p.X, p.Y, p.W, c.X},
		Vec4[T]{c.X, p.Y, p.Z, p.X},
		Step(p.X, c.X),
	)

	d := q.X - min(q.W, q.Y)
	e := T(hsvEpsilon)
	return Vec3[T]{
		abs(q.Z + (q.W-q.Y)/(6*d+e)),
		d / (q.X + e),
		q.X,
	}
}

// HSVToRGB converts (hue, saturation, value) back to sRGB.
// The input is saturated first.
func HSVToRGB[T Float](c Vec3[T]) Vec3[T] {
	c = c.Saturate()

	k := Vec4[T]{1, T(2.0) / T(3.0), T(1.0) / T(3.0), 3}
	channel := func(offset T) T {
		p := abs(Fract(c.X+offset)*6 - k.W)
		return c.Z * Mix(k.X, Clamp(p-k.X, 0, 1), c.Y)
	}
	return Vec3[T]{channel(k.X), channel(k.Y), channel(k.Z)}
}
