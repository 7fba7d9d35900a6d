package colorspace

// hslEpsilon is the minimum spread kept between the largest and smallest
// channel so the hue and saturation divisions never see a zero denominator.
const hslEpsilon = 1e-6

// Hue2RGB reconstructs one RGB channel from the HSL auxiliaries p and q and
// a hue phase t. t is wrapped into [0, 1] by a single ±1 step, so callers
// must keep it within (-1, 2).
func Hue2RGB[T Float](p, q, t T) T {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < T(1.0)/T(6.0) {
		return p + (q-p)*6*t
	}
	if t < T(1.0)/T(2.0) {
		return q
	}
	if t < T(2.0)/T(3.0) {
		return p + (q-p)*(T(2.0)/T(3.0)-t)*6
	}
	return p
}

// RGBToHSL converts sRGB to (hue, saturation, lightness), all in [0, 1].
// The input is saturated first.
//
// An achromatic input reports hue 0, a saturation in the order of the
// 1e-6 floor and lightness within 1e-6 of the gray level.
func RGBToHSL[T Float](c Vec3[T]) Vec3[T] {
	c = c.Saturate()
	r, g, b := c.X, c.Y, c.Z

	top := max(r, g, b)
	lo := min(r, g, b)
	hi := max(lo+T(hslEpsilon), top)

	l := (lo + hi) / 2

	var s T
	if l < 0.5 {
		s = (hi - lo) / (lo + hi)
	} else {
		s = (hi - lo) / (2 - hi - lo)
	}

	// The sector is picked from the true maximum; hi may sit just above
	// every channel when the input is (nearly) gray.
	var h T
	switch top {
	case r:
		h = (g - b) / (hi - lo)
	case g:
		h = 2 + (b-r)/(hi-lo)
	default:
		h = 4 + (r-g)/(hi-lo)
	}
	h /= 6
	if h < 0 {
		h += 1
	}

	return Vec3[T]{h, s, l}
}

// HSLToRGB converts (hue, saturation, lightness) back to sRGB.
// The input is saturated first; a non-positive saturation yields gray.
func HSLToRGB[T Float](c Vec3[T]) Vec3[T] {
	c = c.Saturate()
	h, s, l := c.X, c.Y, c.Z

	if s <= 0 {
		return Splat(l)
	}

	var q T
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	third := T(1.0) / T(3.0)
	return Vec3[T]{
		Hue2RGB(p, q, h+third),
		Hue2RGB(p, q, h),
		Hue2RGB(p, q, h-third),
	}
}
