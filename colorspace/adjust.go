package colorspace

// ContrastLab changes the contrast of a normalized Lab color. Positive v
// pushes lightness away from mid-gray along a tanh curve and boosts chroma
// most around the midtones; negative v does the opposite at 60% strength.
// v = 0 returns the color unchanged.
//
// Chroma is scaled around 0, not around the neutral 0.5 of normalized Lab,
// so grays pick up a bias whenever the multiplier differs from 1.
func ContrastLab[T Float](lab Vec3[T], v T) Vec3[T] {
	if v <= 0 {
		v *= 0.6
	}

	l := lab.X
	curve := ((tanh(l*pi[T]()*2-pi[T]())+1)/2 + l) / 2
	l += (curve - l) * v

	var power T
	if v > 0 {
		d := l - 0.5
		power = 2 * (0.25 - d*d)
	} else {
		power = 0.35
	}
	m := 1 + v*power

	return ClipLab(Vec3[T]{l, lab.Y * m, lab.Z * m})
}

// ExposeLab changes the exposure of a normalized Lab color. Positive v
// lifts lightness along 1-(1-L)^2.8 and desaturates bright results;
// negative v darkens along 0.7*L^1.5.
//
// As with ContrastLab, chroma is scaled around 0 rather than 0.5.
func ExposeLab[T Float](lab Vec3[T], v T) Vec3[T] {
	l := lab.X

	var target T
	if v > 0 {
		target = 1 - pow(1-l, 2.8)
	} else {
		target = pow(l, 1.5) * 0.7
	}
	l += (target - l) * abs(v)

	var rate T
	if v > 0 {
		rate = (pow(l, 3.0) - 0.5) * 2
	} else {
		rate = (l - 0.8) * 0.1
	}
	m := max(0, 1-rate*v)

	return ClipLab(Vec3[T]{l, lab.Y * m, lab.Z * m})
}

// AdjustRGB runs an sRGB color through RGBToLab, ContrastLab, ExposeLab and
// LabToRGB, saturating the result. It is the per-pixel operation used for
// images.
func AdjustRGB[T Float](c Vec3[T], contrast, exposure T) Vec3[T] {
	lab := RGBToLab(c)
	if contrast != 0 {
		lab = ContrastLab(lab, contrast)
	}
	if exposure != 0 {
		lab = ExposeLab(lab, exposure)
	}
	return LabToRGB(lab).Saturate()
}
