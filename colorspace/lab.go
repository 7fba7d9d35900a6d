package colorspace

// D65White is the XYZ of the D65 reference white, scaled to Y = 100.
func D65White[T Float]() Vec3[T] {
	return Vec3[T]{95.047, 100, 108.883}
}

const (
	labThreshold    = 0.008856 // (6/29)^3, rounded
	labInvThreshold = 0.206897 // 6/29, rounded
	labSlope        = 7.787
	labOffset       = 16.0 / 116.0
)

// labChroma is the a/b scale used by RGBToLab and LabToRGB.
const labChroma = 127

// labStorage is the a/b scale used by NormalizeLab and DenormalizeLab.
const labStorage = 255

func labF[T Float](n T) T {
	if n > labThreshold {
		return pow(n, T(1.0)/T(3.0))
	}
	return labSlope*n + T(labOffset)
}

func labFInv[T Float](f T) T {
	if f > labInvThreshold {
		return f * f * f
	}
	return (f - T(labOffset)) / labSlope
}

// XYZToLab converts XYZ (D65, Y in [0, 100]) to raw CIELAB with L in
// [0, 100].
func XYZToLab[T Float](c Vec3[T]) Vec3[T] {
	v := c.Div(D65White[T]()).Map(labF[T])
	return Vec3[T]{
		116*v.Y - 16,
		500 * (v.X - v.Y),
		200 * (v.Y - v.Z),
	}
}

// LabToXYZ converts raw CIELAB back to XYZ (D65, Y in [0, 100]).
func LabToXYZ[T Float](c Vec3[T]) Vec3[T] {
	fy := (c.X + 16) / 116
	fx := c.Y/500 + fy
	fz := fy - c.Z/200
	return Vec3[T]{labFInv(fx), labFInv(fy), labFInv(fz)}.Mul(D65White[T]())
}

// RGBToLab converts sRGB to normalized Lab, every channel in [0, 1] for
// in-gamut colors.
func RGBToLab[T Float](c Vec3[T]) Vec3[T] {
	lab := XYZToLab(RGBToXYZ(c))
	return Vec3[T]{
		lab.X / 100,
		0.5 + 0.5*(lab.Y/labChroma),
		0.5 + 0.5*(lab.Z/labChroma),
	}
}

// LabToRGB converts normalized Lab back to sRGB. Nothing is clamped.
func LabToRGB[T Float](c Vec3[T]) Vec3[T] {
	raw := Vec3[T]{
		100 * c.X,
		2 * labChroma * (c.Y - 0.5),
		2 * labChroma * (c.Z - 0.5),
	}
	return XYZToRGB(LabToXYZ(raw))
}

// DenormalizeLab maps the a and b channels from [0, 1] to [-127.5, 127.5]
// using a factor of 255. L passes through unchanged.
func DenormalizeLab[T Float](c Vec3[T]) Vec3[T] {
	c.Y = (c.Y - 0.5) * labStorage
	c.Z = (c.Z - 0.5) * labStorage
	return c
}

// NormalizeLab is the inverse of DenormalizeLab.
func NormalizeLab[T Float](c Vec3[T]) Vec3[T] {
	c.Y = c.Y/labStorage + 0.5
	c.Z = c.Z/labStorage + 0.5
	return c
}

// ClipLab clamps L to [0, 1] and a, b to [-127, 127].
func ClipLab[T Float](c Vec3[T]) Vec3[T] {
	return Vec3[T]{
		Clamp(c.X, 0, 1),
		Clamp(c.Y, -labChroma, labChroma),
		Clamp(c.Z, -labChroma, labChroma),
	}
}
