package colorspace

// Matrix3 holds a 3x3 matrix by rows.
type Matrix3[T Float] [3]Vec3[T]

// Apply returns (row0·v, row1·v, row2·v).
func (m Matrix3[T]) Apply(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// The coefficients are the rounded sRGB/D65 values and are kept as-is so
// results match other implementations of the same conversion bit for bit.
// They are not exact inverses of each other; a round trip through XYZ is
// accurate to about 3e-4.

// SRGBToXYZMatrix maps linear sRGB to XYZ with Y in [0, 1].
func SRGBToXYZMatrix[T Float]() Matrix3[T] {
	return Matrix3[T]{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
}

// XYZToSRGBMatrix maps XYZ with Y in [0, 1] to linear sRGB.
func XYZToSRGBMatrix[T Float]() Matrix3[T] {
	return Matrix3[T]{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}
}

// SRGBToLinear applies the sRGB decoding curve to one channel.
func SRGBToLinear[T Float](v T) T {
	if v > 0.04045 {
		return pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// LinearToSRGB applies the sRGB encoding curve to one channel.
func LinearToSRGB[T Float](v T) T {
	if v > 0.0031308 {
		return 1.055*pow(v, T(1.0)/T(2.4)) - 0.055
	}
	return 12.92 * v
}

// RGBToXYZ converts sRGB to CIE XYZ under D65, scaled so white has Y = 100.
// The input is not saturated.
func RGBToXYZ[T Float](c Vec3[T]) Vec3[T] {
	lin := c.Map(SRGBToLinear[T])
	return SRGBToXYZMatrix[T]().Apply(lin).Scale(100)
}

// XYZToRGB converts CIE XYZ (D65, Y in [0, 100]) to sRGB. Out-of-gamut
// colors produce channels outside [0, 1]; nothing is clamped.
func XYZToRGB[T Float](c Vec3[T]) Vec3[T] {
	lin := XYZToSRGBMatrix[T]().Apply(c.Div(Splat[T](100)))
	return lin.Map(LinearToSRGB[T])
}
