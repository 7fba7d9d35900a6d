// Package colorspace converts colors between sRGB, HSL, HSV, CIE XYZ (D65)
// and CIELAB, and adjusts contrast and exposure in a normalized Lab space.
//
// Every function is generic over the element type (float32 or float64),
// takes its arguments by value and has no side effects, so any number of
// goroutines may call into the package at once.
//
// Lab values come in two shapes. Raw Lab has L in [0, 100] and a, b in
// roughly [-128, 127]; it is what [XYZToLab] and [LabToXYZ] produce and
// consume. Normalized Lab maps all three channels into [0, 1] and is what
// [RGBToLab], [LabToRGB], [ContrastLab] and [ExposeLab] work with:
//
//	L' = L / 100
//	a' = 0.5 + 0.5*a/127
//	b' = 0.5 + 0.5*b/127
//
// [NormalizeLab] and [DenormalizeLab] use a factor of 255 instead of 127 for
// the a and b channels. The two conventions are kept apart on purpose and
// mixing them shifts chroma slightly.
package colorspace
