package color

import "github.com/jsvensson/labtone/colorspace"

// Brighten returns a brighter version of the given color by raising its HSL
// lightness by percentage (0.0 to 1.0).
func Brighten(c Color, percentage float64) Color {
	hsl := c.hsl()
	hsl.Z = min(1, hsl.Z+percentage)
	return FromVec(colorspace.HSLToRGB(hsl))
}

// Darken returns a darker version of the given color by lowering its HSL
// lightness by percentage (0.0 to 1.0).
func Darken(c Color, percentage float64) Color {
	hsl := c.hsl()
	hsl.Z = max(0, hsl.Z-percentage)
	return FromVec(colorspace.HSLToRGB(hsl))
}

// Saturate raises the HSL saturation by amount. Grays have no hue to
// saturate towards and are returned unchanged.
func Saturate(c Color, amount float64) Color {
	if c.IsGray() {
		return c
	}
	hsl := c.hsl()
	hsl.Y = min(1, hsl.Y+amount)
	return FromVec(colorspace.HSLToRGB(hsl))
}

// Desaturate lowers the HSL saturation by amount.
func Desaturate(c Color, amount float64) Color {
	hsl := c.hsl()
	hsl.Y = max(0, hsl.Y-amount)
	return FromVec(colorspace.HSLToRGB(hsl))
}

// Rotate shifts the hue by turns, where 1.0 is a full revolution.
func Rotate(c Color, turns float64) Color {
	hsl := c.hsl()
	hsl.X = colorspace.Fract(hsl.X + turns)
	return FromVec(colorspace.HSLToRGB(hsl))
}

// Contrast applies the Lab contrast curve with strength v in [-1, 1].
func Contrast(c Color, v float64) Color {
	lab := colorspace.RGBToLab(c.Vec())
	return FromVec(colorspace.LabToRGB(colorspace.ContrastLab(lab, v)))
}

// Expose applies the Lab exposure curve with strength v in [-1, 1].
func Expose(c Color, v float64) Color {
	lab := colorspace.RGBToLab(c.Vec())
	return FromVec(colorspace.LabToRGB(colorspace.ExposeLab(lab, v)))
}

// Mix interpolates between a and b in normalized Lab. t=0 yields a, t=1 yields b.
func Mix(a, b Color, t float64) Color {
	la := colorspace.RGBToLab(a.Vec())
	lb := colorspace.RGBToLab(b.Vec())
	return FromVec(colorspace.LabToRGB(la.Lerp(lb, t)))
}
