package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/labtone/colorspace"
)

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("invalid hex color")

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// every other representation is derived from them through colorspace.
type Color struct {
	R, G, B uint8
}

// Node represents a palette entry that can be both a color and a namespace.
// Color is nil for namespace-only nodes (groups without a color attribute).
// Children is nil for leaf nodes (flat color attributes).
type Node struct {
	Color    *Color
	Children map[string]*Node
}

// Lookup resolves a dot-path (as segments) to a Color.
// Returns an error if the path is not found or the target node has no color.
func (n *Node) Lookup(path []string) (Color, error) {
	current := n
	for _, part := range path {
		if current.Children == nil {
			return Color{}, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
		}
		child, ok := current.Children[part]
		if !ok {
			return Color{}, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return Color{}, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return *current.Color, nil
}

// Walk calls fn for every node carrying a color, depth first with
// children in unspecified order. path holds the segments leading to the node.
func (n *Node) Walk(fn func(path []string, c Color)) {
	n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func([]string, Color)) {
	if n.Color != nil {
		fn(prefix, *n.Color)
	}
	for name, child := range n.Children {
		child.walk(append(prefix[:len(prefix):len(prefix)], name), fn)
	}
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w %q: must be 6 hex digits", ErrInvalidHex, s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidHex, s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// FromVec converts an sRGB vector in [0, 1] to a Color, saturating
// out-of-range channels and rounding to the nearest 8-bit step.
func FromVec(v colorspace.Vec3[float64]) Color {
	v = v.Saturate()
	return Color{
		R: uint8(math.Round(v.X * 255)),
		G: uint8(math.Round(v.Y * 255)),
		B: uint8(math.Round(v.Z * 255)),
	}
}

// Vec returns the color as an sRGB vector in [0, 1].
func (c Color) Vec() colorspace.Vec3[float64] {
	return colorspace.V3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// IsGray reports whether all three channels are equal.
func (c Color) IsGray() bool {
	return c.R == c.G && c.G == c.B
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns the color as an hsl() string with the hue in degrees,
// e.g. "hsl(343, 76%, 68%)".
func (c Color) HSL() string {
	hsl := c.hsl()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.X*360, hsl.Y*100, hsl.Z*100)
}

// HSV returns the color as an hsv() string, e.g. "hsv(343, 53%, 92%)".
func (c Color) HSV() string {
	hsv := colorspace.RGBToHSV(c.Vec())
	if c.IsGray() {
		hsv.X, hsv.Y = 0, 0
	}
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", hsv.X*360, hsv.Y*100, hsv.Z*100)
}

// Lab returns the CIE L*a*b* coordinates of the color under D65, with L in
// [0, 100].
func (c Color) Lab() colorspace.Vec3[float64] {
	return colorspace.XYZToLab(colorspace.RGBToXYZ(c.Vec()))
}

// LabString returns the color in CSS lab() notation, e.g.
// "lab(62.60% 51.30 4.20)".
func (c Color) LabString() string {
	lab := c.Lab()
	return fmt.Sprintf("lab(%.2f%% %.2f %.2f)", lab.X, lab.Y, lab.Z)
}

// hsl converts to HSL, reporting grays with zero hue and saturation
// instead of the epsilon-floored values colorspace produces.
func (c Color) hsl() colorspace.Vec3[float64] {
	hsl := colorspace.RGBToHSL(c.Vec())
	if c.IsGray() {
		hsl.X, hsl.Y = 0, 0
	}
	return hsl
}
