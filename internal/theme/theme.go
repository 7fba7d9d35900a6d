// Package theme bridges palette trees and HCL evaluation: it exposes the
// palette as cty values and registers the color functions palette files
// may call.
package theme

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ResolveColor extracts a color hex string from a cty.Value.
// If the value is a string, return it directly.
// If the value is an object, extract the "color" key.
func ResolveColor(val cty.Value) (string, error) {
	if !val.IsKnown() || val.IsNull() {
		return "", fmt.Errorf("color value is null or unknown")
	}
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("object has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected string or object with color attribute, got %s", val.Type().FriendlyName())
}

// ParseValue resolves val with ResolveColor and parses the result.
func ParseValue(val cty.Value) (color.Color, error) {
	hex, err := ResolveColor(val)
	if err != nil {
		return color.Color{}, err
	}
	return color.ParseHex(hex)
}

// NodeToCty converts a color.Node to a cty.Value for HCL evaluation context.
// Leaf nodes (no children) become cty.StringVal.
// Nodes with children become cty.ObjectVal, with "color" as a sibling key if the node has its own color.
func NodeToCty(node *color.Node) cty.Value {
	if node.Children == nil {
		if node.Color != nil {
			return cty.StringVal(node.Color.Hex())
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(node.Children)+1)

	if node.Color != nil {
		vals["color"] = cty.StringVal(node.Color.Hex())
	}

	keys := make([]string, 0, len(node.Children))
	for k := range node.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals[k] = NodeToCty(node.Children[k])
	}

	return cty.ObjectVal(vals)
}

// Functions returns every color function available to palette files,
// keyed by the name they are called with.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"brighten":   makeAdjustFunc("Raises HSL lightness by the given amount (0.0 to 1.0)", "percentage", unbounded, color.Brighten),
		"darken":     makeAdjustFunc("Lowers HSL lightness by the given amount (0.0 to 1.0)", "percentage", unbounded, color.Darken),
		"saturate":   makeAdjustFunc("Raises HSL saturation by the given amount (0.0 to 1.0)", "amount", unbounded, color.Saturate),
		"desaturate": makeAdjustFunc("Lowers HSL saturation by the given amount (0.0 to 1.0)", "amount", unbounded, color.Desaturate),
		"rotate":     makeAdjustFunc("Rotates the hue by the given fraction of a turn", "turns", unbounded, color.Rotate),
		"contrast":   makeAdjustFunc("Applies the Lab contrast curve (-1.0 to 1.0)", "strength", unitRange, color.Contrast),
		"expose":     makeAdjustFunc("Applies the Lab exposure curve (-1.0 to 1.0)", "strength", unitRange, color.Expose),
		"hsl":        makeSpaceFunc("Builds a color from hue, saturation and lightness, each 0.0 to 1.0", [3]string{"h", "s", "l"}, hslToColor),
		"hsv":        makeSpaceFunc("Builds a color from hue, saturation and value, each 0.0 to 1.0", [3]string{"h", "s", "v"}, hsvToColor),
		"lab":        makeSpaceFunc("Builds a color from normalized L, a and b, each 0.0 to 1.0", [3]string{"l", "a", "b"}, labToColor),
		"mix":        makeMixFunc(),
	}
}

// BuildEvalContext creates an HCL evaluation context with palette variables
// and the color functions.
func BuildEvalContext(palette *color.Node) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": NodeToCty(palette),
		},
		Functions: Functions(),
	}
}
