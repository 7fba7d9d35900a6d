package theme

import (
	"github.com/jsvensson/labtone/colorspace"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

type bounds struct {
	lo, hi float64
	check  bool
}

var (
	unbounded = bounds{}
	unitRange = bounds{lo: -1, hi: 1, check: true}
	unitSpan  = bounds{lo: 0, hi: 1, check: true}
)

func colorParam() function.Parameter {
	return function.Parameter{
		Name: "color",
		// Dynamic so a palette group with its own color can be passed directly.
		Type: cty.DynamicPseudoType,
	}
}

func numberArg(args []cty.Value, i int, b bounds) (float64, error) {
	v, _ := args[i].AsBigFloat().Float64()
	if b.check && (v < b.lo || v > b.hi) {
		return 0, function.NewArgErrorf(i, "must be between %g and %g, got %g", b.lo, b.hi, v)
	}
	return v, nil
}

func colorArg(args []cty.Value, i int) (color.Color, error) {
	c, err := ParseValue(args[i])
	if err != nil {
		return color.Color{}, function.NewArgError(i, err)
	}
	return c, nil
}

// makeAdjustFunc creates an HCL function taking a color and a number and
// returning the adjusted color as a hex string.
// Usage: brighten("#hex", 0.1) or contrast(palette.color, 0.3)
func makeAdjustFunc(description, param string, b bounds, adjust func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: description,
		Params: []function.Parameter{
			colorParam(),
			{
				Name: param,
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorArg(args, 0)
			if err != nil {
				return cty.NilVal, err
			}
			v, err := numberArg(args, 1, b)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(adjust(c, v).Hex()), nil
		},
	})
}

// makeSpaceFunc creates an HCL function building a color from three
// components of another color space, each in [0, 1].
// Usage: hsl(0.95, 0.75, 0.68)
func makeSpaceFunc(description string, names [3]string, convert func(colorspace.Vec3[float64]) color.Color) function.Function {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return function.New(&function.Spec{
		Description: description,
		Params:      params,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var v [3]float64
			for i := range v {
				n, err := numberArg(args, i, unitSpan)
				if err != nil {
					return cty.NilVal, err
				}
				v[i] = n
			}
			return cty.StringVal(convert(colorspace.V3(v[0], v[1], v[2])).Hex()), nil
		},
	})
}

// makeMixFunc creates an HCL function interpolating two colors in Lab.
// Usage: mix(palette.base, palette.love, 0.25)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Interpolates between two colors in Lab; 0.0 yields the first, 1.0 the second",
		Params: []function.Parameter{
			colorParam(),
			{
				Name: "other",
				Type: cty.DynamicPseudoType,
			},
			{
				Name: "t",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := colorArg(args, 0)
			if err != nil {
				return cty.NilVal, err
			}
			b, err := colorArg(args, 1)
			if err != nil {
				return cty.NilVal, err
			}
			t, err := numberArg(args, 2, unitSpan)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(color.Mix(a, b, t).Hex()), nil
		},
	})
}

func hslToColor(v colorspace.Vec3[float64]) color.Color {
	return color.FromVec(colorspace.HSLToRGB(v))
}

func hsvToColor(v colorspace.Vec3[float64]) color.Color {
	return color.FromVec(colorspace.HSVToRGB(v))
}

func labToColor(v colorspace.Vec3[float64]) color.Color {
	return color.FromVec(colorspace.LabToRGB(v))
}
