package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jsvensson/labtone/colorspace"
	"github.com/jsvensson/labtone/internal/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagTo string

type notation struct {
	name   string
	format func(color.Color) string
}

// notations lists every --to value with its formatter, in display order.
var notations = []notation{
	{"hex", color.Color.Hex},
	{"rgb", color.Color.RGB},
	{"hsl", color.Color.HSL},
	{"hsv", color.Color.HSV},
	{"xyz", xyzString},
	{"lab", color.Color.LabString},
}

var convertCmd = &cobra.Command{
	Use:   "convert [colors...]",
	Short: "Print colors in other color spaces",
	Long:  "Convert hex colors to rgb, hsl, hsv, xyz or lab notation, with a swatch when the terminal supports color.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	names := []string{"all"}
	for _, n := range notations {
		names = append(names, n.name)
	}
	convertCmd.Flags().StringVarP(&flagTo, "to", "t", "all", "target notation: "+strings.Join(names, ", "))
	rootCmd.AddCommand(convertCmd)
}

// xyzString formats CIE XYZ under D65 with Y in [0, 100].
func xyzString(c color.Color) string {
	xyz := colorspace.RGBToXYZ(c.Vec())
	return fmt.Sprintf("xyz(%.2f, %.2f, %.2f)", xyz.X, xyz.Y, xyz.Z)
}

func parseColors(args []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(args))
	for _, arg := range args {
		c, err := color.ParseHex(arg)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// swatch renders a two-cell block in c. Outputs without color support get
// plain spaces.
func swatch(out *termenv.Output, c color.Color) string {
	return out.String("  ").Background(out.Color(c.Hex())).String()
}

func runConvert(cmd *cobra.Command, args []string) error {
	known := slices.ContainsFunc(notations, func(n notation) bool { return n.name == flagTo })
	if flagTo != "all" && !known {
		return fmt.Errorf("unknown notation %q", flagTo)
	}

	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	out := termenv.NewOutput(w)
	for _, c := range colors {
		writeConversions(w, out, c, flagTo)
	}
	return nil
}

func writeConversions(w io.Writer, out *termenv.Output, c color.Color, to string) {
	parts := []string{swatch(out, c)}
	for _, n := range notations {
		if to == "all" || to == n.name {
			parts = append(parts, n.format(c))
		}
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}
