package main

import (
	"fmt"

	"github.com/jsvensson/labtone/internal/adjust"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagContrast float64
	flagExpose   float64
	flagWorkers  int
)

var adjustCmd = &cobra.Command{
	Use:   "adjust [colors...]",
	Short: "Apply contrast and exposure to colors",
	Long:  "Run hex colors through the Lab contrast and exposure curves and print the results.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdjust,
}

func init() {
	addAdjustFlags(adjustCmd)
	rootCmd.AddCommand(adjustCmd)
}

func addAdjustFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagContrast, "contrast", 0, "contrast strength, -1 to 1")
	cmd.Flags().Float64Var(&flagExpose, "expose", 0, "exposure strength, -1 to 1")
}

// adjustOptions merges the flags over the project file's image defaults.
func adjustOptions(cmd *cobra.Command) (adjust.Options, error) {
	o := adjust.Options{
		Contrast: cfg.Image.Contrast,
		Expose:   cfg.Image.Expose,
		Workers:  cfg.Image.Workers,
	}
	if cmd.Flags().Changed("contrast") {
		o.Contrast = flagContrast
	}
	if cmd.Flags().Changed("expose") {
		o.Expose = flagExpose
	}
	if cmd.Flags().Changed("workers") {
		o.Workers = flagWorkers
	}
	return o, o.Validate()
}

func runAdjust(cmd *cobra.Command, args []string) error {
	o, err := adjustOptions(cmd)
	if err != nil {
		return err
	}
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	out := termenv.NewOutput(w)
	for _, c := range colors {
		a := adjust.Color(c, o)
		fmt.Fprintf(w, "%s %s -> %s %s\n", swatch(out, c), c.Hex(), swatch(out, a), a.Hex())
	}
	return nil
}
