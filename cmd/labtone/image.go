package main

import (
	"fmt"

	"github.com/jsvensson/labtone/internal/adjust"
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image <in> <out>",
	Short: "Apply contrast and exposure to an image",
	Long: "Decode an image (png, jpeg, gif, bmp, tiff or webp), adjust every pixel in Lab space " +
		"and write it in the format named by the output extension.",
	Args: cobra.ExactArgs(2),
	RunE: runImage,
}

func init() {
	addAdjustFlags(imageCmd)
	imageCmd.Flags().IntVarP(&flagWorkers, "workers", "j", 0, "parallel workers (0 means one per CPU)")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	o, err := adjustOptions(cmd)
	if err != nil {
		return err
	}
	if _, err := adjust.Encoder(args[1]); err != nil {
		return err
	}

	if err := adjust.File(cmd.Context(), args[0], args[1], o); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[1])
	return nil
}
