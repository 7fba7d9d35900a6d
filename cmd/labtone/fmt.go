package main

import (
	"errors"
	"fmt"

	"github.com/jsvensson/labtone/internal/format"
	"github.com/spf13/cobra"
)

var flagCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	var errs []error
	unformatted := 0

	for _, path := range args {
		changed, err := format.File(path, !flagCheck)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if changed {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			unformatted++
		}
	}

	if flagCheck && unformatted > 0 {
		errs = append(errs, fmt.Errorf("%d file(s) need formatting", unformatted))
	}
	return errors.Join(errs...)
}
