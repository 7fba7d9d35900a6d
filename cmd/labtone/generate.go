package main

import (
	"fmt"

	"github.com/jsvensson/labtone"
	"github.com/spf13/cobra"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate theme files from templates",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagPalette, "palette", "palette.hcl", "path to palette HCL file")
	generateCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	generateCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	generateCmd.Flags().StringArrayVar(&flagApp, "app", nil, "generate only for specific apps (can be repeated)")
	rootCmd.AddCommand(generateCmd)
}

// pick returns the flag value when it was set on the command line or the
// config has nothing, and the config value otherwise.
func pick[T any](cmd *cobra.Command, name string, flag T, fromConfig T, configSet bool) T {
	if cmd.Flags().Changed(name) || !configSet {
		return flag
	}
	return fromConfig
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g := cfg.Generate
	palette := pick(cmd, "palette", flagPalette, g.Palette, g.Palette != "")
	e := &labtone.Engine{
		TemplatesDir: pick(cmd, "templates", flagTemplates, g.Templates, g.Templates != ""),
		OutputDir:    pick(cmd, "out", flagOut, g.Out, g.Out != ""),
		Apps:         pick(cmd, "app", flagApp, g.Apps, len(g.Apps) > 0),
	}

	if err := labtone.Generate(palette, e); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated theme files in %s\n", e.OutputDir)
	return nil
}
