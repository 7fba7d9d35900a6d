package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsvensson/labtone/internal/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagVerbose int
	flagConfig  string
	version     = "dev" // Injected at build time via ldflags

	// cfg holds project defaults; flags that were set explicitly win.
	cfg = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:           "labtone",
	Short:         "Build color themes from an HCL palette and adjust colors in Lab space",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		commonlog.Configure(flagVerbose, nil)

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "project file (default "+config.DefaultFile+" if present)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
