package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	summitlog "github.com/fortlewis-ir/summit/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	configDir string
)

// rootCmd is the base command for summit.
var rootCmd = &cobra.Command{
	Use:   "summit",
	Short: "Academic portfolio strategy dashboard for Fort Lewis College",
	Long: `Summit serves the Fort Lewis College portfolio optimization dashboard:
PESTLE, Porter's Five Forces, Gray Associates, BCG, SWOT, and Zone to Win
analyses over the Fall 2025 census data, plus the implementation roadmap
and downloadable briefing documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		summitlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing the .summit.yaml config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(kpisCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
