package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	celltypelog "github.com/jnhutchinson/autoannotatecelltype/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for celltype.
var rootCmd = &cobra.Command{
	Use:   "celltype",
	Short: "Annotate single-cell marker-gene lists with likely cell types",
	Long: `Celltype sends a marker-gene list from a single-cell RNA-seq cluster to a
hosted LLM (Claude, Gemini, or ChatGPT) and reports the most likely cell
type with supporting evidence. The response is free text; no local model
or statistical scoring is involved.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		celltypelog.Setup(os.Stderr, verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(setKeyCmd)
	rootCmd.AddCommand(versionCmd)
}
