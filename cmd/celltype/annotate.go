// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jnhutchinson/autoannotatecelltype/celltype"
	"github.com/jnhutchinson/autoannotatecelltype/internal/config"
	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// Annotate-specific flag values.
var (
	annotateModel   string
	annotateTissue  string
	annotateSpecies string
	annotateLLM     string
	annotateSave    bool
	annotateOutput  string
)

// annotateCmd is the subcommand for running one identification query.
var annotateCmd = &cobra.Command{
	Use:   "annotate GENE [GENE...]",
	Short: "Identify the likely cell type for a marker-gene list",
	Long: `Send a marker-gene list to a hosted LLM and print its cell-type call.
Genes may be given as separate arguments or comma-separated:

  celltype annotate CD3D CD3E CD8A CD8B GZMB PRF1
  celltype annotate CD3D,CD3E,CD8A --tissue "peripheral blood"

The provider API key is read from the environment (ANTHROPIC_API_KEY,
GEMINI_API_KEY, or OPENAI_API_KEY depending on --llm).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateModel, "model", "m", "", "model identifier (default claude-3-5-sonnet-20241022)")
	annotateCmd.Flags().StringVarP(&annotateTissue, "tissue", "t", "", "tissue context hint, e.g. \"peripheral blood\"")
	annotateCmd.Flags().StringVarP(&annotateSpecies, "species", "s", "", "species (human, mouse, rat, zebrafish, drosophila; default human)")
	annotateCmd.Flags().StringVarP(&annotateLLM, "llm", "l", "", "service to query (claude, gemini, chatgpt; default claude)")
	annotateCmd.Flags().BoolVar(&annotateSave, "save", false, "write the result to a JSON file")
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "", "output file path (default: timestamped name in the working directory)")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := celltype.Request{
		Genes:         splitGenes(args),
		Model:         firstNonEmpty(annotateModel, cfg.Model),
		TissueContext: annotateTissue,
		Species:       celltype.Species(firstNonEmpty(annotateSpecies, cfg.Species)),
		Service:       llm.Service(firstNonEmpty(annotateLLM, cfg.LLM)),
		SaveResults:   annotateSave,
		OutputFile:    annotateOutput,
	}

	if annotateSave && annotateOutput == "" && cfg.OutputDir != "" {
		req.OutputFile = filepath.Join(cfg.OutputDir, celltype.DefaultFileName(time.Now()))
	}

	annotator := celltype.New(celltype.WithOutput(cmd.OutOrStdout()))
	_, err = annotator.Identify(cmd.Context(), req)
	return err
}

// loadConfig merges the global config file with the one in the working
// directory. The local file wins; flags win over both.
func loadConfig() (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}
	local, err := config.Load(".")
	if err != nil {
		return nil, err
	}
	return config.Merge(global, local), nil
}

// splitGenes flattens args into a gene list, splitting each argument on
// commas. Cleaning of empty entries happens in the library.
func splitGenes(args []string) []string {
	var genes []string
	for _, arg := range args {
		genes = append(genes, strings.Split(arg, ",")...)
	}
	return genes
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
