package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jnhutchinson/autoannotatecelltype/celltype"
	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// setKeyCmd stores a provider API key in the process environment.
var setKeyCmd = &cobra.Command{
	Use:   "set-key SERVICE KEY",
	Short: "Store a provider API key in the process environment",
	Long: `Store an API key for claude, gemini, or chatgpt in the corresponding
environment variable. The assignment lasts only for this process; to make
a key available to later runs, export it in your shell instead:

  export ANTHROPIC_API_KEY=sk-ant-...`,
	Args: cobra.ExactArgs(2),
	RunE: runSetKey,
}

func runSetKey(cmd *cobra.Command, args []string) error {
	service := llm.Service(strings.TrimSpace(args[0]))
	if err := celltype.SetAPIKey(service, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "API key for %s stored in %s\n", service, service.EnvVar())
	return nil
}
