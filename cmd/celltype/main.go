package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jnhutchinson/autoannotatecelltype/celltype"
	"github.com/jnhutchinson/autoannotatecelltype/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, redact.String(err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode maps error categories to process exit codes so scripts can
// branch on the failure kind.
func exitCode(err error) int {
	var provErr *celltype.ProviderError
	var persErr *celltype.PersistenceError
	switch {
	case errors.As(err, &provErr):
		return ExitProviderFailure
	case errors.As(err, &persErr):
		return ExitPersistenceFailure
	default:
		return ExitInvalidArgs
	}
}
