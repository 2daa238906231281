// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

package celltype

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Shared color printers for the result summary. Honors color.NoColor.
var (
	summaryTitle = color.New(color.Bold)
	summaryLabel = color.New(color.FgCyan)
)

// WriteSummary writes a human-readable report of r to w: header, query
// metadata, then the full response text.
func (r *Result) WriteSummary(w io.Writer) {
	summaryTitle.Fprintln(w, "=== Cell Type Identification ===")
	fmt.Fprintf(w, "%s %d\n", summaryLabel.Sprint("Genes queried:"), len(r.GenesQueried))
	fmt.Fprintf(w, "%s %s\n", summaryLabel.Sprint("Model:"), r.ModelUsed)
	fmt.Fprintf(w, "%s %s\n", summaryLabel.Sprint("Provider:"), r.ServiceUsed)
	if r.TissueContext != "" {
		fmt.Fprintf(w, "%s %s\n", summaryLabel.Sprint("Tissue:"), r.TissueContext)
	}
	fmt.Fprintf(w, "%s %s\n", summaryLabel.Sprint("Species:"), r.Species)
	fmt.Fprintf(w, "\n%s\n", r.Response)
}
