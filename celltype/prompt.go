package celltype

import (
	"fmt"
	"strings"
)

// promptTemplate is the fixed query sent to the LLM. The four numbered
// asks are part of the external contract; downstream consumers rely on
// responses covering cell type, supporting genes, alternatives, and
// rationale in that order.
const promptTemplate = `You are an expert in single-cell RNA-seq analysis and cell biology.

Identify the most likely cell type for a cell population %s%s expressing the
following marker genes: %s

Please provide:
1. The most likely cell type(s) with a confidence level
2. Key supporting genes from the provided list
3. Alternative possibilities to consider
4. A brief biological rationale for your call

Keep the answer concise.`

// buildPrompt renders the annotation prompt for an already-cleaned gene list.
// The rendering is deterministic: same inputs, same prompt.
func buildPrompt(genes []string, species Species, tissue string) string {
	speciesClause := fmt.Sprintf("in %s", species)
	tissueClause := ""
	if tissue != "" {
		tissueClause = fmt.Sprintf(" in %s tissue", tissue)
	}
	return fmt.Sprintf(promptTemplate, speciesClause, tissueClause, strings.Join(genes, ", "))
}
