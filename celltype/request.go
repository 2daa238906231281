package celltype

import (
	"strings"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// Defaults applied to unset Request fields.
const (
	// DefaultModel is used when Request.Model is empty.
	DefaultModel = "claude-3-5-sonnet-20241022"

	// DefaultSpecies is used when Request.Species is empty.
	DefaultSpecies = SpeciesHuman

	// DefaultService is used when Request.Service is empty.
	DefaultService = llm.ServiceClaude
)

// Request describes a single cell-type identification query.
type Request struct {
	// Genes is the ordered marker-gene list. Empty and blank entries are
	// dropped before the query; at least one symbol must survive.
	Genes []string

	// Model identifies the model to query. Model names are passed through
	// to the service unvalidated.
	Model string

	// TissueContext optionally narrows the biological sample type,
	// e.g. "peripheral blood".
	TissueContext string

	// Species selects the organism for gene-nomenclature context.
	Species Species

	// SaveResults requests that the result be written to disk.
	SaveResults bool

	// OutputFile is the destination path for a saved result. When empty,
	// a timestamped filename in the working directory is used.
	OutputFile string

	// Service selects the hosted LLM backend.
	Service llm.Service
}

// withDefaults returns a copy of r with unset fields filled in.
func (r Request) withDefaults() Request {
	if r.Model == "" {
		r.Model = DefaultModel
	}
	if r.Species == "" {
		r.Species = DefaultSpecies
	}
	if r.Service == "" {
		r.Service = DefaultService
	}
	return r
}

// validate checks r in a fixed order and returns the cleaned gene list or
// the first violated constraint. No network access happens before this
// passes.
func (r Request) validate() ([]string, error) {
	if r.Genes == nil {
		return nil, ErrGenesRequired
	}
	if len(r.Genes) == 0 {
		return nil, ErrGenesEmpty
	}
	genes := CleanGenes(r.Genes)
	if len(genes) == 0 {
		return nil, ErrNoValidGenes
	}
	if !r.Species.Valid() {
		return nil, &DomainError{Param: "species", Value: string(r.Species), Allowed: speciesNames()}
	}
	if !r.Service.Valid() {
		return nil, &DomainError{Param: "llm", Value: string(r.Service), Allowed: serviceNames()}
	}
	return genes, nil
}

// CleanGenes drops empty and blank entries from genes, preserving order.
// Surviving entries are returned verbatim, untrimmed.
func CleanGenes(genes []string) []string {
	out := make([]string, 0, len(genes))
	for _, g := range genes {
		if strings.TrimSpace(g) == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}
