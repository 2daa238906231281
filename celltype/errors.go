package celltype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// Sentinel errors for gene-list validation, in the order the checks run.
var (
	// ErrGenesRequired reports that no gene list was supplied at all.
	ErrGenesRequired = errors.New("genes parameter is required")

	// ErrGenesEmpty reports a gene list of length zero.
	ErrGenesEmpty = errors.New("gene list is empty")

	// ErrNoValidGenes reports that every entry was empty or blank.
	ErrNoValidGenes = errors.New("no valid gene symbols remain after removing empty entries")
)

// DomainError reports a value outside one of the closed parameter sets.
type DomainError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

// ValidationError reports a malformed scalar parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ProviderError wraps a failure to construct the LLM client or to complete
// the outbound call. The message names the service and model so callers can
// tell which backend rejected the request.
type ProviderError struct {
	Service llm.Service
	Model   string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s request with model %s failed: %v", e.Service, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError wraps a failure to write or read a result file.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("result file %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// speciesNames returns the allowed species values as plain strings for
// error messages.
func speciesNames() []string {
	all := AllSpecies()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// serviceNames returns the allowed service values as plain strings for
// error messages.
func serviceNames() []string {
	all := llm.Services()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}
