// Package celltype identifies likely cell types for single-cell RNA-seq
// marker-gene lists by querying a hosted LLM with a templated prompt. The
// response is treated as opaque text; no parsing or scoring happens here.
package celltype

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// ClientFactory constructs the provider client used for a query. Tests
// substitute a factory returning a stub provider.
type ClientFactory func(service llm.Service, model string) (llm.Provider, error)

// Annotator runs identification queries. It holds no connections between
// calls; constructing one is cheap.
type Annotator struct {
	newClient ClientFactory
	out       io.Writer

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithClientFactory replaces the provider constructor.
func WithClientFactory(f ClientFactory) Option {
	return func(a *Annotator) {
		a.newClient = f
	}
}

// WithOutput redirects the printed summary. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(a *Annotator) {
		a.out = w
	}
}

// New creates an Annotator that dispatches to the real provider clients
// and prints summaries to stdout.
func New(opts ...Option) *Annotator {
	a := &Annotator{
		newClient: func(service llm.Service, model string) (llm.Provider, error) {
			return llm.New(service, model)
		},
		out:     os.Stdout,
		nowFunc: time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Identify validates req, sends the rendered prompt to the selected
// service in a single call, and returns the assembled result. When
// req.SaveResults is set the result is also written to disk, and a save
// failure fails the whole call even though the annotation succeeded.
// A human-readable summary is printed as a side effect.
func (a *Annotator) Identify(ctx context.Context, req Request) (*Result, error) {
	req = req.withDefaults()

	genes, err := req.validate()
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(genes, req.Species, req.TissueContext)

	client, err := a.newClient(req.Service, req.Model)
	if err != nil {
		return nil, &ProviderError{Service: req.Service, Model: req.Model, Err: err}
	}

	slog.Debug("querying provider", "service", req.Service, "model", req.Model, "genes", len(genes))
	resp, err := client.Complete(ctx, llm.Request{Prompt: prompt, Model: req.Model})
	if err != nil {
		return nil, &ProviderError{Service: req.Service, Model: req.Model, Err: err}
	}

	result := &Result{
		ID:            uuid.NewString(),
		GenesQueried:  genes,
		ModelUsed:     req.Model,
		ServiceUsed:   req.Service,
		TissueContext: req.TissueContext,
		Species:       req.Species,
		Response:      resp.Content,
		CreatedAt:     a.nowFunc(),
	}

	if req.SaveResults {
		path := req.OutputFile
		if path == "" {
			path = DefaultFileName(result.CreatedAt)
		}
		if err := result.Save(path); err != nil {
			return nil, err
		}
		fmt.Fprintf(a.out, "Results saved to %s\n", path)
	}

	result.WriteSummary(a.out)
	return result, nil
}

// Identify runs a single query with a default Annotator, printing the
// summary to stdout.
func Identify(ctx context.Context, req Request) (*Result, error) {
	return New().Identify(ctx, req)
}
