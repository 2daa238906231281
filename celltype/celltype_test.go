// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

package celltype_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnhutchinson/autoannotatecelltype/celltype"
	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// newStubAnnotator returns an Annotator whose provider is the given mock,
// a counter of factory invocations, and a buffer capturing the summary.
func newStubAnnotator(mock *llm.MockProvider) (*celltype.Annotator, *int, *bytes.Buffer) {
	calls := 0
	var out bytes.Buffer
	a := celltype.New(
		celltype.WithClientFactory(func(_ llm.Service, _ string) (llm.Provider, error) {
			calls++
			return mock, nil
		}),
		celltype.WithOutput(&out),
	)
	return a, &calls, &out
}

func TestIdentify_Defaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Cytotoxic T cell"})
	a, _, out := newStubAnnotator(mock)

	genes := []string{"CD3D", "CD3E", "CD8A", "CD8B", "GZMB", "PRF1"}
	result, err := a.Identify(context.Background(), celltype.Request{Genes: genes})
	require.NoError(t, err)

	assert.Equal(t, genes, result.GenesQueried)
	assert.Equal(t, "claude-3-5-sonnet-20241022", result.ModelUsed)
	assert.Equal(t, llm.ServiceClaude, result.ServiceUsed)
	assert.Equal(t, celltype.SpeciesHuman, result.Species)
	assert.Empty(t, result.TissueContext)
	assert.Equal(t, "Cytotoxic T cell", result.Response)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())

	// The summary side effect carries the response and metadata.
	summary := out.String()
	assert.Contains(t, summary, "Cell Type Identification")
	assert.Contains(t, summary, "Genes queried: 6")
	assert.Contains(t, summary, "Cytotoxic T cell")
	assert.NotContains(t, summary, "Tissue:")
}

func TestIdentify_TissueContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Cytotoxic T cell"})
	a, _, out := newStubAnnotator(mock)

	result, err := a.Identify(context.Background(), celltype.Request{
		Genes:         []string{"CD3D", "CD8A"},
		TissueContext: "peripheral blood",
	})
	require.NoError(t, err)

	assert.Equal(t, "peripheral blood", result.TissueContext)
	assert.Contains(t, out.String(), "peripheral blood")

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "in peripheral blood tissue")
	assert.Contains(t, calls[0].Prompt, "CD3D, CD8A")
}

func TestIdentify_CleansGenesBeforeQuery(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "B cell"})
	a, _, _ := newStubAnnotator(mock)

	result, err := a.Identify(context.Background(), celltype.Request{
		Genes: []string{"CD79A", "", "MS4A1"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CD79A", "MS4A1"}, result.GenesQueried)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "CD79A, MS4A1")
}

func TestIdentify_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name    string
		req     celltype.Request
		wantErr error
	}{
		{"nil genes", celltype.Request{}, celltype.ErrGenesRequired},
		{"empty genes", celltype.Request{Genes: []string{}}, celltype.ErrGenesEmpty},
		{"all blank", celltype.Request{Genes: []string{"", " "}}, celltype.ErrNoValidGenes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			a, factoryCalls, _ := newStubAnnotator(mock)

			_, err := a.Identify(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// No client is constructed and no call is made for invalid input.
			assert.Zero(t, *factoryCalls)
			assert.Empty(t, mock.Calls())
		})
	}
}

func TestIdentify_BadSpeciesNoCall(t *testing.T) {
	mock := llm.NewMockProvider()
	a, factoryCalls, _ := newStubAnnotator(mock)

	_, err := a.Identify(context.Background(), celltype.Request{
		Genes:   []string{"CD3D"},
		Species: "alien",
	})
	require.Error(t, err)

	var de *celltype.DomainError
	assert.True(t, errors.As(err, &de))
	assert.Zero(t, *factoryCalls)
}

func TestIdentify_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	a, _, _ := newStubAnnotator(mock)

	_, err := a.Identify(context.Background(), celltype.Request{
		Genes:   []string{"CD3D"},
		Model:   "gemini-2.0-flash",
		Service: llm.ServiceGemini,
	})
	require.Error(t, err)

	var pe *celltype.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, llm.ServiceGemini, pe.Service)
	assert.Equal(t, "gemini-2.0-flash", pe.Model)
	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, err.Error(), "gemini-2.0-flash")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestIdentify_ClientConstructionFailure(t *testing.T) {
	a := celltype.New(
		celltype.WithClientFactory(func(_ llm.Service, _ string) (llm.Provider, error) {
			return nil, errors.New("ANTHROPIC_API_KEY not set")
		}),
		celltype.WithOutput(&bytes.Buffer{}),
	)

	_, err := a.Identify(context.Background(), celltype.Request{Genes: []string{"CD3D"}})
	require.Error(t, err)

	var pe *celltype.ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestIdentify_SaveRoundTrip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "NK cell"})
	a, _, out := newStubAnnotator(mock)

	path := filepath.Join(t.TempDir(), "nk.json")
	result, err := a.Identify(context.Background(), celltype.Request{
		Genes:       []string{"NKG7", "GNLY"},
		SaveResults: true,
		OutputFile:  path,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Results saved to "+path)

	loaded, err := celltype.LoadResult(path)
	require.NoError(t, err)
	assert.Equal(t, result.GenesQueried, loaded.GenesQueried)
	assert.Equal(t, result.ModelUsed, loaded.ModelUsed)
	assert.Equal(t, result.ServiceUsed, loaded.ServiceUsed)
	assert.Equal(t, result.Species, loaded.Species)
	assert.Equal(t, "NK cell", loaded.Response)
}

func TestIdentify_SaveMissingDirectoryFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "NK cell"})
	a, _, _ := newStubAnnotator(mock)

	_, err := a.Identify(context.Background(), celltype.Request{
		Genes:       []string{"NKG7"},
		SaveResults: true,
		OutputFile:  filepath.Join(t.TempDir(), "missing", "nk.json"),
	})
	require.Error(t, err)

	// The annotation itself succeeded, but a failed save fails the call.
	var pe *celltype.PersistenceError
	assert.True(t, errors.As(err, &pe))
}

func TestIdentify_ContextCancellation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "unused"})
	a, _, _ := newStubAnnotator(mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Identify(ctx, celltype.Request{Genes: []string{"CD3D"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
