package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

func TestMockProvider_ReturnsResponsesInOrder(t *testing.T) {
	m := llm.NewMockProvider(
		llm.MockResponse{Content: "first"},
		llm.MockResponse{Content: "second"},
	)

	r1, err := m.Complete(context.Background(), llm.Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "first", r1.Content)

	r2, err := m.Complete(context.Background(), llm.Request{Prompt: "b"})
	require.NoError(t, err)
	assert.Equal(t, "second", r2.Content)

	// Repeats the last response once exhausted.
	r3, err := m.Complete(context.Background(), llm.Request{Prompt: "c"})
	require.NoError(t, err)
	assert.Equal(t, "second", r3.Content)
}

func TestMockProvider_Error(t *testing.T) {
	wantErr := errors.New("boom")
	m := llm.NewMockProvider(llm.MockResponse{Err: wantErr})

	_, err := m.Complete(context.Background(), llm.Request{Prompt: "a"})
	assert.ErrorIs(t, err, wantErr)
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "ok"})

	_, err := m.Complete(context.Background(), llm.Request{Prompt: "p1", Model: "m1"})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "p1", calls[0].Prompt)
	assert.Equal(t, "m1", calls[0].Model)
}

func TestMockProvider_NoResponses(t *testing.T) {
	m := llm.NewMockProvider()

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Empty(t, resp.Content)
}

func TestMockProvider_ContextCancellation(t *testing.T) {
	m := llm.NewMockProvider(llm.MockResponse{Content: "unused"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, llm.Request{Prompt: "a"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}
