package bridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("task-%03d", i)
	}
	return ids
}

// echoBuilder pretends every id in the chunk succeeded.
func echoBuilder(ids []SafeID) (string, *StructuredError) {
	program := "["
	for i, id := range ids {
		if i > 0 {
			program += ","
		}
		program += Quote(id)
	}
	return program + "]", nil
}

func chunkAllSucceeded(ids []string, from, to int) string {
	out := `{"succeeded":[`
	for i, id := range ids[from:to] {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", id)
	}
	return out + `],"failed":[]}`
}

func TestRunBatchChunksSequentially(t *testing.T) {
	ids := sequentialIDs(120)
	runner := &fakeRunner{outputs: []string{
		chunkAllSucceeded(ids, 0, 50),
		chunkAllSucceeded(ids, 50, 100),
		chunkAllSucceeded(ids, 100, 120),
	}}
	engine := NewBatchEngine(runner, 0)

	out := RunBatch[string](context.Background(), engine, ids, "task", echoBuilder)
	require.True(t, out.Success)

	// 120 ids at the default chunk size of 50 means exactly 3 invocations.
	assert.Equal(t, 3, runner.calls)
	assert.Equal(t, 120, out.Data.TotalSucceeded)
	assert.Equal(t, 0, out.Data.TotalFailed)
	assert.Equal(t, ids, out.Data.Succeeded)
}

func TestRunBatchMergesPerItemFailures(t *testing.T) {
	ids := sequentialIDs(100)
	failedChunk := `{"succeeded":[`
	for i, id := range ids[50:99] {
		if i > 0 {
			failedChunk += ","
		}
		failedChunk += fmt.Sprintf("%q", id)
	}
	failedChunk += `],"failed":[{"id":"task-099","error":"task not found"}]}`

	runner := &fakeRunner{outputs: []string{
		chunkAllSucceeded(ids, 0, 50),
		failedChunk,
	}}
	engine := NewBatchEngine(runner, 50)

	out := RunBatch[string](context.Background(), engine, ids, "task", echoBuilder)
	require.True(t, out.Success)

	// One bad item in the second chunk fails alone; the other 99 succeed.
	assert.Equal(t, 99, out.Data.TotalSucceeded)
	assert.Equal(t, 1, out.Data.TotalFailed)
	require.Len(t, out.Data.Failed, 1)
	assert.Equal(t, "task-099", out.Data.Failed[0].ID)
	assert.Equal(t, "task not found", out.Data.Failed[0].Error)
}

func TestRunBatchEmptyIDs(t *testing.T) {
	runner := &fakeRunner{}
	engine := NewBatchEngine(runner, 50)

	out := RunBatch[string](context.Background(), engine, nil, "task", echoBuilder)
	require.False(t, out.Success)
	assert.Equal(t, ErrValidation, out.Err.Code)
	assert.Zero(t, runner.calls)
}

func TestRunBatchInvalidIDFailsFast(t *testing.T) {
	runner := &fakeRunner{}
	engine := NewBatchEngine(runner, 50)

	ids := []string{"good-id", `bad"id`, "another-good-id"}
	out := RunBatch[string](context.Background(), engine, ids, "task", echoBuilder)
	require.False(t, out.Success)
	assert.Equal(t, ErrInvalidIDFormat, out.Err.Code)

	// Nothing runs when any id fails validation.
	assert.Zero(t, runner.calls)
}

func TestRunBatchChunkFailureAborts(t *testing.T) {
	runner := &fakeRunner{err: NewError(ErrNotRunning, "OmniFocus is not running")}
	engine := NewBatchEngine(runner, 50)

	out := RunBatch[string](context.Background(), engine, sequentialIDs(10), "task", echoBuilder)
	require.False(t, out.Success)
	assert.Equal(t, ErrNotRunning, out.Err.Code)
	assert.Equal(t, 1, runner.calls)
}

func TestRunBatchBuilderFailureAborts(t *testing.T) {
	runner := &fakeRunner{}
	engine := NewBatchEngine(runner, 50)

	out := RunBatch[string](context.Background(), engine, sequentialIDs(5), "task", func([]SafeID) (string, *StructuredError) {
		return "", NewError(ErrUnknown, "failed to load script fragment")
	})
	require.False(t, out.Success)
	assert.Equal(t, ErrUnknown, out.Err.Code)
	assert.Zero(t, runner.calls)
}

func TestNewBatchEngineChunkSize(t *testing.T) {
	assert.Equal(t, DefaultChunkSize, NewBatchEngine(&fakeRunner{}, 0).ChunkSize())
	assert.Equal(t, DefaultChunkSize, NewBatchEngine(&fakeRunner{}, -1).ChunkSize())
	assert.Equal(t, 10, NewBatchEngine(&fakeRunner{}, 10).ChunkSize())
}
