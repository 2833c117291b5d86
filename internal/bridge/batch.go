package bridge

import (
	"context"

	"omnikit/internal/app"
)

// DefaultChunkSize is the empirically safe ceiling for how many items one
// osascript invocation can process before the interpreter becomes
// unreliable.
const DefaultChunkSize = 50

// BatchFailure records one item the per-chunk script could not process.
type BatchFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BatchResult aggregates per-item outcomes across every chunk. Only the
// final aggregate is returned; callers never see a partial result.
type BatchResult[T any] struct {
	Succeeded      []T            `json:"succeeded"`
	Failed         []BatchFailure `json:"failed"`
	TotalSucceeded int            `json:"totalSucceeded"`
	TotalFailed    int            `json:"totalFailed"`
}

// chunkPayload is the JSON object each per-chunk script emits.
type chunkPayload[T any] struct {
	Succeeded []T            `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// ChunkScriptBuilder composes one executable program that iterates the
// chunk's ids inside the interpreter, isolating each item in its own
// try/catch and emitting a {succeeded, failed} JSON object for the chunk.
type ChunkScriptBuilder func(ids []SafeID) (string, *StructuredError)

// BatchEngine partitions id lists into bounded chunks and runs one script
// invocation per chunk. Chunks run strictly one after another: OmniFocus is
// a single-instance desktop application with no documented guarantees for
// concurrent automation sessions, so serial execution is a correctness
// decision, not a performance accident.
type BatchEngine struct {
	runner    Runner
	chunkSize int
}

// NewBatchEngine creates an engine over the given runner. A non-positive
// chunk size falls back to DefaultChunkSize.
func NewBatchEngine(runner Runner, chunkSize int) *BatchEngine {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &BatchEngine{runner: runner, chunkSize: chunkSize}
}

// ChunkSize reports the configured chunk ceiling.
func (e *BatchEngine) ChunkSize() int {
	return e.chunkSize
}

// RunBatch validates every id, partitions them preserving order, executes
// one script per chunk, and merges the per-chunk succeeded/failed lists.
// Per-item failures are data; a chunk whose script could not run at all
// aborts the whole call with that error.
func RunBatch[T any](ctx context.Context, e *BatchEngine, ids []string, kind string, build ChunkScriptBuilder) Outcome[BatchResult[T]] {
	if len(ids) == 0 {
		return Fail[BatchResult[T]](NewError(ErrValidation, "batch requires at least one id"))
	}

	// Fail fast before any execution begins: a batch with one bad id never
	// partially runs.
	safeIDs, serr := ValidateIDs(ids, kind)
	if serr != nil {
		return Fail[BatchResult[T]](serr)
	}

	result := BatchResult[T]{
		Succeeded: []T{},
		Failed:    []BatchFailure{},
	}

	for start := 0; start < len(safeIDs); start += e.chunkSize {
		end := start + e.chunkSize
		if end > len(safeIDs) {
			end = len(safeIDs)
		}
		chunk := safeIDs[start:end]

		program, serr := build(chunk)
		if serr != nil {
			return Fail[BatchResult[T]](serr)
		}

		out := Execute[chunkPayload[T]](ctx, e.runner, program)
		if !out.Success {
			return Convert[BatchResult[T]](out)
		}

		result.Succeeded = append(result.Succeeded, out.Data.Succeeded...)
		result.Failed = append(result.Failed, out.Data.Failed...)
	}

	result.TotalSucceeded = len(result.Succeeded)
	result.TotalFailed = len(result.Failed)

	if got, want := result.TotalSucceeded+result.TotalFailed, len(ids); got != want {
		// Aggregate is still returned as the scripts reported it.
		app.GetLogger().Warn("batch scripts reported %d items for %d ids", got, want)
	}
	return OK(result)
}
