package omni

import (
	"context"

	"omnikit/internal/bridge"
)

// Batch mutations. Every operation here goes through the batch engine:
// validated ids, bounded chunks, one sequential script invocation per
// chunk, per-item isolation inside the script.

// CompleteTasks marks every listed task complete.
func (c *Client) CompleteTasks(ctx context.Context, ids []string) bridge.Outcome[bridge.BatchResult[string]] {
	return bridge.RunBatch[string](ctx, c.engine, ids, "task", func(chunk []bridge.SafeID) (string, *bridge.StructuredError) {
		return c.composeJSON(nil, batchBody(chunk, "", "mark complete theTask"))
	})
}

// DeleteTasks removes every listed task.
func (c *Client) DeleteTasks(ctx context.Context, ids []string) bridge.Outcome[bridge.BatchResult[string]] {
	return bridge.RunBatch[string](ctx, c.engine, ids, "task", func(chunk []bridge.SafeID) (string, *bridge.StructuredError) {
		return c.composeJSON(nil, batchBody(chunk, "", "delete theTask"))
	})
}

// MoveTasks moves every listed task to the end of the given project.
func (c *Client) MoveTasks(ctx context.Context, ids []string, projectID string) bridge.Outcome[bridge.BatchResult[string]] {
	safeProject, serr := bridge.ValidateID(projectID, "project")
	if serr != nil {
		return bridge.Fail[bridge.BatchResult[string]](serr)
	}
	prelude := lookupProject(safeProject)
	return bridge.RunBatch[string](ctx, c.engine, ids, "task", func(chunk []bridge.SafeID) (string, *bridge.StructuredError) {
		return c.composeJSON(nil, batchBody(chunk, prelude, "move theTask to end of tasks of theProject"))
	})
}

// AddTagToTasks assigns a tag (created when absent) to every listed task.
func (c *Client) AddTagToTasks(ctx context.Context, ids []string, tagName string) bridge.Outcome[bridge.BatchResult[string]] {
	safeTag, serr := bridge.ValidateText(tagName, "tag name")
	if serr != nil {
		return bridge.Fail[bridge.BatchResult[string]](serr)
	}
	if safeTag == "" {
		return bridge.Fail[bridge.BatchResult[string]](bridge.NewError(bridge.ErrValidation, "tag name must not be empty"))
	}
	prelude := lookupOrCreateTag(safeTag)
	return bridge.RunBatch[string](ctx, c.engine, ids, "task", func(chunk []bridge.SafeID) (string, *bridge.StructuredError) {
		return c.composeJSON(nil, batchBody(chunk, prelude, "add theTag to tags of theTask"))
	})
}
