package omni

import (
	"context"
	"fmt"
	"strings"

	"omnikit/internal/bridge"
)

// DeleteResult is the payload for destructive single-item operations.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// CreateTask creates a task in the inbox or, when ProjectID is set, inside
// that project.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) bridge.Outcome[Task] {
	name, serr := bridge.ValidateText(req.Name, "task name")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	if name == "" {
		return bridge.Fail[Task](bridge.NewError(bridge.ErrValidation, "task name must not be empty"))
	}
	note, serr := bridge.ValidateText(req.Note, "task note")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	dueDate, serr := bridge.ValidateDate(req.DueDate, "due date")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	deferDate, serr := bridge.ValidateDate(req.DeferDate, "defer date")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	if serr := bridge.ValidateMinutes(req.EstimatedMinutes); serr != nil {
		return bridge.Fail[Task](serr)
	}
	tags, serr := bridge.ValidateTexts(req.Tags, "tag name")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}

	var sb strings.Builder
	if req.ProjectID != "" {
		projectID, serr := bridge.ValidateID(req.ProjectID, "project")
		if serr != nil {
			return bridge.Fail[Task](serr)
		}
		sb.WriteString(lookupProject(projectID))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "tell theProject to set newTask to make new task with properties {name:%s}\n", bridge.Quote(name))
	} else {
		fmt.Fprintf(&sb, "set newTask to make new inbox task with properties {name:%s}\n", bridge.Quote(name))
	}
	if note != "" {
		fmt.Fprintf(&sb, "set note of newTask to %s\n", bridge.Quote(note))
	}
	if dueDate != "" {
		fmt.Fprintf(&sb, "set due date of newTask to date %s\n", bridge.Quote(dueDate))
	}
	if deferDate != "" {
		fmt.Fprintf(&sb, "set defer date of newTask to date %s\n", bridge.Quote(deferDate))
	}
	if req.Flagged {
		sb.WriteString("set flagged of newTask to true\n")
	}
	if req.EstimatedMinutes > 0 {
		fmt.Fprintf(&sb, "set estimated minutes of newTask to %d\n", req.EstimatedMinutes)
	}
	for _, tag := range tags {
		sb.WriteString(lookupOrCreateTag(tag))
		sb.WriteString("\nadd theTag to tags of newTask\n")
	}
	sb.WriteString("return my serializeTask(newTask)")

	program, serr := c.composeJSON([]string{taskSerializerFragment}, sb.String())
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	return bridge.Execute[Task](ctx, c.runner, program)
}

// UpdateTask edits the given fields of a task; nil fields stay untouched
// and empty dates clear the date.
func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) bridge.Outcome[Task] {
	taskID, serr := bridge.ValidateID(id, "task")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}

	var sb strings.Builder
	sb.WriteString(lookupTask(taskID))
	sb.WriteString("\n")

	if req.Name != nil {
		name, serr := bridge.ValidateText(*req.Name, "task name")
		if serr != nil {
			return bridge.Fail[Task](serr)
		}
		if name == "" {
			return bridge.Fail[Task](bridge.NewError(bridge.ErrValidation, "task name must not be empty"))
		}
		fmt.Fprintf(&sb, "set name of theTask to %s\n", bridge.Quote(name))
	}
	if req.Note != nil {
		note, serr := bridge.ValidateText(*req.Note, "task note")
		if serr != nil {
			return bridge.Fail[Task](serr)
		}
		fmt.Fprintf(&sb, "set note of theTask to %s\n", bridge.Quote(note))
	}
	if req.DueDate != nil {
		due, serr := bridge.ValidateDate(*req.DueDate, "due date")
		if serr != nil {
			return bridge.Fail[Task](serr)
		}
		if due == "" {
			sb.WriteString("set due date of theTask to missing value\n")
		} else {
			fmt.Fprintf(&sb, "set due date of theTask to date %s\n", bridge.Quote(due))
		}
	}
	if req.DeferDate != nil {
		deferDate, serr := bridge.ValidateDate(*req.DeferDate, "defer date")
		if serr != nil {
			return bridge.Fail[Task](serr)
		}
		if deferDate == "" {
			sb.WriteString("set defer date of theTask to missing value\n")
		} else {
			fmt.Fprintf(&sb, "set defer date of theTask to date %s\n", bridge.Quote(deferDate))
		}
	}
	if req.Flagged != nil {
		fmt.Fprintf(&sb, "set flagged of theTask to %t\n", *req.Flagged)
	}
	if req.EstimatedMinutes != nil {
		if serr := bridge.ValidateMinutes(*req.EstimatedMinutes); serr != nil {
			return bridge.Fail[Task](serr)
		}
		if *req.EstimatedMinutes == 0 {
			sb.WriteString("set estimated minutes of theTask to missing value\n")
		} else {
			fmt.Fprintf(&sb, "set estimated minutes of theTask to %d\n", *req.EstimatedMinutes)
		}
	}
	sb.WriteString("return my serializeTask(theTask)")

	program, serr := c.composeJSON([]string{taskSerializerFragment}, sb.String())
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	return bridge.Execute[Task](ctx, c.runner, program)
}

// GetTask fetches one task by id.
func (c *Client) GetTask(ctx context.Context, id string) bridge.Outcome[Task] {
	taskID, serr := bridge.ValidateID(id, "task")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	body := lookupTask(taskID) + "\nreturn my serializeTask(theTask)"
	program, serr := c.composeJSON([]string{taskSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	return bridge.Execute[Task](ctx, c.runner, program)
}

// CompleteTask marks one task complete and returns its final state.
func (c *Client) CompleteTask(ctx context.Context, id string) bridge.Outcome[Task] {
	taskID, serr := bridge.ValidateID(id, "task")
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	body := lookupTask(taskID) + "\nmark complete theTask\nreturn my serializeTask(theTask)"
	program, serr := c.composeJSON([]string{taskSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[Task](serr)
	}
	return bridge.Execute[Task](ctx, c.runner, program)
}

// DeleteTask removes one task.
func (c *Client) DeleteTask(ctx context.Context, id string) bridge.Outcome[DeleteResult] {
	taskID, serr := bridge.ValidateID(id, "task")
	if serr != nil {
		return bridge.Fail[DeleteResult](serr)
	}
	body := lookupTask(taskID) + "\ndelete theTask\n" + deleteReturn(taskID)
	program := bridge.ComposeSimple(body)
	return bridge.Execute[DeleteResult](ctx, c.runner, program)
}

// ListTasks returns tasks, optionally scoped to a project and including
// completed ones, with offset/limit pagination applied inside the script.
func (c *Client) ListTasks(ctx context.Context, opts ListTasksOptions) bridge.Outcome[[]Task] {
	if opts.Limit == 0 {
		opts.Limit = 100
	}
	if serr := bridge.ValidateLimit(opts.Limit); serr != nil {
		return bridge.Fail[[]Task](serr)
	}
	if serr := bridge.ValidateOffset(opts.Offset); serr != nil {
		return bridge.Fail[[]Task](serr)
	}

	source := "flattened tasks"
	prelude := ""
	if opts.ProjectID != "" {
		projectID, serr := bridge.ValidateID(opts.ProjectID, "project")
		if serr != nil {
			return bridge.Fail[[]Task](serr)
		}
		prelude = lookupProject(projectID) + "\n"
		source = "flattened tasks of theProject"
	}
	filter := "completed of t is false"
	if opts.IncludeCompleted {
		filter = "true"
	}

	body := prelude + pagedLoop(source, filter, "my serializeTask(t)", opts.Limit, opts.Offset)
	program, serr := c.composeJSON([]string{taskSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[[]Task](serr)
	}
	return bridge.Execute[[]Task](ctx, c.runner, program)
}

// SearchTasks returns incomplete tasks whose name or note contains the
// query, paginated inside the script.
func (c *Client) SearchTasks(ctx context.Context, query string, opts SearchOptions) bridge.Outcome[[]Task] {
	q, serr := bridge.ValidateText(query, "search query")
	if serr != nil {
		return bridge.Fail[[]Task](serr)
	}
	if q == "" {
		return bridge.Fail[[]Task](bridge.NewError(bridge.ErrValidation, "search query must not be empty"))
	}
	if opts.Limit == 0 {
		opts.Limit = 100
	}
	if serr := bridge.ValidateLimit(opts.Limit); serr != nil {
		return bridge.Fail[[]Task](serr)
	}
	if serr := bridge.ValidateOffset(opts.Offset); serr != nil {
		return bridge.Fail[[]Task](serr)
	}

	filter := fmt.Sprintf("(completed of t is false) and ((name of t contains %s) or (note of t contains %s))",
		bridge.Quote(q), bridge.Quote(q))
	body := pagedLoop("flattened tasks", filter, "my serializeTask(t)", opts.Limit, opts.Offset)
	program, serr := c.composeJSON([]string{taskSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[[]Task](serr)
	}
	return bridge.Execute[[]Task](ctx, c.runner, program)
}
