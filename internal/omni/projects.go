package omni

import (
	"context"
	"fmt"
	"strings"

	"omnikit/internal/bridge"
)

// UpdateProjectRequest carries raw caller input for project edits; nil
// fields stay untouched.
type UpdateProjectRequest struct {
	Name       *string
	Note       *string
	Sequential *bool
}

// CreateProject creates a project at the document root or inside the given
// folder.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) bridge.Outcome[Project] {
	name, serr := bridge.ValidateText(req.Name, "project name")
	if serr != nil {
		return bridge.Fail[Project](serr)
	}
	if name == "" {
		return bridge.Fail[Project](bridge.NewError(bridge.ErrValidation, "project name must not be empty"))
	}
	note, serr := bridge.ValidateText(req.Note, "project note")
	if serr != nil {
		return bridge.Fail[Project](serr)
	}

	var sb strings.Builder
	if req.FolderID != "" {
		folderID, serr := bridge.ValidateID(req.FolderID, "folder")
		if serr != nil {
			return bridge.Fail[Project](serr)
		}
		sb.WriteString(lookupFolder(folderID))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "tell theFolder to set newProject to make new project with properties {name:%s}\n", bridge.Quote(name))
	} else {
		fmt.Fprintf(&sb, "set newProject to make new project with properties {name:%s}\n", bridge.Quote(name))
	}
	if note != "" {
		fmt.Fprintf(&sb, "set note of newProject to %s\n", bridge.Quote(note))
	}
	if req.Sequential {
		sb.WriteString("set sequential of newProject to true\n")
	}
	sb.WriteString("return my serializeProject(newProject)")

	program, serr := c.composeJSON([]string{projectSerializerFragment}, sb.String())
	if serr != nil {
		return bridge.Fail[Project](serr)
	}
	return bridge.Execute[Project](ctx, c.runner, program)
}

// UpdateProject edits the given fields of a project.
func (c *Client) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) bridge.Outcome[Project] {
	projectID, serr := bridge.ValidateID(id, "project")
	if serr != nil {
		return bridge.Fail[Project](serr)
	}

	var sb strings.Builder
	sb.WriteString(lookupProject(projectID))
	sb.WriteString("\n")
	if req.Name != nil {
		name, serr := bridge.ValidateText(*req.Name, "project name")
		if serr != nil {
			return bridge.Fail[Project](serr)
		}
		if name == "" {
			return bridge.Fail[Project](bridge.NewError(bridge.ErrValidation, "project name must not be empty"))
		}
		fmt.Fprintf(&sb, "set name of theProject to %s\n", bridge.Quote(name))
	}
	if req.Note != nil {
		note, serr := bridge.ValidateText(*req.Note, "project note")
		if serr != nil {
			return bridge.Fail[Project](serr)
		}
		fmt.Fprintf(&sb, "set note of theProject to %s\n", bridge.Quote(note))
	}
	if req.Sequential != nil {
		fmt.Fprintf(&sb, "set sequential of theProject to %t\n", *req.Sequential)
	}
	sb.WriteString("return my serializeProject(theProject)")

	program, serr := c.composeJSON([]string{projectSerializerFragment}, sb.String())
	if serr != nil {
		return bridge.Fail[Project](serr)
	}
	return bridge.Execute[Project](ctx, c.runner, program)
}

// DeleteProject removes one project and its tasks.
func (c *Client) DeleteProject(ctx context.Context, id string) bridge.Outcome[DeleteResult] {
	projectID, serr := bridge.ValidateID(id, "project")
	if serr != nil {
		return bridge.Fail[DeleteResult](serr)
	}
	body := lookupProject(projectID) + "\ndelete theProject\n" + deleteReturn(projectID)
	program := bridge.ComposeSimple(body)
	return bridge.Execute[DeleteResult](ctx, c.runner, program)
}

// ListProjects returns every project, paginated inside the script.
func (c *Client) ListProjects(ctx context.Context, limit, offset int) bridge.Outcome[[]Project] {
	if limit == 0 {
		limit = 100
	}
	if serr := bridge.ValidateLimit(limit); serr != nil {
		return bridge.Fail[[]Project](serr)
	}
	if serr := bridge.ValidateOffset(offset); serr != nil {
		return bridge.Fail[[]Project](serr)
	}
	body := pagedLoop("flattened projects", "true", "my serializeProject(t)", limit, offset)
	program, serr := c.composeJSON([]string{projectSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[[]Project](serr)
	}
	return bridge.Execute[[]Project](ctx, c.runner, program)
}
