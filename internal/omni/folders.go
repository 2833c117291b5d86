package omni

import (
	"context"
	"fmt"

	"omnikit/internal/bridge"
)

// CreateFolder creates a folder at the document root.
func (c *Client) CreateFolder(ctx context.Context, name string) bridge.Outcome[Folder] {
	folderName, serr := bridge.ValidateText(name, "folder name")
	if serr != nil {
		return bridge.Fail[Folder](serr)
	}
	if folderName == "" {
		return bridge.Fail[Folder](bridge.NewError(bridge.ErrValidation, "folder name must not be empty"))
	}
	body := fmt.Sprintf("set newFolder to make new folder with properties {name:%s}\n", bridge.Quote(folderName)) +
		"return my serializeFolder(newFolder)"
	program, serr := c.composeJSON([]string{folderSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[Folder](serr)
	}
	return bridge.Execute[Folder](ctx, c.runner, program)
}

// ListFolders returns every folder.
func (c *Client) ListFolders(ctx context.Context) bridge.Outcome[[]Folder] {
	body := pagedLoop("flattened folders", "true", "my serializeFolder(t)", bridge.MaxListLimit, 0)
	program, serr := c.composeJSON([]string{folderSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[[]Folder](serr)
	}
	return bridge.Execute[[]Folder](ctx, c.runner, program)
}
