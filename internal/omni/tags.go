package omni

import (
	"context"
	"fmt"

	"omnikit/internal/bridge"
)

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, name string) bridge.Outcome[Tag] {
	tagName, serr := bridge.ValidateText(name, "tag name")
	if serr != nil {
		return bridge.Fail[Tag](serr)
	}
	if tagName == "" {
		return bridge.Fail[Tag](bridge.NewError(bridge.ErrValidation, "tag name must not be empty"))
	}
	body := fmt.Sprintf("set newTag to make new tag with properties {name:%s}\n", bridge.Quote(tagName)) +
		"return my serializeTag(newTag)"
	program, serr := c.composeJSON([]string{tagSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[Tag](serr)
	}
	return bridge.Execute[Tag](ctx, c.runner, program)
}

// DeleteTag removes one tag; tasks keep their other tags.
func (c *Client) DeleteTag(ctx context.Context, id string) bridge.Outcome[DeleteResult] {
	tagID, serr := bridge.ValidateID(id, "tag")
	if serr != nil {
		return bridge.Fail[DeleteResult](serr)
	}
	body := lookupTag(tagID) + "\ndelete theTag\n" + deleteReturn(tagID)
	program := bridge.ComposeSimple(body)
	return bridge.Execute[DeleteResult](ctx, c.runner, program)
}

// ListTags returns every tag.
func (c *Client) ListTags(ctx context.Context) bridge.Outcome[[]Tag] {
	body := pagedLoop("flattened tags", "true", "my serializeTag(t)", bridge.MaxListLimit, 0)
	program, serr := c.composeJSON([]string{tagSerializerFragment}, body)
	if serr != nil {
		return bridge.Fail[[]Tag](serr)
	}
	return bridge.Execute[[]Tag](ctx, c.runner, program)
}
