package omni

import (
	"context"
	"strings"

	"omnikit/internal/bridge"
)

// ProductivityStats computes the dashboard counts in one invocation. The
// counts are whose-clause queries evaluated inside OmniFocus, so no task
// data crosses the subprocess boundary.
func (c *Client) ProductivityStats(ctx context.Context) bridge.Outcome[Stats] {
	var sb strings.Builder
	sb.WriteString("set inboxCount to count of inbox tasks\n")
	sb.WriteString("set overdueCount to count of (flattened tasks whose completed is false and due date is not missing value and due date < (current date))\n")
	sb.WriteString("set soonLimit to (current date) + (3 * days)\n")
	sb.WriteString("set dueSoonCount to count of (flattened tasks whose completed is false and due date is not missing value and due date < soonLimit and due date is greater than or equal to (current date))\n")
	sb.WriteString("set flaggedCount to count of (flattened tasks whose completed is false and flagged is true)\n")
	sb.WriteString("set todayStart to current date\n")
	sb.WriteString("set time of todayStart to 0\n")
	sb.WriteString("set completedToday to count of (flattened tasks whose completion date is not missing value and completion date is greater than or equal to todayStart)\n")
	sb.WriteString("set activeProjects to count of (flattened projects whose status is active status)\n")
	sb.WriteString(`return "{\"inboxCount\":" & inboxCount & ",\"overdueCount\":" & overdueCount & ",\"dueSoonCount\":" & dueSoonCount & ",\"flaggedCount\":" & flaggedCount & ",\"completedToday\":" & completedToday & ",\"activeProjects\":" & activeProjects & "}"`)

	program := bridge.ComposeSimple(sb.String())
	return bridge.Execute[Stats](ctx, c.runner, program)
}
