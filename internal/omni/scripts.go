package omni

import (
	"fmt"
	"strings"

	"omnikit/internal/bridge"
	"omnikit/internal/pkg/ofjson"
)

// Script-body building blocks shared across operations. Everything
// interpolated here is a Safe* value or a literal; raw caller input never
// reaches these helpers.

func lookupTask(id bridge.SafeID) string {
	return fmt.Sprintf("set theTask to first flattened task whose id is %s", bridge.Quote(id))
}

func lookupProject(id bridge.SafeID) string {
	return fmt.Sprintf("set theProject to first flattened project whose id is %s", bridge.Quote(id))
}

func lookupFolder(id bridge.SafeID) string {
	return fmt.Sprintf("set theFolder to first flattened folder whose id is %s", bridge.Quote(id))
}

func lookupTag(id bridge.SafeID) string {
	return fmt.Sprintf("set theTag to first flattened tag whose id is %s", bridge.Quote(id))
}

// lookupOrCreateTag resolves a tag by name, creating it when absent. Tag
// assignment should not fail an otherwise valid mutation just because the
// tag is new.
func lookupOrCreateTag(name bridge.SafeText) string {
	q := bridge.Quote(name)
	return fmt.Sprintf(`try
	set theTag to first flattened tag whose name is %s
on error
	set theTag to make new tag with properties {name:%s}
end try`, q, q)
}

// deleteReturn renders the {"id","deleted"} acknowledgment a destructive
// script returns, quoted for embedding as an AppleScript string literal.
func deleteReturn(id bridge.SafeID) string {
	doc := fmt.Sprintf(`{"id":%s,"deleted":true}`, ofjson.EncodeString(string(id)))
	return "return " + bridge.Quote(doc)
}

// idListLiteral renders validated ids as an AppleScript list literal.
func idListLiteral(ids []bridge.SafeID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, bridge.Quote(id))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// batchBody builds the per-chunk loop: each id is attempted inside its own
// try block so one bad id cannot abort the rest of the chunk, and the
// script emits one {succeeded, failed} JSON object for the whole chunk.
// prelude runs once before the loop (e.g. a project or tag lookup);
// operation acts on theTask.
func batchBody(ids []bridge.SafeID, prelude, operation string) string {
	var sb strings.Builder
	if prelude != "" {
		sb.WriteString(prelude)
		sb.WriteString("\n")
	}
	sb.WriteString("set succeededList to {}\n")
	sb.WriteString("set failedList to {}\n")
	sb.WriteString("repeat with rawID in ")
	sb.WriteString(idListLiteral(ids))
	sb.WriteString("\n")
	sb.WriteString("\tset tid to contents of rawID\n")
	sb.WriteString("\ttry\n")
	sb.WriteString("\t\tset theTask to first flattened task whose id is tid\n")
	for _, line := range strings.Split(operation, "\n") {
		sb.WriteString("\t\t")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\t\tset end of succeededList to (\"\\\"\" & tid & \"\\\"\")\n")
	sb.WriteString("\ton error errMsg\n")
	sb.WriteString("\t\tset end of failedList to (\"{\\\"id\\\":\\\"\" & tid & \"\\\",\\\"error\\\":\" & my encodeString(errMsg) & \"}\")\n")
	sb.WriteString("\tend try\n")
	sb.WriteString("end repeat\n")
	sb.WriteString("set AppleScript's text item delimiters to \",\"\n")
	sb.WriteString("return \"{\\\"succeeded\\\":[\" & (succeededList as string) & \"],\\\"failed\\\":[\" & (failedList as string) & \"]}\"")
	return sb.String()
}

// pagedLoop wraps a serializer call in the shared offset/limit emission
// loop. filter is an AppleScript boolean expression over t; source is the
// collection iterated.
func pagedLoop(source, filter, serialize string, limit, offset int) string {
	var sb strings.Builder
	sb.WriteString("set output to \"[\"\n")
	sb.WriteString("set matched to 0\n")
	sb.WriteString("set emitted to 0\n")
	fmt.Fprintf(&sb, "repeat with rawItem in %s\n", source)
	sb.WriteString("\tset t to contents of rawItem\n")
	fmt.Fprintf(&sb, "\tif %s then\n", filter)
	sb.WriteString("\t\tset matched to matched + 1\n")
	fmt.Fprintf(&sb, "\t\tif matched > %d and emitted < %d then\n", offset, limit)
	sb.WriteString("\t\t\tif emitted > 0 then set output to output & \",\"\n")
	fmt.Fprintf(&sb, "\t\t\tset output to output & %s\n", serialize)
	sb.WriteString("\t\t\tset emitted to emitted + 1\n")
	sb.WriteString("\t\tend if\n")
	sb.WriteString("\tend if\n")
	sb.WriteString("end repeat\n")
	sb.WriteString("return output & \"]\"")
	return sb.String()
}
