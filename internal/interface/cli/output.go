package cli

import (
	"encoding/json"
	"io"

	"omnikit/internal/bridge"
)

// printOutcome writes the payload of a success outcome as indented JSON and
// turns a failure outcome into the command error, so failures reach stderr
// and set the exit code while stdout stays machine-readable.
func printOutcome[T any](w io.Writer, out bridge.Outcome[T]) error {
	if !out.Success {
		return out.Err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Data)
}
