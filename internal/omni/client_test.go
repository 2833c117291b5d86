package omni

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"omnikit/internal/bridge"
)

// fakeRunner records every composed program and replays scripted outputs.
type fakeRunner struct {
	calls    int
	programs []string
	outputs  []string
	err      *bridge.StructuredError
}

func (f *fakeRunner) Run(_ context.Context, program string) (string, *bridge.StructuredError) {
	f.calls++
	f.programs = append(f.programs, program)
	if f.err != nil {
		return "", f.err
	}
	out := f.outputs[0]
	if len(f.outputs) > 1 {
		f.outputs = f.outputs[1:]
	}
	return out, nil
}

func (f *fakeRunner) RunFile(ctx context.Context, path string, _ ...string) (string, *bridge.StructuredError) {
	return f.Run(ctx, path)
}

func (f *fakeRunner) lastProgram() string {
	if len(f.programs) == 0 {
		return ""
	}
	return f.programs[len(f.programs)-1]
}

func newTestClient(t *testing.T, runner *fakeRunner, chunkSize int) *Client {
	t.Helper()
	fs := afero.NewMemMapFs()
	fragments := map[string]string{
		"helpers/json.applescript":        "on encodeString(s)\nend encodeString",
		"serializers/task.applescript":    "on serializeTask(t)\nend serializeTask",
		"serializers/project.applescript": "on serializeProject(p)\nend serializeProject",
		"serializers/folder.applescript":  "on serializeFolder(f)\nend serializeFolder",
		"serializers/tag.applescript":     "on serializeTag(g)\nend serializeTag",
	}
	for path, content := range fragments {
		require.NoError(t, afero.WriteFile(fs, "/assets/"+path, []byte(content), 0o644))
	}
	return NewClient(runner, bridge.NewAssetLoader(fs, "/assets"), chunkSize)
}
