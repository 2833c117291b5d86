package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnikit/internal/bridge"
)

func TestPrintOutcomeSuccess(t *testing.T) {
	var buf bytes.Buffer
	out := bridge.OK(map[string]string{"id": "t1"})

	require.NoError(t, printOutcome(&buf, out))
	assert.JSONEq(t, `{"id":"t1"}`, buf.String())
}

func TestPrintOutcomeFailure(t *testing.T) {
	var buf bytes.Buffer
	serr := bridge.NewError(bridge.ErrTaskNotFound, "task not found", "Can't get task id \"t1\"")
	out := bridge.Fail[string](serr)

	err := printOutcome(&buf, out)
	require.Error(t, err)

	// The structured error is the command error; stdout stays empty.
	var structured *bridge.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, bridge.ErrTaskNotFound, structured.Code)
	assert.Empty(t, buf.String())
}
