package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		raw  string
		kind ErrorKind
	}{
		{"execution error: OmniFocus got an error: Application isn't running. (-600)", ErrNotRunning},
		{"OmniFocus is not running", ErrNotRunning},
		{"error: Can't get task id \"xyz\"", ErrTaskNotFound},
		{"task ABC not found", ErrTaskNotFound},
		{"Can't get flattened task whose id = \"q\"", ErrTaskNotFound},
		{"Can't get project id \"p1\"", ErrProjectNotFound},
		{"project Work not found", ErrProjectNotFound},
		{"Can't get tag id \"t1\"", ErrTagNotFound},
		{"Can't get folder id \"f1\"", ErrFolderNotFound},
		{"Invalid date string", ErrInvalidDateFormat},
		{"syntax error: Expected end of line but found identifier. (-2741)", ErrAppleScript},
		{"something entirely unexpected", ErrAppleScript},
	}
	for _, tc := range cases {
		serr := Classify(tc.raw)
		require.NotNil(t, serr)
		assert.Equal(t, tc.kind, serr.Code, "raw %q", tc.raw)
		assert.Equal(t, tc.raw, serr.Details, "raw text must survive verbatim")
	}
}

func TestClassifyEmpty(t *testing.T) {
	serr := Classify("   ")
	require.NotNil(t, serr)
	assert.Equal(t, ErrUnknown, serr.Code)
}
