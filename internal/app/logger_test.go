package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStderrLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := &stderrLogger{output: &buf, level: parseLevel("warn")}

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "DEBUG: debug 1")
	assert.NotContains(t, out, "INFO: info 2")
	assert.Contains(t, out, "WARN: warn 3")
	assert.Contains(t, out, "ERROR: error 4")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, levelDebug, parseLevel("debug"))
	assert.Equal(t, levelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, levelInfo, parseLevel("info"))
	assert.Equal(t, levelWarn, parseLevel("warn"))
	assert.Equal(t, levelError, parseLevel("error"))
	assert.Equal(t, levelInfo, parseLevel(""))
	assert.Equal(t, levelInfo, parseLevel("verbose"))
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	SetLogger(nil)
	assert.Equal(t, original, GetLogger())

	replacement := NewStderrLogger("debug")
	SetLogger(replacement)
	assert.Equal(t, replacement, GetLogger())
}
